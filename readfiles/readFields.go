package readfiles

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/icetools/fieldlift/remap"
)

/*
Target field state format:

	NCELLS= 5
	FIELD= thickness 1
	v                       (nCells lines of nVert values each)
	FIELD= temperature 10
	v v v v v v v v v v
	...

Fields repeat until end of file.
*/
func ReadFields(filename string, verbose bool) (fs remap.FieldSet) {
	var (
		file *os.File
		err  error
	)
	if file, err = os.Open(filename); err != nil {
		panic(fmt.Errorf("unable to open file %s\n %s", filename, err))
	}
	defer file.Close()
	reader := bufio.NewReader(file)

	nCells := readNumber(reader)
	fs = remap.FieldSet{}
	for {
		var (
			name  string
			nVert int
		)
		header, eof := getLineOrEOF(reader)
		if eof {
			break
		}
		if _, err = fmt.Sscanf(tokenOf(header), "%s %d", &name, &nVert); err != nil {
			panic(fmt.Errorf("unable to read field header from [%s]", header))
		}
		f := remap.NewField(name, nCells, nVert)
		for i := 0; i < nCells; i++ {
			fields := strings.Fields(getLineNoComments(reader))
			if len(fields) != nVert {
				panic(fmt.Errorf("field %s cell %d: %d values, expected %d", name, i, len(fields), nVert))
			}
			for n := 0; n < nVert; n++ {
				f.Values.Set(i, n, parseFloat(fields[n]))
			}
		}
		fs.Add(f)
		if verbose {
			fmt.Printf("read field %s (%d levels)\n", name, nVert)
		}
	}
	return
}

// WriteFields persists the field state in the same format ReadFields
// consumes.
func WriteFields(filename string, fs remap.FieldSet, names []string) {
	var (
		file *os.File
		err  error
	)
	if file, err = os.Create(filename); err != nil {
		panic(fmt.Errorf("unable to create file %s\n %s", filename, err))
	}
	defer file.Close()
	w := bufio.NewWriter(file)
	defer w.Flush()

	var nCells int
	for _, name := range names {
		if f, ok := fs[name]; ok {
			nCells = f.NCells()
			break
		}
	}
	fmt.Fprintf(w, "NCELLS= %d\n", nCells)
	for _, name := range names {
		f, ok := fs[name]
		if !ok {
			panic(fmt.Errorf("field %s not present in field set", name))
		}
		fmt.Fprintf(w, "FIELD= %s %d\n", f.Name, f.NVert())
		for i := 0; i < f.NCells(); i++ {
			for n := 0; n < f.NVert(); n++ {
				if n > 0 {
					fmt.Fprintf(w, " ")
				}
				fmt.Fprintf(w, "%.17g", f.Values.At(i, n))
			}
			fmt.Fprintf(w, "\n")
		}
	}
}

func tokenOf(line string) string {
	ind := strings.Index(line, "=")
	if ind < 0 {
		panic(fmt.Errorf("badly formed input line [%s], should have an =", line))
	}
	return line[ind+1:]
}

// getLineOrEOF is getLineNoComments that reports end of input instead
// of panicking, for the field-block loop.
func getLineOrEOF(reader *bufio.Reader) (line string, eof bool) {
	for {
		raw, err := reader.ReadString('\n')
		if err != nil && err != io.EOF {
			panic(err)
		}
		atEnd := err == io.EOF
		line = strings.Trim(strings.TrimRight(raw, "\n"), " ")
		if ind := strings.Index(line, "%"); ind >= 0 {
			line = strings.Trim(line[:ind], " ")
		}
		if len(line) != 0 {
			return line, false
		}
		if atEnd {
			return "", true
		}
	}
}
