package readfiles

import (
	"bufio"
	"fmt"
	"os"
)

// WriteIDMap persists a correspondence map for reuse by the "id"
// conversion method: a leading sample count, then one target cell id
// per source sample, in the mesh's native 1-based convention, one
// value per line.
func WriteIDMap(filename string, corr []int) {
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

	fmt.Fprintf(w, "%d\n", len(corr))
	for _, c := range corr {
		fmt.Fprintf(w, "%d\n", c+1)
	}
}

// ReadIDMap loads a persisted correspondence map. The returned ids
// are 0-based; declared is the leading count as stored, which the
// resolver checks against the instantaneous sample count.
func ReadIDMap(filename string) (ids []int, declared int) {
	var (
		file *os.File
		err  error
	)
	if file, err = os.Open(filename); err != nil {
		panic(fmt.Errorf("unable to open file %s\n %s", filename, err))
	}
	defer file.Close()
	reader := bufio.NewReader(file)

	declared = parseInt(getLineNoComments(reader))
	for {
		line, eof := getLineOrEOF(reader)
		if eof {
			break
		}
		ids = append(ids, parseInt(line)-1)
	}
	return
}
