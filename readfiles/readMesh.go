package readfiles

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/icetools/fieldlift/mesh"
	"github.com/icetools/fieldlift/utils"
)

/*
Target mesh dump format, line oriented, % starts a comment:

	NCELLS= 5
	MAXEDGES= 2
	x y nEdges n1 ... n_nEdges      (one line per cell, neighbor ids 1-based)

A neighbor id of 0 inside the degree marks a boundary slot.
*/
func ReadMesh(filename string, verbose bool) (g *mesh.Graph) {
	var (
		file *os.File
		err  error
	)
	if verbose {
		fmt.Printf("Reading target mesh file named: %s\n", filename)
	}
	if file, err = os.Open(filename); err != nil {
		panic(fmt.Errorf("unable to open file %s\n %s", filename, err))
	}
	defer file.Close()
	reader := bufio.NewReader(file)

	nCells := readNumber(reader)
	maxEdges := readNumber(reader)
	if verbose {
		fmt.Printf("nCells = %d, maxEdges = %d\n", nCells, maxEdges)
	}

	var (
		X           = utils.NewVector(nCells)
		Y           = utils.NewVector(nCells)
		cellsOnCell = utils.NewMatrix(nCells, maxEdges)
		nEdges      = make([]int, nCells)
		xD, yD      = X.Data(), Y.Data()
	)
	for i := 0; i < nCells; i++ {
		fields := strings.Fields(getLineNoComments(reader))
		if len(fields) < 3 {
			panic(fmt.Errorf("cell %d: badly formed line, need x y nEdges", i))
		}
		xD[i] = parseFloat(fields[0])
		yD[i] = parseFloat(fields[1])
		nEdges[i] = parseInt(fields[2])
		if len(fields) != 3+nEdges[i] {
			panic(fmt.Errorf("cell %d: %d neighbor entries, declared degree %d", i, len(fields)-3, nEdges[i]))
		}
		for j := 0; j < nEdges[i]; j++ {
			cellsOnCell.Set(i, j, float64(parseInt(fields[3+j])))
		}
	}
	g = mesh.NewGraph(X, Y, cellsOnCell, nEdges)
	return
}

/*
Vertex-table mesh dump, for meshes persisted without precomputed
adjacency:

	NCELLS= 4
	NVERTS= 9
	MAXEDGES= 4
	x y nVerts v1 ... v_nVerts      (vertex ids 1-based)

Adjacency is derived from shared edges.
*/
func ReadVertexMesh(filename string, verbose bool) (g *mesh.Graph) {
	var (
		file *os.File
		err  error
	)
	if verbose {
		fmt.Printf("Reading vertex-table mesh file named: %s\n", filename)
	}
	if file, err = os.Open(filename); err != nil {
		panic(fmt.Errorf("unable to open file %s\n %s", filename, err))
	}
	defer file.Close()
	reader := bufio.NewReader(file)

	nCells := readNumber(reader)
	nVerts := readNumber(reader)
	maxEdges := readNumber(reader)
	if verbose {
		fmt.Printf("nCells = %d, nVerts = %d, maxEdges = %d\n", nCells, nVerts, maxEdges)
	}

	var (
		X         = utils.NewVector(nCells)
		Y         = utils.NewVector(nCells)
		cellVerts = make([][]int, nCells)
		xD, yD    = X.Data(), Y.Data()
	)
	for i := 0; i < nCells; i++ {
		fields := strings.Fields(getLineNoComments(reader))
		if len(fields) < 3 {
			panic(fmt.Errorf("cell %d: badly formed line, need x y nVerts", i))
		}
		xD[i] = parseFloat(fields[0])
		yD[i] = parseFloat(fields[1])
		nv := parseInt(fields[2])
		if len(fields) != 3+nv {
			panic(fmt.Errorf("cell %d: %d vertex entries, declared %d", i, len(fields)-3, nv))
		}
		cellVerts[i] = make([]int, nv)
		for j := 0; j < nv; j++ {
			cellVerts[i][j] = parseInt(fields[3+j]) - 1
		}
	}
	cellsOnCell, nEdges := mesh.BuildAdjacency(cellVerts, nVerts, maxEdges)
	g = mesh.NewGraph(X, Y, cellsOnCell, nEdges)
	return
}

func parseFloat(s string) float64 {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		panic(fmt.Errorf("unable to parse float from [%s]", s))
	}
	return v
}

func parseInt(s string) int {
	v, err := strconv.Atoi(s)
	if err != nil {
		panic(fmt.Errorf("unable to parse int from [%s]", s))
	}
	return v
}

func getToken(reader *bufio.Reader) (token string) {
	line := getLineNoComments(reader)
	ind := strings.Index(line, "=")
	if ind < 0 {
		err := fmt.Errorf("badly formed input line [%s], should have an =", line)
		panic(err)
	}
	token = line[ind+1:]
	return
}

func readNumber(reader *bufio.Reader) (num int) {
	var (
		err error
	)
	token := getToken(reader)
	if _, err = fmt.Sscanf(token, "%d", &num); err != nil {
		err = fmt.Errorf("unable to read number from token: [%s]", token)
		panic(err)
	}
	return
}

func getLineNoComments(reader *bufio.Reader) (line string) {
	for {
		line = strings.Trim(getLine(reader), " ")
		ind := strings.Index(line, "%")
		if ind < 0 {
			if len(line) != 0 {
				return
			}
			continue
		}
		if ind > 0 {
			line = strings.Trim(line[:ind], " ")
			if len(line) != 0 {
				return
			}
		}
	}
}

func getLine(reader *bufio.Reader) (line string) {
	var (
		err error
	)
	line, err = reader.ReadString('\n')
	if err != nil {
		if err != io.EOF || len(line) == 0 {
			panic(err)
		}
	}
	line = strings.TrimRight(line, "\n")
	return
}
