package mesh

import (
	"fmt"

	"github.com/james-bowman/sparse"

	"github.com/icetools/fieldlift/utils"
)

// BuildAdjacency derives the padded cellsOnCell table and per-cell
// degrees from a cell -> vertex incidence list, for mesh dumps that
// carry vertex tables instead of precomputed adjacency. Two polygonal
// cells are adjacent iff they share exactly two vertices (an edge),
// which falls out of the incidence product C*C^T: the (i,j) entry
// counts shared vertices.
func BuildAdjacency(cellVerts [][]int, nVerts, maxEdges int) (cellsOnCell utils.Matrix, nEdges []int) {
	var (
		nCells = len(cellVerts)
	)
	CToV_Tmp := sparse.NewDOK(nCells, nVerts)
	for c, verts := range cellVerts {
		if len(verts) > maxEdges {
			panic(fmt.Errorf("cell %d has %d vertices, exceeds maxEdges %d", c, len(verts), maxEdges))
		}
		for _, v := range verts {
			CToV_Tmp.Set(c, v, 1)
		}
	}
	CToC := sparse.NewCSR(nCells, nCells, nil, nil, nil)
	CToV := CToV_Tmp.ToCSR()
	CToC.Mul(CToV, CToV.T())

	cellsOnCell = utils.NewMatrix(nCells, maxEdges)
	nEdges = make([]int, nCells)
	for i := 0; i < nCells; i++ {
		for j := 0; j < nCells; j++ {
			if i == j {
				continue
			}
			if CToC.At(i, j) == 2 {
				if nEdges[i] == maxEdges {
					panic(fmt.Errorf("cell %d has more than maxEdges = %d neighbors", i, maxEdges))
				}
				cellsOnCell.Set(i, nEdges[i], float64(j+1))
				nEdges[i]++
			}
		}
	}
	return
}
