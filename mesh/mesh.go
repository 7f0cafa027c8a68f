package mesh

import (
	"fmt"

	"github.com/icetools/fieldlift/utils"
)

// NoNeighbor is the reserved id marking an unused neighbor slot in the
// persisted 1-based cellsOnCell table.
const NoNeighbor = 0

// Graph is the immutable cell-adjacency structure of the target mesh:
// cell centroids plus a variable-degree neighbor list per cell. The
// neighbor table is stored padded to maxEdges columns, 1-based with
// NoNeighbor filling the slots past each cell's true degree, matching
// the persisted convention. All accessor results are 0-based.
type Graph struct {
	X, Y        utils.Vector // cell centroid coordinates
	CellsOnCell utils.Matrix // nCells x maxEdges, 1-based, padded
	NEdges      []int        // true degree per cell
}

func NewGraph(x, y utils.Vector, cellsOnCell utils.Matrix, nEdges []int) (g *Graph) {
	var (
		nCells = x.Len()
		nr, nc = cellsOnCell.Dims()
	)
	if y.Len() != nCells || nr != nCells || len(nEdges) != nCells {
		err := fmt.Errorf("inconsistent mesh arrays: nCells = %d, y = %d, cellsOnCell rows = %d, nEdges = %d",
			nCells, y.Len(), nr, len(nEdges))
		panic(err)
	}
	for i, deg := range nEdges {
		if deg < 0 || deg > nc {
			panic(fmt.Errorf("cell %d: degree %d outside [0,%d]", i, deg, nc))
		}
	}
	g = &Graph{
		X:           x,
		Y:           y,
		CellsOnCell: cellsOnCell,
		NEdges:      nEdges,
	}
	return
}

func (g *Graph) NCells() int {
	return g.X.Len()
}

func (g *Graph) MaxEdges() int {
	_, nc := g.CellsOnCell.Dims()
	return nc
}

// Neighbors returns the 0-based neighbor ids of cell i up to its true
// degree, skipping NoNeighbor slots. The result is appended to buf so
// callers can reuse one allocation across a sweep.
func (g *Graph) Neighbors(i int, buf []int) []int {
	buf = buf[:0]
	for j := 0; j < g.NEdges[i]; j++ {
		n := int(g.CellsOnCell.At(i, j))
		if n == NoNeighbor {
			continue
		}
		buf = append(buf, n-1)
	}
	return buf
}

// Distance returns the Euclidean centroid distance between cells i and j.
func (g *Graph) Distance(i, j int) float64 {
	return utils.Distance(g.X.AtVec(i), g.Y.AtVec(i), g.X.AtVec(j), g.Y.AtVec(j))
}
