package remap

import (
	"math"

	"github.com/icetools/fieldlift/mesh"
	"github.com/icetools/fieldlift/utils"
)

// Coordinate matching tolerance. Relative on each axis independently,
// with a small epsilon so cells at the origin do not divide by zero.
const (
	matchRelTol = 1.e-3
	matchEps    = 1.e-10
)

// MatchCoordinates resolves each source sample to the target cell
// whose x and y centroid coordinates both agree within a relative
// tolerance, taking the first (lowest-id) member of the intersection
// of the per-axis candidate sets. The result maps sample index to
// 0-based cell id. An empty intersection means the meshes do not
// overlap or do not match, and fails the run.
//
// This is the expensive ground-truth strategy; persist the result and
// use the precomputed map on repeat runs.
func MatchCoordinates(g *mesh.Graph, sx, sy []float64) ([]int, error) {
	var (
		nCells = g.NCells()
		xD     = g.X.Data()
		yD     = g.Y.Data()
		corr   = make([]int, len(sx))
	)
	for i := range sx {
		var indexX, indexY utils.Index
		for c := 0; c < nCells; c++ {
			if math.Abs(xD[c]-sx[i])/(math.Abs(xD[c])+matchEps) < matchRelTol {
				indexX = append(indexX, c)
			}
			if math.Abs(yD[c]-sy[i])/(math.Abs(yD[c])+matchEps) < matchRelTol {
				indexY = append(indexY, c)
			}
		}
		both := indexX.Intersect(indexY)
		if len(both) == 0 {
			return nil, correspondenceErrf("sample %d at (%g, %g) matches no cell within tolerance",
				i, sx[i], sy[i])
		}
		corr[i] = both[0]
	}
	return corr, nil
}

// ValidatePrecomputed checks a previously persisted correspondence
// map against the instantaneous sample count. The declared count is
// the leading value of the persisted file.
func ValidatePrecomputed(ids []int, declared, sampleCount int) error {
	if declared != sampleCount {
		return correspondenceErrf("precomputed map declares %d samples, input has %d",
			declared, sampleCount)
	}
	if len(ids) != declared {
		return correspondenceErrf("precomputed map declares %d entries, holds %d",
			declared, len(ids))
	}
	return nil
}
