package remap

import (
	"fmt"

	"github.com/icetools/fieldlift/mesh"
)

// Smooth runs iters neighbor-weighted smoothing passes over exactly
// the cells that were inactive in the original mask, captured before
// extrapolation began, regardless of their mask state now. The rule
// is keyed to the field: beta takes the minimum of active neighbors,
// stiffnessFactor the inverse-distance-weighted average; no other
// field supports smoothing. Zero iterations disables smoothing.
//
// By the time smoothing runs, extrapolation has activated every cell,
// so an originally-inactive cell with no active neighbor is a defect
// in the upstream extrapolation and fails the run.
func Smooth(g *mesh.Graph, fld *Field, spec FieldSpec, mask, origMask []bool, iters int) error {
	if iters == 0 {
		return nil
	}
	var rule Rule
	switch spec.Smoothing {
	case SmoothMin:
		rule = RuleMin
	case SmoothIDW:
		rule = RuleIDW
	default:
		return configErrf("smoothing is only supported for beta and stiffnessFactor, not %q; set iterations to 0 to disable",
			spec.Name)
	}
	var (
		nVert = fld.NVert()
		nbrs  []int
	)
	for it := 0; it < iters; it++ {
		for i := range origMask {
			if origMask[i] {
				continue
			}
			nbrs = g.Neighbors(i, nbrs)
			active := nbrs[:0:len(nbrs)]
			for _, j := range nbrs {
				if mask[j] {
					active = append(active, j)
				}
			}
			if len(active) == 0 {
				return topologyErrf("cell %d has no active neighbor during smoothing, upstream extrapolation left a gap", i)
			}
			if err := interpolate(g, fld, i, active, rule, nVert); err != nil {
				return err
			}
		}
		fmt.Printf("%3d smoothing in total %3d iters\n", it, iters)
	}
	return nil
}
