package remap

import (
	"fmt"

	"github.com/icetools/fieldlift/mesh"
)

// Rule selects how a newly activated cell's value is interpolated
// from its active neighbors.
type Rule uint8

const (
	// RuleMin takes the minimum value among active neighbors.
	RuleMin Rule = iota
	// RuleIDW takes the inverse-distance-weighted average of active
	// neighbors, weighting each by the reciprocal of its centroid
	// distance.
	RuleIDW
)

func ParseRule(s string) (Rule, error) {
	switch s {
	case "min":
		return RuleMin, nil
	case "idw":
		return RuleIDW, nil
	}
	return 0, configErrf("unsupported extrapolation scheme %q, must be idw or min", s)
}

// Extrapolate grows the active set across the adjacency graph, one
// ring per pass, assigning each newly activated cell a value
// interpolated from the neighbors that were already active when the
// pass began. mask is the field's definitive active mask and is
// updated in place as cells fill in. The frozen per-pass snapshot
// guarantees values filled during a pass are not reused within it.
//
// A pass that activates nothing while inactive cells remain means an
// unreachable subgraph, which fails the run rather than spinning.
func Extrapolate(g *mesh.Graph, fld *Field, mask []bool, rule Rule) error {
	var (
		nCells = g.NCells()
		nVert  = fld.NVert()
		cur    = make([]bool, nCells)
		next   = append([]bool{}, mask...)
		nbrs   []int
	)
	for countFalse(next) > 0 {
		copy(cur, next)
		progress := 0
		for i := range cur {
			if cur[i] {
				continue
			}
			nbrs = g.Neighbors(i, nbrs)
			active := nbrs[:0:len(nbrs)]
			for _, j := range nbrs {
				if cur[j] {
					active = append(active, j)
				}
			}
			if len(active) == 0 {
				// no upstream value yet, retry next pass
				continue
			}
			if err := interpolate(g, fld, i, active, rule, nVert); err != nil {
				return err
			}
			next[i] = true
			progress++
		}
		remaining := countFalse(next)
		fmt.Printf("%8d cells left for extrapolation in total %8d cells\n", remaining, nCells)
		if progress == 0 && remaining > 0 {
			return topologyErrf("%d cells unreachable from any active cell", remaining)
		}
	}
	copy(mask, next)
	return nil
}

// interpolate writes cell i's value for every vertical level from its
// active neighbors, by the given rule.
func interpolate(g *mesh.Graph, fld *Field, i int, active []int, rule Rule, nVert int) error {
	switch rule {
	case RuleMin:
		for n := 0; n < nVert; n++ {
			v := fld.Values.At(active[0], n)
			for _, j := range active[1:] {
				if w := fld.Values.At(j, n); w < v {
					v = w
				}
			}
			fld.Values.Set(i, n, v)
		}
	case RuleIDW:
		var wsum float64
		weights := make([]float64, len(active))
		for k, j := range active {
			d := g.Distance(i, j)
			if d == 0 {
				return geometryErrf("cells %d and %d share a centroid, cannot inverse-distance weight", i, j)
			}
			weights[k] = 1.0 / d
			wsum += weights[k]
		}
		for n := 0; n < nVert; n++ {
			var vsum float64
			for k, j := range active {
				vsum += weights[k] * fld.Values.At(j, n)
			}
			fld.Values.Set(i, n, vsum/wsum)
		}
	default:
		return configErrf("unknown interpolation rule %d", rule)
	}
	return nil
}

func countFalse(mask []bool) (n int) {
	for _, m := range mask {
		if !m {
			n++
		}
	}
	return
}
