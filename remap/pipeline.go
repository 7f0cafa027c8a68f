package remap

import (
	"fmt"

	"github.com/icetools/fieldlift/mesh"
)

// Options selects the per-run behavior of the pipeline. Method is the
// correspondence strategy: "coord" matches sample coordinates against
// cell centroids, "id" uses a previously persisted map supplied in
// Precomputed with its declared leading count.
type Options struct {
	Variable         string
	Method           string
	MaskScheme       string
	Extrapolation    string
	SmoothIterations int
	Precomputed      []int
	PrecomputedCount int
}

// Result reports what the run produced beyond the mutated field set:
// the correspondence map used (for persistence when it was computed
// from coordinates), the original pre-extrapolation mask, and the
// number of cells filled by extrapolation.
type Result struct {
	Map          []int
	OriginalMask []bool
	Extrapolated int
}

// Run executes the fixed pipeline: resolve correspondence, transplant
// the field, build the active mask, flood-fill extrapolate, smooth.
// Any error aborts before the field set is considered final.
func Run(g *mesh.Graph, fs FieldSet, samples *SampleSet, opts Options) (*Result, error) {
	spec, err := LookupField(opts.Variable)
	if err != nil {
		return nil, err
	}
	rule, err := ParseRule(opts.Extrapolation)
	if err != nil {
		return nil, err
	}

	var corr []int
	switch opts.Method {
	case "coord":
		fmt.Printf("use coordinate method\n")
		if corr, err = MatchCoordinates(g, samples.X, samples.Y); err != nil {
			return nil, err
		}
	case "id":
		if err = ValidatePrecomputed(opts.Precomputed, opts.PrecomputedCount, samples.Count()); err != nil {
			return nil, err
		}
		corr = opts.Precomputed
	default:
		return nil, configErrf("unsupported conversion method %q, must be id or coord", opts.Method)
	}

	if err = Transplant(fs, spec, corr, samples); err != nil {
		return nil, err
	}

	thickness, ok := fs["thickness"]
	if !ok {
		return nil, configErrf("target field set has no thickness field, cannot build the active mask")
	}
	var bedrock []float64
	if bed, haveBed := fs[BedTopographyName]; haveBed {
		bedrock = bed.Values.Col(0).Data()
	}
	mask, err := BuildMask(opts.MaskScheme, thickness.Values.Col(0).Data(), bedrock)
	if err != nil {
		return nil, err
	}
	origMask := append([]bool{}, mask...)

	fld := fs[spec.Name]
	if spec.SkipExtrap {
		// thickness below the waterline is a legitimate zero, not a gap
		fmt.Printf("Do not do extrapolation!\n")
	} else {
		fmt.Printf("\nStart extrapolation!\n")
		if err = Extrapolate(g, fld, mask, rule); err != nil {
			return nil, err
		}
	}

	if opts.SmoothIterations == 0 {
		fmt.Printf("\nNo smoothing! Iter number is 0!\n")
	} else if err = Smooth(g, fld, spec, mask, origMask, opts.SmoothIterations); err != nil {
		return nil, err
	}

	return &Result{
		Map:          corr,
		OriginalMask: origMask,
		Extrapolated: countFalse(origMask) - countFalse(mask),
	}, nil
}
