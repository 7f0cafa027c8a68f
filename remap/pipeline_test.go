package remap

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// pipelineFields is a line-mesh field state with ice on the end cells
// only, so the "all" mask starts as [T F F F T].
func pipelineFields() FieldSet {
	fs := FieldSet{}
	thk := NewField("thickness", 5, 1)
	thk.Values.Set(0, 0, 1)
	thk.Values.Set(4, 0, 1)
	bed := NewField(BedTopographyName, 5, 1)
	fs.Add(thk)
	fs.Add(bed)
	fs.Add(NewField("beta", 5, 1))
	return fs
}

func TestPipelineBetaEndToEnd(t *testing.T) {
	g := lineGraph()
	fs := pipelineFields()
	samples := &SampleSet{
		X:    []float64{0, 4},
		Y:    []float64{0, 0},
		Data: [][]float64{{0, 0}}, // exp(0)*1000 = 1000 at both ends
	}

	res, err := Run(g, fs, samples, Options{
		Variable:         "beta",
		Method:           "coord",
		MaskScheme:       "all",
		Extrapolation:    "min",
		SmoothIterations: 2,
	})
	assert.NoError(t, err)
	assert.Equal(t, []int{0, 4}, res.Map)
	assert.Equal(t, []bool{true, false, false, false, true}, res.OriginalMask)
	assert.Equal(t, 3, res.Extrapolated)
	assert.Equal(t, []float64{1000, 1000, 1000, 1000, 1000}, fs["beta"].Values.Col(0).Data())
}

func TestPipelineThicknessSkipsExtrapolation(t *testing.T) {
	g := lineGraph()
	fs := pipelineFields()
	samples := &SampleSet{
		X:    []float64{0, 4},
		Y:    []float64{0, 0},
		Data: [][]float64{{5, 7}},
	}

	res, err := Run(g, fs, samples, Options{
		Variable:         "thickness",
		Method:           "coord",
		MaskScheme:       "all",
		Extrapolation:    "min",
		SmoothIterations: 0,
	})
	assert.NoError(t, err)
	// thickness is never extrapolated: transplanted values and the
	// remaining zeros stand as final
	assert.Equal(t, 0, res.Extrapolated)
	assert.Equal(t, []float64{5, 0, 0, 0, 7}, fs["thickness"].Values.Col(0).Data())
	// surface elevation preserved where thickness was rewritten
	assert.Equal(t, -4., fs[BedTopographyName].Values.At(0, 0))
	assert.Equal(t, -6., fs[BedTopographyName].Values.At(4, 0))
}

func TestPipelinePrecomputedMethod(t *testing.T) {
	g := lineGraph()
	fs := pipelineFields()
	samples := &SampleSet{
		X:    []float64{0, 4},
		Y:    []float64{0, 0},
		Data: [][]float64{{0, 0}},
	}

	res, err := Run(g, fs, samples, Options{
		Variable:         "beta",
		Method:           "id",
		MaskScheme:       "all",
		Extrapolation:    "idw",
		SmoothIterations: 0,
		Precomputed:      []int{0, 4},
		PrecomputedCount: 2,
	})
	assert.NoError(t, err)
	assert.Equal(t, []int{0, 4}, res.Map)
	assert.Equal(t, 3, res.Extrapolated)
}

func TestPipelineAbortsBeforeWriteOnNoMatch(t *testing.T) {
	g := lineGraph()
	fs := pipelineFields()
	samples := &SampleSet{
		X:    []float64{0, 1000},
		Y:    []float64{0, 0},
		Data: [][]float64{{0, 0}},
	}

	_, err := Run(g, fs, samples, Options{
		Variable:      "beta",
		Method:        "coord",
		MaskScheme:    "all",
		Extrapolation: "min",
	})
	assert.ErrorIs(t, err, ErrCorrespondence)
	// no field write happened
	assert.Equal(t, []float64{0, 0, 0, 0, 0}, fs["beta"].Values.Col(0).Data())
}

func TestPipelineBadSelectors(t *testing.T) {
	g := lineGraph()
	fs := pipelineFields()
	samples := &SampleSet{X: []float64{0}, Y: []float64{0}, Data: [][]float64{{0}}}

	_, err := Run(g, fs, samples, Options{
		Variable: "beta", Method: "nearest", MaskScheme: "all", Extrapolation: "min",
	})
	assert.ErrorIs(t, err, ErrConfiguration)

	_, err = Run(g, fs, samples, Options{
		Variable: "beta", Method: "coord", MaskScheme: "wet", Extrapolation: "min",
	})
	assert.ErrorIs(t, err, ErrConfiguration)

	_, err = Run(g, fs, samples, Options{
		Variable: "vorticity", Method: "coord", MaskScheme: "all", Extrapolation: "min",
	})
	assert.ErrorIs(t, err, ErrConfiguration)

	_, err = Run(g, fs, samples, Options{
		Variable: "beta", Method: "id", MaskScheme: "all", Extrapolation: "min",
		Precomputed: []int{0}, PrecomputedCount: 3,
	})
	assert.ErrorIs(t, err, ErrCorrespondence)
}
