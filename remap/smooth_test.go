package remap

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSmoothZeroIterationsIsNoop(t *testing.T) {
	g := lineGraph()
	f := lineField(10, 10, 10, 20, 20)
	before := append([]float64{}, f.Values.Data()...)
	spec, _ := LookupField("beta")
	mask := []bool{true, true, true, true, true}
	orig := []bool{true, false, false, false, true}

	assert.NoError(t, Smooth(g, f, spec, mask, orig, 0))
	assert.Equal(t, before, f.Values.Data())
}

func TestSmoothBetaMin(t *testing.T) {
	g := lineGraph()
	f := lineField(10, 10, 10, 20, 20)
	spec, _ := LookupField("beta")
	mask := []bool{true, true, true, true, true}
	orig := []bool{true, false, false, false, true}

	assert.NoError(t, Smooth(g, f, spec, mask, orig, 1))
	// in-place sweep over the originally-inactive cells 1..3
	assert.Equal(t, []float64{10, 10, 10, 10, 20}, f.Values.Col(0).Data())
	// cells active in the original mask are never touched
	assert.Equal(t, 10., f.Values.At(0, 0))
	assert.Equal(t, 20., f.Values.At(4, 0))
}

func TestSmoothStiffnessIDW(t *testing.T) {
	g := lineGraph()
	f := lineField(10, 10, 15, 20, 20)
	f.Name = "stiffnessFactor"
	spec, _ := LookupField("stiffnessFactor")
	mask := []bool{true, true, true, true, true}
	orig := []bool{true, false, false, false, true}

	assert.NoError(t, Smooth(g, f, spec, mask, orig, 1))
	// unit distances, so each update is the mean of the two
	// neighbors at the time of the sweep
	vals := f.Values.Col(0).Data()
	assert.InDelta(t, 12.5, vals[1], 1e-12)   // (10+15)/2
	assert.InDelta(t, 16.25, vals[2], 1e-12)  // (12.5+20)/2
	assert.InDelta(t, 18.125, vals[3], 1e-12) // (16.25+20)/2
}

func TestSmoothUnsupportedField(t *testing.T) {
	g := lineGraph()
	f := lineField(1, 1, 1, 1, 1)
	f.Name = "thickness"
	spec, _ := LookupField("thickness")
	mask := []bool{true, true, true, true, true}
	orig := []bool{true, false, false, false, true}

	err := Smooth(g, f, spec, mask, orig, 2)
	assert.ErrorIs(t, err, ErrConfiguration)
}

func TestSmoothNoActiveNeighborIsHardFailure(t *testing.T) {
	g := lineGraph()
	f := lineField(1, 1, 1, 1, 1)
	spec, _ := LookupField("beta")
	// a current mask with inactive interior cannot happen after a
	// successful extrapolation; smoothing must flag it, not skip it
	mask := []bool{true, false, false, false, true}
	orig := []bool{true, true, false, true, true}

	err := Smooth(g, f, spec, mask, orig, 1)
	assert.ErrorIs(t, err, ErrTopology)
}
