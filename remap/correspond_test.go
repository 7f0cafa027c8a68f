package remap

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMatchCoordinates(t *testing.T) {
	g := lineGraph()
	// samples in a different order than the cells, slightly perturbed
	// within the relative tolerance
	sx := []float64{3.0005, 1.0001, 4.0, 2.0, 0}
	sy := []float64{0, 0, 0, 0, 0}

	corr, err := MatchCoordinates(g, sx, sy)
	assert.NoError(t, err)
	assert.Equal(t, []int{3, 1, 4, 2, 0}, corr)
}

func TestMatchCoordinatesNoMatch(t *testing.T) {
	g := lineGraph()
	_, err := MatchCoordinates(g, []float64{100}, []float64{0})
	assert.ErrorIs(t, err, ErrCorrespondence)
}

func TestMatchAgreesWithPrecomputed(t *testing.T) {
	g := lineGraph()
	sx := []float64{2, 0, 3}
	sy := []float64{0, 0, 0}
	corr, err := MatchCoordinates(g, sx, sy)
	assert.NoError(t, err)

	// a persisted copy of the same map validates and round-trips to
	// the identical correspondence
	saved := append([]int{}, corr...)
	assert.NoError(t, ValidatePrecomputed(saved, len(saved), len(sx)))
	assert.Equal(t, corr, saved)
}

func TestValidatePrecomputed(t *testing.T) {
	assert.NoError(t, ValidatePrecomputed([]int{0, 1, 2}, 3, 3))
	assert.ErrorIs(t, ValidatePrecomputed([]int{0, 1, 2}, 3, 5), ErrCorrespondence)
	assert.ErrorIs(t, ValidatePrecomputed([]int{0, 1}, 3, 3), ErrCorrespondence)
}
