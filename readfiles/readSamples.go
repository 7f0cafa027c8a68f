package readfiles

import (
	"fmt"
	"os"

	"github.com/gocarina/gocsv"

	"github.com/icetools/fieldlift/remap"
)

// SampleRecord is one row of the source sample CSV: a sample point's
// coordinates (km) and its raw field value, in the source's flat
// storage order (all layers interleaved per the declared ordering).
type SampleRecord struct {
	X     float64 `csv:"x"`
	Y     float64 `csv:"y"`
	Value float64 `csv:"value"`
}

// ReadSamples ingests the source sample CSV for one field, applying
// the coordinate km -> m conversion and the field's unit scale to the
// raw values, then de-interleaves the flat arrays into per-layer
// slices according to the declared ordering scheme and stride.
func ReadSamples(filename string, spec remap.FieldSpec, ordering, stride int, verbose bool) (*remap.SampleSet, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("unable to open file %s: %w", filename, err)
	}
	defer file.Close()

	var records []*SampleRecord
	if err = gocsv.UnmarshalFile(file, &records); err != nil {
		return nil, fmt.Errorf("reading samples from %s: %w", filename, err)
	}
	if verbose {
		fmt.Printf("read %d raw samples for %s from %s\n", len(records), spec.SourceName, filename)
	}

	var (
		x    = make([]float64, len(records))
		y    = make([]float64, len(records))
		data = make([]float64, len(records))
	)
	for i, r := range records {
		x[i] = r.X * 1000.0 // source coordinates are stored in km
		y[i] = r.Y * 1000.0
		data[i] = r.Value * spec.UnitScale
	}
	return remap.NewSampleSet(x, y, data, ordering, stride)
}
