package remap

import (
	"github.com/icetools/fieldlift/utils"
)

// Field is one named per-cell variable of the target mesh. Values is
// nCells x nVert; nVert is 1 for scalar fields. Definedness is
// carried by the ActiveMask, not by the values themselves.
type Field struct {
	Name   string
	Values utils.Matrix
}

func NewField(name string, nCells, nVert int) *Field {
	return &Field{
		Name:   name,
		Values: utils.NewMatrix(nCells, nVert),
	}
}

func (f *Field) NCells() int {
	nr, _ := f.Values.Dims()
	return nr
}

func (f *Field) NVert() int {
	_, nc := f.Values.Dims()
	return nc
}

// FieldSet is the target mesh's field state, keyed by field name.
type FieldSet map[string]*Field

func (fs FieldSet) Add(f *Field) {
	fs[f.Name] = f
}

// SampleSet holds the source mesh's samples after ingestion: layer-0
// coordinates and per-layer value slices, both already unit-converted
// and de-interleaved from the source's flat storage order. Data is
// indexed [source layer][sample].
type SampleSet struct {
	X, Y []float64
	Data [][]float64
}

func (s *SampleSet) Count() int {
	return len(s.X)
}

func (s *SampleSet) Layers() int {
	return len(s.Data)
}

// NewSampleSet de-interleaves flat source arrays according to the
// declared ordering scheme. Ordering 1 stores samples column-wise
// (all layers of sample 0, then sample 1, ...; stride = layer count).
// Ordering 0 stores them layer-wise (all samples of layer 0, then
// layer 1, ...; stride = sample count per layer). Coordinates repeat
// per layer in the flat arrays; the layer-0 copy is kept.
func NewSampleSet(x, y, data []float64, ordering, stride int) (*SampleSet, error) {
	if len(data) != len(x) || len(x) != len(y) {
		return nil, configErrf("sample array lengths differ: x = %d, y = %d, data = %d",
			len(x), len(y), len(data))
	}
	if stride <= 0 || len(data)%stride != 0 {
		return nil, configErrf("stride %d does not divide sample count %d", stride, len(data))
	}
	s := &SampleSet{}
	switch ordering {
	case 1:
		layers := stride
		n := len(data) / layers
		s.X = make([]float64, n)
		s.Y = make([]float64, n)
		s.Data = make([][]float64, layers)
		for l := range s.Data {
			s.Data[l] = make([]float64, n)
		}
		for i := 0; i < n; i++ {
			s.X[i] = x[i*layers]
			s.Y[i] = y[i*layers]
			for l := 0; l < layers; l++ {
				s.Data[l][i] = data[i*layers+l]
			}
		}
	case 0:
		n := stride
		layers := len(data) / n
		s.X = append(s.X, x[:n]...)
		s.Y = append(s.Y, y[:n]...)
		s.Data = make([][]float64, layers)
		for l := 0; l < layers; l++ {
			s.Data[l] = append([]float64{}, data[l*n:(l+1)*n]...)
		}
	default:
		return nil, configErrf("invalid ordering %d, must be 0 or 1", ordering)
	}
	return s, nil
}
