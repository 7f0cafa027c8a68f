package remap

import (
	"math"
)

// BedTopographyName is the co-located bedrock elevation field adjusted
// alongside thickness writes when present.
const BedTopographyName = "bedTopography"

// Transplant writes source sample values into the target field at the
// corresponded cells, one vertical layer at a time. The source stores
// layers in the opposite order to the target, so the source layer
// index is inverted per the field's layering kind. Write-time
// transforms: log-encoded fields are exponentiated and rescaled;
// thickness writes preserve the surface elevation (thickness +
// bedTopography) by moving the bedrock, per corresponded cell, before
// thickness itself is overwritten.
func Transplant(fs FieldSet, spec FieldSpec, corr []int, samples *SampleSet) error {
	fld, ok := fs[spec.Name]
	if !ok {
		return configErrf("field %q absent from target field set", spec.Name)
	}
	if samples.Count() != len(corr) {
		return correspondenceErrf("correspondence covers %d samples, input has %d",
			len(corr), samples.Count())
	}
	nVert := fld.NVert()
	for n := 0; n < nVert; n++ {
		var l int
		if spec.Layering == LayerLayers {
			l = nVert - n
		} else {
			l = nVert - n - 1
		}
		if l >= samples.Layers() {
			return configErrf("field %q needs source layer %d, source has %d layers",
				spec.Name, l, samples.Layers())
		}
		vals := samples.Data[l]

		if spec.CouplesBed {
			if bed, haveBed := fs[BedTopographyName]; haveBed {
				for s, c := range corr {
					surfaceOrig := fld.Values.At(c, n) + bed.Values.At(c, n)
					bed.Values.Set(c, n, surfaceOrig-vals[s])
				}
			}
		}
		for s, c := range corr {
			v := vals[s]
			if spec.ExpEncoded {
				v = math.Exp(v) * 1000.0
			}
			fld.Values.Set(c, n, v)
		}
	}
	return nil
}
