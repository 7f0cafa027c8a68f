package remap

// BuildMask derives the boolean active mask over all target cells
// from the current field state. Scheme "grd" marks grounded cells:
// thickness*iceDensity/oceanDensity + bedrock > 0 (flotation
// criterion). Scheme "all" marks any cell carrying ice: thickness >
// 0. bedrock may be nil, which reads as zero everywhere.
func BuildMask(scheme string, thickness, bedrock []float64) ([]bool, error) {
	mask := make([]bool, len(thickness))
	switch scheme {
	case "grd":
		for i, h := range thickness {
			var bed float64
			if bedrock != nil {
				bed = bedrock[i]
			}
			mask[i] = h*IceDensity/OceanDensity+bed > 0.0
		}
	case "all":
		for i, h := range thickness {
			mask[i] = h > 0.0
		}
	default:
		return nil, configErrf("unsupported mask scheme %q, must be grd or all", scheme)
	}
	return mask, nil
}
