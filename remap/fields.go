package remap

// Physical constants for the grounded-ice mask predicate.
const (
	IceDensity   = 910.0
	OceanDensity = 1028.0
)

const (
	secondsPerYear = 60. * 60. * 24 * 365
	kmToM          = 1000.0
)

type Layering uint8

const (
	// LayerNone: scalar field, no vertical dimension.
	LayerNone Layering = iota
	// LayerInterfaces: layered on vertical interfaces; source layer
	// order is inverted relative to the target.
	LayerInterfaces
	// LayerLayers: layered on vertical layers; inverted like
	// LayerInterfaces but offset by one, which keeps the source's
	// basal sublevel (held separately on the target) out of the
	// generic per-layer copy.
	LayerLayers
)

type SmoothRule uint8

const (
	SmoothNone SmoothRule = iota
	SmoothMin
	SmoothIDW
)

// FieldSpec carries everything the pipeline needs to know about one
// supported target field: where its samples come from, how raw sample
// values are rescaled on ingestion, the write-time transform, and the
// extrapolation/smoothing behavior keyed to it.
type FieldSpec struct {
	Name       string
	SourceName string  // sample variable name on the source side
	UnitScale  float64 // applied to raw sample values on ingestion
	ExpEncoded bool    // samples are log-encoded: exp() * 1000 at write time
	CouplesBed bool    // writing preserves thickness + bedTopography
	SkipExtrap bool    // transplanted values stand as final
	Layering   Layering
	Smoothing  SmoothRule
}

// The closed set of supported fields. Anything else is a
// configuration error, not a silent copy.
var fieldRegistry = map[string]FieldSpec{
	"beta": {
		Name:       "beta",
		SourceName: "basal_friction",
		UnitScale:  1,
		ExpEncoded: true,
		Smoothing:  SmoothMin,
	},
	"thickness": {
		Name:       "thickness",
		SourceName: "ice_thickness",
		UnitScale:  kmToM,
		CouplesBed: true,
		SkipExtrap: true,
	},
	"stiffnessFactor": {
		Name:       "stiffnessFactor",
		SourceName: "stiffening_factor",
		UnitScale:  1,
		Smoothing:  SmoothIDW,
	},
	"basalTemperature": {
		Name:       "basalTemperature",
		SourceName: "temperature",
		UnitScale:  1,
	},
	"temperature": {
		Name:       "temperature",
		SourceName: "temperature",
		UnitScale:  1,
		Layering:   LayerLayers,
	},
	"surfaceTemperature": {
		Name:       "surfaceTemperature",
		SourceName: "surface_air_temperature",
		UnitScale:  1,
	},
	"uReconstructX": {
		Name:       "uReconstructX",
		SourceName: "solution_1",
		UnitScale:  1 / secondsPerYear,
		Layering:   LayerInterfaces,
	},
	"uReconstructY": {
		Name:       "uReconstructY",
		SourceName: "solution_2",
		UnitScale:  1 / secondsPerYear,
		Layering:   LayerInterfaces,
	},
}

// LookupField resolves a target field name against the registry.
func LookupField(name string) (FieldSpec, error) {
	spec, ok := fieldRegistry[name]
	if !ok {
		return FieldSpec{}, configErrf("unsupported field %q", name)
	}
	return spec, nil
}
