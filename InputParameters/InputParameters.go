package InputParameters

import (
	"fmt"

	"github.com/ghodss/yaml"
)

// Parameters obtained from the YAML input file
type RemapParameters struct {
	Title            string `yaml:"Title"`
	Variable         string `yaml:"Variable"`         // target field to convert
	Method           string `yaml:"Method"`           // id | coord
	MaskScheme       string `yaml:"MaskScheme"`       // grd | all
	Extrapolation    string `yaml:"Extrapolation"`    // min | idw
	SmoothIterations int    `yaml:"SmoothIterations"` // 0 disables smoothing
	Ordering         int    `yaml:"Ordering"`         // 1 column-wise, 0 layer-wise
	Stride           int    `yaml:"Stride"`           // layer count (ordering 1) or per-layer sample count (ordering 0)
	MeshFile         string `yaml:"MeshFile"`
	VertexMesh       bool   `yaml:"VertexMesh"` // mesh file carries vertex tables, derive adjacency
	FieldsFile       string `yaml:"FieldsFile"`
	SamplesFile      string `yaml:"SamplesFile"`
	IDMapFile        string `yaml:"IDMapFile"`
	OutputFile       string `yaml:"OutputFile"`
}

func (rp *RemapParameters) Parse(data []byte) error {
	return yaml.Unmarshal(data, rp)
}

func (rp *RemapParameters) Print() {
	fmt.Printf("\"%s\"\t\t= Title\n", rp.Title)
	fmt.Printf("[%s]\t\t\t= Variable\n", rp.Variable)
	fmt.Printf("[%s]\t\t\t= Method\n", rp.Method)
	fmt.Printf("[%s]\t\t\t= Mask Scheme\n", rp.MaskScheme)
	fmt.Printf("[%s]\t\t\t= Extrapolation\n", rp.Extrapolation)
	fmt.Printf("[%d]\t\t\t\t= Smoothing Iterations\n", rp.SmoothIterations)
	fmt.Printf("[%d]\t\t\t\t= Ordering\n", rp.Ordering)
	fmt.Printf("[%d]\t\t\t\t= Stride\n", rp.Stride)
	fmt.Printf("\"%s\"\t\t= Mesh File\n", rp.MeshFile)
	fmt.Printf("\"%s\"\t\t= Fields File\n", rp.FieldsFile)
	fmt.Printf("\"%s\"\t\t= Samples File\n", rp.SamplesFile)
}
