/*
Copyright © 2020 NAME HERE <EMAIL ADDRESS>

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

	http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/
package cmd

import (
	"fmt"
	"io/ioutil"
	"os"
	"time"

	"github.com/pkg/profile"
	"github.com/spf13/cobra"

	"github.com/icetools/fieldlift/InputParameters"
	"github.com/icetools/fieldlift/mesh"
	"github.com/icetools/fieldlift/readfiles"
	"github.com/icetools/fieldlift/remap"
)

type ModelRemap struct {
	ParamsFile string
	Variable   string
	Method     string
	MaskScheme string
	Extrap     string
	SmoothIter int
	Graph      bool
	Profile    bool
	Delay      time.Duration
}

// RemapCmd represents the remap command
var RemapCmd = &cobra.Command{
	Use:   "remap",
	Short: "Transplant one field from source samples onto the target mesh",
	Long: `
Resolves the correspondence between source samples and target cells,
transplants the field, then extrapolates inactive cells across the
adjacency graph and smooths the result,

fieldlift remap -f params.yaml -v beta -k grd`,
	Run: func(cmd *cobra.Command, args []string) {
		mr := &ModelRemap{}
		mr.ParamsFile, _ = cmd.Flags().GetString("paramsFile")
		mr.Variable, _ = cmd.Flags().GetString("variable")
		mr.Method, _ = cmd.Flags().GetString("method")
		mr.MaskScheme, _ = cmd.Flags().GetString("mask")
		mr.Extrap, _ = cmd.Flags().GetString("extra")
		mr.SmoothIter, _ = cmd.Flags().GetInt("iter")
		mr.Graph, _ = cmd.Flags().GetBool("graph")
		mr.Profile, _ = cmd.Flags().GetBool("profile")
		dr, _ := cmd.Flags().GetInt("delay")
		mr.Delay = time.Duration(dr) * time.Millisecond
		rp := processInput(mr)
		RunRemap(mr, rp)
	},
}

func processInput(mr *ModelRemap) (rp *InputParameters.RemapParameters) {
	var (
		err error
	)
	if len(mr.ParamsFile) == 0 {
		err = fmt.Errorf("must supply a run parameters file (-f, --paramsFile) in YAML format")
		fmt.Printf("error: %s\n", err.Error())
		exampleFile := `
########################################
Title: "Antarctica beta"
Variable: beta
Method: coord        # id | coord
MaskScheme: grd      # grd | all
Extrapolation: min   # min | idw
SmoothIterations: 3
Ordering: 1
Stride: 11
MeshFile: target_mesh.txt
FieldsFile: target_fields.txt
SamplesFile: source_samples.csv
IDMapFile: source_to_target_id_map.txt
OutputFile: converted_fields.txt
########################################
`
		fmt.Printf("Example File:%s\n", exampleFile)
		os.Exit(1)
	}
	var data []byte
	if data, err = ioutil.ReadFile(mr.ParamsFile); err != nil {
		panic(err)
	}
	rp = &InputParameters.RemapParameters{}
	if err = rp.Parse(data); err != nil {
		panic(err)
	}
	// command line overrides
	if len(mr.Variable) != 0 {
		rp.Variable = mr.Variable
	}
	if len(mr.Method) != 0 {
		rp.Method = mr.Method
	}
	if len(mr.MaskScheme) != 0 {
		rp.MaskScheme = mr.MaskScheme
	}
	if len(mr.Extrap) != 0 {
		rp.Extrapolation = mr.Extrap
	}
	if mr.SmoothIter >= 0 {
		rp.SmoothIterations = mr.SmoothIter
	}
	rp.Print()
	return
}

func RunRemap(mr *ModelRemap, rp *InputParameters.RemapParameters) {
	if mr.Profile {
		defer profile.Start(profile.CPUProfile).Stop()
	}
	spec, err := remap.LookupField(rp.Variable)
	if err != nil {
		fmt.Printf("error: %s\n", err.Error())
		os.Exit(1)
	}

	var g *mesh.Graph
	if rp.VertexMesh {
		g = readfiles.ReadVertexMesh(rp.MeshFile, true)
	} else {
		g = readfiles.ReadMesh(rp.MeshFile, true)
	}
	fs := readfiles.ReadFields(rp.FieldsFile, true)
	samples, err := readfiles.ReadSamples(rp.SamplesFile, spec, rp.Ordering, rp.Stride, true)
	if err != nil {
		fmt.Printf("error: %s\n", err.Error())
		os.Exit(1)
	}

	opts := remap.Options{
		Variable:         rp.Variable,
		Method:           rp.Method,
		MaskScheme:       rp.MaskScheme,
		Extrapolation:    rp.Extrapolation,
		SmoothIterations: rp.SmoothIterations,
	}
	if rp.Method == "id" {
		opts.Precomputed, opts.PrecomputedCount = readfiles.ReadIDMap(rp.IDMapFile)
	}

	res, err := remap.Run(g, fs, samples, opts)
	if err != nil {
		fmt.Printf("error: %s\n", err.Error())
		os.Exit(1)
	}
	fmt.Printf("Successful in converting %s from source samples!\n", rp.Variable)

	if rp.Method == "coord" && len(rp.IDMapFile) != 0 {
		readfiles.WriteIDMap(rp.IDMapFile, res.Map)
		fmt.Printf("Coordinate IDs written to %q. You can use this file with the \"id\" conversion method.\n",
			rp.IDMapFile)
	}

	if mr.Graph {
		mesh.PlotMask(g, res.OriginalMask)
		time.Sleep(mr.Delay)
	}

	if len(rp.OutputFile) != 0 {
		names := []string{rp.Variable}
		if spec.CouplesBed {
			if _, ok := fs[remap.BedTopographyName]; ok {
				names = append(names, remap.BedTopographyName)
			}
		}
		readfiles.WriteFields(rp.OutputFile, fs, names)
		fmt.Printf("Converted fields written to %q\n", rp.OutputFile)
	}
	fmt.Printf("\nExtrapolation and smoothing finished!\n")
}

func init() {
	rootCmd.AddCommand(RemapCmd)
	RemapCmd.Flags().StringP("paramsFile", "f", "", "YAML file for run parameters like:\n\t- Variable\n\t- MaskScheme")
	RemapCmd.Flags().StringP("variable", "v", "", "target field to convert, overrides the parameters file")
	RemapCmd.Flags().StringP("method", "m", "", "conversion method: id or coord")
	RemapCmd.Flags().StringP("mask", "k", "", "masking scheme: all masks any ice, grd masks grounded cells")
	RemapCmd.Flags().StringP("extra", "x", "", "extrapolation scheme: idw (inverse distance weighting) or min (minimum of surrounding cells)")
	RemapCmd.Flags().IntP("iter", "i", -1, "maximum number for the recursive smoothing, larger means a more uniform field")
	RemapCmd.Flags().BoolP("graph", "g", false, "display the active/inactive cell mask")
	RemapCmd.Flags().IntP("delay", "d", 0, "milliseconds to keep the mask plot open")
	RemapCmd.Flags().Bool("profile", false, "write a CPU profile for the run")
}
