package readfiles

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/icetools/fieldlift/remap"
)

func writeFixture(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	assert.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestReadMesh(t *testing.T) {
	path := writeFixture(t, "mesh.txt", `% 5 cells in a line
NCELLS= 5
MAXEDGES= 2
0 0 1 2
1 0 2 1 3
2 0 2 2 4
3 0 2 3 5
4 0 1 4
`)
	g := ReadMesh(path, false)
	assert.Equal(t, 5, g.NCells())
	assert.Equal(t, []int{1, 2, 2, 2, 1}, g.NEdges)
	var buf []int
	assert.Equal(t, []int{1, 3}, g.Neighbors(2, buf))
	assert.Equal(t, 1., g.Distance(0, 1))
}

func TestReadMeshMalformed(t *testing.T) {
	path := writeFixture(t, "mesh.txt", `NCELLS= 2
MAXEDGES= 1
0 0 1 2
1 0 1
`)
	assert.Panics(t, func() { ReadMesh(path, false) })
}

func TestReadVertexMesh(t *testing.T) {
	// 2x2 quad grid, vertex ids 1-based in the file
	path := writeFixture(t, "vmesh.txt", `NCELLS= 4
NVERTS= 9
MAXEDGES= 4
0 0 4 1 2 5 4
1 0 4 2 3 6 5
0 1 4 4 5 8 7
1 1 4 5 6 9 8
`)
	g := ReadVertexMesh(path, false)
	assert.Equal(t, 4, g.NCells())
	assert.Equal(t, []int{2, 2, 2, 2}, g.NEdges)
	var buf []int
	assert.ElementsMatch(t, []int{1, 2}, g.Neighbors(0, buf))
}

func TestReadWriteFields(t *testing.T) {
	fs := remap.FieldSet{}
	thk := remap.NewField("thickness", 3, 1)
	for i, v := range []float64{1.5, 0, 2.25} {
		thk.Values.Set(i, 0, v)
	}
	tmp := remap.NewField("temperature", 3, 2)
	for i := 0; i < 3; i++ {
		tmp.Values.Set(i, 0, 250+float64(i))
		tmp.Values.Set(i, 1, 260+float64(i))
	}
	fs.Add(thk)
	fs.Add(tmp)

	path := filepath.Join(t.TempDir(), "fields.txt")
	WriteFields(path, fs, []string{"thickness", "temperature"})

	got := ReadFields(path, false)
	assert.Len(t, got, 2)
	assert.Equal(t, thk.Values.Data(), got["thickness"].Values.Data())
	assert.Equal(t, tmp.Values.Data(), got["temperature"].Values.Data())
	assert.Equal(t, 2, got["temperature"].NVert())
}

func TestIDMapRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "idmap.txt")
	corr := []int{4, 0, 2}
	WriteIDMap(path, corr)

	data, err := os.ReadFile(path)
	assert.NoError(t, err)
	// persisted 1-based with a leading count
	assert.Equal(t, "3\n5\n1\n3\n", string(data))

	ids, declared := ReadIDMap(path)
	assert.Equal(t, 3, declared)
	assert.Equal(t, corr, ids)
}

func TestReadSamples(t *testing.T) {
	spec, err := remap.LookupField("thickness")
	assert.NoError(t, err)
	path := writeFixture(t, "samples.csv", "x,y,value\n1,2,0.5\n3,4,0.25\n")

	s, err := ReadSamples(path, spec, 1, 1, false)
	assert.NoError(t, err)
	assert.Equal(t, 2, s.Count())
	assert.Equal(t, 1, s.Layers())
	// coordinates km -> m, thickness km -> m
	assert.Equal(t, []float64{1000, 3000}, s.X)
	assert.Equal(t, []float64{2000, 4000}, s.Y)
	assert.Equal(t, []float64{500, 250}, s.Data[0])
}

func TestReadSamplesLayered(t *testing.T) {
	spec, err := remap.LookupField("temperature")
	assert.NoError(t, err)
	// two samples, two layers, column-wise ordering with stride 2
	path := writeFixture(t, "samples.csv", "x,y,value\n1,0,250\n1,0,260\n2,0,251\n2,0,261\n")

	s, err := ReadSamples(path, spec, 1, 2, false)
	assert.NoError(t, err)
	assert.Equal(t, 2, s.Count())
	assert.Equal(t, 2, s.Layers())
	assert.Equal(t, []float64{1000, 2000}, s.X)
	assert.Equal(t, []float64{250, 251}, s.Data[0])
	assert.Equal(t, []float64{260, 261}, s.Data[1])
}
