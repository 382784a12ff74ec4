package dataset_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/summit/dataset"
)

func TestParseCategory_CaseInsensitive(t *testing.T) {
	for in, want := range map[string]dataset.Category{
		"CASSETTE":   dataset.Cassette,
		"completion": dataset.Completion,
		" GemHeart ": dataset.GemHeart,
		"strawBERRY": dataset.Strawberry,
	} {
		got, err := dataset.ParseCategory(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	_, err := dataset.ParseCategory("golden")
	assert.ErrorIs(t, err, dataset.ErrUnknownType)
}

func TestLoadCSV_ColumnOrderAndExtras(t *testing.T) {
	in := "side,level,type,id,name,notes\n" +
		"1,2,cassette,10,Level 2 B-Side Thing,ignored\n"
	rows, err := dataset.LoadCSV(strings.NewReader(in))
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, dataset.Row{
		Name: "Level 2 B-Side Thing", ID: 10, Category: dataset.Cassette, Level: 2, Side: 1,
	}, rows[0])
}

func TestLoadCSV_Failures(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want error
	}{
		{"empty", "", dataset.ErrMissingColumn},
		{"header only", "name,id,type,level,side\n", dataset.ErrMalformedRow},
		{"missing column", "name,id,type,level\nA,1,cassette,1\n", dataset.ErrMissingColumn},
		{"unknown type", "name,id,type,level,side\nA,1,golden,1,0\n", dataset.ErrUnknownType},
		{"bad id", "name,id,type,level,side\nA,x,cassette,1,0\n", dataset.ErrMalformedRow},
		{"bad side", "name,id,type,level,side\nA,1,cassette,1,3\n", dataset.ErrMalformedRow},
		{"zero level", "name,id,type,level,side\nA,1,cassette,0,0\n", dataset.ErrMalformedRow},
		{"empty name", "name,id,type,level,side\n ,1,cassette,1,0\n", dataset.ErrMalformedRow},
		{"short record", "name,id,type,level,side\nA,1,cassette\n", dataset.ErrMalformedRow},
		{"duplicate name", "name,id,type,level,side\nA,1,cassette,1,0\nA,2,cassette,1,0\n", dataset.ErrDuplicate},
		{"duplicate id", "name,id,type,level,side\nA,1,cassette,1,0\nB,1,cassette,1,0\n", dataset.ErrDuplicate},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rows, err := dataset.LoadCSV(strings.NewReader(tc.in))
			assert.Nil(t, rows, "no partial load")
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

func TestLoadJSON(t *testing.T) {
	in := `[{"name":"Level 1 A-Side Complete","id":5,"type":"COMPLETION","level":1,"side":0},
	        {"name":"Level 1 A-Side Strawberry 1","id":6,"type":"Strawberry","level":1,"side":0}]`
	rows, err := dataset.LoadJSON(strings.NewReader(in))
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, dataset.Strawberry, rows[1].Category)

	_, err = dataset.LoadJSON(strings.NewReader(`[{"name":"A","id":1,"type":"cassette","level":1}]`))
	assert.ErrorIs(t, err, dataset.ErrMissingColumn)

	_, err = dataset.LoadJSON(strings.NewReader(`{"name":"A"}`))
	assert.ErrorIs(t, err, dataset.ErrMalformedRow)

	rows, err = dataset.LoadJSON(strings.NewReader(`[]`))
	assert.Nil(t, rows)
	assert.ErrorIs(t, err, dataset.ErrMalformedRow)
}

func TestLoadTopology(t *testing.T) {
	in := `
victory_level: 9
heart_gate_level: 8
levels:
  - {level: 1, sides: 3}
  - {level: 8, sides: 3}
  - {level: 9, sides: 1}
`
	topo, err := dataset.LoadTopology(strings.NewReader(in))
	require.NoError(t, err)
	assert.Equal(t, 3, topo.SideCount(8))
	assert.Equal(t, 0, topo.SideCount(2))
	assert.Equal(t, 1, topo.Previous(8))
	assert.Equal(t, 0, topo.Previous(1))
	assert.True(t, topo.HasSide(9, 0))
	assert.False(t, topo.HasSide(9, 1))

	for name, bad := range map[string]string{
		"unordered":     "victory_level: 1\nlevels: [{level: 2, sides: 1}, {level: 1, sides: 1}]\n",
		"too many":      "victory_level: 1\nlevels: [{level: 1, sides: 4}]\n",
		"no victory":    "victory_level: 5\nlevels: [{level: 1, sides: 1}]\n",
		"unknown field": "victory: 1\nlevels: [{level: 1, sides: 1}]\n",
		"empty":         "victory_level: 1\n",
	} {
		_, err := dataset.LoadTopology(strings.NewReader(bad))
		assert.ErrorIs(t, err, dataset.ErrBadTopology, name)
	}
}

func TestDefault(t *testing.T) {
	d, err := dataset.Default()
	require.NoError(t, err)
	require.NoError(t, d.Validate())

	assert.Len(t, d.Rows, 233)
	assert.Equal(t, 10, d.Topology.VictoryLevel)
	assert.Equal(t, 9, d.Topology.HeartGateLevel)
	assert.Equal(t, 1, d.Topology.SideCount(8))
	assert.Equal(t, 3, d.Topology.SideCount(9))

	counts := map[dataset.Category]int{}
	for _, row := range d.Rows {
		counts[row.Category]++
	}
	assert.Equal(t, 175, counts[dataset.Strawberry])
	assert.Equal(t, 8, counts[dataset.Cassette])
	assert.Equal(t, 24, counts[dataset.GemHeart])
	assert.Equal(t, 26, counts[dataset.Completion])

	row, ok := d.Get("Level 10 A-Side Complete")
	require.True(t, ok)
	assert.Equal(t, dataset.Completion, row.Category)

	// callers own their copy
	d.Rows[0].Name = "mutated"
	again, err := dataset.Default()
	require.NoError(t, err)
	assert.Equal(t, "Level 1 A-Side Complete", again.Rows[0].Name)
}

func TestDatasetValidate_RowOutsideTopology(t *testing.T) {
	d, err := dataset.Default()
	require.NoError(t, err)
	d.Rows = append(d.Rows, dataset.Row{Name: "Level 8 B-Side Complete", ID: 1, Category: dataset.Completion, Level: 8, Side: 1})
	assert.ErrorIs(t, d.Validate(), dataset.ErrMalformedRow)
}

func TestSideLetter(t *testing.T) {
	assert.Equal(t, "A", dataset.SideLetter(0))
	assert.Equal(t, "C", dataset.SideLetter(2))
	assert.Equal(t, "", dataset.SideLetter(3))
}

func TestChecksum(t *testing.T) {
	a, err := dataset.Default()
	require.NoError(t, err)
	b, err := dataset.Default()
	require.NoError(t, err)
	assert.Equal(t, a.Checksum(), b.Checksum())

	b.Rows[5].ID++
	assert.NotEqual(t, a.Checksum(), b.Checksum())

	c, err := dataset.Default()
	require.NoError(t, err)
	c.Topology.Levels[7].Sides = 3
	assert.NotEqual(t, a.Checksum(), c.Checksum())
}
