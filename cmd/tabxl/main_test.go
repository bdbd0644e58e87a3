package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/hmtbr/tabxl/pkg/tabxl/table"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestReadTable(t *testing.T) {
	t.Parallel()

	path := writeFile(t, "in.csv", "region,one,two\nA,1,2\nB,3,x\n")
	tbl, err := readTable(path, 1, 1)
	require.NoError(t, err)

	assert.Equal(t, []table.Key{table.Scalar("one"), table.Scalar("two")}, tbl.Cols.Keys)
	assert.Equal(t, []table.Key{table.Scalar("A"), table.Scalar("B")}, tbl.Rows.Keys)
	assert.Equal(t, []any{"region"}, tbl.Rows.Names)
	assert.Equal(t, [][]any{{1.0, 2.0}, {3.0, "x"}}, tbl.Cells)
}

func TestReadTableMultiLevel(t *testing.T) {
	t.Parallel()

	path := writeFile(t, "in.csv", ",,2024,2024\nregion,city,q1,q2\nNL,Ams,1,\nNL,Rot,3,4\n")
	tbl, err := readTable(path, 2, 2)
	require.NoError(t, err)

	assert.Equal(t, []table.Key{
		table.Tuple("2024", "q1"),
		table.Tuple("2024", "q2"),
	}, tbl.Cols.Keys)
	assert.Equal(t, []table.Key{
		table.Tuple("NL", "Ams"),
		table.Tuple("NL", "Rot"),
	}, tbl.Rows.Keys)
	assert.Equal(t, []any{"region", "city"}, tbl.Rows.Names)
	assert.Equal(t, [][]any{{1.0, nil}, {3.0, 4.0}}, tbl.Cells)
}

func TestReadTableRejectsShape(t *testing.T) {
	t.Parallel()

	cases := map[string]struct {
		content    string
		indexCols  int
		headerRows int
	}{
		"no data rows":    {"a,b\n", 1, 1},
		"no data columns": {"a,b\n1,2\n", 2, 1},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			path := writeFile(t, "in.csv", tc.content)
			_, err := readTable(path, tc.indexCols, tc.headerRows)
			assert.Error(t, err)
		})
	}
}

func TestKeyPatternDecoding(t *testing.T) {
	t.Parallel()

	var cfg renderConfig
	doc := `
row_borders:
  - Total
  - [NL, Ams]
  - 2024
`
	require.NoError(t, yaml.Unmarshal([]byte(doc), &cfg))
	require.Len(t, cfg.RowBorders, 3)
	assert.True(t, cfg.RowBorders[0].key.Equal(table.Scalar("Total")))
	assert.True(t, cfg.RowBorders[1].key.Equal(table.Tuple("NL", "Ams")))
	assert.True(t, cfg.RowBorders[2].key.Equal(table.Scalar("2024")))

	var bad renderConfig
	err := yaml.Unmarshal([]byte("row_borders:\n  - {a: 1}\n"), &bad)
	assert.Error(t, err)
}

func TestLoadConfig(t *testing.T) {
	t.Parallel()

	t.Run("fills the config", func(t *testing.T) {
		path := writeFile(t, "render.yaml", `
sheet: results
group: 1
number_format: "0.00"
row_formats:
  - pattern: Total
    format: "0%"
freeze: true
`)
		cfg := renderConfig{IndexCols: 1, HeaderRows: 1}
		require.NoError(t, loadConfig(path, &cfg))

		assert.Equal(t, "results", cfg.Sheet)
		assert.Equal(t, 1, cfg.Group)
		assert.Equal(t, "0.00", cfg.NumberFormat)
		assert.True(t, cfg.Freeze)
		assert.Equal(t, 1, cfg.IndexCols)
		require.Len(t, cfg.RowFormats, 1)
		assert.Equal(t, "0%", cfg.RowFormats[0].Format)
		assert.True(t, cfg.RowFormats[0].Pattern.key.Equal(table.Scalar("Total")))
	})

	t.Run("rejects unknown fields", func(t *testing.T) {
		path := writeFile(t, "render.yaml", "bogus: 1\n")
		cfg := renderConfig{}
		assert.Error(t, loadConfig(path, &cfg))
	})

	t.Run("accepts an empty file", func(t *testing.T) {
		path := writeFile(t, "render.yaml", "")
		cfg := renderConfig{IndexCols: 1, HeaderRows: 1}
		require.NoError(t, loadConfig(path, &cfg))
		assert.Equal(t, 1, cfg.IndexCols)
	})
}

func TestBuildOptions(t *testing.T) {
	t.Parallel()

	lvl := 0
	cfg := renderConfig{
		Group:          2,
		NA:             "-",
		NumberFormat:   "0.0",
		MinBorderLevel: &lvl,
		RowFormats:     []formatRule{{Pattern: keyPattern{key: table.Scalar("x")}, Format: "0%"}},
		ColBorders:     []keyPattern{{key: table.Scalar("one")}},
	}
	opts := buildOptions(cfg, nil)

	assert.Equal(t, 2, opts.GroupLevels)
	assert.Equal(t, "-", opts.NA)
	assert.Equal(t, "0.0", opts.NumberFormat)
	assert.Equal(t, 0, opts.EffectiveMinBorderLevel())
	require.Len(t, opts.RowNumberFormats, 1)
	assert.Equal(t, "0%", opts.RowNumberFormats[0].Value)
	require.Len(t, opts.ColBorders, 1)
	assert.True(t, opts.ColBorders[0].Equal(table.Scalar("one")))
}

func TestParseValue(t *testing.T) {
	t.Parallel()

	assert.Nil(t, parseValue(""))
	assert.Equal(t, 1.5, parseValue("1.5"))
	assert.Equal(t, -3.0, parseValue("-3"))
	assert.Equal(t, "x1", parseValue("x1"))
}
