package pattern_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hmtbr/tabxl/pkg/tabxl/pattern"
	"github.com/hmtbr/tabxl/pkg/tabxl/table"
)

func TestMatch(t *testing.T) {
	t.Parallel()
	tests := map[string]struct {
		key  table.Key
		pat  table.Key
		want bool
	}{
		"tuple exact":             {key: table.Tuple("EU", "NL"), pat: table.Tuple("EU", "NL"), want: true},
		"tuple other":             {key: table.Tuple("EU", "BE"), pat: table.Tuple("EU", "NL"), want: false},
		"tuple pattern vs scalar": {key: table.Scalar("EU"), pat: table.Tuple("EU"), want: false},
		"tuple prefix no match":   {key: table.Tuple("EU", "NL", "2024"), pat: table.Tuple("EU", "NL"), want: false},
		"scalar equality":         {key: table.Scalar("Total"), pat: table.Scalar("Total"), want: true},
		"scalar prefix":           {key: table.Scalar("EU-total"), pat: table.Scalar("EU"), want: true},
		"scalar prefix reversed":  {key: table.Scalar("EU"), pat: table.Scalar("EU-total"), want: false},
		"component equality":      {key: table.Tuple("EU", "NL"), pat: table.Scalar("NL"), want: true},
		"component prefix":        {key: table.Tuple("EU", "NL"), pat: table.Scalar("N"), want: true},
		"component no match":      {key: table.Tuple("EU", "NL"), pat: table.Scalar("US"), want: false},
		"numeric component":       {key: table.Tuple("EU", 2024), pat: table.Scalar(2024), want: true},
		"numeric type differs":    {key: table.Tuple("EU", 2024), pat: table.Scalar(2024.0), want: false},
		"non-string no prefix":    {key: table.Tuple("EU", 2024), pat: table.Scalar(20), want: false},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, pattern.Match(tt.key, tt.pat))
		})
	}
}

func TestMatchPrefixDisabled(t *testing.T) {
	t.Parallel()
	m := pattern.Matcher{Prefix: false}

	assert.False(t, m.Match(table.Tuple("EU", "NL"), table.Scalar("N")))
	assert.False(t, m.Match(table.Scalar("EU-total"), table.Scalar("EU")))
	assert.True(t, m.Match(table.Tuple("EU", "NL"), table.Scalar("NL")), "equality still matches")
	assert.True(t, m.Match(table.Scalar("Total"), table.Scalar("Total")))
}

func TestMatchZeroKeys(t *testing.T) {
	t.Parallel()
	assert.False(t, pattern.Match(table.Key{}, table.Scalar("x")))
	assert.False(t, pattern.Match(table.Scalar("x"), table.Key{}))
}

func TestFirst(t *testing.T) {
	t.Parallel()

	rules := []pattern.Rule[string]{
		{Pattern: table.Tuple("EU", "NL"), Value: "exact"},
		{Pattern: table.Scalar("EU"), Value: "component"},
		{Pattern: table.Scalar("Total"), Value: "total"},
	}

	got, ok := pattern.First(pattern.Default, table.Tuple("EU", "NL"), rules)
	require.True(t, ok)
	assert.Equal(t, "exact", got, "first matching rule wins")

	got, ok = pattern.First(pattern.Default, table.Tuple("EU", "BE"), rules)
	require.True(t, ok)
	assert.Equal(t, "component", got)

	_, ok = pattern.First(pattern.Default, table.Scalar("US"), rules)
	assert.False(t, ok)

	_, ok = pattern.First[string](pattern.Default, table.Scalar("anything"), nil)
	assert.False(t, ok)
}

func TestPositionMap(t *testing.T) {
	t.Parallel()

	keys := []table.Key{
		table.Tuple("EU", "NL"),
		table.Tuple("EU", "BE"),
		table.Tuple("US", "CA"),
	}
	rules := []pattern.Rule[string]{
		{Pattern: table.Scalar("NL"), Value: "#,##0"},
		{Pattern: table.Scalar("US"), Value: "0.00%"},
	}

	got := pattern.PositionMap(pattern.Default, keys, rules)
	require.Len(t, got, 3)
	require.NotNil(t, got[0])
	assert.Equal(t, "#,##0", *got[0])
	assert.Nil(t, got[1])
	require.NotNil(t, got[2])
	assert.Equal(t, "0.00%", *got[2])
}

func TestFlags(t *testing.T) {
	t.Parallel()

	keys := []table.Key{
		table.Scalar("alpha"),
		table.Scalar("beta"),
		table.Scalar("Total"),
	}
	got := pattern.Flags(pattern.Default, keys, []table.Key{table.Scalar("Total"), table.Scalar("al")})
	assert.Equal(t, []bool{true, false, true}, got)

	assert.Equal(t, []bool{false, false, false}, pattern.Flags(pattern.Default, keys, nil))
}
