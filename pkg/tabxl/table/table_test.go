package table_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hmtbr/tabxl/pkg/tabxl/table"
)

func TestAxisValidate(t *testing.T) {
	t.Parallel()
	tests := map[string]struct {
		axis    table.Axis
		wantErr require.ErrorAssertionFunc
	}{
		"empty": {axis: table.Axis{}, wantErr: require.NoError},
		"scalars": {
			axis:    table.ScalarAxis("a", "b", "c"),
			wantErr: require.NoError,
		},
		"uniform tuples": {
			axis:    table.Axis{Keys: []table.Key{table.Tuple("A", "x"), table.Tuple("B", "y")}},
			wantErr: require.NoError,
		},
		"mixed shapes": {
			axis:    table.Axis{Keys: []table.Key{table.Scalar("a"), table.Tuple("A", "x")}},
			wantErr: require.Error,
		},
		"ragged tuples": {
			axis:    table.Axis{Keys: []table.Key{table.Tuple("A", "x"), table.Tuple("B")}},
			wantErr: require.Error,
		},
		"name count mismatch": {
			axis:    table.Axis{Keys: []table.Key{table.Tuple("A", "x")}, Names: []any{"only"}},
			wantErr: require.Error,
		},
		"names match levels": {
			axis:    table.Axis{Keys: []table.Key{table.Tuple("A", "x")}, Names: []any{"outer", "inner"}},
			wantErr: require.NoError,
		},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			err := tt.axis.Validate()
			tt.wantErr(t, err)
			if err != nil {
				assert.ErrorIs(t, err, table.ErrInvalidHierarchy)
			}
		})
	}
}

func TestAxisAccessors(t *testing.T) {
	t.Parallel()

	a := table.Axis{
		Keys:  []table.Key{table.Tuple("A", "x"), table.Tuple("A", "y")},
		Names: []any{"region", nil},
	}
	assert.Equal(t, 2, a.Len())
	assert.Equal(t, 2, a.Levels())
	assert.True(t, a.HasNames())
	assert.Equal(t, "region", a.Name(0))
	assert.Nil(t, a.Name(1))

	unnamed := table.ScalarAxis("a", "b")
	assert.Equal(t, 1, unnamed.Levels())
	assert.False(t, unnamed.HasNames())

	blankNames := table.Axis{Keys: []table.Key{table.Scalar("a")}, Names: []any{nil}}
	assert.False(t, blankNames.HasNames())
}

func TestNewTable(t *testing.T) {
	t.Parallel()

	rows := table.ScalarAxis("r1", "r2")
	cols := table.ScalarAxis("c1", "c2", "c3")

	got, err := table.New(rows, cols, [][]any{{1, 2, 3}, {4, 5, 6}})
	require.NoError(t, err)
	assert.Equal(t, 5, got.Cell(1, 1))

	_, err = table.New(rows, cols, [][]any{{1, 2, 3}})
	assert.ErrorIs(t, err, table.ErrDimensionMismatch)

	_, err = table.New(rows, cols, [][]any{{1, 2, 3}, {4, 5}})
	assert.ErrorIs(t, err, table.ErrDimensionMismatch)

	bad := table.Axis{Keys: []table.Key{table.Scalar("a"), table.Tuple("A", "x")}}
	_, err = table.New(bad, cols, nil)
	assert.ErrorIs(t, err, table.ErrInvalidHierarchy)
}
