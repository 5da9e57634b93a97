package entity

import (
	"encoding/json"
	"testing"

	"github.com/rocketscienceinc/tictactoe-core/internal/apperror"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCell(t *testing.T) {
	t.Run("Accepts every board label", func(t *testing.T) {
		for _, cell := range Cells {
			parsed, err := ParseCell(string(cell))

			require.NoError(t, err)
			assert.Equal(t, cell, parsed)
		}
	})

	t.Run("Normalizes case and spaces", func(t *testing.T) {
		parsed, err := ParseCell(" B3 ")

		require.NoError(t, err)
		assert.Equal(t, B3, parsed)
	})

	t.Run("Rejects labels outside the board", func(t *testing.T) {
		for _, raw := range []string{"", "a", "a0", "a4", "d1", "1a", "a11", "TD"} {
			_, err := ParseCell(raw)

			assert.ErrorIs(t, err, apperror.ErrInvalidCell, raw)
			assert.ErrorIs(t, err, apperror.ErrInvalidMove, raw)
		}
	})
}

func TestCellSet(t *testing.T) {
	t.Run("Holds unique cells in board order", func(t *testing.T) {
		// Given: cells added out of order, one of them twice
		var set CellSet
		set = set.With(C3).With(A1).With(B2).With(A1)

		// Then: each cell is counted once and listed in board order
		assert.Equal(t, 3, set.Len())
		assert.Equal(t, []Cell{A1, B2, C3}, set.Cells())
		assert.True(t, set.Has(B2))
		assert.False(t, set.Has(B1))
	})

	t.Run("Ignores invalid cells", func(t *testing.T) {
		var set CellSet

		assert.Equal(t, CellSet(0), set.With("x9"))
		assert.False(t, set.Has("x9"))
	})

	t.Run("Rejects duplicate labels on decode", func(t *testing.T) {
		var set CellSet
		err := json.Unmarshal([]byte(`["a1","A1"]`), &set)

		require.ErrorIs(t, err, apperror.ErrCorruptState)
	})

	t.Run("Every line has three distinct cells", func(t *testing.T) {
		for _, line := range Lines {
			var set CellSet
			for _, cell := range line {
				set = set.With(cell)
			}

			assert.Equal(t, 3, set.Len())
		}
	})
}
