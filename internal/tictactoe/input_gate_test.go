package tictactoe

import (
	"testing"

	"github.com/rocketscienceinc/tictactoe-core/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-core/internal/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newGate(t *testing.T) *InputGate {
	t.Helper()

	game, err := entity.NewGameState("123", entity.NewPlayer("Yusuf", "X"), entity.NewPlayer("Subastian", "O"))
	require.NoError(t, err)

	return NewInputGate(game)
}

func attemptAll(t *testing.T, gate *InputGate, cells ...string) Outcome {
	t.Helper()

	var outcome Outcome
	for _, cell := range cells {
		var err error
		outcome, err = gate.AttemptMove(cell)
		require.NoError(t, err)
	}

	return outcome
}

func TestInputGate_AttemptMove(t *testing.T) {
	t.Run("AttemptMove", func(t *testing.T) {
		// Given: a new game
		gate := newGate(t)

		// When: player X clicks b2
		outcome, err := gate.AttemptMove("b2")
		require.NoError(t, err)

		// Then: the move is applied and the game continues
		assert.True(t, outcome.Applied)
		assert.Equal(t, entity.B2, outcome.Cell)
		assert.Equal(t, "X", outcome.Player.Symbol)
		assert.Equal(t, entity.StatusOngoing, outcome.Status)
		assert.Nil(t, outcome.Winner)
		assert.Equal(t, "O", gate.State().CurrentTurnPlayer().Symbol)
	})

	t.Run("Error on cell already occupied", func(t *testing.T) {
		// Given: a game where X holds a1
		gate := newGate(t)
		attemptAll(t, gate, "a1")

		// When: O clicks a1
		outcome, err := gate.AttemptMove("a1")

		// Then: the move is rejected and the game state is unchanged
		require.ErrorIs(t, err, apperror.ErrCellOccupied)
		require.ErrorIs(t, err, apperror.ErrInvalidMove)
		assert.False(t, outcome.Applied)
		assert.Equal(t, entity.StatusOngoing, outcome.Status)
		assert.Equal(t, 1, gate.State().MovesMade())
		assert.Equal(t, "O", gate.State().CurrentTurnPlayer().Symbol)
	})

	t.Run("Invalid Cell", func(t *testing.T) {
		// Given: a new game
		gate := newGate(t)

		// When: the click carries an identifier outside the board
		outcome, err := gate.AttemptMove("d7")

		// Then: ErrInvalidCell is returned
		require.ErrorIs(t, err, apperror.ErrInvalidCell)
		assert.False(t, outcome.Applied)
		assert.Equal(t, 0, gate.State().MovesMade())
	})

	t.Run("Move After Game Won", func(t *testing.T) {
		// Given: X:a1, O:b1, X:a2, O:b2, X:a3
		gate := newGate(t)
		outcome := attemptAll(t, gate, "a1", "b1", "a2", "b2", "a3")

		// Then: the last move wins the game for X
		assert.True(t, outcome.Applied)
		assert.Equal(t, entity.StatusWon, outcome.Status)
		require.NotNil(t, outcome.Winner)
		assert.Equal(t, "Yusuf", outcome.Winner.Name)
		assert.Equal(t, []entity.Cell{entity.A1, entity.A2, entity.A3}, outcome.Line)

		// When: O clicks a free cell after the win
		outcome, err := gate.AttemptMove("c3")

		// Then: ErrGameFinished is returned
		require.ErrorIs(t, err, apperror.ErrGameFinished)
		assert.False(t, outcome.Applied)
		assert.Equal(t, entity.StatusWon, outcome.Status)
		assert.Equal(t, 5, gate.State().MovesMade())
	})

	t.Run("Move After Draw", func(t *testing.T) {
		// Given: a board filled without a line
		gate := newGate(t)
		outcome := attemptAll(t, gate, "a1", "a2", "a3", "b2", "b1", "b3", "c2", "c1", "c3")

		// Then: the ninth move ends in a draw
		assert.Equal(t, entity.StatusDraw, outcome.Status)
		assert.Nil(t, outcome.Winner)

		// When: another click arrives
		outcome, err := gate.AttemptMove("a1")

		// Then: it is rejected as finished, not as occupied
		require.ErrorIs(t, err, apperror.ErrGameFinished)
		assert.Equal(t, entity.StatusDraw, outcome.Status)
	})
}

func TestInputGate_Reset(t *testing.T) {
	// Given: a won game
	gate := newGate(t)
	attemptAll(t, gate, "a1", "b1", "a2", "b2", "a3")

	// When: the round is reset
	require.NoError(t, gate.Reset())

	// Then: moves are accepted again, starting with X
	outcome, err := gate.AttemptMove("a1")
	require.NoError(t, err)
	assert.Equal(t, "X", outcome.Player.Symbol)
	assert.Equal(t, 1, gate.State().MovesMade())
}

func TestInputGate_NoGame(t *testing.T) {
	gate := NewInputGate(nil)

	_, err := gate.AttemptMove("a1")
	require.ErrorIs(t, err, ErrNoGame)
	require.ErrorIs(t, gate.Reset(), ErrNoGame)
}
