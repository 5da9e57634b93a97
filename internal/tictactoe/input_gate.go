package tictactoe

import (
	"errors"
	"fmt"

	"github.com/rocketscienceinc/tictactoe-core/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-core/internal/entity"
)

var ErrNoGame = errors.New("input gate has no game")

// Outcome is what the presentation layer renders after a move attempt.
type Outcome struct {
	Applied bool           `json:"applied"`
	Cell    entity.Cell    `json:"cell,omitempty"`
	Player  *entity.Player `json:"player,omitempty"`
	Status  string         `json:"status"`
	Winner  *entity.Player `json:"winner,omitempty"`
	Line    []entity.Cell  `json:"line,omitempty"`
}

// InputGate checks raw cell input against a game before applying it.
type InputGate struct {
	game *entity.GameState
}

func NewInputGate(game *entity.GameState) *InputGate {
	return &InputGate{game: game}
}

func (that *InputGate) State() *entity.GameState {
	return that.game
}

// AttemptMove applies raw to the game if it is a legal move. A rejected attempt
// leaves the game untouched and returns an error wrapping apperror.ErrInvalidMove.
func (that *InputGate) AttemptMove(raw string) (Outcome, error) {
	if that.game == nil {
		return Outcome{}, ErrNoGame
	}

	rejected := Outcome{Status: that.game.Status()}

	cell, err := validateMove(that.game, raw)
	if err != nil {
		return rejected, fmt.Errorf("move rejected: %w", err)
	}

	player := that.game.CurrentTurnPlayer()
	if err = that.game.ApplyMove(cell); err != nil {
		return rejected, fmt.Errorf("move rejected: %w", err)
	}

	return describe(that.game, cell, player), nil
}

// Reset starts a new round on the same game.
func (that *InputGate) Reset() error {
	if that.game == nil {
		return ErrNoGame
	}

	that.game.Reset()

	return nil
}

// validateMove - checks if the move is valid.
func validateMove(game *entity.GameState, raw string) (entity.Cell, error) {
	cell, err := entity.ParseCell(raw)
	if err != nil {
		return "", err
	}

	if game.IsFinished() {
		return "", apperror.ErrGameFinished
	}

	if owner := game.OwnerOf(cell); owner != nil {
		return "", fmt.Errorf("%w: %s taken by %s", apperror.ErrCellOccupied, cell, owner.Symbol)
	}

	return cell, nil
}

func describe(game *entity.GameState, cell entity.Cell, player *entity.Player) Outcome {
	outcome := Outcome{
		Applied: true,
		Cell:    cell,
		Player:  player,
		Status:  game.Status(),
	}

	if line, ok := game.WinningLine(); ok {
		outcome.Winner = game.Winner()
		outcome.Line = line[:]
	}

	return outcome
}
