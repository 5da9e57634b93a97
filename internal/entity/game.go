package entity

import (
	"encoding/json"
	"fmt"

	"github.com/rocketscienceinc/tictactoe-core/internal/apperror"
)

const (
	StatusOngoing = "ongoing"
	StatusWon     = "won"
	StatusDraw    = "draw"
)

const boardSize = len(Cells)

// GameState holds both players of one game and the index of the player to move.
// It is not safe for concurrent use.
type GameState struct {
	ID string

	players [2]*Player
	turn    int
}

// NewGameState creates a game in which first moves first.
func NewGameState(id string, first, second *Player) (*GameState, error) {
	if first == nil || second == nil {
		return nil, fmt.Errorf("%w: two players are required", apperror.ErrInvalidPlayers)
	}

	if first.Name == "" || second.Name == "" {
		return nil, fmt.Errorf("%w: player name is empty", apperror.ErrInvalidPlayers)
	}

	if first.Symbol == "" || second.Symbol == "" || first.Symbol == second.Symbol {
		return nil, fmt.Errorf("%w: symbols %q and %q must be distinct", apperror.ErrInvalidPlayers, first.Symbol, second.Symbol)
	}

	return &GameState{
		ID:      id,
		players: [2]*Player{first, second},
	}, nil
}

func (that *GameState) Players() [2]*Player {
	return that.players
}

// CurrentTurnPlayer returns the player who makes the next move.
func (that *GameState) CurrentTurnPlayer() *Player {
	return that.players[that.turn]
}

// ApplyMove puts cell into the move set of the current player and passes the turn.
func (that *GameState) ApplyMove(cell Cell) error {
	if !cell.Valid() {
		return fmt.Errorf("%w: %q", apperror.ErrInvalidCell, string(cell))
	}

	if that.IsFinished() {
		return apperror.ErrGameFinished
	}

	if owner := that.OwnerOf(cell); owner != nil {
		return fmt.Errorf("%w: %s taken by %s", apperror.ErrCellOccupied, cell, owner.Symbol)
	}

	player := that.CurrentTurnPlayer()
	player.Moves = player.Moves.With(cell)
	that.turn = 1 - that.turn

	return nil
}

// HasWinner counts, per line, the cells held by each player; a count of 3 is a win.
func (that *GameState) HasWinner() bool {
	for _, line := range Lines {
		for _, player := range that.players {
			if player.Moves.countIn(line) == len(line) {
				return true
			}
		}
	}

	return false
}

// Winner returns the player holding a complete line, or nil.
func (that *GameState) Winner() *Player {
	for _, player := range that.players {
		if _, ok := player.completedLine(); ok {
			return player
		}
	}

	return nil
}

// WinningLine returns the completed line, if any.
func (that *GameState) WinningLine() ([3]Cell, bool) {
	if winner := that.Winner(); winner != nil {
		return winner.completedLine()
	}

	return [3]Cell{}, false
}

func (that *GameState) IsDraw() bool {
	return that.MovesMade() == boardSize && !that.HasWinner()
}

func (that *GameState) IsFinished() bool {
	return that.HasWinner() || that.MovesMade() == boardSize
}

func (that *GameState) Status() string {
	switch {
	case that.HasWinner():
		return StatusWon
	case that.IsDraw():
		return StatusDraw
	default:
		return StatusOngoing
	}
}

func (that *GameState) MovesMade() int {
	return that.players[0].Moves.Len() + that.players[1].Moves.Len()
}

// OwnerOf returns the player holding cell, or nil.
func (that *GameState) OwnerOf(cell Cell) *Player {
	for _, player := range that.players {
		if player.Owns(cell) {
			return player
		}
	}

	return nil
}

// Reset clears both move sets and gives the first move back to the first player.
func (that *GameState) Reset() {
	for _, player := range that.players {
		player.Moves = 0
	}

	that.turn = 0
}

type gameSnapshot struct {
	ID      string    `json:"id"`
	Players []*Player `json:"players"`
	Turn    int       `json:"turn"`
	Status  string    `json:"status"`
	Winner  *string   `json:"winner"`
}

func (that *GameState) MarshalJSON() ([]byte, error) {
	snapshot := gameSnapshot{
		ID:      that.ID,
		Players: that.players[:],
		Turn:    that.turn,
		Status:  that.Status(),
	}

	if winner := that.Winner(); winner != nil {
		snapshot.Winner = &winner.Symbol
	}

	return json.Marshal(snapshot)
}

// UnmarshalJSON restores a game and re-checks every board invariant.
func (that *GameState) UnmarshalJSON(data []byte) error {
	var snapshot gameSnapshot
	if err := json.Unmarshal(data, &snapshot); err != nil {
		return fmt.Errorf("failed to unmarshal game: %w", err)
	}

	if len(snapshot.Players) != len(that.players) {
		return fmt.Errorf("%w: expected 2 players, got %d", apperror.ErrCorruptState, len(snapshot.Players))
	}

	restored, err := NewGameState(snapshot.ID, snapshot.Players[0], snapshot.Players[1])
	if err != nil {
		return fmt.Errorf("%w: %w", apperror.ErrCorruptState, err)
	}

	first, second := restored.players[0].Moves, restored.players[1].Moves
	if first.Overlaps(second) {
		return fmt.Errorf("%w: cell held by both players", apperror.ErrCorruptState)
	}

	if first.Len() > MaxMovesPerPlayer || second.Len() > MaxMovesPerPlayer {
		return fmt.Errorf("%w: too many moves", apperror.ErrCorruptState)
	}

	// turn is stored, but it must agree with the move counts
	expectedTurn := first.Len() - second.Len()
	if expectedTurn != 0 && expectedTurn != 1 {
		return fmt.Errorf("%w: move counts %d and %d", apperror.ErrCorruptState, first.Len(), second.Len())
	}

	if snapshot.Turn != expectedTurn {
		return fmt.Errorf("%w: turn %d does not match move counts", apperror.ErrCorruptState, snapshot.Turn)
	}

	restored.turn = snapshot.Turn
	*that = *restored

	return nil
}
