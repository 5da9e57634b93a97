package apperror

import (
	"errors"
	"fmt"
)

// ErrInvalidMove is the only error a move attempt can fail with. The reasons below wrap it.
var ErrInvalidMove = errors.New("invalid move")

var (
	ErrInvalidCell  = fmt.Errorf("%w: unknown cell", ErrInvalidMove)
	ErrCellOccupied = fmt.Errorf("%w: cell is already occupied", ErrInvalidMove)
	ErrGameFinished = fmt.Errorf("%w: game is already finished", ErrInvalidMove)
)

var (
	ErrInvalidPlayers = errors.New("invalid players")
	ErrCorruptState   = errors.New("corrupt game state")
	ErrGameNotFound   = errors.New("game not found")
)
