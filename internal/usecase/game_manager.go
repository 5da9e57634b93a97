package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/rocketscienceinc/tictactoe-core/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-core/internal/config"
	"github.com/rocketscienceinc/tictactoe-core/internal/entity"
	"github.com/rocketscienceinc/tictactoe-core/internal/pkg"
	"github.com/rocketscienceinc/tictactoe-core/internal/tictactoe"
)

type gameRepo interface {
	CreateOrUpdate(ctx context.Context, game *entity.GameState) error
	GetByID(ctx context.Context, id string) (*entity.GameState, error)
	DeleteByID(ctx context.Context, id string) error
}

// GameManager loads a game handle per request, runs it through the input gate and stores the result.
type GameManager struct {
	logger   *slog.Logger
	gameRepo gameRepo
	players  config.Players
}

func NewGameManager(logger *slog.Logger, gameRepo gameRepo, players config.Players) *GameManager {
	return &GameManager{
		logger: logger.With("component", "game_manager"),

		gameRepo: gameRepo,
		players:  players,
	}
}

func (that *GameManager) NewGame(ctx context.Context) (*entity.GameState, error) {
	game, err := entity.NewGameState(
		pkg.GenerateGameID(),
		entity.NewPlayer(that.players.First.Name, that.players.First.Symbol),
		entity.NewPlayer(that.players.Second.Name, that.players.Second.Symbol),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create game: %w", err)
	}

	if err = that.updateGame(ctx, game); err != nil {
		return nil, err
	}

	that.logger.Info("game created", "gameID", game.ID)

	return game, nil
}

func (that *GameManager) GetGame(ctx context.Context, id string) (*entity.GameState, error) {
	return that.getGameByID(ctx, id)
}

// AttemptMove - a rejected move returns the unchanged game together with the error and is not stored.
func (that *GameManager) AttemptMove(ctx context.Context, id, cell string) (*entity.GameState, tictactoe.Outcome, error) {
	log := that.logger.With("method", "AttemptMove", "gameID", id)

	game, err := that.getGameByID(ctx, id)
	if err != nil {
		return nil, tictactoe.Outcome{}, err
	}

	outcome, err := tictactoe.NewInputGate(game).AttemptMove(cell)
	if errors.Is(err, apperror.ErrInvalidMove) {
		log.Debug("move ignored", "cell", cell, "reason", err)
		return game, outcome, err
	}

	if err != nil {
		return nil, outcome, fmt.Errorf("failed make turn: %w", err)
	}

	if err = that.updateGame(ctx, game); err != nil {
		return nil, outcome, err
	}

	switch outcome.Status {
	case entity.StatusWon:
		log.Info("The winner is "+outcome.Winner.Name, "symbol", outcome.Winner.Symbol, "line", outcome.Line)
	case entity.StatusDraw:
		log.Info("Draw")
	default:
		log.Debug("move applied", "cell", outcome.Cell, "symbol", outcome.Player.Symbol)
	}

	return game, outcome, nil
}

// Reset - clears the board for a new round with the same players.
func (that *GameManager) Reset(ctx context.Context, id string) (*entity.GameState, error) {
	game, err := that.getGameByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err = tictactoe.NewInputGate(game).Reset(); err != nil {
		return nil, fmt.Errorf("failed reset game: %w", err)
	}

	if err = that.updateGame(ctx, game); err != nil {
		return nil, err
	}

	that.logger.Info("game reset", "gameID", id)

	return game, nil
}

func (that *GameManager) EndGame(ctx context.Context, id string) error {
	if err := that.gameRepo.DeleteByID(ctx, id); err != nil {
		return fmt.Errorf("failed to end game: %w", err)
	}

	that.logger.Info("game ended", "gameID", id)

	return nil
}

func (that *GameManager) getGameByID(ctx context.Context, id string) (*entity.GameState, error) {
	existingGame, err := that.gameRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get game: %w", err)
	}

	return existingGame, nil
}

func (that *GameManager) updateGame(ctx context.Context, game *entity.GameState) error {
	if err := that.gameRepo.CreateOrUpdate(ctx, game); err != nil {
		return fmt.Errorf("failed to update game: %w", err)
	}

	return nil
}
