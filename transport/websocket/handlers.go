package websocket

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/gorilla/websocket"

	"github.com/rocketscienceinc/tictactoe-core/internal/apperror"
)

func (that *Server) handleNewGame(ctx context.Context, msg *Message, conn *websocket.Conn) error {
	log := that.logger.With("method", "handleNewGame")

	game, err := that.uGame.NewGame(ctx)
	if err != nil {
		log.Error("failed to create game", "error", err)
		return that.sendErrorResponse(conn, msg.Action, "failed to create a new game")
	}

	return that.sendMessage(conn, msg.Action, Payload{GameID: game.ID, Game: game})
}

func (that *Server) handleGameState(ctx context.Context, msg *Message, conn *websocket.Conn) error {
	payloadReq, err := that.readGamePayload(msg, conn)
	if err != nil || payloadReq == nil {
		return err
	}

	game, err := that.uGame.GetGame(ctx, payloadReq.GameID)
	if err != nil {
		return that.sendGameError(conn, msg.Action, payloadReq.GameID, err)
	}

	return that.sendMessage(conn, msg.Action, Payload{GameID: game.ID, Game: game})
}

func (that *Server) handleGameMove(ctx context.Context, msg *Message, conn *websocket.Conn) error {
	log := that.logger.With("method", "handleGameMove")

	payloadReq, err := that.readGamePayload(msg, conn)
	if err != nil || payloadReq == nil {
		return err
	}

	if payloadReq.Cell == nil {
		log.Error("Cell is missing in payload")
		return that.sendErrorResponse(conn, msg.Action, "Cell is required")
	}

	log = log.With("gameID", payloadReq.GameID)

	game, outcome, err := that.uGame.AttemptMove(ctx, payloadReq.GameID, *payloadReq.Cell)
	if errors.Is(err, apperror.ErrInvalidMove) {
		// the move is ignored, the client re-renders the unchanged game
		return that.sendMessage(conn, msg.Action, Payload{
			GameID:  payloadReq.GameID,
			Game:    game,
			Outcome: &outcome,
			Error:   err.Error(),
		})
	}

	if err != nil {
		log.Error("failed to make move", "error", err)
		return that.sendGameError(conn, msg.Action, payloadReq.GameID, err)
	}

	return that.sendMessage(conn, msg.Action, Payload{GameID: game.ID, Game: game, Outcome: &outcome})
}

func (that *Server) handleGameReset(ctx context.Context, msg *Message, conn *websocket.Conn) error {
	payloadReq, err := that.readGamePayload(msg, conn)
	if err != nil || payloadReq == nil {
		return err
	}

	game, err := that.uGame.Reset(ctx, payloadReq.GameID)
	if err != nil {
		return that.sendGameError(conn, msg.Action, payloadReq.GameID, err)
	}

	return that.sendMessage(conn, msg.Action, Payload{GameID: game.ID, Game: game})
}

func (that *Server) handleGameLeave(ctx context.Context, msg *Message, conn *websocket.Conn) error {
	payloadReq, err := that.readGamePayload(msg, conn)
	if err != nil || payloadReq == nil {
		return err
	}

	if err = that.uGame.EndGame(ctx, payloadReq.GameID); err != nil {
		return that.sendGameError(conn, msg.Action, payloadReq.GameID, err)
	}

	return that.sendMessage(conn, msg.Action, Payload{GameID: payloadReq.GameID})
}

// readGamePayload - decodes a payload that must name a game. A nil payload with
// a nil error means the client has already been answered.
func (that *Server) readGamePayload(msg *Message, conn *websocket.Conn) (*Payload, error) {
	var payloadReq Payload

	if err := json.Unmarshal(msg.Payload, &payloadReq); err != nil {
		if sendErr := that.sendErrorResponse(conn, msg.Action, "malformed payload"); sendErr != nil {
			return nil, sendErr
		}

		return nil, fmt.Errorf("failed to unmarshal payload: %w", err)
	}

	if payloadReq.GameID == "" {
		return nil, that.sendErrorResponse(conn, msg.Action, "Game is required")
	}

	return &payloadReq, nil
}

func (that *Server) sendGameError(conn *websocket.Conn, action, gameID string, err error) error {
	if errors.Is(err, apperror.ErrGameNotFound) {
		return that.sendErrorResponse(conn, action, fmt.Sprintf("game %s: %v", gameID, apperror.ErrGameNotFound))
	}

	that.logger.Error("game request failed", "action", action, "gameID", gameID, "error", err)

	return that.sendErrorResponse(conn, action, "internal error")
}
