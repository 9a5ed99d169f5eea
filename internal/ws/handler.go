package ws

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"github.com/gofiber/contrib/websocket"
	"github.com/lk16/reversi/internal/models"
	"github.com/lk16/reversi/internal/session"
)

// Conn is the part of a websocket connection used by Handler.
type Conn interface {
	ReadMessage() (messageType int, p []byte, err error)
	WriteMessage(messageType int, data []byte) error
}

type Handler struct {
	sessions *session.Registry
	ws       Conn
}

// NewHandler creates a new Handler.
func NewHandler(ws Conn, sessions *session.Registry) *Handler {
	return &Handler{sessions: sessions, ws: ws}
}

var errClientDisconnected = errors.New("client disconnected")

func (h *Handler) readMessage() (*Incoming, error) {
	var req Incoming

	msgType, msg, err := h.ws.ReadMessage()
	if err != nil {
		if websocket.IsCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
			return nil, errClientDisconnected
		}

		return nil, fmt.Errorf("ws read error: %w", err)
	}

	slog.Debug("read ws message", "msgType", msgType, "msg", string(msg))

	if msgType != websocket.TextMessage {
		return nil, fmt.Errorf("unexpected message type: %d", msgType)
	}

	if err = json.Unmarshal(msg, &req); err != nil {
		return nil, fmt.Errorf("unmarshal error: %w", err)
	}

	return &req, nil
}

func (h *Handler) writeMessage(outgoing *Outgoing) error {
	msg, err := json.Marshal(outgoing)
	if err != nil {
		return fmt.Errorf("marshal error: %w", err)
	}

	slog.Debug("write ws message", "msg", string(msg))

	if err = h.ws.WriteMessage(websocket.TextMessage, msg); err != nil {
		return fmt.Errorf("write error: %w", err)
	}

	return nil
}

// handleMessage answers a single request. Errors are sent back to the client.
func (h *Handler) handleMessage(req *Incoming) *Outgoing {
	var (
		data any
		err  error
	)

	switch req.Event {
	case "":
		err = errors.New("event field is either empty or missing")
	case "new_game":
		data, err = h.handleNewGame(req)
	case "get_game":
		data, err = h.handleGetGame(req)
	case "move":
		data, err = h.handleMove(req)
	default:
		err = fmt.Errorf("unknown event: %s", req.Event)
	}

	if err != nil {
		slog.Debug("ws request failed", "event", req.Event, "id", req.ID, "error", err)
		return &Outgoing{ID: req.ID, Error: err.Error()}
	}

	return &Outgoing{ID: req.ID, Data: data}
}

// Handle handles the websocket connection.
func (h *Handler) Handle() error {
	for {
		req, err := h.readMessage()
		if err != nil {
			if errors.Is(err, errClientDisconnected) {
				return nil
			}

			return fmt.Errorf("ws read error: %w", err)
		}

		if err = h.writeMessage(h.handleMessage(req)); err != nil {
			return fmt.Errorf("ws write error: %w", err)
		}
	}
}

func (h *Handler) handleNewGame(req *Incoming) (*GameResponse, error) {
	var reqData NewGameRequest
	if err := json.Unmarshal(req.Data, &reqData); err != nil {
		return nil, fmt.Errorf("ws new game request unmarshal error: %w", err)
	}

	mode, err := reqData.Validate()
	if err != nil {
		return nil, err
	}

	s, err := h.sessions.Create(mode)
	if err != nil {
		return nil, fmt.Errorf("failed to create game: %w", err)
	}

	return &GameResponse{Game: models.NewGameResponse(s)}, nil
}

func (h *Handler) handleGetGame(req *Incoming) (*GameResponse, error) {
	var reqData GetGameRequest
	if err := json.Unmarshal(req.Data, &reqData); err != nil {
		return nil, fmt.Errorf("ws get game request unmarshal error: %w", err)
	}

	s, err := h.sessions.Get(reqData.GameID)
	if err != nil {
		return nil, err
	}

	return &GameResponse{Game: models.NewGameResponse(s)}, nil
}

func (h *Handler) handleMove(req *Incoming) (*GameResponse, error) {
	var reqData MoveRequest
	if err := json.Unmarshal(req.Data, &reqData); err != nil {
		return nil, fmt.Errorf("ws move request unmarshal error: %w", err)
	}

	move, err := reqData.Validate()
	if err != nil {
		return nil, err
	}

	s, err := h.sessions.Move(reqData.GameID, move)
	if err != nil {
		return nil, err
	}

	return &GameResponse{Game: models.NewGameResponse(s)}, nil
}
