package models

import (
	"errors"
	"time"

	"github.com/lk16/reversi/internal/reversi"
	"github.com/lk16/reversi/internal/session"
)

// NewGameRequest represents the payload for starting a game.
type NewGameRequest struct {
	Mode string `json:"mode"`
}

// Validate checks the mode and returns it.
func (r *NewGameRequest) Validate() (session.Mode, error) {
	return session.ParseMode(r.Mode)
}

// MoveRequest represents the payload for playing a move, e.g. {"move": "d3"}.
type MoveRequest struct {
	Move string `json:"move"`
}

// Validate parses the move.
func (r *MoveRequest) Validate() (reversi.Position, error) {
	if r.Move == "" {
		return reversi.Position{}, errors.New("move is empty or missing")
	}

	return reversi.ParsePosition(r.Move)
}

// GameResponse is the view of a game sent to clients.
type GameResponse struct {
	ID         string             `json:"id"`
	Mode       session.Mode       `json:"mode"`
	Board      []string           `json:"board"`
	Turn       string             `json:"turn"`
	LegalMoves []reversi.Position `json:"legal_moves"`
	LastMoves  []reversi.Position `json:"last_moves"`
	Black      int                `json:"black"`
	White      int                `json:"white"`
	Over       bool               `json:"over"`
	Winner     string             `json:"winner,omitempty"`
	Message    string             `json:"message,omitempty"`
	Created    time.Time          `json:"created"`
	Updated    time.Time          `json:"updated"`
}

// NewGameResponse builds the view of a session.
func NewGameResponse(s *session.Session) GameResponse {
	board := s.Game.Board()
	black, white := s.Game.Score()

	lastMoves := s.LastMoves
	if lastMoves == nil {
		lastMoves = []reversi.Position{}
	}

	resp := GameResponse{
		ID:         s.ID,
		Mode:       s.Mode,
		Board:      board.Rows(),
		Turn:       s.Game.Turn().String(),
		LegalMoves: s.Game.LegalMoves(s.Game.Turn()),
		LastMoves:  lastMoves,
		Black:      black,
		White:      white,
		Over:       s.Game.Over(),
		Message:    s.Message(),
		Created:    s.Created,
		Updated:    s.Updated,
	}

	if resp.Over {
		resp.Winner = winnerName(s.Game.Winner())
		resp.LegalMoves = []reversi.Position{}
	}

	return resp
}

func winnerName(winner reversi.Color) string {
	if winner == reversi.Tie {
		return "tie"
	}
	return winner.String()
}

// ErrorResponse is the body of every failed request.
type ErrorResponse struct {
	Error string `json:"error"`
}

// VersionResponse contains the revision the binary was built from.
type VersionResponse struct {
	Commit string `json:"commit"`
}
