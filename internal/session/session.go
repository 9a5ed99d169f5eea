package session

import (
	"fmt"
	"time"

	"github.com/lk16/reversi/internal/reversi"
)

// Mode decides who plays white.
type Mode string

const (
	// ModeAI lets a human play black against the random opponent playing white.
	ModeAI Mode = "ai"

	// ModePvP lets two humans take turns on the same board.
	ModePvP Mode = "pvp"
)

// ParseMode validates a mode name.
func ParseMode(s string) (Mode, error) {
	switch Mode(s) {
	case ModeAI, ModePvP:
		return Mode(s), nil
	default:
		return "", fmt.Errorf("unknown mode: %q", s)
	}
}

// aiPlayer is the color played by the random opponent in ModeAI.
const aiPlayer = reversi.White

// Session is a game in progress with its bookkeeping.
type Session struct {
	ID      string
	Mode    Mode
	Game    reversi.Game
	Created time.Time
	Updated time.Time

	// LastMoves contains the moves done by the last Move call, including replies
	// of the random opponent.
	LastMoves []reversi.Position

	// policy picks moves for the random opponent.
	policy reversi.Policy
}

// IsHumanTurn checks if the player to move is controlled by a human.
func (s *Session) IsHumanTurn() bool {
	return s.Mode == ModePvP || s.Game.Turn() != aiPlayer
}

// Message returns a summary of the result once the game is over.
func (s *Session) Message() string {
	if !s.Game.Over() {
		return ""
	}

	black, white := s.Game.Score()
	score := fmt.Sprintf("Black: %d  White: %d", black, white)

	winner := s.Game.Winner()

	if winner == reversi.Tie {
		return "It's a tie! " + score
	}

	if s.Mode == ModeAI {
		if winner == aiPlayer {
			return "You lose! " + score
		}
		return "You win! " + score
	}

	if winner == reversi.Black {
		return "Black wins! " + score
	}
	return "White wins! " + score
}

// advance resolves everything that happens after a move: ending the game,
// passing a player without moves and letting the random opponent reply.
func (s *Session) advance() {
	for !s.Game.IsTerminal() {
		if s.Game.Pass() {
			continue
		}

		if s.IsHumanTurn() {
			return
		}

		moves := s.Game.LegalMoves(aiPlayer)
		move := s.policy(moves)
		if !s.Game.ApplyMove(move, aiPlayer) {
			move = moves[0]
			s.Game.ApplyMove(move, aiPlayer)
		}

		s.LastMoves = append(s.LastMoves, move)
	}
}

// clone returns a copy that does not share the LastMoves slice.
func (s *Session) clone() *Session {
	cp := *s
	cp.LastMoves = append([]reversi.Position(nil), s.LastMoves...)
	return &cp
}
