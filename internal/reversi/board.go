package reversi

import (
	"fmt"
	"strings"
)

// Color is the content of a square or the identity of a player.
// Black and White are each other's negation.
type Color int8

const (
	White Color = -1
	Empty Color = 0
	Black Color = 1
	Tie         = Empty
)

const (
	MaxX = 8
	MaxY = 8
)

// Opponent returns the other player.
func (c Color) Opponent() Color {
	return -c
}

// String returns a lowercase name for the color.
func (c Color) String() string {
	switch c {
	case Black:
		return "black"
	case White:
		return "white"
	default:
		return "empty"
	}
}

// symbol returns the character used for this color in the board text format.
func (c Color) symbol() byte {
	switch c {
	case Black:
		return 'X'
	case White:
		return 'O'
	default:
		return '-'
	}
}

// Direction is a unit step on the board.
type Direction struct {
	DRow, DCol int
}

// Directions contains the 8 neighbours of a square.
var Directions = [8]Direction{
	{-1, -1}, {-1, 0}, {-1, 1},
	{0, -1}, {0, 1},
	{1, -1}, {1, 0}, {1, 1},
}

// Board is an 8x8 grid of squares indexed by row, then column.
type Board [MaxY][MaxX]Color

// NewBoardStart creates a board with the four starting discs.
func NewBoardStart() Board {
	var b Board
	b[3][3], b[4][4] = White, White
	b[3][4], b[4][3] = Black, Black
	return b
}

// At returns the color at p. The second value is false when p is off the board.
func (b *Board) At(p Position) (Color, bool) {
	if !p.Valid() {
		return Empty, false
	}
	return b[p.Row][p.Col], true
}

// set writes a square. Callers check bounds first.
func (b *Board) set(p Position, c Color) {
	b[p.Row][p.Col] = c
}

// captureRun walks from p in direction d over discs of the opponent of player and
// returns them if the walk ends on a disc of player. Otherwise it returns nil.
func (b *Board) captureRun(p Position, d Direction, player Color) []Position {
	var run []Position

	cur := p.Step(d)
	for {
		color, ok := b.At(cur)
		if !ok || color == Empty {
			return nil
		}

		if color == player {
			return run
		}

		run = append(run, cur)
		cur = cur.Step(d)
	}
}

// isLegal checks that p is empty and captures in at least one direction.
func (b *Board) isLegal(p Position, player Color) bool {
	color, ok := b.At(p)
	if !ok || color != Empty {
		return false
	}

	for _, d := range Directions {
		if len(b.captureRun(p, d, player)) > 0 {
			return true
		}
	}

	return false
}

// Count returns the number of black and white discs.
func (b *Board) Count() (black, white int) {
	for y := range MaxY {
		for x := range MaxX {
			switch b[y][x] {
			case Black:
				black++
			case White:
				white++
			}
		}
	}
	return black, white
}

// Sum returns the sum of all square values: positive when black has more discs.
func (b *Board) Sum() int {
	sum := 0
	for y := range MaxY {
		for x := range MaxX {
			sum += int(b[y][x])
		}
	}
	return sum
}

// Rows returns one string per row using the board text symbols.
func (b *Board) Rows() []string {
	rows := make([]string, MaxY)
	for y := range MaxY {
		var sb strings.Builder
		for x := range MaxX {
			sb.WriteByte(b[y][x].symbol())
		}
		rows[y] = sb.String()
	}
	return rows
}

// parseBoard reads 64 board symbols in row-major order.
func parseBoard(s string) (Board, error) {
	var b Board

	if len(s) != MaxX*MaxY {
		return b, fmt.Errorf("board must be %d characters long, got %d", MaxX*MaxY, len(s))
	}

	for i := range len(s) {
		var c Color
		switch s[i] {
		case 'X', 'x':
			c = Black
		case 'O', 'o':
			c = White
		case '-', '.':
			c = Empty
		default:
			return b, fmt.Errorf("invalid square %q at index %d", s[i], i)
		}
		b[i/MaxX][i%MaxX] = c
	}

	return b, nil
}
