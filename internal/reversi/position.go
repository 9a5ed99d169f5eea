package reversi

import (
	"fmt"
	"strings"
)

// Position is a square on the board.
type Position struct {
	Row int
	Col int
}

// Valid checks if the position is on the board.
func (p Position) Valid() bool {
	return p.Row >= 0 && p.Row < MaxY && p.Col >= 0 && p.Col < MaxX
}

// Step returns the neighbouring position in direction d. It may be off the board.
func (p Position) Step(d Direction) Position {
	return Position{Row: p.Row + d.DRow, Col: p.Col + d.DCol}
}

// Index returns the row-major index (0-63) of the position.
func (p Position) Index() int {
	return p.Row*MaxX + p.Col
}

// String returns the field notation of the position, e.g. (2,3) is "d3".
func (p Position) String() string {
	if !p.Valid() {
		return fmt.Sprintf("(%d,%d)", p.Row, p.Col)
	}
	return string([]byte{byte('a' + p.Col), byte('1' + p.Row)})
}

// ParsePosition converts a field notation (e.g. "a1", "h8") to a Position.
func ParsePosition(field string) (Position, error) {
	if len(field) != 2 {
		return Position{}, fmt.Errorf("invalid field length: %q", field)
	}

	field = strings.ToLower(field)

	if !('a' <= field[0] && field[0] <= 'h' && '1' <= field[1] && field[1] <= '8') {
		return Position{}, fmt.Errorf("invalid field: %q", field)
	}

	return Position{
		Row: int(field[1] - '1'),
		Col: int(field[0] - 'a'),
	}, nil
}

// MarshalText implements encoding.TextMarshaler.
func (p Position) MarshalText() ([]byte, error) {
	if !p.Valid() {
		return nil, fmt.Errorf("position %s is off the board", p)
	}
	return []byte(p.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (p *Position) UnmarshalText(text []byte) error {
	parsed, err := ParsePosition(string(text))
	if err != nil {
		return err
	}
	*p = parsed
	return nil
}
