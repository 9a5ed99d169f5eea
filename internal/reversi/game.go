package reversi

import (
	"fmt"
)

// Game is the state of a reversi game: the board, the player to move and whether
// the end of the game has been detected. A Game is a plain value, copy it to keep
// a snapshot.
type Game struct {
	board Board
	turn  Color
	over  bool
}

// NewGame creates a game with the starting position and black to move.
func NewGame() Game {
	return Game{
		board: NewBoardStart(),
		turn:  Black,
	}
}

// NewGameFromBoard creates a game with a custom board and player to move.
func NewGameFromBoard(board Board, turn Color) (Game, error) {
	if turn != Black && turn != White {
		return Game{}, fmt.Errorf("invalid turn: %d", turn)
	}

	return Game{board: board, turn: turn}, nil
}

// ParseGame reads a game from its String representation.
func ParseGame(s string) (Game, error) {
	if len(s) != MaxX*MaxY+2 {
		return Game{}, fmt.Errorf("game string must be %d characters long, got %d", MaxX*MaxY+2, len(s))
	}

	board, err := parseBoard(s[:MaxX*MaxY])
	if err != nil {
		return Game{}, fmt.Errorf("invalid board: %w", err)
	}

	var turn Color
	switch s[MaxX*MaxY:] {
	case "-b":
		turn = Black
	case "-w":
		turn = White
	default:
		return Game{}, fmt.Errorf("invalid turn: %s", s[MaxX*MaxY:])
	}

	return NewGameFromBoard(board, turn)
}

// Board returns a copy of the board.
func (g Game) Board() Board {
	return g.board
}

// Turn returns the player to move.
func (g Game) Turn() Color {
	return g.turn
}

// At returns the color at p. The second value is false when p is off the board.
func (g Game) At(p Position) (Color, bool) {
	return g.board.At(p)
}

// LegalMoves returns the squares where player can move, in row-major order.
// It does not depend on whose turn it is.
func (g Game) LegalMoves(player Color) []Position {
	moves := make([]Position, 0)

	for y := range MaxY {
		for x := range MaxX {
			p := Position{Row: y, Col: x}
			if g.board.isLegal(p, player) {
				moves = append(moves, p)
			}
		}
	}

	return moves
}

// HasMoves checks if player has at least one legal move.
func (g Game) HasMoves(player Color) bool {
	for y := range MaxY {
		for x := range MaxX {
			if g.board.isLegal(Position{Row: y, Col: x}, player) {
				return true
			}
		}
	}
	return false
}

// IsLegal checks if player can move on p.
func (g Game) IsLegal(p Position, player Color) bool {
	return g.board.isLegal(p, player)
}

// ApplyMove places a disc of player on p and flips all captured discs.
// The turn goes to the opponent of player. It returns false and leaves the game
// untouched if the game is over or the move is not legal.
func (g *Game) ApplyMove(p Position, player Color) bool {
	if g.over || (player != Black && player != White) {
		return false
	}

	if !g.board.isLegal(p, player) {
		return false
	}

	// Collect all runs before writing, so directions don't affect each other.
	var flipped []Position
	for _, d := range Directions {
		flipped = append(flipped, g.board.captureRun(p, d, player)...)
	}

	g.board.set(p, player)
	for _, f := range flipped {
		g.board.set(f, player)
	}

	g.turn = player.Opponent()
	return true
}

// Pass hands the turn to the opponent. This is only allowed when the player to
// move has no legal moves and the opponent does.
func (g *Game) Pass() bool {
	if g.over || g.HasMoves(g.turn) || !g.HasMoves(g.turn.Opponent()) {
		return false
	}

	g.turn = g.turn.Opponent()
	return true
}

// IsTerminal checks if neither player can move. Once this returns true the game
// is over for good and no more moves are accepted.
func (g *Game) IsTerminal() bool {
	if g.over {
		return true
	}

	if !g.HasMoves(Black) && !g.HasMoves(White) {
		g.over = true
	}

	return g.over
}

// Over returns whether the end of the game was detected by IsTerminal.
func (g Game) Over() bool {
	return g.over
}

// Score returns the number of black and white discs.
func (g Game) Score() (black, white int) {
	return g.board.Count()
}

// CountDiscs returns the number of discs on the board.
func (g Game) CountDiscs() int {
	black, white := g.board.Count()
	return black + white
}

// Winner returns the player with the most discs, or Tie.
func (g Game) Winner() Color {
	sum := g.board.Sum()
	switch {
	case sum > 0:
		return Black
	case sum < 0:
		return White
	default:
		return Tie
	}
}

// ASCIIArtLines returns the ascii art lines for the game.
// Legal moves for the player to move are marked with a dot.
func (g Game) ASCIIArtLines() []string {
	moves := make(map[Position]bool)
	for _, move := range g.LegalMoves(g.turn) {
		moves[move] = true
	}

	lines := make([]string, MaxY+2)

	lines[0] = "+-a-b-c-d-e-f-g-h-+"
	for y := range MaxY {
		line := fmt.Sprintf("%d ", y+1)

		for x := range MaxX {
			p := Position{Row: y, Col: x}

			switch color, _ := g.board.At(p); {
			case color == White:
				line += "○ "
			case color == Black:
				line += "● "
			case moves[p]:
				line += "· "
			default:
				line += "  "
			}
		}

		lines[y+1] = line + "|"
	}

	lines[MaxY+1] = "+-----------------+"

	return lines
}

// Print prints the game to the console. This is used for debugging.
func (g Game) Print() {
	for _, line := range g.ASCIIArtLines() {
		fmt.Println(line)
	}
}

// String returns the board in row-major order followed by the turn, "-b" or "-w".
func (g Game) String() string {
	var turnString string
	if g.turn == White {
		turnString = "-w"
	} else {
		turnString = "-b"
	}

	s := make([]byte, 0, MaxX*MaxY+2)
	for _, row := range g.board.Rows() {
		s = append(s, row...)
	}

	return string(s) + turnString
}
