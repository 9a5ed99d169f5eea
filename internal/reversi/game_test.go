package reversi

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mustParseGame builds a game from 8 rows and a turn suffix.
func mustParseGame(t *testing.T, rows []string, turn string) Game {
	t.Helper()

	g, err := ParseGame(strings.Join(rows, "") + turn)
	require.NoError(t, err)
	return g
}

func TestNewGame(t *testing.T) {
	g := NewGame()

	require.Equal(t, Black, g.Turn())
	require.False(t, g.Over())
	require.Equal(t, 4, g.CountDiscs())

	expected := map[Position]Color{
		{Row: 3, Col: 4}: Black,
		{Row: 4, Col: 3}: Black,
		{Row: 3, Col: 3}: White,
		{Row: 4, Col: 4}: White,
	}

	for y := range MaxY {
		for x := range MaxX {
			p := Position{Row: y, Col: x}
			color, ok := g.At(p)
			require.True(t, ok)

			if want, found := expected[p]; found {
				require.Equal(t, want, color, "square %s", p)
			} else {
				require.Equal(t, Empty, color, "square %s", p)
			}
		}
	}
}

func TestGame_LegalMoves_Start(t *testing.T) {
	g := NewGame()

	blackMoves := g.LegalMoves(Black)
	require.Equal(t, []Position{{Row: 2, Col: 3}, {Row: 3, Col: 2}, {Row: 4, Col: 5}, {Row: 5, Col: 4}}, blackMoves)

	// White's moves can be queried even though it's black's turn.
	whiteMoves := g.LegalMoves(White)
	require.Equal(t, []Position{{Row: 2, Col: 4}, {Row: 3, Col: 5}, {Row: 4, Col: 2}, {Row: 5, Col: 3}}, whiteMoves)

	// Querying does not change anything.
	require.Equal(t, NewGame(), g)
}

func TestGame_LegalMoves_None(t *testing.T) {
	g := mustParseGame(t, []string{
		"XXXXXXXX",
		"XXXXXXXX",
		"XXXXXXXX",
		"XXXXXXXX",
		"XXXXXXXX",
		"XXXXXXXX",
		"XXXXXXXX",
		"XXXXXXX-",
	}, "-w")

	require.Empty(t, g.LegalMoves(Black))
	require.Empty(t, g.LegalMoves(White))
	require.NotNil(t, g.LegalMoves(Black))
}

func TestGame_ApplyMove_D3(t *testing.T) {
	g := NewGame()

	ok := g.ApplyMove(Position{Row: 2, Col: 3}, Black)
	require.True(t, ok)

	black, white := g.Score()
	require.Equal(t, 4, black)
	require.Equal(t, 1, white)
	require.Equal(t, White, g.Turn())

	color, _ := g.At(Position{Row: 3, Col: 3})
	require.Equal(t, Black, color)

	color, _ = g.At(Position{Row: 4, Col: 4})
	require.Equal(t, White, color)
}

func TestGame_ApplyMove_Rejected(t *testing.T) {
	tests := []struct {
		name   string
		pos    Position
		player Color
	}{
		{"occupied", Position{Row: 3, Col: 3}, Black},
		{"no capture", Position{Row: 0, Col: 0}, Black},
		{"adjacent without capture", Position{Row: 2, Col: 2}, Black},
		{"legal for other player", Position{Row: 2, Col: 4}, Black},
		{"row too low", Position{Row: -1, Col: 3}, Black},
		{"col too high", Position{Row: 3, Col: 8}, Black},
		{"empty is not a player", Position{Row: 2, Col: 3}, Empty},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := NewGame()
			before := g

			assert.False(t, g.ApplyMove(tt.pos, tt.player))
			assert.Equal(t, before, g)
		})
	}
}

func TestGame_ApplyMove_MultipleDirections(t *testing.T) {
	g := mustParseGame(t, []string{
		"X-X-X---",
		"-OOO----",
		"XO-OX---",
		"-OOO----",
		"X-X-X---",
		"--------",
		"--------",
		"--------",
	}, "-b")

	require.True(t, g.ApplyMove(Position{Row: 2, Col: 2}, Black))

	expected := mustParseGame(t, []string{
		"X-X-X---",
		"-XXX----",
		"XXXXX---",
		"-XXX----",
		"X-X-X---",
		"--------",
		"--------",
		"--------",
	}, "-w")

	require.Equal(t, expected, g)
}

func TestGame_ApplyMove_PartialRunNotFlipped(t *testing.T) {
	g := mustParseGame(t, []string{
		"--------",
		"--------",
		"--OOOX--",
		"-O------",
		"-OO-----",
		"--------",
		"--------",
		"--------",
	}, "-b")

	// b3 captures c3, d3, e3 to the right. Looking down it finds b4 and b5
	// followed by the empty b6, so both stay white.
	require.True(t, g.ApplyMove(Position{Row: 2, Col: 1}, Black))

	color, _ := g.At(Position{Row: 2, Col: 4})
	require.Equal(t, Black, color)

	color, _ = g.At(Position{Row: 3, Col: 1})
	require.Equal(t, White, color)

	color, _ = g.At(Position{Row: 4, Col: 1})
	require.Equal(t, White, color)
}

func TestGame_ApplyMove_Properties(t *testing.T) {
	rng := NewRand(7)

	for range 20 {
		g := NewGame()

		for !g.IsTerminal() {
			player := g.Turn()
			moves := g.LegalMoves(player)

			if len(moves) == 0 {
				require.True(t, g.Pass())
				continue
			}

			for _, move := range moves {
				child := g
				_, opponentBefore := countFor(child, player)
				discsBefore := child.CountDiscs()

				require.True(t, child.ApplyMove(move, player))

				_, opponentAfter := countFor(child, player)
				require.Equal(t, discsBefore+1, child.CountDiscs())
				require.Less(t, opponentAfter, opponentBefore)
				require.Equal(t, player.Opponent(), child.Turn())
			}

			require.True(t, g.ApplyMove(RandomPolicy(rng)(moves), player))
		}
	}
}

// countFor returns the disc count of player and its opponent.
func countFor(g Game, player Color) (int, int) {
	black, white := g.Score()
	if player == Black {
		return black, white
	}
	return white, black
}

func TestGame_ApplyMove_IgnoresTurn(t *testing.T) {
	g := NewGame()

	// The engine doesn't enforce turn order, white can move first.
	require.True(t, g.ApplyMove(Position{Row: 2, Col: 4}, White))
	require.Equal(t, Black, g.Turn())
}

func TestGame_IsTerminal(t *testing.T) {
	g := NewGame()
	require.False(t, g.IsTerminal())
	require.False(t, g.Over())

	full := mustParseGame(t, []string{
		"XXXXXXXX",
		"XXXXXXXX",
		"XXXXXXXX",
		"XXXXXXXX",
		"OOOOOOOO",
		"OOOOOOOO",
		"OOOOOOOO",
		"OOOOOOOO",
	}, "-b")
	require.True(t, full.IsTerminal())
	require.True(t, full.Over())
	require.True(t, full.IsTerminal())
}

func TestGame_IsTerminal_OneSideStuck(t *testing.T) {
	g := mustParseGame(t, []string{
		"OX------",
		"--------",
		"--------",
		"--------",
		"--------",
		"--------",
		"--------",
		"--------",
	}, "-b")

	require.Empty(t, g.LegalMoves(Black))
	require.Equal(t, []Position{{Row: 0, Col: 2}}, g.LegalMoves(White))
	require.False(t, g.IsTerminal())
}

func TestGame_IsTerminal_Latches(t *testing.T) {
	board := NewBoardStart()
	for y := range MaxY {
		for x := range MaxX {
			board[y][x] = Black
		}
	}
	board[0][0] = Empty

	g, err := NewGameFromBoard(board, White)
	require.NoError(t, err)
	require.True(t, g.IsTerminal())

	// Even if the board would allow moves again, the game stays over.
	g.board[0][1] = White
	require.True(t, g.IsTerminal())
	require.False(t, g.ApplyMove(Position{Row: 0, Col: 0}, Black))
	require.False(t, g.Pass())
}

func TestGame_Pass(t *testing.T) {
	g := mustParseGame(t, []string{
		"OX------",
		"--------",
		"--------",
		"--------",
		"--------",
		"--------",
		"--------",
		"--------",
	}, "-b")

	require.True(t, g.Pass())
	require.Equal(t, White, g.Turn())

	// White has moves, so white can't pass.
	require.False(t, g.Pass())

	start := NewGame()
	require.False(t, start.Pass())
	require.Equal(t, Black, start.Turn())
}

func TestGame_Winner(t *testing.T) {
	tests := []struct {
		name   string
		rows   []string
		black  int
		white  int
		winner Color
	}{
		{
			name:   "start is a tie",
			rows:   startRows(),
			black:  2,
			white:  2,
			winner: Tie,
		},
		{
			name: "black majority",
			rows: []string{
				"XXX-----", "--------", "--------", "--------",
				"--------", "--------", "--------", "-----OO-",
			},
			black:  3,
			white:  2,
			winner: Black,
		},
		{
			name: "white majority",
			rows: []string{
				"X-------", "--------", "--------", "--------",
				"--------", "--------", "--------", "-----OO-",
			},
			black:  1,
			white:  2,
			winner: White,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := mustParseGame(t, tt.rows, "-b")

			black, white := g.Score()
			assert.Equal(t, tt.black, black)
			assert.Equal(t, tt.white, white)
			assert.Equal(t, tt.winner, g.Winner())
			assert.Equal(t, black == white, g.Winner() == Tie)
		})
	}
}

func startRows() []string {
	board := NewBoardStart()
	return board.Rows()
}

func TestParseGame(t *testing.T) {
	g := NewGame()

	parsed, err := ParseGame(g.String())
	require.NoError(t, err)
	require.Equal(t, g, parsed)

	require.True(t, g.ApplyMove(Position{Row: 2, Col: 3}, Black))
	expected := strings.Join([]string{
		"--------",
		"--------",
		"---X----",
		"---XX---",
		"---XO---",
		"--------",
		"--------",
		"--------",
	}, "") + "-w"
	require.Equal(t, expected, g.String())

	_, err = ParseGame("")
	require.Error(t, err)

	_, err = ParseGame(strings.Repeat("-", 64) + "-x")
	require.Error(t, err)

	_, err = ParseGame(strings.Repeat("?", 64) + "-b")
	require.Error(t, err)
}

func TestNewGameFromBoard_InvalidTurn(t *testing.T) {
	_, err := NewGameFromBoard(NewBoardStart(), Empty)
	require.Error(t, err)
}

func TestGame_ASCIIArtLines(t *testing.T) {
	g := NewGame()
	lines := g.ASCIIArtLines()

	require.Len(t, lines, 10)
	require.Equal(t, "+-a-b-c-d-e-f-g-h-+", lines[0])
	require.Equal(t, "3       ·         |", lines[3])
	require.Equal(t, "4     · ○ ●       |", lines[4])
	require.Equal(t, "+-----------------+", lines[9])
}
