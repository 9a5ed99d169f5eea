package reversi

// PlayoutResult summarizes a finished playout.
type PlayoutResult struct {
	Plies  int
	Passes int
	Black  int
	White  int
	Winner Color
}

// Playout plays g until neither player can move. Each player picks moves using
// its own policy. A player without moves passes.
func Playout(g *Game, black, white Policy) PlayoutResult {
	var result PlayoutResult

	for !g.IsTerminal() {
		player := g.Turn()

		moves := g.LegalMoves(player)
		if len(moves) == 0 {
			g.Pass()
			result.Passes++
			continue
		}

		policy := black
		if player == White {
			policy = white
		}

		if !g.ApplyMove(policy(moves), player) {
			// Policy returned something that isn't in moves.
			g.ApplyMove(moves[0], player)
		}
		result.Plies++
	}

	result.Black, result.White = g.Score()
	result.Winner = g.Winner()
	return result
}
