package reversi

import "math/rand/v2"

// Policy picks a move out of a non-empty list of legal moves.
type Policy func(moves []Position) Position

// RandomPolicy picks a move uniformly at random using rng.
func RandomPolicy(rng *rand.Rand) Policy {
	return func(moves []Position) Position {
		return moves[rng.IntN(len(moves))]
	}
}

// FirstMovePolicy always picks the first move. Moves are in row-major order, so
// this is deterministic.
func FirstMovePolicy(moves []Position) Position {
	return moves[0]
}

// NewRand creates a random source from a seed.
func NewRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}
