package main

import (
	"flag"
	"log/slog"
	"os"
	"time"

	"github.com/lk16/reversi/internal/config"
	"github.com/lk16/reversi/internal/reversi"
)

func main() {
	games := flag.Int("n", 1, "number of games to play")
	seed := flag.Uint64("seed", 0, "random seed, 0 uses the current time")
	verbose := flag.Bool("v", false, "print the final board of every game")
	flag.Parse()

	config.SetLogLevel()

	if *games < 1 {
		slog.Error("Invalid number of games", "n", *games)
		os.Exit(1)
	}

	if *seed == 0 {
		*seed = uint64(time.Now().UnixNano())
	}

	rng := reversi.NewRand(*seed)
	policy := reversi.RandomPolicy(rng)

	wins := map[reversi.Color]int{}
	start := time.Now()

	for i := range *games {
		game := reversi.NewGame()
		result := reversi.Playout(&game, policy, policy)
		wins[result.Winner]++

		slog.Debug(
			"Finished game",
			"index", i,
			"plies", result.Plies,
			"passes", result.Passes,
			"black", result.Black,
			"white", result.White,
			"winner", result.Winner,
		)

		if *verbose {
			game.Print()
		}
	}

	slog.Info(
		"Finished playouts",
		"games", *games,
		"seed", *seed,
		"black_wins", wins[reversi.Black],
		"white_wins", wins[reversi.White],
		"ties", wins[reversi.Tie],
		"duration", time.Since(start),
	)
}
