package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/lk16/reversi/internal/reversi"
)

func main() {
	start := reversi.NewGame()
	gameString := flag.String("board", start.String(), "the board to show, 64 squares (X, O or -) followed by -b or -w")
	moves := flag.String("moves", "", "comma separated moves to play first, e.g. d3,c5")
	flag.Parse()

	game, err := reversi.ParseGame(*gameString)
	if err != nil {
		fmt.Println(err)
		os.Exit(1)
	}

	if *moves != "" {
		for _, field := range strings.Split(*moves, ",") {
			move, err := reversi.ParsePosition(strings.TrimSpace(field))
			if err != nil {
				fmt.Println(err)
				os.Exit(1)
			}

			if !game.ApplyMove(move, game.Turn()) {
				fmt.Printf("illegal move: %s\n", move)
				os.Exit(1)
			}
		}
	}

	game.Print()

	black, white := game.Score()
	fmt.Printf("black: %d  white: %d  to move: %s  terminal: %t\n", black, white, game.Turn(), game.IsTerminal())
	fmt.Println(game.String())
}
