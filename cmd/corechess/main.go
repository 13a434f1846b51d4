// Copyright the corechess authors.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// corechess is a small CLI exercising the core's two exposed functions
// against a FEN supplied on the command line. It is the "some caller
// exists" the contract implies but keeps out of scope; the HTTP surface,
// session state and UCI protocol parsing it explicitly excludes are not
// reproduced here, just enough to search and evaluate one position.
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/fatih/color"

	"github.com/corechess/corechess/board"
	"github.com/corechess/corechess/engine"
)

func main() {
	fen := flag.String("fen", board.FENStartPos, "position to analyze, in FEN")
	depth := flag.Int("depth", 6, "max search depth")
	timeLimit := flag.Duration("time", 5*time.Second, "soft wall-clock budget")
	configPath := flag.String("config", "corechess.toml", "path to an optional TOML config file")
	bookPath := flag.String("book", "", "path to a Polyglot opening book")
	flag.Parse()

	pos, err := board.ParseFEN(*fen)
	if err != nil {
		fmt.Fprintln(os.Stderr, color.RedString("invalid FEN: %v", err))
		os.Exit(1)
	}

	cfg := engine.DefaultConfig()
	if loaded, err := engine.LoadConfig(*configPath); err == nil {
		cfg = loaded
	}
	if *bookPath != "" {
		cfg.BookPath = *bookPath
	}

	eng := engine.New(cfg, engine.WithBook(cfg.BookPath))

	score := eng.Evaluate(pos)
	fmt.Printf("%s %s\n", color.CyanString("static eval:"), color.YellowString("%d", score))

	move, found := eng.SearchBest(pos, *depth, *timeLimit)
	if !found {
		fmt.Println(color.RedString("no legal moves"))
		return
	}
	fmt.Printf("%s %s\n", color.GreenString("best move:"), color.New(color.Bold).Sprint(move.String()))

	stats := eng.Stats()
	fmt.Printf("nodes=%d seldepth=%d tt_hit_ratio=%.2f\n", stats.Nodes, stats.SelDepth, stats.CacheHitRatio())
}
