// Command tafl recommends a move for the 7x7 Tafl starting position at a
// fixed search depth, optionally memoizing results in a Badger-backed
// analysis cache. Not part of the core engine; a thin driver around it.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/jmkopper/taflgo/pkg/board"
	"github.com/jmkopper/taflgo/pkg/bookstore"
	"github.com/jmkopper/taflgo/pkg/engine"
	"github.com/jmkopper/taflgo/pkg/notation"
	"github.com/seekerror/logw"
)

var (
	depth      = flag.Int("depth", 4, "Search depth")
	tableSlots = flag.Int("table", 20, "Log2 transposition table slots (0 disables)")
	aspiration = flag.Bool("aspiration", true, "Enable aspiration windows")
	book       = flag.String("book", "", "Badger analysis-cache directory (empty disables)")
)

func init() {
	flag.Usage = func() {
		fmt.Fprint(os.Stderr, `usage: tafl [options]

tafl recommends a move for the 7x7 Tafl starting position.
Options:
`)
		flag.PrintDefaults()
	}
}

func main() {
	flag.Parse()
	ctx := context.Background()

	zt := board.NewZobristTable(0)
	b := board.NewStartingBoard(zt, board.StandardRules())

	fmt.Print(notation.RenderBoard(b))

	var store *bookstore.Store
	if *book != "" {
		s, err := bookstore.Open(*book)
		if err != nil {
			logw.Exitf(ctx, "Failed to open book %v: %v", *book, err)
		}
		defer s.Close()
		store = s
	}

	if store != nil {
		if rec, ok, err := store.Get(b.Zobrist()); err != nil {
			logw.Errorf(ctx, "Book lookup failed: %v", err)
		} else if ok {
			fmt.Printf("Recommended move (cached): %v\nEvaluation: %v (%v nodes)\n", rec.BestMove, rec.Evaluation, rec.NodesSearched)
			return
		}
	}

	opts := engine.NewOptions(
		engine.WithMaxDepth(*depth),
		engine.WithTable(*tableSlots),
		engine.WithAspiration(*aspiration),
	)

	rec, err := engine.FindBestMove(ctx, b, opts)
	if err != nil {
		logw.Exitf(ctx, "Search failed: %v", err)
	}

	fmt.Printf("Recommended move: %v\nEvaluation: %v (%v nodes)\n", rec.BestMove, rec.Evaluation, rec.NodesSearched)

	if store != nil {
		if err := store.Put(b.Zobrist(), rec); err != nil {
			logw.Errorf(ctx, "Book write failed: %v", err)
		}
	}
}
