// Package main is the command-line entry point for the chess engine
// core: given a position and a difficulty, it prints the chosen move.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"corechess/internal/bot"
	"corechess/internal/engine"
)

func main() {
	fen := flag.String("fen", engine.StartingFEN, "FEN of the position to analyze")
	difficulty := flag.Int("difficulty", bot.DifficultyFullSearch, "bot strength, 1-10")
	moveTime := flag.Duration("movetime", 5*time.Second, "time budget for the move")
	flag.Parse()

	os.Exit(run(*fen, *difficulty, *moveTime))
}

func run(fen string, difficulty int, moveTime time.Duration) int {
	b, err := engine.FromFEN(fen)
	if err != nil {
		fmt.Printf("Error: invalid FEN: %v\n", err)
		return 1
	}

	e := bot.New(difficulty)
	defer e.Close()

	ctx, cancel := context.WithTimeout(context.Background(), moveTime)
	defer cancel()

	mv, err := e.SelectMove(ctx, b)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return 1
	}

	fmt.Printf("bestmove %s\n", mv.String())
	return 0
}
