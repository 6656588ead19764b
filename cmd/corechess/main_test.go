package main

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"corechess/internal/bot"
	"corechess/internal/engine"
)

func TestRun_StartingPositionReturnsSuccess(t *testing.T) {
	code := run(engine.StartingFEN, bot.DifficultyOnePly, time.Second)
	require.Equal(t, 0, code)
}

func TestRun_InvalidFENReturnsError(t *testing.T) {
	code := run("not-a-fen", bot.DifficultyOnePly, time.Second)
	require.Equal(t, 1, code)
}

func TestRun_CheckmatePositionReturnsError(t *testing.T) {
	code := run("rnb1kbnr/pppp1ppp/8/4p3/6Pq/5P2/PPPPP2P/RNBQKBNR w KQkq - 1 3", bot.DifficultyOnePly, time.Second)
	require.Equal(t, 1, code)
}

func TestRun_TwoPlyDifficultyAlsoSucceeds(t *testing.T) {
	code := run(engine.StartingFEN, bot.DifficultyTwoPly, 2*time.Second)
	require.Equal(t, 0, code)
}
