package bot_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"corechess/internal/bot"
	"corechess/internal/engine"
)

func TestNew_DifficultyTiersPickExpectedEngine(t *testing.T) {
	cases := []struct {
		difficulty int
		wantName   string
	}{
		{0, "Hedge (level 1)"},
		{1, "Hedge (level 1)"},
		{2, "Tactician (level 2)"},
		{3, "Grinder (level 3)"},
		{bot.DifficultyAggressivePruning, "Grinder (level 7)"},
		{bot.MaxDifficulty, "Grinder (level 10)"},
		{999, "Grinder (level 10)"},
	}
	for _, tc := range cases {
		e := bot.New(tc.difficulty)
		defer e.Close()
		require.Equal(t, tc.wantName, e.Name())
	}
}

func TestEngine_SelectMove_ReturnsLegalMoveAtEveryTier(t *testing.T) {
	tiers := []int{bot.DifficultyOnePly, bot.DifficultyTwoPly, bot.DifficultyFullSearch}
	b := engine.NewBoard()

	legal := make([]string, 0)
	for _, mv := range b.LegalMoves() {
		legal = append(legal, mv.String())
	}

	for _, difficulty := range tiers {
		e := bot.New(difficulty)
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)

		mv, err := e.SelectMove(ctx, b.Clone())
		cancel()
		require.NoError(t, err, "difficulty %d", difficulty)
		require.Contains(t, legal, mv.String(), "difficulty %d returned an illegal move", difficulty)

		e.Close()
	}
}

func TestEngine_Close_IsIdempotentAndBlocksFurtherMoves(t *testing.T) {
	e := bot.New(bot.DifficultyOnePly)
	require.NoError(t, e.Close())
	require.NoError(t, e.Close())

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	_, err := e.SelectMove(ctx, engine.NewBoard())
	require.Error(t, err)
}

func TestEngine_SelectMove_NoLegalMovesReturnsError(t *testing.T) {
	b, err := engine.FromFEN("rnb1kbnr/pppp1ppp/8/4p3/6Pq/5P2/PPPPP2P/RNBQKBNR w KQkq - 1 3")
	require.NoError(t, err)

	e := bot.New(bot.DifficultyOnePly)
	defer e.Close()

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	_, err = e.SelectMove(ctx, b)
	require.Error(t, err)
}

func TestInspectable_InfoReportsDifficulty(t *testing.T) {
	e := bot.New(bot.DifficultyFullSearch)
	defer e.Close()

	inspectable, ok := e.(bot.Inspectable)
	require.True(t, ok, "full-search engine should implement Inspectable")

	info := inspectable.Info()
	require.Equal(t, bot.DifficultyFullSearch, info.Difficulty)
}
