package bot

import (
	"context"
	"errors"
	"strconv"
	"time"

	"corechess/internal/engine"
	"corechess/internal/search"
)

// defaultMoveTime bounds how long the full search spends per move
// when the caller's context carries no deadline of its own.
const defaultMoveTime = 5 * time.Second

// searchEngine wraps search.Engine as a bot.Engine for difficulty
// tiers DifficultyFullSearch and above.
type searchEngine struct {
	name       string
	difficulty int
	opts       search.Options
	engine     *search.Engine
	closed     bool
}

func newSearchEngine(difficulty int, opts search.Options) *searchEngine {
	return &searchEngine{
		name:       "Grinder (level " + strconv.Itoa(difficulty) + ")",
		difficulty: difficulty,
		opts:       opts,
		engine:     search.NewEngine(64),
	}
}

func (e *searchEngine) SelectMove(ctx context.Context, board *engine.Board) (engine.Move, error) {
	if e.closed {
		return engine.Move{}, errors.New("engine is closed")
	}

	opts := e.opts
	if opts.MoveTime == 0 {
		if deadline, ok := ctx.Deadline(); ok {
			opts.MoveTime = time.Until(deadline)
		} else {
			opts.MoveTime = defaultMoveTime
		}
	}

	result := e.engine.Search(ctx, board, opts)
	if result.BestMove.From == result.BestMove.To {
		return engine.Move{}, errors.New("no legal moves available")
	}
	return result.BestMove, nil
}

func (e *searchEngine) Name() string { return e.name }

func (e *searchEngine) Close() error {
	e.closed = true
	return nil
}

func (e *searchEngine) Info() Info {
	return Info{
		Name:       e.name,
		Difficulty: e.difficulty,
		Features: map[string]bool{
			"transposition_table": true,
			"null_move_pruning":   e.opts.UseNullMove,
			"late_move_reduction": e.opts.UseLMR,
		},
	}
}
