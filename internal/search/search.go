// Package search implements iterative-deepening, root-parallel
// alpha-beta search over the engine package's board representation:
// principal-variation negamax with null-move pruning, late-move
// reduction/pruning, futility pruning, internal iterative deepening,
// check extension, mate-distance pruning, aspiration windows, and a
// quiescence search filtered by static exchange evaluation.
package search

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"corechess/internal/book"
	"corechess/internal/engine"
	"corechess/internal/eval"
	"corechess/internal/tt"
)

const (
	mateScore = tt.MateScore
	maxPly    = tt.MaxPly
	infinity  = mateScore + maxPly
)

// Options configures a single search call. A zero Options uses sane
// defaults (see Search).
type Options struct {
	// MaxDepth bounds iterative deepening; 0 means DefaultMaxDepth.
	MaxDepth int
	// MoveTime, if positive, stops the search once elapsed, returning
	// the best move found by the last fully completed depth.
	MoveTime time.Duration
	// Threads is the number of root-parallel workers; 0 means 1.
	Threads int
	// UseNullMove, UseLMR, UseFutility, UseIID gate the optional
	// pruning/extension heuristics, primarily so low difficulty tiers
	// can disable them for a deliberately weaker, simpler search.
	UseNullMove bool
	UseLMR      bool
	UseFutility bool
	UseIID      bool
}

// DefaultMaxDepth is used when Options.MaxDepth is unset.
const DefaultMaxDepth = 64

// Result is the outcome of a Search call.
type Result struct {
	BestMove engine.Move
	Score    int32
	Depth    int
	Nodes    uint64
}

// Engine owns the long-lived search resources: the transposition
// table, evaluator, and opening book prober. A single Engine can
// service repeated Search calls across moves of the same game.
type Engine struct {
	TT   *tt.Table
	Eval eval.Evaluator
	Book book.Prober

	history  historyTable
	counters counterMoveTable
}

// NewEngine builds an Engine with a table of the given size and the
// classical evaluator.
func NewEngine(ttSizeMB int) *Engine {
	return &Engine{
		TT:   tt.New(ttSizeMB),
		Eval: eval.NewClassical(),
		Book: book.None{},
	}
}

// worker holds one root-parallel search thread's mutable state: its
// own board copy (so concurrent workers never share mutable board
// state) and its own killer table, while history and counter-moves
// are shared back to the engine under a mutex-free best-effort update
// (races only blur move-ordering quality, never correctness).
type worker struct {
	id       int
	board    *engine.Board
	engine   *Engine
	killers  killerTable
	history  *historyTable
	counters *counterMoveTable
	nodes    uint64
	stop     *atomic.Bool
	opts     Options
}

// Search runs iterative deepening from the current position of b
// using opts, blocking until the deepest completed iteration's time
// or depth budget is exhausted. b is not mutated (a deep copy of the
// root position is cloned per worker).
func (e *Engine) Search(ctx context.Context, b *engine.Board, opts Options) Result {
	maxDepth := opts.MaxDepth
	if maxDepth <= 0 {
		maxDepth = DefaultMaxDepth
	}
	threads := opts.Threads
	if threads <= 0 {
		threads = 1
	}

	if bookMove, ok := e.Book.Probe(b.Hash); ok {
		return Result{BestMove: bookMove, Depth: 0}
	}

	e.TT.NewGeneration()

	var cancel context.CancelFunc
	if opts.MoveTime > 0 {
		ctx, cancel = context.WithTimeout(ctx, opts.MoveTime)
		defer cancel()
	}
	stop := &atomic.Bool{}
	go func() {
		<-ctx.Done()
		stop.Store(true)
	}()

	var best Result
	window := int32(25)
	alpha, beta := int32(-infinity), int32(infinity)

	for depth := 1; depth <= maxDepth; depth++ {
		if stop.Load() {
			break
		}

		result, completed := e.searchRootAspiration(b, depth, alpha, beta, window, threads, opts, stop)
		if !completed {
			break
		}
		best = result

		alpha = result.Score - window
		beta = result.Score + window

		if best.Score > mateScore-maxPly || best.Score < -mateScore+maxPly {
			break
		}
	}

	if best.BestMove.From == best.BestMove.To {
		if moves := b.LegalMoves(); len(moves) > 0 {
			best.BestMove = moves[0]
		}
	}

	return best
}

// searchRootAspiration runs one iterative-deepening depth with a
// narrow aspiration window, symmetrically re-searching with the full
// window whenever the result falls outside it - the simpler of the
// two aspiration strategies the design considered, chosen because
// asymmetric re-widening needs per-side failure bookkeeping this
// engine has no other use for.
func (e *Engine) searchRootAspiration(b *engine.Board, depth int, alpha, beta, window int32, threads int, opts Options, stop *atomic.Bool) (Result, bool) {
	for {
		result, completed := e.searchRoot(b, depth, alpha, beta, threads, opts, stop)
		if !completed {
			return Result{}, false
		}
		if result.Score <= alpha || result.Score >= beta {
			alpha, beta = int32(-infinity), int32(infinity)
			continue
		}
		return result, true
	}
}

// searchRoot splits the root move list across threads workers, each
// pulling the next unexplored move index from a shared atomic
// counter and comparing against a shared atomic best score, so slower
// workers searching later moves still benefit from cutoffs found by
// workers that finished earlier moves first.
func (e *Engine) searchRoot(b *engine.Board, depth int, alpha, beta int32, threads int, opts Options, stop *atomic.Bool) (Result, bool) {
	moves := b.LegalMoves()
	if len(moves) == 0 {
		if b.InCheck() {
			return Result{Score: -mateScore, Depth: depth}, true
		}
		return Result{Score: 0, Depth: depth}, true
	}

	ttMove := engine.Move{}
	if entry, ok := e.TT.Probe(b.Hash, 0); ok {
		ttMove = entry.BestMove
	}

	rootWorker := &worker{board: b, engine: e, history: &e.history, counters: &e.counters, stop: stop, opts: opts}
	rootWorker.orderMoves(moves, ttMove, 0, engine.Move{})

	var moveIndex int64
	var sharedAlpha atomic.Int32
	sharedAlpha.Store(alpha)

	var mu sync.Mutex
	bestMove := moves[0]
	bestScore := alpha
	var totalNodes uint64
	completed := true

	var wg sync.WaitGroup
	for t := 0; t < threads; t++ {
		wg.Add(1)
		go func(id int) {
			defer wg.Done()
			w := &worker{id: id, board: b.Clone(), engine: e, history: &e.history, counters: &e.counters, stop: stop, opts: opts}

			for {
				if stop.Load() {
					mu.Lock()
					completed = false
					mu.Unlock()
					return
				}
				idx := atomic.AddInt64(&moveIndex, 1) - 1
				if idx >= int64(len(moves)) {
					return
				}
				mv := moves[idx]

				curAlpha := sharedAlpha.Load()
				w.board.MakeMove(mv)
				score := -w.negamax(depth-1, -beta, -curAlpha, 1, true, engine.Move{})
				w.board.UndoMove()

				mu.Lock()
				totalNodes += w.nodes
				w.nodes = 0
				if score > bestScore {
					bestScore = score
					bestMove = mv
				}
				mu.Unlock()

				for {
					old := sharedAlpha.Load()
					if score <= old {
						break
					}
					if sharedAlpha.CompareAndSwap(old, score) {
						break
					}
				}
			}
		}(t)
	}
	wg.Wait()

	e.TT.Store(b.Hash, depth, bestScore, tt.Exact, bestMove, 0)

	return Result{BestMove: bestMove, Score: bestScore, Depth: depth, Nodes: totalNodes}, completed
}
