package perft

import (
	"fmt"

	. "github.com/cricklet/draughtsgo/internal/board"
	. "github.com/cricklet/draughtsgo/internal/field"
	. "github.com/cricklet/draughtsgo/internal/helpers"
	"github.com/cricklet/draughtsgo/internal/moves"
	"github.com/cricklet/draughtsgo/internal/zobrist"
)

type Result struct {
	Leaves int
	// leaf turns that captured at least one piece
	Captures int
	// positions before the last ply where the side to move had no turn
	Stuck int
}

func (r *Result) add(o Result) {
	r.Leaves += o.Leaves
	r.Captures += o.Captures
	r.Stuck += o.Stuck
}

func (r Result) String() string {
	return fmt.Sprintf("leaves: %v, captures: %v, stuck: %v", r.Leaves, r.Captures, r.Stuck)
}

type PerftOptions struct {
	Generator moves.Generator
	Logger    Logger
	// called after each turn from the root position with (done, total)
	Progress Optional[func(int, int)]
	// only used by CountLeaves
	TableSize int
}

type PerftOption func(*PerftOptions)

func WithGenerator(g moves.Generator) PerftOption {
	return func(o *PerftOptions) {
		o.Generator = g
	}
}

func WithLogger(logger Logger) PerftOption {
	return func(o *PerftOptions) {
		o.Logger = logger
	}
}

func WithProgress(progress func(done int, total int)) PerftOption {
	return func(o *PerftOptions) {
		o.Progress = Some(progress)
	}
}

func WithTableSize(size int) PerftOption {
	return func(o *PerftOptions) {
		o.TableSize = size
	}
}

func newOptions(opts []PerftOption) PerftOptions {
	options := PerftOptions{
		Generator: moves.NewGenerator(),
		Logger:    &SilentLogger,
		TableSize: zobrist.DefaultTranspositionTableSize,
	}
	for _, opt := range opts {
		opt(&options)
	}
	return options
}

func (o PerftOptions) reportProgress(done int, total int) {
	if o.Progress.HasValue() {
		o.Progress.Value()(done, total)
	}
}

// countTurn counts the lines that follow turn when n plies remain after it.
func countTurn(g moves.Generator, turn moves.Turn, player Colour, n int) Result {
	if n == 0 {
		if turn.Captures > 0 {
			return Result{Leaves: 1, Captures: 1}
		}
		return Result{Leaves: 1}
	}
	return countForDepth(g, turn.Board, player.Invert(), n)
}

func countForDepth(g moves.Generator, b Board, player Colour, n int) Result {
	turns := g.Turns(b, player)
	if len(turns) == 0 {
		return Result{Stuck: 1}
	}

	result := Result{}
	for _, turn := range turns {
		result.add(countTurn(g, turn, player, n-1))
	}
	return result
}

// Count walks every line of depth plies from b, player moving first.
func Count(b Board, player Colour, depth int, opts ...PerftOption) Result {
	options := newOptions(opts)
	if depth == 0 {
		return Result{Leaves: 1}
	}

	turns := options.Generator.Turns(b, player)
	if len(turns) == 0 {
		return Result{Stuck: 1}
	}

	result := Result{}
	for i, turn := range turns {
		result.add(countTurn(options.Generator, turn, player, depth-1))
		options.reportProgress(i+1, len(turns))
	}

	options.Logger.Printf("perft %v %v: %v", player, depth, result)
	return result
}

func countLeavesCached(g moves.Generator, table *zobrist.TranspositionTable, b Board, player Colour, n int) int {
	if n == 0 {
		return 1
	}

	hash := zobrist.HashForPosition(&b, player)
	if cached := table.Get(hash, n); cached.HasValue() {
		return cached.Value().Count
	}

	leaves := 0
	for _, next := range g.List(b, player) {
		leaves += countLeavesCached(g, table, next, player.Invert(), n-1)
	}

	table.Put(hash, n, leaves)
	return leaves
}

// CountLeaves returns the same leaf count as Count, memoized by position.
func CountLeaves(b Board, player Colour, depth int, opts ...PerftOption) int {
	options := newOptions(opts)
	table := zobrist.NewTranspositionTable(options.TableSize)

	if depth == 0 {
		return 1
	}

	roots := options.Generator.List(b, player)
	leaves := 0
	for i, next := range roots {
		leaves += countLeavesCached(options.Generator, table, next, player.Invert(), depth-1)
		options.reportProgress(i+1, len(roots))
	}

	options.Logger.Printf("perft %v %v: %v leaves (%v)", player, depth, leaves, table.Stats())
	return leaves
}
