package moves

import (
	"strings"

	. "github.com/cricklet/draughtsgo/internal/board"
	. "github.com/cricklet/draughtsgo/internal/field"
	. "github.com/cricklet/draughtsgo/internal/helpers"
	"github.com/cricklet/draughtsgo/internal/zobrist"

	"golang.org/x/sync/errgroup"
)

type GeneratorOptions struct {
	Logger Optional[Logger]

	// scan the 64 squares on separate goroutines
	ParallelScan bool

	// only keep the jump chains that capture the most pieces
	MaximumCapture bool
}

type GeneratorOption func(*GeneratorOptions)

func WithLogger(logger Logger) GeneratorOption {
	return func(o *GeneratorOptions) {
		o.Logger = Some(logger)
	}
}

func WithParallelScan() GeneratorOption {
	return func(o *GeneratorOptions) {
		o.ParallelScan = true
	}
}

func WithMaximumCapture() GeneratorOption {
	return func(o *GeneratorOptions) {
		o.MaximumCapture = true
	}
}

func WithOptions(options GeneratorOptions) GeneratorOption {
	return func(o *GeneratorOptions) {
		*o = options
	}
}

var AllGeneratorOptions = []string{
	"parallel",
	"maxCapture",
}

func GeneratorOptionsFromArgs(args ...string) (GeneratorOptions, Error) {
	options := GeneratorOptions{}

	for _, arg := range args {
		if strings.HasPrefix(arg, "parallel") {
			options.ParallelScan = true
		} else if strings.HasPrefix(arg, "maxCapture") {
			options.MaximumCapture = true
		} else {
			return options, Errorf("unknown option: %s", arg)
		}
	}

	return options, NilError
}

type Generator struct {
	Logger  Logger
	options GeneratorOptions
}

func NewGenerator(opts ...GeneratorOption) Generator {
	options := GeneratorOptions{}
	for _, opt := range opts {
		opt(&options)
	}

	g := Generator{options: options}
	if options.Logger.HasValue() {
		g.Logger = options.Logger.Value()
	} else {
		g.Logger = &SilentLogger
	}
	return g
}

func (g Generator) Options() GeneratorOptions {
	return g.options
}

type turnsFromSquare func(Board, Colour, Square) []Turn

// scan runs from on every square and concatenates the results in square
// order, so the parallel scan returns exactly what the sequential one does.
func (g Generator) scan(b Board, player Colour, from turnsFromSquare) []Turn {
	perSquare := [NumSquares][]Turn{}

	if g.options.ParallelScan {
		var group errgroup.Group
		for _, s := range AllSquares {
			if !b.At(s).HasColour(player) {
				continue
			}
			group.Go(func() error {
				perSquare[s] = from(b, player, s)
				return nil
			})
		}
		// the per-square work cannot fail
		_ = group.Wait()
	} else {
		for _, s := range AllSquares {
			if b.At(s).HasColour(player) {
				perSquare[s] = from(b, player, s)
			}
		}
	}

	result := []Turn{}
	for _, turns := range perSquare {
		result = append(result, turns...)
	}
	return result
}

func mostCaptures(turns []Turn) []Turn {
	most := 0
	for _, t := range turns {
		most = MaxInt(most, t.Captures)
	}
	return FilterSlice(turns, func(t Turn) bool { return t.Captures == most })
}

func (g Generator) Turns(b Board, player Colour) []Turn {
	jumps := g.scan(b, player, jumpTurnsFrom)
	if len(jumps) > 0 {
		if g.options.MaximumCapture {
			jumps = mostCaptures(jumps)
		}
		g.Logger.Printf("%v must capture: %v turns", player, len(jumps))
		return jumps
	}

	turns := g.scan(b, player, nonJumpTurnsFrom)
	g.Logger.Printf("%v has no captures: %v turns", player, len(turns))
	return turns
}

func (g Generator) List(b Board, player Colour) []Board {
	return boardsOf(g.Turns(b, player))
}

// Unique drops repeated boards, keeping the first occurrence of each.
func Unique(boards []Board) []Board {
	seen := map[uint64][]Board{}
	result := []Board{}
	for _, b := range boards {
		hash := zobrist.HashForBoard(&b)
		if Contains(seen[hash], b) {
			continue
		}
		seen[hash] = append(seen[hash], b)
		result = append(result, b)
	}
	return result
}
