package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/pkg/profile"
	"github.com/schollz/progressbar/v3"

	"github.com/cricklet/draughtsgo/internal/board"
	"github.com/cricklet/draughtsgo/internal/field"
	. "github.com/cricklet/draughtsgo/internal/helpers"
	"github.com/cricklet/draughtsgo/internal/moves"
	"github.com/cricklet/draughtsgo/internal/perft"
)

func usage() {
	fmt.Println("usage:")
	fmt.Println(" > draughts board")
	fmt.Println(" > draughts moves <colour> [layout-file] [parallel] [maxCapture]")
	fmt.Println(" > draughts perft <depth> [colour] [layout-file] [parallel] [maxCapture] [cached]")
	fmt.Println(" add 'profile' to any command to write a cpu profile")
}

func isOption(arg string) bool {
	return arg == "cached" || FindInSlice(moves.AllGeneratorOptions, func(option string) bool {
		return strings.HasPrefix(arg, option)
	}).HasValue()
}

func readLayout(path string) (board.Board, Error) {
	input, err := os.ReadFile(path)
	if !IsNil(err) {
		return board.Board{}, Wrap(err)
	}
	return board.FromString(string(input))
}

// splitArgs separates an optional layout file from trailing option words.
func splitArgs(args []string) (board.Board, []string, Error) {
	if len(args) > 0 && !isOption(args[0]) {
		b, err := readLayout(args[0])
		return b, args[1:], err
	}
	return board.New(), args, NilError
}

func generatorFromArgs(args []string) (moves.Generator, Error) {
	options, err := moves.GeneratorOptionsFromArgs(FilterSlice(args, func(arg string) bool {
		return arg != "cached"
	})...)
	if !IsNil(err) {
		return moves.Generator{}, err
	}
	return moves.NewGenerator(moves.WithOptions(options)), NilError
}

func runMoves(args []string) Error {
	if len(args) < 1 {
		return Errorf("moves needs a colour")
	}
	player, err := field.ColourFromString(args[0])
	if !IsNil(err) {
		return err
	}
	b, rest, err := splitArgs(args[1:])
	if !IsNil(err) {
		return err
	}
	g, err := generatorFromArgs(rest)
	if !IsNil(err) {
		return err
	}
	g.Logger = &DefaultLogger

	fmt.Print(b.String())
	for i, turn := range g.Turns(b, player) {
		fmt.Printf("\n%v. %v\n", i+1, turn)
		fmt.Print(turn.Board.String())
	}
	return NilError
}

func runPerft(args []string) Error {
	if len(args) < 1 {
		return Errorf("perft needs a depth")
	}
	depth, parseErr := strconv.Atoi(args[0])
	if !IsNil(parseErr) || depth < 0 {
		return Errorf("invalid depth %q", args[0])
	}

	player := field.Black
	rest := args[1:]
	if len(rest) > 0 {
		if c, err := field.ColourFromString(rest[0]); IsNil(err) {
			player = c
			rest = rest[1:]
		}
	}

	b, rest, err := splitArgs(rest)
	if !IsNil(err) {
		return err
	}
	g, err := generatorFromArgs(rest)
	if !IsNil(err) {
		return err
	}

	var bar *progressbar.ProgressBar
	opts := []perft.PerftOption{
		perft.WithGenerator(g),
		perft.WithLogger(&DefaultLogger),
		perft.WithProgress(func(done int, total int) {
			if bar == nil {
				bar = progressbar.Default(int64(total), fmt.Sprint("depth ", depth))
			}
			_ = bar.Set(done)
		}),
	}

	if Contains(rest, "cached") {
		leaves := perft.CountLeaves(b, player, depth, opts...)
		fmt.Printf("leaves: %v\n", humanize.Comma(int64(leaves)))
		return NilError
	}

	result := perft.Count(b, player, depth, opts...)
	fmt.Printf("leaves: %v\n", humanize.Comma(int64(result.Leaves)))
	fmt.Printf("captures: %v\n", humanize.Comma(int64(result.Captures)))
	fmt.Printf("stuck: %v\n", humanize.Comma(int64(result.Stuck)))
	return NilError
}

func run(args []string) Error {
	if Contains(args, "profile") {
		p := profile.Start(profile.ProfilePath("."))
		defer p.Stop()
	}
	args = FilterSlice(args, func(arg string) bool {
		return arg != "profile"
	})

	if len(args) == 0 {
		usage()
		return NilError
	}

	switch args[0] {
	case "board":
		fmt.Print(board.New().String())
		return NilError
	case "moves":
		return runMoves(args[1:])
	case "perft":
		return runPerft(args[1:])
	default:
		usage()
		return NilError
	}
}

func main() {
	err := run(os.Args[1:])
	if !IsNil(err) {
		fmt.Fprintln(os.Stderr, "error:", err)
		fmt.Fprintln(os.Stderr, err.String())
		os.Exit(1)
	}
}
