package moves

import (
	"strings"

	. "github.com/cricklet/draughtsgo/internal/board"
	. "github.com/cricklet/draughtsgo/internal/field"
	. "github.com/cricklet/draughtsgo/internal/helpers"
)

// Turn is one legal turn: the squares the moving piece stood on, in order,
// and the board it leaves behind.
type Turn struct {
	Path     []Square
	Captures int
	Board    Board
}

func (t Turn) Start() Square {
	return t.Path[0]
}

func (t Turn) End() Square {
	return t.Path[len(t.Path)-1]
}

func (t Turn) String() string {
	sep := "-"
	if t.Captures > 0 {
		sep = "x"
	}
	return strings.Join(MapSlice(t.Path, Square.String), sep)
}

// Possible pairs every single-step destination of the piece on start with the
// board that results from moving there.
func Possible(b Board, player Colour, start Square, jump bool) []Pair[Square, Board] {
	return MapSlice(b.AllowedMoves(start, jump, player), func(end Square) Pair[Square, Board] {
		return MakePair(end, b.MovePiece(start, end))
	})
}

func nonJumpTurnsFrom(b Board, player Colour, start Square) []Turn {
	return MapSlice(Possible(b, player, start, false), func(p Pair[Square, Board]) Turn {
		return Turn{Path: []Square{start, p.First}, Board: p.Second}
	})
}

// jumpTurnsFrom expands jump chains breadth first. Every board a jump
// produces is a legal end of turn, whether or not the chain could go on.
func jumpTurnsFrom(b Board, player Colour, start Square) []Turn {
	result := []Turn{}
	live := []Turn{{Path: []Square{start}, Board: b}}

	for len(live) > 0 {
		next := []Turn{}
		for _, turn := range live {
			for _, p := range Possible(turn.Board, player, turn.End(), true) {
				path := make([]Square, len(turn.Path), len(turn.Path)+1)
				copy(path, turn.Path)

				next = append(next, Turn{
					Path:     append(path, p.First),
					Captures: turn.Captures + 1,
					Board:    p.Second,
				})
			}
		}
		result = append(result, next...)
		live = next
	}

	return result
}

func boardsOf(turns []Turn) []Board {
	return MapSlice(turns, func(t Turn) Board { return t.Board })
}

func NonJumpsFrom(b Board, player Colour, start Square) []Board {
	return boardsOf(nonJumpTurnsFrom(b, player, start))
}

func JumpsFrom(b Board, player Colour, start Square) []Board {
	return boardsOf(jumpTurnsFrom(b, player, start))
}

var defaultGenerator = NewGenerator()

// List returns every board reachable by one legal turn of player. If any jump
// exists anywhere on the board, only jump results are returned.
func List(b Board, player Colour) []Board {
	return defaultGenerator.List(b, player)
}

func Turns(b Board, player Colour) []Turn {
	return defaultGenerator.Turns(b, player)
}
