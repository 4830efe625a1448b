package board

import (
	. "github.com/cricklet/draughtsgo/internal/field"
	. "github.com/cricklet/draughtsgo/internal/helpers"
)

// Board is a value: every transformation returns a new Board and leaves the
// receiver untouched.
type Board [NumSquares]Field

func New() Board {
	b := Board{}
	for _, s := range AllSquares {
		if (s.Row()+s.Col())%2 == 0 {
			continue
		}
		if s.Row() < 3 {
			b[s] = BlackPawn
		} else if s.Row() > 4 {
			b[s] = WhitePawn
		}
	}
	return b
}

func Blank() Board {
	return Board{}
}

func (b Board) At(s Square) Field {
	return b[s]
}

func (b Board) With(s Square, f Field) Board {
	b[s] = f
	return b
}

// PromoteAll promotes every White piece on row 0 and every Black piece on
// row 7, whether or not it just arrived there.
func (b Board) PromoteAll() Board {
	for col := 0; col < 8; col++ {
		if b[col].IsWhite() {
			b[col] = b[col].Promoted()
		}
		if b[63-col].IsBlack() {
			b[63-col] = b[63-col].Promoted()
		}
	}
	return b
}

// fieldsBetween walks the diagonal from start (inclusive) to end (exclusive).
// start and end must share a diagonal.
func fieldsBetween(start Square, end Square) []Square {
	dRow := end.Row() - start.Row()
	step := SignInt(dRow)*8 + SignInt(end.Col()-start.Col())

	result := make([]Square, 0, AbsInt(dRow))
	for i := 0; i < AbsInt(dRow); i++ {
		result = append(result, start+Square(i*step))
	}
	return result
}

func onDiagonal(start Square, end Square) bool {
	dRow := AbsDiff(start.Row(), end.Row())
	return dRow != 0 && dRow == AbsDiff(start.Col(), end.Col())
}

// MovePiece clears every square the piece passes over, including any piece it
// captures, places the piece on end and then promotes.
func (b Board) MovePiece(start Square, end Square) Board {
	piece := b[start]
	for _, s := range fieldsBetween(start, end) {
		b[s] = Empty
	}
	b[end] = piece
	return b.PromoteAll()
}

func (b Board) occupiedBetween(start Square, end Square) []Square {
	return FilterSlice(fieldsBetween(start, end), func(s Square) bool {
		return !b[s].IsEmpty()
	})
}

func (b Board) CanMove(start Square, end Square, jump bool) bool {
	minDistance := 1
	if jump {
		minDistance = 2
	}

	piece := b[start]
	if piece.IsEmpty() || !b[end].IsEmpty() || !onDiagonal(start, end) {
		return false
	}
	if AbsDiff(start.Row(), end.Row()) < minDistance {
		return false
	}

	occupied := b.occupiedBetween(start, end)
	if len(occupied) != minDistance {
		return false
	}
	if jump {
		_, colour, _ := piece.Piece()
		return !b[occupied[1]].HasColour(colour)
	}
	return true
}

// AllowedMoves lists the single-step destinations of the piece on start, in
// order of increasing row offset and, per row, the -col side first.
func (b Board) AllowedMoves(start Square, jump bool, player Colour) []Square {
	piece := b[start]
	if !piece.HasColour(player) {
		return []Square{}
	}

	row, col := start.Row(), start.Col()
	minDy := MaxInt(piece.MinDy(jump), -row)
	maxDy := MinInt(piece.MaxDy(jump), 7-row)

	result := []Square{}
	for dy := minDy; dy <= maxDy; dy++ {
		for _, dx := range [2]int{-dy, dy} {
			end := squareAt(row+dy, col+dx)
			if end.HasValue() && b.CanMove(start, end.Value(), jump) {
				result = append(result, end.Value())
			}
		}
	}
	return result
}

func (b Board) Count(f func(Field) bool) int {
	count := 0
	for _, field := range b {
		if f(field) {
			count++
		}
	}
	return count
}

func (b Board) Pieces(c Colour) []Square {
	return FilterSlice(AllSquares[:], func(s Square) bool {
		return b[s].HasColour(c)
	})
}
