package board

import (
	"fmt"

	. "github.com/cricklet/draughtsgo/internal/helpers"
)

// Square is a board index in row-major order: row = i/8, col = i%8. Row 0 is
// Black's home row, row 7 is White's.
type Square int

const NumSquares = 64

var AllSquares = func() [NumSquares]Square {
	result := [NumSquares]Square{}
	for i := range result {
		result[i] = Square(i)
	}
	return result
}()

func SquareFromIndex(index int) (Square, Error) {
	if index < 0 || index >= NumSquares {
		return 0, Errorf("square index %v out of range", index)
	}
	return Square(index), NilError
}

func SquareFromRowCol(row int, col int) (Square, Error) {
	if !inBounds(row, col) {
		return 0, Errorf("square (%v, %v) out of range", row, col)
	}
	return Square(row*8 + col), NilError
}

func inBounds(row int, col int) bool {
	return row >= 0 && row < 8 && col >= 0 && col < 8
}

func squareAt(row int, col int) Optional[Square] {
	if !inBounds(row, col) {
		return None[Square]()
	}
	return Some(Square(row*8 + col))
}

func (s Square) Row() int {
	return int(s) >> 3
}

func (s Square) Col() int {
	return int(s) & 0b111
}

func (s Square) Index() int {
	return int(s)
}

func (s Square) String() string {
	return fmt.Sprint(int(s))
}
