package field

import (
	"testing"

	. "github.com/cricklet/draughtsgo/internal/helpers"
	"github.com/stretchr/testify/assert"
)

func TestInvert(t *testing.T) {
	assert.Equal(t, White, Black.Invert())
	assert.Equal(t, Black, White.Invert())
	assert.Equal(t, Black, Black.Invert().Invert())
}

func TestColourFromString(t *testing.T) {
	c, err := ColourFromString("white")
	assert.True(t, IsNil(err))
	assert.Equal(t, White, c)

	c, err = ColourFromString("b")
	assert.True(t, IsNil(err))
	assert.Equal(t, Black, c)

	_, err = ColourFromString("red")
	assert.True(t, err.HasError())
}

func TestQueries(t *testing.T) {
	assert.True(t, Empty.IsEmpty())
	assert.False(t, Empty.IsWhite())
	assert.False(t, Empty.IsBlack())
	assert.False(t, Empty.IsQueen())
	assert.False(t, Empty.HasColour(White))
	assert.False(t, Empty.HasColour(Black))

	assert.True(t, WhitePawn.IsWhite())
	assert.False(t, WhitePawn.IsQueen())
	assert.True(t, WhiteQueen.IsQueen())
	assert.True(t, BlackQueen.HasColour(Black))
	assert.False(t, BlackQueen.HasColour(White))

	role, colour, ok := BlackQueen.Piece()
	assert.True(t, ok)
	assert.Equal(t, Queen, role)
	assert.Equal(t, Black, colour)

	_, _, ok = Empty.Piece()
	assert.False(t, ok)
}

func TestPromoted(t *testing.T) {
	assert.Equal(t, WhiteQueen, WhitePawn.Promoted())
	assert.Equal(t, BlackQueen, BlackPawn.Promoted())
	assert.Equal(t, BlackQueen, BlackQueen.Promoted())
	assert.Equal(t, Empty, Empty.Promoted())
}

func TestDirection(t *testing.T) {
	assert.Equal(t, -1, WhitePawn.Direction())
	assert.Equal(t, -1, WhiteQueen.Direction())
	assert.Equal(t, 1, BlackPawn.Direction())
	assert.Equal(t, 0, Empty.Direction())
}

func TestDyRange(t *testing.T) {
	assert.Equal(t, 1, BlackPawn.MinDy(false))
	assert.Equal(t, 1, BlackPawn.MaxDy(false))
	assert.Equal(t, 2, BlackPawn.MinDy(true))
	assert.Equal(t, 2, BlackPawn.MaxDy(true))

	assert.Equal(t, -1, WhitePawn.MinDy(false))
	assert.Equal(t, -2, WhitePawn.MaxDy(true))

	for _, jump := range []bool{false, true} {
		assert.Equal(t, -7, WhiteQueen.MinDy(jump))
		assert.Equal(t, 7, WhiteQueen.MaxDy(jump))
		assert.Equal(t, -7, BlackQueen.MinDy(jump))
		assert.Equal(t, 7, BlackQueen.MaxDy(jump))
	}
}

func TestFieldStrings(t *testing.T) {
	for _, s := range []string{"-", "w", "W", "b", "B"} {
		f, err := FieldFromString(s)
		assert.True(t, IsNil(err))
		assert.Equal(t, s, f.String())
	}

	_, err := FieldFromString("x")
	assert.True(t, err.HasError())
}
