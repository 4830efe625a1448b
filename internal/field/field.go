package field

import (
	. "github.com/cricklet/draughtsgo/internal/helpers"
)

type Colour uint

const (
	Black Colour = iota
	White
)

var AllColours = [2]Colour{Black, White}

var _colourStrings = [2]string{
	"black", "white",
}

func (c Colour) String() string {
	return _colourStrings[c]
}

func (c Colour) Invert() Colour {
	return 1 - c
}

func ColourFromString(s string) (Colour, Error) {
	switch s {
	case "b", "black":
		return Black, NilError
	case "w", "white":
		return White, NilError
	default:
		return Black, Errorf("invalid colour %q", s)
	}
}

type Role uint

const (
	Pawn Role = iota
	Queen
)

func (r Role) String() string {
	return [2]string{"pawn", "queen"}[r]
}

// Field is the content of one square: either Empty or a piece of a role and
// colour. The zero value is Empty.
type Field struct {
	occupied bool
	role     Role
	colour   Colour
}

var Empty = Field{}

func Piece(role Role, colour Colour) Field {
	return Field{occupied: true, role: role, colour: colour}
}

var (
	BlackPawn  = Piece(Pawn, Black)
	BlackQueen = Piece(Queen, Black)
	WhitePawn  = Piece(Pawn, White)
	WhiteQueen = Piece(Queen, White)
)

// Role and Colour of a piece. ok is false for Empty.
func (f Field) Piece() (role Role, colour Colour, ok bool) {
	return f.role, f.colour, f.occupied
}

func (f Field) IsEmpty() bool {
	return !f.occupied
}

func (f Field) IsQueen() bool {
	return f.occupied && f.role == Queen
}

func (f Field) IsWhite() bool {
	return f.HasColour(White)
}

func (f Field) IsBlack() bool {
	return f.HasColour(Black)
}

func (f Field) HasColour(c Colour) bool {
	return f.occupied && f.colour == c
}

func (f Field) Promoted() Field {
	if !f.occupied {
		return f
	}
	return Piece(Queen, f.colour)
}

// Direction is the sign of the row step a pawn of this colour advances by.
func (f Field) Direction() int {
	switch {
	case !f.occupied:
		return 0
	case f.colour == White:
		return -1
	default:
		return 1
	}
}

func (f Field) MinDy(jump bool) int {
	if f.IsQueen() {
		return -7
	}
	return f.pawnDy(jump)
}

func (f Field) MaxDy(jump bool) int {
	if f.IsQueen() {
		return 7
	}
	return f.pawnDy(jump)
}

func (f Field) pawnDy(jump bool) int {
	if jump {
		return 2 * f.Direction()
	}
	return f.Direction()
}

func (f Field) String() string {
	switch {
	case !f.occupied:
		return "-"
	case f.colour == White && f.role == Queen:
		return "W"
	case f.colour == White:
		return "w"
	case f.role == Queen:
		return "B"
	default:
		return "b"
	}
}

func FieldFromString(s string) (Field, Error) {
	switch s {
	case "-":
		return Empty, NilError
	case "w":
		return WhitePawn, NilError
	case "W":
		return WhiteQueen, NilError
	case "b":
		return BlackPawn, NilError
	case "B":
		return BlackQueen, NilError
	default:
		return Empty, Errorf("invalid field %q", s)
	}
}
