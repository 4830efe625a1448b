package board

import (
	"strings"

	. "github.com/cricklet/draughtsgo/internal/field"
	. "github.com/cricklet/draughtsgo/internal/helpers"
)

// String renders one line per row, e.g. "|-|b|-|b|-|b|-|b" for row 0 of New().
func (b Board) String() string {
	result := strings.Builder{}
	for row := 0; row < 8; row++ {
		for col := 0; col < 8; col++ {
			result.WriteString("|")
			result.WriteString(b[row*8+col].String())
		}
		result.WriteString("\n")
	}
	return result.String()
}

// FromString parses the format produced by String. Blank lines and
// surrounding whitespace are ignored.
func FromString(s string) (Board, Error) {
	lines := FilterSlice(
		MapSlice(strings.Split(s, "\n"), strings.TrimSpace),
		func(line string) bool { return len(line) > 0 })

	if len(lines) != 8 {
		return Board{}, Errorf("expected 8 rows, found %v in %q", len(lines), s)
	}

	b := Board{}
	for row, line := range lines {
		symbols := strings.Split(strings.Trim(line, "|"), "|")
		if len(symbols) != 8 {
			return Board{}, Errorf("expected 8 squares in row %v, found %v in %q", row, len(symbols), line)
		}
		for col, symbol := range symbols {
			f, err := FieldFromString(strings.TrimSpace(symbol))
			if !IsNil(err) {
				return Board{}, Errorf("row %v col %v: %w", row, col, err)
			}
			b[row*8+col] = f
		}
	}
	return b, NilError
}

// MustFromString is FromString for layouts known to be valid, e.g. in tests.
func MustFromString(s string) Board {
	b, err := FromString(s)
	if !IsNil(err) {
		panic(err)
	}
	return b
}
