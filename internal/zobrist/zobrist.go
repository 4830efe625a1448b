package zobrist

import (
	. "github.com/cricklet/draughtsgo/internal/board"
	. "github.com/cricklet/draughtsgo/internal/field"

	"golang.org/x/exp/rand"
)

// indexed by fieldKind: empty, black pawn, black queen, white pawn, white queen
var ZobristFieldAtSquare [5][NumSquares]uint64
var ZobristSideToMove uint64

func init() {
	r := rand.New(rand.NewSource(32879419))
	ZobristSideToMove = r.Uint64()
	for kind := 1; /* skip empty */ kind < 5; kind++ {
		for s := 0; s < NumSquares; s++ {
			ZobristFieldAtSquare[kind][s] = r.Uint64()
		}
	}
}

func fieldKind(f Field) int {
	role, colour, ok := f.Piece()
	if !ok {
		return 0
	}
	return 1 + 2*int(colour) + int(role)
}

func HashForBoard(b *Board) uint64 {
	hash := uint64(0)
	for _, s := range AllSquares {
		hash ^= ZobristFieldAtSquare[fieldKind(b.At(s))][s]
	}
	return hash
}

func HashForPosition(b *Board, player Colour) uint64 {
	hash := HashForBoard(b)
	if player == White {
		hash ^= ZobristSideToMove
	}
	return hash
}

// UpdateHash replaces the contribution of square s from before to after.
func UpdateHash(hash uint64, s Square, before Field, after Field) uint64 {
	hash ^= ZobristFieldAtSquare[fieldKind(before)][s]
	hash ^= ZobristFieldAtSquare[fieldKind(after)][s]
	return hash
}
