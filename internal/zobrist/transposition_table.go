package zobrist

import (
	"fmt"

	. "github.com/cricklet/draughtsgo/internal/helpers"
)

type CachedCount struct {
	Depth       int
	Count       int
	ZobristHash uint64
}

type TranspositionTable struct {
	Size       int
	Cache      []CachedCount
	Hits       int
	Collisions int
	WrongDepth int
	Misses     int
}

var DefaultTranspositionTableSize = 1 << 20

func NewTranspositionTable(size int) *TranspositionTable {
	return &TranspositionTable{
		Size:  size,
		Cache: make([]CachedCount, size),
	}
}

func (t *TranspositionTable) Stats() string {
	return fmt.Sprintf("hits: %v, collisions: %v, wrong depth: %v, misses: %v", t.Hits, t.Collisions, t.WrongDepth, t.Misses)
}

// Get only returns counts computed for exactly this depth.
func (t *TranspositionTable) Get(hash uint64, depth int) Optional[CachedCount] {
	v := t.Cache[hash%uint64(t.Size)]
	if v.ZobristHash == hash && v.Depth == depth {
		t.Hits++
		return Some(v)
	} else if v.ZobristHash == hash {
		t.WrongDepth++
	} else if v.ZobristHash != 0 {
		t.Collisions++
	} else {
		t.Misses++
	}
	return None[CachedCount]()
}

func (t *TranspositionTable) Put(hash uint64, depth int, count int) {
	t.Cache[hash%uint64(t.Size)] = CachedCount{
		Depth:       depth,
		Count:       count,
		ZobristHash: hash,
	}
}
