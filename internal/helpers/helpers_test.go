package helpers

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSlice(t *testing.T) {
	a := make([]int, 0, 5)
	b := append(a[:0], 1, 2, 3, 4)
	c := append(a[:0], 4, 5, 6)

	assert.Equal(t, []int{}, a)
	assert.Equal(t, []int{4, 5, 6, 4}, b)
	assert.Equal(t, []int{4, 5, 6}, c)
}

func TestMapFilterFind(t *testing.T) {
	doubled := MapSlice([]int{1, 2, 3}, func(i int) int { return i * 2 })
	assert.Equal(t, []int{2, 4, 6}, doubled)

	odd := FilterSlice([]int{1, 2, 3, 4, 5}, func(i int) bool { return i%2 == 1 })
	assert.Equal(t, []int{1, 3, 5}, odd)

	assert.Equal(t, []int{}, FilterSlice([]int{2, 4}, func(i int) bool { return i%2 == 1 }))

	found := FindInSlice([]string{"a", "bb", "ccc"}, func(s string) bool { return len(s) == 2 })
	assert.True(t, found.HasValue())
	assert.Equal(t, "bb", found.Value())

	missing := FindInSlice([]string{"a"}, func(s string) bool { return len(s) == 2 })
	assert.True(t, missing.IsEmpty())
	assert.Equal(t, "zz", missing.ValueOr("zz"))

	assert.True(t, Contains([]string{"profile", "perft"}, "profile"))
	assert.False(t, Contains([]string{"perft"}, "profile"))
}

func TestIntHelpers(t *testing.T) {
	assert.Equal(t, 3, AbsInt(-3))
	assert.Equal(t, 4, AbsDiff(1, 5))
	assert.Equal(t, -1, SignInt(-9))
	assert.Equal(t, 0, SignInt(0))
	assert.Equal(t, 1, SignInt(14))
	assert.Equal(t, 2, MinInt(2, 7))
	assert.Equal(t, 7, MaxInt(2, 7))
}

func TestFuncLogger(t *testing.T) {
	lines := []string{}
	logger := FuncLogger(func(s string) {
		lines = append(lines, s)
	})
	logger.Printf("%d jumps", 3)
	logger.Println("done")

	assert.Equal(t, "3 jumps", lines[0])
	assert.Equal(t, "done", strings.TrimSpace(lines[1]))
}
