package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/cricklet/draughtsgo/internal/board"
	. "github.com/cricklet/draughtsgo/internal/helpers"
	"github.com/stretchr/testify/assert"
)

func TestIsOption(t *testing.T) {
	assert.True(t, isOption("parallel"))
	assert.True(t, isOption("maxCapture"))
	assert.True(t, isOption("cached"))
	assert.False(t, isOption("position.txt"))
}

func TestSplitArgs(t *testing.T) {
	b, rest, err := splitArgs([]string{"parallel"})
	assert.True(t, IsNil(err))
	assert.Equal(t, board.New(), b)
	assert.Equal(t, []string{"parallel"}, rest)

	path := filepath.Join(t.TempDir(), "position.txt")
	moved := board.New().MovePiece(17, 26)
	assert.Nil(t, os.WriteFile(path, []byte(moved.String()), 0644))

	b, rest, err = splitArgs([]string{path, "maxCapture"})
	assert.True(t, IsNil(err))
	assert.Equal(t, moved, b)
	assert.Equal(t, []string{"maxCapture"}, rest)

	_, _, err = splitArgs([]string{filepath.Join(t.TempDir(), "missing.txt")})
	assert.True(t, err.HasError())
}

func TestGeneratorFromArgs(t *testing.T) {
	g, err := generatorFromArgs([]string{"parallel", "cached"})
	assert.True(t, IsNil(err))
	assert.True(t, g.Options().ParallelScan)

	_, err = generatorFromArgs([]string{"quick"})
	assert.True(t, err.HasError())
}

func TestRunErrors(t *testing.T) {
	assert.True(t, run([]string{"perft"}).HasError())
	assert.True(t, run([]string{"perft", "-1"}).HasError())
	assert.True(t, run([]string{"moves", "red"}).HasError())
	assert.True(t, IsNil(run([]string{"perft", "2", "white"})))
}
