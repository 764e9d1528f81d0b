package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/plus3/whack/game"
)

func TestStatsFinalize(t *testing.T) {
	s := &Stats{}
	for _, v := range []float64{4, 1, 7} {
		s.Add(v)
	}

	s.Finalize()

	assert.Equal(t, 1.0, s.Min)
	assert.Equal(t, 7.0, s.Max)
	assert.Equal(t, 4.0, s.Avg)
}

func TestStatsFinalizeEmpty(t *testing.T) {
	s := &Stats{}

	assert.NotPanics(t, s.Finalize)
	assert.Zero(t, s.Min)
	assert.Zero(t, s.Max)
	assert.Zero(t, s.Avg)
}

func TestBotWhacksSpawnedTiles(t *testing.T) {
	m := game.NewManager(game.Config{
		WindowSize: 300,
		MaxTime:    0.5,
		MinTime:    0.1,
		Seed:       3,
	})
	m.KeyPress(game.KeySpace)

	for i := 0; i < 1000 && m.Score == 0; i++ {
		botStep(m)
		m.Update(1.0 / 60.0)
	}

	require.GreaterOrEqual(t, m.Score, uint32(1))
	assert.Equal(t, game.StatePlaying, m.State)
}

func TestRunGameIsDeterministic(t *testing.T) {
	cfg := game.Config{
		WindowSize: 300,
		MaxTime:    0.3,
		MinTime:    0.05,
		Seed:       11,
	}

	a := runGame(cfg, 1.0/60.0, 2000)
	b := runGame(cfg, 1.0/60.0, 2000)

	assert.Equal(t, a, b)
}
