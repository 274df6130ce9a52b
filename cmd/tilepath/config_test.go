package main

import (
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/tilepath/astar"
	"github.com/katalvlaran/tilepath/tilegrid"
)

func envOf(m map[string]string) func(string) string {
	return func(k string) string { return m[k] }
}

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := loadConfig(nil, envOf(nil), io.Discard)
	require.NoError(t, err)

	assert.Equal(t, 10, cfg.Width)
	assert.Equal(t, 10, cfg.Height)
	assert.Equal(t, tilegrid.DefaultBlockChance, cfg.BlockChance)
	assert.Equal(t, astar.DefaultWeight, cfg.Weight)
	assert.Equal(t, tilegrid.Conn8, cfg.Conn)
	assert.Equal(t, astar.SupersedeByHeuristic, cfg.Supersede)
	assert.Equal(t, astar.FrontierHeap, cfg.Frontier)
	assert.Equal(t, tilegrid.Coord{X: 0, Y: 0}, cfg.Start)
	assert.Equal(t, tilegrid.Coord{X: 9, Y: 9}, cfg.Goal)
	assert.False(t, cfg.StartFirst)
	assert.Empty(t, cfg.Toggles)
}

func TestLoadConfigEnvThenFlags(t *testing.T) {
	env := envOf(map[string]string{
		envWidth:       "20",
		envHeight:      "5",
		envBlockChance: "0.1",
		envZoom:        "4",
		envSeed:        "42",
	})

	cfg, err := loadConfig(nil, env, io.Discard)
	require.NoError(t, err)
	assert.Equal(t, 20, cfg.Width)
	assert.Equal(t, 5, cfg.Height)
	assert.Equal(t, 0.1, cfg.BlockChance)
	assert.Equal(t, 4.0, cfg.Zoom)
	assert.Equal(t, int64(42), cfg.Seed)
	assert.Equal(t, tilegrid.Coord{X: 19, Y: 4}, cfg.Goal)

	cfg, err = loadConfig([]string{"-width", "7", "-seed", "3"}, env, io.Discard)
	require.NoError(t, err)
	assert.Equal(t, 7, cfg.Width, "flags override env")
	assert.Equal(t, 5, cfg.Height)
	assert.Equal(t, int64(3), cfg.Seed)
}

func TestLoadConfigFlags(t *testing.T) {
	args := []string{
		"-conn", "4",
		"-start", "1,2",
		"-goal", "3;4",
		"-toggle", "1,1",
		"-toggle", "2;2",
		"-weight", "1.5",
		"-strict",
		"-frontier", "linear",
		"-order", "start",
	}
	cfg, err := loadConfig(args, envOf(nil), io.Discard)
	require.NoError(t, err)

	assert.Equal(t, tilegrid.Conn4, cfg.Conn)
	assert.Equal(t, tilegrid.Coord{X: 1, Y: 2}, cfg.Start)
	assert.Equal(t, tilegrid.Coord{X: 3, Y: 4}, cfg.Goal)
	assert.Equal(t, []tilegrid.Coord{{X: 1, Y: 1}, {X: 2, Y: 2}}, cfg.Toggles)
	assert.Equal(t, 1.5, cfg.Weight)
	assert.Equal(t, astar.SupersedeByPriority, cfg.Supersede)
	assert.Equal(t, astar.FrontierLinear, cfg.Frontier)
	assert.True(t, cfg.StartFirst)
}

func TestLoadConfigErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
		env  map[string]string
	}{
		{"BadConn", []string{"-conn", "6"}, nil},
		{"BadFrontier", []string{"-frontier", "tree"}, nil},
		{"BadOrder", []string{"-order", "middle"}, nil},
		{"BadStart", []string{"-start", "1"}, nil},
		{"BadGoal", []string{"-goal", "a,b"}, nil},
		{"BadToggle", []string{"-toggle", "1,2,3"}, nil},
		{"UnknownFlag", []string{"-nope"}, nil},
		{"BadEnvWidth", nil, map[string]string{envWidth: "wide"}},
		{"BadEnvChance", nil, map[string]string{envBlockChance: "lots"}},
		{"BadEnvSeed", nil, map[string]string{envSeed: "1.5"}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := loadConfig(tc.args, envOf(tc.env), io.Discard)
			assert.Error(t, err)
		})
	}
}

func TestParseCoord(t *testing.T) {
	c, err := parseCoord(" 3 , 4 ")
	require.NoError(t, err)
	assert.Equal(t, tilegrid.Coord{X: 3, Y: 4}, c)

	_, err = parseCoord("3")
	assert.ErrorIs(t, err, errBadCoord)
}
