package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/katalvlaran/tilepath/astar"
	"github.com/katalvlaran/tilepath/tilegrid"
)

// Environment variables providing flag defaults, optionally loaded from .env.
const (
	envWidth       = "TILEPATH_WIDTH"
	envHeight      = "TILEPATH_HEIGHT"
	envBlockChance = "TILEPATH_BLOCK_CHANCE"
	envZoom        = "TILEPATH_ZOOM"
	envSeed        = "TILEPATH_SEED"
)

var errBadCoord = errors.New("tilepath: coordinate must look like x,y")

// config is the resolved command configuration.
type config struct {
	Width, Height int
	BlockChance   float64
	Zoom          float64
	Seed          int64
	Conn          tilegrid.Connectivity
	Start, Goal   tilegrid.Coord
	Toggles       []tilegrid.Coord
	Weight        float64
	Supersede     astar.SupersedeMode
	Frontier      astar.FrontierKind
	StartFirst    bool
}

// gridOptions maps the configuration onto tilegrid options.
func (c config) gridOptions() tilegrid.GridOptions {
	opts := tilegrid.DefaultGridOptions()
	opts.BlockChance = c.BlockChance
	opts.NoiseZoom = c.Zoom
	opts.Seed = c.Seed
	opts.Conn = c.Conn

	return opts
}

// searchOptions maps the configuration onto astar options.
func (c config) searchOptions() []astar.Option {
	return []astar.Option{
		astar.WithWeight(c.Weight),
		astar.WithSupersede(c.Supersede),
		astar.WithFrontier(c.Frontier),
	}
}

// coordList collects repeated -toggle flags.
type coordList []tilegrid.Coord

func (l *coordList) String() string {
	parts := make([]string, len(*l))
	for i, c := range *l {
		parts[i] = c.String()
	}

	return strings.Join(parts, " ")
}

func (l *coordList) Set(s string) error {
	c, err := parseCoord(s)
	if err != nil {
		return err
	}
	*l = append(*l, c)

	return nil
}

// parseCoord accepts "x,y" or "x;y".
func parseCoord(s string) (tilegrid.Coord, error) {
	parts := strings.FieldsFunc(s, func(r rune) bool { return r == ',' || r == ';' })
	if len(parts) != 2 {
		return tilegrid.Coord{}, fmt.Errorf("%w: %q", errBadCoord, s)
	}
	x, errX := strconv.Atoi(strings.TrimSpace(parts[0]))
	y, errY := strconv.Atoi(strings.TrimSpace(parts[1]))
	if errX != nil || errY != nil {
		return tilegrid.Coord{}, fmt.Errorf("%w: %q", errBadCoord, s)
	}

	return tilegrid.Coord{X: x, Y: y}, nil
}

// loadConfig resolves defaults, then environment, then flags.
func loadConfig(args []string, getenv func(string) string, stderr io.Writer) (config, error) {
	cfg := config{
		Width:       10,
		Height:      10,
		BlockChance: tilegrid.DefaultBlockChance,
		Zoom:        2,
		Weight:      astar.DefaultWeight,
	}
	if err := applyEnv(&cfg, getenv); err != nil {
		return config{}, err
	}

	fs := flag.NewFlagSet("tilepath", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.IntVar(&cfg.Width, "width", cfg.Width, "grid width in tiles")
	fs.IntVar(&cfg.Height, "height", cfg.Height, "grid height in tiles")
	fs.Float64Var(&cfg.BlockChance, "block", cfg.BlockChance, "probability that a tile starts blocked")
	fs.Float64Var(&cfg.Zoom, "zoom", cfg.Zoom, "noise zoom")
	fs.Int64Var(&cfg.Seed, "seed", cfg.Seed, "generation seed (0 picks one from the clock)")
	fs.Float64Var(&cfg.Weight, "weight", cfg.Weight, "accumulated-cost weight in the priority")
	conn := fs.String("conn", "8", "neighbor connectivity: 8 or 4")
	start := fs.String("start", "0,0", "start tile x,y")
	goal := fs.String("goal", "", "goal tile x,y (default: bottom-right corner)")
	strict := fs.Bool("strict", false, "supersede recorded nodes by priority instead of heuristic")
	frontier := fs.String("frontier", "heap", "open-set structure: heap or linear")
	order := fs.String("order", "goal", "print order: goal (goal first) or start (start first)")
	var toggles coordList
	fs.Var(&toggles, "toggle", "flip the blocked flag of tile x,y before searching (repeatable)")

	if err := fs.Parse(args); err != nil {
		return config{}, err
	}

	var err error
	switch *conn {
	case "8":
		cfg.Conn = tilegrid.Conn8
	case "4":
		cfg.Conn = tilegrid.Conn4
	default:
		return config{}, fmt.Errorf("tilepath: -conn must be 8 or 4, got %q", *conn)
	}
	switch *frontier {
	case "heap":
		cfg.Frontier = astar.FrontierHeap
	case "linear":
		cfg.Frontier = astar.FrontierLinear
	default:
		return config{}, fmt.Errorf("tilepath: -frontier must be heap or linear, got %q", *frontier)
	}
	switch *order {
	case "goal":
	case "start":
		cfg.StartFirst = true
	default:
		return config{}, fmt.Errorf("tilepath: -order must be goal or start, got %q", *order)
	}
	if *strict {
		cfg.Supersede = astar.SupersedeByPriority
	}
	if cfg.Start, err = parseCoord(*start); err != nil {
		return config{}, err
	}
	if *goal == "" {
		cfg.Goal = tilegrid.Coord{X: cfg.Width - 1, Y: cfg.Height - 1}
	} else if cfg.Goal, err = parseCoord(*goal); err != nil {
		return config{}, err
	}
	cfg.Toggles = toggles

	return cfg, nil
}

// applyEnv overrides defaults with TILEPATH_* variables that are set.
func applyEnv(cfg *config, getenv func(string) string) error {
	ints := []struct {
		key string
		dst *int
	}{{envWidth, &cfg.Width}, {envHeight, &cfg.Height}}
	for _, e := range ints {
		if v := getenv(e.key); v != "" {
			n, err := strconv.Atoi(v)
			if err != nil {
				return fmt.Errorf("tilepath: %s: %w", e.key, err)
			}
			*e.dst = n
		}
	}

	floats := []struct {
		key string
		dst *float64
	}{{envBlockChance, &cfg.BlockChance}, {envZoom, &cfg.Zoom}}
	for _, e := range floats {
		if v := getenv(e.key); v != "" {
			f, err := strconv.ParseFloat(v, 64)
			if err != nil {
				return fmt.Errorf("tilepath: %s: %w", e.key, err)
			}
			*e.dst = f
		}
	}

	if v := getenv(envSeed); v != "" {
		s, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return fmt.Errorf("tilepath: %s: %w", envSeed, err)
		}
		cfg.Seed = s
	}

	return nil
}
