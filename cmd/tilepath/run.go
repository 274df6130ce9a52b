package main

import (
	"context"
	"fmt"
	"io"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/katalvlaran/tilepath/astar"
	"github.com/katalvlaran/tilepath/tilegrid"
)

// run builds the grid described by cfg, applies the toggles, searches from
// cfg.Start to cfg.Goal and prints the path to out.
// It reports whether a path was found.
func run(ctx context.Context, cfg config, tracer trace.Tracer, out io.Writer) (bool, error) {
	g, err := generate(ctx, cfg, tracer)
	if err != nil {
		return false, err
	}

	_, span := tracer.Start(ctx, "path.find", trace.WithAttributes(
		attribute.String("search.start", cfg.Start.String()),
		attribute.String("search.goal", cfg.Goal.String()),
		attribute.Float64("search.weight", cfg.Weight),
		attribute.String("search.supersede", cfg.Supersede.String()),
		attribute.String("search.frontier", cfg.Frontier.String()),
	))
	defer span.End()

	if ok, err := g.Reachable(cfg.Start, cfg.Goal); err == nil {
		span.SetAttributes(attribute.Bool("search.reachable", ok))
	}

	deepest := 0
	opts := append(cfg.searchOptions(), astar.WithOnExpand(func(n *astar.SearchNode) {
		if h := n.Hops(); h > deepest {
			deepest = h
		}
	}))
	res, err := astar.FindPath(g, cfg.Start, cfg.Goal, opts...)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return false, err
	}
	span.SetAttributes(
		attribute.Bool("search.found", res.Found),
		attribute.Int("search.expanded", res.Expanded),
		attribute.Int("search.hops", res.Hops()),
		attribute.Int("search.max_depth", deepest),
	)

	if !res.Found {
		fmt.Fprintf(out, "no path (expanded=%d)\n", res.Expanded)
		return false, nil
	}

	nodes := res.Path
	if cfg.StartFirst {
		nodes = res.StartToGoal()
	}
	for _, n := range nodes {
		fmt.Fprintf(out, "%d;%d cost=%.3f total=%.3f\n", n.X, n.Y, n.Cost, n.AccumulatedCost)
	}
	fmt.Fprintf(out, "hops=%d expanded=%d\n", res.Hops(), res.Expanded)

	return true, nil
}

// generate creates the grid and flips every toggled tile.
func generate(ctx context.Context, cfg config, tracer trace.Tracer) (*tilegrid.Grid, error) {
	_, span := tracer.Start(ctx, "grid.generate", trace.WithAttributes(
		attribute.Int("grid.width", cfg.Width),
		attribute.Int("grid.height", cfg.Height),
		attribute.Float64("grid.block_chance", cfg.BlockChance),
		attribute.Int64("grid.seed", cfg.Seed),
		attribute.String("grid.conn", cfg.Conn.String()),
	))
	defer span.End()

	g, err := tilegrid.NewGrid(cfg.Width, cfg.Height, cfg.gridOptions())
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}
	for _, c := range cfg.Toggles {
		if _, err = g.ToggleBlocked(c.X, c.Y); err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
			return nil, fmt.Errorf("toggle %s: %w", c, err)
		}
	}

	blocked := 0
	for _, t := range g.Tiles() {
		if t.Blocked {
			blocked++
		}
	}
	span.SetAttributes(
		attribute.Int("grid.blocked", blocked),
		attribute.Int("grid.toggled", len(cfg.Toggles)),
		attribute.Int("grid.regions", len(g.Regions())),
	)

	return g, nil
}
