// Command tilepath generates a noise-cost tile grid and prints a weighted
// A* path across it.
//
// Usage:
//
//	tilepath [-width 10] [-height 10] [-block 0.25] [-zoom 2] [-seed 0]
//	         [-conn 8|4] [-start x,y] [-goal x,y] [-toggle x,y ...]
//	         [-weight 3] [-strict] [-frontier heap|linear] [-order goal|start]
//
// Flag defaults may be supplied through TILEPATH_* environment variables or
// a .env file in the working directory. Exit code 2 means no path exists.
package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"

	"github.com/katalvlaran/tilepath/internal/telemetry"
)

func main() {
	os.Exit(tilepath())
}

// tilepath runs the command and returns its exit code.
func tilepath() int {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		log.Printf("tilepath: .env: %v", err)
	}

	cfg, err := loadConfig(os.Args[1:], os.Getenv, os.Stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		log.Printf("tilepath: %v", err)
		return 1
	}
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
		log.Printf("tilepath: seed=%d", cfg.Seed)
	}

	ctx := context.Background()
	tracer := telemetry.NoopTracer()
	if telemetry.Enabled() {
		shutdown, err := telemetry.Setup(ctx)
		if err != nil {
			log.Printf("tilepath: telemetry disabled: %v", err)
		} else {
			defer func() {
				sctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
				defer cancel()
				if err := shutdown(sctx); err != nil {
					log.Printf("tilepath: telemetry shutdown: %v", err)
				}
			}()
			tracer = telemetry.Tracer("cmd")
		}
	}

	found, err := run(ctx, cfg, tracer, os.Stdout)
	if err != nil {
		log.Printf("tilepath: %v", err)
		return 1
	}
	if !found {
		return 2
	}

	return 0
}
