package main

import (
	"context"
	"flag"
	"os"
	"time"

	"github.com/gravina/gamenight/internal/adapters/ledger"
	"github.com/gravina/gamenight/internal/config"
	"github.com/gravina/gamenight/internal/sampledata"
	"github.com/gravina/gamenight/pkg/logger"
)

func main() {
	var (
		dataDir = flag.String("data", "", "Data directory for the generated ledgers (default: configured data_dir)")
		nights  = flag.Int("nights", 0, "Number of game nights to generate")
		plays   = flag.Int("plays", 0, "Number of plays to generate")
		players = flag.Int("players", 0, "Number of distinct players")
		seed    = flag.Int64("seed", 0, "Random seed (0 keeps the default)")
		start   = flag.String("start", "", "First game night date (YYYY-MM-DD)")
	)
	flag.Parse()

	if err := logger.Init(); err != nil {
		os.Stderr.WriteString("failed to initialize logging: " + err.Error() + "\n")
		os.Exit(1)
	}

	ctx := context.Background()

	cfg, err := config.Load(ctx)
	if err != nil {
		os.Stderr.WriteString("failed to load config: " + err.Error() + "\n")
		os.Exit(1)
	}
	dir := cfg.DataDir
	if *dataDir != "" {
		dir = *dataDir
	}

	gen := sampledata.NewConfig()
	if *nights > 0 {
		gen.Nights = *nights
	}
	if *plays > 0 {
		gen.Plays = *plays
	}
	if *players > 0 {
		gen.Players = *players
	}
	if *seed != 0 {
		gen.Seed = *seed
	}
	if *start != "" {
		day, err := time.Parse("2006-01-02", *start)
		if err != nil {
			os.Stderr.WriteString("invalid -start date: " + err.Error() + "\n")
			os.Exit(1)
		}
		gen.Start = day.UTC()
	}

	events, playRecords := sampledata.Generate(gen)

	store := ledger.New(dir)
	if err := store.SaveEvents(ctx, events); err != nil {
		os.Stderr.WriteString("failed to write events ledger: " + err.Error() + "\n")
		os.Exit(1)
	}
	if err := store.SavePlays(ctx, playRecords); err != nil {
		os.Stderr.WriteString("failed to write plays ledger: " + err.Error() + "\n")
		os.Exit(1)
	}

	logger.Get().Info(ctx, "demo ledgers written",
		logger.String("dir", dir),
		logger.Int("events", len(events)),
		logger.Int("plays", len(playRecords)),
	)
}
