package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/dmitrijs2005/electro/internal/docstore"
	"github.com/dmitrijs2005/electro/internal/logging"
	"github.com/dmitrijs2005/electro/internal/seeder"
	"github.com/dmitrijs2005/electro/internal/server/repositories/repomanager"
)

func main() {
	cfg, err := seeder.Load(os.Args[1:])
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(2)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	logger := logging.NewJSON(os.Stdout, logging.ParseLevel(cfg.LogLevel))

	if err := run(ctx, cfg, logger); err != nil {
		logger.Error(ctx, "Seeding failed", "error", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg seeder.Config, logger logging.Logger) error {
	var source seeder.Source
	switch cfg.Source {
	case seeder.SourceS3:
		s, err := seeder.NewS3Source(ctx, cfg.S3)
		if err != nil {
			return err
		}
		source = s
	default:
		source = seeder.FileSource{Dir: cfg.Dir}
	}

	db, err := docstore.OpenPostgres(ctx, cfg.DatabaseDSN)
	if err != nil {
		return err
	}
	defer db.Close()

	m, err := repomanager.NewPostgresRepositoryManager(db, repomanager.Collections{})
	if err != nil {
		return err
	}
	if err := m.RunMigrations(ctx); err != nil {
		return fmt.Errorf("migrations error: %w", err)
	}

	loaded, err := seeder.New(source, seeder.NewPostgresTarget(db), logger).Run(ctx, cfg.Partitions)
	if err != nil {
		return err
	}

	total := 0
	for _, n := range loaded {
		total += n
	}
	logger.Info(ctx, "Seeding done", "partitions", len(loaded), "records", total)
	return nil
}
