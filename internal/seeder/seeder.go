package seeder

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/electro/internal/logging"
)

type Seeder struct {
	source Source
	target Target
	logger logging.Logger
}

func New(source Source, target Target, l logging.Logger) *Seeder {
	return &Seeder{source: source, target: target, logger: l.With("module", "seeder")}
}

// Run loads each partition in order and returns how many records every
// partition received. Partitions without a dump are skipped; any other
// failure stops the run.
func (s *Seeder) Run(ctx context.Context, partitions []string) (map[string]int, error) {
	loaded := make(map[string]int, len(partitions))
	for _, p := range partitions {
		n, err := s.loadPartition(ctx, p)
		if errors.Is(err, ErrNoDump) {
			s.logger.Warn(ctx, "No dump, skipping", "partition", p)
			continue
		}
		if err != nil {
			return loaded, fmt.Errorf("partition %s: %w", p, err)
		}
		loaded[p] = n
		s.logger.Info(ctx, "Partition loaded", "partition", p, "records", n)
	}
	return loaded, nil
}

func (s *Seeder) loadPartition(ctx context.Context, partition string) (int, error) {
	r, err := s.source.Open(ctx, partition)
	if err != nil {
		return 0, err
	}
	defer r.Close()

	docs, err := DecodeDump(r)
	if err != nil {
		return 0, err
	}
	if err := s.target.Load(ctx, partition, docs); err != nil {
		return 0, err
	}
	return len(docs), nil
}
