// Package stats folds coverage records into per-file and global statement counts.
package stats

import (
	"context"
	"sort"

	"go.opentelemetry.io/otel/attribute"

	"github.com/khicago/covstat/internal/perf"
	"github.com/khicago/covstat/internal/profile"
)

// Counts tracks observed and covered statements. Covered never exceeds Total.
type Counts struct {
	Total   int
	Covered int
}

func (counts *Counts) add(covered bool) {
	counts.Total++
	if covered {
		counts.Covered++
	}
}

// Percent is the covered share of Total in the range 0-100. An empty scope is 0.
func (counts Counts) Percent() float64 {
	if counts.Total == 0 {
		return 0
	}
	return float64(counts.Covered) / float64(counts.Total) * 100
}

type Accumulator struct {
	Files  map[string]*Counts
	Global Counts
}

func NewAccumulator() Accumulator {
	return Accumulator{Files: make(map[string]*Counts)}
}

func (acc *Accumulator) Add(record profile.Record) {
	if acc.Files == nil {
		acc.Files = make(map[string]*Counts)
	}

	file, ok := acc.Files[record.File]
	if !ok {
		file = &Counts{}
		acc.Files[record.File] = file
	}

	covered := record.Covered()
	file.add(covered)
	acc.Global.add(covered)
}

// SortedFiles returns file names in ascending byte order.
func (acc Accumulator) SortedFiles() []string {
	names := make([]string, 0, len(acc.Files))
	for name := range acc.Files {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Fold accumulates records into a fresh Accumulator.
func Fold(ctx context.Context, records []profile.Record) Accumulator {
	_, span := perf.StartSpan(ctx, "stats.fold")
	defer span.End()

	acc := NewAccumulator()
	for _, record := range records {
		acc.Add(record)
	}

	span.SetAttributes(
		attribute.Int("files", len(acc.Files)),
		attribute.Int("statements", acc.Global.Total),
		attribute.Int("covered", acc.Global.Covered),
	)
	return acc
}
