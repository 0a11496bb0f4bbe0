// SPDX-License-Identifier: MIT
// Package: specimens/specimens
//
// statistics.go - classification summaries of generated values.
//
// Notes:
//   - Statistics divides by the requested sample size, so fractions of an
//     exhausted generator sum to less than one.
//   - Rows are ordered by descending share, then by name, for stable output.

package specimens

import (
	"fmt"
	"sort"
)

// Stats maps a classification bucket to the fraction of samples in it.
type Stats map[string]float64

// Row is one bucket of a statistics table.
type Row struct {
	Name     string
	Count    int
	Fraction float64
}

// Percentage renders the fraction as a percentage with two decimals.
func (r Row) Percentage() string {
	return fmt.Sprintf("%.2f%%", r.Fraction*100)
}

// Statistics classifies the accepted values of g and reports the share of
// the sample each bucket received.
// Honours WithSeed, WithSize, WithSampleSize and WithExhaustionThreshold.
func Statistics[T any](g Generator[T], classify func(T) string, opts ...Option) Stats {
	cfg := newConfig(opts...)
	counts := make(map[string]int)
	for x := range g.Generate(cfg.seed, cfg.size, cfg.sampleSize, WithExhaustionThreshold(cfg.threshold)) {
		counts[classify(x)]++
	}
	stats := make(Stats, len(counts))
	for k, n := range counts {
		stats[k] = float64(n) / float64(cfg.sampleSize)
	}
	return stats
}

// Rows returns the buckets sorted for display.
func (s Stats) Rows() []Row {
	rows := make([]Row, 0, len(s))
	for k, f := range s {
		rows = append(rows, Row{Name: k, Fraction: f})
	}
	sortRows(rows)
	return rows
}

// Meta is a summary over the raw specimen stream.
type Meta struct {
	// Classifications counts accepted values per bucket.
	Classifications map[string]int
	Accepted        int
	Rejected        int
	Exhausted       bool
}

// MetaStatistics pulls up to the sample size of raw specimens from g and
// reports per-bucket counts of the accepted ones, the accepted and rejected
// totals, and whether the stream exhausted.
func MetaStatistics[T any](g Generator[T], classify func(T) string, opts ...Option) Meta {
	cfg := newConfig(opts...)
	m := Meta{Classifications: make(map[string]int)}
	for sp := range g.GenerateSpecimens(cfg.seed, cfg.size, cfg.sampleSize, WithExhaustionThreshold(cfg.threshold)) {
		switch {
		case sp.IsExhausted():
			m.Exhausted = true
		case sp.IsRejected():
			m.Rejected++
		default:
			x, _ := sp.Value()
			m.Accepted++
			m.Classifications[classify(x)]++
		}
	}
	return m
}

// Rows returns the accepted buckets with their share of accepted values.
func (m Meta) Rows() []Row {
	rows := make([]Row, 0, len(m.Classifications))
	for k, n := range m.Classifications {
		r := Row{Name: k, Count: n}
		if m.Accepted > 0 {
			r.Fraction = float64(n) / float64(m.Accepted)
		}
		rows = append(rows, r)
	}
	sortRows(rows)
	return rows
}

func sortRows(rows []Row) {
	sort.Slice(rows, func(i, j int) bool {
		if rows[i].Fraction != rows[j].Fraction {
			return rows[i].Fraction > rows[j].Fraction
		}
		return rows[i].Name < rows[j].Name
	})
}
