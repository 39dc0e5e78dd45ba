// Package engine simulates a six-team pennant race: player generation, daily
// matchups, experience-driven growth and training drills.
//
// Every function takes its randomness from a Source and returns fresh values
// instead of mutating its arguments, so a seeded Source replays a season exactly.
package engine

import (
	"log/slog"
	"math"
	"math/rand"
	"time"
)

// Source is the random stream the simulation draws from. *rand.Rand satisfies it.
type Source interface {
	Float64() float64
	Shuffle(n int, swap func(i, j int))
}

// NewSource creates a seeded source. If seed is 0, the current time is used and
// logged so the season can be replayed.
func NewSource(seed int64) *rand.Rand {
	if seed == 0 {
		seed = time.Now().UnixNano()
		slog.Info("Using random seed", "seed", seed)
	}
	return rand.New(rand.NewSource(seed))
}

type Weighted[T any] struct {
	Weight  float64
	Outcome T
}

// Pick draws one value and walks the cumulative thresholds in order. A draw
// past the last threshold returns the last outcome.
func Pick[T any](src Source, choices []Weighted[T]) T {
	roll := src.Float64()
	var threshold float64
	for _, c := range choices {
		threshold += c.Weight
		if roll < threshold {
			return c.Outcome
		}
	}
	return choices[len(choices)-1].Outcome
}

// uniform returns a draw in [lo, hi).
func uniform(src Source, lo, hi float64) float64 {
	return lo + src.Float64()*(hi-lo)
}

// intn returns an integer in [0, n).
func intn(src Source, n int) int {
	return int(math.Floor(src.Float64() * float64(n)))
}

func chance(src Source, p float64) bool {
	return src.Float64() < p
}
