// SPDX-License-Identifier: MIT
// Package: specimens/seed
//
// splitmix.go - SplitMix64 implementation of Seed.
//
// Notes:
//   - mix64 is the MurmurHash3 finalizer used by SplitMix for outputs.
//   - mixGamma uses the Stafford variant 13 finalizer and forces an odd gamma
//     with enough bit transitions, as in the reference algorithm.

package seed

import (
	"fmt"
	"math"
	"math/bits"
)

// goldenGamma is the default odd increment (2^64 / golden ratio).
const goldenGamma uint64 = 0x9e3779b97f4a7c15

// minGammaTransitions is the minimum popcount of z^(z>>1) accepted for a gamma.
const minGammaTransitions = 24

// floatUnit scales a 53-bit integer into [0,1).
const floatUnit = 1.0 / (1 << 53)

// SplitMix is a SplitMix64 generator state. The zero value is usable but
// callers should prefer New or Spawn.
type SplitMix struct {
	state uint64
	gamma uint64 // always odd
}

var _ Seed = SplitMix{}

func newSplitMix(n uint64) SplitMix {
	return SplitMix{state: mix64(n), gamma: mixGamma(n + goldenGamma)}
}

// NextInt implements Seed.
func (s SplitMix) NextInt(min, max int64) (int64, Seed) {
	if min > max {
		min, max = max, min
	}
	span := uint64(max) - uint64(min)
	if span == math.MaxUint64 {
		v, next := s.next()
		return int64(v), next
	}

	off, next := s.bounded(span + 1)
	return int64(uint64(min) + off), next
}

// NextFloat implements Seed.
func (s SplitMix) NextFloat() (float64, Seed) {
	v, next := s.next()
	return float64(v>>11) * floatUnit, next
}

// Split implements Seed.
func (s SplitMix) Split() (Seed, Seed) {
	first := s.state + s.gamma
	second := first + s.gamma
	return SplitMix{state: second, gamma: s.gamma}, SplitMix{state: mix64(first), gamma: mixGamma(second)}
}

// String renders the raw state; useful when logging a failing run.
func (s SplitMix) String() string {
	return fmt.Sprintf("SplitMix(%#016x,%#016x)", s.state, s.gamma)
}

// next advances the state by gamma and returns the mixed output.
func (s SplitMix) next() (uint64, SplitMix) {
	st := s.state + s.gamma
	return mix64(st), SplitMix{state: st, gamma: s.gamma}
}

// bounded draws uniformly from [0, n) with Lemire's nearly-divisionless
// method. n must be > 0.
func (s SplitMix) bounded(n uint64) (uint64, SplitMix) {
	v, cur := s.next()
	hi, lo := bits.Mul64(v, n)
	if lo < n {
		threshold := -n % n
		for lo < threshold {
			v, cur = cur.next()
			hi, lo = bits.Mul64(v, n)
		}
	}
	return hi, cur
}

func mix64(z uint64) uint64 {
	z = (z ^ (z >> 33)) * 0xff51afd7ed558ccd
	z = (z ^ (z >> 33)) * 0xc4ceb9fe1a85ec53
	return z ^ (z >> 33)
}

func mix64variant13(z uint64) uint64 {
	z = (z ^ (z >> 30)) * 0xbf58476d1ce4e5b9
	z = (z ^ (z >> 27)) * 0x94d049bb133111eb
	return z ^ (z >> 31)
}

func mixGamma(z uint64) uint64 {
	z = mix64variant13(z) | 1
	if bits.OnesCount64(z^(z>>1)) < minGammaTransitions {
		z ^= 0xaaaaaaaaaaaaaaaa
	}
	return z
}
