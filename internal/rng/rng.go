// Package rng implements the single deterministic randomness source
// permitted inside the simulation core (spec.md §4.1). The Coordinator
// owns exactly one Rng; its state is part of every snapshot checksum.
package rng

// Rng is a 32-bit linear congruential generator: s' = s*1664525 +
// 1013904223 (mod 2^32). No other source of randomness — wall-clock
// time, platform RNG, pointer hashes — is permitted anywhere in the
// core; any such path would fail the determinism tests in spec.md §8.
type Rng struct {
	state uint32
}

const (
	lcgMul = 1664525
	lcgAdd = 1013904223
)

// New seeds a generator.
func New(seed uint32) *Rng {
	return &Rng{state: seed}
}

// Seed resets the generator to a new seed, as required by init_run/reset_run.
func (r *Rng) Seed(seed uint32) {
	r.state = seed
}

// State returns the raw internal state, exported verbatim into the
// snapshot for determinism hashing (spec.md §8 scenario 5).
func (r *Rng) State() uint32 {
	return r.state
}

// SetState restores a previously captured state (used by replay tooling).
func (r *Rng) SetState(s uint32) {
	r.state = s
}

// NextU32 advances the generator and returns the new state.
func (r *Rng) NextU32() uint32 {
	r.state = r.state*lcgMul + lcgAdd
	return r.state
}

// NextFloat returns a float in [0,1), scaled from the high 24 bits of
// the generator (avoids the low bits' well-known short period in LCGs).
func (r *Rng) NextFloat() float64 {
	v := r.NextU32()
	top24 := v >> 8
	return float64(top24) / float64(1<<24)
}

// RangeI32 returns a pseudo-random integer in [lo, hi).
// If hi <= lo, lo is returned unconditionally.
func (r *Rng) RangeI32(lo, hi int32) int32 {
	if hi <= lo {
		return lo
	}
	span := uint32(hi - lo)
	return lo + int32(r.NextU32()%span)
}

// Choose returns a pseudo-random index in [0, n). Returns 0 if n <= 0.
func (r *Rng) Choose(n int) int {
	if n <= 0 {
		return 0
	}
	return int(r.NextU32() % uint32(n))
}
