package engine

// PRNG is a reentrant 32-bit multiply-with-carry generator built from two
// 16-bit streams. It carries no package-level state: every trial embeds its
// own pair of seeds so that two workers never share mutable generator
// state (§5 Shared state: none at trial granularity).
type PRNG struct {
	SeedW uint32
	SeedZ uint32
}

// NewPRNG seeds a generator. Seeds of zero are nudged to a fixed nonzero
// value; an all-zero MWC state is a fixed point that never advances.
func NewPRNG(seedW, seedZ uint32) PRNG {
	if seedW == 0 {
		seedW = 1
	}
	if seedZ == 0 {
		seedZ = 2
	}
	return PRNG{SeedW: seedW, SeedZ: seedZ}
}

// Next advances both streams and returns the concatenated 32-bit value.
func (p *PRNG) Next() uint32 {
	p.SeedW = 18000*(p.SeedW&0xFFFF) + (p.SeedW >> 16)
	p.SeedZ = 36969*(p.SeedZ&0xFFFF) + (p.SeedZ >> 16)
	return (p.SeedZ << 16) + p.SeedW
}

// Rnd returns next() mod n. n must be positive; modulo bias from the
// reduction is an accepted approximation (spec §4.1).
func (p *PRNG) Rnd(n int) int {
	if n <= 0 {
		return 0
	}
	return int(p.Next() % uint32(n))
}

// Chance reports a pct% (0-100) success, using a uniform 0-99 draw.
func (p *PRNG) Chance(pct int) bool {
	if pct <= 0 {
		return false
	}
	if pct >= 100 {
		return true
	}
	return p.Rnd(100) < pct
}
