package vmm

// RNG is the deterministic pseudorandom source described in §4.1. It is
// seeded from a fixed table read from the random file and never
// produces a value the table doesn't already contain; this is what
// makes a (trace, random file, policy, frame count) tuple reproducible
// to the byte (P7).
type RNG struct {
	vals []int
	ofs  int
}

// NewRNG wraps a preloaded table of random values. The table must be
// non-empty.
func NewRNG(vals []int) *RNG {
	if len(vals) == 0 {
		panic("vmm: RNG requires a non-empty table")
	}
	return &RNG{vals: vals}
}

// Next returns RANDVALS[OFS mod len(RANDVALS)] mod bound and advances
// the cursor. It is invoked exactly once per victim-selection call by
// the Random pager, regardless of outcome.
func (r *RNG) Next(bound int) int {
	v := r.vals[r.ofs%len(r.vals)] % bound
	r.ofs++
	return v
}
