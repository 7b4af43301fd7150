package vmm

// randomPager evicts whatever frame the deterministic RNG names. It
// carries no cursor of its own — the RNG's internal offset is the only
// state that advances (§4.4).
type randomPager struct {
	rng *RNG
}

func (p *randomPager) SelectVictim(ctx PagerContext) int {
	return p.rng.Next(ctx.NumFrames())
}

func (p *randomPager) ResetAge(PagerContext, int) {}
