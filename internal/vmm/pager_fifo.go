package vmm

// fifoPager evicts frames in the order they were first handed out,
// ignoring reference/modify bits entirely (§4.4).
type fifoPager struct {
	hand int
}

func (p *fifoPager) SelectVictim(ctx PagerContext) int {
	victim := p.hand
	p.hand = (p.hand + 1) % ctx.NumFrames()
	return victim
}

func (p *fifoPager) ResetAge(PagerContext, int) {}
