package vmm

// workingSetPager evicts a frame that has fallen outside the working
// set (hasn't been referenced within the last tau instructions),
// stopping its scan the instant it finds one; if none has aged out it
// falls back to the least-recently-touched frame in the scan (§4.4).
type workingSetPager struct {
	hand int
}

func (p *workingSetPager) SelectVictim(ctx PagerContext) int {
	n := ctx.NumFrames()
	now := ctx.InsCounter()

	victim := -1
	oldestIdx := -1
	var oldestAge uint32

	for i := 0; i < n; i++ {
		idx := (p.hand + i) % n
		pte := ctx.FramePTE(idx)
		age := ctx.FrameAge(idx)

		if pte.IsReferenced() {
			age = uint32(now)
			ctx.SetFrameAge(idx, age)
			pte.SetReferenced(false)
		} else if now > uint64(age)+workingSetTau {
			victim = idx
			break
		}

		if oldestIdx == -1 || age < oldestAge {
			oldestIdx = idx
			oldestAge = age
		}
	}

	if victim == -1 {
		victim = oldestIdx
	}

	p.hand = (victim + 1) % n
	return victim
}

func (p *workingSetPager) ResetAge(ctx PagerContext, frameID int) {
	ctx.SetFrameAge(frameID, uint32(ctx.InsCounter()))
}
