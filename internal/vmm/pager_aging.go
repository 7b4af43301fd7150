package vmm

// agingPager approximates LRU with a 32-bit shift register per frame:
// every selection call ages every frame by one generation and the
// frame with the smallest age is evicted (§4.4).
type agingPager struct {
	hand int
}

func (p *agingPager) SelectVictim(ctx PagerContext) int {
	n := ctx.NumFrames()
	minIdx := -1
	var minAge uint32

	for i := 0; i < n; i++ {
		idx := (p.hand + i) % n
		age := ctx.FrameAge(idx) >> 1

		pte := ctx.FramePTE(idx)
		if pte.IsReferenced() {
			age |= 0x80000000
			pte.SetReferenced(false)
		}
		ctx.SetFrameAge(idx, age)

		if minIdx == -1 || age < minAge {
			minIdx = idx
			minAge = age
		}
	}

	p.hand = (minIdx + 1) % n
	return minIdx
}

func (p *agingPager) ResetAge(ctx PagerContext, frameID int) {
	ctx.SetFrameAge(frameID, 0)
}
