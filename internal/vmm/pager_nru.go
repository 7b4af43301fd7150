package vmm

// nruPager implements Enhanced Second-Chance: frames are bucketed by
// (R,M) into four classes and the lowest non-empty class yields the
// victim. A periodic full scan resets every R bit (§4.4).
type nruPager struct {
	hand      int
	lastReset uint64
}

func classOf(pte *PTE) int {
	class := 0
	if pte.IsReferenced() {
		class += 2
	}
	if pte.IsModified() {
		class++
	}
	return class
}

func (p *nruPager) SelectVictim(ctx PagerContext) int {
	n := ctx.NumFrames()
	now := ctx.InsCounter()

	resetting := now >= p.lastReset+nruResetInterval

	var classFirst [4]int
	for i := range classFirst {
		classFirst[i] = -1
	}

	walked := 0
	for i := 0; i < n; i++ {
		idx := (p.hand + i) % n
		walked++
		pte := ctx.FramePTE(idx)
		class := classOf(pte)
		if classFirst[class] == -1 {
			classFirst[class] = idx
		}

		if resetting {
			pte.SetReferenced(false)
		} else if classFirst[0] != -1 {
			break
		}
	}

	victim := -1
	for class := 0; class < 4; class++ {
		if classFirst[class] != -1 {
			victim = classFirst[class]
			break
		}
	}

	ctx.ReportScan(walked)
	p.hand = (victim + 1) % n
	if resetting {
		p.lastReset = now
	}
	return victim
}

func (p *nruPager) ResetAge(PagerContext, int) {}
