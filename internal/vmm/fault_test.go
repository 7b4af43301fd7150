package vmm

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

// newOneVMAProcess builds the process §8's worked scenario skeleton
// uses: a single process, PID 0, with one non-write-protected,
// non-file-mapped VMA covering vpages [0,9].
func newOneVMAProcess() *Process {
	return NewProcess(0, []VMA{{StartPage: 0, EndPage: 9}})
}

var _ = Describe("Reference", func() {
	var (
		frames *FrameTable
		proc   *Process
		sim    *Simulation
	)

	BeforeEach(func() {
		frames = NewFrameTable(4)
		proc = newOneVMAProcess()
	})

	newSim := func(pager Pager) *Simulation {
		s := NewSimulation(frames, []*Process{proc}, pager, NopEventSink{})
		s.Cur = proc
		return s
	}

	Describe("segmentation violation", func() {
		It("does not allocate a frame and leaves R unset", func() {
			sim = newSim(&fifoPager{})
			sim.Reference('r', 20)

			pte := proc.PageTable[20]
			Expect(pte.IsPresent()).To(BeFalse())
			Expect(pte.IsReferenced()).To(BeFalse())
			Expect(proc.Counters.SegV).To(Equal(uint64(1)))
		})
	})

	Describe("write to a write-protected VMA", func() {
		It("sets R but not M, and does not allocate twice", func() {
			proc.VMAs = []VMA{{StartPage: 0, EndPage: 9, IsWriteProtected: true}}
			sim = newSim(&fifoPager{})

			sim.Reference('w', 0)

			pte := proc.PageTable[0]
			Expect(pte.IsReferenced()).To(BeTrue())
			Expect(pte.IsModified()).To(BeFalse())
			Expect(proc.Counters.SegProt).To(Equal(uint64(1)))
			Expect(pte.IsPresent()).To(BeTrue())
		})
	})

	Describe("first touch of an anonymous page", func() {
		It("emits ZERO and maps the head of the free list", func() {
			sim = newSim(&fifoPager{})
			sim.Reference('r', 0)

			pte := proc.PageTable[0]
			Expect(pte.IsPresent()).To(BeTrue())
			Expect(pte.FrameNum()).To(Equal(0))
			Expect(proc.Counters.Zeros).To(Equal(uint64(1)))
			Expect(proc.Counters.Maps).To(Equal(uint64(1)))
		})
	})

	Describe("worked scenario skeleton (§8)", func() {
		It("FIFO evicts frame 0 on the fifth distinct reference", func() {
			sim = newSim(&fifoPager{})
			for _, vp := range []int{0, 1, 2, 3} {
				sim.Reference('r', vp)
			}
			Expect(proc.Counters.Maps).To(Equal(uint64(4)))

			sim.Reference('r', 4)

			Expect(proc.PageTable[4].FrameNum()).To(Equal(0))
			Expect(proc.PageTable[0].IsPresent()).To(BeFalse())
			Expect(proc.Counters.Unmaps).To(Equal(uint64(1)))
		})

		It("Random evicts frame 3 mod 4 = 3", func() {
			sim = newSim(&randomPager{rng: NewRNG([]int{3, 1, 2, 0})})
			for _, vp := range []int{0, 1, 2, 3} {
				sim.Reference('r', vp)
			}

			sim.Reference('r', 4)

			Expect(proc.PageTable[4].FrameNum()).To(Equal(3))
			Expect(proc.PageTable[3].IsPresent()).To(BeFalse())
		})

		It("Clock evicts frame 0 after clearing every R bit it passes", func() {
			sim = newSim(&clockPager{})
			for _, vp := range []int{0, 1, 2, 3} {
				sim.Reference('r', vp)
			}
			// Every PTE's R bit is set by the read that mapped it.
			for vp := 0; vp < 4; vp++ {
				Expect(proc.PageTable[vp].IsReferenced()).To(BeTrue())
			}

			sim.Reference('r', 4)

			Expect(proc.PageTable[4].FrameNum()).To(Equal(0))
			for vp := 1; vp < 4; vp++ {
				Expect(proc.PageTable[vp].IsReferenced()).To(BeFalse())
			}
		})
	})
})
