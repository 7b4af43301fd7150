package vmm

// Reference handles a single 'r' or 'w' instruction against the
// current process, implementing the fault handler of §4.5 end to end:
// presence check, VMA check, frame acquisition, victim unmap,
// fault-class classification, mapping, and R/M bookkeeping.
func (s *Simulation) Reference(op byte, vpage int) {
	s.cost += CostLoadStore

	pte := &s.Cur.PageTable[vpage]

	if !pte.IsPresent() {
		if !s.checkVMA(pte, vpage) {
			s.Sink.SegV()
			s.cost += CostSegV
			s.Cur.Counters.SegV++
			return
		}

		frameID := s.Frames.Allocate(s.Pager, s)
		frame := &s.Frames.Frames[frameID]
		if frame.Victim {
			s.unmapVictim(frameID)
		}

		s.fill(pte, frameID)

		s.Frames.Assign(frameID, s.Cur.PID, vpage)
		s.frameTableDirty = true
		pte.SetPresent(true)
		pte.SetFrameNum(frameID)
		s.Sink.Map(frameID)
		s.cost += CostMap
		s.Cur.Counters.Maps++
		s.Pager.ResetAge(s, frameID)
	}

	pte.SetReferenced(true)
	s.pageTableDirty = true

	if op == 'w' {
		if pte.IsWriteProtected() {
			s.Sink.SegProt()
			s.cost += CostSegProt
			s.Cur.Counters.SegProt++
			return
		}
		pte.SetModified(true)
	}
}

// checkVMA resolves vpage against the current process's VMA list,
// caching the match onto the PTE the first time it succeeds (§4.5.a,
// invariant I6). Returns false on segmentation violation.
func (s *Simulation) checkVMA(pte *PTE, vpage int) bool {
	if pte.IsAssignedToVMA() {
		return true
	}

	vma, found := lookupVMA(s.Cur.VMAs, vpage)
	if !found {
		return false
	}

	pte.SetWriteProtected(vma.IsWriteProtected)
	pte.SetFileMapped(vma.IsFileMapped)
	pte.SetAssignedToVMA(true)
	return true
}

// fill classifies and performs the page fill for a newly-acquired
// frame (§4.5.c): FIN for file-mapped pages, IN for paged-out
// anonymous pages, ZERO for first touch.
func (s *Simulation) fill(pte *PTE, frameID int) {
	switch {
	case pte.IsFileMapped():
		s.Sink.Fin()
		s.cost += CostFin
		s.Cur.Counters.Fins++
	case pte.IsPagedOut():
		s.Sink.In()
		s.cost += CostIn
		s.Cur.Counters.Ins++
	default:
		s.Sink.Zero()
		s.cost += CostZero
		s.Cur.Counters.Zeros++
	}
}

// unmapVictim performs the replacement-path unmap of §4.7: the
// outgoing page's dirty bit decides between FOUT (file-mapped) and OUT
// (anonymous, which also marks the page paged-out for a future IN).
func (s *Simulation) unmapVictim(frameID int) {
	oldPID, oldVPage := s.Frames.Owner(frameID)
	oldProc := s.Procs[oldPID]
	oldPTE := &oldProc.PageTable[oldVPage]

	s.Sink.Unmap(oldPID, oldVPage)
	s.cost += CostUnmap
	oldProc.Counters.Unmaps++

	oldPTE.SetPresent(false)
	s.pageTableDirty = true

	if oldPTE.IsModified() {
		if oldPTE.IsFileMapped() {
			s.Sink.Fout()
			s.cost += CostFout
			oldProc.Counters.Fouts++
		} else {
			oldPTE.SetPagedOut(true)
			s.Sink.Out()
			s.cost += CostOut
			oldProc.Counters.Outs++
		}
	}
	oldPTE.SetModified(false)
}
