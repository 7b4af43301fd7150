package vmm

// Simulation is the single mutable context threaded through the event
// driver: frame table, process vector, active pager (which holds the
// RNG when the policy is Random), and the global counters, all in one
// value rather than as package-level
// globals (§9, "Global mutable singletons"). Process identity is an
// index into Procs, never a shared pointer owned elsewhere.
type Simulation struct {
	Frames *FrameTable
	Procs  []*Process
	Cur    *Process
	Pager  Pager
	Sink   EventSink

	// Debug is an optional diagnostics hook for the x/y/f toggles
	// (§A.1). Left nil, it adds nothing to a run.
	Debug DebugSink

	insCounter  uint64
	ctxSwitches uint64
	procExits   uint64
	cost        uint64

	pageTableDirty  bool
	frameTableDirty bool
}

// NewSimulation wires a frame table, the loaded process list, and the
// selected pager into a ready-to-run context. The initial current
// process is unset; the trace is expected to issue a context switch
// before its first reference, matching every real trace in the
// format (§6).
func NewSimulation(frames *FrameTable, procs []*Process, pager Pager, sink EventSink) *Simulation {
	if sink == nil {
		sink = NopEventSink{}
	}
	return &Simulation{
		Frames: frames,
		Procs:  procs,
		Pager:  pager,
		Sink:   sink,
	}
}

// InsCounter returns the monotonic instruction counter.
func (s *Simulation) InsCounter() uint64 { return s.insCounter }

// CtxSwitches returns the total number of 'c' instructions processed.
func (s *Simulation) CtxSwitches() uint64 { return s.ctxSwitches }

// ProcExits returns the total number of 'e' instructions processed.
func (s *Simulation) ProcExits() uint64 { return s.procExits }

// Cost returns the running COST counter.
func (s *Simulation) Cost() uint64 { return s.cost }

// NumFrames implements PagerContext.
func (s *Simulation) NumFrames() int { return s.Frames.NumFrames() }

// FramePTE implements PagerContext: the reverse map is always a
// two-step array index — frame to (pid, vpage), then (pid, vpage) to
// the owning PTE — never a stored pointer (§4.3, §9).
func (s *Simulation) FramePTE(frameID int) *PTE {
	pid, vpage := s.Frames.Owner(frameID)
	return &s.Procs[pid].PageTable[vpage]
}

// FrameAge implements PagerContext.
func (s *Simulation) FrameAge(frameID int) uint32 { return s.Frames.Frames[frameID].Age }

// SetFrameAge implements PagerContext.
func (s *Simulation) SetFrameAge(frameID int, age uint32) { s.Frames.Frames[frameID].Age = age }

// ReportScan implements PagerContext, forwarding to Debug.Scan when a
// debugger is attached.
func (s *Simulation) ReportScan(frames int) {
	if s.Debug != nil {
		s.Debug.Scan(frames)
	}
}
