package vmm

import "fmt"

// Run drives the instruction stream to completion, exactly as §4.8
// describes: pop an instruction, notify the sink, bump the instruction
// counter, dispatch. There is no concurrency and no suspension point —
// every instruction runs to completion before the next is popped.
func (s *Simulation) Run(instructions []Instruction) error {
	for _, ins := range instructions {
		s.Sink.Instruction(s.insCounter, ins.Op, ins.Addr)
		s.insCounter++
		s.pageTableDirty = false
		s.frameTableDirty = false

		switch ins.Op {
		case 'c':
			s.contextSwitch(ins.Addr)
		case 'r', 'w':
			s.Reference(ins.Op, ins.Addr)
		case 'e':
			s.exitProcess(ins.Addr)
		default:
			return fmt.Errorf("%w: %q", ErrUnknownOpcode, ins.Op)
		}

		s.echoDebug()
	}
	return nil
}

// echoDebug reports the x/y toggles: the current process's page table
// when this instruction touched any page table (every successful
// reference, victim unmap, or exit does), and the frame table when it
// changed frame ownership.
func (s *Simulation) echoDebug() {
	if s.Debug == nil {
		return
	}
	if s.pageTableDirty && s.Cur != nil {
		s.Debug.PageTable(s.Cur)
	}
	if s.frameTableDirty {
		s.Debug.FrameTable(s.Frames)
	}
}

// contextSwitch implements §4.6's 'c' instruction.
func (s *Simulation) contextSwitch(target int) {
	s.Cur = s.Procs[target]
	s.ctxSwitches++
	s.cost += CostContextSwitch
}

// exitProcess implements §4.6's 'e' instruction: every present page of
// the exiting process is unmapped, dirty file-mapped pages are
// flushed out (FOUT), dirty anonymous pages are dropped silently — no
// OUT, no outs counter — and every freed frame rejoins the free-list
// tail in vpage order (§9, Open Question b).
func (s *Simulation) exitProcess(target int) {
	s.Sink.ExitProcess(target)
	s.procExits++
	s.cost += CostProcessExit

	proc := s.Procs[target]
	for vpage := 0; vpage < MaxVPages; vpage++ {
		pte := &proc.PageTable[vpage]
		if !pte.IsPresent() {
			continue
		}

		frameID := pte.FrameNum()

		s.Sink.Unmap(proc.PID, vpage)
		s.cost += CostUnmap
		proc.Counters.Unmaps++

		if pte.IsModified() && pte.IsFileMapped() {
			s.Sink.Fout()
			s.cost += CostFout
			proc.Counters.Fouts++
		}

		s.Frames.Free(frameID)
		s.frameTableDirty = true

		pte.SetPresent(false)
		pte.SetReferenced(false)
		pte.SetPagedOut(false)
		s.pageTableDirty = true
	}
}
