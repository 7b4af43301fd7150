package vmm

// Counters accumulates the per-process event tallies reported by the
// `PROC[pid]: ...` line and used to cross-check the cost invariants
// (§3, P4).
type Counters struct {
	Unmaps  uint64
	Maps    uint64
	Ins     uint64
	Outs    uint64
	Fins    uint64
	Fouts   uint64
	Zeros   uint64
	SegV    uint64
	SegProt uint64
}

// Process holds one simulated process's page table, VMA list, and
// event counters. PID is assigned in load order, starting at 0.
type Process struct {
	PID       int
	VMAs      []VMA
	PageTable [MaxVPages]PTE
	Counters  Counters
}

// NewProcess creates an empty process with the given PID and VMA list.
func NewProcess(pid int, vmas []VMA) *Process {
	return &Process{PID: pid, VMAs: vmas}
}
