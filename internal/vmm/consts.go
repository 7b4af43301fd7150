// Package vmm implements the core of the paging simulator: the frame
// table, the per-process page tables, the VMA cache, the six pager
// policies, the page-fault handler, and the single-threaded event
// driver. Everything outside this package is treated as an external
// collaborator (cmd-line parsing, trace/random-file loading, reporting).
package vmm

// MaxVPages is the number of virtual pages a process's page table
// covers, vpage in [0, MaxVPages).
const MaxVPages = 64

// MaxFrames is the largest frame count the simulator will accept. A
// Frame's index, and a PTE's FrameNum field, both fit in [0, MaxFrames).
const MaxFrames = 128

// Per-event cost additions to the running COST counter.
const (
	CostLoadStore       = 1
	CostContextSwitch   = 130
	CostProcessExit     = 1230
	CostSegV            = 440
	CostSegProt         = 410
	CostMap             = 350
	CostUnmap           = 410
	CostIn              = 3200
	CostOut             = 2750
	CostFin             = 2350
	CostFout            = 2800
	CostZero            = 150
)

// nruResetInterval is the number of instructions between forced class
// resets in the NRU pager (§4.4).
const nruResetInterval = 48

// workingSetTau is the Working-Set pager's window, measured in
// instructions (§4.4).
const workingSetTau = 49

// PTEByteSize is the packed size, in bytes, of the PTE word. It is
// reported verbatim in the TOTALCOST line so that independent
// implementations can be checked for representation parity (§6, §9).
const PTEByteSize = 4
