package vmm

// DebugSink receives the supplementary diagnostics gated behind the
// x/y/f debug toggles (§A.1). A Simulation with a nil Debug field
// skips every call site below at no cost beyond the pointer check;
// none of this is part of the fixed stdout vocabulary the reporting
// package relies on.
type DebugSink interface {
	// PageTable is called with the current process once per
	// instruction that touched a page table (the "x" toggle).
	PageTable(p *Process)
	// FrameTable is called once per instruction that changed frame
	// ownership (the "y" toggle).
	FrameTable(frames *FrameTable)
	// Scan is called by Clock and NRU from inside SelectVictim, via
	// PagerContext.ReportScan, reporting how many frames the scan
	// walked before settling on a victim (the "f" toggle). FIFO,
	// Random, Aging, and Working-Set never call it.
	Scan(frames int)
}
