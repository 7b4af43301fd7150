package report

import (
	"fmt"
	"io"

	"github.com/relaypager/vmpager/internal/vmm"
)

// DebugReporter implements vmm.DebugSink, printing the supplementary
// x/y/f diagnostics (§A.1) to w. None of its output belongs to the
// fixed stdout vocabulary §6 defines, so every line is prefixed with
// "DEBUG" to keep it visually and textually separate from the rest of
// the run's output.
//
// The three toggles are independent: a DebugReporter built with only
// pageTable set still implements the full interface, and its
// FrameTable and Scan methods return without printing.
type DebugReporter struct {
	w                           io.Writer
	pageTable, frameTable, scan bool
}

// NewDebugReporter builds a reporter honoring exactly the toggles
// passed true. Callers typically wire it in only when at least one of
// x/y/f is set (cmd/vmpager skips it entirely otherwise).
func NewDebugReporter(w io.Writer, pageTable, frameTable, scan bool) *DebugReporter {
	return &DebugReporter{w: w, pageTable: pageTable, frameTable: frameTable, scan: scan}
}

func (d *DebugReporter) PageTable(p *vmm.Process) {
	if !d.pageTable {
		return
	}
	fmt.Fprint(d.w, "DEBUG ")
	writePageTable(d.w, p)
}

func (d *DebugReporter) FrameTable(frames *vmm.FrameTable) {
	if !d.frameTable {
		return
	}
	fmt.Fprint(d.w, "DEBUG ")
	writeFrameTable(d.w, frames)
}

func (d *DebugReporter) Scan(frames int) {
	if !d.scan {
		return
	}
	fmt.Fprintf(d.w, "DEBUG SCAN %d\n", frames)
}
