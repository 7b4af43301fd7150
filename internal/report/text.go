// Package report provides the vmm.EventSink implementations that turn
// the core's structured event stream into the fixed output vocabulary
// of the run: the per-reference trace, the trailing page/frame/stats
// tables, and (behind the "a" debug toggle) a SQLite log of the same
// stream.
package report

import (
	"fmt"
	"io"

	"github.com/relaypager/vmpager/internal/vmm"
)

// TextReporter writes the per-reference trace directly to w as events
// arrive, and can later render the trailing tables once the run is
// over. It implements vmm.EventSink.
type TextReporter struct {
	w       io.Writer
	verbose bool
}

// NewTextReporter builds a reporter. verbose gates the per-reference
// "<n>: ==> op target" lines and every event line beneath them (the
// "O" output option); the trailing tables are rendered separately by
// WriteTables and are not gated by verbose.
func NewTextReporter(w io.Writer, verbose bool) *TextReporter {
	return &TextReporter{w: w, verbose: verbose}
}

func (r *TextReporter) Instruction(n uint64, op byte, target int) {
	if r.verbose {
		fmt.Fprintf(r.w, "%d: ==> %c %d\n", n, op, target)
	}
}

func (r *TextReporter) event(line string) {
	if r.verbose {
		fmt.Fprintln(r.w, line)
	}
}

func (r *TextReporter) Unmap(pid, vpage int) { r.event(fmt.Sprintf("UNMAP %d:%d", pid, vpage)) }
func (r *TextReporter) Map(frame int)        { r.event(fmt.Sprintf("MAP %d", frame)) }
func (r *TextReporter) In()                  { r.event("IN") }
func (r *TextReporter) Out()                 { r.event("OUT") }
func (r *TextReporter) Fin()                 { r.event("FIN") }
func (r *TextReporter) Fout()                { r.event("FOUT") }
func (r *TextReporter) Zero()                { r.event("ZERO") }
func (r *TextReporter) SegV()                { r.event("SEGV") }
func (r *TextReporter) SegProt()             { r.event("SEGPROT") }

func (r *TextReporter) ExitProcess(pid int) {
	// Unconditional per §6: process-exit notices print regardless of
	// the verbose flag.
	fmt.Fprintf(r.w, "EXIT current process %d\n", pid)
}

// WriteTables renders the trailing reports §6 describes, each gated
// on its own flag: per-process page tables, the frame table, and the
// per-process/global statistics, ending with the TOTALCOST line which
// is always printed.
func WriteTables(
	w io.Writer,
	procs []*vmm.Process,
	frames *vmm.FrameTable,
	sim *vmm.Simulation,
	showPageTables, showFrameTable, showStats bool,
) {
	if showPageTables {
		for _, p := range procs {
			writePageTable(w, p)
		}
	}

	if showFrameTable {
		writeFrameTable(w, frames)
	}

	if showStats {
		for _, p := range procs {
			c := p.Counters
			fmt.Fprintf(w, "PROC[%d]: U=%d M=%d I=%d O=%d FI=%d FO=%d Z=%d SV=%d SP=%d\n",
				p.PID, c.Unmaps, c.Maps, c.Ins, c.Outs, c.Fins, c.Fouts, c.Zeros, c.SegV, c.SegProt)
		}
	}

	fmt.Fprintf(w, "TOTALCOST %d %d %d %d %d\n",
		sim.InsCounter(), sim.CtxSwitches(), sim.ProcExits(), sim.Cost(), vmm.PTEByteSize)
}

func writePageTable(w io.Writer, p *vmm.Process) {
	fmt.Fprintf(w, "PT[%d]:", p.PID)
	for vpage := 0; vpage < vmm.MaxVPages; vpage++ {
		pte := p.PageTable[vpage]
		fmt.Fprint(w, " ")
		switch {
		case pte.IsPresent():
			fmt.Fprintf(w, "%d:%s%s%s",
				vpage,
				boolFlag(pte.IsReferenced(), "R"),
				boolFlag(pte.IsModified(), "M"),
				boolFlag(pte.IsPagedOut(), "S"))
		case pte.IsPagedOut():
			fmt.Fprint(w, "#")
		default:
			fmt.Fprint(w, "*")
		}
	}
	fmt.Fprintln(w)
}

func writeFrameTable(w io.Writer, frames *vmm.FrameTable) {
	fmt.Fprint(w, "FT:")
	for i := 0; i < frames.NumFrames(); i++ {
		pid, vpage := frames.Owner(i)
		fmt.Fprint(w, " ")
		if pid == -1 {
			fmt.Fprint(w, "*")
		} else {
			fmt.Fprintf(w, "%d:%d", pid, vpage)
		}
	}
	fmt.Fprintln(w)
}

func boolFlag(v bool, letter string) string {
	if v {
		return letter
	}
	return "-"
}
