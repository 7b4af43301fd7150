package vmm

// EventSink receives the structured trace/stats stream the core
// produces as it runs, so that reporting — the fixed vocabulary of
// §6 — lives entirely outside this package. The driver and fault
// handler call these methods in the exact order the output grammar
// requires; a sink that merely counts calls, or merely discards them,
// is enough to satisfy the core. This is the "external collaborator"
// boundary described in §2's component table.
type EventSink interface {
	// Instruction is called once per trace instruction, before it is
	// dispatched, carrying the instruction counter value *before* it is
	// incremented for this instruction, so the first instruction is
	// numbered 0 (matching the `<n>: ==> op target` line's counter
	// semantics).
	Instruction(n uint64, op byte, target int)

	// Unmap is called when a victim (or an exiting process's page) is
	// unmapped, always preceded by the owning pid/vpage.
	Unmap(pid, vpage int)

	// Map is called when a page is mapped into a frame.
	Map(frame int)

	In()
	Out()
	Fin()
	Fout()
	Zero()
	SegV()
	SegProt()

	// ExitProcess is called once per 'e' instruction, unconditionally.
	ExitProcess(pid int)
}

// NopEventSink discards every event. It is useful for tests that only
// care about final simulator state, not the emitted stream.
type NopEventSink struct{}

func (NopEventSink) Instruction(uint64, byte, int) {}
func (NopEventSink) Unmap(int, int)                {}
func (NopEventSink) Map(int)                       {}
func (NopEventSink) In()                           {}
func (NopEventSink) Out()                          {}
func (NopEventSink) Fin()                          {}
func (NopEventSink) Fout()                         {}
func (NopEventSink) Zero()                         {}
func (NopEventSink) SegV()                         {}
func (NopEventSink) SegProt()                      {}
func (NopEventSink) ExitProcess(int)               {}
