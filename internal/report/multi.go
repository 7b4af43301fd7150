package report

import "github.com/relaypager/vmpager/internal/vmm"

// MultiSink fans a single event stream out to every sink it wraps, in
// order. Used to drive the TextReporter and, when -o a is set, the
// SQLiteEventSink off the same run.
type MultiSink struct {
	sinks []vmm.EventSink
}

// NewMultiSink wraps zero or more sinks. A nil entry is dropped, so
// callers can build the list conditionally without an extra branch.
func NewMultiSink(sinks ...vmm.EventSink) *MultiSink {
	m := &MultiSink{}
	for _, s := range sinks {
		if s != nil {
			m.sinks = append(m.sinks, s)
		}
	}
	return m
}

func (m *MultiSink) Instruction(n uint64, op byte, target int) {
	for _, s := range m.sinks {
		s.Instruction(n, op, target)
	}
}

func (m *MultiSink) Unmap(pid, vpage int) {
	for _, s := range m.sinks {
		s.Unmap(pid, vpage)
	}
}

func (m *MultiSink) Map(frame int) {
	for _, s := range m.sinks {
		s.Map(frame)
	}
}

func (m *MultiSink) In() {
	for _, s := range m.sinks {
		s.In()
	}
}

func (m *MultiSink) Out() {
	for _, s := range m.sinks {
		s.Out()
	}
}

func (m *MultiSink) Fin() {
	for _, s := range m.sinks {
		s.Fin()
	}
}

func (m *MultiSink) Fout() {
	for _, s := range m.sinks {
		s.Fout()
	}
}

func (m *MultiSink) Zero() {
	for _, s := range m.sinks {
		s.Zero()
	}
}

func (m *MultiSink) SegV() {
	for _, s := range m.sinks {
		s.SegV()
	}
}

func (m *MultiSink) SegProt() {
	for _, s := range m.sinks {
		s.SegProt()
	}
}

func (m *MultiSink) ExitProcess(pid int) {
	for _, s := range m.sinks {
		s.ExitProcess(pid)
	}
}
