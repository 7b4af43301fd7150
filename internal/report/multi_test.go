package report

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/relaypager/vmpager/internal/vmm"
)

type countingSink struct {
	maps int
}

func (c *countingSink) Instruction(uint64, byte, int) {}
func (c *countingSink) Unmap(int, int)                {}
func (c *countingSink) Map(int)                       { c.maps++ }
func (c *countingSink) In()                           {}
func (c *countingSink) Out()                          {}
func (c *countingSink) Fin()                          {}
func (c *countingSink) Fout()                         {}
func (c *countingSink) Zero()                         {}
func (c *countingSink) SegV()                         {}
func (c *countingSink) SegProt()                      {}
func (c *countingSink) ExitProcess(int)                {}

var _ vmm.EventSink = (*countingSink)(nil)

var _ = Describe("MultiSink", func() {
	It("fans a single event out to every wrapped sink", func() {
		a, b := &countingSink{}, &countingSink{}
		m := NewMultiSink(a, b)

		m.Map(3)
		m.Map(4)

		Expect(a.maps).To(Equal(2))
		Expect(b.maps).To(Equal(2))
	})

	It("drops nil sinks without panicking", func() {
		m := NewMultiSink(nil, &countingSink{})
		Expect(func() { m.Map(0) }).NotTo(Panic())
	})
})
