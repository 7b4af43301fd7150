package vmm

// Frame is a physical memory slot, identified by its stable index into
// FrameTable.Frames. PID/VPage are -1 while the frame is free.
//
// Cyclic frame<->PTE references are kept out-of-band (§9): a Frame
// only ever stores plain integers, never a pointer back to the owning
// PTE. The reverse map is a two-step array index performed by
// FrameTable.Owner.
type Frame struct {
	Assigned bool
	PID      int
	VPage    int
	// Victim is true iff this frame has been mapped since it most
	// recently became free: set by Assign, cleared by Free. It tells
	// the fault handler whether the frame returned by Allocate needs
	// its previous owner unmapped before reuse (§4.2).
	Victim bool
	// Age is interpreted by the active pager: a 32-bit aging shift
	// register for Aging, an instruction-counter timestamp for
	// Working-Set, unused by the rest.
	Age uint32
}

// FrameTable owns every physical frame and the free-list queue that
// seeds them out. Frames live for the entire run.
type FrameTable struct {
	Frames   []Frame
	freeList []int
}

// NewFrameTable builds a table of n frames, all initially free, queued
// onto the free-list in index order.
func NewFrameTable(n int) *FrameTable {
	ft := &FrameTable{
		Frames:   make([]Frame, n),
		freeList: make([]int, n),
	}
	for i := range ft.Frames {
		ft.Frames[i] = Frame{PID: -1, VPage: -1}
		ft.freeList[i] = i
	}
	return ft
}

// NumFrames returns the fixed frame count.
func (ft *FrameTable) NumFrames() int { return len(ft.Frames) }

// popFree pops the head of the free-list, or reports ok=false if it is
// empty.
func (ft *FrameTable) popFree() (int, bool) {
	if len(ft.freeList) == 0 {
		return 0, false
	}
	id := ft.freeList[0]
	ft.freeList = ft.freeList[1:]
	return id, true
}

// pushFree appends a frame to the free-list tail. Process exit (via
// Free) returns frames here; a victim frame is reused directly and
// never passes through the free-list. The push order is externally
// observable through subsequent allocations (§9, Open Question b).
func (ft *FrameTable) pushFree(id int) {
	ft.freeList = append(ft.freeList, id)
}

// Allocate returns a frame to map a page into: the head of the
// free-list if one exists, otherwise the victim the active pager
// selects. The returned frame's Victim flag — false for a frame fresh
// off the free-list, true for one coming back from the pager — tells
// the caller whether it must first unmap the frame's previous owner
// (§4.2). Assign, called once the fault handler has filled the page,
// sets the flag for the next reuse.
func (ft *FrameTable) Allocate(pager Pager, ctx PagerContext) int {
	if id, ok := ft.popFree(); ok {
		return id
	}
	return pager.SelectVictim(ctx)
}

// Assign maps a frame to (pid, vpage) and marks it victim-eligible for
// future reuse.
func (ft *FrameTable) Assign(frameID, pid, vpage int) {
	f := &ft.Frames[frameID]
	f.Assigned = true
	f.PID = pid
	f.VPage = vpage
	f.Victim = true
}

// Free clears a frame's ownership and pushes it back onto the
// free-list tail.
func (ft *FrameTable) Free(frameID int) {
	f := &ft.Frames[frameID]
	f.Assigned = false
	f.PID = -1
	f.VPage = -1
	f.Victim = false
	ft.pushFree(frameID)
}

// Owner returns the (pid, vpage) currently mapped onto a frame. Only
// meaningful when the frame is assigned (§4.3).
func (ft *FrameTable) Owner(frameID int) (pid, vpage int) {
	f := ft.Frames[frameID]
	return f.PID, f.VPage
}
