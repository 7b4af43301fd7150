package vmm

// VMA is a contiguous, inclusive range of virtual pages within a
// process, sharing write-protection and file-mapping attributes. VMAs
// within a process are assumed non-overlapping; the core trusts that
// invariant rather than enforcing it (§3).
type VMA struct {
	StartPage        int
	EndPage           int
	IsWriteProtected bool
	IsFileMapped     bool
}

// contains reports whether vpage falls within this VMA's inclusive
// range.
func (v VMA) contains(vpage int) bool {
	return vpage >= v.StartPage && vpage <= v.EndPage
}

// lookupVMA scans a process's VMA list in order and returns the first
// one containing vpage.
func lookupVMA(vmas []VMA, vpage int) (VMA, bool) {
	for _, v := range vmas {
		if v.contains(vpage) {
			return v, true
		}
	}
	return VMA{}, false
}
