package vmm

import "errors"

// Fatal conditions per §7: every one of these aborts the run with a
// diagnostic rather than being treated as an in-simulation event. They
// are kept as sentinel values so callers in cmd/vmpager can
// distinguish them with errors.Is, wrapping with fmt.Errorf("...: %w")
// where extra context (the offending value) is useful.
var (
	// ErrFrameCountTooLarge is returned when -f exceeds MaxFrames.
	ErrFrameCountTooLarge = errors.New("vmm: frame count exceeds MaxFrames")

	// ErrUnknownAlgorithm is returned for any -a letter besides
	// f, r, c, e, a, w.
	ErrUnknownAlgorithm = errors.New("vmm: unknown replacement algorithm")

	// ErrUnknownOpcode is returned when the driver encounters an
	// instruction whose op is not one of c, r, w, e.
	ErrUnknownOpcode = errors.New("vmm: unknown opcode")
)
