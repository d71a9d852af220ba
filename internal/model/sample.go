package model

// Sample represents one resident-memory observation taken at a tick of
// the sampling loop.
type Sample struct {
	// Elapsed is the time since the run started, in seconds.
	Elapsed float64
	// MemoryKB is the resident set size at that instant, in kilobytes.
	MemoryKB uint64
}

// Summary is the read-only statistical view over a finished run. It is
// computed once from the full series after sampling ends.
type Summary struct {
	Count    int
	MeanKB   float64
	MedianKB float64
	MaxKB    uint64
	MinKB    uint64
}

// StopReason tells why the sampling loop ended.
type StopReason int

const (
	// StopReasonDuration means the configured maximum run duration elapsed.
	StopReasonDuration StopReason = iota
	// StopReasonTargetGone means the monitored process disappeared or its
	// status could no longer be read.
	StopReasonTargetGone
	// StopReasonInterrupted means the run was cancelled from outside, e.g.
	// by an interrupt signal.
	StopReasonInterrupted
)

func (r StopReason) String() string {
	switch r {
	case StopReasonDuration:
		return "maximum duration reached"
	case StopReasonTargetGone:
		return "target process gone"
	case StopReasonInterrupted:
		return "interrupted"
	}
	return "unknown"
}
