package memory

import (
	"github.com/pkg/errors"
)

// ErrMalformedStatus is returned when the process status data exists but the
// resident-memory field is missing or unparseable. Every other reader error
// means the process itself is gone or inaccessible.
var ErrMalformedStatus = errors.New("malformed process status")

// IsMalformedStatus reports whether err is the malformed-status kind.
func IsMalformedStatus(err error) bool {
	return errors.Cause(err) == ErrMalformedStatus
}

// Reader knows how to read the current resident memory of a process, in
// kilobytes. An error means the process is gone, inaccessible, or its status
// data could not be interpreted; the sampling loop treats all of those as the
// target having exited.
type Reader interface {
	ReadMemoryKB(pid int) (uint64, error)
}
