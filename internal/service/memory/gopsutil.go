package memory

import (
	"github.com/pkg/errors"
	"github.com/shirou/gopsutil/process"
)

// PSUtilReader reads resident memory through gopsutil. It serves hosts
// without a procfs, at the cost of byte-level readings rounded down to KB.
type PSUtilReader struct{}

// NewPSUtilReader returns a gopsutil backed reader.
func NewPSUtilReader() PSUtilReader {
	return PSUtilReader{}
}

// ReadMemoryKB satisfies Reader.
func (PSUtilReader) ReadMemoryKB(pid int) (uint64, error) {
	proc, err := process.NewProcess(int32(pid))
	if err != nil {
		return 0, errors.Wrapf(err, "open process %d", pid)
	}

	info, err := proc.MemoryInfo()
	if err != nil {
		return 0, errors.Wrapf(err, "read memory info of process %d", pid)
	}

	return info.RSS / 1024, nil
}
