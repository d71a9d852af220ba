package memory

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// residentField is the status-file field holding the resident set size.
const residentField = "VmRSS:"

// ProcFSReader reads resident memory from the kernel's per-process status
// file under a proc mount.
type ProcFSReader struct {
	root string
}

// NewProcFSReader returns a reader over the standard /proc mount.
func NewProcFSReader() *ProcFSReader {
	return &ProcFSReader{root: "/proc"}
}

// NewProcFSReaderAt returns a reader over an alternate proc root, for tests
// and for environments with a relocated proc mount.
func NewProcFSReaderAt(root string) *ProcFSReader {
	return &ProcFSReader{root: root}
}

// ReadMemoryKB satisfies Reader.
func (r *ProcFSReader) ReadMemoryKB(pid int) (uint64, error) {
	path := filepath.Join(r.root, strconv.Itoa(pid), "status")

	raw, err := os.ReadFile(path)
	if err != nil {
		return 0, errors.Wrapf(err, "read %s", path)
	}

	for _, line := range strings.Split(string(raw), "\n") {
		if !strings.HasPrefix(line, residentField) {
			continue
		}

		// Line layout: `VmRSS:      5678 kB`.
		fields := strings.Fields(line)
		if len(fields) < 2 {
			return 0, errors.Wrapf(ErrMalformedStatus, "short %s line in %s", residentField, path)
		}

		kb, err := strconv.ParseUint(fields[1], 10, 64)
		if err != nil {
			return 0, errors.Wrapf(ErrMalformedStatus, "parse %s value %q in %s", residentField, fields[1], path)
		}
		return kb, nil
	}

	return 0, errors.Wrapf(ErrMalformedStatus, "%s not found in %s", residentField, path)
}
