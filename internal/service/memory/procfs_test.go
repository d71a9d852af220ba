package memory_test

import (
	"os"
	"path/filepath"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/memtrack/memtrack/internal/service/memory"
)

func writeStatus(t *testing.T, root string, pid int, content string) {
	t.Helper()

	dir := filepath.Join(root, strconv.Itoa(pid))
	require.NoError(t, os.MkdirAll(dir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "status"), []byte(content), 0o644))
}

func TestProcFSReader(t *testing.T) {
	const pid = 4242

	tests := []struct {
		name         string
		status       string
		expKB        uint64
		expErr       bool
		expMalformed bool
	}{
		{
			name: "A regular status file yields the VmRSS value in KB.",
			status: "Name:\tsome-daemon\n" +
				"VmPeak:\t  204800 kB\n" +
				"VmRSS:\t   51200 kB\n" +
				"VmSwap:\t       0 kB\n",
			expKB: 51200,
		},
		{
			name: "A status file without a VmRSS line is malformed.",
			status: "Name:\tsome-daemon\n" +
				"VmPeak:\t  204800 kB\n",
			expErr:       true,
			expMalformed: true,
		},
		{
			name:         "A VmRSS line without a value is malformed.",
			status:       "VmRSS:\n",
			expErr:       true,
			expMalformed: true,
		},
		{
			name:         "A VmRSS value that is not a number is malformed.",
			status:       "VmRSS:\t lots kB\n",
			expErr:       true,
			expMalformed: true,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			assert := assert.New(t)

			root := t.TempDir()
			writeStatus(t, root, pid, test.status)

			reader := memory.NewProcFSReaderAt(root)
			kb, err := reader.ReadMemoryKB(pid)

			if test.expErr {
				assert.Error(err)
				assert.Equal(test.expMalformed, memory.IsMalformedStatus(err))
			} else {
				assert.NoError(err)
				assert.Equal(test.expKB, kb)
			}
		})
	}
}

func TestProcFSReaderTargetGone(t *testing.T) {
	assert := assert.New(t)

	// An empty proc root, the status file never existed.
	reader := memory.NewProcFSReaderAt(t.TempDir())
	_, err := reader.ReadMemoryKB(1234)

	assert.Error(err)
	assert.False(memory.IsMalformedStatus(err))
}
