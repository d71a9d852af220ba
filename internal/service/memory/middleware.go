package memory

import (
	"github.com/memtrack/memtrack/internal/service/log"
)

type loggingMiddleware struct {
	logger log.Logger
	next   Reader
}

// NewLoggingMiddleware wraps a Reader so every read, and the failure class
// when one fails, is visible at debug level. The sampling loop collapses
// both failure classes into the same stop condition, so the log line is the
// only place the distinction survives.
func NewLoggingMiddleware(logger log.Logger, next Reader) Reader {
	return &loggingMiddleware{
		logger: logger,
		next:   next,
	}
}

func (m *loggingMiddleware) ReadMemoryKB(pid int) (uint64, error) {
	kb, err := m.next.ReadMemoryKB(pid)
	if err != nil {
		if IsMalformedStatus(err) {
			m.logger.Debugf("process %d status malformed: %v", pid, err)
		} else {
			m.logger.Debugf("process %d unavailable: %v", pid, err)
		}
		return 0, err
	}

	m.logger.Debugf("process %d resident memory: %d KB", pid, kb)
	return kb, nil
}
