package monitor

import (
	"context"
	"time"

	"github.com/memtrack/memtrack/internal/model"
	"github.com/memtrack/memtrack/internal/service/log"
	"github.com/memtrack/memtrack/internal/service/memory"
	"github.com/memtrack/memtrack/internal/timeseries"
)

// Notifier receives progress events from the sampling loop. Implementations
// render them to the user; the loop itself never touches the terminal.
type Notifier interface {
	// Sample is called after every successful read.
	Sample(elapsed time.Duration, memoryKB uint64)
	// MaxDurationReached is called when the configured duration ends the run.
	MaxDurationReached(elapsed time.Duration)
	// TargetGone is called when the monitored process disappeared or its
	// status could not be read.
	TargetGone(pid int, err error)
	// Interrupted is called when the run was cancelled from outside.
	Interrupted(elapsed time.Duration)
}

// NopNotifier ignores all events.
var NopNotifier Notifier = nopNotifier{}

type nopNotifier struct{}

func (nopNotifier) Sample(elapsed time.Duration, memoryKB uint64) {}
func (nopNotifier) MaxDurationReached(elapsed time.Duration)      {}
func (nopNotifier) TargetGone(pid int, err error)                 {}
func (nopNotifier) Interrupted(elapsed time.Duration)             {}

// Config is the configuration of a monitoring run.
type Config struct {
	// PID identifies the process to sample.
	PID int
	// Interval is the time between samples.
	Interval time.Duration
	// MaxDuration bounds the run. 0 means run until the target exits.
	MaxDuration time.Duration
}

func (c *Config) defaults() {
	const defInterval = 1 * time.Second

	if c.Interval <= 0 {
		c.Interval = defInterval
	}
}

// Monitor drives the sampling loop for one process: each tick it checks the
// duration cutoff, reads resident memory and appends the sample to the store,
// until a terminal condition ends the run. One monitor, one target, one pass;
// the store is exclusively owned by the loop while it runs.
type Monitor struct {
	cfg      Config
	reader   memory.Reader
	store    *timeseries.Store
	notifier Notifier
	logger   log.Logger
}

// New returns a Monitor over an empty store.
func New(cfg Config, reader memory.Reader, store *timeseries.Store, notifier Notifier, logger log.Logger) *Monitor {
	cfg.defaults()
	if notifier == nil {
		notifier = NopNotifier
	}
	if logger == nil {
		logger = log.Dummy
	}

	return &Monitor{
		cfg:      cfg,
		reader:   reader,
		store:    store,
		notifier: notifier,
		logger:   logger,
	}
}

// Run executes the sampling loop until a terminal condition and reports why
// it stopped. The duration cutoff is checked before reading, so no extra
// sample is taken at or past the cutoff. A failed read means the target is
// gone for good: both failure classes are permanent for a one-shot diagnostic
// run, so there is no retry. Cancelling ctx stops the run after the current
// tick, keeping the partial series for reporting.
func (m *Monitor) Run(ctx context.Context) model.StopReason {
	start := time.Now()

	for {
		elapsed := time.Since(start)

		if m.cfg.MaxDuration > 0 && elapsed >= m.cfg.MaxDuration {
			m.logger.Debugf("stopping after %v: %s", elapsed, model.StopReasonDuration)
			m.notifier.MaxDurationReached(elapsed)
			return model.StopReasonDuration
		}

		memoryKB, err := m.reader.ReadMemoryKB(m.cfg.PID)
		if err != nil {
			m.logger.Debugf("stopping after %v: %s", elapsed, model.StopReasonTargetGone)
			m.notifier.TargetGone(m.cfg.PID, err)
			return model.StopReasonTargetGone
		}

		m.store.Append(elapsed.Seconds(), memoryKB)
		m.notifier.Sample(elapsed, memoryKB)

		select {
		case <-ctx.Done():
			elapsed = time.Since(start)
			m.logger.Debugf("stopping after %v: %s", elapsed, model.StopReasonInterrupted)
			m.notifier.Interrupted(elapsed)
			return model.StopReasonInterrupted
		case <-time.After(m.cfg.Interval):
		}
	}
}
