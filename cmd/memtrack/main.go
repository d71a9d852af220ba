// The program memtrack samples the resident memory of a single process and
// renders a usage chart and statistics when sampling ends.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"runtime"
	"syscall"

	"github.com/efritz/pentimento"
	"github.com/oklog/run"

	"github.com/memtrack/memtrack/internal/model"
	"github.com/memtrack/memtrack/internal/monitor"
	"github.com/memtrack/memtrack/internal/report"
	"github.com/memtrack/memtrack/internal/service/log"
	"github.com/memtrack/memtrack/internal/service/memory"
	"github.com/memtrack/memtrack/internal/timeseries"
	"github.com/memtrack/memtrack/internal/view"
)

func main() {
	if err := mainErr(); err != nil {
		fmt.Fprintf(os.Stderr, "\nerror: %v\n", err)
		os.Exit(1)
	}
}

func mainErr() error {
	if err := parseArgs(os.Args[1:]); err != nil {
		return err
	}

	var logger log.Logger = log.Dummy
	if debug {
		logger = log.NewZero(log.Config{Output: os.Stderr, Debug: true})
	}

	reader := newReader(logger)
	store := timeseries.NewStore()

	fmt.Printf("Monitoring process %d with interval %v\n", pid, interval)
	if maxDuration > 0 {
		fmt.Printf("Duration: %v\n", maxDuration)
	} else {
		fmt.Println("Duration: until process exits")
	}

	var reason model.StopReason
	if noProgress {
		reason = runMonitor(store, reader, logger, view.NewStaticProgress(os.Stdout))
	} else {
		_ = pentimento.PrintProgress(func(printer *pentimento.Printer) error {
			reason = runMonitor(store, reader, logger, view.NewLiveProgress(printer, os.Stdout))
			return nil
		})
	}
	logger.Debugf("sampling stopped: %s", reason)

	// The finishing sequence runs however the loop ended: statistics over
	// whatever was collected, then the sinks.
	summary := store.Summary()
	fmt.Println("\nGenerating statistics...")
	fmt.Printf("Total samples: %d\n", summary.Count)
	fmt.Printf("Mean memory: %.2f KB (%.2f MB)\n", summary.MeanKB, summary.MeanKB/1024)
	fmt.Printf("Median memory: %.2f KB (%.2f MB)\n", summary.MedianKB, summary.MedianKB/1024)
	fmt.Printf("Max memory: %d KB (%.2f MB)\n", summary.MaxKB, float64(summary.MaxKB)/1024)
	fmt.Printf("Min memory: %d KB (%.2f MB)\n", summary.MinKB, float64(summary.MinKB)/1024)

	if store.Len() > 0 {
		fmt.Printf("\nGenerating chart: %s\n", outFile)
		if err := report.WriteChart(store.Samples(), outFile, report.ChartConfig{}); err != nil {
			return err
		}
		fmt.Println("Chart saved successfully!")
	} else {
		fmt.Println("\nNo samples collected, skipping chart generation")
	}

	if csvFile != "" {
		fmt.Printf("\nSaving memory data to CSV: %s\n", csvFile)
		if err := report.WriteCSV(store.Samples(), csvFile); err != nil {
			return err
		}
		fmt.Println("CSV saved successfully!")
	}

	return nil
}

// runMonitor runs the sampling loop alongside a signal catcher so an
// interrupt still ends with a report over the partial series.
func runMonitor(store *timeseries.Store, reader memory.Reader, logger log.Logger, notifier monitor.Notifier) model.StopReason {
	var reason model.StopReason

	var g run.Group

	// Sampling loop.
	ctx, cancel := context.WithCancel(context.Background())
	g.Add(
		func() error {
			m := monitor.New(monitor.Config{
				PID:         pid,
				Interval:    interval,
				MaxDuration: maxDuration,
			}, reader, store, notifier, logger)
			reason = m.Run(ctx)
			return nil
		},
		func(error) {
			cancel()
		},
	)

	// OS signals.
	sigC := make(chan os.Signal, 1)
	exitC := make(chan struct{})
	signal.Notify(sigC, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigC)
	g.Add(
		func() error {
			select {
			case <-sigC:
			case <-exitC:
			}
			return nil
		},
		func(error) {
			close(exitC)
		},
	)

	_ = g.Run()
	return reason
}

// newReader picks the platform reader: the procfs status file where there is
// one, gopsutil everywhere else.
func newReader(logger log.Logger) memory.Reader {
	var r memory.Reader
	if runtime.GOOS == "linux" {
		r = memory.NewProcFSReader()
	} else {
		r = memory.NewPSUtilReader()
	}
	return memory.NewLoggingMiddleware(logger, r)
}
