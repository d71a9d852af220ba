package view

import (
	"fmt"
	"io"
	"time"

	"github.com/efritz/pentimento"
)

// LiveProgress renders sampling progress as a single in-place status line,
// rewritten on every tick. Terminal-transition notices reset the line first
// so they stay on screen after the run.
type LiveProgress struct {
	printer *pentimento.Printer
	out     io.Writer
}

// NewLiveProgress returns a notifier writing through the given pentimento
// printer, with notices going to out.
func NewLiveProgress(printer *pentimento.Printer, out io.Writer) *LiveProgress {
	return &LiveProgress{
		printer: printer,
		out:     out,
	}
}

func (p *LiveProgress) Sample(elapsed time.Duration, memoryKB uint64) {
	content := pentimento.NewContent()
	content.AddLine("%s", statusLine(elapsed, memoryKB))
	_ = p.printer.WriteContent(content)
}

func (p *LiveProgress) MaxDurationReached(elapsed time.Duration) {
	_ = p.printer.Reset()
	fmt.Fprintln(p.out, "Reached maximum duration")
}

func (p *LiveProgress) TargetGone(pid int, err error) {
	_ = p.printer.Reset()
	fmt.Fprintf(p.out, "Process %d no longer exists or is not accessible: %v\n", pid, err)
}

func (p *LiveProgress) Interrupted(elapsed time.Duration) {
	_ = p.printer.Reset()
	fmt.Fprintln(p.out, "Interrupted, stopping sampling")
}

// StaticProgress prints one plain line per event. It serves non-interactive
// terminals and the --no-progress flag.
type StaticProgress struct {
	out io.Writer
}

// NewStaticProgress returns a notifier writing plain lines to out.
func NewStaticProgress(out io.Writer) *StaticProgress {
	return &StaticProgress{out: out}
}

func (p *StaticProgress) Sample(elapsed time.Duration, memoryKB uint64) {
	fmt.Fprintln(p.out, statusLine(elapsed, memoryKB))
}

func (p *StaticProgress) MaxDurationReached(elapsed time.Duration) {
	fmt.Fprintln(p.out, "Reached maximum duration")
}

func (p *StaticProgress) TargetGone(pid int, err error) {
	fmt.Fprintf(p.out, "Process %d no longer exists or is not accessible: %v\n", pid, err)
}

func (p *StaticProgress) Interrupted(elapsed time.Duration) {
	fmt.Fprintln(p.out, "Interrupted, stopping sampling")
}

func statusLine(elapsed time.Duration, memoryKB uint64) string {
	return fmt.Sprintf("Time: %.1fs | Memory: %d KB (%.2f MB)",
		elapsed.Seconds(), memoryKB, float64(memoryKB)/1024)
}
