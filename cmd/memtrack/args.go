package main

import (
	"time"

	"github.com/alecthomas/kingpin"
)

var app = kingpin.New(
	"memtrack",
	"memtrack samples the resident memory of a process and generates usage statistics and a chart.",
)

var (
	pid         int
	interval    time.Duration
	outFile     string
	maxDuration time.Duration
	csvFile     string
	noProgress  bool
	debug       bool
)

func init() {
	app.HelpFlag.Short('h')

	app.Flag("pid", "Process ID to monitor.").Short('p').Required().IntVar(&pid)
	app.Flag("interval", "Sampling interval.").Short('i').Default("1s").DurationVar(&interval)
	app.Flag("output", "The output image file.").Short('o').Default("memory_usage.png").StringVar(&outFile)
	app.Flag("duration", "How long to monitor (0 = until the process exits).").Short('d').Default("0").DurationVar(&maxDuration)
	app.Flag("csv-output", "Optional file path to save the memory values as CSV.").Short('c').StringVar(&csvFile)
	app.Flag("no-progress", "Do not rewrite the progress line in place.").Default("false").BoolVar(&noProgress)
	app.Flag("debug", "Enable debug logging.").Default("false").BoolVar(&debug)
}

func parseArgs(args []string) error {
	_, err := app.Parse(args)
	return err
}
