// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/exec"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/pflag"
	"gopkg.in/yaml.v3"

	"github.com/bureau-foundation/monoclock/lib/monotonic"
	"github.com/bureau-foundation/monoclock/lib/version"
)

const binaryName = "monoclock-stopwatch"

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

// options holds the parsed command-line arguments.
type options struct {
	repeat  int
	format  string
	verbose bool
	help    bool
	version bool
	command []string
}

func parseArguments(args []string) (options, error) {
	var result options

	flagSet := pflag.NewFlagSet(binaryName, pflag.ContinueOnError)
	flagSet.SetOutput(io.Discard)
	flagSet.SetInterspersed(false)
	flagSet.IntVarP(&result.repeat, "repeat", "n", 1, "number of times to run the command")
	flagSet.StringVarP(&result.format, "format", "f", "text", "report format: text or yaml")
	flagSet.BoolVarP(&result.verbose, "verbose", "v", false, "log each run")
	flagSet.BoolVarP(&result.help, "help", "h", false, "show help")
	flagSet.BoolVar(&result.version, "version", false, "print version and exit")

	if err := flagSet.Parse(args); err != nil {
		return options{}, err
	}
	if result.help || result.version {
		return result, nil
	}

	result.command = flagSet.Args()
	if len(result.command) == 0 {
		return options{}, errors.New("a command to time is required (use -- before it)")
	}
	if result.repeat < 1 {
		return options{}, fmt.Errorf("--repeat must be at least 1, got %d", result.repeat)
	}
	switch result.format {
	case "text", "yaml":
	default:
		return options{}, fmt.Errorf("unknown --format %q (want text or yaml)", result.format)
	}
	return result, nil
}

func run(args []string, stdout io.Writer) error {
	opts, err := parseArguments(args)
	if err != nil {
		printUsage(os.Stderr)
		return err
	}
	if opts.help {
		printUsage(stdout)
		return nil
	}
	if opts.version {
		if opts.verbose {
			version.FprintFull(stdout, binaryName)
		} else {
			version.Fprint(stdout, binaryName)
		}
		return nil
	}

	logLevel := slog.LevelWarn
	if opts.verbose {
		logLevel = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: logLevel,
	}))

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	stopwatch := monotonic.NewStopwatch(monotonic.RealClock{})
	result, runErr := timeRuns(ctx, logger, stopwatch, opts.repeat, func(ctx context.Context) error {
		return runCommand(ctx, opts.command)
	})
	result.Command = opts.command

	if err := writeReport(stdout, result, opts.format); err != nil {
		return fmt.Errorf("writing report: %w", err)
	}
	return runErr
}

// runCommand runs command to completion with the caller's stdio.
func runCommand(ctx context.Context, command []string) error {
	path, err := exec.LookPath(command[0])
	if err != nil {
		return fmt.Errorf("command not found: %s", command[0])
	}
	cmd := exec.CommandContext(ctx, path, command[1:]...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	return cmd.Run()
}

// report summarizes a sequence of timed runs. Durations are rendered
// with time.Duration.String so the YAML form stays human-readable.
type report struct {
	Command []string `yaml:"command"`
	Runs    []string `yaml:"runs"`
	Failed  bool     `yaml:"failed"`
	Total   string   `yaml:"total"`
	Min     string   `yaml:"min"`
	Max     string   `yaml:"max"`
	Mean    string   `yaml:"mean"`

	durations []time.Duration
}

func (r *report) add(lap time.Duration) {
	r.durations = append(r.durations, lap)
	r.Runs = append(r.Runs, lap.String())
}

// finish computes the summary fields from the recorded laps.
func (r *report) finish() {
	var total, lowest, highest time.Duration
	for i, lap := range r.durations {
		total += lap
		if i == 0 || lap < lowest {
			lowest = lap
		}
		if lap > highest {
			highest = lap
		}
	}
	var mean time.Duration
	if count := len(r.durations); count > 0 {
		mean = total / time.Duration(count)
	}
	r.Total = total.String()
	r.Min = lowest.String()
	r.Max = highest.String()
	r.Mean = mean.String()
}

// timeRuns calls runOnce up to repeat times and records each call's
// duration as a lap of stopwatch. It stops at the first failing run;
// that run's duration is still recorded.
func timeRuns[C monotonic.Clock](ctx context.Context, logger *slog.Logger, stopwatch *monotonic.Stopwatch[C], repeat int, runOnce func(context.Context) error) (report, error) {
	var result report
	stopwatch.Restart()
	for attempt := 1; attempt <= repeat; attempt++ {
		err := runOnce(ctx)
		lap := stopwatch.Restart()
		result.add(lap)
		if err != nil {
			result.Failed = true
			logger.Error("run failed", "attempt", attempt, "duration", lap, "error", err)
			result.finish()
			return result, fmt.Errorf("run %d of %d: %w", attempt, repeat, err)
		}
		logger.Debug("run finished", "attempt", attempt, "duration", lap)
	}
	result.finish()
	return result, nil
}

func writeReport(w io.Writer, result report, format string) error {
	switch format {
	case "yaml":
		encoder := yaml.NewEncoder(w)
		encoder.SetIndent(2)
		if err := encoder.Encode(result); err != nil {
			return err
		}
		return encoder.Close()
	case "text":
		for i, lap := range result.Runs {
			if _, err := fmt.Fprintf(w, "run %d: %s\n", i+1, lap); err != nil {
				return err
			}
		}
		status := "ok"
		if result.Failed {
			status = "failed"
		}
		_, err := fmt.Fprintf(w, "total %s  min %s  max %s  mean %s  (%s)\n",
			result.Total, result.Min, result.Max, result.Mean, status)
		return err
	default:
		return fmt.Errorf("unknown format %q", format)
	}
}

func printUsage(w io.Writer) {
	fmt.Fprint(w, `monoclock-stopwatch - time a command on the monotonic clock

USAGE
    monoclock-stopwatch [flags] -- <command> [args...]

FLAGS
    -n, --repeat <count>   Run the command this many times (default: 1)
    -f, --format <format>  Report format: text or yaml (default: text)
    -v, --verbose          Log each run to stderr
    -h, --help             Show this help
        --version          Print version and exit (with -v: Go and platform too)
`)
}
