package main

import (
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/nikiz24/syncbench"
)

type options struct {
	readers    int
	writers    int
	reads      int
	increments int
	laps       int
	lapSleep   time.Duration
	verbose    bool
}

func newRootCmd() *cobra.Command {
	opts := &options{}
	cmd := &cobra.Command{
		Use:   "syncbench",
		Short: "Exercise a reader/writer-locked counter and time the run",
		Long: "Spawns a pool of reader and writer goroutines over one shared counter, " +
			"verifies no increments were lost, then runs a stopwatch lap loop.",
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(opts)
		},
	}

	cmd.Flags().IntVar(&opts.readers, "readers", 32, "Number of reader goroutines")
	cmd.Flags().IntVar(&opts.writers, "writers", 3, "Number of writer goroutines")
	cmd.Flags().IntVar(&opts.reads, "reads", 10000, "Get calls per reader")
	cmd.Flags().IntVar(&opts.increments, "increments", 1000, "Increment calls per writer")
	cmd.Flags().IntVar(&opts.laps, "laps", 100, "Stopwatch lap cycles to run after the counter demo")
	cmd.Flags().DurationVar(&opts.lapSleep, "lap-sleep", 10*time.Millisecond, "Sleep inside each lap cycle")
	cmd.Flags().BoolVar(&opts.verbose, "verbose", false, "Log every counter operation")

	return cmd
}

func newLogger(verbose bool) (*zap.Logger, error) {
	if verbose {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}

func run(opts *options) error {
	logger, err := newLogger(opts.verbose)
	if err != nil {
		return fmt.Errorf("building logger: %w", err)
	}
	defer logger.Sync()

	stats := syncbench.NewOpStats()
	counter := syncbench.NewSharedCounter(syncbench.MultiObserver(
		stats.Observe,
		syncbench.LogObserver(logger),
	))

	watch := syncbench.NewStopwatch()

	var wg sync.WaitGroup
	for i := 0; i < opts.readers; i++ {
		wg.Add(1)
		go func(id int) {
			defer wg.Done()
			worker := logger.Named(fmt.Sprintf("reader-%d", id))
			for j := 0; j < opts.reads; j++ {
				v := counter.Get()
				worker.Debug("observed", zap.Uint64("value", v))
			}
		}(i)
	}
	for i := 0; i < opts.writers; i++ {
		wg.Add(1)
		go func(id int) {
			defer wg.Done()
			for j := 0; j < opts.increments; j++ {
				counter.Increment()
			}
		}(i)
	}
	wg.Wait()
	watch.Stop()

	snap := stats.Snapshot()
	final := counter.Get()
	rt := syncbench.ReadRuntimeStats()
	expected := uint64(opts.writers) * uint64(opts.increments)

	bold := color.New(color.Bold)
	bold.Printf("counter run: %d readers x %d reads, %d writers x %d increments\n",
		opts.readers, opts.reads, opts.writers, opts.increments)
	fmt.Printf("  elapsed:     %s\n", watch)
	fmt.Printf("  final value: %d (expected %d)\n", final, expected)
	fmt.Printf("  observed:    %d reads, %d increments\n", snap.Reads, snap.Increments)
	fmt.Printf("  runtime:     %d goroutines, %.1f MiB heap, %d GC runs (%s paused)\n",
		rt.Goroutines, float64(rt.HeapAlloc)/(1<<20), rt.GCRuns, rt.GCPause.Round(time.Microsecond))

	if final != expected {
		color.Red("  FAILED: lost updates detected")
		return fmt.Errorf("final value %d does not match expected %d", final, expected)
	}
	color.Green("  OK: no lost updates")

	if opts.laps > 0 {
		recorder := syncbench.NewLapRecorder()
		lap := syncbench.NewStopwatch()
		for i := 0; i < opts.laps; i++ {
			lap.Reset()
			time.Sleep(opts.lapSleep)
			lap.Stop()
			recorder.Record(lap.Elapsed())
			logger.Debug("lap finished",
				zap.Int("lap", i),
				zap.Duration("elapsed", lap.Elapsed()))
		}

		summary := recorder.Summary()
		bold.Printf("stopwatch laps: %d cycles of %s sleep\n", summary.Count, opts.lapSleep)
		fmt.Printf("  total %s  min %s  max %s  mean %s\n",
			summary.Total.Round(time.Microsecond),
			summary.Min.Round(time.Microsecond),
			summary.Max.Round(time.Microsecond),
			summary.Mean.Round(time.Microsecond))
	}

	return nil
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
