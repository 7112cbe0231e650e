// Command skirmish runs seeded headless skirmishes and prints a report for
// each run.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/charmbracelet/log"
	"golang.org/x/sync/errgroup"

	"github.com/milk9111/skirmish/player"
	"github.com/milk9111/skirmish/prefabs"
	"github.com/milk9111/skirmish/sim"
)

func main() {
	arenaName := flag.String("arena", "arena.yaml", "arena prefab in prefabs/ (embedded copy if missing on disk)")
	runs := flag.Int("runs", 1, "number of runs")
	seconds := flag.Float64("seconds", 30, "simulated seconds per run")
	seed := flag.Uint64("seed", 1, "seed of the first run; run i uses seed+i")
	parallel := flag.Int("parallel", 4, "runs simulated at once")
	step := flag.Duration("step", time.Second/60, "simulation step")
	bot := flag.Bool("bot", true, "drive the player with a strafing bot")
	level := flag.String("log-level", "info", "log level (debug, info, warn, error)")
	list := flag.Bool("list", false, "list the embedded prefabs and exit")
	flag.Parse()

	if *list {
		for _, name := range prefabs.Names() {
			fmt.Println(name)
		}
		return
	}

	lvl, err := log.ParseLevel(*level)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	logger := log.NewWithOptions(os.Stderr, log.Options{
		Level:           lvl,
		ReportTimestamp: true,
		Prefix:          "skirmish",
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	reports, err := runAll(ctx, logger, *arenaName, *runs, *parallel, *seed, *bot,
		time.Duration(*seconds*float64(time.Second)), *step)
	for _, r := range reports {
		if r != nil {
			fmt.Print(r.String())
		}
	}
	if err != nil {
		logger.Error("run failed", "err", err)
		os.Exit(1)
	}
}

func runAll(ctx context.Context, logger *log.Logger, arenaName string, runs, parallel int, seed uint64, bot bool, length, step time.Duration) ([]*sim.Report, error) {
	if runs < 1 {
		runs = 1
	}
	reports := make([]*sim.Report, runs)

	g, ctx := errgroup.WithContext(ctx)
	if parallel > 0 {
		g.SetLimit(parallel)
	}
	for i := 0; i < runs; i++ {
		g.Go(func() error {
			opts := []sim.Option{
				sim.WithSeed(seed + uint64(i)),
				sim.WithLogger(logger.With("seed", seed+uint64(i))),
			}
			if bot {
				opts = append(opts, sim.WithPlayerDriver(player.Strafe(2*time.Second, 400*time.Millisecond)))
			}
			r, err := runOne(ctx, arenaName, length, step, opts...)
			if err != nil {
				return fmt.Errorf("run %d: %w", i, err)
			}
			reports[i] = &r
			return nil
		})
	}
	return reports, g.Wait()
}

// runOne simulates in one-second slices so an interrupt ends the run
// between slices.
func runOne(ctx context.Context, arenaName string, length, step time.Duration, opts ...sim.Option) (sim.Report, error) {
	s, err := sim.Load(arenaName, opts...)
	if err != nil {
		return sim.Report{}, err
	}
	defer s.Close()

	for s.Elapsed() < length && !s.Finished() {
		if err := ctx.Err(); err != nil {
			return s.Report(), err
		}
		slice := min(time.Second, length-s.Elapsed())
		if _, err := s.Run(slice, step); err != nil {
			return s.Report(), err
		}
	}
	return s.Report(), nil
}
