package main

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"github.com/sheikhrachel/go-life/game"
	"github.com/sheikhrachel/go-life/model"
	"github.com/sheikhrachel/go-life/utils"
)

// displayGameInfo shows the initial game information
func displayGameInfo(w io.Writer, config utils.Config, g *game.Game) {
	fmt.Fprintf(w, "Rule: %s | Tick rate: %d/s\n", g.Rules(), config.TickRate)
	fmt.Fprintf(w, "Grid: %dx%d | Initial living cells: %d\n",
		g.Grid().RowCount(), g.Grid().ColumnCount(), g.Grid().CountLivingCells())
	fmt.Fprintln(w, "Press Ctrl+C to exit gracefully")
	fmt.Fprintln(w)
}

// displayGameStatus shows the current game status
func displayGameStatus(w io.Writer, g *game.Game) {
	var (
		st    = g.Status()
		stats = g.Stats()
		cells = g.Grid().RowCount() * g.Grid().ColumnCount()
	)

	status := "Active"
	if st.Stagnant {
		status = "Stagnant"
	}
	if st.Population == 0 {
		status = "Extinct"
	}

	fmt.Fprintf(w, "Gen: %d | Living: %d | Density: %.1f%% | Status: %s\n",
		st.Generation, st.Population, float64(st.Population)/float64(cells)*100, status)
	fmt.Fprintf(w, "Performance: %.1f gen/sec | Avg Pop: %.1f | Runtime: %.1fs\n",
		stats.GenerationsPerSecond, stats.AveragePopulation, time.Since(stats.StartTime).Seconds())
	fmt.Fprintln(w)
}

// reachedLimit reports whether the run has produced its configured number of generations
func reachedLimit(g *game.Game, config utils.Config) bool {
	return config.MaxGenerations > 0 && g.Generation() >= config.MaxGenerations
}

// checkStopConditions determines if a headless run should end
func checkStopConditions(g *game.Game, stagnantCount int, config utils.Config) (bool, string) {
	if reachedLimit(g, config) {
		return true, fmt.Sprintf("maximum generations limit (%d)", config.MaxGenerations)
	}
	if g.Grid().CountLivingCells() == 0 {
		return true, "extinction"
	}
	if config.StagnationThreshold > 0 && stagnantCount >= config.StagnationThreshold {
		return true, "stagnation detected"
	}
	return false, ""
}

// runHeadless prints every generation to w until a stop condition or ctx ends the run
func runHeadless(ctx context.Context, w io.Writer, g *game.Game, config utils.Config) error {
	renderer := &model.TerminalRenderer{Out: w}
	displayGameInfo(renderer.Out, config, g)

	eg, ctx := errgroup.WithContext(ctx)
	ticks := make(chan struct{})

	eg.Go(func() error {
		defer close(ticks)
		ticker := time.NewTicker(config.TickInterval())
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return nil
			case <-ticker.C:
				select {
				case ticks <- struct{}{}:
				case <-ctx.Done():
					return nil
				}
			}
		}
	})

	eg.Go(func() error {
		stagnantCount := 0
		g.Play()
		frame(renderer, g)
		for range ticks {
			if stop, reason := checkStopConditions(g, stagnantCount, config); stop {
				fmt.Fprintf(renderer.Out, "\n🏁 Stopping: %s\n", reason)
				return errStop
			}
			g.Tick()
			if g.Status().Stagnant {
				stagnantCount++
			} else {
				stagnantCount = 0
			}
			frame(renderer, g)
		}
		fmt.Fprintln(renderer.Out, "\n🛑 Shutting down gracefully...")
		fmt.Fprintf(renderer.Out, "Final stats: %d generations in %.1f seconds\n",
			g.Generation(), time.Since(g.Stats().StartTime).Seconds())
		return nil
	})

	if err := eg.Wait(); err != nil && !errors.Is(err, errStop) {
		return err
	}
	return nil
}

// errStop ends the errgroup once the generation limit is hit
var errStop = errors.New("generation limit reached")

func frame(renderer *model.TerminalRenderer, g *game.Game) {
	renderer.Clear()
	displayGameStatus(renderer.Out, g)
	renderer.Display(g.Grid())
}
