package main

import (
	"context"
	"io"
	"os"
	"time"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/pkg/errors"
	"github.com/urfave/cli"
	"golang.org/x/sync/errgroup"

	"github.com/sheikhrachel/go-life/model"
	"github.com/sheikhrachel/go-life/utils"
)

const (
	statusActive   = "active"
	statusStagnant = "stagnant"
	statusExtinct  = "extinct"
)

// game ties the engine to its renderer for the lifetime of a run
type game struct {
	config   utils.Config
	grid     *model.Grid
	renderer *model.TerminalRenderer
	stats    *utils.Stats
	logger   log.Logger
	status   string
}

// loadConfig merges the defaults, the optional config file and the flags set on the command line
func loadConfig(c *cli.Context) (utils.Config, error) {
	config := utils.DefaultConfig()
	if path := c.String("config"); path != "" {
		var err error
		if config, err = utils.LoadConfig(path); err != nil {
			return config, err
		}
	}

	if c.IsSet("bounded") {
		config.Bounded = c.Bool("bounded")
	}
	if c.IsSet("width") {
		config.Width = c.Int("width")
	}
	if c.IsSet("height") {
		config.Height = c.Int("height")
	}
	if c.IsSet("pattern") {
		config.Pattern = c.String("pattern")
	}
	if c.IsSet("cells") {
		cells, err := model.ParseCoords(c.String("cells"))
		if err != nil {
			return config, errors.Wrap(err, "[loadConfig] invalid --cells")
		}
		config.Cells = config.Cells[:0]
		for _, cell := range cells {
			config.Cells = append(config.Cells, [2]int{cell.X, cell.Y})
		}
	}
	if c.IsSet("random") {
		config.RandomCount = c.Int("random")
	}
	if c.IsSet("deviation") {
		config.Deviation = c.Int("deviation")
	}
	if c.IsSet("random-seed") {
		config.RandomSeed = c.Int64("random-seed")
	}
	if c.IsSet("interval") {
		config.FrameRate = c.Duration("interval")
	}
	if c.IsSet("max-generations") {
		config.MaxGenerations = c.Int("max-generations")
	}
	if c.IsSet("clear") {
		config.ClearScreen = c.Bool("clear")
	}
	if c.IsSet("log-level") {
		config.LogLevel = c.String("log-level")
	}

	return config, config.Validate()
}

// newGrid builds an empty engine for the configured boundary mode
func newGrid(config utils.Config) (*model.Grid, error) {
	opts := []model.Option{
		model.WithRand(model.NewRand(config.RandomSeed)),
		model.WithDeviation(config.Deviation),
	}
	if !config.Bounded {
		return model.NewGrid(opts...), nil
	}
	return model.NewBoundedGrid(config.Width, config.Height, opts...)
}

// seedGrid places the configured pattern, explicit cells and random cells.
// Without any of them the demo pattern is used.
func seedGrid(grid *model.Grid, config utils.Config) error {
	pattern := config.Pattern
	if !config.HasSeed() {
		pattern = "demo"
	}

	if pattern != "" {
		cells, err := model.LookupPattern(pattern)
		if err != nil {
			return err
		}
		cells = model.Translate(cells, config.PatternOffset[0], config.PatternOffset[1])
		if err = grid.Seed(cells...); err != nil {
			return errors.Wrapf(err, "[seedGrid] failed to seed pattern %q", pattern)
		}
	}

	if len(config.Cells) > 0 {
		cells := make([]model.Coord, len(config.Cells))
		for i, pair := range config.Cells {
			cells[i] = model.Coord{X: pair[0], Y: pair[1]}
		}
		if err := grid.Seed(cells...); err != nil {
			return errors.Wrap(err, "[seedGrid] failed to seed cells")
		}
	}

	if config.RandomCount > 0 {
		if err := grid.RandomSeed(config.RandomCount); err != nil {
			return errors.Wrapf(err, "[seedGrid] failed to seed %d random cells", config.RandomCount)
		}
	}
	return nil
}

// initializeGame sets up the initial game state
func initializeGame(config utils.Config, out io.Writer, logger log.Logger) (*game, error) {
	grid, err := newGrid(config)
	if err != nil {
		return nil, err
	}
	if err = seedGrid(grid, config); err != nil {
		return nil, err
	}

	return &game{
		config:   config,
		grid:     grid,
		renderer: model.NewTerminalRenderer(out, config.ClearScreen),
		stats:    utils.NewStats(),
		logger:   logger,
		status:   statusActive,
	}, nil
}

// displayGameInfo logs the initial game information
func (gm *game) displayGameInfo() {
	keyvals := []interface{}{
		"msg", "starting simulation",
		"bounded", gm.config.Bounded,
		"live_cells", gm.grid.Len(),
		"interval", gm.config.FrameRate,
	}
	if b, bounded := gm.grid.Bounds(); bounded {
		keyvals = append(keyvals, "width", b.Width, "height", b.Height)
	}
	if gm.config.MaxGenerations > 0 {
		keyvals = append(keyvals, "max_generations", gm.config.MaxGenerations)
	}
	level.Info(gm.logger).Log(keyvals...)
}

// updateGameState records the current generation and logs status changes
func (gm *game) updateGameState(frameStart time.Time) {
	var (
		generation  = gm.grid.Generation()
		livingCells = gm.grid.Len()
	)
	gm.stats.Update(generation, livingCells, time.Since(frameStart))

	status := statusActive
	if gm.grid.IsStagnant() {
		status = statusStagnant
	}
	if livingCells == 0 {
		status = statusExtinct
	}
	gm.grid.UpdateHistory()

	if status != gm.status {
		level.Info(gm.logger).Log("msg", "status changed", "status", status, "generation", generation)
		gm.status = status
	}
	level.Debug(gm.logger).Log(
		"generation", generation,
		"living", livingCells,
		"gen_per_sec", gm.stats.GenerationsPerSecond,
		"avg_population", gm.stats.AveragePopulation,
	)
}

// frame renders the current generation
func (gm *game) frame(frameStart time.Time) error {
	gm.updateGameState(frameStart)
	return gm.renderer.Display(gm.grid)
}

// run renders the seeded state, then steps and renders once per interval
// until ctx is done or the generation limit is reached
func (gm *game) run(ctx context.Context) error {
	if err := gm.frame(time.Now()); err != nil {
		return err
	}

	for {
		if gm.config.MaxGenerations > 0 && gm.grid.Generation() >= gm.config.MaxGenerations {
			level.Info(gm.logger).Log("msg", "reached maximum generations", "limit", gm.config.MaxGenerations)
			return nil
		}
		if !wait(ctx, gm.config.FrameRate) {
			return nil
		}

		frameStart := time.Now()
		gm.grid.Step()
		if err := gm.frame(frameStart); err != nil {
			return err
		}
	}
}

// wait blocks for d and reports false if ctx ended first
func wait(ctx context.Context, d time.Duration) bool {
	if d <= 0 {
		return ctx.Err() == nil
	}

	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return false
	case <-timer.C:
		return true
	}
}

// watchSignals cancels the run on the first signal received. It returns
// once ctx is done.
func watchSignals(ctx context.Context, signals <-chan os.Signal, stop context.CancelFunc, logger log.Logger) error {
	select {
	case sig := <-signals:
		level.Info(logger).Log("msg", "shutting down", "signal", sig)
		stop()
	case <-ctx.Done():
	}
	return nil
}

// runGame builds the game from config and runs it until the generation
// limit, a signal on signals, or the end of parent.
func runGame(
	parent context.Context,
	config utils.Config,
	out io.Writer,
	logger log.Logger,
	signals <-chan os.Signal,
) error {
	gm, err := initializeGame(config, out, logger)
	if err != nil {
		return err
	}
	gm.displayGameInfo()

	ctx, stop := context.WithCancel(parent)
	defer stop()

	eg, ctx := errgroup.WithContext(ctx)
	eg.Go(func() error {
		defer stop()
		return gm.run(ctx)
	})
	eg.Go(func() error {
		return watchSignals(ctx, signals, stop, logger)
	})

	err = eg.Wait()
	level.Info(logger).Log(
		"msg", "final stats",
		"generations", gm.stats.TotalGenerations,
		"runtime", gm.stats.Runtime().Round(time.Millisecond),
		"avg_population", gm.stats.AveragePopulation,
	)
	return err
}
