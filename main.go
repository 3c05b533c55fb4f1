package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/go-kit/log/level"
	"github.com/urfave/cli"

	"github.com/sheikhrachel/go-life/model"
	"github.com/sheikhrachel/go-life/utils"
)

func main() {
	app := newApp(os.Stdout, os.Stderr)
	if err := app.Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "go-life: %v\n", err)
		os.Exit(1)
	}
}

// newApp builds the command line application. Frames go to stdout, logs to stderr.
func newApp(stdout, stderr io.Writer) *cli.App {
	defaults := utils.DefaultConfig()

	app := cli.NewApp()
	app.Name = "go-life"
	app.Usage = "run Conway's Game of Life in the terminal"
	app.HideVersion = true
	app.Writer = stdout
	app.ErrWriter = stderr
	app.Flags = []cli.Flag{
		cli.StringFlag{Name: "config, c", Usage: "load settings from a JSON `FILE`"},
		cli.BoolFlag{Name: "bounded", Usage: "run on a finite width x height field instead of the infinite plane"},
		cli.IntFlag{Name: "width", Value: defaults.Width, Usage: "field width when bounded"},
		cli.IntFlag{Name: "height", Value: defaults.Height, Usage: "field height when bounded"},
		cli.StringFlag{Name: "cells", Usage: "initial live cells, e.g. \"7,0 8,0 9,0\""},
		cli.StringFlag{
			Name:  "pattern, p",
			Usage: "seed a named pattern (" + strings.Join(model.PatternNames(), ", ") + ")",
		},
		cli.IntFlag{Name: "random, r", Usage: "seed `N` cells at random positions"},
		cli.IntFlag{Name: "deviation", Value: defaults.Deviation, Usage: "random window [-d, d) on the infinite plane"},
		cli.Int64Flag{Name: "random-seed", Usage: "seed of the random source, 0 picks one from the clock"},
		cli.DurationFlag{Name: "interval, i", Value: defaults.FrameRate, Usage: "delay between generations"},
		cli.IntFlag{Name: "max-generations, n", Usage: "stop after `N` generations, 0 runs until interrupted"},
		cli.BoolFlag{Name: "clear", Usage: "clear the terminal before each frame"},
		cli.StringFlag{Name: "log-level", Value: defaults.LogLevel, Usage: "debug, info, warn or error"},
	}
	app.Action = func(c *cli.Context) error {
		config, err := loadConfig(c)
		if err != nil {
			return err
		}

		logger, err := utils.NewLogger(stderr, config.LogLevel)
		if err != nil {
			return err
		}

		// Handle Ctrl+C gracefully
		signals := make(chan os.Signal, 1)
		signal.Notify(signals, os.Interrupt, syscall.SIGTERM)
		defer signal.Stop(signals)

		if err := runGame(context.Background(), config, stdout, logger, signals); err != nil {
			level.Error(logger).Log("msg", "simulation failed", "err", err)
			return cli.NewExitError("", 1)
		}
		return nil
	}
	return app
}
