package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/mentekid/GameOfLife/gameio"
	"github.com/mentekid/GameOfLife/model"
	"github.com/mentekid/GameOfLife/utils"
)

const optionsFile = "gol.json"

func main() {
	if err := run(os.Args, os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %+v\n", err)
		os.Exit(1)
	}
}

// run drives one full game: parse arguments, load the board, play t timed
// generations, and persist the result. Fatal conditions come back as
// errors; warnings are printed and the run continues.
func run(args []string, out io.Writer) error {
	config, err := utils.ParseArgs(args)
	if err != nil {
		return err
	}

	// Optional plumbing knobs - fall back to defaults if the file is absent
	opts, err := utils.LoadOptions(optionsFile)
	if err != nil {
		opts = utils.DefaultOptions()
	}

	cells, warn, err := gameio.ReadBoard(config.InputPath, config.Size)
	if err != nil {
		return err
	}
	if warn != nil {
		fmt.Fprintln(out, warn)
	}
	fmt.Fprintf(out, "elements read: %d\n", len(cells))

	grid := model.NewGrid(config.Size)
	grid.SetCells(cells)

	renderer := &model.TerminalRenderer{Out: out}
	renderer.PreviewCorner(grid, opts.PreviewSize)

	var (
		pool  = model.NewBufferPool()
		stats = utils.NewStats()
	)
	if opts.ReportTiming {
		fmt.Fprintln(out, "Generation \t Time")
	}
	warnings := grid.Run(config.Generations, pool, func(gen int, tr model.Transitions, elapsed time.Duration) {
		stats.Update(gen, elapsed)
		if opts.ReportTiming {
			fmt.Fprintf(out, "[%d]\t\t %fs\n", gen, elapsed.Seconds())
		}
	})
	for _, w := range warnings {
		fmt.Fprintln(out, w)
	}

	renderer.PreviewCorner(grid, opts.PreviewSize)

	outPath := gameio.OutputPath(opts.OutputDir, config.Size)
	fmt.Fprintf(out, "writing to: %s\n", outPath)
	warn, err = gameio.WriteBoard(outPath, grid.Cells())
	if err != nil {
		return err
	}
	if warn != nil {
		fmt.Fprintln(out, warn)
	}

	fmt.Fprintf(out, "Played %d generations in %.1fs (%.1f gen/sec) | Living cells: %d\n",
		stats.TotalGenerations, stats.TotalElapsed().Seconds(),
		stats.GenerationsPerSecond(), grid.CountLiving())
	return nil
}
