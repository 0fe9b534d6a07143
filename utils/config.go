package utils

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"

	"github.com/pkg/errors"
)

// Config holds the positional arguments of a run: where the initial board
// lives, the grid side N, and how many generations to play.
type Config struct {
	InputPath   string
	Size        int
	Generations int
}

// Usage returns the usage string printed on an argument-count mismatch.
func Usage(prog string) string {
	return fmt.Sprintf("Usage: %s filename size t, where:\n"+
		"\tfilename is the input file\n"+
		"\tsize is the grid side and\n"+
		"\tt generations to play", prog)
}

// ParseArgs parses the three positional arguments. A missing or extra
// argument is a fatal usage error. Numeric arguments follow atoi semantics:
// a malformed number parses as zero and flows through unvalidated.
func ParseArgs(args []string) (Config, error) {
	if len(args) != 4 {
		prog := "gol"
		if len(args) > 0 {
			prog = args[0]
		}
		return Config{}, errors.Errorf("wrong arguments\n%s", Usage(prog))
	}
	return Config{
		InputPath:   args[1],
		Size:        atoi(args[2]),
		Generations: atoi(args[3]),
	}, nil
}

func atoi(s string) int {
	n, _ := strconv.Atoi(s)
	return n
}

// Options holds the optional plumbing knobs loaded from a JSON file.
type Options struct {
	PreviewSize  int    `json:"preview_size"`
	ReportTiming bool   `json:"report_timing"`
	OutputDir    string `json:"output_dir"`
}

// DefaultOptions returns sensible defaults
func DefaultOptions() Options {
	return Options{
		PreviewSize:  4,
		ReportTiming: true,
		OutputDir:    ".",
	}
}

// LoadOptions loads run options from a JSON file
func LoadOptions(filename string) (Options, error) {
	opts := DefaultOptions()

	data, err := os.ReadFile(filename)
	if err != nil {
		return opts, errors.Wrapf(err, "[LoadOptions] failed to read file: %+v", filename)
	}

	if err = json.Unmarshal(data, &opts); err != nil {
		return opts, errors.Wrapf(err, "[LoadOptions] failed to unmarshal data from file: %+v", filename)
	}

	return opts, nil
}
