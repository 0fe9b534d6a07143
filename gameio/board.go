// Package gameio reads and writes game boards as flat binary dumps: N²
// little-endian 32-bit integers in row-major order, one per cell.
package gameio

import (
	"encoding/binary"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/pkg/errors"

	"github.com/mentekid/GameOfLife/model"
	"github.com/mentekid/GameOfLife/utils"
)

const cellBytes = 4

// ReadBoard reads n*n cell values from a binary file. Failing to open the
// file or reading zero values is fatal. Reading fewer than n*n values is
// not: the cells read so far come back zero-padded to n*n alongside a
// count-mismatch warning, and the caller runs on what it got. Any nonzero
// stored integer loads as Alive.
func ReadBoard(path string, n int) ([]model.Cell, *utils.Warning, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, errors.Wrapf(err, "[ReadBoard] couldn't open file to read: %+v", path)
	}
	defer f.Close()

	raw := make([]byte, n*n*cellBytes)
	read, err := io.ReadFull(f, raw)
	if err != nil && err != io.ErrUnexpectedEOF && err != io.EOF {
		return nil, nil, errors.Wrapf(err, "[ReadBoard] couldn't read from file: %+v", path)
	}

	count := read / cellBytes
	if count == 0 {
		return nil, nil, errors.Errorf("[ReadBoard] couldn't read from file: %+v", path)
	}

	cells := make([]model.Cell, n*n)
	for i := 0; i < count; i++ {
		if binary.LittleEndian.Uint32(raw[i*cellBytes:]) != 0 {
			cells[i] = model.Alive
		}
	}

	var warn *utils.Warning
	if count != n*n {
		w := utils.Warnf("ReadBoard", "expected to read %d elements, read %d", n*n, count)
		warn = &w
	}
	return cells, warn, nil
}

// WriteBoard persists the board to path as raw binary integers. Failing to
// open the destination or writing zero bytes is fatal; a short write is a
// warning.
func WriteBoard(path string, cells []model.Cell) (*utils.Warning, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, errors.Wrapf(err, "[WriteBoard] couldn't open file to write: %+v", path)
	}
	defer f.Close()

	raw := make([]byte, len(cells)*cellBytes)
	for i, c := range cells {
		binary.LittleEndian.PutUint32(raw[i*cellBytes:], uint32(c))
	}

	// A partial write surfaces as an error with a nonzero count; only the
	// zero-progress case is fatal, a short transfer is a count warning.
	written, err := f.Write(raw)
	if written == 0 {
		if err != nil {
			return nil, errors.Wrapf(err, "[WriteBoard] couldn't write to file: %+v", path)
		}
		return nil, errors.Errorf("[WriteBoard] couldn't write to file: %+v", path)
	}
	var warn *utils.Warning
	if written != len(raw) {
		w := utils.Warnf("WriteBoard", "expected to write %d elements, wrote %d",
			len(cells), written/cellBytes)
		warn = &w
	}
	return warn, nil
}

// OutputPath derives the destination for the final board, tableNxN_new.bin,
// so the input file is never overwritten.
func OutputPath(dir string, n int) string {
	return filepath.Join(dir, fmt.Sprintf("table%dx%d_new.bin", n, n))
}
