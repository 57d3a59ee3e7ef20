// Package dataset reads and writes the CSV datasets exchanged between pipeline stages.
package dataset

import (
	"errors"
	"fmt"
	"os"

	"github.com/gocarina/gocsv"
)

const (
	// DefaultBlocksPath is where stage one writes and stage two reads block records.
	DefaultBlocksPath = "ocean_blocks.csv"
	// DefaultTransactionsPath is where stage two writes classified transactions.
	DefaultTransactionsPath = "ocean_tx.csv"
)

func writeFile(path string, rows any) (err error) {
	if path == "" {
		return errors.New("dataset path is required")
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("close %s: %w", path, cerr)
		}
	}()

	if err := gocsv.Marshal(rows, f); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

func readFile(path string, rows any) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	if err := gocsv.Unmarshal(f, rows); err != nil {
		return fmt.Errorf("read %s: %w", path, err)
	}
	return nil
}
