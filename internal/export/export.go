// Package export writes simulation results to disk for offline analysis.
package export

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/lox/crapsforbots/internal/statistics"
)

// WriteCSV writes one row per session to path, atomically. The file is
// staged in a temp file and renamed into place so a concurrent reader sees
// either the previous contents or the complete new file, never a partial
// write.
func WriteCSV(path string, stats *statistics.Statistics) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".tmp.*")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	tmpPath := tmp.Name()
	defer func() {
		if tmp != nil {
			tmp.Close()
			os.Remove(tmpPath)
		}
	}()

	w := csv.NewWriter(tmp)
	if err := w.Write([]string{"run", "net"}); err != nil {
		return err
	}
	for i, net := range stats.Values {
		record := []string{
			strconv.Itoa(i),
			strconv.FormatFloat(net, 'f', -1, 64),
		}
		if err := w.Write(record); err != nil {
			return err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("failed to write csv: %w", err)
	}

	if err := tmp.Sync(); err != nil {
		return fmt.Errorf("failed to sync temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to close temp file: %w", err)
	}

	if err := os.Rename(tmpPath, path); err != nil {
		return fmt.Errorf("failed to rename temp file: %w", err)
	}
	tmp = nil
	return nil
}
