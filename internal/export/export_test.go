package export

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"

	"github.com/lox/crapsforbots/internal/statistics"
)

func sampleStats() *statistics.Statistics {
	stats := &statistics.Statistics{}
	stats.Add(statistics.RunResult{Seed: 1, Net: 25, FinalBankroll: 525, Rolls: 100, Shooters: 3})
	stats.Add(statistics.RunResult{Seed: 2, Net: -500, FinalBankroll: 0, Rolls: 40, Shooters: 2, Busted: true})
	return stats
}

func TestWriteCSV(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "results.csv")
	if err := WriteCSV(path, sampleStats()); err != nil {
		t.Fatalf("WriteCSV failed: %v", err)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	records, err := csv.NewReader(f).ReadAll()
	if err != nil {
		t.Fatal(err)
	}
	if len(records) != 3 {
		t.Fatalf("Expected header plus 2 rows, got %d", len(records))
	}
	if records[0][0] != "run" || records[0][1] != "net" {
		t.Errorf("Unexpected header: %v", records[0])
	}
	if records[1][1] != "25" {
		t.Errorf("Expected first net of 25, got %s", records[1][1])
	}
	if records[2][1] != "-500" {
		t.Errorf("Expected second net of -500, got %s", records[2][1])
	}
}

func TestWriteCSV_Overwrites(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "results.csv")
	if err := os.WriteFile(path, []byte("stale"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := WriteCSV(path, sampleStats()); err != nil {
		t.Fatalf("WriteCSV failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) == "stale" {
		t.Error("Expected file to be replaced")
	}
}

func TestWriteCSV_NoTempFileLeftBehind(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	if err := WriteCSV(filepath.Join(dir, "results.csv"), sampleStats()); err != nil {
		t.Fatal(err)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 || entries[0].Name() != "results.csv" {
		names := make([]string, 0, len(entries))
		for _, e := range entries {
			names = append(names, e.Name())
		}
		t.Errorf("Expected only results.csv, got %v", names)
	}
}
