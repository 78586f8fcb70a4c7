package bfi

import (
	"os"
	"path/filepath"
	"testing"
)

func writeConfig(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(contents), 0644); err != nil {
		t.Fatalf("Unexpected failure writing config file: %v", err)
	}
	return path
}

func TestLoadToolConfig(t *testing.T) {
	path := writeConfig(t, `
cell_bits = 16
memory_dump = true

[history]
name = "runs.db"
path = "/var/lib/bfi"
sqlite_pragmas = ["journal_mode(WAL)"]
`)

	config, err := LoadToolConfig(path)
	if err != nil {
		t.Fatalf("Unexpected failure calling LoadToolConfig(): %v", err)
	}

	if config.CellBits != 16 {
		t.Errorf("CellBits [%d] is not expected [16]", config.CellBits)
	}
	if !config.MemoryDump {
		t.Errorf("MemoryDump is not expected [true]")
	}
	if config.History == nil {
		t.Fatalf("History section was not decoded")
	}
	if config.History.Name != "runs.db" || config.History.Path != "/var/lib/bfi" {
		t.Errorf("History %+v does not carry the configured database location", config.History)
	}
	if len(config.History.SQLitePragmas) != 1 || config.History.SQLitePragmas[0] != "journal_mode(WAL)" {
		t.Errorf("History pragmas %v don't match", config.History.SQLitePragmas)
	}
}

func TestLoadToolConfigDefaultsCellBits(t *testing.T) {
	path := writeConfig(t, "memory_dump = false\n")

	config, err := LoadToolConfig(path)
	if err != nil {
		t.Fatalf("Unexpected failure calling LoadToolConfig(): %v", err)
	}

	if config.CellBits != DefaultCellBits {
		t.Errorf("CellBits [%d] did not default to [%d]", config.CellBits, DefaultCellBits)
	}
	if config.History != nil {
		t.Errorf("History %+v decoded from a config without a history section", config.History)
	}
}

func TestLoadToolConfigMissingFile(t *testing.T) {
	if _, err := LoadToolConfig(filepath.Join(t.TempDir(), "absent.toml")); err == nil {
		t.Errorf("Unexpected success calling LoadToolConfig() on a missing file")
	}
}
