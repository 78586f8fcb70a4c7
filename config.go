package bfi

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// ToolConfig is the TOML config shared by the bfi tools. All fields are
// optional; an omitted cell_bits falls back to the default width.
type ToolConfig struct {
	CellBits   uint               `toml:"cell_bits"`
	MemoryDump bool               `toml:"memory_dump"`
	History    *PersistenceConfig `toml:"history"`
}

func LoadToolConfig(path string) (*ToolConfig, error) {
	conffile, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("Unable to open tool config [%s]: %v", path, err)
	}
	defer conffile.Close()

	var config ToolConfig
	if _, err = toml.NewDecoder(conffile).Decode(&config); err != nil {
		return nil, fmt.Errorf("Failed to unmarshal tool config [%s]: %v", path, err)
	}

	if config.CellBits == 0 {
		config.CellBits = DefaultCellBits
	}

	return &config, nil
}
