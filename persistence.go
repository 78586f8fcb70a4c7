package bfi

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	sqlite "github.com/glebarez/sqlite"
	gorm "gorm.io/gorm"
)

// Optional run history. The interpreter itself is stateless; when a
// [history] section is configured, the CLI records every run here.

// RunRecord is one persisted interpreter run.
type RunRecord struct {
	ID               uint
	CreatedAt        time.Time
	Source           string
	CellBits         uint
	Output           []byte `gorm:"type:blob"`
	InstructionCount uint
	MachineError     *string
}

type PersistenceConfig struct {
	Name          string   `toml:"name"`
	Path          string   `toml:"path"`
	SQLitePragmas []string `toml:"sqlite_pragmas"`
}

type Persistence struct {
	Config *PersistenceConfig
	DB     *gorm.DB
}

func NewPersistence(config *PersistenceConfig) (*Persistence, error) {
	if config == nil {
		return nil, fmt.Errorf("config cannot be nil")
	}

	if len(config.Path) == 0 {
		return nil, fmt.Errorf("Path to database must be defined")
	}

	if len(config.Name) == 0 {
		return nil, fmt.Errorf("Name of database must be defined")
	}

	var dsn strings.Builder
	dsn.WriteString(filepath.Join(config.Path, config.Name))
	for i, prag := range config.SQLitePragmas {
		if i == 0 {
			dsn.WriteRune('?')
		} else {
			dsn.WriteRune('&')
		}
		dsn.WriteString(fmt.Sprintf("_pragma=%s", prag))
	}

	db, err := gorm.Open(sqlite.Open(dsn.String()), &gorm.Config{})
	if err != nil {
		return nil, err
	}

	db = db.Session(&gorm.Session{PrepareStmt: true})

	p := &Persistence{Config: config, DB: db}
	if err = p.initialize(); err != nil {
		return nil, err
	}

	return p, nil
}

func (p *Persistence) initialize() error {
	return p.DB.AutoMigrate(&RunRecord{})
}

func (p *Persistence) Shutdown() error {
	sqldb, err := p.DB.DB()
	if err != nil {
		return fmt.Errorf("Failed to retrieve raw DB: %v", err)
	}
	return sqldb.Close()
}

func (p *Persistence) Create(record *RunRecord) (uint, error) {
	if record == nil {
		return 0, fmt.Errorf("RunRecord cannot be nil")
	}

	if result := p.DB.Create(record); result.Error != nil {
		return 0, fmt.Errorf("Failed to call gorm.Create(): %w", result.Error)
	}

	return record.ID, nil
}

// Recent returns up to limit records, newest first.
func (p *Persistence) Recent(limit int) ([]*RunRecord, error) {
	var records []*RunRecord
	if result := p.DB.Order("id desc").Limit(limit).Find(&records); result.Error != nil {
		return nil, fmt.Errorf("Failed to query run records: %w", result.Error)
	}
	return records, nil
}

// NewRunRecord captures a finished (or failed) run for persistence. result
// may be nil when runErr is set.
func NewRunRecord(source string, cellBits uint, result *RunResult, runErr error) *RunRecord {
	record := &RunRecord{
		Source:   source,
		CellBits: cellBits,
	}
	if result != nil {
		record.Output = result.Output
		record.InstructionCount = result.InstructionCount
	}
	if runErr != nil {
		msg := runErr.Error()
		record.MachineError = &msg
	}
	return record
}
