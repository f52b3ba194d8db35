// Package history archives generated instruction sets in SQLite so
// earlier runs can be reviewed or re-validated later. The synthesis
// engine itself never touches this package; archiving happens at the
// tool layer and is best-effort.
package history

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"

	"github.com/arroz4/ado-instruction-mcp-server/internal/ado"
)

// openDB is a package-level var to allow test injection.
var openDB = sql.Open

// Generation is one archived synthesis run.
type Generation struct {
	ID          int64  `json:"id"`
	ProjectName string `json:"project_name"`
	Source      string `json:"source"`
	EpicCount   int    `json:"epic_count"`
	TaskCount   int    `json:"task_count"`
	Payload     string `json:"payload"`
	CreatedAt   string `json:"created_at"`
}

// Summary is a compact view of a generation without the payload.
type Summary struct {
	ID          int64  `json:"id"`
	ProjectName string `json:"project_name"`
	Source      string `json:"source"`
	EpicCount   int    `json:"epic_count"`
	TaskCount   int    `json:"task_count"`
	CreatedAt   string `json:"created_at"`
}

// Config holds history store configuration.
type Config struct {
	DataDir string
}

// DefaultConfig returns the default configuration for the history store.
func DefaultConfig() Config {
	home, _ := os.UserHomeDir()
	return Config{DataDir: filepath.Join(home, ".ado-instructions")}
}

// Store is the generation archive backed by SQLite.
type Store struct {
	db *sql.DB
}

// New creates a new Store with the given configuration.
// It creates the data directory if needed, opens SQLite with WAL mode,
// and runs migrations.
func New(cfg Config) (*Store, error) {
	if err := os.MkdirAll(cfg.DataDir, 0700); err != nil {
		return nil, fmt.Errorf("history: create data dir: %w", err)
	}

	dbPath := filepath.Join(cfg.DataDir, "history.db")
	db, err := openDB("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("history: open database: %w", err)
	}

	// SQLite performance pragmas
	pragmas := []string{
		"PRAGMA journal_mode = WAL",
		"PRAGMA busy_timeout = 5000",
		"PRAGMA synchronous = NORMAL",
		"PRAGMA foreign_keys = ON",
	}
	for _, p := range pragmas {
		if _, err := db.Exec(p); err != nil {
			return nil, fmt.Errorf("history: pragma %q: %w", p, err)
		}
	}

	s := &Store{db: db}
	if err := s.migrate(); err != nil {
		return nil, fmt.Errorf("history: migration: %w", err)
	}

	return s, nil
}

// Close closes the underlying database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS generations (
			id           INTEGER PRIMARY KEY AUTOINCREMENT,
			project_name TEXT NOT NULL,
			source       TEXT NOT NULL,
			epic_count   INTEGER NOT NULL DEFAULT 0,
			task_count   INTEGER NOT NULL DEFAULT 0,
			payload      TEXT NOT NULL,
			created_at   TEXT NOT NULL DEFAULT (datetime('now'))
		);

		CREATE INDEX IF NOT EXISTS idx_gen_project ON generations(project_name);
		CREATE INDEX IF NOT EXISTS idx_gen_created ON generations(created_at DESC);
	`
	_, err := s.db.Exec(schema)
	return err
}

// Add archives an instruction set. source names the tool that produced
// it (e.g. "transcript", "records").
func (s *Store) Add(ins *ado.Instructions, source string) (int64, error) {
	payload, err := ins.ToJSON()
	if err != nil {
		return 0, fmt.Errorf("history: encode payload: %w", err)
	}

	res, err := s.db.Exec(
		`INSERT INTO generations (project_name, source, epic_count, task_count, payload)
		 VALUES (?, ?, ?, ?, ?)`,
		ins.ProjectName, source, len(ins.Epics()), len(ins.Tasks()), string(payload),
	)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

// List returns recent generations, newest first, without payloads.
// An empty project lists across all projects.
func (s *Store) List(project string, limit int) ([]Summary, error) {
	if limit <= 0 {
		limit = 10
	}

	query := `SELECT id, project_name, source, epic_count, task_count, created_at
	          FROM generations`
	args := []any{}
	if project != "" {
		query += " WHERE project_name = ?"
		args = append(args, project)
	}
	query += " ORDER BY id DESC LIMIT ?"
	args = append(args, limit)

	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var results []Summary
	for rows.Next() {
		var sum Summary
		if err := rows.Scan(&sum.ID, &sum.ProjectName, &sum.Source, &sum.EpicCount, &sum.TaskCount, &sum.CreatedAt); err != nil {
			return nil, err
		}
		results = append(results, sum)
	}
	return results, rows.Err()
}

// Get retrieves a single archived generation by ID, payload included.
func (s *Store) Get(id int64) (*Generation, error) {
	row := s.db.QueryRow(
		`SELECT id, project_name, source, epic_count, task_count, payload, created_at
		 FROM generations WHERE id = ?`, id,
	)
	var g Generation
	if err := row.Scan(&g.ID, &g.ProjectName, &g.Source, &g.EpicCount, &g.TaskCount, &g.Payload, &g.CreatedAt); err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("history: generation %d not found", id)
		}
		return nil, err
	}
	return &g, nil
}
