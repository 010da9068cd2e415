// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package archive records ranked runs in a SQLite database so they can be
// listed and exported later. Retrieval never reads from it.
package archive

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/pdiddy/arxiv-sift/internal/pipeline"
	"github.com/pdiddy/arxiv-sift/pkg/types"
)

// DefaultPath is the archive location relative to os.UserConfigDir.
const DefaultPath = "arxiv-sift/runs.db"

// ErrRunNotFound is returned for an unknown run ID.
var ErrRunNotFound = errors.New("run not found")

// Run is one archived invocation.
type Run struct {
	ID        int64            `json:"id" yaml:"id"`
	CreatedAt time.Time        `json:"created_at" yaml:"created_at"`
	Mode      string           `json:"mode" yaml:"mode"`
	Source    types.SourceKind `json:"source" yaml:"source"`
	Query     types.Query      `json:"query" yaml:"query"`
	Retrieved int              `json:"retrieved" yaml:"retrieved"`
	Matched   int              `json:"matched" yaml:"matched"`
	Skipped   int              `json:"skipped" yaml:"skipped"`
	// Results is empty in listings; Get fills it.
	Results []Entry `json:"results,omitempty" yaml:"results,omitempty"`
	// Count is the number of stored results.
	Count int `json:"count" yaml:"count"`
}

// Entry is one ranked paper of a run.
type Entry struct {
	Position int         `json:"position" yaml:"position"`
	Score    *float64    `json:"score,omitempty" yaml:"score,omitempty"`
	Paper    types.Paper `json:"paper" yaml:"paper"`
}

// NewRun converts pipeline output into a Run ready to save.
func NewRun(mode string, q types.Query, out pipeline.Output) Run {
	r := Run{
		Mode:      mode,
		Source:    out.Source,
		Query:     q,
		Retrieved: out.Retrieved,
		Matched:   out.Matched,
		Skipped:   out.Skipped,
		Results:   make([]Entry, len(out.Results)),
		Count:     len(out.Results),
	}
	for i, res := range out.Results {
		r.Results[i] = Entry{Position: i + 1, Score: res.Score, Paper: res.Paper}
	}
	return r
}

// Store manages the run archive database.
type Store struct {
	db  *sql.DB
	now func() time.Time
}

// Open opens or creates the archive at path, creating parent directories
// and the schema as needed.
func Open(path string) (*Store, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("creating archive directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite3", path+"?_journal_mode=WAL&_foreign_keys=on")
	if err != nil {
		return nil, fmt.Errorf("opening archive: %w", err)
	}

	s := &Store{db: db, now: time.Now}
	if err := s.createSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}
	return s, nil
}

// Close releases the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) createSchema() error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS runs (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			created_at TEXT NOT NULL,
			mode TEXT NOT NULL,
			source TEXT NOT NULL,
			query TEXT NOT NULL,
			retrieved INTEGER NOT NULL,
			matched INTEGER NOT NULL,
			skipped INTEGER NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS papers (
			id TEXT PRIMARY KEY,
			title TEXT NOT NULL,
			abstract TEXT,
			authors TEXT,
			categories TEXT,
			submitted_date TEXT,
			url TEXT,
			source TEXT
		)`,
		`CREATE TABLE IF NOT EXISTS results (
			run_id INTEGER NOT NULL REFERENCES runs(id) ON DELETE CASCADE,
			position INTEGER NOT NULL,
			paper_id TEXT NOT NULL REFERENCES papers(id),
			score REAL,
			source_order_rank INTEGER NOT NULL,
			PRIMARY KEY (run_id, position)
		)`,
		`CREATE INDEX IF NOT EXISTS idx_results_paper_id ON results(paper_id)`,
	}
	for _, stmt := range statements {
		if _, err := s.db.Exec(stmt); err != nil {
			return fmt.Errorf("executing schema statement: %w", err)
		}
	}
	return nil
}

// Save stores r and its results in one transaction and returns the new run
// ID. Papers seen in earlier runs are updated to their latest metadata.
func (s *Store) Save(ctx context.Context, r Run) (int64, error) {
	if r.CreatedAt.IsZero() {
		r.CreatedAt = s.now()
	}
	queryJSON, err := json.Marshal(r.Query)
	if err != nil {
		return 0, fmt.Errorf("encoding query: %w", err)
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	res, err := tx.ExecContext(ctx,
		`INSERT INTO runs (created_at, mode, source, query, retrieved, matched, skipped)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		r.CreatedAt.UTC().Format(time.RFC3339Nano), r.Mode, string(r.Source), string(queryJSON),
		r.Retrieved, r.Matched, r.Skipped,
	)
	if err != nil {
		return 0, fmt.Errorf("inserting run: %w", err)
	}
	runID, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("reading run id: %w", err)
	}

	paperStmt, err := tx.PrepareContext(ctx,
		`INSERT INTO papers (id, title, abstract, authors, categories, submitted_date, url, source)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		 ON CONFLICT(id) DO UPDATE SET
			title=excluded.title, abstract=excluded.abstract, authors=excluded.authors,
			categories=excluded.categories,
			submitted_date=COALESCE(excluded.submitted_date, papers.submitted_date),
			url=excluded.url, source=excluded.source`)
	if err != nil {
		return 0, fmt.Errorf("preparing paper insert: %w", err)
	}
	defer paperStmt.Close()

	resultStmt, err := tx.PrepareContext(ctx,
		`INSERT INTO results (run_id, position, paper_id, score, source_order_rank)
		 VALUES (?, ?, ?, ?, ?)`)
	if err != nil {
		return 0, fmt.Errorf("preparing result insert: %w", err)
	}
	defer resultStmt.Close()

	for i, e := range r.Results {
		p := e.Paper
		authorsJSON, err := json.Marshal(p.Authors)
		if err != nil {
			return 0, fmt.Errorf("encoding authors of %s: %w", p.Identifier, err)
		}
		categoriesJSON, err := json.Marshal(p.Categories)
		if err != nil {
			return 0, fmt.Errorf("encoding categories of %s: %w", p.Identifier, err)
		}
		var date sql.NullString
		if p.SubmittedDate != nil {
			date = sql.NullString{String: p.SubmittedDate.UTC().Format(time.RFC3339), Valid: true}
		}
		if _, err := paperStmt.ExecContext(ctx,
			p.Identifier, p.Title, p.Abstract, string(authorsJSON), string(categoriesJSON),
			date, p.URL, string(p.Source),
		); err != nil {
			return 0, fmt.Errorf("upserting paper %s: %w", p.Identifier, err)
		}

		position := e.Position
		if position == 0 {
			position = i + 1
		}
		var score sql.NullFloat64
		if e.Score != nil {
			score = sql.NullFloat64{Float64: *e.Score, Valid: true}
		}
		if _, err := resultStmt.ExecContext(ctx, runID, position, p.Identifier, score, p.SourceOrderRank); err != nil {
			return 0, fmt.Errorf("inserting result %s: %w", p.Identifier, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("committing run: %w", err)
	}
	return runID, nil
}

// List returns the n most recent runs, newest first, without results. A
// non-positive n returns every run.
func (s *Store) List(ctx context.Context, n int) ([]Run, error) {
	if n <= 0 {
		n = -1
	}
	rows, err := s.db.QueryContext(ctx,
		`SELECT r.id, r.created_at, r.mode, r.source, r.query, r.retrieved, r.matched, r.skipped,
			(SELECT count(*) FROM results WHERE run_id = r.id)
		 FROM runs r
		 ORDER BY r.id DESC
		 LIMIT ?`, n)
	if err != nil {
		return nil, fmt.Errorf("listing runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		r, err := scanRun(rows)
		if err != nil {
			return nil, err
		}
		runs = append(runs, r)
	}
	return runs, rows.Err()
}

// Get returns one run with its ranked results.
func (s *Store) Get(ctx context.Context, id int64) (Run, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT r.id, r.created_at, r.mode, r.source, r.query, r.retrieved, r.matched, r.skipped,
			(SELECT count(*) FROM results WHERE run_id = r.id)
		 FROM runs r WHERE r.id = ?`, id)
	r, err := scanRun(row)
	if errors.Is(err, sql.ErrNoRows) {
		return Run{}, fmt.Errorf("run %d: %w", id, ErrRunNotFound)
	}
	if err != nil {
		return Run{}, err
	}

	r.Results, err = s.Results(ctx, id)
	if err != nil {
		return Run{}, err
	}
	return r, nil
}

// Results returns the ranked entries of a run in rank order.
func (s *Store) Results(ctx context.Context, runID int64) ([]Entry, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT res.position, res.score, res.source_order_rank,
			p.id, p.title, p.abstract, p.authors, p.categories, p.submitted_date, p.url, p.source
		 FROM results res
		 JOIN papers p ON p.id = res.paper_id
		 WHERE res.run_id = ?
		 ORDER BY res.position`, runID)
	if err != nil {
		return nil, fmt.Errorf("querying results: %w", err)
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var (
			e              Entry
			score          sql.NullFloat64
			abstract       sql.NullString
			authorsJSON    sql.NullString
			categoriesJSON sql.NullString
			date           sql.NullString
			url            sql.NullString
			source         sql.NullString
		)
		if err := rows.Scan(
			&e.Position, &score, &e.Paper.SourceOrderRank,
			&e.Paper.Identifier, &e.Paper.Title, &abstract, &authorsJSON, &categoriesJSON,
			&date, &url, &source,
		); err != nil {
			return nil, fmt.Errorf("scanning result: %w", err)
		}
		if score.Valid {
			v := score.Float64
			e.Score = &v
		}
		e.Paper.Abstract = abstract.String
		e.Paper.URL = url.String
		e.Paper.Source = types.SourceKind(source.String)
		e.Paper.Authors = []string{}
		e.Paper.Categories = []string{}
		if authorsJSON.Valid {
			if err := json.Unmarshal([]byte(authorsJSON.String), &e.Paper.Authors); err != nil {
				return nil, fmt.Errorf("decoding authors of %s: %w", e.Paper.Identifier, err)
			}
		}
		if categoriesJSON.Valid {
			if err := json.Unmarshal([]byte(categoriesJSON.String), &e.Paper.Categories); err != nil {
				return nil, fmt.Errorf("decoding categories of %s: %w", e.Paper.Identifier, err)
			}
		}
		if date.Valid {
			if t, err := time.Parse(time.RFC3339, date.String); err == nil {
				e.Paper.SubmittedDate = &t
			}
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

type scanner interface {
	Scan(dest ...any) error
}

func scanRun(sc scanner) (Run, error) {
	var (
		r         Run
		createdAt string
		source    string
		queryJSON string
	)
	if err := sc.Scan(&r.ID, &createdAt, &r.Mode, &source, &queryJSON,
		&r.Retrieved, &r.Matched, &r.Skipped, &r.Count); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Run{}, err
		}
		return Run{}, fmt.Errorf("scanning run: %w", err)
	}
	r.Source = types.SourceKind(source)
	if t, err := time.Parse(time.RFC3339Nano, createdAt); err == nil {
		r.CreatedAt = t
	}
	if err := json.Unmarshal([]byte(queryJSON), &r.Query); err != nil {
		return Run{}, fmt.Errorf("decoding query of run %d: %w", r.ID, err)
	}
	return r, nil
}
