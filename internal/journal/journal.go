// Package journal keeps an in-memory SQLite log of the answers submitted
// during one session. Nothing is written to disk; the log ends with the
// process. Uses the pure-Go modernc.org/sqlite driver to avoid CGO.
package journal

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"github.com/vovakirdan/math-city/internal/city"
	"github.com/vovakirdan/math-city/internal/engine"
	"github.com/vovakirdan/math-city/internal/mathgen"
)

// Journal is the attempt log of one session.
type Journal struct {
	db        *sql.DB
	sessionID string
}

// Entry is one recorded attempt.
type Entry struct {
	ID          int64
	SessionID   string
	Building    city.Kind
	ProblemKind mathgen.ProblemKind
	Question    string
	Answer      string
	Input       string
	Correct     bool
	Placed      bool
	X, Y        int
	CreatedAt   time.Time
}

// Open creates an empty in-memory journal with a fresh session ID.
func Open() (*Journal, error) {
	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		return nil, fmt.Errorf("journal: cannot open database: %w", err)
	}
	// Every pooled connection to :memory: is its own database, so keep one.
	db.SetMaxOpenConns(1)

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("journal: cannot connect to database: %w", err)
	}

	j := &Journal{db: db, sessionID: uuid.NewString()}
	if err := j.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("journal: migration failed: %w", err)
	}
	return j, nil
}

func (j *Journal) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS attempts (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			session_id TEXT NOT NULL,
			building TEXT NOT NULL,
			problem_kind TEXT NOT NULL,
			question TEXT NOT NULL,
			answer TEXT NOT NULL,
			input TEXT NOT NULL,
			correct INTEGER NOT NULL,
			placed INTEGER NOT NULL,
			x INTEGER NOT NULL,
			y INTEGER NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_attempts_session ON attempts(session_id);
	`
	_, err := j.db.Exec(schema)
	return err
}

// SessionID returns the identifier stamped on every entry.
func (j *Journal) SessionID() string {
	return j.sessionID
}

// Close releases the database. The log is gone afterwards.
func (j *Journal) Close() error {
	if j.db != nil {
		return j.db.Close()
	}
	return nil
}

// Record stores one attempt.
func (j *Journal) Record(a engine.Attempt) error {
	_, err := j.db.Exec(
		`INSERT INTO attempts
		 (session_id, building, problem_kind, question, answer, input, correct, placed, x, y)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		j.sessionID,
		a.Building.String(),
		string(a.ProblemKind),
		a.Question,
		a.Answer,
		a.Input,
		a.Correct,
		a.Placed,
		a.X,
		a.Y,
	)
	if err != nil {
		return fmt.Errorf("journal: cannot record attempt: %w", err)
	}
	return nil
}

var _ engine.Recorder = (*Journal)(nil)

// Recent returns up to limit entries, newest first.
func (j *Journal) Recent(limit int) ([]Entry, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := j.db.Query(
		`SELECT id, session_id, building, problem_kind, question, answer, input,
		        correct, placed, x, y, created_at
		 FROM attempts
		 ORDER BY id DESC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("journal: cannot query attempts: %w", err)
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var (
			e         Entry
			building  string
			kind      string
			createdAt any
		)
		if err := rows.Scan(&e.ID, &e.SessionID, &building, &kind, &e.Question, &e.Answer,
			&e.Input, &e.Correct, &e.Placed, &e.X, &e.Y, &createdAt); err != nil {
			return nil, fmt.Errorf("journal: cannot scan row: %w", err)
		}

		// Rows are only ever written by Record, so the name always parses.
		e.Building, _ = city.ParseKind(building)
		e.ProblemKind = mathgen.ProblemKind(kind)

		switch v := createdAt.(type) {
		case time.Time:
			e.CreatedAt = v
		case string:
			if parsed, err := time.Parse("2006-01-02 15:04:05", v); err == nil {
				e.CreatedAt = parsed
			}
		}
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("journal: row iteration error: %w", err)
	}
	return entries, nil
}

// Counts returns how many recorded answers were correct and incorrect.
func (j *Journal) Counts() (correct, incorrect int, err error) {
	err = j.db.QueryRow(
		`SELECT COALESCE(SUM(correct), 0), COALESCE(SUM(1 - correct), 0) FROM attempts`,
	).Scan(&correct, &incorrect)
	if err != nil {
		return 0, 0, fmt.Errorf("journal: cannot count attempts: %w", err)
	}
	return correct, incorrect, nil
}
