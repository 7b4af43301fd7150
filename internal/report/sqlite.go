package report

import (
	"database/sql"
	"fmt"
	"os"

	// Registers the "sqlite3" driver with database/sql.
	_ "github.com/mattn/go-sqlite3"

	"github.com/rs/xid"
	"github.com/tebeka/atexit"
)

// SQLiteEventSink mirrors every event onto a SQLite table, batching
// inserts into a single transaction at Flush time. It exists purely
// behind the "a" debug toggle for post-run analysis with a SQL client
// and never gates or reorders anything the TextReporter emits.
type SQLiteEventSink struct {
	db        *sql.DB
	statement *sql.Stmt

	runID string
	seq   uint64

	pending []eventRow
	batch   int
}

type eventRow struct {
	seq  uint64
	kind string
	a    int
	b    int
}

// NewSQLiteEventSink opens (creating if necessary) a SQLite database
// at path and prepares the events table. Flush is registered with
// atexit, so it runs when the process exits through atexit.Exit; an
// exit through log.Fatalf or os.Exit runs no atexit handler, and rows
// still buffered at that point are not written.
func NewSQLiteEventSink(path string) (*SQLiteEventSink, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("opening sqlite event log: %w", err)
	}

	s := &SQLiteEventSink{
		db:    db,
		runID: xid.New().String(),
		batch: 10000,
	}

	if err := s.createTable(); err != nil {
		db.Close()
		return nil, err
	}

	stmt, err := db.Prepare(
		`INSERT INTO events (run_id, seq, kind, a, b) VALUES (?, ?, ?, ?, ?)`)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("preparing sqlite insert: %w", err)
	}
	s.statement = stmt

	atexit.Register(func() { s.Flush() })

	return s, nil
}

func (s *SQLiteEventSink) createTable() error {
	_, err := s.db.Exec(`
		CREATE TABLE IF NOT EXISTS events (
			run_id VARCHAR(40) NOT NULL,
			seq    INTEGER NOT NULL,
			kind   VARCHAR(16) NOT NULL,
			a      INTEGER,
			b      INTEGER
		);
	`)
	if err != nil {
		return fmt.Errorf("creating events table: %w", err)
	}
	return nil
}

func (s *SQLiteEventSink) push(kind string, a, b int) {
	s.seq++
	s.pending = append(s.pending, eventRow{seq: s.seq, kind: kind, a: a, b: b})
	if len(s.pending) >= s.batch {
		s.Flush()
	}
}

// Flush writes every buffered row in one transaction.
func (s *SQLiteEventSink) Flush() {
	if len(s.pending) == 0 {
		return
	}

	tx, err := s.db.Begin()
	if err != nil {
		fmt.Fprintf(os.Stderr, "sqlite event log: begin: %v\n", err)
		return
	}

	for _, row := range s.pending {
		if _, err := tx.Stmt(s.statement).Exec(s.runID, row.seq, row.kind, row.a, row.b); err != nil {
			fmt.Fprintf(os.Stderr, "sqlite event log: insert: %v\n", err)
			tx.Rollback()
			return
		}
	}

	if err := tx.Commit(); err != nil {
		fmt.Fprintf(os.Stderr, "sqlite event log: commit: %v\n", err)
	}
	s.pending = nil
}

// Close flushes any remaining rows and closes the database handle.
func (s *SQLiteEventSink) Close() error {
	s.Flush()
	return s.db.Close()
}

func (s *SQLiteEventSink) Instruction(n uint64, op byte, target int) {
	s.push("INS:"+string(op), int(n), target)
}
func (s *SQLiteEventSink) Unmap(pid, vpage int) { s.push("UNMAP", pid, vpage) }
func (s *SQLiteEventSink) Map(frame int)        { s.push("MAP", frame, 0) }
func (s *SQLiteEventSink) In()                  { s.push("IN", 0, 0) }
func (s *SQLiteEventSink) Out()                 { s.push("OUT", 0, 0) }
func (s *SQLiteEventSink) Fin()                 { s.push("FIN", 0, 0) }
func (s *SQLiteEventSink) Fout()                { s.push("FOUT", 0, 0) }
func (s *SQLiteEventSink) Zero()                { s.push("ZERO", 0, 0) }
func (s *SQLiteEventSink) SegV()                { s.push("SEGV", 0, 0) }
func (s *SQLiteEventSink) SegProt()             { s.push("SEGPROT", 0, 0) }
func (s *SQLiteEventSink) ExitProcess(pid int)  { s.push("EXIT", pid, 0) }
