package phasedeuce

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
)

// fileStore implements Store using one CSV file per calendar day.
//
// File format (phase-deuce-log_YYYY-MM-DD.csv):
//
//	unix_time,full_name,email_address,phone_number,checksum
//
// Comma-delimited, double-quote-quoted, UTF-8, no header row, records
// terminated by the host platform's line terminator (a quoted field may
// span physical lines). A day's file is
// created by the first append and only ever grows; nothing truncates or
// rewrites it. Handles are scoped per operation: the append handle is
// closed before validation reopens the same path read-only, so the store
// never holds two open handles on a file at once.
type fileStore struct {
	dir string
	cfg Config
}

// OpenFileStore creates or opens a CSV-backed daily log store rooted at dir.
func OpenFileStore(dir string, cfg Config) (Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create directory: %w", err)
	}
	return &fileStore{dir: dir, cfg: cfg.withDefaults()}, nil
}

// Append writes one identity row to the day's file, then re-validates the
// whole file. The write appends exactly one row or nothing: the row's
// checksum sits in the last column, so an interrupted write cannot leave a
// fragment that later verifies.
func (s *fileStore) Append(src IdentitySource) Outcome {
	name := LogFileName(s.cfg.logDate())
	path := filepath.Join(s.dir, name)

	f, err := os.OpenFile(path, os.O_WRONLY|os.O_APPEND|os.O_CREATE, 0o644)
	if err != nil {
		return failOutcome(s.cfg.Console, name, fmt.Errorf("open %s: %w", name, err))
	}

	fields := EncodeRow(s.cfg.Now().Unix(), src.NextIdentity())

	w := csv.NewWriter(f)
	w.UseCRLF = runtime.GOOS == "windows"
	werr := w.Write(fields)
	w.Flush()
	if werr == nil {
		werr = w.Error()
	}
	if cerr := f.Close(); werr == nil {
		werr = cerr
	}
	if werr != nil {
		return failOutcome(s.cfg.Console, name, fmt.Errorf("write %s: %w", name, werr))
	}

	return s.validateFile(name)
}

// Validate re-checks every row of the current date's file.
func (s *fileStore) Validate() Outcome {
	return s.validateFile(LogFileName(s.cfg.logDate()))
}

// validateFile streams the named file in row order, recomputing each row's
// checksum, and short-circuits on the first row that is not OK. A file that
// does not exist yet validates vacuously: first-append-of-the-day semantics.
func (s *fileStore) validateFile(name string) Outcome {
	f, err := os.Open(filepath.Join(s.dir, name))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return OutcomeOK
		}
		return failOutcome(s.cfg.Console, name, fmt.Errorf("open %s: %w", name, err))
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1 // row width is judged by VerifyFields, not the reader

	for {
		row, err := r.Read()
		if errors.Is(err, io.EOF) {
			return OutcomeOK
		}
		if err != nil {
			return failOutcome(s.cfg.Console, name, fmt.Errorf("read %s: %w", name, err))
		}
		if out := VerifyFields(row); out != OutcomeOK {
			warnOutcome(s.cfg.Console, out, name)
			return out
		}
	}
}

// Close releases nothing: file handles are scoped to each operation.
func (s *fileStore) Close() error { return nil }
