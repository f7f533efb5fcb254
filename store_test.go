package phasedeuce

import (
	"bytes"
	"errors"
	"io"
	"io/fs"
	"testing"
	"time"
)

// fixedSource always yields the same identity, keeping row bytes and
// checksums predictable.
type fixedSource struct{ id Identity }

func (f fixedSource) NextIdentity() Identity { return f.id }

func janeDoe() Identity {
	return Identity{Name: "Jane Doe", Email: "jane.doe@gmail.com", Phone: "425-555-0199"}
}

// testConfig pins the date and clock and routes console output into out.
func testConfig(out io.Writer) Config {
	return Config{
		Date:    "2020-07-04",
		Console: NewConsole(LevelDebug, out),
		Now:     func() time.Time { return time.Unix(1700000000, 0) },
	}
}

func TestLogFileName(t *testing.T) {
	got := LogFileName("2020-07-04")
	if got != "phase-deuce-log_2020-07-04.csv" {
		t.Errorf("Expected phase-deuce-log_2020-07-04.csv, got %s", got)
	}
}

func TestConfigLogDate(t *testing.T) {
	// Explicit date wins over the provider
	cfg := Config{Date: "2020-07-04", Today: func() string { return "2021-01-01" }}
	if got := cfg.logDate(); got != "2020-07-04" {
		t.Errorf("Expected explicit date 2020-07-04, got %s", got)
	}

	// No explicit date falls back to the provider
	cfg = Config{Today: func() string { return "2021-01-01" }}.withDefaults()
	if got := cfg.logDate(); got != "2021-01-01" {
		t.Errorf("Expected provider date 2021-01-01, got %s", got)
	}
}

func TestConfigWithDefaults(t *testing.T) {
	cfg := Config{}.withDefaults()
	if cfg.Console == nil {
		t.Error("Expected default console")
	}
	if cfg.Now == nil || cfg.Today == nil {
		t.Error("Expected default clock and date provider")
	}
	if got := cfg.Today(); !isoDatePattern.MatchString(got) {
		t.Errorf("Default date provider returned non-ISO date %q", got)
	}
}

func TestClassify(t *testing.T) {
	if got := classify(fs.ErrPermission); got != OutcomeAccessDenied {
		t.Errorf("Expected access denied, got %v", got)
	}
	wrapped := errors.Join(errors.New("open"), fs.ErrPermission)
	if got := classify(wrapped); got != OutcomeAccessDenied {
		t.Errorf("Expected access denied for wrapped error, got %v", got)
	}
	if got := classify(errors.New("disk full")); got != OutcomeGeneralFailure {
		t.Errorf("Expected general failure, got %v", got)
	}
}

func TestWarnOutcomeMessages(t *testing.T) {
	var buf bytes.Buffer
	console := NewConsole(LevelDebug, &buf)

	warnOutcome(console, OutcomeChecksumMismatch, "phase-deuce-log_2020-07-04.csv")
	want := "[ WARN ]  Could not validate all database row checksums in phase-deuce-log_2020-07-04.csv\n"
	if buf.String() != want {
		t.Errorf("Expected %q, got %q", want, buf.String())
	}

	buf.Reset()
	warnOutcome(console, OutcomeCorruptRow, "phase-deuce-log_2020-07-04.csv")
	want = "[ WARN ]  Significant corruption in phase-deuce-log_2020-07-04.csv -- Attempting to write anyway\n"
	if buf.String() != want {
		t.Errorf("Expected %q, got %q", want, buf.String())
	}

	// OK is not a warning and must stay silent
	buf.Reset()
	warnOutcome(console, OutcomeOK, "phase-deuce-log_2020-07-04.csv")
	if buf.Len() != 0 {
		t.Errorf("Expected no output for OK, got %q", buf.String())
	}
}

func TestFailOutcomeMessages(t *testing.T) {
	var buf bytes.Buffer
	console := NewConsole(LevelDebug, &buf)

	out := failOutcome(console, "phase-deuce-log_2020-07-04.csv", fs.ErrPermission)
	if out != OutcomeAccessDenied {
		t.Errorf("Expected access denied, got %v", out)
	}
	want := "[ ERROR ]  You do not have permission to access phase-deuce-log_2020-07-04.csv\n"
	if buf.String() != want {
		t.Errorf("Expected %q, got %q", want, buf.String())
	}

	buf.Reset()
	out = failOutcome(console, "phase-deuce-log_2020-07-04.csv", errors.New("read failed: disk error"))
	if out != OutcomeGeneralFailure {
		t.Errorf("Expected general failure, got %v", out)
	}
	want = "[ ERROR ]  read failed: disk error\n"
	if buf.String() != want {
		t.Errorf("Expected %q, got %q", want, buf.String())
	}
}
