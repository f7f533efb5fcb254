package phasedeuce

import (
	"errors"
	"testing"
)

func TestParseOptions_Defaults(t *testing.T) {
	opts, err := ParseOptions(nil)
	if err != nil {
		t.Fatal(err)
	}
	if opts.Date != "" {
		t.Errorf("Expected empty date, got %q", opts.Date)
	}
	if opts.Dir != "." {
		t.Errorf("Expected dir ., got %q", opts.Dir)
	}
	if opts.Backend != BackendCSV {
		t.Errorf("Expected csv backend, got %q", opts.Backend)
	}
	if opts.DSN != "file:phase-deuce.db" {
		t.Errorf("Expected default DSN, got %q", opts.DSN)
	}
	if opts.Level != LevelInfo {
		t.Errorf("Expected info level, got %d", opts.Level)
	}
}

func TestParseOptions_DateFlags(t *testing.T) {
	opts, err := ParseOptions([]string{"-d", "2020-07-04"})
	if err != nil {
		t.Fatal(err)
	}
	if opts.Date != "2020-07-04" {
		t.Errorf("Expected 2020-07-04, got %q", opts.Date)
	}

	opts, err = ParseOptions([]string{"-date", "2021-01-31"})
	if err != nil {
		t.Fatal(err)
	}
	if opts.Date != "2021-01-31" {
		t.Errorf("Expected 2021-01-31, got %q", opts.Date)
	}
}

func TestParseOptions_InvalidDate(t *testing.T) {
	for _, bad := range []string{"2020-13-01", "07/04/2020", "2020-7-4", "20200704", "tomorrow"} {
		_, err := ParseOptions([]string{"-date", bad})
		if !errors.Is(err, errInvalidDate) {
			t.Errorf("Date %q: expected invalid date error, got %v", bad, err)
		}
	}
}

func TestParseOptions_Backend(t *testing.T) {
	opts, err := ParseOptions([]string{"-store", "sqlite", "-dsn", "file:other.db"})
	if err != nil {
		t.Fatal(err)
	}
	if opts.Backend != BackendSQLite {
		t.Errorf("Expected sqlite backend, got %q", opts.Backend)
	}
	if opts.DSN != "file:other.db" {
		t.Errorf("Expected file:other.db, got %q", opts.DSN)
	}

	if _, err := ParseOptions([]string{"-store", "mongo"}); err == nil {
		t.Error("Expected error for unknown backend")
	}
}

func TestParseOptions_EnvLevel(t *testing.T) {
	t.Setenv(envLogLevel, "debug")
	opts, err := ParseOptions(nil)
	if err != nil {
		t.Fatal(err)
	}
	if opts.Level != LevelDebug {
		t.Errorf("Expected debug level from environment, got %d", opts.Level)
	}

	t.Setenv(envLogLevel, "none")
	opts, err = ParseOptions(nil)
	if err != nil {
		t.Fatal(err)
	}
	if opts.Level != LevelNone {
		t.Errorf("Expected none level from environment, got %d", opts.Level)
	}
}

func TestParseOptions_FlagError(t *testing.T) {
	t.Setenv(envLogLevel, "error")
	opts, err := ParseOptions([]string{"-bogus"})
	if err == nil {
		t.Fatal("Expected error for unknown flag")
	}
	// The returned options still carry the environment level so the caller
	// can report the failure at the configured threshold
	if opts.Level != LevelError {
		t.Errorf("Expected error level preserved, got %d", opts.Level)
	}
}

func TestISODatePattern(t *testing.T) {
	valid := []string{"2020-07-04", "1999-12-31", "2020-01-01", "0001-01-01"}
	for _, d := range valid {
		if !isoDatePattern.MatchString(d) {
			t.Errorf("Expected %q to be valid", d)
		}
	}
	invalid := []string{"2020-13-01", "2020-00-10", "2020-07-32", "20-07-04", "2020-7-4", "2020-07-04T00:00", ""}
	for _, d := range invalid {
		if isoDatePattern.MatchString(d) {
			t.Errorf("Expected %q to be invalid", d)
		}
	}
}
