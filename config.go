package phasedeuce

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"regexp"
)

// Storage backend names accepted by the -store flag.
const (
	BackendCSV    = "csv"
	BackendSQLite = "sqlite"
)

// envLogLevel names the console threshold ("debug" through "none").
const envLogLevel = "PHASE_DEUCE_LOG_LEVEL"

// isoDatePattern validates an ISO 8601 date with the format YYYY-MM-DD.
// Ref: https://stackoverflow.com/questions/22061723/regex-date-validation-for-yyyy-mm-dd
var isoDatePattern = regexp.MustCompile(`^\d{4}-(0[1-9]|1[012])-(0[1-9]|[12][0-9]|3[01])$`)

var errInvalidDate = errors.New("date argument is invalid (should be YYYY-MM-DD)")

// Options is the application configuration, assembled from defaults, the
// process environment, and command-line flags, in that order (later
// sources win).
type Options struct {
	Date    string // optional fixed logfile date (ISO 8601); empty means today
	Dir     string // directory holding the daily CSV files
	Backend string // BackendCSV or BackendSQLite
	DSN     string // SQLite DSN, used when Backend is BackendSQLite
	Level   Level  // console threshold
}

func defaultOptions() Options {
	return Options{
		Dir:     ".",
		Backend: BackendCSV,
		DSN:     "file:phase-deuce.db",
		Level:   LevelInfo,
	}
}

// ParseOptions builds Options from command-line arguments (excluding the
// program name) and the environment. Flag parse failures and an invalid
// -date value return an error; the returned Options still carries the
// environment-derived console level so the caller can report the error at
// the right threshold.
func ParseOptions(args []string) (Options, error) {
	opts := defaultOptions()
	if v := os.Getenv(envLogLevel); v != "" {
		opts.Level = ParseLevel(v)
	}

	fs := flag.NewFlagSet("phase-deuce", flag.ContinueOnError)
	var date string
	fs.StringVar(&date, "d", "", "the desired logfile date in ISO 8601 format (YYYY-MM-DD)")
	fs.StringVar(&date, "date", "", "the desired logfile date in ISO 8601 format (YYYY-MM-DD)")
	fs.StringVar(&opts.Dir, "dir", opts.Dir, "directory the daily log files are written to")
	fs.StringVar(&opts.Backend, "store", opts.Backend, `storage backend: "csv" or "sqlite"`)
	fs.StringVar(&opts.DSN, "dsn", opts.DSN, "SQLite DSN used with -store sqlite")
	if err := fs.Parse(args); err != nil {
		return opts, err
	}

	if date != "" && !isoDatePattern.MatchString(date) {
		return opts, errInvalidDate
	}
	opts.Date = date

	switch opts.Backend {
	case BackendCSV, BackendSQLite:
	default:
		return opts, fmt.Errorf("unknown store backend %q", opts.Backend)
	}
	return opts, nil
}
