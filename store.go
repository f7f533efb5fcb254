package phasedeuce

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"
)

const (
	filenamePrefix = "phase-deuce-log_"
	filenameSuffix = ".csv"

	isoDateLayout = "2006-01-02"
)

// Console messages emitted by the store backends.
const (
	warnValidationMsg = "Could not validate all database row checksums in %s"
	warnCorruptionMsg = "Significant corruption in %s -- Attempting to write anyway"
	errPermissionMsg  = "You do not have permission to access %s"
)

// LogFileName returns the file name holding one day's records:
// "phase-deuce-log_" + date + ".csv" for an ISO 8601 date.
func LogFileName(date string) string {
	return filenamePrefix + date + filenameSuffix
}

// Store abstracts a daily log database: one ordered record set per calendar
// date, growing by append only.
//
// Append consumes one identity from the source, writes it as a checksummed
// row under the store's resolved date, then immediately re-validates that
// date's records; its outcome reflects both the write and the validation
// pass. Validate recomputes every stored checksum in record order and
// short-circuits on the first row that is not OK. Both report corruption as
// warnings and operational failures as errors on the configured console.
type Store interface {
	Append(src IdentitySource) Outcome
	Validate() Outcome
	Close() error
}

// Config controls store behavior. The zero value is ready for production
// use: records dated with the local calendar date at call time, timestamps
// from the wall clock, and messages on a stdout console at Info level.
type Config struct {
	Date    string           // optional fixed ISO 8601 date; empty means today at call time
	Console Sink             // destination for warnings and errors
	Now     func() time.Time // optional fixed clock (for tests)
	Today   func() string    // optional fixed date provider (for tests)
}

// withDefaults fills the unset capabilities of a Config.
func (c Config) withDefaults() Config {
	if c.Console == nil {
		c.Console = NewConsole(LevelInfo, os.Stdout)
	}
	if c.Now == nil {
		c.Now = time.Now
	}
	if c.Today == nil {
		c.Today = func() string { return time.Now().Format(isoDateLayout) }
	}
	return c
}

// logDate resolves the date one store operation applies to.
func (c Config) logDate() string {
	if c.Date != "" {
		return c.Date
	}
	return c.Today()
}

// classify maps an operational error onto the outcome taxonomy: permission
// failures are their own category, everything else is a general failure.
func classify(err error) Outcome {
	if errors.Is(err, fs.ErrPermission) {
		return OutcomeAccessDenied
	}
	return OutcomeGeneralFailure
}

// warnOutcome reports a data-integrity warning for target on the console.
// Corruption does not block appends, so these are warnings, never errors.
func warnOutcome(console Sink, out Outcome, target string) {
	switch out {
	case OutcomeChecksumMismatch:
		console.Warn(fmt.Sprintf(warnValidationMsg, target))
	case OutcomeCorruptRow:
		console.Warn(fmt.Sprintf(warnCorruptionMsg, target))
	}
}

// failOutcome classifies err, reports it as a hard error for target on the
// console, and returns the resulting outcome. The caller wraps err with the
// failing operation before handing it over.
func failOutcome(console Sink, target string, err error) Outcome {
	out := classify(err)
	if out == OutcomeAccessDenied {
		console.Error(fmt.Sprintf(errPermissionMsg, target))
		return out
	}
	console.Error(err.Error())
	return out
}
