package phasedeuce

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"math/rand"
	"os"
	"runtime"
	"time"

	"golang.org/x/term"
)

// Program exit codes.
const (
	ExitSuccess        = 0
	ExitGeneralFailure = 1
	ExitUsageFailure   = 2
)

// Keypresses handled by the interactive loop. Quit keys are matched
// case-insensitively; CTRL-C arrives as a raw byte because raw mode
// disables signal generation.
const (
	keySpace = ' '
	keyCtrlC = 0x03
)

// Standard log messages during the course of execution.
const (
	appStartupMsg       = "Application startup"
	appShutdownMsg      = "Application shutdown"
	logEntryMsg         = "Daily Log entry written"
	osDetectPosixMsg    = "Detected operating system: Linux/macOS"
	osDetectNonPosixMsg = "Detected operating system: Windows"
)

// webURL is the single source of truth for the project URL.
const webURL = "https://github.com/gregkrsak/phase-deuce"

var welcomeBanner = [...]string{
	"Welcome to phase-deuce",
	"Written by Greg M. Krsak (greg.krsak@gmail.com)",
	"Contribute or file bugs here: " + webURL,
	"Press SPACE to add a new log entry. Press Q or X or CTRL-C to exit.",
}

// Terminal control functions, replaceable in tests.
var (
	isTerminal = term.IsTerminal
	makeRaw    = term.MakeRaw
	restore    = term.Restore
)

// App is the interactive phase-deuce program: a console, a daily log store,
// and an identity source, driven by single keypresses.
type App struct {
	console Sink
	store   Store
	source  IdentitySource
	input   io.Reader
	inputFd int // stdin descriptor for raw-mode toggling, -1 when input is not a terminal
}

// NewApp builds the application from parsed options: a console on stdout at
// the configured level, the selected store backend, and an identity source
// seeded from the wall clock.
func NewApp(opts Options) (*App, error) {
	console := NewConsole(opts.Level, os.Stdout)
	cfg := Config{Date: opts.Date, Console: console}

	var store Store
	var err error
	switch opts.Backend {
	case BackendSQLite:
		store, err = OpenSQLiteStore(opts.DSN, cfg)
	default:
		store, err = OpenFileStore(opts.Dir, cfg)
	}
	if err != nil {
		return nil, fmt.Errorf("open %s store: %w", opts.Backend, err)
	}

	a := &App{
		console: console,
		store:   store,
		source:  NewPersonSource(rand.New(rand.NewSource(time.Now().UnixNano()))),
		input:   os.Stdin,
		inputFd: -1,
	}
	if fd := int(os.Stdin.Fd()); isTerminal(fd) {
		a.inputFd = fd
	}
	return a, nil
}

// readKey returns the next keypress. A terminal is switched to raw mode for
// the single-byte read and restored immediately after, so the console stays
// in cooked mode between keypresses.
func (a *App) readKey() (byte, error) {
	if a.inputFd >= 0 {
		state, err := makeRaw(a.inputFd)
		if err != nil {
			return 0, fmt.Errorf("raw mode: %w", err)
		}
		defer func() { _ = restore(a.inputFd, state) }()
	}
	var buf [1]byte
	if _, err := io.ReadFull(a.input, buf[:]); err != nil {
		return 0, err
	}
	return buf[0], nil
}

// Run drives the interactive session and returns the process exit code.
// SPACE appends one record to the daily log; Q, X, or CTRL-C exits, as does
// end of input. A failed append is reported but never ends the session.
func (a *App) Run() int {
	a.console.System(true, appStartupMsg)
	if runtime.GOOS == "windows" {
		a.console.Debug(osDetectNonPosixMsg)
	} else {
		a.console.Debug(osDetectPosixMsg)
	}
	for _, line := range welcomeBanner {
		a.console.Info(line)
	}

	defer a.console.System(true, appShutdownMsg)
	defer func() {
		if err := a.store.Close(); err != nil {
			a.console.Error(fmt.Sprintf("close store: %v", err))
		}
	}()

	for {
		key, err := a.readKey()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return ExitSuccess
			}
			a.console.Error(fmt.Sprintf("read key: %v", err))
			return ExitGeneralFailure
		}
		switch key {
		case keySpace:
			// Corruption warnings do not fail the write; only an
			// operational failure reports [ FAIL ] here.
			out := a.store.Append(a.source)
			a.console.System(!out.Failed(), logEntryMsg)
		case 'q', 'Q', 'x', 'X', keyCtrlC:
			return ExitSuccess
		}
	}
}

// Run builds the application from command-line arguments and drives it,
// returning the process exit code. Argument errors report a failed startup
// on stderr; the flag package has already printed its own diagnostics for
// -h and malformed flags.
func Run(args []string) int {
	opts, err := ParseOptions(args)
	if err != nil {
		if !errors.Is(err, flag.ErrHelp) {
			console := NewConsole(opts.Level, os.Stderr)
			console.Error(err.Error())
			console.System(false, appStartupMsg)
		}
		return ExitUsageFailure
	}

	app, err := NewApp(opts)
	if err != nil {
		console := NewConsole(opts.Level, os.Stderr)
		console.Error(err.Error())
		console.System(false, appStartupMsg)
		return ExitGeneralFailure
	}
	return app.Run()
}
