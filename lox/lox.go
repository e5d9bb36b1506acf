package lox

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/mattn/go-colorable"
	"github.com/mattn/go-isatty"
	"github.com/peterh/liner"
)

// ErrStatic is returned by Run when scanning, parsing or resolving reported
// an error. Nothing was executed.
var ErrStatic = errors.New("lox: static errors reported")

// Lox is one interpreter session: the globals survive across Run calls, so
// the REPL can define a function on one line and call it on the next.
// A Lox must not be used from several goroutines at once.
type Lox struct {
	config      Config
	interpreter *Interpreter
	out         io.Writer
	errOut      io.Writer
	errColor    *color.Color
	log         *slog.Logger

	hadError        bool
	hadRuntimeError bool
}

// Option customizes a session created by New.
type Option func(*Lox)

// WithOutput sends print statements to w instead of stdout.
func WithOutput(w io.Writer) Option {
	return func(l *Lox) { l.out = w }
}

// WithErrorOutput sends diagnostics to w instead of stderr.
func WithErrorOutput(w io.Writer) Option {
	return func(l *Lox) { l.errOut = w }
}

// WithLogger installs a logger for phase tracing.
func WithLogger(logger *slog.Logger) Option {
	return func(l *Lox) { l.log = logger }
}

func New(cfg Config, opts ...Option) *Lox {
	l := &Lox{
		config: cfg,
		out:    os.Stdout,
		errOut: os.Stderr,
		log:    slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(l)
	}

	l.errColor = color.New(color.FgRed)
	l.errColor.DisableColor()
	if f, ok := l.errOut.(*os.File); ok && cfg.Color && isatty.IsTerminal(f.Fd()) {
		l.errOut = colorable.NewColorable(f)
		l.errColor.EnableColor()
	}
	l.interpreter = NewInterpreter(l.out, cfg.MaxCallDepth)
	return l
}

// Interpreter exposes the session's interpreter, mainly to define extra
// globals before running code.
func (l *Lox) Interpreter() *Interpreter {
	return l.interpreter
}

// Report implements ErrorReporter.
func (l *Lox) Report(err error) {
	var re *RuntimeError
	if errors.As(err, &re) {
		l.hadRuntimeError = true
	} else {
		l.hadError = true
	}
	_, _ = l.errColor.Fprintln(l.errOut, err.Error())
}

// HadRuntimeError reports whether any Run of this session failed at run time.
func (l *Lox) HadRuntimeError() bool {
	return l.hadRuntimeError
}

// Run executes source. It returns ErrStatic if any static error was found
// and the first *RuntimeError otherwise. Both are also reported.
func (l *Lox) Run(source string) error {
	// every run judges its own static errors
	l.hadError = false

	start := time.Now()
	tokens := NewScanner(source, l).ScanTokens()
	l.log.Debug("scan", "tokens", len(tokens), "elapsed", time.Since(start))

	start = time.Now()
	statements := NewParser(tokens, l).Parse()
	l.log.Debug("parse", "statements", len(statements), "elapsed", time.Since(start))
	if l.hadError {
		return ErrStatic
	}

	// resolve, semantic analysis
	start = time.Now()
	NewResolver(l.interpreter, l).Resolve(statements)
	l.log.Debug("resolve", "elapsed", time.Since(start))
	if l.hadError {
		return ErrStatic
	}

	start = time.Now()
	err := l.interpreter.Interpret(statements)
	l.log.Debug("interpret", "elapsed", time.Since(start), "failed", err != nil)
	if err != nil {
		l.Report(err)
	}
	return err
}

// RunFile reads and executes the script at path.
func (l *Lox) RunFile(path string) error {
	bytes, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read script: %w", err)
	}
	return l.Run(string(bytes))
}

// RunPrompt is the REPL. It reads one line at a time until EOF; errors on a
// line are reported and the session goes on.
func (l *Lox) RunPrompt() error {
	line := liner.NewLiner()
	defer line.Close()
	line.SetCtrlCAborts(true)

	history := historyPath(l.config.HistoryFile)
	if history != "" {
		if f, err := os.Open(history); err == nil {
			if _, err := line.ReadHistory(f); err != nil {
				l.log.Warn("Failed to read history", "file", history, "err", err)
			}
			f.Close()
		} else if !os.IsNotExist(err) {
			l.log.Warn("Failed to open history", "file", history, "err", err)
		}
	}

	for {
		input, err := line.Prompt(l.config.Prompt)
		if err == liner.ErrPromptAborted {
			continue
		}
		if err == io.EOF {
			break
		}
		if err != nil {
			return err
		}
		if strings.TrimSpace(input) == "" {
			continue
		}
		line.AppendHistory(input)
		_ = l.Run(input)
	}

	if history != "" {
		f, err := os.Create(history)
		if err != nil {
			l.log.Warn("Failed to save history", "file", history, "err", err)
			return nil
		}
		defer f.Close()
		if _, err := line.WriteHistory(f); err != nil {
			l.log.Warn("Failed to save history", "file", history, "err", err)
		}
	}
	return nil
}
