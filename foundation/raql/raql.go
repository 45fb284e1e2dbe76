// File: raql.go
// Title: RAQL Program Driver
// Description: High-level entry point that splits programs into statements,
//              runs the recognizer on each one and aggregates the results.
//              Optionally forwards accepted statements to a relation store.
// Author: msto63
// Version: v0.2.1
// Created: 2025-01-25
// Modified: 2026-10-17
//
// Change History:
// - 2025-01-25 v0.1.0: Initial engine implementation
// - 2026-10-14 v0.2.0: Program and file drivers for RAQL
// - 2026-10-17 v0.2.1: Parenthesis nesting limit

package raql

import (
	"context"
	"errors"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/msto63/raql/foundation/core/config"
	mdwerror "github.com/msto63/raql/foundation/core/error"
	mdwlog "github.com/msto63/raql/foundation/core/log"
	"github.com/msto63/raql/foundation/raql/executor"
	"github.com/msto63/raql/foundation/raql/parser"
	"github.com/msto63/raql/foundation/raql/registry"
	mdwstringx "github.com/msto63/raql/foundation/utils/stringx"
)

const (
	// DefaultMaxStatementLength is used when Options leaves the limit unset
	DefaultMaxStatementLength = 64 * 1024

	// DefaultMaxNesting is used when Options leaves the nesting limit unset.
	// Recognition cost grows about fourfold per parenthesis level.
	DefaultMaxNesting = 6
)

// PauseFunc is called after every statement of a program. Returning an
// error stops the run.
type PauseFunc func(ctx context.Context) error

// Options configures the engine
type Options struct {
	// Logger for driver operations (optional, defaults to default logger)
	Logger *mdwlog.Logger

	// CaseInsensitive folds upper-case keywords
	CaseInsensitive bool

	// Verbosity selects the diagnostics attached to each result
	Verbosity parser.Verbosity

	// MaxStatementLength rejects longer statements without recognizing them
	MaxStatementLength int

	// MaxNesting rejects statements with deeper parenthesis nesting
	// without recognizing them
	MaxNesting int

	// Pause halts between statements (optional)
	Pause PauseFunc

	// Dispatcher receives every accepted statement (optional)
	Dispatcher *executor.Dispatcher
}

// OptionsFromSettings maps loaded settings onto engine options
func OptionsFromSettings(settings *config.Settings) Options {
	if settings == nil {
		settings = config.Default()
	}
	return Options{
		CaseInsensitive:    settings.Parser.CaseInsensitive,
		Verbosity:          parser.Verbosity(settings.Parser.Verbosity),
		MaxStatementLength: settings.Parser.MaxStatementLength,
		MaxNesting:         settings.Parser.MaxNesting,
	}
}

// Statement is one ";"-terminated segment of a program
type Statement struct {
	Index int    `json:"index"`
	Line  int    `json:"line,omitempty"`
	Text  string `json:"text"`
}

// Result is the outcome of one statement
type Result struct {
	Index       int                  `json:"index"`
	Line        int                  `json:"line,omitempty"`
	Statement   string               `json:"statement"`
	Accepted    bool                 `json:"accepted"`
	Code        mdwerror.Code        `json:"code,omitempty"`
	Message     string               `json:"message,omitempty"`
	Diagnostics []parser.Diagnostic  `json:"diagnostics,omitempty"`
	Invocation  *executor.Invocation `json:"invocation,omitempty"`
	HandlerErr  string               `json:"handler_error,omitempty"`

	Err     error           `json:"-"`
	Outcome *parser.Outcome `json:"-"`
}

// Report aggregates the results of one program or file run
type Report struct {
	RunID    string        `json:"run_id"`
	Source   string        `json:"source,omitempty"`
	Failed   int           `json:"failed"`
	Results  []Result      `json:"results"`
	Duration time.Duration `json:"duration"`
}

// Passed returns the number of accepted statements
func (r *Report) Passed() int {
	return len(r.Results) - r.Failed
}

// OK reports whether every statement was accepted
func (r *Report) OK() bool {
	return r.Failed == 0
}

func (r *Report) add(res Result) {
	if !res.Accepted {
		r.Failed++
	}
	r.Results = append(r.Results, res)
}

// Engine drives the recognizer over statements, programs and files
type Engine struct {
	parser  *parser.Parser
	logger  *mdwlog.Logger
	options Options
}

// New creates an engine
func New(opts Options) (*Engine, error) {
	if opts.Logger == nil {
		opts.Logger = mdwlog.GetDefault()
	}
	if opts.MaxStatementLength <= 0 {
		opts.MaxStatementLength = DefaultMaxStatementLength
	}
	if opts.MaxNesting <= 0 {
		opts.MaxNesting = DefaultMaxNesting
	}

	logger := opts.Logger.WithFields(mdwlog.Fields{
		"component": "raql-engine",
		"verbosity": opts.Verbosity.String(),
	})

	p, err := parser.New(parser.Options{
		Logger:          logger,
		CaseInsensitive: opts.CaseInsensitive,
		Verbosity:       opts.Verbosity,
	})
	if err != nil {
		return nil, mdwerror.Wrap(err, "failed to initialize RAQL parser").WithOperation("raql.New")
	}

	logger.Debug("RAQL engine initialized", mdwlog.Fields{
		"caseInsensitive":    opts.CaseInsensitive,
		"verbosity":          opts.Verbosity.String(),
		"maxStatementLength": opts.MaxStatementLength,
		"maxNesting":         opts.MaxNesting,
		"pause":              opts.Pause != nil,
		"dispatch":           opts.Dispatcher != nil,
	})

	return &Engine{parser: p, logger: logger, options: opts}, nil
}

// Parser returns the underlying recognizer
func (e *Engine) Parser() *parser.Parser {
	return e.parser
}

// SplitProgram cuts program after every ";". Text after the last ";" is
// ignored. A program without any ";" is an error.
func SplitProgram(program string) ([]Statement, error) {
	if !strings.Contains(program, registry.Terminator) {
		return nil, mdwerror.New("program contains no statement terminator").
			WithCode(mdwerror.CodeNoTerminator).
			WithOperation("raql.SplitProgram")
	}

	var stmts []Statement
	rest := program
	for {
		i := strings.Index(rest, registry.Terminator)
		if i < 0 {
			break
		}
		stmts = append(stmts, Statement{
			Index: len(stmts),
			Text:  strings.TrimLeft(rest[:i+1], " \n"),
		})
		rest = rest[i+1:]
	}
	return stmts, nil
}

// RecognizeStatement tokenizes and recognizes one statement
func (e *Engine) RecognizeStatement(ctx context.Context, text string) Result {
	res := Result{Statement: text}

	if err := ctx.Err(); err != nil {
		return res.fail(mdwerror.Wrap(err, "recognition cancelled").
			WithCode(mdwerror.CodeCancelled).
			WithOperation("raql.RecognizeStatement"))
	}
	if len(text) > e.options.MaxStatementLength {
		return res.fail(mdwerror.Newf("statement of %d bytes exceeds the limit of %d", len(text), e.options.MaxStatementLength).
			WithCode(mdwerror.CodeStatementTooLong).
			WithOperation("raql.RecognizeStatement"))
	}
	if depth := parser.Tokenize(text).Depth(); depth > e.options.MaxNesting {
		return res.fail(mdwerror.Newf("statement nests %d parentheses deep, the limit is %d", depth, e.options.MaxNesting).
			WithCode(mdwerror.CodeStatementTooDeep).
			WithOperation("raql.RecognizeStatement"))
	}

	out := e.parser.Parse(text)
	res.Outcome = out
	res.Accepted = out.Accepted
	res.Diagnostics = out.Diagnostics
	if !out.Accepted {
		res.Err = out.Error()
		res.Code = out.Err.Code()
		res.Message = out.Err.Error()
		return res
	}

	if e.options.Dispatcher != nil {
		dr, err := e.options.Dispatcher.Dispatch(ctx, text, out)
		if err != nil {
			res.HandlerErr = err.Error()
		} else {
			res.Invocation = dr.Invocation
			if dr.Error != nil {
				res.HandlerErr = dr.Error.Error()
			}
		}
	}
	return res
}

func (r Result) fail(err error) Result {
	r.Accepted = false
	r.Err = err
	r.Code = mdwerror.GetCode(err)
	r.Message = err.Error()

	var mdwErr *mdwerror.Error
	if errors.As(err, &mdwErr) {
		r.Message = mdwErr.Message()
	}
	return r
}

// RecognizeProgram recognizes every statement of program. A program
// without a terminator yields a report with one failure and the coded
// error; the recognizer is not invoked.
func (e *Engine) RecognizeProgram(ctx context.Context, program string) (*Report, error) {
	report, logger := e.newReport("")
	start := time.Now()

	stmts, err := SplitProgram(program)
	if err != nil {
		report.add(Result{Statement: program}.fail(err))
		report.Duration = time.Since(start)
		logger.Warn("Program has no statement terminator", mdwlog.Fields{"length": len(program)})
		return report, err
	}

	err = e.run(ctx, logger, report, stmts)
	report.Duration = time.Since(start)
	e.logRun(logger, report, err)
	return report, err
}

// RecognizeFile recognizes a file line by line. Blank lines are skipped,
// a trailing "\r" is stripped and every other line is a program. A line
// without a terminator counts as one failed statement.
func (e *Engine) RecognizeFile(ctx context.Context, path string) (*Report, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, mdwerror.Wrap(err, "cannot open input").
			WithCode(mdwerror.CodeSourceUnavailable).
			WithOperation("raql.RecognizeFile").
			WithDetail("path", path)
	}

	report, logger := e.newReport(path)
	start := time.Now()

	var runErr error
	for n, line := range mdwstringx.SplitLines(string(data)) {
		if mdwstringx.IsBlank(line) {
			continue
		}
		stmts, err := SplitProgram(line)
		if err != nil {
			report.add(Result{Index: len(report.Results), Line: n + 1, Statement: line}.fail(err))
			continue
		}
		for i := range stmts {
			stmts[i].Line = n + 1
		}
		if runErr = e.run(ctx, logger, report, stmts); runErr != nil {
			break
		}
	}

	report.Duration = time.Since(start)
	e.logRun(logger, report, runErr)
	return report, runErr
}

func (e *Engine) newReport(source string) (*Report, *mdwlog.Logger) {
	runID := uuid.NewString()
	return &Report{RunID: runID, Source: source}, e.logger.WithRunID(runID)
}

// run recognizes stmts in order, honoring cancellation and the pause hook
func (e *Engine) run(ctx context.Context, logger *mdwlog.Logger, report *Report, stmts []Statement) error {
	for _, stmt := range stmts {
		if err := ctx.Err(); err != nil {
			return mdwerror.Wrap(err, "program run cancelled").
				WithCode(mdwerror.CodeCancelled).
				WithOperation("raql.Run").
				WithRequestID(report.RunID).
				WithDetail("statement", len(report.Results))
		}

		res := e.RecognizeStatement(ctx, stmt.Text)
		res.Index = len(report.Results)
		res.Line = stmt.Line
		report.add(res)
		logStatement(logger, res)

		if e.options.Pause != nil {
			if err := e.options.Pause(ctx); err != nil {
				stop := mdwerror.Wrap(err, "program run stopped").
					WithOperation("raql.Run").
					WithRequestID(report.RunID)
				if stop.Code() == mdwerror.CodeUnknown {
					stop = stop.WithCode(mdwerror.CodeCancelled)
				}
				return stop
			}
		}
	}
	return nil
}

// logStatement writes one debug entry per statement. The token dump is
// only built when debug output is enabled.
func logStatement(logger *mdwlog.Logger, res Result) {
	if !logger.IsLevelEnabled(mdwlog.LevelDebug) {
		return
	}
	fields := mdwlog.Fields{
		"index":    res.Index,
		"accepted": res.Accepted,
	}
	if res.Line > 0 {
		fields["line"] = res.Line
	}
	if res.Code != "" {
		fields["code"] = string(res.Code)
	}
	if res.Outcome != nil {
		fields["tokens"] = res.Outcome.Tokens.Dump()
	}
	logger.Debug("Statement recognized", fields)
}

func (e *Engine) logRun(logger *mdwlog.Logger, report *Report, err error) {
	fields := mdwlog.Fields{
		"source":     report.Source,
		"statements": len(report.Results),
		"failed":     report.Failed,
		"duration":   report.Duration.String(),
	}
	if err != nil {
		fields["error"] = err.Error()
	}
	logger.Info("Program recognition completed", fields)
}
