// File: executor.go
// Title: RAQL Engine Binding
// Description: Turns an accepted statement into an Invocation (command kind,
//              target relation and source fragments) and hands it to an
//              external relation store through the Handler interface. No
//              command is executed here.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-14
//
// Change History:
// - 2025-01-25 v0.1.0: Initial executor implementation
// - 2026-10-14 v0.2.0: Rebuilt as span-based binding for RAQL statements

package executor

import (
	"context"
	"fmt"
	"sync"
	"time"

	mdwerror "github.com/msto63/raql/foundation/core/error"
	mdwlog "github.com/msto63/raql/foundation/core/log"
	"github.com/msto63/raql/foundation/raql/ast"
	"github.com/msto63/raql/foundation/raql/parser"
	"github.com/msto63/raql/foundation/raql/registry"
)

// Kind names the statement form of an invocation
type Kind string

const (
	KindOpen   Kind = Kind(registry.Open)
	KindClose  Kind = Kind(registry.Close)
	KindWrite  Kind = Kind(registry.Write)
	KindExit   Kind = Kind(registry.Exit)
	KindShow   Kind = Kind(registry.Show)
	KindCreate Kind = Kind(registry.Create)
	KindUpdate Kind = Kind(registry.Update)
	KindInsert Kind = Kind(registry.Insert)
	KindDelete Kind = Kind(registry.Delete)
	KindQuery  Kind = "QUERY"
)

// Fragment is a piece of the statement a relation store needs, such as an
// expression, an attribute list, a literal or a condition
type Fragment struct {
	Rule  ast.Rule `json:"rule"`
	Text  string   `json:"text"`
	Start int      `json:"start"`
	End   int      `json:"end"`
}

// Invocation describes one accepted statement
type Invocation struct {
	Kind      Kind       `json:"kind"`
	Relation  string     `json:"relation,omitempty"`
	Fragments []Fragment `json:"fragments,omitempty"`
	Statement string     `json:"statement"`
	RequestID string     `json:"request_id,omitempty"`
}

// Fragment returns the first fragment produced by rule
func (inv *Invocation) Fragment(rule ast.Rule) (Fragment, bool) {
	for _, f := range inv.Fragments {
		if f.Rule == rule {
			return f, true
		}
	}
	return Fragment{}, false
}

// FragmentsOf returns all fragments produced by rule
func (inv *Invocation) FragmentsOf(rule ast.Rule) []Fragment {
	var out []Fragment
	for _, f := range inv.Fragments {
		if f.Rule == rule {
			out = append(out, f)
		}
	}
	return out
}

// Handler is implemented by relation stores
type Handler interface {
	Handle(ctx context.Context, inv *Invocation) error
}

// HandlerFunc adapts a function to the Handler interface
type HandlerFunc func(ctx context.Context, inv *Invocation) error

// Handle calls f(ctx, inv)
func (f HandlerFunc) Handle(ctx context.Context, inv *Invocation) error {
	return f(ctx, inv)
}

// Options configures a Dispatcher
type Options struct {
	Logger  *mdwlog.Logger
	Handler Handler
}

// Result is the outcome of dispatching one statement
type Result struct {
	Invocation    *Invocation   `json:"invocation,omitempty"`
	Success       bool          `json:"success"`
	Error         error         `json:"-"`
	ExecutionTime time.Duration `json:"execution_time"`
}

// Dispatcher binds accepted statements and forwards them to a Handler
type Dispatcher struct {
	handler Handler
	logger  *mdwlog.Logger
}

// New creates a dispatcher
func New(opts Options) (*Dispatcher, error) {
	if opts.Handler == nil {
		return nil, mdwerror.New("handler is required").
			WithCode(mdwerror.CodeInvalidInput).
			WithOperation("executor.New")
	}
	if opts.Logger == nil {
		opts.Logger = mdwlog.GetDefault()
	}

	return &Dispatcher{
		handler: opts.Handler,
		logger:  opts.Logger.WithField("component", "raql-executor"),
	}, nil
}

// Dispatch binds statement and passes the invocation to the handler.
// statement must be the text the outcome was recognized from.
func (d *Dispatcher) Dispatch(ctx context.Context, statement string, out *parser.Outcome) (*Result, error) {
	start := time.Now()

	inv, err := Bind(statement, out)
	if err != nil {
		return nil, err
	}
	if ctx.Err() != nil {
		return nil, mdwerror.Wrap(ctx.Err(), "dispatch cancelled").
			WithCode(mdwerror.CodeCancelled).
			WithOperation("executor.Dispatch")
	}

	d.logger.Debug("Dispatching statement", mdwlog.Fields{
		"kind":      string(inv.Kind),
		"relation":  inv.Relation,
		"fragments": len(inv.Fragments),
	})

	result := &Result{Invocation: inv, Success: true}
	if err := d.handler.Handle(ctx, inv); err != nil {
		result.Success = false
		result.Error = err
		d.logger.Warn("Handler rejected statement", mdwlog.Fields{
			"kind":  string(inv.Kind),
			"error": err.Error(),
		})
	}
	result.ExecutionTime = time.Since(start)

	return result, nil
}

// Bind builds the invocation of an accepted statement
func Bind(statement string, out *parser.Outcome) (*Invocation, error) {
	if out == nil || !out.Accepted {
		return nil, mdwerror.New("cannot bind a rejected statement").
			WithCode(mdwerror.CodeInvalidInput).
			WithOperation("executor.Bind")
	}

	node := statementForm(out.Tree())
	if node == nil {
		return nil, mdwerror.New("accepted statement has no command or query span").
			WithCode(mdwerror.CodeInternal).
			WithOperation("executor.Bind")
	}

	kind, err := kindOf(node.Span.Rule)
	if err != nil {
		return nil, err
	}

	inv := &Invocation{Kind: kind, Statement: statement}
	for i, child := range node.Children {
		text := ast.SourceText(statement, out.Tokens, child.Span)
		if i == 0 && child.Span.Rule == ast.RuleRelationName {
			inv.Relation = text
			continue
		}
		inv.Fragments = append(inv.Fragments, Fragment{
			Rule:  child.Span.Rule,
			Text:  text,
			Start: child.Span.Start,
			End:   child.Span.End,
		})
	}

	return inv, nil
}

// statementForm descends from the Statement root to the concrete command
// or query node
func statementForm(n *ast.Node) *ast.Node {
	for n != nil && (n.Span.Rule == ast.RuleStatement || n.Span.Rule == ast.RuleCommand) {
		if len(n.Children) == 0 {
			return nil
		}
		n = n.Children[0]
	}
	return n
}

func kindOf(rule ast.Rule) (Kind, error) {
	if rule == ast.RuleQuery {
		return KindQuery, nil
	}
	if def, ok := registry.ForRule(rule); ok {
		return Kind(def.Keyword), nil
	}
	return "", mdwerror.Newf("no statement kind for rule %s", rule).
		WithCode(mdwerror.CodeInternal).
		WithOperation("executor.Bind")
}

// RecordingHandler collects every invocation it receives
type RecordingHandler struct {
	mutex       sync.Mutex
	invocations []*Invocation
	err         error
}

// NewRecordingHandler creates a recorder. A non-nil err is returned from
// every Handle call after recording.
func NewRecordingHandler(err error) *RecordingHandler {
	return &RecordingHandler{err: err}
}

// Handle records inv
func (h *RecordingHandler) Handle(ctx context.Context, inv *Invocation) error {
	h.mutex.Lock()
	defer h.mutex.Unlock()
	h.invocations = append(h.invocations, inv)
	return h.err
}

// Invocations returns a copy of the recorded invocations
func (h *RecordingHandler) Invocations() []*Invocation {
	h.mutex.Lock()
	defer h.mutex.Unlock()
	out := make([]*Invocation, len(h.invocations))
	copy(out, h.invocations)
	return out
}

// Reset drops all recorded invocations
func (h *RecordingHandler) Reset() {
	h.mutex.Lock()
	defer h.mutex.Unlock()
	h.invocations = nil
}

// LogHandler writes every invocation to a logger at info level
type LogHandler struct {
	logger *mdwlog.Logger
}

// NewLogHandler creates a LogHandler; nil selects the default logger
func NewLogHandler(logger *mdwlog.Logger) *LogHandler {
	if logger == nil {
		logger = mdwlog.GetDefault()
	}
	return &LogHandler{logger: logger.WithField("component", "raql-log-handler")}
}

// Handle logs inv
func (h *LogHandler) Handle(ctx context.Context, inv *Invocation) error {
	fields := mdwlog.Fields{
		"kind":      string(inv.Kind),
		"relation":  inv.Relation,
		"statement": inv.Statement,
	}
	for i, f := range inv.Fragments {
		fields[fmt.Sprintf("fragment.%d", i)] = fmt.Sprintf("%s=%s", f.Rule, f.Text)
	}
	if inv.RequestID != "" {
		fields["request_id"] = inv.RequestID
	}
	h.logger.Info("Relation store invocation", fields)
	return nil
}
