// Package embed runs Fun programs from Go code.
package embed

import (
	"context"
	"io"
	"log/slog"
	"strings"

	"github.com/funvibe/funlang/internal/diagnostics"
	"github.com/funvibe/funlang/internal/evaluator"
	"github.com/funvibe/funlang/internal/lexer"
	"github.com/funvibe/funlang/internal/parser"
	"github.com/funvibe/funlang/internal/pipeline"
	"github.com/funvibe/funlang/internal/utils"
)

// RuntimeError is returned when a program fails during evaluation.
type RuntimeError = evaluator.RuntimeError

// Runtime error kinds, for use with errors.Is.
var (
	ErrFunctionRedeclared = evaluator.ErrFunctionRedeclared
	ErrVariableRedeclared = evaluator.ErrVariableRedeclared
	ErrFunctionUndefined  = evaluator.ErrFunctionUndefined
	ErrVariableUndefined  = evaluator.ErrVariableUndefined
	ErrArithmetic         = evaluator.ErrArithmetic
	ErrNumberOutOfRange   = evaluator.ErrNumberOutOfRange
	ErrUnsetVariable      = evaluator.ErrUnsetVariable
	ErrCallDepthExceeded  = evaluator.ErrCallDepthExceeded
)

// ParseError collects every diagnostic of a program that failed to parse.
type ParseError struct {
	Diagnostics []*diagnostics.DiagnosticError
}

func (e *ParseError) Error() string {
	var sb strings.Builder
	sb.WriteString("parsing errors:")
	for _, d := range e.Diagnostics {
		sb.WriteString("\n  - ")
		sb.WriteString(d.Error())
	}
	return sb.String()
}

func (e *ParseError) Unwrap() []error {
	errs := make([]error, len(e.Diagnostics))
	for i, d := range e.Diagnostics {
		errs[i] = d
	}
	return errs
}

// Outcome is what a successful run leaves behind. Value is only meaningful
// when HasValue is set, which happens for a top-level return.
type Outcome struct {
	Value    int32
	HasValue bool
	Returned bool
}

// Interpreter holds settings shared by its runs. Every run gets a fresh
// scope stack, so nothing leaks from one Eval to the next.
type Interpreter struct {
	out          io.Writer
	logger       *slog.Logger
	maxCallDepth int
	encoding     string
}

type Option func(*Interpreter)

// WithOutput sets where println writes. Defaults to io.Discard.
func WithOutput(w io.Writer) Option {
	return func(in *Interpreter) { in.out = w }
}

// WithMaxCallDepth limits nested function calls; 0 means unlimited.
func WithMaxCallDepth(n int) Option {
	return func(in *Interpreter) { in.maxCallDepth = n }
}

func WithLogger(l *slog.Logger) Option {
	return func(in *Interpreter) { in.logger = l }
}

// WithEncoding sets the source encoding LoadFile decodes from.
func WithEncoding(name string) Option {
	return func(in *Interpreter) { in.encoding = name }
}

func New(opts ...Option) *Interpreter {
	in := &Interpreter{out: io.Discard}
	for _, opt := range opts {
		opt(in)
	}
	return in
}

// Eval parses and runs code.
func (in *Interpreter) Eval(code string) (Outcome, error) {
	return in.EvalContext(context.Background(), code)
}

// EvalContext is Eval with cancellation.
func (in *Interpreter) EvalContext(ctx context.Context, code string) (Outcome, error) {
	return in.run(ctx, code, "<eval>")
}

// LoadFile reads, decodes and runs a program file.
func (in *Interpreter) LoadFile(path string) (Outcome, error) {
	code, err := utils.ReadSource(path, in.encoding)
	if err != nil {
		return Outcome{}, err
	}
	return in.run(context.Background(), code, path)
}

// Check parses code without running it.
func (in *Interpreter) Check(code string) error {
	ctx := parser.Parse(code, "<eval>")
	if len(ctx.Errors) > 0 {
		return &ParseError{Diagnostics: ctx.Errors}
	}
	return nil
}

func (in *Interpreter) run(runCtx context.Context, code, path string) (Outcome, error) {
	ctx := pipeline.NewPipelineContext(code)
	ctx.FilePath = path
	ctx.Context = runCtx
	ctx.Out = in.out
	ctx.Logger = in.logger
	ctx.MaxCallDepth = in.maxCallDepth

	p := pipeline.New(
		&lexer.LexerProcessor{},
		&parser.ParserProcessor{},
		&evaluator.EvaluatorProcessor{},
	)
	ctx = p.Run(ctx)

	if len(ctx.Errors) > 0 {
		return Outcome{}, &ParseError{Diagnostics: ctx.Errors}
	}
	if ctx.RuntimeError != nil {
		return Outcome{}, ctx.RuntimeError
	}
	return Outcome{
		Value:    ctx.Outcome.Value,
		HasValue: ctx.Outcome.HasValue,
		Returned: ctx.Outcome.Returned,
	}, nil
}
