package pipeline

import (
	"context"
	"io"
	"log/slog"
	"os"

	"github.com/funvibe/funlang/internal/ast"
	"github.com/funvibe/funlang/internal/diagnostics"
	"github.com/funvibe/funlang/internal/token"
)

// TokenStream is the lexer output consumed by the parser.
type TokenStream interface {
	Next() token.Token
}

// Outcome is what a finished run left behind.
type Outcome struct {
	Value    int32
	HasValue bool
	Returned bool
}

// PipelineContext carries the state shared by all stages of one run.
type PipelineContext struct {
	SourceCode  string
	FilePath    string
	TokenStream TokenStream
	AstRoot     ast.Node

	// Errors holds lexer and parser diagnostics. A non-empty list keeps the
	// evaluator from running.
	Errors []*diagnostics.DiagnosticError

	// Context cancels a running evaluation. Nil means never.
	Context context.Context

	// Out receives println output. Defaults to os.Stdout.
	Out          io.Writer
	Logger       *slog.Logger
	MaxCallDepth int

	Outcome Outcome
	// RuntimeError is the error that aborted evaluation, if any.
	RuntimeError error
}

func NewPipelineContext(sourceCode string) *PipelineContext {
	return &PipelineContext{
		SourceCode: sourceCode,
		Errors:     []*diagnostics.DiagnosticError{},
		Out:        os.Stdout,
	}
}

// HasParseErrors reports whether any stage before evaluation failed.
func (c *PipelineContext) HasParseErrors() bool {
	return len(c.Errors) > 0
}
