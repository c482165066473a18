package evaluator

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/google/uuid"

	"github.com/funvibe/funlang/internal/ast"
)

// CallFrame records an active user-function call.
type CallFrame struct {
	Name   string // Function name
	File   string // Source file
	Line   int    // Call-site line
	Column int    // Call-site column
}

type Evaluator struct {
	// Context for cancellation
	Context context.Context

	// Out receives println output.
	Out io.Writer
	// Logger gets Debug records for declarations and calls. Nil discards.
	Logger *slog.Logger
	// MaxCallDepth bounds nested user-function calls. 0 means unlimited.
	MaxCallDepth int
	// CurrentFile is used in stack frames.
	CurrentFile string

	// CallStack for stack traces on errors
	CallStack []CallFrame

	scopes *Context
	log    *slog.Logger
}

func New() *Evaluator {
	return &Evaluator{
		Out: os.Stdout,
	}
}

// Scopes returns the scope stack of the current or most recent run.
func (e *Evaluator) Scopes() *Context {
	return e.scopes
}

// Run interprets a whole program with a fresh Context. The returned Result
// carries the value of a top-level return statement, if one was executed.
func (e *Evaluator) Run(node ast.Node) (Result, error) {
	runID := uuid.NewString()
	e.log = e.logger().With("run_id", runID)
	e.scopes = NewContext()
	e.CallStack = e.CallStack[:0]

	start := time.Now()
	e.log.Debug("run started", "file", e.CurrentFile)
	res, err := e.Eval(node)
	if err != nil {
		e.log.Debug("run failed", "error", err, "elapsed", time.Since(start))
		return res, err
	}
	e.log.Debug("run finished", "returned", res.Returning, "value", res.Value.String(), "elapsed", time.Since(start))
	return res, nil
}

// Eval evaluates a single node in the current Context. Errors raised below
// node without a location get the location of node.
func (e *Evaluator) Eval(node ast.Node) (Result, error) {
	if e.scopes == nil {
		e.scopes = NewContext()
	}
	if e.log == nil {
		e.log = e.logger()
	}
	if e.Context != nil {
		select {
		case <-e.Context.Done():
			return none, fmt.Errorf("execution cancelled: %w", e.Context.Err())
		default:
		}
	}

	res, err := e.evalCore(node)
	if rtErr, ok := err.(*RuntimeError); ok && rtErr.Line == 0 && node != nil {
		tok := node.GetToken()
		rtErr.Line = tok.Line
		rtErr.Column = tok.Column
		if rtErr.StackTrace == nil {
			rtErr.StackTrace = e.stackTrace()
		}
	}
	return res, err
}

func (e *Evaluator) evalCore(node ast.Node) (Result, error) {
	switch node := node.(type) {
	case *ast.File:
		if node.Block == nil {
			return none, nil
		}
		return e.Eval(node.Block)
	case *ast.Block:
		return e.evalBlock(node)
	case *ast.FunctionDecl:
		return e.evalFunctionDecl(node)
	case *ast.VariableDecl:
		return e.evalVariableDecl(node)
	case *ast.WhileLoop:
		return e.evalWhileLoop(node)
	case *ast.Conditional:
		return e.evalConditional(node)
	case *ast.Assignment:
		return e.evalAssignment(node)
	case *ast.ReturnStatement:
		return e.evalReturnStatement(node)
	case *ast.FunctionCall:
		return e.evalFunctionCall(node)
	case *ast.ArgumentList, *ast.ParameterList:
		return none, nil
	case *ast.BinaryExpression:
		return e.evalBinaryExpression(node)
	case *ast.Identifier:
		return e.evalIdentifier(node)
	case *ast.NumberLiteral:
		return e.evalNumberLiteral(node)
	}
	return none, fmt.Errorf("evaluator: unsupported node %T", node)
}
