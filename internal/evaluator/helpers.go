package evaluator

import (
	"log/slog"

	"github.com/funvibe/funlang/internal/ast"
	"github.com/funvibe/funlang/internal/logger"
)

func (e *Evaluator) logger() *slog.Logger {
	if e.Logger != nil {
		return e.Logger
	}
	return logger.Discard()
}

// PushCall adds a call frame for stack traces.
func (e *Evaluator) PushCall(name string, file string, line, column int) {
	e.CallStack = append(e.CallStack, CallFrame{
		Name:   name,
		File:   file,
		Line:   line,
		Column: column,
	})
}

// PopCall removes the top call frame
func (e *Evaluator) PopCall() {
	if len(e.CallStack) > 0 {
		e.CallStack = e.CallStack[:len(e.CallStack)-1]
	}
}

func (e *Evaluator) stackTrace() []StackFrame {
	if len(e.CallStack) == 0 {
		return []StackFrame{}
	}
	frames := make([]StackFrame, len(e.CallStack))
	for i, f := range e.CallStack {
		frames[i] = StackFrame{Name: f.Name, File: f.File, Line: f.Line, Column: f.Column}
	}
	return frames
}

// evalInt evaluates an expression whose value is consumed and therefore
// must be set.
func (e *Evaluator) evalInt(node ast.Expression) (int32, error) {
	res, err := e.Eval(node)
	if err != nil {
		return 0, err
	}
	v, ok := res.Value.Int()
	if !ok {
		name := "<expression>"
		if ident, isIdent := node.(*ast.Identifier); isIdent {
			name = ident.Value
		}
		rtErr := newRuntimeError(UnsetVariable, name, "variable %s is used before being assigned", name)
		tok := node.GetToken()
		rtErr.Line, rtErr.Column = tok.Line, tok.Column
		rtErr.StackTrace = e.stackTrace()
		return 0, rtErr
	}
	return v, nil
}
