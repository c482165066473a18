package evaluator

import (
	"errors"
	"fmt"
	"strings"
)

// ErrorKind classifies a runtime failure.
type ErrorKind int

const (
	FunctionRedeclared ErrorKind = iota + 1
	VariableRedeclared
	FunctionUndefined
	VariableUndefined
	ArithmeticError
	NumberOutOfRange
	UnsetVariable
	CallDepthExceeded
)

var (
	ErrFunctionRedeclared = errors.New("function redeclared")
	ErrVariableRedeclared = errors.New("variable redeclared")
	ErrFunctionUndefined  = errors.New("function undefined")
	ErrVariableUndefined  = errors.New("variable undefined")
	ErrArithmetic         = errors.New("arithmetic error")
	ErrNumberOutOfRange   = errors.New("number out of range")
	ErrUnsetVariable      = errors.New("unset variable")
	ErrCallDepthExceeded  = errors.New("call depth exceeded")
)

var kindNames = map[ErrorKind]string{
	FunctionRedeclared: "FunctionRedeclared",
	VariableRedeclared: "VariableRedeclared",
	FunctionUndefined:  "FunctionUndefined",
	VariableUndefined:  "VariableUndefined",
	ArithmeticError:    "ArithmeticError",
	NumberOutOfRange:   "NumberOutOfRange",
	UnsetVariable:      "UnsetVariable",
	CallDepthExceeded:  "CallDepthExceeded",
}

func (k ErrorKind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("ErrorKind(%d)", int(k))
}

func (k ErrorKind) sentinel() error {
	switch k {
	case FunctionRedeclared:
		return ErrFunctionRedeclared
	case VariableRedeclared:
		return ErrVariableRedeclared
	case FunctionUndefined:
		return ErrFunctionUndefined
	case VariableUndefined:
		return ErrVariableUndefined
	case ArithmeticError:
		return ErrArithmetic
	case NumberOutOfRange:
		return ErrNumberOutOfRange
	case UnsetVariable:
		return ErrUnsetVariable
	case CallDepthExceeded:
		return ErrCallDepthExceeded
	}
	return nil
}

// StackFrame is one active user-function call, located at its call site.
type StackFrame struct {
	Name   string
	File   string
	Line   int
	Column int
}

// RuntimeError aborts an interpretation run.
type RuntimeError struct {
	Kind    ErrorKind
	Name    string // offending identifier, if any
	Message string
	Line    int
	Column  int
	// StackTrace holds the calls active when the error was raised, outermost first.
	StackTrace []StackFrame
}

func newRuntimeError(kind ErrorKind, name string, format string, args ...interface{}) *RuntimeError {
	return &RuntimeError{Kind: kind, Name: name, Message: fmt.Sprintf(format, args...)}
}

func (e *RuntimeError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("%d:%d: %s", e.Line, e.Column, e.Message)
	}
	return e.Message
}

func (e *RuntimeError) Unwrap() error {
	return e.Kind.sentinel()
}

// Trace renders the stack trace innermost first, one frame per line.
// It is empty when the error was raised outside of any function.
func (e *RuntimeError) Trace() string {
	if len(e.StackTrace) == 0 {
		return ""
	}
	var sb strings.Builder
	sb.WriteString("Stack trace:")
	for i := len(e.StackTrace) - 1; i >= 0; i-- {
		frame := e.StackTrace[i]
		caller := "<top level>"
		if i > 0 {
			caller = e.StackTrace[i-1].Name
		}
		loc := fmt.Sprintf("%d:%d", frame.Line, frame.Column)
		if frame.File != "" {
			loc = frame.File + ":" + loc
		}
		fmt.Fprintf(&sb, "\n  at %s (%s called %s)", loc, caller, frame.Name)
	}
	return sb.String()
}
