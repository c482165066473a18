package diagnostics

import (
	"fmt"

	"github.com/funvibe/funlang/internal/token"
)

type ErrorCode string

const (
	// Lexer / parser
	ErrP001 ErrorCode = "P001" // illegal character
	ErrP002 ErrorCode = "P002" // unexpected token
	ErrP003 ErrorCode = "P003" // expected token missing
	ErrP004 ErrorCode = "P004" // expression expected

	// Runtime
	ErrR001 ErrorCode = "R001"

	// Pipeline
	ErrX001 ErrorCode = "X001"
)

// DiagnosticError is a located message produced by one of the pipeline stages.
type DiagnosticError struct {
	Code    ErrorCode
	Token   token.Token
	Message string
	File    string
}

// NewError formats message with args (when given) and attaches the location of tok.
func NewError(code ErrorCode, tok token.Token, message string, args ...interface{}) *DiagnosticError {
	if len(args) > 0 {
		message = fmt.Sprintf(message, args...)
	}
	return &DiagnosticError{Code: code, Token: tok, Message: message}
}

func (e *DiagnosticError) Error() string {
	loc := ""
	if e.File != "" {
		loc = e.File + ":"
	}
	if e.Token.Line > 0 {
		loc += fmt.Sprintf("%d:%d:", e.Token.Line, e.Token.Column)
	}
	if loc != "" {
		loc += " "
	}
	return fmt.Sprintf("%s[%s] %s", loc, e.Code, e.Message)
}

// IsParseError reports whether the diagnostic came from the lexer or parser.
func (e *DiagnosticError) IsParseError() bool {
	return len(e.Code) > 0 && e.Code[0] == 'P'
}
