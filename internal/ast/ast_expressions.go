package ast

import "github.com/funvibe/funlang/internal/token"

// Operator is a binary operator symbol.
type Operator string

const (
	OpMul Operator = "*"
	OpDiv Operator = "/"
	OpMod Operator = "%"
	OpAdd Operator = "+"
	OpSub Operator = "-"
	OpGT  Operator = ">"
	OpLT  Operator = "<"
	OpGE  Operator = ">="
	OpLE  Operator = "<="
	OpEQ  Operator = "=="
	OpNE  Operator = "!="
	OpOr  Operator = "||"
	OpAnd Operator = "&&"
)

// Operators lists every binary operator in declaration order.
var Operators = []Operator{OpMul, OpDiv, OpMod, OpAdd, OpSub, OpGT, OpLT, OpGE, OpLE, OpEQ, OpNE, OpOr, OpAnd}

// LookupOperator converts a symbol into an Operator.
func LookupOperator(symbol string) (Operator, bool) {
	for _, op := range Operators {
		if string(op) == symbol {
			return op, true
		}
	}
	return "", false
}

func (o Operator) Symbol() string { return string(o) }

// FunctionCall: name(arg, ...)
type FunctionCall struct {
	Token     token.Token // The identifier token
	Function  *Identifier
	Arguments *ArgumentList
}

func (fc *FunctionCall) Accept(v Visitor)     { v.VisitFunctionCall(fc) }
func (fc *FunctionCall) statementNode()       {}
func (fc *FunctionCall) expressionNode()      {}
func (fc *FunctionCall) TokenLiteral() string { return fc.Token.Lexeme }
func (fc *FunctionCall) GetToken() token.Token {
	if fc == nil {
		return token.Token{}
	}
	return fc.Token
}

// Args returns the argument expressions; never nil-dereferences.
func (fc *FunctionCall) Args() []Expression {
	if fc.Arguments == nil {
		return nil
	}
	return fc.Arguments.Arguments
}

// ArgumentList holds call arguments in source order.
type ArgumentList struct {
	Token     token.Token // The '(' token
	Arguments []Expression
}

func (al *ArgumentList) Accept(v Visitor)     { v.VisitArgumentList(al) }
func (al *ArgumentList) statementNode()       {}
func (al *ArgumentList) expressionNode()      {}
func (al *ArgumentList) TokenLiteral() string { return al.Token.Lexeme }
func (al *ArgumentList) GetToken() token.Token {
	if al == nil {
		return token.Token{}
	}
	return al.Token
}

// BinaryExpression: left op right
type BinaryExpression struct {
	Token    token.Token // The operator token
	Left     Expression
	Operator Operator
	Right    Expression
}

func (be *BinaryExpression) Accept(v Visitor)     { v.VisitBinaryExpression(be) }
func (be *BinaryExpression) statementNode()       {}
func (be *BinaryExpression) expressionNode()      {}
func (be *BinaryExpression) TokenLiteral() string { return be.Token.Lexeme }
func (be *BinaryExpression) GetToken() token.Token {
	if be == nil {
		return token.Token{}
	}
	return be.Token
}
