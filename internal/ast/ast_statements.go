package ast

import "github.com/funvibe/funlang/internal/token"

// FunctionDecl represents a function definition.
// fun name(a, b) { ... }
type FunctionDecl struct {
	Token      token.Token // The 'fun' token
	Name       *Identifier
	Parameters *ParameterList
	Body       *Block
}

func (fd *FunctionDecl) Accept(v Visitor)     { v.VisitFunctionDecl(fd) }
func (fd *FunctionDecl) statementNode()       {}
func (fd *FunctionDecl) TokenLiteral() string { return fd.Token.Lexeme }
func (fd *FunctionDecl) GetToken() token.Token {
	if fd == nil {
		return token.Token{}
	}
	return fd.Token
}

// Arity is the number of declared parameters.
func (fd *FunctionDecl) Arity() int {
	if fd.Parameters == nil {
		return 0
	}
	return len(fd.Parameters.Parameters)
}

// ParameterList is the ordered parameter names of a FunctionDecl.
type ParameterList struct {
	Token      token.Token // The '(' token
	Parameters []*Identifier
}

func (pl *ParameterList) Accept(v Visitor)     { v.VisitParameterList(pl) }
func (pl *ParameterList) statementNode()       {}
func (pl *ParameterList) TokenLiteral() string { return pl.Token.Lexeme }
func (pl *ParameterList) GetToken() token.Token {
	if pl == nil {
		return token.Token{}
	}
	return pl.Token
}

// VariableDecl declares a variable, optionally initialized.
// var x = expr  |  var x
type VariableDecl struct {
	Token token.Token // The 'var' token
	Name  *Identifier
	Value Expression // nil when uninitialized
}

func (vd *VariableDecl) Accept(v Visitor)     { v.VisitVariableDecl(vd) }
func (vd *VariableDecl) statementNode()       {}
func (vd *VariableDecl) TokenLiteral() string { return vd.Token.Lexeme }
func (vd *VariableDecl) GetToken() token.Token {
	if vd == nil {
		return token.Token{}
	}
	return vd.Token
}

// WhileLoop: while (cond) { ... }
type WhileLoop struct {
	Token     token.Token // The 'while' token
	Condition Expression
	Body      *Block
}

func (wl *WhileLoop) Accept(v Visitor)     { v.VisitWhileLoop(wl) }
func (wl *WhileLoop) statementNode()       {}
func (wl *WhileLoop) TokenLiteral() string { return wl.Token.Lexeme }
func (wl *WhileLoop) GetToken() token.Token {
	if wl == nil {
		return token.Token{}
	}
	return wl.Token
}

// Conditional: if (cond) { ... } else { ... }
type Conditional struct {
	Token     token.Token // The 'if' token
	Condition Expression
	Then      *Block
	Else      *Block // nil without an else branch
}

func (c *Conditional) Accept(v Visitor)     { v.VisitConditional(c) }
func (c *Conditional) statementNode()       {}
func (c *Conditional) TokenLiteral() string { return c.Token.Lexeme }
func (c *Conditional) GetToken() token.Token {
	if c == nil {
		return token.Token{}
	}
	return c.Token
}

// Assignment updates an existing variable: x = expr
type Assignment struct {
	Token token.Token // The '=' token
	Name  *Identifier
	Value Expression
}

func (a *Assignment) Accept(v Visitor)     { v.VisitAssignment(a) }
func (a *Assignment) statementNode()       {}
func (a *Assignment) TokenLiteral() string { return a.Token.Lexeme }
func (a *Assignment) GetToken() token.Token {
	if a == nil {
		return token.Token{}
	}
	return a.Token
}

// ReturnStatement: return expr
type ReturnStatement struct {
	Token token.Token // The 'return' token
	Value Expression
}

func (rs *ReturnStatement) Accept(v Visitor)     { v.VisitReturnStatement(rs) }
func (rs *ReturnStatement) statementNode()       {}
func (rs *ReturnStatement) TokenLiteral() string { return rs.Token.Lexeme }
func (rs *ReturnStatement) GetToken() token.Token {
	if rs == nil {
		return token.Token{}
	}
	return rs.Token
}
