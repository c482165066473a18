package ast

import (
	"github.com/funvibe/funlang/internal/token"
)

// Node is the base interface for all AST nodes.
type Node interface {
	TokenLiteral() string
	Accept(v Visitor)
	// GetToken returns the token the node starts at; used for error locations.
	GetToken() token.Token
}

// Statement is a Node that may appear directly in a Block.
type Statement interface {
	Node
	statementNode()
}

// Expression is a Node that produces an integer. Every expression is also
// a valid statement.
type Expression interface {
	Statement
	expressionNode()
}

// File is the root node of every AST our parser produces.
type File struct {
	Token token.Token
	Name  string // Source file path, empty for inline sources
	Block *Block
}

func (f *File) Accept(v Visitor) { v.VisitFile(f) }
func (f *File) TokenLiteral() string {
	if f.Block != nil && len(f.Block.Statements) > 0 {
		return f.Block.Statements[0].TokenLiteral()
	}
	return ""
}
func (f *File) GetToken() token.Token {
	if f == nil {
		return token.Token{}
	}
	return f.Token
}

// Block is an ordered statement list. Evaluating it opens a scope.
type Block struct {
	Token      token.Token // '{' for braced blocks, the first token for the file block
	Statements []Statement
}

func (b *Block) Accept(v Visitor)     { v.VisitBlock(b) }
func (b *Block) statementNode()       {}
func (b *Block) TokenLiteral() string { return b.Token.Lexeme }
func (b *Block) GetToken() token.Token {
	if b == nil {
		return token.Token{}
	}
	return b.Token
}

// Identifier names a variable, a function or a parameter. Two identifiers
// with the same Value denote the same binding target.
type Identifier struct {
	Token token.Token
	Value string
}

func (i *Identifier) Accept(v Visitor)     { v.VisitIdentifier(i) }
func (i *Identifier) statementNode()       {}
func (i *Identifier) expressionNode()      {}
func (i *Identifier) TokenLiteral() string { return i.Token.Lexeme }
func (i *Identifier) GetToken() token.Token {
	if i == nil {
		return token.Token{}
	}
	return i.Token
}

func (i *Identifier) String() string { return i.Value }

// NumberLiteral keeps the literal text; range checking happens on evaluation.
type NumberLiteral struct {
	Token   token.Token
	Literal string // decimal digits, optionally preceded by '-'
}

func (nl *NumberLiteral) Accept(v Visitor)     { v.VisitNumberLiteral(nl) }
func (nl *NumberLiteral) statementNode()       {}
func (nl *NumberLiteral) expressionNode()      {}
func (nl *NumberLiteral) TokenLiteral() string { return nl.Token.Lexeme }
func (nl *NumberLiteral) GetToken() token.Token {
	if nl == nil {
		return token.Token{}
	}
	return nl.Token
}
