package parser

import (
	"github.com/funvibe/funlang/internal/ast"
	"github.com/funvibe/funlang/internal/diagnostics"
	"github.com/funvibe/funlang/internal/token"
)

// ParseFile parses a whole translation unit. Diagnostics go to ctx.Errors;
// the returned tree is only meaningful when there are none.
func (p *Parser) ParseFile() *ast.File {
	file := &ast.File{Token: p.curToken}
	file.Block = &ast.Block{Token: p.curToken, Statements: []ast.Statement{}}

	for !p.curTokenIs(token.EOF) {
		if p.curTokenIs(token.SEMICOLON) {
			p.nextToken()
			continue
		}
		if p.curTokenIs(token.RBRACE) {
			p.addError(diagnostics.NewError(diagnostics.ErrP002, p.curToken, "unexpected '}'"))
			p.nextToken()
			continue
		}
		stmt := p.parseStatement()
		if stmt != nil {
			file.Block.Statements = append(file.Block.Statements, stmt)
		} else {
			p.skipToStatementBoundary()
		}
		p.nextToken()
	}
	return file
}

// parseStatement leaves curToken on the last token of the statement.
func (p *Parser) parseStatement() ast.Statement {
	switch p.curToken.Type {
	case token.FUN:
		if fn := p.parseFunctionDecl(); fn != nil {
			return fn
		}
	case token.VAR:
		if v := p.parseVariableDecl(); v != nil {
			return v
		}
	case token.WHILE:
		if wl := p.parseWhileLoop(); wl != nil {
			return wl
		}
	case token.IF:
		if c := p.parseConditional(); c != nil {
			return c
		}
	case token.RETURN:
		if rs := p.parseReturnStatement(); rs != nil {
			return rs
		}
	case token.IDENT:
		if p.peekTokenIs(token.ASSIGN) {
			if a := p.parseAssignment(); a != nil {
				return a
			}
			return nil
		}
		if expr := p.parseExpression(LOWEST); expr != nil {
			return expr
		}
	case token.ELSE:
		p.addError(diagnostics.NewError(diagnostics.ErrP002, p.curToken, "'else' without 'if'"))
	default:
		if expr := p.parseExpression(LOWEST); expr != nil {
			return expr
		}
	}
	return nil
}

// skipToStatementBoundary moves forward until the next token can start a
// statement, so one mistake does not produce a cascade of errors.
func (p *Parser) skipToStatementBoundary() {
	for {
		switch p.peekToken.Type {
		case token.EOF, token.SEMICOLON, token.RBRACE,
			token.FUN, token.VAR, token.WHILE, token.IF, token.RETURN:
			return
		}
		p.nextToken()
	}
}

// parseBracedBlock expects curToken to be '{' and stops on the matching '}'.
func (p *Parser) parseBracedBlock() *ast.Block {
	block := &ast.Block{Token: p.curToken, Statements: []ast.Statement{}}
	p.nextToken()

	for !p.curTokenIs(token.RBRACE) {
		if p.curTokenIs(token.EOF) {
			p.addError(diagnostics.NewError(
				diagnostics.ErrP003,
				p.curToken,
				"expected '}' to close block opened at %d:%d, found end of file",
				block.Token.Line, block.Token.Column,
			))
			return nil
		}
		if p.curTokenIs(token.SEMICOLON) {
			p.nextToken()
			continue
		}
		stmt := p.parseStatement()
		if stmt != nil {
			block.Statements = append(block.Statements, stmt)
		} else {
			p.skipToStatementBoundary()
		}
		p.nextToken()
	}
	return block
}

func (p *Parser) parseFunctionDecl() *ast.FunctionDecl {
	fn := &ast.FunctionDecl{Token: p.curToken}

	if !p.expectPeek(token.IDENT) {
		return nil
	}
	fn.Name = &ast.Identifier{Token: p.curToken, Value: p.curToken.Literal}

	if !p.expectPeek(token.LPAREN) {
		return nil
	}
	fn.Parameters = p.parseParameterList()
	if fn.Parameters == nil {
		return nil
	}

	if !p.expectPeek(token.LBRACE) {
		return nil
	}
	fn.Body = p.parseBracedBlock()
	if fn.Body == nil {
		return nil
	}
	return fn
}

// parseParameterList expects curToken to be '(' and stops on ')'.
func (p *Parser) parseParameterList() *ast.ParameterList {
	params := &ast.ParameterList{Token: p.curToken, Parameters: []*ast.Identifier{}}

	if p.peekTokenIs(token.RPAREN) {
		p.nextToken()
		return params
	}

	if !p.expectPeek(token.IDENT) {
		return nil
	}
	params.Parameters = append(params.Parameters, &ast.Identifier{Token: p.curToken, Value: p.curToken.Literal})

	for p.peekTokenIs(token.COMMA) {
		p.nextToken()
		if !p.expectPeek(token.IDENT) {
			return nil
		}
		params.Parameters = append(params.Parameters, &ast.Identifier{Token: p.curToken, Value: p.curToken.Literal})
	}

	if !p.expectPeek(token.RPAREN) {
		return nil
	}
	return params
}

func (p *Parser) parseVariableDecl() *ast.VariableDecl {
	decl := &ast.VariableDecl{Token: p.curToken}

	if !p.expectPeek(token.IDENT) {
		return nil
	}
	decl.Name = &ast.Identifier{Token: p.curToken, Value: p.curToken.Literal}

	if p.peekTokenIs(token.ASSIGN) {
		p.nextToken() // =
		p.nextToken()
		decl.Value = p.parseExpression(LOWEST)
		if decl.Value == nil {
			return nil
		}
	}
	return decl
}

func (p *Parser) parseWhileLoop() *ast.WhileLoop {
	loop := &ast.WhileLoop{Token: p.curToken}

	loop.Condition = p.parseParenthesizedCondition()
	if loop.Condition == nil {
		return nil
	}

	if !p.expectPeek(token.LBRACE) {
		return nil
	}
	loop.Body = p.parseBracedBlock()
	if loop.Body == nil {
		return nil
	}
	return loop
}

func (p *Parser) parseConditional() *ast.Conditional {
	cond := &ast.Conditional{Token: p.curToken}

	cond.Condition = p.parseParenthesizedCondition()
	if cond.Condition == nil {
		return nil
	}

	if !p.expectPeek(token.LBRACE) {
		return nil
	}
	cond.Then = p.parseBracedBlock()
	if cond.Then == nil {
		return nil
	}

	if p.peekTokenIs(token.ELSE) {
		p.nextToken()
		if !p.expectPeek(token.LBRACE) {
			return nil
		}
		cond.Else = p.parseBracedBlock()
		if cond.Else == nil {
			return nil
		}
	}
	return cond
}

// parseParenthesizedCondition parses '(' expression ')' after while/if.
func (p *Parser) parseParenthesizedCondition() ast.Expression {
	if !p.expectPeek(token.LPAREN) {
		return nil
	}
	p.nextToken()
	expr := p.parseExpression(LOWEST)
	if expr == nil {
		return nil
	}
	if !p.expectPeek(token.RPAREN) {
		return nil
	}
	return expr
}

func (p *Parser) parseAssignment() *ast.Assignment {
	name := &ast.Identifier{Token: p.curToken, Value: p.curToken.Literal}
	p.nextToken() // =
	assign := &ast.Assignment{Token: p.curToken, Name: name}

	p.nextToken()
	assign.Value = p.parseExpression(LOWEST)
	if assign.Value == nil {
		return nil
	}
	return assign
}

func (p *Parser) parseReturnStatement() *ast.ReturnStatement {
	rs := &ast.ReturnStatement{Token: p.curToken}

	p.nextToken()
	rs.Value = p.parseExpression(LOWEST)
	if rs.Value == nil {
		return nil
	}
	return rs
}
