package parser

import (
	"github.com/funvibe/funlang/internal/ast"
	"github.com/funvibe/funlang/internal/diagnostics"
	"github.com/funvibe/funlang/internal/token"
)

func (p *Parser) parseExpression(precedence int) ast.Expression {
	p.depth++
	defer func() { p.depth-- }()

	if p.depth > MaxRecursionDepth {
		p.addError(diagnostics.NewError(
			diagnostics.ErrP002,
			p.curToken,
			"expression too complex: recursion depth limit exceeded",
		))
		return nil
	}

	prefix := p.prefixParseFns[p.curToken.Type]
	if prefix == nil {
		p.noPrefixParseFnError(p.curToken)
		return nil
	}
	leftExp := prefix()
	if leftExp == nil {
		return nil
	}

	for precedence < p.peekPrecedence() {
		infix := p.infixParseFns[p.peekToken.Type]
		if infix == nil {
			return leftExp
		}
		p.nextToken()
		leftExp = infix(leftExp)
		if leftExp == nil {
			return nil
		}
	}

	return leftExp
}

// parseBinaryExpression is shared by every operator; all of them are
// left-associative.
func (p *Parser) parseBinaryExpression(left ast.Expression) ast.Expression {
	op, ok := ast.LookupOperator(p.curToken.Literal)
	if !ok {
		p.addError(diagnostics.NewError(diagnostics.ErrP002, p.curToken, "unknown operator %s", describe(p.curToken)))
		return nil
	}
	expression := &ast.BinaryExpression{
		Token:    p.curToken,
		Operator: op,
		Left:     left,
	}

	precedence := p.curPrecedence()
	p.nextToken()
	expression.Right = p.parseExpression(precedence)
	if expression.Right == nil {
		return nil
	}
	return expression
}

func (p *Parser) parseIdentifierOrCall() ast.Expression {
	ident := &ast.Identifier{Token: p.curToken, Value: p.curToken.Literal}
	if !p.peekTokenIs(token.LPAREN) {
		return ident
	}

	call := &ast.FunctionCall{Token: p.curToken, Function: ident}
	p.nextToken()
	call.Arguments = p.parseArgumentList()
	if call.Arguments == nil {
		return nil
	}
	return call
}

// parseArgumentList expects curToken to be '(' and stops on ')'.
func (p *Parser) parseArgumentList() *ast.ArgumentList {
	args := &ast.ArgumentList{Token: p.curToken, Arguments: []ast.Expression{}}

	if p.peekTokenIs(token.RPAREN) {
		p.nextToken()
		return args
	}

	p.nextToken()
	arg := p.parseExpression(LOWEST)
	if arg == nil {
		return nil
	}
	args.Arguments = append(args.Arguments, arg)

	for p.peekTokenIs(token.COMMA) {
		p.nextToken()
		p.nextToken()
		arg := p.parseExpression(LOWEST)
		if arg == nil {
			return nil
		}
		args.Arguments = append(args.Arguments, arg)
	}

	if !p.expectPeek(token.RPAREN) {
		return nil
	}
	return args
}

func (p *Parser) parseNumberLiteral() ast.Expression {
	return &ast.NumberLiteral{Token: p.curToken, Literal: p.curToken.Literal}
}

// parseNegativeNumber folds '-' NUMBER into one literal so the most
// negative integer can be written directly.
func (p *Parser) parseNegativeNumber() ast.Expression {
	minus := p.curToken
	if !p.expectPeek(token.NUMBER) {
		return nil
	}
	return &ast.NumberLiteral{Token: minus, Literal: "-" + p.curToken.Literal}
}

func (p *Parser) parseGroupedExpression() ast.Expression {
	p.nextToken()
	exp := p.parseExpression(LOWEST)
	if exp == nil {
		return nil
	}
	if !p.expectPeek(token.RPAREN) {
		return nil
	}
	return exp
}
