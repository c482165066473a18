package lexer

import "github.com/funvibe/funlang/internal/token"

// TokenStream feeds lexer output to the parser. Once the lexer has produced
// EOF, every further Next returns that same EOF token.
type TokenStream struct {
	lexer *Lexer
	eof   *token.Token
}

func NewTokenStream(l *Lexer) *TokenStream {
	return &TokenStream{lexer: l}
}

// Next consumes one token.
func (ts *TokenStream) Next() token.Token {
	if ts.eof != nil {
		return *ts.eof
	}
	tok := ts.lexer.NextToken()
	if tok.Type == token.EOF {
		ts.eof = &tok
	}
	return tok
}

// Tokenize scans the whole input; the last token is always EOF.
func Tokenize(input string) []token.Token {
	l := New(input)
	var tokens []token.Token
	for {
		tok := l.NextToken()
		tokens = append(tokens, tok)
		if tok.Type == token.EOF {
			return tokens
		}
	}
}
