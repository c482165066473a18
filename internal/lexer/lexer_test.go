package lexer

import (
	"testing"

	"github.com/funvibe/funlang/internal/pipeline"
	"github.com/funvibe/funlang/internal/token"
)

func TestNextToken(t *testing.T) {
	input := `fun add(a, b) {
    return a + b
}
var x = add(1, 20);
while (x >= 0 && x != 5 || x <= 3) { x = x - 1 }
if (x == 0) {} else {}
// comment line
println(x * 2 / 3 % 4 < 5 > 6)
`

	tests := []struct {
		expectedType   token.TokenType
		expectedLexeme string
	}{
		{token.FUN, "fun"},
		{token.IDENT, "add"},
		{token.LPAREN, "("},
		{token.IDENT, "a"},
		{token.COMMA, ","},
		{token.IDENT, "b"},
		{token.RPAREN, ")"},
		{token.LBRACE, "{"},
		{token.RETURN, "return"},
		{token.IDENT, "a"},
		{token.PLUS, "+"},
		{token.IDENT, "b"},
		{token.RBRACE, "}"},
		{token.VAR, "var"},
		{token.IDENT, "x"},
		{token.ASSIGN, "="},
		{token.IDENT, "add"},
		{token.LPAREN, "("},
		{token.NUMBER, "1"},
		{token.COMMA, ","},
		{token.NUMBER, "20"},
		{token.RPAREN, ")"},
		{token.SEMICOLON, ";"},
		{token.WHILE, "while"},
		{token.LPAREN, "("},
		{token.IDENT, "x"},
		{token.GTE, ">="},
		{token.NUMBER, "0"},
		{token.AND, "&&"},
		{token.IDENT, "x"},
		{token.NOT_EQ, "!="},
		{token.NUMBER, "5"},
		{token.OR, "||"},
		{token.IDENT, "x"},
		{token.LTE, "<="},
		{token.NUMBER, "3"},
		{token.RPAREN, ")"},
		{token.LBRACE, "{"},
		{token.IDENT, "x"},
		{token.ASSIGN, "="},
		{token.IDENT, "x"},
		{token.MINUS, "-"},
		{token.NUMBER, "1"},
		{token.RBRACE, "}"},
		{token.IF, "if"},
		{token.LPAREN, "("},
		{token.IDENT, "x"},
		{token.EQ, "=="},
		{token.NUMBER, "0"},
		{token.RPAREN, ")"},
		{token.LBRACE, "{"},
		{token.RBRACE, "}"},
		{token.ELSE, "else"},
		{token.LBRACE, "{"},
		{token.RBRACE, "}"},
		{token.IDENT, "println"},
		{token.LPAREN, "("},
		{token.IDENT, "x"},
		{token.ASTERISK, "*"},
		{token.NUMBER, "2"},
		{token.SLASH, "/"},
		{token.NUMBER, "3"},
		{token.PERCENT, "%"},
		{token.NUMBER, "4"},
		{token.LT, "<"},
		{token.NUMBER, "5"},
		{token.GT, ">"},
		{token.NUMBER, "6"},
		{token.RPAREN, ")"},
		{token.EOF, ""},
	}

	l := New(input)

	for i, tt := range tests {
		tok := l.NextToken()

		if tok.Type != tt.expectedType {
			t.Fatalf("tests[%d] - tokentype wrong. expected=%q, got=%q (%q)",
				i, tt.expectedType, tok.Type, tok.Lexeme)
		}
		if tok.Lexeme != tt.expectedLexeme {
			t.Fatalf("tests[%d] - lexeme wrong. expected=%q, got=%q",
				i, tt.expectedLexeme, tok.Lexeme)
		}
	}
}

func TestNextToken_Positions(t *testing.T) {
	input := "var x\n  x = 10 // note\n\tprintln(x)"
	want := []struct {
		lexeme       string
		line, column int
	}{
		{"var", 1, 1},
		{"x", 1, 5},
		{"x", 2, 3},
		{"=", 2, 5},
		{"10", 2, 7},
		{"println", 3, 2},
		{"(", 3, 9},
		{"x", 3, 10},
		{")", 3, 11},
		{"", 3, 12},
	}

	tokens := Tokenize(input)
	if len(tokens) != len(want) {
		t.Fatalf("got %d tokens, want %d: %v", len(tokens), len(want), tokens)
	}
	for i, w := range want {
		tok := tokens[i]
		if tok.Lexeme != w.lexeme || tok.Line != w.line || tok.Column != w.column {
			t.Errorf("token %d = %q at %d:%d, want %q at %d:%d",
				i, tok.Lexeme, tok.Line, tok.Column, w.lexeme, w.line, w.column)
		}
	}
}

func TestNextToken_Illegal(t *testing.T) {
	tests := []struct {
		input  string
		lexeme string
	}{
		{"@", "@"},
		{"!", "!"},
		{"&", "&"},
		{"|", "|"},
		{"12abc", "12abc"},
		{"\"str\"", "\""},
	}

	for _, tt := range tests {
		tok := New(tt.input).NextToken()
		if tok.Type != token.ILLEGAL || tok.Lexeme != tt.lexeme {
			t.Errorf("input %q: got %s %q, want ILLEGAL %q", tt.input, tok.Type, tok.Lexeme, tt.lexeme)
		}
	}
}

func TestNextToken_UnicodeIdentifiers(t *testing.T) {
	tokens := Tokenize("var größe_1 = 2")
	if tokens[1].Type != token.IDENT || tokens[1].Literal != "größe_1" {
		t.Errorf("got %s %q", tokens[1].Type, tokens[1].Literal)
	}
	if tokens[2].Column != 13 {
		t.Errorf("'=' column = %d, want 13", tokens[2].Column)
	}
}

func TestNextToken_EOFRepeats(t *testing.T) {
	l := New("// only a comment")
	for i := 0; i < 3; i++ {
		if tok := l.NextToken(); tok.Type != token.EOF {
			t.Fatalf("call %d: got %s", i, tok.Type)
		}
	}
}

func TestTokenStream_NextPastEOF(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []token.TokenType
	}{
		{"expression", "a + 1", []token.TokenType{token.IDENT, token.PLUS, token.NUMBER}},
		{"call", "println(1)", []token.TokenType{token.IDENT, token.LPAREN, token.NUMBER, token.RPAREN}},
		{"empty", "", nil},
		{"comment only", "// nothing", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ts := NewTokenStream(New(tt.input))
			for i, want := range tt.want {
				if tok := ts.Next(); tok.Type != want {
					t.Fatalf("token %d = %s, want %s", i, tok.Type, want)
				}
			}
			first := ts.Next()
			if first.Type != token.EOF {
				t.Fatalf("expected EOF, got %s", first.Type)
			}
			for i := 0; i < 4; i++ {
				if tok := ts.Next(); tok != first {
					t.Errorf("call %d past end = %+v, want %+v", i, tok, first)
				}
			}
		})
	}
}

func TestNextToken_NulByte(t *testing.T) {
	tokens := Tokenize("println(1)\x00println(2)")
	var types []token.TokenType
	for _, tok := range tokens {
		types = append(types, tok.Type)
	}
	want := []token.TokenType{
		token.IDENT, token.LPAREN, token.NUMBER, token.RPAREN,
		token.ILLEGAL,
		token.IDENT, token.LPAREN, token.NUMBER, token.RPAREN,
		token.EOF,
	}
	if len(types) != len(want) {
		t.Fatalf("tokens = %v, want %v", types, want)
	}
	for i := range want {
		if types[i] != want[i] {
			t.Fatalf("tokens = %v, want %v", types, want)
		}
	}
	if tokens[4].Column != 11 {
		t.Errorf("NUL column = %d, want 11", tokens[4].Column)
	}

	// Inside a comment the byte is just comment text.
	tokens = Tokenize("// a\x00b\nx")
	if len(tokens) != 2 || tokens[0].Type != token.IDENT || tokens[0].Line != 2 {
		t.Errorf("comment with NUL: %v", tokens)
	}

	ctx := pipeline.NewPipelineContext("println(1)\x00println(2)")
	ctx = (&LexerProcessor{}).Process(ctx)
	if len(ctx.Errors) != 1 || ctx.Errors[0].Message != `illegal token "\x00"` {
		t.Errorf("errors = %v", ctx.Errors)
	}
}

func TestLexerProcessor(t *testing.T) {
	ctx := pipeline.NewPipelineContext("var a = 1 @ 2 # 3")
	ctx.FilePath = "p.fun"
	ctx = (&LexerProcessor{}).Process(ctx)

	if len(ctx.Errors) != 2 {
		t.Fatalf("expected 2 errors, got %d: %v", len(ctx.Errors), ctx.Errors)
	}
	if got := ctx.Errors[0].Error(); got != `p.fun:1:11: [P001] illegal token "@"` {
		t.Errorf("first error = %q", got)
	}
	if ctx.TokenStream == nil {
		t.Fatal("token stream not set")
	}
	if tok := ctx.TokenStream.Next(); tok.Type != token.VAR {
		t.Errorf("stream starts with %s", tok.Type)
	}
}
