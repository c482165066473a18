package lexer

import (
	"github.com/funvibe/funlang/internal/diagnostics"
	"github.com/funvibe/funlang/internal/pipeline"
	"github.com/funvibe/funlang/internal/token"
)

type LexerProcessor struct{}

// Process reports illegal characters up front and hands a fresh stream to
// the parser.
func (lp *LexerProcessor) Process(ctx *pipeline.PipelineContext) *pipeline.PipelineContext {
	for _, tok := range Tokenize(ctx.SourceCode) {
		if tok.Type == token.ILLEGAL {
			err := diagnostics.NewError(diagnostics.ErrP001, tok, "illegal token %q", tok.Lexeme)
			err.File = ctx.FilePath
			ctx.Errors = append(ctx.Errors, err)
		}
	}
	ctx.TokenStream = NewTokenStream(New(ctx.SourceCode))
	return ctx
}
