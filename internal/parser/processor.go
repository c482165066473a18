package parser

import (
	"github.com/funvibe/funlang/internal/diagnostics"
	"github.com/funvibe/funlang/internal/lexer"
	"github.com/funvibe/funlang/internal/pipeline"
	"github.com/funvibe/funlang/internal/token"
)

type ParserProcessor struct{}

func (pp *ParserProcessor) Process(ctx *pipeline.PipelineContext) *pipeline.PipelineContext {
	if ctx.TokenStream == nil {
		// This case should ideally not be hit if lexer runs first, but as a safeguard:
		err := diagnostics.NewError(diagnostics.ErrX001, token.Token{}, "parser: token stream is nil")
		ctx.Errors = append(ctx.Errors, err)
		return ctx
	}

	parser := New(ctx.TokenStream, ctx)
	file := parser.ParseFile()
	file.Name = ctx.FilePath
	ctx.AstRoot = file

	// Ensure all errors have file path set
	for _, err := range ctx.Errors {
		if err.File == "" {
			err.File = ctx.FilePath
		}
	}

	return ctx
}

// Parse runs the lexer and parser stages on source and returns the
// populated context; callers inspect ctx.Errors before using ctx.AstRoot.
func Parse(source, filePath string) *pipeline.PipelineContext {
	ctx := pipeline.NewPipelineContext(source)
	ctx.FilePath = filePath
	return pipeline.New(&lexer.LexerProcessor{}, &ParserProcessor{}).Run(ctx)
}
