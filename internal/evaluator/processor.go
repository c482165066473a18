package evaluator

import (
	"path/filepath"

	"github.com/funvibe/funlang/internal/pipeline"
)

type EvaluatorProcessor struct{}

func (ep *EvaluatorProcessor) Process(ctx *pipeline.PipelineContext) *pipeline.PipelineContext {
	if ctx.AstRoot == nil || len(ctx.Errors) > 0 {
		return ctx
	}

	eval := New()
	eval.Context = ctx.Context
	eval.Out = ctx.Out
	eval.Logger = ctx.Logger
	eval.MaxCallDepth = ctx.MaxCallDepth
	if ctx.FilePath != "" {
		eval.CurrentFile = filepath.Base(ctx.FilePath)
	} else {
		eval.CurrentFile = "<stdin>"
	}

	res, err := eval.Run(ctx.AstRoot)
	if err != nil {
		ctx.RuntimeError = err
		return ctx
	}
	v, ok := res.Value.Int()
	ctx.Outcome = pipeline.Outcome{Value: v, HasValue: ok, Returned: res.Returning}
	return ctx
}
