package pipeline

import (
	"os"
	"testing"

	"github.com/funvibe/funlang/internal/diagnostics"
	"github.com/funvibe/funlang/internal/token"
)

type recordStage struct {
	name string
	log  *[]string
	fail bool
}

func (s *recordStage) Process(ctx *PipelineContext) *PipelineContext {
	*s.log = append(*s.log, s.name)
	if s.fail {
		ctx.Errors = append(ctx.Errors, diagnostics.NewError(diagnostics.ErrP002, token.Token{}, s.name))
	}
	return ctx
}

func TestPipeline_RunsEveryStageInOrder(t *testing.T) {
	var log []string
	p := New(
		&recordStage{name: "lex", log: &log},
		&recordStage{name: "parse", log: &log, fail: true},
		&recordStage{name: "eval", log: &log},
	)
	ctx := p.Run(NewPipelineContext("source"))

	if len(log) != 3 || log[0] != "lex" || log[1] != "parse" || log[2] != "eval" {
		t.Errorf("stages ran as %v", log)
	}
	if !ctx.HasParseErrors() {
		t.Error("expected the error from the parse stage")
	}
}

func TestNewPipelineContext(t *testing.T) {
	ctx := NewPipelineContext("println(1)")
	if ctx.SourceCode != "println(1)" {
		t.Errorf("SourceCode = %q", ctx.SourceCode)
	}
	if ctx.Out != os.Stdout {
		t.Error("Out should default to stdout")
	}
	if ctx.HasParseErrors() || ctx.Errors == nil {
		t.Error("a new context has an empty, non-nil error list")
	}
}
