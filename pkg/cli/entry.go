// Package cli implements the fun command.
package cli

import (
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/funvibe/funlang/internal/config"
	"github.com/funvibe/funlang/internal/evaluator"
	"github.com/funvibe/funlang/internal/lexer"
	"github.com/funvibe/funlang/internal/logger"
	"github.com/funvibe/funlang/internal/parser"
	"github.com/funvibe/funlang/internal/pipeline"
	"github.com/funvibe/funlang/internal/prettyprinter"
	"github.com/funvibe/funlang/internal/utils"
)

// Run executes the fun command with args (without the program name) and
// returns the process exit code.
func Run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	opts, err := parseArgs(args, stderr)
	if errors.Is(err, errHelp) {
		return ExitOK
	}
	if err != nil {
		fmt.Fprintf(stderr, "fun: %v\n", err)
		fmt.Fprintln(stderr, "Run 'fun -h' for usage.")
		return ExitUsage
	}
	if opts.version {
		fmt.Fprintf(stdout, "fun %s\n", config.Version)
		return ExitOK
	}

	cfg, err := loadConfig(opts)
	if err != nil {
		fmt.Fprintf(stderr, "fun: %v\n", err)
		return ExitIOConfig
	}
	if err := opts.apply(cfg); err != nil {
		fmt.Fprintf(stderr, "fun: %v\n", err)
		return ExitUsage
	}

	log, err := logger.New(stderr, cfg.LogLevel)
	if err != nil {
		fmt.Fprintf(stderr, "fun: %v\n", err)
		return ExitUsage
	}
	if cfg.Path != "" {
		log.Debug("config loaded", "path", cfg.Path)
	}
	rep := newReporter(stderr, cfg.Color)

	source, filePath, err := readProgram(opts, stdin, cfg.Encoding)
	if err != nil {
		rep.line("fun: %v", err)
		return ExitIOConfig
	}
	log.Debug("program loaded", "program", utils.ProgramName(filePath), "bytes", len(source))
	if opts.path != "" && opts.path != "-" && !config.HasSourceExt(filePath) {
		log.Warn("program file has an unexpected extension", "path", filePath, "want", config.SourceFileExt)
	}

	return runPipeline(source, filePath, opts, cfg, log, stdout, rep)
}

func loadConfig(opts *options) (*config.Config, error) {
	sourcePath := opts.path
	if sourcePath == "-" {
		sourcePath = ""
	}
	path := utils.ConfigPathFor(opts.configPath, sourcePath)
	if path == "" {
		return config.Default(), nil
	}
	return config.Load(path)
}

// readProgram returns the decoded source and the name used in diagnostics.
func readProgram(opts *options, stdin io.Reader, encoding string) (string, string, error) {
	switch {
	case opts.eval != "":
		return opts.eval, "<eval>", nil
	case opts.path == "-":
		data, err := io.ReadAll(stdin)
		if err != nil {
			return "", "", fmt.Errorf("reading stdin: %w", err)
		}
		src, err := utils.DecodeSource(data, encoding)
		if err != nil {
			return "", "", fmt.Errorf("<stdin>: %w", err)
		}
		return src, "<stdin>", nil
	default:
		src, err := utils.ReadSource(opts.path, encoding)
		if err != nil {
			return "", "", err
		}
		return src, opts.path, nil
	}
}

// printProcessor replaces evaluation with printing the parsed program.
type printProcessor struct {
	out  io.Writer
	opts *options
}

func (pp *printProcessor) Process(ctx *pipeline.PipelineContext) *pipeline.PipelineContext {
	if ctx.AstRoot == nil || len(ctx.Errors) > 0 {
		return ctx
	}
	var text string
	if pp.opts.printAST {
		text = prettyprinter.Tree(ctx.AstRoot)
	} else {
		text = prettyprinter.Format(ctx.AstRoot)
	}
	if _, err := io.WriteString(pp.out, text); err != nil {
		ctx.RuntimeError = err
	}
	return ctx
}

func runPipeline(source, filePath string, opts *options, cfg *config.Config, log *slog.Logger, stdout io.Writer, rep *reporter) int {
	// 1. Create the initial pipeline context
	initialContext := pipeline.NewPipelineContext(source)
	initialContext.FilePath = filePath
	initialContext.Out = stdout
	initialContext.Logger = log
	initialContext.MaxCallDepth = cfg.MaxCallDepth

	// 2. Pick the last stage
	var last pipeline.Processor = &evaluator.EvaluatorProcessor{}
	if opts.printAST || opts.format {
		last = &printProcessor{out: stdout, opts: opts}
	}

	// 3. Run the pipeline
	finalContext := pipeline.New(
		&lexer.LexerProcessor{},
		&parser.ParserProcessor{},
		last,
	).Run(initialContext)

	// 4. Report
	if len(finalContext.Errors) > 0 {
		rep.header("The code will not be interpreted since parsing errors were met.")
		for _, err := range finalContext.Errors {
			rep.line("- %s", err.Error())
		}
		return ExitParse
	}
	if err := finalContext.RuntimeError; err != nil {
		rep.header("Exception during the interpretation:")
		var rtErr *evaluator.RuntimeError
		if errors.As(err, &rtErr) {
			if rtErr.Line > 0 {
				rep.line("- %s:%d:%d: %s", filePath, rtErr.Line, rtErr.Column, rtErr.Message)
			} else {
				rep.line("- %s: %s", filePath, rtErr.Message)
			}
			if trace := rtErr.Trace(); trace != "" {
				rep.line("%s", trace)
			}
		} else {
			rep.line("- %s", err.Error())
		}
		return ExitRuntime
	}
	return ExitOK
}

