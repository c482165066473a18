package cli

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"strings"

	"github.com/funvibe/funlang/internal/config"
)

// Exit codes.
const (
	ExitOK       = 0
	ExitRuntime  = 1
	ExitUsage    = 2
	ExitParse    = 3
	ExitIOConfig = 4
)

// options are the parsed command line. Empty strings and -1 mean "not
// given", so that only explicit flags override fun.yaml.
type options struct {
	configPath string
	logLevel   string
	encoding   string
	maxDepth   int
	color      string
	printAST   bool
	format     bool
	version    bool
	eval       string
	path       string
}

var errHelp = errors.New("help requested")

func usage(w io.Writer, fs *flag.FlagSet) func() {
	return func() {
		fmt.Fprintf(w, "Usage: fun [flags] <file%s>\n", config.SourceFileExt)
		fmt.Fprintln(w, "       fun [flags] -e '<code>'")
		fmt.Fprintln(w, "       fun [flags] -   (read the program from stdin)")
		fmt.Fprintln(w)
		fmt.Fprintln(w, "Flags:")
		fs.PrintDefaults()
	}
}

func parseArgs(args []string, stderr io.Writer) (*options, error) {
	opts := &options{}
	fs := flag.NewFlagSet("fun", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = usage(stderr, fs)

	fs.StringVar(&opts.configPath, "config", "", "path to a config file (default: "+config.ConfigFileName+" next to the program)")
	fs.StringVar(&opts.logLevel, "log-level", "", "log level: debug, info, warn or error")
	fs.StringVar(&opts.encoding, "encoding", "", "source encoding: "+strings.Join(config.SupportedEncodings, ", "))
	fs.IntVar(&opts.maxDepth, "max-depth", -1, "maximum nested function calls, 0 for unlimited")
	fs.StringVar(&opts.color, "color", "", "color diagnostics: auto, always or never")
	fs.BoolVar(&opts.printAST, "print-ast", false, "print the parsed program instead of running it")
	fs.BoolVar(&opts.format, "fmt", false, "print the program in canonical layout instead of running it")
	fs.BoolVar(&opts.version, "version", false, "print the version and exit")
	fs.StringVar(&opts.eval, "e", "", "run code given on the command line")

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil, errHelp
		}
		return nil, err
	}
	if opts.version {
		return opts, nil
	}

	rest := fs.Args()
	switch {
	case opts.eval != "" && len(rest) > 0:
		return nil, fmt.Errorf("-e cannot be combined with a program file")
	case opts.eval != "":
	case len(rest) == 0:
		return nil, fmt.Errorf("missing program file")
	case len(rest) > 1:
		return nil, fmt.Errorf("expected one program file, got %d", len(rest))
	default:
		opts.path = rest[0]
	}
	if opts.printAST && opts.format {
		return nil, fmt.Errorf("-print-ast and -fmt are mutually exclusive")
	}
	if opts.maxDepth < -1 {
		return nil, fmt.Errorf("-max-depth must not be negative")
	}
	return opts, nil
}

// apply overlays explicit flags on cfg and validates the result.
func (o *options) apply(cfg *config.Config) error {
	if o.logLevel != "" {
		cfg.LogLevel = o.logLevel
	}
	if o.encoding != "" {
		cfg.Encoding = o.encoding
	}
	if o.maxDepth >= 0 {
		cfg.MaxCallDepth = o.maxDepth
	}
	if o.color != "" {
		cfg.Color = o.color
	}
	return cfg.Validate()
}
