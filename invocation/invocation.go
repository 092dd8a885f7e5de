// Package invocation defines the command line contract between build scripts
// and the GYB template engine: three required options that are handed to the
// engine untouched.
package invocation

import (
	"bytes"
	"encoding/json"
	"io"
	"os"

	"github.com/alexflint/go-arg"
	"github.com/pkg/errors"
)

// ExitUsage is the status used when the command line cannot be parsed.
const ExitUsage = 2

// ErrHelp is returned by Parse when -h or --help was given.
var ErrHelp = arg.ErrHelp

// Args is the parsed command line. The values are the raw strings from the
// command line; none of them is checked or normalized.
type Args struct {
	Template     string `arg:"--template,required" help:"Path to the template file." json:"template"`
	Output       string `arg:"--output,required" help:"Path to the output file." json:"output"`
	Replacements string `arg:"--replacements,required" help:"JSON string of replacements." json:"replacements"`
}

// Description is shown at the top of the help text.
func (Args) Description() string {
	return "Generate boilerplate code."
}

// Decode parses Replacements as a JSON object.
func (a *Args) Decode() (map[string]any, error) {
	var m map[string]any
	if err := json.Unmarshal([]byte(a.Replacements), &m); err != nil {
		return nil, errors.Wrap(err, "decoding replacements")
	}
	if m == nil {
		return nil, errors.New("decoding replacements: not a JSON object")
	}
	return m, nil
}

// UsageError is returned when the command line is malformed: a required
// option is missing, an option is unknown, or a value is rejected.
type UsageError struct {
	Err   error
	Usage string // one-line usage summary
}

func (e *UsageError) Error() string { return e.Err.Error() }

func (e *UsageError) Unwrap() error { return e.Err }

// Parse parses args (without the program name) into Args.
func Parse(args []string, opts ...Option) (*Args, error) {
	a, _, err := parse(args, newOptions(opts))
	return a, err
}

// MustParse parses args and terminates the program on failure. Usage errors
// print the usage and the error to stderr and exit with ExitUsage. A help
// request prints the help to stdout and exits with 0.
//
// MustParse returns nil only when the exit function returns, which happens in
// tests that replace it with WithExit.
func MustParse(args []string, opts ...Option) *Args {
	o := newOptions(opts)
	a, p, err := parse(args, o)
	switch {
	case err == nil:
		return a
	case errors.Is(err, ErrHelp):
		p.WriteHelp(o.stdout)
		o.exit(0)
	default:
		var usageErr *UsageError
		if errors.As(err, &usageErr) {
			io.WriteString(o.stderr, usageErr.Usage)
		}
		io.WriteString(o.stderr, "error: "+err.Error()+"\n")
		o.exit(ExitUsage)
	}
	return nil
}

func parse(args []string, o *options) (*Args, *arg.Parser, error) {
	var a Args
	p, err := arg.NewParser(arg.Config{Program: o.program}, &a)
	if err != nil {
		// programming error
		return nil, nil, errors.Wrap(err, "cli config error")
	}

	usage := func() string {
		var buf bytes.Buffer
		p.WriteUsage(&buf)
		return buf.String()
	}

	if err := p.Parse(args); err != nil {
		if err == arg.ErrHelp {
			return nil, p, ErrHelp
		}
		return nil, p, &UsageError{Err: err, Usage: usage()}
	}

	if o.policy == PolicyValidate {
		if _, err := a.Decode(); err != nil {
			return nil, p, &UsageError{Err: errors.Wrap(err, "--replacements"), Usage: usage()}
		}
	}
	return &a, p, nil
}

type options struct {
	program string
	policy  Policy
	stdout  io.Writer
	stderr  io.Writer
	exit    func(int)
}

func newOptions(opts []Option) *options {
	o := &options{
		program: "gyb",
		policy:  PolicyDefer,
		stdout:  os.Stdout,
		stderr:  os.Stderr,
		exit:    os.Exit,
	}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// Option configures Parse and MustParse.
type Option func(*options)

// WithProgram sets the program name shown in usage text.
func WithProgram(name string) Option {
	return func(o *options) { o.program = name }
}

// WithReplacementsPolicy sets how the replacements value is treated.
func WithReplacementsPolicy(p Policy) Option {
	return func(o *options) { o.policy = p }
}

// WithOutput sets where MustParse writes help and usage text.
func WithOutput(stdout, stderr io.Writer) Option {
	return func(o *options) {
		o.stdout = stdout
		o.stderr = stderr
	}
}

// WithExit replaces os.Exit in MustParse.
func WithExit(exit func(int)) Option {
	return func(o *options) { o.exit = exit }
}
