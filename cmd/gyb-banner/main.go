// Command gyb-banner prints the "do not edit" banner for a generated file.
//
//	gyb-banner --filename BitSet [--style swift] [--go-package models]
//
// With --go-package the banner is emitted as the header of a Go source file.
package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/alexflint/go-arg"
	"github.com/pkg/errors"
	"github.com/spf13/afero"

	"github.com/andrewkroh/go-gyb/banner"
	"github.com/andrewkroh/go-gyb/internal/config"
	"github.com/andrewkroh/go-gyb/internal/logctx"
	"github.com/andrewkroh/go-gyb/invocation"
)

type args struct {
	Filename  string `arg:"--filename,required" help:"name of the generated file, without extension"`
	Style     string `arg:"--style" help:"banner preset: c, go, python, shell or swift (default from config)"`
	GoPackage string `arg:"--go-package" help:"emit a Go file header for this package"`
}

func (args) Description() string {
	return "Print the autogenerated-file banner."
}

func main() {
	os.Exit(run(context.Background(), os.Args[1:], os.Stdout, os.Stderr, os.Getenv))
}

func run(ctx context.Context, argv []string, stdout, stderr io.Writer, getenv func(string) string) int {
	var a args
	parser, err := arg.NewParser(arg.Config{Program: "gyb-banner"}, &a)
	if err != nil {
		fmt.Fprintf(stderr, "error: %v\n", err)
		return 1
	}
	if err := parser.Parse(argv); err != nil {
		if err == arg.ErrHelp {
			parser.WriteHelp(stdout)
			return 0
		}
		parser.WriteUsage(stderr)
		fmt.Fprintf(stderr, "error: %v\n", err)
		return invocation.ExitUsage
	}

	cfg, err := config.Resolve(afero.NewOsFs(), getenv)
	if err != nil {
		fmt.Fprintf(stderr, "error: %v\n", err)
		return 1
	}
	level, _ := cfg.LogLevel()
	ctx = logctx.WithLogger(ctx, logctx.New(stderr, level))

	out, err := render(ctx, a, cfg)
	if err != nil {
		fmt.Fprintf(stderr, "error: %v\n", err)
		return 1
	}
	if _, err := io.WriteString(stdout, out); err != nil {
		fmt.Fprintf(stderr, "error: %v\n", err)
		return 1
	}
	return 0
}

func render(ctx context.Context, a args, cfg *config.Config) (string, error) {
	style, err := cfg.Style()
	if err != nil {
		return "", err
	}
	if a.Style != "" {
		if style, err = banner.Lookup(a.Style); err != nil {
			return "", errors.Wrap(err, "--style")
		}
	}
	logctx.FromContext(ctx).Debug("rendering banner",
		"filename", a.Filename,
		"prefix", style.CommentPrefix,
		"extension", style.Extension)

	if a.GoPackage == "" {
		return style.Render(a.Filename), nil
	}
	src, err := banner.GoFile(a.GoPackage, a.Filename, style)
	if err != nil {
		return "", err
	}
	return string(src), nil
}
