// Command gyb parses the invocation of a GYB template run and prints it as a
// JSON object for the template engine:
//
//	gyb --template <path> --output <path> --replacements <json>
//
// Settings are read from the file named by GYB_CONFIG, if set.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/afero"

	"github.com/andrewkroh/go-gyb/internal/config"
	"github.com/andrewkroh/go-gyb/internal/logctx"
	"github.com/andrewkroh/go-gyb/invocation"
)

func main() {
	os.Exit(run(context.Background(), os.Args[1:], os.Stdout, os.Stderr, os.Getenv))
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer, getenv func(string) string) int {
	cfg, err := config.Resolve(afero.NewOsFs(), getenv)
	if err != nil {
		fmt.Fprintf(stderr, "error: %v\n", err)
		return 1
	}
	// Resolve validated the config, so these cannot fail.
	level, _ := cfg.LogLevel()
	policy, _ := cfg.Policy()

	ctx = logctx.WithLogger(ctx, logctx.New(stderr, level))
	log := logctx.FromContext(ctx)

	code := 0
	a := invocation.MustParse(args,
		invocation.WithProgram("gyb"),
		invocation.WithReplacementsPolicy(policy),
		invocation.WithOutput(stdout, stderr),
		invocation.WithExit(func(c int) { code = c }),
	)
	if a == nil {
		return code
	}
	log.Debug("parsed invocation",
		"template", a.Template,
		"output", a.Output,
		"replacements_bytes", len(a.Replacements),
		"policy", policy)

	if err := json.NewEncoder(stdout).Encode(a); err != nil {
		fmt.Fprintf(stderr, "error: writing invocation: %v\n", err)
		return 1
	}
	return 0
}
