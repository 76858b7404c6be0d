// ABOUTME: CLI entry point for mockcase
// ABOUTME: Parses flags, layers config, builds the transformer, moves text from source to sink

package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/mauromedda/mockcase/internal/config"
	pilog "github.com/mauromedda/mockcase/internal/log"
	"github.com/mauromedda/mockcase/internal/mocker"
	"github.com/mauromedda/mockcase/internal/textio"
	"github.com/mauromedda/mockcase/pkg/clipboard"
)

var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

// Exit codes.
const (
	exitOK     = 0
	exitIO     = 1
	exitConfig = 2
)

// env carries the process boundary so tests can run the CLI in-process.
type env struct {
	stdin       io.Reader
	stdout      io.Writer
	stderr      io.Writer
	clipboard   clipboard.Clipboard
	interactive func() bool
	cwd         string
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	cwd, err := os.Getwd()
	if err != nil {
		cwd = "."
	}

	code := run(ctx, os.Args[1:], env{
		stdin:       os.Stdin,
		stdout:      os.Stdout,
		stderr:      os.Stderr,
		clipboard:   clipboard.NewSystem(),
		interactive: textio.StdinIsTerminal,
		cwd:         cwd,
	})
	stop()
	os.Exit(code)
}

// run performs a full invocation and returns the process exit code.
func run(ctx context.Context, argv []string, e env) int {
	pilog.SetOutput(e.stderr)

	args, err := parseFlags(argv, e.stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return exitOK
		}
		return exitConfig
	}

	if args.version {
		fmt.Fprintf(e.stdout, "mockcase %s (%s) built %s\n", version, commit, date)
		return exitOK
	}

	switch {
	case args.verbose:
		pilog.SetLevel(pilog.LevelDebug)
	case args.quiet:
		pilog.SetLevel(pilog.LevelError)
	}

	transformer, err := buildTransformer(args, e.cwd)
	if err != nil {
		pilog.Error("%v", err)
		return exitConfig
	}
	pilog.Debug("strategy=%s", transformer.Strategy())

	src := textio.Source{
		Args:          args.input,
		FromClipboard: args.fromClipboard,
		Clipboard:     e.clipboard,
		Stdin:         e.stdin,
		Interactive:   e.interactive,
	}
	lines, err := src.Lines()
	if err != nil {
		pilog.Error("%v", err)
		return exitIO
	}

	mocked, err := transformer.MockLines(ctx, lines)
	if err != nil {
		pilog.Error("%v", err)
		return exitIO
	}

	sink := textio.Sink{
		Stdout:      e.stdout,
		ToClipboard: args.toClipboard,
		Clipboard:   e.clipboard,
	}
	if err := sink.Emit(mocked); err != nil {
		pilog.Error("%v", err)
		return exitIO
	}
	return exitOK
}

// buildTransformer layers file, environment and flag settings, then validates.
func buildTransformer(args cliArgs, cwd string) (*mocker.Transformer, error) {
	var files *config.Settings
	var err error
	if args.configPath != "" {
		files, err = config.LoadFile(args.configPath)
	} else {
		files, err = config.Load(cwd)
	}
	if err != nil {
		return nil, err
	}

	fromEnv, err := config.FromEnv()
	if err != nil {
		return nil, err
	}

	resolved, err := config.Resolve(config.Merge(files, fromEnv, args.settings()))
	if err != nil {
		return nil, err
	}
	return resolved.Transformer()
}
