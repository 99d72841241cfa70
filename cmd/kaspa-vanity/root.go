package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/usestring/kaspa-vanity/internal/config"
	"github.com/usestring/kaspa-vanity/internal/generator"
	"github.com/usestring/kaspa-vanity/internal/logging"
	"github.com/usestring/kaspa-vanity/internal/platform"
	"github.com/usestring/kaspa-vanity/internal/search"
	"github.com/usestring/kaspa-vanity/pkg/types"
)

// Exit codes.
const (
	exitOK    = 0
	exitError = 1
	exitUsage = 2
)

// app carries everything a run depends on so tests can replace the generator.
type app struct {
	cfg        *config.Config
	goos       string
	stdout     io.Writer
	stderr     io.Writer
	newInvoker func(bin string) generator.Invoker
}

type usageError struct{ err error }

func (e *usageError) Error() string { return e.err.Error() }
func (e *usageError) Unwrap() error { return e.err }

func (a *app) newRootCmd() *cobra.Command {
	var req types.SearchRequest

	cmd := &cobra.Command{
		Use:           "kaspa-vanity",
		Short:         "Kaspa Address Generator with Prefix/Suffix Search",
		Long:          "Runs kaspaper until it writes a paper wallet whose address matches the requested prefix and suffix, then saves that wallet.",
		Args: func(cmd *cobra.Command, args []string) error {
			if err := cobra.NoArgs(cmd, args); err != nil {
				return &usageError{err: err}
			}
			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.search(cmd.Context(), req)
		},
	}
	cmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return &usageError{err: err}
	})

	flags := cmd.Flags()
	flags.StringVarP(&req.Prefix, "prefix", "p", "", "Prefix to match after 'kaspa:q'")
	flags.StringVarP(&req.Suffix, "suffix", "s", "", "Suffix to match at the end of the address")
	flags.BoolVarP(&req.Verbose, "verbose", "v", false, "Enable verbose output of every generated address")

	return cmd
}

func (a *app) search(ctx context.Context, req types.SearchRequest) error {
	// Validate before anything touches the filesystem.
	if err := search.ValidateRequest(search.Bech32, req); err != nil {
		return err
	}

	bin, err := platform.Resolve(a.goos)
	if err != nil {
		return err
	}
	if a.cfg.GeneratorBin != "" {
		bin = a.cfg.GeneratorBin
	}
	slog.Debug("generator resolved", "goos", a.goos, "bin", bin, "dir", a.cfg.WorkDir)

	s := search.New(a.newInvoker(bin), search.NewConsoleReporter(a.stdout))
	s.Dir = a.cfg.WorkDir

	_, err = s.Run(ctx, req)
	return err
}

// run executes the CLI and returns the process exit code.
func (a *app) run(ctx context.Context, args []string) int {
	cleanup, err := logging.Setup(logging.FromConfig(a.cfg), a.stderr)
	if err != nil {
		fmt.Fprintf(a.stderr, "logging setup failed: %v\n", err)
		return exitError
	}
	defer cleanup()

	cmd := a.newRootCmd()
	cmd.SetArgs(args)
	cmd.SetOut(a.stdout)
	cmd.SetErr(a.stderr)

	err = cmd.ExecuteContext(ctx)
	return a.exitCode(err)
}

func (a *app) exitCode(err error) int {
	var invalid *search.InvalidInputError
	var usage *usageError

	switch {
	case err == nil, errors.Is(err, search.ErrInterrupted):
		return exitOK
	case errors.As(err, &invalid):
		fmt.Fprintln(a.stdout, invalid.Error())
		return exitError
	case errors.Is(err, platform.ErrUnsupported):
		fmt.Fprintf(a.stdout, "Unsupported operating system: %s\n", a.goos)
		return exitError
	case errors.As(err, &usage):
		fmt.Fprintf(a.stderr, "%v\nRun 'kaspa-vanity --help' for usage.\n", usage)
		return exitUsage
	default:
		slog.Error("search failed", "error", err)
		fmt.Fprintf(a.stderr, "Error: %v\n", err)
		return exitError
	}
}
