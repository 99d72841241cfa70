// Package generator runs the external kaspaper binary that writes paper wallets.
package generator

import (
	"context"
	"fmt"
	"log/slog"
	"os/exec"
	"path/filepath"
	"strings"
)

// Invoker produces one artifact at the given path.
type Invoker interface {
	Generate(ctx context.Context, artifactPath string) error
}

// InvokerFunc adapts a function to the Invoker interface.
type InvokerFunc func(ctx context.Context, artifactPath string) error

// Generate calls f.
func (f InvokerFunc) Generate(ctx context.Context, artifactPath string) error {
	return f(ctx, artifactPath)
}

// Exec invokes a generator binary through os/exec.
type Exec struct {
	Path string
}

// NewExec returns an Exec for bin. A bare executable name is run from the
// working directory rather than looked up on PATH.
func NewExec(bin string) *Exec {
	if !strings.ContainsAny(bin, `/\`) {
		bin = "." + string(filepath.Separator) + bin
	}
	return &Exec{Path: bin}
}

// Generate runs the binary with artifactPath as its only argument and waits for
// it to exit. Output streams go to the null device and no timeout applies. The
// child is not tied to ctx: cancellation is observed by the caller between
// invocations.
func (e *Exec) Generate(_ context.Context, artifactPath string) error {
	// Stdout and Stderr stay nil, which connects them to os.DevNull.
	cmd := exec.Command(e.Path, artifactPath)
	if err := cmd.Run(); err != nil {
		slog.Debug("generator run failed", "bin", e.Path, "artifact", artifactPath, "error", err)
		return fmt.Errorf("run %s: %w", e.Path, err)
	}
	return nil
}
