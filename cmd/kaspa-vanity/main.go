package main

import (
	"context"
	"os"
	"os/signal"
	"runtime"
	"syscall"

	"github.com/usestring/kaspa-vanity/internal/config"
	"github.com/usestring/kaspa-vanity/internal/generator"
)

func main() {
	// Interrupts are observed between generator runs
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	a := &app{
		cfg:    config.Load(),
		goos:   runtime.GOOS,
		stdout: os.Stdout,
		stderr: os.Stderr,
		newInvoker: func(bin string) generator.Invoker {
			return generator.NewExec(bin)
		},
	}
	code := a.run(ctx, os.Args[1:])
	cancel()
	os.Exit(code)
}
