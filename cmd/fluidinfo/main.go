// Command fluidinfo calls the Fluidinfo API from the command line.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/usestring/fluidinfo-go/internal/config"
)

func main() {
	// Set up context with signal handling
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	// Defaults come from the environment (FLUIDINFO_INSTANCE,
	// FLUIDINFO_USERNAME, LOG_LEVEL, ...; see internal/config);
	// command-line flags override them.
	a := newApp(config.Load(), os.Stdin, os.Stdout)
	err := a.rootCommand().ExecuteContext(ctx)
	a.close()

	if err != nil {
		var exitErr *exitError
		if errors.As(err, &exitErr) {
			os.Exit(exitErr.code)
		}
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

// exitError ends the process with a status code and no message.
type exitError struct {
	code int
}

func (e *exitError) Error() string {
	return fmt.Sprintf("exit status %d", e.code)
}
