package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"chanreg/internal/failures"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	cmd := newRootCommand()
	err := cmd.ExecuteContext(ctx)
	stop()
	if err != nil {
		if !errors.Is(err, context.Canceled) {
			fmt.Fprintln(os.Stderr, err)
			if code := failures.ExitCode(err); code > 1 {
				fmt.Fprintf(os.Stderr, "hint: %s\n", failures.Hint(err))
			}
		}
		os.Exit(failures.ExitCode(err))
	}
}
