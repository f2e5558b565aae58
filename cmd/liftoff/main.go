// liftoff searches and browses space launches in the terminal.
//
// Usage:
//
//	liftoff [location] [--config path] [--prefs path]
//	liftoff version
//
// A location is a query string such as "?query=falcon" or "?id=<launch id>".
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	os.Exit(run())
}

func run() int {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "liftoff: %v\n", err)
		return 1
	}
	return 0
}
