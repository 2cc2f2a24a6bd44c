// Command ufsconv converts between comma-separated tables and UFS binary
// spectroscopy files.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	err := newRootCmd(newApp()).ExecuteContext(ctx)
	stop()

	if err != nil {
		if !errors.Is(err, errNoFiles) {
			fmt.Fprintln(os.Stderr, err)
		}
		os.Exit(1)
	}
}
