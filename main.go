package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/cluster-gol/utils"
)

func main() {
	// Defaults, then config.json (or -config), then flags
	config, err := utils.ResolveConfig(os.Args[0], os.Args[1:])
	if errors.Is(err, flag.ErrHelp) {
		return
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Invalid configuration: %v\n", err)
		os.Exit(2)
	}

	// Handle Ctrl+C gracefully
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	displayGameInfo(config)

	switch config.Mode {
	case utils.ModePolygons:
		err = runPolygons(ctx, config)
	default:
		err = runLife(ctx, config)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %+v\n", err)
		stop()
		os.Exit(1)
	}
	fmt.Println("Done!")
}
