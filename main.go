package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gdamore/tcell/v2"

	"github.com/sheikhrachel/go-life/game"
	"github.com/sheikhrachel/go-life/ui"
	"github.com/sheikhrachel/go-life/utils"
)

func main() {
	fs := flag.NewFlagSet(os.Args[0], flag.ExitOnError)
	config, err := utils.ParseArgs(fs, os.Args[1:])
	if err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}

	g, err := game.NewFromConfig(config)
	if err != nil {
		log.Fatalf("creating game: %v", err)
	}

	// Handle Ctrl+C gracefully
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if config.Headless {
		if err = runHeadless(ctx, os.Stdout, g, config); err != nil {
			log.Fatal(err)
		}
		return
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		log.Fatalf("creating screen: %v", err)
	}
	if err = screen.Init(); err != nil {
		log.Fatalf("initializing screen: %v", err)
	}

	if err = ui.NewScreen(screen, g, config.TickInterval()).Run(ctx); err != nil {
		log.Fatal(err)
	}
}
