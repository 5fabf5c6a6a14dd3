package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"ppalog/internal/cli"
	"ppalog/internal/config"
)

func main() {
	cfg := config.Load()
	app := cli.NewApp(cfg)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	root := cli.NewRootCmd(app)
	if err := root.ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}
