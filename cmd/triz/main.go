package main

import (
	"context"
	"os"
	"os/signal"

	"triz/standards/internal/cli"

	log "github.com/sirupsen/logrus"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := cli.NewRootCommand().ExecuteContext(ctx); err != nil {
		log.Fatalf("Application exited with error: %v", err)
	}
}
