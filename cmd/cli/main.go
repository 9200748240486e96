package main

import (
	"context"
	"log"

	"github.com/careerbridge/careerbridge/internal/client/cli"
	"github.com/careerbridge/careerbridge/internal/client/config"
	"github.com/careerbridge/careerbridge/internal/logging"
)

func main() {
	ctx := context.Background()

	cfg := config.LoadConfig()
	logger := logging.NewDefault()

	app, err := cli.NewApp(ctx, cfg, logger)
	if err != nil {
		log.Fatalf("%v", err)
	}

	app.Run(ctx)
}
