package main

import (
	"context"
	"log"

	"github.com/Tharun-raj-u/speakout/internal/client/cli"
	"github.com/Tharun-raj-u/speakout/internal/client/config"
	"github.com/Tharun-raj-u/speakout/internal/logging"
)

func main() {
	cfg := config.LoadConfig()

	logger, err := logging.NewZapLogger(cfg.LogLevel)
	if err != nil {
		log.Fatalf("%v", err)
	}
	defer logger.Sync()

	app, err := cli.NewApp(cfg, logger)
	if err != nil {
		log.Fatalf("%v", err)
	}
	defer app.Close()

	app.Run(context.Background())
}
