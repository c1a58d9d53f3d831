package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/schedmail/email-worker/config"
	"github.com/schedmail/email-worker/internal/app"
	"github.com/schedmail/email-worker/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	log := logger.NewLoggerWithLevel(cfg.LogLevel)
	log.WithField("stage", cfg.Stage).WithField("version", cfg.Version).Info("Starting email worker run.")

	output, err := app.New(cfg, log).Run(context.Background())
	if err != nil {
		log.Fatal(fmt.Sprintf("Worker run failed: %v", err))
	}

	// The batch summary goes to stdout for the invoking platform; a
	// completed run exits zero regardless of per-email outcomes.
	encoded, err := json.Marshal(output)
	if err != nil {
		log.Fatal(fmt.Sprintf("Failed to encode worker output: %v", err))
	}
	fmt.Println(string(encoded))

	log.Info(fmt.Sprintf("Worker run finished with %d emails processed.", len(output.Emails)))
}
