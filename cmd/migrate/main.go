package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"rfq-offer-service/internal/pkg/config"

	"ariga.io/atlas-go-sdk/atlasexec"
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Applies migrations/schema.sql as the desired state using the atlas CLI.
func main() {
	schemaPath := flag.String("schema", "migrations/schema.sql", "desired schema file")
	devURL := flag.String("dev-url", "docker://postgres/17/dev", "atlas dev database used to plan changes")
	dryRun := flag.Bool("dry-run", false, "print the plan without applying it")
	flag.Parse()

	_ = godotenv.Load()
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	var dbCfg config.DBConfig
	if err := envconfig.Process("", &dbCfg); err != nil {
		logger.Error("failed to load database config", "error", err)
		os.Exit(1)
	}

	if err := apply(dbCfg, *schemaPath, *devURL, *dryRun, logger); err != nil {
		logger.Error("schema apply failed", "error", err)
		os.Exit(1)
	}
}

func apply(dbCfg config.DBConfig, schemaPath, devURL string, dryRun bool, logger *slog.Logger) error {
	abs, err := filepath.Abs(schemaPath)
	if err != nil {
		return err
	}
	wd, err := os.Getwd()
	if err != nil {
		return err
	}
	client, err := atlasexec.NewClient(wd, "atlas")
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	res, err := client.SchemaApply(ctx, &atlasexec.SchemaApplyParams{
		URL:         dbCfg.BuildDSN(),
		To:          "file://" + abs,
		DevURL:      devURL,
		DryRun:      dryRun,
		AutoApprove: !dryRun,
	})
	if err != nil {
		return err
	}
	logger.Info("schema applied",
		"dry_run", dryRun,
		"pending", len(res.Changes.Pending),
		"applied", len(res.Changes.Applied))
	return nil
}
