package main

import (
	"log/slog"
	"os"
	"time"

	"rfq-offer-service/internal/pkg/config"

	"github.com/joho/godotenv"
	"github.com/urfave/cli/v2"
)

func main() {
	_ = godotenv.Load()

	if err := newApp().Run(os.Args); err != nil {
		slog.Error("rfqctl failed", "error", err)
		os.Exit(1)
	}
}

func newApp() *cli.App {
	return &cli.App{
		Name:  "rfqctl",
		Usage: "negotiate offers on buyer RFQs as a supplier",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "store-url", Usage: "offer store base URL (default $RFQ_STORE_URL)"},
			&cli.StringFlag{Name: "token", Usage: "supplier bearer token (default $RFQ_STORE_TOKEN)"},
			&cli.DurationFlag{Name: "timeout", Usage: "per request timeout (default $RFQ_STORE_TIMEOUT)"},
		},
		Commands: []*cli.Command{
			showCommand(),
			historyCommand(),
			quoteCommand(),
			declineCommand(),
			tokenCommand(),
		},
	}
}

// loadConfig reads the environment and lets global flags win over it.
func loadConfig(c *cli.Context) (config.ClientConfig, error) {
	cfg, err := config.LoadClientConfig()
	if err != nil {
		return config.ClientConfig{}, err
	}
	if c.IsSet("store-url") {
		cfg.Store.URL = c.String("store-url")
	}
	if c.IsSet("token") {
		cfg.Store.Token = c.String("token")
	}
	if c.IsSet("timeout") {
		cfg.Store.Timeout = c.Duration("timeout")
	}
	if cfg.Store.Timeout <= 0 {
		cfg.Store.Timeout = 10 * time.Second
	}
	return cfg, nil
}

func newLogger(cfg config.LogConfig) *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: cfg.SlogLevel()}))
}
