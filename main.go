package main

//go:generate swag init

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"

	"github.com/cockroachdb/errors"
	"github.com/jagravi04/easy-bill-creator-app/billing"
	"github.com/jagravi04/easy-bill-creator-app/config"
	"github.com/jagravi04/easy-bill-creator-app/db"
	"github.com/jagravi04/easy-bill-creator-app/handlers"
	"github.com/jagravi04/easy-bill-creator-app/store"
	"github.com/urfave/cli/v2"
)

// @title           Easy Bill Creator API
// @version         1.0.0
// @description     API for creating, editing, and summarizing invoices.
// @host            localhost:8080
// @BasePath        /api/v1

func main() {
	app := &cli.App{
		Name:  "easy-bill",
		Usage: "invoice creation and dashboard service",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "path to a YAML config file",
				EnvVars: []string{"EASYBILL_CONFIG"},
			},
		},
		Action: serve,
		Commands: []*cli.Command{
			{
				Name:   "serve",
				Usage:  "start the HTTP API",
				Action: serve,
			},
			{
				Name:   "summary",
				Usage:  "print dashboard metrics for the configured store",
				Action: summary,
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		slog.Error("command failed", "error", err)
		os.Exit(1)
	}
}

// setup loads configuration, configures logging and opens the invoice store.
// The returned closer releases the store.
func setup(c *cli.Context) (*config.Configuration, store.InvoiceStore, io.Closer, error) {
	cfg, err := config.Load(c.String("config"))
	if err != nil {
		return nil, nil, nil, err
	}

	// Configure structured logging
	var level slog.Level
	if err := level.UnmarshalText([]byte(cfg.Log.Level)); err != nil {
		return nil, nil, nil, errors.Wrap(err, "parsing log level")
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: level})))

	s, closer, err := openStore(c.Context, cfg.Store)
	if err != nil {
		return nil, nil, nil, err
	}
	return cfg, s, closer, nil
}

func openStore(ctx context.Context, cfg config.StoreConfig) (store.InvoiceStore, io.Closer, error) {
	var (
		s      store.InvoiceStore
		closer io.Closer = io.NopCloser(nil)
	)
	switch cfg.Driver {
	case "sqlite":
		database, err := db.Open(cfg.DSN)
		if err != nil {
			return nil, nil, err
		}
		if err := db.Migrate(database); err != nil {
			database.Close()
			return nil, nil, err
		}
		s, closer = store.NewSQLiteStore(database, nil), database
	default:
		s = store.NewMemoryStore(nil)
	}

	if cfg.Seed {
		if err := store.Seed(ctx, s); err != nil {
			closer.Close()
			return nil, nil, err
		}
	}
	slog.Info("invoice store ready", "driver", cfg.Driver, "seeded", cfg.Seed)
	return s, closer, nil
}

func serve(c *cli.Context) error {
	cfg, s, closer, err := setup(c)
	if err != nil {
		return err
	}
	defer closer.Close()

	h := &handlers.Handler{
		Store:        s,
		Builder:      billing.NewBuilder(cfg.Billing.Rate()),
		StrictStatus: cfg.Billing.StrictStatus,
	}

	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	slog.Info("server starting", "address", addr, "tax_rate", cfg.Billing.Rate().String(), "currency", cfg.Billing.Currency)
	if err := http.ListenAndServe(addr, handlers.NewRouter(h)); err != nil {
		return errors.Wrap(err, "server failed")
	}
	return nil
}

func summary(c *cli.Context) error {
	_, s, closer, err := setup(c)
	if err != nil {
		return err
	}
	defer closer.Close()

	invoices, err := s.List(c.Context, store.ListFilter{})
	if err != nil {
		return err
	}
	enc := json.NewEncoder(c.App.Writer)
	enc.SetIndent("", "  ")
	return enc.Encode(billing.Summarize(invoices))
}
