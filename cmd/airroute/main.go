// Command airroute finds shortest flight routes between airports.
//
// By default it runs the interactive menu on stdin/stdout. With -serve it
// exposes the network over HTTP until interrupted. Either way the network is
// loaded from the configured store (or seeded with the default network) at
// start and saved back on exit.
//
// Usage:
//
//	airroute [-config config.yaml] [-env .env] [-serve]
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/katalvlaran/airroute/api"
	"github.com/katalvlaran/airroute/app"
	"github.com/katalvlaran/airroute/cli"
	"github.com/katalvlaran/airroute/config"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "airroute:", err)
		os.Exit(1)
	}
}

func run() error {
	configFile := flag.String("config", "config.yaml", "YAML configuration file (optional)")
	envFile := flag.String("env", ".env", "dotenv file with AIRROUTE_* overrides (optional)")
	serve := flag.Bool("serve", false, "serve the HTTP API instead of the interactive menu")
	flag.Parse()

	if err := config.LoadEnvFile(*envFile); err != nil {
		return err
	}
	cfg, err := config.Load(*configFile)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	a, err := app.Bootstrap(ctx, cfg, os.Stderr)
	if err != nil {
		return err
	}
	defer a.Close()

	if *serve {
		srv := api.NewServer(a.Network, api.WithLogger(a.Log))
		if err := srv.ListenAndServe(ctx, cfg.HTTP.Addr); err != nil {
			return err
		}
		n, changed := srv.Snapshot()
		if !changed {
			return nil
		}
		// ctx is already canceled here
		return a.Save(context.Background(), n)
	}

	menu := cli.New(a.Network, os.Stdin, os.Stdout, cli.WithLogger(a.Log))
	if err := menu.Run(ctx); err != nil {
		a.Log.Warn("menu stopped", "err", err)
	}
	fmt.Println("Saving network data...")

	return a.Save(context.Background(), a.Network)
}
