package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/AkatukiSora/gto-poker-ref/internal/applog"
	"github.com/AkatukiSora/gto-poker-ref/internal/cli"
	"github.com/AkatukiSora/gto-poker-ref/internal/config"
)

var (
	version   = "dev"
	commit    = "local"
	buildDate = "unknown"
)

func main() {
	configPath := flag.String("config", "", "optional YAML config file")
	envPath := flag.String("env", ".env", "optional dotenv file")
	showVersion := flag.Bool("version", false, "print version and exit")
	flag.Parse()

	if *showVersion {
		fmt.Printf("gto-poker-ref %s (%s, built %s)\n", version, commit, buildDate)
		return
	}

	cfg, err := config.Load(*configPath, *envPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(cli.ExitError)
	}
	applog.Init(cfg.Debug, cfg.LogFile)
	slog.Debug("config loaded", "locale", cfg.Locale, "currency", cfg.Currency, "version", version)

	app, err := cli.New(cfg, os.Stdout)
	if err != nil {
		slog.Error("init cli", "error", err)
		os.Exit(cli.ExitError)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := app.Run(ctx, flag.Args())
	stop()
	os.Exit(code)
}
