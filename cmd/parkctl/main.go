package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/epetrov2017/parkspot/internal/cli"
	"github.com/epetrov2017/parkspot/internal/client"
	"github.com/epetrov2017/parkspot/internal/timer"
)

func main() {
	serverURL, stagingPath := parseFlags()

	if err := run(context.Background(), serverURL, stagingPath); err != nil {
		log.Fatalf("application stopped with error: %v", err)
	}
}

// parseFlags parses command-line flags, falling back to environment
// variables loaded from config.env.
func parseFlags() (serverURL, stagingPath string) {
	_ = godotenv.Load("config.env")

	defaultURL := os.Getenv("PARKSPOT_SERVER_URL")
	if defaultURL == "" {
		defaultURL = "http://localhost:3000"
	}
	defaultStaging := os.Getenv("PARKSPOT_STAGING_PATH")
	if defaultStaging == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			home = "."
		}
		defaultStaging = filepath.Join(home, ".parkspot", "staging.db")
	}

	s := flag.String("server", defaultURL, "Base URL of the parkspot server")
	d := flag.String("staging", defaultStaging, "Path to the local staging database")
	flag.Parse()
	return *s, *d
}

func run(ctx context.Context, serverURL, stagingPath string) error {
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := os.MkdirAll(filepath.Dir(stagingPath), 0o700); err != nil {
		return fmt.Errorf("create staging directory: %w", err)
	}

	api := client.New(serverURL)

	staging, err := client.OpenStaging(stagingPath)
	if err != nil {
		return fmt.Errorf("open staging store: %w", err)
	}
	defer staging.Close()

	checker, err := client.NewDialChecker(serverURL, 3*time.Second)
	if err != nil {
		return fmt.Errorf("server URL: %w", err)
	}

	reconciler := client.NewReconciler(api, staging, checker)

	reader := bufio.NewReader(os.Stdin)
	app := cli.NewApp(api, reconciler, reader, os.Stdout)

	ctrl := timer.NewController(api, cli.NewTerminalNotifier(), app.CurrentUserID,
		timer.WithExpiryFunc(func() {
			fmt.Println("\n*** Parking timer expired! ***")
		}),
	)
	app.AttachTimer(ctrl)

	return cli.Run(ctx, app, reader, os.Stdout)
}
