package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/deep-job-seek/internal/config"
	"github.com/jonathan/deep-job-seek/internal/db"
	"github.com/jonathan/deep-job-seek/internal/server"
)

var (
	servePort    int
	serveVerbose bool
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the REST API server",
	Long:  "Start an HTTP server that exposes resume generation and the optional resume archive.",
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 8080, "Port to listen on")
	serveCmd.Flags().BoolVar(&serveVerbose, "verbose", false, "Print detailed debug information")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	cfg := config.Config{Verbose: serveVerbose}
	runner, client, err := newRunner(ctx, &cfg)
	if err != nil {
		return err
	}
	defer func() { _ = client.Close() }()

	var database *db.DB
	if databaseURL := os.Getenv("DATABASE_URL"); databaseURL != "" {
		database, err = db.Connect(ctx, databaseURL)
		if err != nil {
			return err
		}
		defer database.Close()
	}

	srv := server.New(server.Config{Port: servePort}, runner, database)
	return srv.Start()
}
