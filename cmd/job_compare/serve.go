package main

import (
	"github.com/spf13/cobra"

	"github.com/jonathan/job-compare/internal/server"
)

var (
	servePort int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the REST API server",
	Long:  `Start an HTTP server that exposes the job catalog, similarity search and market statistics as JSON.`,
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 0, "Port to listen on (default from config, 5001)")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	a, err := loadApp(cmd)
	if err != nil {
		return err
	}

	port := a.cfg.Server.Port
	if servePort > 0 {
		port = servePort
	}

	srv := server.New(a.svc, server.Config{
		Port:                  port,
		AllowedOrigins:        a.cfg.Server.AllowedOrigins,
		DefaultSimilarResults: a.cfg.MaxSimilarResults,
		OnShutdown:            a.close,
	})
	return srv.Start()
}
