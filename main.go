package main

import (
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/ensonal/EVotingCompany-Web3/auth"
	"github.com/ensonal/EVotingCompany-Web3/cliparse"
	"github.com/ensonal/EVotingCompany-Web3/db"
	"github.com/ensonal/EVotingCompany-Web3/middleware"
	"github.com/ensonal/EVotingCompany-Web3/registry"
	"github.com/ensonal/EVotingCompany-Web3/router"
)

func main() {
	var err error

	// Optional .env for local development
	if err := cliparse.LoadEnv(".env"); err != nil {
		slog.Error("Error loading .env", "error", err)
		os.Exit(1)
	}

	// Parse configuration
	cfg, err := cliparse.ParseFlags(os.Args[1:])
	if err != nil {
		slog.Error("Error parsing flags", "error", err)
		os.Exit(1)
	}

	chairperson, err := auth.ParseIdentity(cfg.Chairperson)
	if err != nil {
		slog.Error("invalid chairperson", "error", err)
		os.Exit(1)
	}

	// Connect and verify
	dbConn, err := db.Open(cfg.DatabaseType, cfg.DatabaseURL)
	if err != nil {
		slog.Error("database connection failed", "error", err)
		os.Exit(1)
	}
	defer dbConn.Close()

	// Create schema (tables)
	if err := db.CreateSchema(dbConn); err != nil {
		slog.Error("schema creation failed", "error", err)
		os.Exit(1)
	}
	slog.Info("Database schema ready", "type", cfg.DatabaseType)

	// Rebuild the registry from the journal
	reg, journal, err := db.OpenRegistry(dbConn, db.Genesis{
		Chairperson: chairperson,
		Proposals:   cfg.Labels,
	}, registry.WithMaxChainLength(cfg.MaxChain))
	if err != nil {
		slog.Error("registry restore failed", "error", err)
		os.Exit(1)
	}
	slog.Info("Registry ready",
		"chairperson", chairperson,
		"proposals", len(cfg.Labels),
		"seq", reg.Seq())

	// Create router
	mux := router.NewRouter(reg, journal)

	// Create server
	server := http.Server{
		Handler: middleware.CORS(mux),
		Addr:    ":" + strconv.Itoa(cfg.Port),
	}

	// signal.Notify requires the channel to be buffered
	ctrlc := make(chan os.Signal, 1)
	signal.Notify(ctrlc, os.Interrupt, syscall.SIGTERM)
	go func() {
		// Wait for Ctrl-C signal
		<-ctrlc
		server.Close()
	}()

	// Start server
	slog.Info("Listening", "port", cfg.Port)
	err = server.ListenAndServe()
	if err != nil && err != http.ErrServerClosed {
		slog.Error("Server closed", "error", err)
	} else {
		slog.Info("Server closed", "error", err)
	}
}
