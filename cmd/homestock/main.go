package main

import (
	"context"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog/log"

	"homestock/internal/api"
	"homestock/internal/config"
	"homestock/internal/db"
	"homestock/internal/logging"
	"homestock/internal/metrics"
	"homestock/web"
)

func main() {
	fs := flag.NewFlagSet("homestock", flag.ContinueOnError)

	var configPath string
	fs.StringVar(&configPath, "config", "", "")
	fs.StringVar(&configPath, "c", "", "")

	var dbPath string
	fs.StringVar(&dbPath, "db", "", "")
	fs.StringVar(&dbPath, "d", "", "")

	var addr string
	fs.StringVar(&addr, "addr", "", "")
	fs.StringVar(&addr, "a", "", "")

	fs.Usage = func() {
		fmt.Fprint(os.Stdout, `Usage: homestock [flags]

Flags:
  -c, -config <path>      YAML config file (optional)
  -d, -db <path>          SQLite database path (default: data/local.db)
  -a, -addr <host:port>   listen address (default: :8099)
  -h, -help               show this help and exit
`)
	}

	if err := fs.Parse(os.Args[1:]); err != nil {
		if err == flag.ErrHelp {
			os.Exit(0)
		}
		os.Exit(1)
	}

	if fs.NArg() > 0 {
		fmt.Fprintf(os.Stderr, "unexpected argument: %s\n", fs.Arg(0))
		fs.Usage()
		os.Exit(1)
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	// Flags override the config file.
	if dbPath != "" {
		cfg.Database.Path = dbPath
	}
	if addr != "" {
		cfg.Server.Addr = addr
	}

	logger, closeLog, err := logging.New(cfg.Logging)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
	if closeLog != nil {
		defer closeLog.Close()
	}
	log.Logger = *logger

	// Open database and apply pending migrations.
	database, err := db.Open(cfg.Database.Path)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to open database")
	}
	defer database.Close()

	if err := db.Migrate(database); err != nil {
		log.Fatal().Err(err).Msg("failed to migrate database")
	}

	version, err := db.Version(database)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to read schema version")
	}
	log.Info().Str("path", cfg.Database.Path).Int("schema_version", version).Msg("database ready")

	var m *metrics.Metrics
	if cfg.Metrics.Enabled {
		m = metrics.New()
	}

	// Combine: API routes take priority, the embedded client handles the rest.
	apiRouter := api.NewRouter(database, m)
	mux := http.NewServeMux()
	mux.Handle("/api/", apiRouter)
	mux.Handle("/healthz", apiRouter)
	if m != nil {
		mux.Handle("/metrics", apiRouter)
	}
	mux.Handle("/", http.FileServer(http.FS(web.StaticFS())))

	server := &http.Server{
		Addr:              cfg.Server.Addr,
		Handler:           mux,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      60 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	// Graceful shutdown on SIGINT/SIGTERM.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		sig := <-quit
		log.Info().Str("signal", sig.String()).Msg("shutdown signal received")

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		if err := server.Shutdown(ctx); err != nil {
			log.Error().Err(err).Msg("server forced to shutdown")
		}
	}()

	log.Info().Str("addr", cfg.Server.Addr).Msg("server started")
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatal().Err(err).Msg("server error")
	}

	log.Info().Msg("server stopped, closing database")
}
