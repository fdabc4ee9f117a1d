package main

import (
	"context"
	"flag"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/astranode/astranode-nft/services/marketplace"
)

func main() {
	var (
		httpPort = flag.String("http-port", "3001", "HTTP server port")
		dbPath   = flag.String("db", "marketplace.sqlite", "Path to the listings database")
	)
	flag.Parse()

	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatal("Failed to create logger:", err)
	}
	defer logger.Sync()

	store, err := marketplace.OpenStore(*dbPath)
	if err != nil {
		logger.Fatal("Failed to open store", zap.String("db", *dbPath), zap.Error(err))
	}
	defer store.Close()

	srv := marketplace.NewServer(store, logger, *httpPort)

	// Handle graceful shutdown
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	go func() {
		logger.Info("Starting marketplace service",
			zap.String("port", *httpPort),
			zap.String("db", *dbPath))
		if err := srv.Start(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Marketplace failed to start", zap.Error(err))
		}
	}()

	<-c
	logger.Info("Shutting down marketplace service...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Stop(ctx); err != nil {
		logger.Error("Error during shutdown", zap.Error(err))
	}
}
