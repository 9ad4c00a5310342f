package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/osse101/PollPeak_Go/internal/adventure"
	"github.com/osse101/PollPeak_Go/internal/awards"
	"github.com/osse101/PollPeak_Go/internal/bootstrap"
	"github.com/osse101/PollPeak_Go/internal/config"
	"github.com/osse101/PollPeak_Go/internal/database"
	"github.com/osse101/PollPeak_Go/internal/database/postgres"
	"github.com/osse101/PollPeak_Go/internal/dataset"
	"github.com/osse101/PollPeak_Go/internal/handler"
	"github.com/osse101/PollPeak_Go/internal/server"
	"github.com/osse101/PollPeak_Go/internal/votes"
	"github.com/osse101/PollPeak_Go/internal/wrapped"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logFile, err := bootstrap.SetupLogger(cfg)
	if err != nil {
		log.Fatalf("Failed to set up logging: %v", err)
	}
	defer logFile.Close()

	data, err := dataset.NewLoader().Load(cfg.DataDir)
	if err != nil {
		log.Fatalf("Failed to load dataset: %v", err)
	}

	dbPool, err := database.NewPool(cfg.GetDBConnString(), database.DefaultMaxConnections, database.DefaultMaxConnIdleTime, database.DefaultMaxConnLifetime)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer dbPool.Close()

	if err := database.ApplySchema(context.Background(), dbPool); err != nil {
		log.Fatalf("Failed to apply database schema: %v", err)
	}

	handler.InitValidator()

	wrappedService := wrapped.NewService(data.Polls)
	awardsService := awards.NewService(data.Polls)
	adventureService := adventure.NewService(data.Adventures, data.Polls)
	votesService := votes.NewService(postgres.NewVoteRepository(dbPool), data.Polls)

	srv := server.NewServer(cfg.Port, dbPool, wrappedService, awardsService, adventureService, votesService)

	errCh := make(chan error, 1)
	go func() {
		if err := srv.Start(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		log.Fatalf("Server failed: %v", err)
	case <-quit:
	}

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	bootstrap.GracefulShutdown(ctx, bootstrap.ShutdownComponents{
		Server: srv,
		DBPool: dbPool,
	})
}
