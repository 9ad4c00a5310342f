package bootstrap

import (
	"context"
	"log/slog"

	"github.com/osse101/PollPeak_Go/internal/database"
	"github.com/osse101/PollPeak_Go/internal/server"
)

// ShutdownComponents holds all components that need graceful shutdown.
type ShutdownComponents struct {
	Server *server.Server
	DBPool database.Pool
}

// GracefulShutdown performs graceful shutdown of all application components.
// The HTTP server stops first so no new requests arrive while the database
// pool drains.
func GracefulShutdown(ctx context.Context, components ShutdownComponents) {
	slog.Info(LogMsgShuttingDownServer)

	if err := components.Server.Stop(ctx); err != nil {
		slog.Error(LogMsgServerForcedShutdown, "error", err)
	}

	if components.DBPool != nil {
		components.DBPool.Close()
	}

	slog.Info(LogMsgServerStopped)
}
