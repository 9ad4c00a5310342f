package bootstrap

// Log messages for application lifecycle
const (
	LogMsgLoggingInitialized   = "Logging initialized"
	LogMsgStartingApp          = "Starting PollPeak"
	LogMsgConfigurationLoaded  = "Configuration loaded"
	LogMsgShuttingDownServer   = "Shutting down server..."
	LogMsgServerForcedShutdown = "Server forced to shutdown"
	LogMsgServerStopped        = "Server stopped"
)

// keepRecentLogs is how many session logs survive cleanup
const keepRecentLogs = 9
