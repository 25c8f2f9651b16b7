// Package logger provides a structured logging facility based on Zap.
//
// The level is chosen by the server debug flag: debug when DEBUG is exactly
// "true", info otherwise. A development config is used at debug level and a
// production config at info level.
//
// # Context Awareness
//
// The WithRayID helper extracts the RayID from a Fiber context and attaches it to the
// log entry, so every line written for a request can be correlated.
//
// # Usage
//
//	log, _ := logger.New(&logger.Config{Level: logger.LevelFor(cfg.App.DebugEnabled())})
//	log.Info("Server started")
//
//	// In a request handler:
//	l := logger.WithRayID(log, c)
//	l.Debug("Serving file", zap.String("path", p))
package logger
