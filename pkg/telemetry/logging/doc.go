// Package logging provides structured logging for textgate on top of
// log/slog.
//
// The Logger wraps slog with level/format parsing from configuration and
// context-field extraction, so request-scoped values (request ID, client
// ID) attach to every log line without callers threading them manually:
//
//	logger, err := logging.New(logging.Config{Level: "info", Format: "json"})
//	if err != nil {
//	    return err
//	}
//
//	ctx = logging.WithRequestID(ctx, requestID)
//	logger.InfoContext(ctx, "Text evaluated", "categories", 2)
//
// Use Slog to obtain the underlying *slog.Logger for components that take
// one directly.
package logging
