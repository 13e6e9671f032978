package logging

import "context"

// Context keys for common log fields.
type contextKey string

const (
	// RequestIDKey is the context key for request IDs.
	RequestIDKey contextKey = "request_id"

	// ClientIDKey is the context key for client identifiers.
	ClientIDKey contextKey = "client_id"

	// CategoryKey is the context key for the leading matched category.
	CategoryKey contextKey = "category"
)

// WithRequestID adds a request ID to the context.
func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, RequestIDKey, requestID)
}

// GetRequestID retrieves the request ID from the context.
func GetRequestID(ctx context.Context) string {
	if requestID, ok := ctx.Value(RequestIDKey).(string); ok {
		return requestID
	}
	return ""
}

// WithClientID adds a client identifier to the context.
func WithClientID(ctx context.Context, clientID string) context.Context {
	return context.WithValue(ctx, ClientIDKey, clientID)
}

// GetClientID retrieves the client identifier from the context.
func GetClientID(ctx context.Context) string {
	if clientID, ok := ctx.Value(ClientIDKey).(string); ok {
		return clientID
	}
	return ""
}

// WithCategory adds a matched category to the context.
func WithCategory(ctx context.Context, category string) context.Context {
	return context.WithValue(ctx, CategoryKey, category)
}

// GetCategory retrieves the matched category from the context.
func GetCategory(ctx context.Context) string {
	if category, ok := ctx.Value(CategoryKey).(string); ok {
		return category
	}
	return ""
}

// extractContextFields extracts common fields from context for logging.
// Returns a slice of key-value pairs suitable for logger.With().
func extractContextFields(ctx context.Context) []any {
	var fields []any

	if requestID := GetRequestID(ctx); requestID != "" {
		fields = append(fields, "request_id", requestID)
	}
	if clientID := GetClientID(ctx); clientID != "" {
		fields = append(fields, "client_id", clientID)
	}
	if category := GetCategory(ctx); category != "" {
		fields = append(fields, "category", category)
	}

	return fields
}
