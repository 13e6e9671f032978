package cli

import "testing"

func TestSetupSignalHandler(t *testing.T) {
	ctx := SetupSignalHandler()
	if ctx == nil {
		t.Fatal("Expected a context")
	}
	select {
	case <-ctx.Done():
		t.Fatal("Expected context to be live before any signal")
	default:
	}
}
