package api

import (
	"errors"
	"testing"

	"go.uber.org/zap"

	"github.com/praxislabs/praxis/internal/store"
)

func TestNewHandlerRejectsNilStore(t *testing.T) {
	if _, err := NewHandler(nil, zap.NewNop()); !errors.Is(err, store.ErrNotInitialized) {
		t.Fatalf("expected ErrNotInitialized, got %v", err)
	}
}

func TestNewHandlerDefaultsLogger(t *testing.T) {
	handler, err := NewHandler(store.New(), nil)
	if err != nil {
		t.Fatalf("NewHandler() unexpected error: %v", err)
	}
	if handler.logger == nil {
		t.Fatal("expected a fallback logger")
	}
}
