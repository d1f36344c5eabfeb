package testutil

import (
	"testing"

	"github.com/apex/log"
	"github.com/apex/log/handlers/memory"

	"github.com/lgbarn/manachess-go/internal/chess"
	"github.com/lgbarn/manachess-go/internal/config"
	"github.com/lgbarn/manachess-go/internal/game"
)

// NewMemoryLogger returns a debug-level logger that records entries in the
// returned handler.
func NewMemoryLogger() (*memory.Handler, log.Interface) {
	h := memory.New()
	return h, &log.Logger{Handler: h, Level: log.DebugLevel}
}

// MustSession starts a session from fen with the default configuration.
// An empty fen uses the standard start position.
func MustSession(t *testing.T, fen string) (*game.Session, *memory.Handler) {
	t.Helper()
	cfg := config.NewConfig()
	if fen != "" {
		cfg.StartFEN = fen
	}
	return MustSessionWithConfig(t, cfg)
}

// MustSessionWithConfig starts a session from cfg, failing the test on error.
func MustSessionWithConfig(t *testing.T, cfg *config.Config) (*game.Session, *memory.Handler) {
	t.Helper()
	h, logger := NewMemoryLogger()
	s, err := game.NewSession(cfg, logger)
	if err != nil {
		t.Fatalf("NewSession: %v", err)
	}
	return s, h
}

// Click plays a sequence of clicks given as square names, failing on the
// first unexpected error.
func Click(t *testing.T, s *game.Session, squares ...string) {
	t.Helper()
	for _, name := range squares {
		if err := s.Click(chess.MustSquare(name)); err != nil {
			t.Fatalf("Click(%s): %v", name, err)
		}
	}
}

// HasLogMessage reports whether any recorded entry carries msg.
func HasLogMessage(h *memory.Handler, msg string) bool {
	for _, e := range h.Entries {
		if e.Message == msg {
			return true
		}
	}
	return false
}
