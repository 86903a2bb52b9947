package server

import (
	"context"
	"log/slog"
	"net/http"
	"testing"
	"time"

	"github.com/makanrank/ranking-engine/internal/domain"
	"github.com/stretchr/testify/require"
)

func TestServer_Run_ShutsDownOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(domain.ContextWithLogger(context.Background(), slog.New(slog.DiscardHandler)))

	s := &Server{
		TLSDisabled:     true,
		TLSDisabledPort: 0,
		Router:          http.NotFoundHandler(),
	}

	done := make(chan error, 1)
	go func() { done <- s.Run(ctx) }()

	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not shut down")
	}
}
