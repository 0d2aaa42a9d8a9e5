package http

import (
	"net/http/httptest"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/advochat/advochat-server/internal/config"
	"github.com/advochat/advochat-server/internal/core"
	"github.com/advochat/advochat-server/internal/directory"
	"github.com/advochat/advochat-server/internal/notify"
	"github.com/advochat/advochat-server/internal/scheduling"
)

func startTestServer(t *testing.T) *httptest.Server {
	t.Helper()

	hub := core.NewHub(core.NewRegistry(), nil)
	gateway := notify.NewGateway(hub, nil)
	dir := directory.Seeded()
	scheduler := scheduling.NewService(dir, gateway, nil)

	cfg := &config.Config{
		Addr:              ":0",
		ReadHeaderTimeout: time.Second,
		ShutdownTimeout:   time.Second,
		SubscriberBuffer:  16,
	}

	logger := zerolog.Nop()
	server := NewServer(hub, dir, scheduler, cfg, &logger)

	ts := httptest.NewServer(server.Handler)
	t.Cleanup(ts.Close)

	return ts
}
