package httpapi

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/helldraft/event-backend/internal/history"
	"github.com/helldraft/event-backend/internal/hub"
	"github.com/helldraft/event-backend/internal/storage"
	"github.com/helldraft/event-backend/internal/ws"
)

func SetupRoutes(h *hub.Hub, store storage.KV, runs *history.Log, log *zap.Logger) http.Handler {
	r := chi.NewRouter()

	// Public routes
	r.Post("/sessions", CreateSession(h, log))
	r.Get("/healthz", Healthz)
	r.Get("/ws", ws.Handler(h, log))

	r.Put("/saves/{key}", ImportSave(store, log))
	r.Get("/saves/{key}", ExportSave(store, log))

	r.Get("/runs", ListRuns(runs))
	r.Post("/runs", RecordRun(runs))

	return r
}
