package httpapi

import (
	"crypto/rand"
	"encoding/json"
	"errors"
	"math/big"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/helldraft/event-backend/internal/history"
	"github.com/helldraft/event-backend/internal/hub"
	"github.com/helldraft/event-backend/internal/save"
	"github.com/helldraft/event-backend/internal/session"
	"github.com/helldraft/event-backend/internal/storage"
)

const saveKeyPrefix = "save:"

func GenerateCode() (string, error) {
	const charset = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

	code := make([]byte, 6)
	for i := 0; i < 6; i++ {
		num, err := rand.Int(rand.Reader, big.NewInt(int64(len(charset))))
		if err != nil {
			return "", err
		}
		code[i] = charset[num.Int64()]
	}
	return string(code), nil
}

func CreateSession(h *hub.Hub, log *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var code string
		for {
			c, err := GenerateCode()
			if err != nil {
				http.Error(w, "failed to generate code", http.StatusInternalServerError)
				return
			}
			reply := make(chan *session.Session, 1)
			h.Inbox() <- hub.GetSession{Code: c, Reply: reply}
			if <-reply == nil {
				code = c
				break
			}
			log.Info("collision on code, regenerating", zap.String("code", c))
		}

		reply := make(chan *session.Session, 1)
		h.Inbox() <- hub.EnsureSession{Code: code, Reply: reply}
		if <-reply == nil {
			http.Error(w, "failed to create session", http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(struct {
			Code string `json:"code"`
		}{Code: code})
	}
}

// ImportSave validates and normalizes an uploaded save, then persists
// it under the given key.
func ImportSave(store storage.KV, log *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		key := chi.URLParam(r, "key")
		if key == "" {
			http.Error(w, "missing key", http.StatusBadRequest)
			return
		}

		var body json.RawMessage
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			http.Error(w, "invalid save data, file may be corrupted", http.StatusBadRequest)
			return
		}
		state, err := save.Parse(body)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		if err := save.Validate(state); err != nil {
			http.Error(w, err.Error(), http.StatusUnprocessableEntity)
			return
		}
		normalized := save.Normalize(*state)

		data, err := save.Export(normalized, time.Now())
		if err != nil {
			http.Error(w, "failed to serialize save", http.StatusInternalServerError)
			return
		}
		if err := store.Put(r.Context(), saveKeyPrefix+key, data); err != nil {
			log.Error("persist save", zap.String("key", key), zap.Error(err))
			http.Error(w, "failed to persist save", http.StatusInternalServerError)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

// ExportSave returns a previously imported save as-is.
func ExportSave(store storage.KV, log *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		key := chi.URLParam(r, "key")
		data, err := store.Get(r.Context(), saveKeyPrefix+key)
		if errors.Is(err, storage.ErrNotFound) {
			http.Error(w, "save not found", http.StatusNotFound)
			return
		}
		if err != nil {
			log.Error("load save", zap.String("key", key), zap.Error(err))
			http.Error(w, "failed to load save", http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write(data)
	}
}

// ListRuns returns the run history, newest first.
func ListRuns(runs *history.Log) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(runs.All(r.Context()))
	}
}

// RecordRun appends one finished run to the history.
func RecordRun(runs *history.Log) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var rec history.RunRecord
		if err := json.NewDecoder(r.Body).Decode(&rec); err != nil {
			http.Error(w, "bad json", http.StatusBadRequest)
			return
		}
		if rec.CompletedAt.IsZero() {
			rec.CompletedAt = time.Now()
		}
		if !runs.Add(r.Context(), rec) {
			http.Error(w, "failed to record run", http.StatusInternalServerError)
			return
		}
		w.WriteHeader(http.StatusCreated)
	}
}

func Healthz(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
}
