// Package history keeps a bounded log of finished runs, newest first.
package history

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"go.uber.org/zap"

	"github.com/helldraft/event-backend/internal/storage"
)

// MaxRuns caps the log; the oldest entry past the cap is evicted.
const MaxRuns = 20

const storageKey = "run_history"

// RunRecord summarizes one finished run.
type RunRecord struct {
	ID          string    `json:"id"`
	Outcome     string    `json:"outcome"` // "victory" | "defeat" | "abandoned"
	Difficulty  int       `json:"difficulty"`
	Requisition int       `json:"requisition"`
	Samples     int       `json:"samples"`
	Players     []string  `json:"players"`
	CompletedAt time.Time `json:"completedAt"`
}

// Log persists run records through a KV store. Storage failures are
// logged and reported as sentinel returns, never propagated.
type Log struct {
	store storage.KV
	log   *zap.Logger
}

func NewLog(store storage.KV, log *zap.Logger) *Log {
	return &Log{store: store, log: log}
}

// Add prepends a record, evicting beyond MaxRuns. Returns false when
// the record could not be persisted.
func (l *Log) Add(ctx context.Context, rec RunRecord) bool {
	runs := l.All(ctx)
	runs = append([]RunRecord{rec}, runs...)
	if len(runs) > MaxRuns {
		runs = runs[:MaxRuns]
	}

	data, err := json.Marshal(runs)
	if err != nil {
		l.log.Error("marshal run history", zap.Error(err))
		return false
	}
	if err := l.store.Put(ctx, storageKey, data); err != nil {
		l.log.Error("persist run history", zap.Error(err))
		return false
	}
	return true
}

// All returns the stored records, newest first. Missing or unreadable
// history degrades to an empty list.
func (l *Log) All(ctx context.Context) []RunRecord {
	data, err := l.store.Get(ctx, storageKey)
	if errors.Is(err, storage.ErrNotFound) {
		return []RunRecord{}
	}
	if err != nil {
		l.log.Error("load run history", zap.Error(err))
		return []RunRecord{}
	}

	var runs []RunRecord
	if err := json.Unmarshal(data, &runs); err != nil {
		l.log.Error("decode run history", zap.Error(err))
		return []RunRecord{}
	}
	return runs
}

// Clear wipes the log. Returns false on storage failure.
func (l *Log) Clear(ctx context.Context) bool {
	if err := l.store.Delete(ctx, storageKey); err != nil {
		l.log.Error("clear run history", zap.Error(err))
		return false
	}
	return true
}
