package worker

import (
	"context"
	"encoding/json"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

// TableroCachePrefix namespaces the cached dashboard snapshots in Redis.
// One key per dirección plus the default (empty dirección) key.
const TableroCachePrefix = "tablero:"

// RecalculoWorker reacts to event mutations: it drops the dashboard cache
// entries that covered the changed proceso so the next request rebuilds
// them from a fresh derivation.
type RecalculoWorker struct {
	rdb *redis.Client
}

func NewRecalculoWorker(rdb *redis.Client) *RecalculoWorker {
	return &RecalculoWorker{rdb: rdb}
}

func (w *RecalculoWorker) Process(ctx context.Context, raw json.RawMessage) error {
	var payload RecalculoPayload
	if err := json.Unmarshal(raw, &payload); err != nil {
		return err
	}

	// The default dashboard (no dirección selected) may also include this
	// proceso, so both keys go.
	keys := []string{TableroCachePrefix + payload.Direccion}
	if payload.Direccion != "" {
		keys = append(keys, TableroCachePrefix)
	}
	if err := w.rdb.Del(ctx, keys...).Err(); err != nil {
		return err
	}

	log.Info().
		Uint("proceso_id", payload.ProcesoID).
		Str("direccion", payload.Direccion).
		Msg("tablero cache invalidated")
	return nil
}
