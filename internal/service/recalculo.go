package service

import (
	"context"

	"github.com/Jaimelll/procesos/internal/model"
	"github.com/Jaimelll/procesos/internal/worker"
)

// Recalculador is the slice of the job dispatcher the services need:
// enqueue a dashboard recalculation for one proceso.
type Recalculador interface {
	EnqueueRecalculo(ctx context.Context, payload worker.RecalculoPayload) error
}

var _ Recalculador = (*worker.Dispatcher)(nil)

// encolarRecalculo enqueues the async dashboard refresh after a mutation.
// Best-effort fire & forget: a lost job only means a stale cache until TTL.
func encolarRecalculo(ctx context.Context, d Recalculador, proceso *model.Proceso) {
	if d == nil {
		return
	}
	direccion := ""
	if proceso.Direccion != nil {
		direccion = *proceso.Direccion
	}
	_ = d.EnqueueRecalculo(ctx, worker.RecalculoPayload{
		ProcesoID: proceso.ID,
		Direccion: direccion,
	})
}
