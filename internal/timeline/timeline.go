// Package timeline turns a proceso's chronological event history into a
// segmented state timeline for the Gantt view: a list of (estado, start
// date, duration) triples plus the current state.
package timeline

import (
	"errors"
	"sort"
	"time"

	"github.com/Jaimelll/procesos/internal/catalogo"
	"github.com/Jaimelll/procesos/internal/model"
)

// SinEstado is the sentinel state for processes with no derivable state.
const SinEstado = "Sin estado"

// ErrFechaRequerida marks a contract violation: an event arrived with a zero
// Fecha. Date ordering is load-bearing for every derivation, so this is
// fatal to the computation instead of being silently defaulted.
var ErrFechaRequerida = errors.New("evento sin fecha")

// Segmento is one contiguous interval during which the proceso stayed in a
// single estado.
type Segmento struct {
	Estado       string    `json:"estado"`
	Inicio       time.Time `json:"inicio"`
	DuracionDias int       `json:"duracion_dias"`
}

// Timeline is the derived state sequence of one proceso.
type Timeline struct {
	EstadoActual string     `json:"estado_actual"`
	Segmentos    []Segmento `json:"segmentos"`
	// Mercado is the Nacional/Extranjero tag derived from the proceso name.
	Mercado string `json:"mercado"`
	// Hoy is the "current date" marker for the chart. Informational only:
	// it never participates in state computation.
	Hoy time.Time `json:"hoy"`
}

// Builder derives timelines against a fixed catálogo and state group.
// GrupoEstados is configuration (which Parametro group classifies event
// codes into states), never hard-coded by callers.
type Builder struct {
	Catalogo     catalogo.Catalogo
	GrupoEstados uint
}

// Build computes the segmented timeline for one proceso.
//
// Events are walked in (fecha, id) order. An event whose Acti does not
// resolve in the catálogo continues the current segment instead of breaking
// it — unclassifiable codes never interrupt timeline continuity. In
// particular an unclassified prefix produces no leading segment: the first
// resolvable event opens segment 1. Segment durations are whole days between
// consecutive segment starts; the final segment closes at the last event's
// date (zero days when it holds a single event).
func (b Builder) Build(proceso *model.Proceso, eventos []model.Evento, hoy time.Time) (*Timeline, error) {
	for _, e := range eventos {
		if e.Fecha.IsZero() {
			return nil, ErrFechaRequerida
		}
	}

	orden := make([]model.Evento, len(eventos))
	copy(orden, eventos)
	sort.SliceStable(orden, func(i, j int) bool {
		if !orden[i].Fecha.Equal(orden[j].Fecha) {
			return orden[i].Fecha.Before(orden[j].Fecha)
		}
		return orden[i].ID < orden[j].ID
	})

	t := &Timeline{
		EstadoActual: SinEstado,
		Mercado:      Mercado(proceso),
		Hoy:          hoy,
	}

	estadoActual := ""
	for _, e := range orden {
		fila, ok := b.resolver(e)
		if !ok {
			continue
		}
		if fila.Nombre == estadoActual {
			continue
		}
		if n := len(t.Segmentos); n > 0 {
			t.Segmentos[n-1].DuracionDias = diasEntre(t.Segmentos[n-1].Inicio, e.Fecha)
		}
		t.Segmentos = append(t.Segmentos, Segmento{Estado: fila.Nombre, Inicio: e.Fecha})
		estadoActual = fila.Nombre
	}

	if n := len(t.Segmentos); n > 0 {
		ultima := orden[len(orden)-1].Fecha
		t.Segmentos[n-1].DuracionDias = diasEntre(t.Segmentos[n-1].Inicio, ultima)
		t.EstadoActual = t.Segmentos[n-1].Estado
	}
	return t, nil
}

func (b Builder) resolver(e model.Evento) (model.Formula, bool) {
	if e.Acti == nil {
		return model.Formula{}, false
	}
	return b.Catalogo.Lookup(b.GrupoEstados, *e.Acti)
}

// diasEntre counts whole days from a to b, ignoring the time of day.
func diasEntre(a, b time.Time) int {
	a = time.Date(a.Year(), a.Month(), a.Day(), 0, 0, 0, 0, time.UTC)
	b = time.Date(b.Year(), b.Month(), b.Day(), 0, 0, 0, 0, time.UTC)
	return int(b.Sub(a).Hours() / 24)
}
