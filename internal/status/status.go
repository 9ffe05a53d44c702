// Package status batch-derives the current state and sort rank of procesos
// from their event history, and provides the in-memory filtering and sorting
// used by the list views.
package status

import (
	"sort"
	"strconv"
	"time"

	"github.com/Jaimelll/procesos/internal/catalogo"
	"github.com/Jaimelll/procesos/internal/model"
	"github.com/Jaimelll/procesos/internal/timeline"

	"github.com/shopspring/decimal"
)

// Estado is the derived status of one proceso: its display state plus the
// ordering rank used when sorting lists by progress.
type Estado struct {
	Nombre string
	Rango  int
}

// Derivador computes Estados against a fixed catálogo.
//
// Two different groups are involved, on purpose:
//   - GrupoCalificados classifies event codes into states, but only rows
//     flagged respon == "2" count (transient and administrative codes must
//     not surface as a real status).
//   - GrupoOrden maps the LAST event's code to a rank, matched against the
//     row's descripcion text rather than cantidad. Several legacy call
//     sites rely on this description-equals-code path; it is an intentional
//     secondary lookup, not a bug to unify with Lookup.
type Derivador struct {
	Catalogo         catalogo.Catalogo
	GrupoCalificados uint
	GrupoOrden       uint
}

// Derivar returns the current state and rank of one proceso. A proceso with
// no events (or no qualifying events dated on or before hoy) has state
// "Sin estado" and rank 0.
func (d Derivador) Derivar(eventos []model.Evento, hoy time.Time) Estado {
	est := Estado{Nombre: timeline.SinEstado}

	var calificado *model.Evento
	var filaCalificada model.Formula
	var ultimo *model.Evento

	for i := range eventos {
		e := &eventos[i]
		if ultimo == nil || despuesDe(e, ultimo) {
			ultimo = e
		}
		if e.Acti == nil || e.Fecha.After(hoy) {
			continue
		}
		fila, ok := d.Catalogo.Lookup(d.GrupoCalificados, *e.Acti)
		if !ok || !fila.EsCalificada() {
			continue
		}
		if calificado == nil || despuesDe(e, calificado) {
			calificado = e
			filaCalificada = fila
		}
	}

	if calificado != nil {
		est.Nombre = filaCalificada.Nombre
	}
	if ultimo != nil && ultimo.Acti != nil {
		if fila, ok := d.Catalogo.LookupPorDescripcion(d.GrupoOrden, strconv.Itoa(*ultimo.Acti)); ok {
			est.Rango = fila.Orden
		}
	}
	return est
}

// despuesDe orders events by (fecha, id): ties on the same day resolve by id.
func despuesDe(a, b *model.Evento) bool {
	if !a.Fecha.Equal(b.Fecha) {
		return a.Fecha.After(b.Fecha)
	}
	return a.ID > b.ID
}

// Ordenar sorts procesos stably by the named field. Rows whose field is null
// sort strictly after all non-null rows, for BOTH directions; among non-null
// rows descendente inverts the order.
//
// Supported campos: numero, nombre, nomenclatura, estimado, previsto,
// fecha_inicio, convocatoria, direccion. Unknown campos leave the slice
// untouched.
func Ordenar(procesos []model.Proceso, campo string, descendente bool) {
	menor, nulo := comparador(campo)
	if menor == nil {
		return
	}
	sort.SliceStable(procesos, func(i, j int) bool {
		ni, nj := nulo(&procesos[i]), nulo(&procesos[j])
		if ni || nj {
			// Nulls last regardless of direction.
			return !ni && nj
		}
		if descendente {
			return menor(&procesos[j], &procesos[i])
		}
		return menor(&procesos[i], &procesos[j])
	})
}

func comparador(campo string) (menor func(a, b *model.Proceso) bool, nulo func(*model.Proceso) bool) {
	nunca := func(*model.Proceso) bool { return false }
	switch campo {
	case "numero":
		return func(a, b *model.Proceso) bool { return a.Numero < b.Numero }, nunca
	case "nombre":
		return cmpTexto(func(p *model.Proceso) *string { return p.Nombre })
	case "nomenclatura":
		return cmpTexto(func(p *model.Proceso) *string { return p.Nomenclatura })
	case "direccion":
		return cmpTexto(func(p *model.Proceso) *string { return p.Direccion })
	case "estimado":
		return cmpDecimal(func(p *model.Proceso) *decimal.Decimal { return p.Estimado })
	case "previsto":
		return cmpDecimal(func(p *model.Proceso) *decimal.Decimal { return p.Previsto })
	case "fecha_inicio":
		return func(a, b *model.Proceso) bool { return a.FechaInicio.Before(*b.FechaInicio) },
			func(p *model.Proceso) bool { return p.FechaInicio == nil }
	case "convocatoria":
		return func(a, b *model.Proceso) bool { return a.Convocatoria < b.Convocatoria }, nunca
	}
	return nil, nil
}

func cmpTexto(campo func(*model.Proceso) *string) (func(a, b *model.Proceso) bool, func(*model.Proceso) bool) {
	return func(a, b *model.Proceso) bool { return *campo(a) < *campo(b) },
		func(p *model.Proceso) bool { return campo(p) == nil }
}

func cmpDecimal(campo func(*model.Proceso) *decimal.Decimal) (func(a, b *model.Proceso) bool, func(*model.Proceso) bool) {
	return func(a, b *model.Proceso) bool { return campo(a).LessThan(*campo(b)) },
		func(p *model.Proceso) bool { return campo(p) == nil }
}
