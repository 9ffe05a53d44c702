// Package catalogo gives read access to the Parametro/Formula rule tables.
// The tables act as a soft schema: integer codes on events and processes are
// interpreted against them at runtime instead of against a fixed enum, so the
// classification rules can be edited by administrators without a deploy.
package catalogo

import (
	"sort"

	"github.com/Jaimelll/procesos/internal/model"
)

// Catalogo is the lookup contract consumed by the timeline and status
// engines. Implementations must resolve duplicate codes deterministically
// (first row in insertion order) and report absence instead of erroring:
// callers treat a missing row as "unclassified", never as a failure.
type Catalogo interface {
	// Lookup returns the first Formula in the group whose Cantidad equals code.
	Lookup(grupoID uint, code int) (model.Formula, bool)
	// LookupPorDescripcion matches on the Descripcion text instead of
	// Cantidad. Legacy secondary path kept for the ordering-rank lookup,
	// where call sites compare the code against the description string.
	LookupPorDescripcion(grupoID uint, descripcion string) (model.Formula, bool)
	// LookupPorOrden resolves the soft references stored on a Proceso
	// (Periodo, Convocado hold a Formula Orden, not a primary key). A
	// deleted rule row simply fails to resolve — callers degrade to
	// "not specified".
	LookupPorOrden(grupoID uint, orden int) (model.Formula, bool)
	// ListOrdered returns every row of the group ascending by Orden.
	ListOrdered(grupoID uint) []model.Formula
	// ListNombres returns the distinct display names of the group in Orden
	// order, for filter dropdowns.
	ListNombres(grupoID uint) []string
}

// Snapshot is an immutable in-memory Catalogo built from Formula rows in
// insertion (primary key) order. Safe for concurrent readers.
type Snapshot struct {
	porGrupo map[uint][]model.Formula
}

// NewSnapshot groups rows by ParametroID preserving the order given, which
// must be insertion order for duplicate-code resolution to be deterministic.
func NewSnapshot(filas []model.Formula) *Snapshot {
	s := &Snapshot{porGrupo: make(map[uint][]model.Formula)}
	for _, f := range filas {
		s.porGrupo[f.ParametroID] = append(s.porGrupo[f.ParametroID], f)
	}
	return s
}

func (s *Snapshot) Lookup(grupoID uint, code int) (model.Formula, bool) {
	for _, f := range s.porGrupo[grupoID] {
		if f.Cantidad != nil && *f.Cantidad == code {
			return f, true
		}
	}
	return model.Formula{}, false
}

func (s *Snapshot) LookupPorDescripcion(grupoID uint, descripcion string) (model.Formula, bool) {
	for _, f := range s.porGrupo[grupoID] {
		if f.Descripcion != nil && *f.Descripcion == descripcion {
			return f, true
		}
	}
	return model.Formula{}, false
}

func (s *Snapshot) LookupPorOrden(grupoID uint, orden int) (model.Formula, bool) {
	for _, f := range s.porGrupo[grupoID] {
		if f.Orden == orden {
			return f, true
		}
	}
	return model.Formula{}, false
}

func (s *Snapshot) ListOrdered(grupoID uint) []model.Formula {
	filas := s.porGrupo[grupoID]
	out := make([]model.Formula, len(filas))
	copy(out, filas)
	// Stable: rows sharing an Orden keep their insertion order.
	sort.SliceStable(out, func(i, j int) bool { return out[i].Orden < out[j].Orden })
	return out
}

func (s *Snapshot) ListNombres(grupoID uint) []string {
	vistos := make(map[string]bool)
	var nombres []string
	for _, f := range s.ListOrdered(grupoID) {
		if !vistos[f.Nombre] {
			vistos[f.Nombre] = true
			nombres = append(nombres, f.Nombre)
		}
	}
	return nombres
}

var _ Catalogo = (*Snapshot)(nil)
