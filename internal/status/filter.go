package status

import (
	"strings"

	"github.com/Jaimelll/procesos/internal/model"

	"github.com/shopspring/decimal"
)

// Monto comparison operators accepted by Filtro.MontoOp.
const (
	OpMayor = "gt"
	OpMenor = "lt"
	OpIgual = "eq"
)

// RangoTodos is the sentinel Orden meaning "no convocation restriction".
// A Formula row carrying this rank disables the convocation filter entirely.
const RangoTodos = 20

// Defaults for the convocation filter when the caller selects nothing: the
// rule at (grupo 11, código 2) decides which convocation is shown by
// default. Hardcoded in the legacy list views; kept as named constants.
const (
	GrupoConvocatoriaDefecto  = 11
	CodigoConvocatoriaDefecto = 2
)

// Filtro is the set of independent narrowing predicates for a list view.
// All active predicates apply conjunctively, so the outcome is independent
// of evaluation order.
type Filtro struct {
	// Texto matches case-insensitively against nombre, nomenclatura and
	// descripcion.
	Texto string
	// Monto restricts on Estimado with MontoOp (gt, lt, eq).
	Monto   *decimal.Decimal
	MontoOp string
	// Estado restricts to procesos whose derived current state equals it.
	Estado string
	// Convocado, when set, restricts to procesos whose Convocado soft
	// reference equals the Orden of the selected rule row. RangoTodos
	// disables the restriction. When nil, the default rule at
	// (GrupoConvocatoriaDefecto, CodigoConvocatoriaDefecto) applies.
	Convocado *int
}

// Filtrar applies f over procesos. estadoDe supplies each proceso's derived
// current state (typically a closure over a precomputed Estado map); it is
// only consulted when f.Estado is set. The convocation default is resolved
// through d's catálogo.
func (d Derivador) Filtrar(procesos []model.Proceso, f Filtro, estadoDe func(procesoID uint) string) []model.Proceso {
	convocado, filtrarConvocado := d.rangoConvocado(f)

	out := make([]model.Proceso, 0, len(procesos))
	for _, p := range procesos {
		if f.Texto != "" && !coincideTexto(&p, f.Texto) {
			continue
		}
		if f.Monto != nil && !coincideMonto(&p, *f.Monto, f.MontoOp) {
			continue
		}
		if f.Estado != "" && estadoDe(p.ID) != f.Estado {
			continue
		}
		if filtrarConvocado && (p.Convocado == nil || *p.Convocado != convocado) {
			continue
		}
		out = append(out, p)
	}
	return out
}

// rangoConvocado resolves the convocation restriction: the caller's explicit
// rank, or the default rule's Orden. RangoTodos (explicit or resolved from
// the default rule) means "show all". An unresolvable default also means
// "show all" — a missing rule row never breaks listing.
func (d Derivador) rangoConvocado(f Filtro) (rango int, activo bool) {
	if f.Convocado != nil {
		if *f.Convocado == RangoTodos {
			return 0, false
		}
		return *f.Convocado, true
	}
	fila, ok := d.Catalogo.Lookup(GrupoConvocatoriaDefecto, CodigoConvocatoriaDefecto)
	if !ok || fila.Orden == RangoTodos {
		return 0, false
	}
	return fila.Orden, true
}

func coincideTexto(p *model.Proceso, texto string) bool {
	t := strings.ToLower(texto)
	for _, campo := range []*string{p.Nombre, p.Nomenclatura, p.Descripcion} {
		if campo != nil && strings.Contains(strings.ToLower(*campo), t) {
			return true
		}
	}
	return false
}

func coincideMonto(p *model.Proceso, monto decimal.Decimal, op string) bool {
	if p.Estimado == nil {
		return false
	}
	switch op {
	case OpMayor:
		return p.Estimado.GreaterThan(monto)
	case OpMenor:
		return p.Estimado.LessThan(monto)
	case OpIgual:
		return p.Estimado.Equal(monto)
	}
	return true
}
