package status

import (
	"testing"
	"time"

	"github.com/Jaimelll/procesos/internal/catalogo"
	"github.com/Jaimelll/procesos/internal/model"
	"github.com/Jaimelll/procesos/internal/timeline"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	grupoCalificados = 10
	grupoOrden       = 12
)

func intPtr(n int) *int       { return &n }
func strPtr(s string) *string { return &s }

func decPtr(s string) *decimal.Decimal {
	d := decimal.RequireFromString(s)
	return &d
}

func fecha(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}

// catalogoPrueba builds the three rule groups the derivation touches:
// states (respon "2" qualifies), ordering ranks keyed by descripcion, and
// the convocation restriction group with its default rule.
func catalogoPrueba() catalogo.Catalogo {
	return catalogo.NewSnapshot([]model.Formula{
		{ID: 1, ParametroID: grupoCalificados, Nombre: "Requerimiento", Cantidad: intPtr(1), Respon: strPtr("2")},
		{ID: 2, ParametroID: grupoCalificados, Nombre: "Convocatoria", Cantidad: intPtr(2), Respon: strPtr("2")},
		{ID: 3, ParametroID: grupoCalificados, Nombre: "Nota interna", Cantidad: intPtr(3), Respon: strPtr("1")},

		{ID: 4, ParametroID: grupoOrden, Nombre: "Requerimiento", Descripcion: strPtr("1"), Orden: 1},
		{ID: 5, ParametroID: grupoOrden, Nombre: "Convocatoria", Descripcion: strPtr("2"), Orden: 3},

		{ID: 6, ParametroID: GrupoConvocatoriaDefecto, Nombre: "Convocadas", Cantidad: intPtr(CodigoConvocatoriaDefecto), Orden: 5},
	})
}

func derivador() Derivador {
	return Derivador{Catalogo: catalogoPrueba(), GrupoCalificados: grupoCalificados, GrupoOrden: grupoOrden}
}

func evento(id uint, dia string, acti *int) model.Evento {
	return model.Evento{ID: id, Fecha: fecha(dia), Acti: acti}
}

// ── Derivar ───────────────────────────────────────────────────────────────────

func TestDerivarSinEventos(t *testing.T) {
	est := derivador().Derivar(nil, fecha("2024-03-15"))
	assert.Equal(t, timeline.SinEstado, est.Nombre)
	assert.Equal(t, 0, est.Rango)
}

func TestDerivarUltimoEventoCalificado(t *testing.T) {
	eventos := []model.Evento{
		evento(1, "2024-01-10", intPtr(1)),
		evento(2, "2024-02-05", intPtr(2)),
	}

	est := derivador().Derivar(eventos, fecha("2024-03-15"))
	assert.Equal(t, "Convocatoria", est.Nombre)
	assert.Equal(t, 3, est.Rango)
}

func TestDerivarIgnoraFilasNoCalificadas(t *testing.T) {
	// El código 3 existe en el catálogo pero su respon no es "2": no deriva
	// estado, aunque como último evento sí define el rango (si tuviera fila
	// de orden; aquí no la tiene, rango 0).
	eventos := []model.Evento{
		evento(1, "2024-01-10", intPtr(1)),
		evento(2, "2024-02-05", intPtr(3)),
	}

	est := derivador().Derivar(eventos, fecha("2024-03-15"))
	assert.Equal(t, "Requerimiento", est.Nombre)
	assert.Equal(t, 0, est.Rango)
}

func TestDerivarExcluyeEventosFuturos(t *testing.T) {
	eventos := []model.Evento{
		evento(1, "2024-01-10", intPtr(1)),
		evento(2, "2024-06-01", intPtr(2)), // posterior a hoy
	}

	est := derivador().Derivar(eventos, fecha("2024-03-15"))
	assert.Equal(t, "Requerimiento", est.Nombre)
}

func TestDerivarIndependienteDelOrden(t *testing.T) {
	a := []model.Evento{
		evento(2, "2024-02-05", intPtr(2)),
		evento(1, "2024-01-10", intPtr(1)),
	}
	b := []model.Evento{
		evento(1, "2024-01-10", intPtr(1)),
		evento(2, "2024-02-05", intPtr(2)),
	}

	hoy := fecha("2024-03-15")
	assert.Equal(t, derivador().Derivar(b, hoy), derivador().Derivar(a, hoy))
}

// ── Ordenar ───────────────────────────────────────────────────────────────────

func procesosOrdenables() []model.Proceso {
	return []model.Proceso{
		{ID: 1, Numero: 3, Nombre: strPtr("Carbón"), Estimado: decPtr("300")},
		{ID: 2, Numero: 1, Nombre: nil, Estimado: nil},
		{ID: 3, Numero: 2, Nombre: strPtr("Acero"), Estimado: decPtr("100")},
	}
}

func TestOrdenarNulosAlFinalAscendente(t *testing.T) {
	ps := procesosOrdenables()
	Ordenar(ps, "nombre", false)

	require.Len(t, ps, 3)
	assert.Equal(t, "Acero", *ps[0].Nombre)
	assert.Equal(t, "Carbón", *ps[1].Nombre)
	assert.Nil(t, ps[2].Nombre)
}

func TestOrdenarNulosAlFinalDescendente(t *testing.T) {
	ps := procesosOrdenables()
	Ordenar(ps, "estimado", true)

	assert.True(t, ps[0].Estimado.Equal(decimal.RequireFromString("300")))
	assert.True(t, ps[1].Estimado.Equal(decimal.RequireFromString("100")))
	assert.Nil(t, ps[2].Estimado)
}

func TestOrdenarCampoDesconocidoNoAltera(t *testing.T) {
	ps := procesosOrdenables()
	Ordenar(ps, "inexistente", false)

	assert.Equal(t, uint(1), ps[0].ID)
	assert.Equal(t, uint(2), ps[1].ID)
	assert.Equal(t, uint(3), ps[2].ID)
}

func TestOrdenarPorNumero(t *testing.T) {
	ps := procesosOrdenables()
	Ordenar(ps, "numero", false)

	assert.Equal(t, 1, ps[0].Numero)
	assert.Equal(t, 3, ps[2].Numero)
}

// ── Filtrar ───────────────────────────────────────────────────────────────────

func sinEstados(uint) string { return timeline.SinEstado }

func TestFiltrarConvocatoriaPorDefecto(t *testing.T) {
	// Sin selección explícita rige la regla por defecto (orden 5 en el
	// catálogo de prueba): solo pasan los procesos con Convocado == 5.
	ps := []model.Proceso{
		{ID: 1, Numero: 1, Convocado: intPtr(5)},
		{ID: 2, Numero: 2, Convocado: intPtr(1)},
		{ID: 3, Numero: 3, Convocado: nil},
	}

	out := derivador().Filtrar(ps, Filtro{}, sinEstados)
	require.Len(t, out, 1)
	assert.Equal(t, uint(1), out[0].ID)
}

func TestFiltrarConvocatoriaTodas(t *testing.T) {
	ps := []model.Proceso{
		{ID: 1, Numero: 1, Convocado: intPtr(5)},
		{ID: 2, Numero: 2, Convocado: nil},
	}

	out := derivador().Filtrar(ps, Filtro{Convocado: intPtr(RangoTodos)}, sinEstados)
	assert.Len(t, out, 2)
}

func TestFiltrarConvocatoriaExplicita(t *testing.T) {
	ps := []model.Proceso{
		{ID: 1, Numero: 1, Convocado: intPtr(5)},
		{ID: 2, Numero: 2, Convocado: intPtr(1)},
	}

	out := derivador().Filtrar(ps, Filtro{Convocado: intPtr(1)}, sinEstados)
	require.Len(t, out, 1)
	assert.Equal(t, uint(2), out[0].ID)
}

func TestFiltrarOpcionTodasDesactivaElFiltro(t *testing.T) {
	// Réplica del grupo 11 de referencia: "Todas" lleva el rango centinela,
	// las demás filas un rango real. Elegir "Todas" (su rango) debe mostrar
	// todo; sin selección rige la regla por defecto (código 2 → rango 2).
	d := Derivador{
		Catalogo: catalogo.NewSnapshot([]model.Formula{
			{ID: 1, ParametroID: GrupoConvocatoriaDefecto, Nombre: "Todas", Cantidad: intPtr(1), Orden: RangoTodos},
			{ID: 2, ParametroID: GrupoConvocatoriaDefecto, Nombre: "Convocadas", Cantidad: intPtr(2), Orden: 2},
			{ID: 3, ParametroID: GrupoConvocatoriaDefecto, Nombre: "Con Buena Pro", Cantidad: intPtr(3), Orden: 5},
		}),
		GrupoCalificados: grupoCalificados,
		GrupoOrden:       grupoOrden,
	}
	ps := []model.Proceso{
		{ID: 1, Numero: 1, Convocado: intPtr(2)},
		{ID: 2, Numero: 2, Convocado: intPtr(5)},
		{ID: 3, Numero: 3, Convocado: nil},
	}

	out := d.Filtrar(ps, Filtro{Convocado: intPtr(RangoTodos)}, sinEstados)
	assert.Len(t, out, 3)

	out = d.Filtrar(ps, Filtro{}, sinEstados)
	require.Len(t, out, 1)
	assert.Equal(t, uint(1), out[0].ID)
}

func TestFiltrarDefectoIrresolubleMuestraTodo(t *testing.T) {
	// Catálogo sin la regla (11, 2): el filtro por defecto se desactiva.
	d := Derivador{Catalogo: catalogo.NewSnapshot(nil), GrupoCalificados: grupoCalificados, GrupoOrden: grupoOrden}
	ps := []model.Proceso{
		{ID: 1, Numero: 1, Convocado: nil},
		{ID: 2, Numero: 2, Convocado: intPtr(9)},
	}

	out := d.Filtrar(ps, Filtro{}, sinEstados)
	assert.Len(t, out, 2)
}

func TestFiltrarTexto(t *testing.T) {
	ps := []model.Proceso{
		{ID: 1, Numero: 1, Convocado: intPtr(5), Nombre: strPtr("Compra de acero")},
		{ID: 2, Numero: 2, Convocado: intPtr(5), Descripcion: strPtr("Mantenimiento ACERO laminado")},
		{ID: 3, Numero: 3, Convocado: intPtr(5), Nombre: strPtr("Carbón")},
	}

	out := derivador().Filtrar(ps, Filtro{Texto: "acero"}, sinEstados)
	assert.Len(t, out, 2)
}

func TestFiltrarMonto(t *testing.T) {
	ps := []model.Proceso{
		{ID: 1, Numero: 1, Convocado: intPtr(5), Estimado: decPtr("1500")},
		{ID: 2, Numero: 2, Convocado: intPtr(5), Estimado: decPtr("500")},
		{ID: 3, Numero: 3, Convocado: intPtr(5)}, // sin estimado: nunca pasa
	}
	monto := decimal.RequireFromString("1000")

	out := derivador().Filtrar(ps, Filtro{Monto: &monto, MontoOp: OpMayor}, sinEstados)
	require.Len(t, out, 1)
	assert.Equal(t, uint(1), out[0].ID)

	out = derivador().Filtrar(ps, Filtro{Monto: &monto, MontoOp: OpMenor}, sinEstados)
	require.Len(t, out, 1)
	assert.Equal(t, uint(2), out[0].ID)
}

func TestFiltrarPorEstadoDerivado(t *testing.T) {
	ps := []model.Proceso{
		{ID: 1, Numero: 1, Convocado: intPtr(5)},
		{ID: 2, Numero: 2, Convocado: intPtr(5)},
	}
	estados := map[uint]string{1: "Convocatoria", 2: "Requerimiento"}
	estadoDe := func(id uint) string { return estados[id] }

	out := derivador().Filtrar(ps, Filtro{Estado: "Convocatoria"}, estadoDe)
	require.Len(t, out, 1)
	assert.Equal(t, uint(1), out[0].ID)
}
