package tests

import (
	"context"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/Jaimelll/procesos/internal/model"
	"github.com/Jaimelll/procesos/internal/service"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func armarTableroService(procesoRepo *stubProcesoRepo, eventoRepo *stubEventoRepo) service.TableroService {
	catalogoSvc := service.NewCatalogoService(&stubCatalogoRepo{filas: reglasPrueba()})
	return service.NewTableroService(procesoRepo, eventoRepo, catalogoSvc, nil, cfgPrueba())
}

func TestResumenUsaDireccionMasNumerosa(t *testing.T) {
	procesoRepo := newStubProcesoRepo()
	eventoRepo := newStubEventoRepo()
	svc := armarTableroService(procesoRepo, eventoRepo)
	ctx := context.Background()

	require.NoError(t, procesoRepo.Create(ctx, &model.Proceso{ID: 1, Numero: 1, Direccion: strPtr("Logística")}))
	require.NoError(t, procesoRepo.Create(ctx, &model.Proceso{ID: 2, Numero: 2, Direccion: strPtr("Logística")}))
	require.NoError(t, procesoRepo.Create(ctx, &model.Proceso{ID: 3, Numero: 3, Direccion: strPtr("Abastecimiento")}))

	out, err := svc.Resumen(ctx, "")
	require.NoError(t, err)

	assert.Equal(t, "Logística", out.Direccion)
	assert.Equal(t, []string{"Logística", "Abastecimiento"}, out.Direcciones)
	assert.Len(t, out.Timelines, 2)
	// Los rollups cubren todo el portafolio, no solo la dirección elegida.
	require.Len(t, out.PorDireccion, 2)
}

func TestResumenDireccionExplicita(t *testing.T) {
	procesoRepo := newStubProcesoRepo()
	eventoRepo := newStubEventoRepo()
	svc := armarTableroService(procesoRepo, eventoRepo)
	ctx := context.Background()

	require.NoError(t, procesoRepo.Create(ctx, &model.Proceso{ID: 1, Numero: 1, Direccion: strPtr("Logística")}))
	require.NoError(t, procesoRepo.Create(ctx, &model.Proceso{ID: 2, Numero: 2, Direccion: strPtr("Abastecimiento")}))
	require.NoError(t, eventoRepo.Create(ctx, &model.Evento{ProcesoID: 2, Acti: intPtr(1), Fecha: dia("2024-01-10")}))

	out, err := svc.Resumen(ctx, "Abastecimiento")
	require.NoError(t, err)

	assert.Equal(t, "Abastecimiento", out.Direccion)
	require.Len(t, out.Timelines, 1)
	assert.Equal(t, "Requerimiento", out.Timelines[0].EstadoActual)
}

func TestResumenEtiquetaTruncada(t *testing.T) {
	procesoRepo := newStubProcesoRepo()
	svc := armarTableroService(procesoRepo, newStubEventoRepo())
	ctx := context.Background()

	largo := strings.Repeat("a", 50)
	require.NoError(t, procesoRepo.Create(ctx, &model.Proceso{ID: 1, Numero: 7, Nombre: &largo, Direccion: strPtr("Logística")}))

	out, err := svc.Resumen(ctx, "Logística")
	require.NoError(t, err)

	require.Len(t, out.Timelines, 1)
	assert.Equal(t, "7 - "+strings.Repeat("a", 32)+"...", out.Timelines[0].Etiqueta)
}

func TestResumenEtiquetaConAcentosNoRompeUTF8(t *testing.T) {
	procesoRepo := newStubProcesoRepo()
	svc := armarTableroService(procesoRepo, newStubEventoRepo())
	ctx := context.Background()

	// 40 runas multibyte: el corte debe contar runas, no bytes.
	largo := strings.Repeat("Í", 40)
	require.NoError(t, procesoRepo.Create(ctx, &model.Proceso{ID: 1, Numero: 3, Nombre: &largo, Direccion: strPtr("Logística")}))

	out, err := svc.Resumen(ctx, "Logística")
	require.NoError(t, err)

	require.Len(t, out.Timelines, 1)
	etiqueta := out.Timelines[0].Etiqueta
	assert.True(t, utf8.ValidString(etiqueta))
	assert.Equal(t, "3 - "+strings.Repeat("Í", 32)+"...", etiqueta)
}

func TestResumenAgregaMontosPorMercado(t *testing.T) {
	procesoRepo := newStubProcesoRepo()
	svc := armarTableroService(procesoRepo, newStubEventoRepo())
	ctx := context.Background()

	require.NoError(t, procesoRepo.Create(ctx, &model.Proceso{ID: 1, Numero: 1, Nombre: strPtr("RE-001"), Estimado: decPtr("100.00"), Direccion: strPtr("Logística")}))
	require.NoError(t, procesoRepo.Create(ctx, &model.Proceso{ID: 2, Numero: 2, Nombre: strPtr("ABC-002"), Estimado: decPtr("50.00"), Direccion: strPtr("Logística")}))

	out, err := svc.Resumen(ctx, "")
	require.NoError(t, err)

	require.Len(t, out.PorMercado, 2)
	assert.Equal(t, "Extranjero", out.PorMercado[0].Clave)
	assert.True(t, out.PorMercado[0].Monto.Equal(decimal.RequireFromString("100")))
	assert.Equal(t, "Nacional", out.PorMercado[1].Clave)

	require.Len(t, out.MontoPorGrupo, 2)
	assert.Equal(t, "100.00 PEN", out.MontoPorGrupo[0].Monto)
	assert.Equal(t, "50.00 PEN", out.MontoPorGrupo[1].Monto)
}

func TestResumenSinProcesos(t *testing.T) {
	svc := armarTableroService(newStubProcesoRepo(), newStubEventoRepo())

	out, err := svc.Resumen(context.Background(), "")
	require.NoError(t, err)

	assert.Empty(t, out.Direccion)
	assert.Empty(t, out.Timelines)
}
