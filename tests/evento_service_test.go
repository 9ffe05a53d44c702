package tests

import (
	"context"
	"testing"
	"time"

	"github.com/Jaimelll/procesos/internal/dto"
	"github.com/Jaimelll/procesos/internal/model"
	"github.com/Jaimelll/procesos/internal/service"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func armarEventoService(procesoRepo *stubProcesoRepo, eventoRepo *stubEventoRepo) service.EventoService {
	catalogoSvc := service.NewCatalogoService(&stubCatalogoRepo{filas: reglasPrueba()})
	return service.NewEventoService(eventoRepo, procesoRepo, catalogoSvc, nil, cfgPrueba())
}

func TestCrearEventoAplicaDefaults(t *testing.T) {
	procesoRepo := newStubProcesoRepo()
	eventoRepo := newStubEventoRepo()
	svc := armarEventoService(procesoRepo, eventoRepo)
	ctx := context.Background()

	require.NoError(t, procesoRepo.Create(ctx, &model.Proceso{ID: 1, Numero: 1}))

	resp, err := svc.Crear(ctx, 1, dto.CrearEventoRequest{Actividad: strPtr("nota")})
	require.NoError(t, err)

	// Sin fecha en la solicitud: se asume hoy. Sin importe: cero.
	assert.Equal(t, time.Now().Format("2006-01-02"), resp.Fecha)
	assert.True(t, resp.Importe.Equal(decimal.Zero))
	assert.Empty(t, resp.Estado)
}

func TestCrearEventoResuelveEstado(t *testing.T) {
	procesoRepo := newStubProcesoRepo()
	svc := armarEventoService(procesoRepo, newStubEventoRepo())
	ctx := context.Background()

	require.NoError(t, procesoRepo.Create(ctx, &model.Proceso{ID: 1, Numero: 1}))

	resp, err := svc.Crear(ctx, 1, dto.CrearEventoRequest{
		Acti:  intPtr(2),
		Fecha: strPtr("2024-02-05"),
	})
	require.NoError(t, err)

	assert.Equal(t, "Convocatoria", resp.Estado)
	assert.Equal(t, "2024-02-05", resp.Fecha)
}

func TestCrearEventoCodigoInclasificable(t *testing.T) {
	procesoRepo := newStubProcesoRepo()
	svc := armarEventoService(procesoRepo, newStubEventoRepo())
	ctx := context.Background()

	require.NoError(t, procesoRepo.Create(ctx, &model.Proceso{ID: 1, Numero: 1}))

	resp, err := svc.Crear(ctx, 1, dto.CrearEventoRequest{
		Acti:  intPtr(99),
		Fecha: strPtr("2024-02-05"),
	})
	require.NoError(t, err)
	assert.Empty(t, resp.Estado)
}

func TestCrearEventoProcesoInexistente(t *testing.T) {
	svc := armarEventoService(newStubProcesoRepo(), newStubEventoRepo())

	_, err := svc.Crear(context.Background(), 99, dto.CrearEventoRequest{})
	assert.Error(t, err)
}

func TestCrearEventoFechaInvalida(t *testing.T) {
	procesoRepo := newStubProcesoRepo()
	svc := armarEventoService(procesoRepo, newStubEventoRepo())
	ctx := context.Background()

	require.NoError(t, procesoRepo.Create(ctx, &model.Proceso{ID: 1, Numero: 1}))

	_, err := svc.Crear(ctx, 1, dto.CrearEventoRequest{Fecha: strPtr("05/02/2024")})
	assert.Error(t, err)
}

func TestListarEventosOrdenCronologico(t *testing.T) {
	procesoRepo := newStubProcesoRepo()
	eventoRepo := newStubEventoRepo()
	svc := armarEventoService(procesoRepo, eventoRepo)
	ctx := context.Background()

	require.NoError(t, procesoRepo.Create(ctx, &model.Proceso{ID: 1, Numero: 1}))
	require.NoError(t, eventoRepo.Create(ctx, &model.Evento{ProcesoID: 1, Fecha: dia("2024-02-05")}))
	require.NoError(t, eventoRepo.Create(ctx, &model.Evento{ProcesoID: 1, Fecha: dia("2024-01-10")}))

	out, err := svc.Listar(ctx, 1)
	require.NoError(t, err)

	require.Len(t, out, 2)
	assert.Equal(t, "2024-01-10", out[0].Fecha)
	assert.Equal(t, "2024-02-05", out[1].Fecha)
}

func TestActualizarEvento(t *testing.T) {
	procesoRepo := newStubProcesoRepo()
	eventoRepo := newStubEventoRepo()
	svc := armarEventoService(procesoRepo, eventoRepo)
	ctx := context.Background()

	require.NoError(t, procesoRepo.Create(ctx, &model.Proceso{ID: 1, Numero: 1}))
	require.NoError(t, eventoRepo.Create(ctx, &model.Evento{ID: 5, ProcesoID: 1, Fecha: dia("2024-01-10")}))

	resp, err := svc.Actualizar(ctx, 1, 5, dto.ActualizarEventoRequest{
		Acti:    intPtr(1),
		Importe: decPtr("350.00"),
	})
	require.NoError(t, err)

	assert.Equal(t, "Requerimiento", resp.Estado)
	assert.True(t, resp.Importe.Equal(decimal.RequireFromString("350")))
	assert.Equal(t, "2024-01-10", resp.Fecha)
}

func TestEliminarEventoDeOtroProceso(t *testing.T) {
	procesoRepo := newStubProcesoRepo()
	eventoRepo := newStubEventoRepo()
	svc := armarEventoService(procesoRepo, eventoRepo)
	ctx := context.Background()

	require.NoError(t, procesoRepo.Create(ctx, &model.Proceso{ID: 1, Numero: 1}))
	require.NoError(t, procesoRepo.Create(ctx, &model.Proceso{ID: 2, Numero: 2}))
	require.NoError(t, eventoRepo.Create(ctx, &model.Evento{ID: 5, ProcesoID: 2, Fecha: dia("2024-01-10")}))

	// El evento pertenece al proceso 2: visto desde el proceso 1 no existe.
	assert.Error(t, svc.Eliminar(ctx, 1, 5))
	require.NoError(t, svc.Eliminar(ctx, 2, 5))
}
