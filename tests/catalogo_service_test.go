package tests

import (
	"context"
	"testing"

	"github.com/Jaimelll/procesos/internal/dto"
	"github.com/Jaimelll/procesos/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSnapshotSeCachea(t *testing.T) {
	repo := &stubCatalogoRepo{filas: reglasPrueba()}
	svc := service.NewCatalogoService(repo)
	ctx := context.Background()

	snap, err := svc.Snapshot(ctx)
	require.NoError(t, err)

	// Mutar el repo por fuera del servicio no afecta al snapshot cacheado.
	repo.filas = nil
	snap2, err := svc.Snapshot(ctx)
	require.NoError(t, err)
	assert.Same(t, snap, snap2)

	_, ok := snap2.Lookup(10, 1)
	assert.True(t, ok)
}

func TestCrearFormulaRefrescaSnapshot(t *testing.T) {
	repo := &stubCatalogoRepo{filas: reglasPrueba()}
	svc := service.NewCatalogoService(repo)
	ctx := context.Background()

	snap, err := svc.Snapshot(ctx)
	require.NoError(t, err)
	_, ok := snap.Lookup(10, 9)
	require.False(t, ok)

	codigo := 9
	_, err = svc.CrearFormula(ctx, dto.CrearFormulaRequest{
		ParametroID: 10,
		Nombre:      "Adjudicado",
		Cantidad:    &codigo,
	})
	require.NoError(t, err)

	snap, err = svc.Snapshot(ctx)
	require.NoError(t, err)
	fila, ok := snap.Lookup(10, 9)
	require.True(t, ok)
	assert.Equal(t, "Adjudicado", fila.Nombre)
}

func TestNombresDeGrupo(t *testing.T) {
	svc := service.NewCatalogoService(&stubCatalogoRepo{filas: reglasPrueba()})

	nombres, err := svc.Nombres(context.Background(), 10)
	require.NoError(t, err)
	assert.Equal(t, []string{"Requerimiento", "Convocatoria"}, nombres)
}
