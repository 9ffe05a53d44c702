package catalogo

import (
	"testing"

	"github.com/Jaimelll/procesos/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fila(id, grupo uint, nombre, descr string, orden int, cantidad *int) model.Formula {
	var d *string
	if descr != "" {
		d = &descr
	}
	return model.Formula{ID: id, ParametroID: grupo, Nombre: nombre, Descripcion: d, Orden: orden, Cantidad: cantidad}
}

func intPtr(n int) *int { return &n }

func TestLookupFirstMatchWins(t *testing.T) {
	// Two rows share cantidad 5; insertion order decides.
	s := NewSnapshot([]model.Formula{
		fila(1, 10, "Convocatoria", "", 2, intPtr(5)),
		fila(2, 10, "Duplicada", "", 9, intPtr(5)),
	})

	f, ok := s.Lookup(10, 5)
	require.True(t, ok)
	assert.Equal(t, "Convocatoria", f.Nombre)
}

func TestLookupMissingCodeAndGroup(t *testing.T) {
	s := NewSnapshot([]model.Formula{
		fila(1, 10, "Convocatoria", "", 2, intPtr(5)),
		fila(2, 10, "SinCodigo", "", 3, nil),
	})

	_, ok := s.Lookup(10, 99)
	assert.False(t, ok)

	_, ok = s.Lookup(42, 5)
	assert.False(t, ok)
}

func TestLookupPorDescripcion(t *testing.T) {
	s := NewSnapshot([]model.Formula{
		fila(1, 12, "Requerimiento", "1", 1, nil),
		fila(2, 12, "Convocatoria", "2", 2, nil),
	})

	f, ok := s.LookupPorDescripcion(12, "2")
	require.True(t, ok)
	assert.Equal(t, 2, f.Orden)

	_, ok = s.LookupPorDescripcion(12, "7")
	assert.False(t, ok)
}

func TestLookupPorOrden(t *testing.T) {
	s := NewSnapshot([]model.Formula{
		fila(1, 13, "2024", "", 1, nil),
		fila(2, 13, "2025", "", 2, nil),
	})

	f, ok := s.LookupPorOrden(13, 2)
	require.True(t, ok)
	assert.Equal(t, "2025", f.Nombre)

	// Dangling soft reference: resolves to nothing, no error.
	_, ok = s.LookupPorOrden(13, 9)
	assert.False(t, ok)
}

func TestListOrderedIsStableAndDoesNotMutate(t *testing.T) {
	filas := []model.Formula{
		fila(1, 10, "B", "", 3, nil),
		fila(2, 10, "A", "", 1, nil),
		fila(3, 10, "Empate1", "", 2, nil),
		fila(4, 10, "Empate2", "", 2, nil),
	}
	s := NewSnapshot(filas)

	out := s.ListOrdered(10)
	require.Len(t, out, 4)
	assert.Equal(t, "A", out[0].Nombre)
	assert.Equal(t, "Empate1", out[1].Nombre)
	assert.Equal(t, "Empate2", out[2].Nombre)
	assert.Equal(t, "B", out[3].Nombre)

	// Internal order untouched: Lookup still resolves in insertion order.
	f, ok := s.LookupPorOrden(10, 2)
	require.True(t, ok)
	assert.Equal(t, "Empate1", f.Nombre)
}

func TestListNombresDeduplicates(t *testing.T) {
	s := NewSnapshot([]model.Formula{
		fila(1, 11, "Convocadas", "", 2, nil),
		fila(2, 11, "Todas", "", 1, nil),
		fila(3, 11, "Convocadas", "", 5, nil),
	})

	assert.Equal(t, []string{"Todas", "Convocadas"}, s.ListNombres(11))
}
