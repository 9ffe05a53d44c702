// cmd/seedcatalog/main.go — Carga el catálogo de referencia (parámetros y fórmulas).
// Uso: go run cmd/seedcatalog/main.go
package main

import (
	"fmt"
	"log"
	"os"

	"github.com/Jaimelll/procesos/internal/infra"
	"github.com/Jaimelll/procesos/internal/model"

	"gorm.io/gorm"
)

type formulaSeed struct {
	orden    int
	cantidad int
	nombre   string
	descr    string
	respon   string
}

func main() {
	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		dsn = "procesos.db"
	}

	db, err := infra.NewDatabase(dsn)
	if err != nil {
		log.Fatalf("db connect error: %v", err)
	}

	// Grupo 10: estados de proceso. Cantidad es el código de actividad que
	// dispara el estado; respon "2" marca los estados que derivan el índice.
	seedGrupo(db, 10, "estados", []formulaSeed{
		{1, 1, "Requerimiento", "1", "2"},
		{2, 2, "Convocatoria", "2", "2"},
		{3, 3, "Absolución", "3", "2"},
		{4, 4, "Buena Pro", "4", "2"},
		{5, 5, "Consentimiento", "5", "2"},
		{6, 6, "Contrato", "6", "2"},
		{7, 7, "Desierto", "7", ""},
		{8, 8, "Nulo", "8", ""},
	})

	// Grupo 12: rangos de ordenamiento por código de actividad. La
	// descripción guarda el código como texto.
	seedGrupo(db, 12, "orden", []formulaSeed{
		{1, 0, "Requerimiento", "1", ""},
		{2, 0, "Convocatoria", "2", ""},
		{4, 0, "Absolución", "3", ""},
		{6, 0, "Buena Pro", "4", ""},
		{8, 0, "Consentimiento", "5", ""},
		{10, 0, "Contrato", "6", ""},
	})

	// Grupo 13: periodos presupuestales.
	seedGrupo(db, 13, "periodos", []formulaSeed{
		{1, 0, "2024", "2024", ""},
		{2, 0, "2025", "2025", ""},
		{3, 0, "2026", "2026", ""},
	})

	// Grupo 11: restricciones de convocatoria para el listado. La fila con
	// código 2 es la regla por defecto; "Todas" lleva el rango centinela 20
	// que desactiva el filtro por completo.
	seedGrupo(db, 11, "convocatorias", []formulaSeed{
		{20, 1, "Todas", "1", ""},
		{2, 2, "Convocadas", "2", ""},
		{5, 3, "Con Buena Pro", "3", ""},
	})

	fmt.Println("catálogo sembrado")
}

func seedGrupo(db *gorm.DB, id uint, tipo string, seeds []formulaSeed) {
	p := model.Parametro{ID: id, Nombre: tipo, Tipo: tipo}
	if err := db.Where(model.Parametro{Tipo: tipo, Nombre: tipo}).
		Attrs(model.Parametro{ID: id}).
		FirstOrCreate(&p).Error; err != nil {
		log.Fatalf("parametro %s: %v", tipo, err)
	}

	for _, s := range seeds {
		f := model.Formula{
			ParametroID: p.ID,
			Orden:       s.orden,
			Nombre:      s.nombre,
			Descripcion: &s.descr,
		}
		if s.cantidad != 0 {
			f.Cantidad = &s.cantidad
		}
		if s.respon != "" {
			f.Respon = &s.respon
		}
		if err := db.Where(model.Formula{ParametroID: p.ID, Nombre: s.nombre}).
			FirstOrCreate(&f).Error; err != nil {
			log.Fatalf("formula %s: %v", s.nombre, err)
		}
	}
}
