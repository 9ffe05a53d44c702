package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Proceso is a tracked procurement case. Its lifecycle is recorded as
// Eventos; the current state is never stored here but derived from the
// event history against the catálogo (see internal/timeline and
// internal/status). Estado below is only the free-text snapshot imported
// from the legacy spreadsheet.
type Proceso struct {
	ID           uint    `gorm:"primaryKey"`
	Numero       int     `gorm:"uniqueIndex;not null"`
	Nomenclatura *string `gorm:"uniqueIndex"`
	Nombre       *string `gorm:"uniqueIndex"`
	Descripcion  *string
	Moneda       string           `gorm:"size:10;default:'PEN'"`
	Cambio       decimal.Decimal  `gorm:"type:decimal(10,4);default:1"`
	Previsto     *decimal.Decimal `gorm:"type:decimal(12,2)"`
	Estimado     *decimal.Decimal `gorm:"type:decimal(12,2)"`
	Expediente   *string          `gorm:"size:100"`

	// Periodo and Convocado store the `orden` of a Formula row, not its
	// primary key. Resolution is by rank-equality against the catálogo
	// (soft reference: deleting the Formula row only orphans the value,
	// which degrades to "not specified").
	Periodo      *int
	Convocado    *int
	Convocatoria int `gorm:"default:0"`

	// DerivadoID links a process spawned from another one (re-convocation).
	DerivadoID *uint
	Derivado   *Proceso `gorm:"foreignKey:DerivadoID"`

	Direccion              *string `gorm:"size:50;index"`
	Grupo                  *string `gorm:"size:100"`
	Obtencion              *string `gorm:"size:100"`
	CantItems              *int
	CantUnidades           *int
	Estado                 *string `gorm:"size:100"`
	FechaInicio            *time.Time
	EspecialistaUare       *string `gorm:"size:100"`
	AcotacionesAdicionales *string
	CreadoEn               time.Time `gorm:"autoCreateTime"`

	Eventos []Evento `gorm:"foreignKey:ProcesoID;constraint:OnDelete:CASCADE"`
}

func (Proceso) TableName() string { return "procesos" }
