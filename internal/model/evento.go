package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Evento is a dated milestone belonging to exactly one Proceso.
// Deleting the Proceso deletes its Eventos (cascade).
type Evento struct {
	ID        uint `gorm:"primaryKey"`
	ProcesoID uint `gorm:"not null;index"`

	// Actividad is the legacy free-text label; Acti supersedes it as the
	// classification code resolved against the catálogo. Acti values with
	// no matching Formula row are tolerated ("unclassified").
	Actividad *string `gorm:"size:100"`
	Acti      *int

	Documento *string   `gorm:"size:100"`
	Fecha     time.Time `gorm:"not null;index"`
	Situacion *string
	Importe   decimal.Decimal `gorm:"type:decimal(10,2);default:0"`
	CreadoEn  time.Time       `gorm:"autoCreateTime"`

	Proceso *Proceso `gorm:"foreignKey:ProcesoID"`
}

func (Evento) TableName() string { return "eventos" }
