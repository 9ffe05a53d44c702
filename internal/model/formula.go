package model

// Formula is one rule row inside a Parametro group: a code → name/rank
// mapping. Cantidad is the code matched against Evento.Acti; Orden is used
// both for display ordering and, at several call sites, as the surrogate
// value stored in Proceso.Periodo/Convocado. Cantidad uniqueness within a
// group is NOT enforced — lookups resolve duplicates to the first row in
// insertion order.
type Formula struct {
	ID          uint    `gorm:"primaryKey"`
	ParametroID uint    `gorm:"not null;index"`
	Nombre      string  `gorm:"size:100;not null"`
	Descripcion *string
	Orden       int     `gorm:"default:0"`
	Obs         *string `gorm:"size:255"`
	Cantidad    *int
	Numero      *int
	Acti        *string `gorm:"size:50"` // legacy string code
	Respon      *string `gorm:"size:100"`
	Respon2     *string `gorm:"size:100"`

	Parametro *Parametro `gorm:"foreignKey:ParametroID"`
}

func (Formula) TableName() string { return "formulas" }

// EsCalificada reports whether the row counts as a real (terminal or
// qualifying) state for status derivation, as opposed to a transient or
// administrative code.
func (f Formula) EsCalificada() bool {
	return f.Respon != nil && *f.Respon == "2"
}
