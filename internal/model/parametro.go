package model

// Parametro names a group of classification rules (Formulas): state codes,
// period codes, activity codes, etc. Administrator-maintained reference
// data, never mutated by end-user workflows.
type Parametro struct {
	ID          uint   `gorm:"primaryKey"`
	Nombre      string `gorm:"size:100;not null;uniqueIndex:idx_tipo_nombre"`
	Descripcion *string
	Tipo        string `gorm:"size:20;not null;uniqueIndex:idx_tipo_nombre"`

	Formulas []Formula `gorm:"foreignKey:ParametroID;constraint:OnDelete:CASCADE"`
}

func (Parametro) TableName() string { return "parametros" }
