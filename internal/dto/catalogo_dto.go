package dto

// ─── Parametro ───────────────────────────────────────────────────────────────

type CrearParametroRequest struct {
	Nombre      string  `json:"nombre" validate:"required,max=100"`
	Descripcion *string `json:"descripcion"`
	Tipo        string  `json:"tipo"   validate:"required,max=20"`
}

type ParametroResponse struct {
	ID          uint    `json:"id"`
	Nombre      string  `json:"nombre"`
	Descripcion *string `json:"descripcion"`
	Tipo        string  `json:"tipo"`
}

// ─── Formula ─────────────────────────────────────────────────────────────────

type CrearFormulaRequest struct {
	ParametroID uint    `json:"parametro_id" validate:"required"`
	Nombre      string  `json:"nombre"       validate:"required,max=100"`
	Descripcion *string `json:"descripcion"`
	Orden       int     `json:"orden"`
	Obs         *string `json:"obs"          validate:"omitempty,max=255"`
	Cantidad    *int    `json:"cantidad"`
	Numero      *int    `json:"numero"`
	Acti        *string `json:"acti"         validate:"omitempty,max=50"`
	Respon      *string `json:"respon"       validate:"omitempty,max=100"`
	Respon2     *string `json:"respon2"      validate:"omitempty,max=100"`
}

type FormulaResponse struct {
	ID          uint    `json:"id"`
	ParametroID uint    `json:"parametro_id"`
	Nombre      string  `json:"nombre"`
	Descripcion *string `json:"descripcion"`
	Orden       int     `json:"orden"`
	Obs         *string `json:"obs"`
	Cantidad    *int    `json:"cantidad"`
	Numero      *int    `json:"numero"`
	Acti        *string `json:"acti"`
	Respon      *string `json:"respon"`
	Respon2     *string `json:"respon2"`
}
