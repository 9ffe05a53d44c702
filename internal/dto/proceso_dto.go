package dto

import "github.com/shopspring/decimal"

// ─── Request DTOs ────────────────────────────────────────────────────────────

type CrearProcesoRequest struct {
	Numero                 int              `json:"numero"        validate:"required"`
	Nomenclatura           *string          `json:"nomenclatura"  validate:"omitempty,max=100"`
	Nombre                 *string          `json:"nombre"        validate:"omitempty,max=100"`
	Descripcion            *string          `json:"descripcion"`
	Moneda                 string           `json:"moneda"        validate:"omitempty,len=3"`
	Cambio                 *decimal.Decimal `json:"cambio"`
	Previsto               *decimal.Decimal `json:"previsto"`
	Estimado               *decimal.Decimal `json:"estimado"`
	Expediente             *string          `json:"expediente"`
	Periodo                *int             `json:"periodo"`
	Convocado              *int             `json:"convocado"`
	Convocatoria           int              `json:"convocatoria"  validate:"min=0"`
	DerivadoID             *uint            `json:"derivado_id"`
	Direccion              *string          `json:"direccion"     validate:"omitempty,max=50"`
	Grupo                  *string          `json:"grupo"`
	Obtencion              *string          `json:"obtencion"`
	CantItems              *int             `json:"cant_items"    validate:"omitempty,min=0"`
	CantUnidades           *int             `json:"cant_unidades" validate:"omitempty,min=0"`
	FechaInicio            *string          `json:"fecha_inicio"  validate:"omitempty,datetime=2006-01-02"`
	EspecialistaUare       *string          `json:"especialista_uare"`
	AcotacionesAdicionales *string          `json:"acotaciones_adicionales"`
}

type ActualizarProcesoRequest struct {
	Nomenclatura           *string          `json:"nomenclatura"  validate:"omitempty,max=100"`
	Nombre                 *string          `json:"nombre"        validate:"omitempty,max=100"`
	Descripcion            *string          `json:"descripcion"`
	Moneda                 *string          `json:"moneda"        validate:"omitempty,len=3"`
	Cambio                 *decimal.Decimal `json:"cambio"`
	Previsto               *decimal.Decimal `json:"previsto"`
	Estimado               *decimal.Decimal `json:"estimado"`
	Expediente             *string          `json:"expediente"`
	Periodo                *int             `json:"periodo"`
	Convocado              *int             `json:"convocado"`
	Convocatoria           *int             `json:"convocatoria"  validate:"omitempty,min=0"`
	DerivadoID             *uint            `json:"derivado_id"`
	Direccion              *string          `json:"direccion"     validate:"omitempty,max=50"`
	Grupo                  *string          `json:"grupo"`
	Obtencion              *string          `json:"obtencion"`
	CantItems              *int             `json:"cant_items"    validate:"omitempty,min=0"`
	CantUnidades           *int             `json:"cant_unidades" validate:"omitempty,min=0"`
	FechaInicio            *string          `json:"fecha_inicio"  validate:"omitempty,datetime=2006-01-02"`
	EspecialistaUare       *string          `json:"especialista_uare"`
	AcotacionesAdicionales *string          `json:"acotaciones_adicionales"`
}

// ─── Filter / Pagination ─────────────────────────────────────────────────────

// ProcesoFilter mirrors the legacy list form: free text, a monto condition,
// the derived estado, the convocation selector, and sorting.
type ProcesoFilter struct {
	Texto     string `form:"q"`
	Monto     string `form:"monto"`
	MontoOp   string `form:"monto_op,default=gt" validate:"omitempty,oneof=gt lt eq"`
	Estado    string `form:"estado"`
	Convocado *int   `form:"convocado"`
	Orden     string `form:"orden,default=numero"`
	Dir       string `form:"dir,default=asc"     validate:"omitempty,oneof=asc desc"`
	Page      int    `form:"page,default=1"      validate:"min=1"`
	Limit     int    `form:"limit,default=10"    validate:"min=1,max=100"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type ProcesoResponse struct {
	ID                     uint             `json:"id"`
	Numero                 int              `json:"numero"`
	Nomenclatura           *string          `json:"nomenclatura"`
	Nombre                 *string          `json:"nombre"`
	Descripcion            *string          `json:"descripcion"`
	Moneda                 string           `json:"moneda"`
	Cambio                 decimal.Decimal  `json:"cambio"`
	Previsto               *decimal.Decimal `json:"previsto"`
	Estimado               *decimal.Decimal `json:"estimado"`
	EstimadoFmt            string           `json:"estimado_fmt,omitempty"`
	Expediente             *string          `json:"expediente"`
	Periodo                *string          `json:"periodo"`   // resolved catálogo name
	Convocado              *string          `json:"convocado"` // resolved catálogo name
	Convocatoria           int              `json:"convocatoria"`
	DerivadoID             *uint            `json:"derivado_id"`
	Direccion              *string          `json:"direccion"`
	Grupo                  *string          `json:"grupo"`
	Obtencion              *string          `json:"obtencion"`
	CantItems              *int             `json:"cant_items"`
	CantUnidades           *int             `json:"cant_unidades"`
	FechaInicio            *string          `json:"fecha_inicio"`
	EspecialistaUare       *string          `json:"especialista_uare"`
	AcotacionesAdicionales *string          `json:"acotaciones_adicionales"`
	Mercado                string           `json:"mercado"`
	EstadoActual           string           `json:"estado_actual"`
	Rango                  int              `json:"rango"`
}

type ProcesoListResponse struct {
	Data  []ProcesoResponse `json:"data"`
	Total int               `json:"total"`
	Page  int               `json:"page"`
	Limit int               `json:"limit"`
}
