package dto

import "github.com/shopspring/decimal"

// ─── Request DTOs ────────────────────────────────────────────────────────────

type CrearEventoRequest struct {
	Actividad *string `json:"actividad" validate:"omitempty,max=100"`
	Acti      *int    `json:"acti"`
	Documento *string `json:"documento" validate:"omitempty,max=100"`
	// Fecha defaults to today when omitted.
	Fecha     *string          `json:"fecha"     validate:"omitempty,datetime=2006-01-02"`
	Situacion *string          `json:"situacion"`
	Importe   *decimal.Decimal `json:"importe"` // nil → 0
}

type ActualizarEventoRequest struct {
	Actividad *string          `json:"actividad" validate:"omitempty,max=100"`
	Acti      *int             `json:"acti"`
	Documento *string          `json:"documento" validate:"omitempty,max=100"`
	Fecha     *string          `json:"fecha"     validate:"omitempty,datetime=2006-01-02"`
	Situacion *string          `json:"situacion"`
	Importe   *decimal.Decimal `json:"importe"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type EventoResponse struct {
	ID        uint            `json:"id"`
	ProcesoID uint            `json:"proceso_id"`
	Actividad *string         `json:"actividad"`
	Acti      *int            `json:"acti"`
	// Estado is the catálogo name Acti resolves to, empty when unclassified.
	Estado    string          `json:"estado,omitempty"`
	Documento *string         `json:"documento"`
	Fecha     string          `json:"fecha"`
	Situacion *string         `json:"situacion"`
	Importe   decimal.Decimal `json:"importe"`
}
