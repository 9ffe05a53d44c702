package dto

import (
	"github.com/Jaimelll/procesos/internal/report"
	"github.com/Jaimelll/procesos/internal/timeline"
)

// TableroResponse feeds the home dashboard: one timeline per proceso of the
// selected dirección (Gantt adapter), plus the pie rollups.
type TableroResponse struct {
	Direccion     string            `json:"direccion"`
	Direcciones   []string          `json:"direcciones"`
	Hoy           string            `json:"hoy"`
	Timelines     []TableroTimeline `json:"timelines"`
	PorMercado    []report.Grupo    `json:"por_mercado"`
	PorDireccion  []report.Grupo    `json:"por_direccion"`
	MontoPorGrupo []MontoFmt        `json:"monto_por_grupo"`
}

type TableroTimeline struct {
	ProcesoID uint   `json:"proceso_id"`
	Numero    int    `json:"numero"`
	Etiqueta  string `json:"etiqueta"`
	timeline.Timeline
}

// MontoFmt carries a pre-formatted monetary label for the chart legends.
type MontoFmt struct {
	Clave string `json:"clave"`
	Monto string `json:"monto"`
}
