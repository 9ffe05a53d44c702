// Package report groups procesos by a partition key and rolls up counts and
// monetary sums for the dashboard charts (pie por mercado, totales por
// dirección).
package report

import (
	"strings"

	"github.com/Jaimelll/procesos/internal/model"
	"github.com/Jaimelll/procesos/internal/timeline"

	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
)

// Grupo is one rollup row: how many procesos share the key and the sum of
// the chosen monetary field over them.
type Grupo struct {
	Clave    string          `json:"clave"`
	Cantidad int             `json:"cantidad"`
	Monto    decimal.Decimal `json:"monto"`
}

// KeyFn extracts the partition key of a proceso.
type KeyFn func(*model.Proceso) string

// MontoFn extracts the monetary value to sum. The value may arrive in
// heterogeneous representations (imports from spreadsheets produce strings
// and floats); AggregateBy normalizes them.
type MontoFn func(*model.Proceso) any

// AggregateBy rolls procesos up by keyFn in first-appearance order. Absent
// montos count as zero; unparseable ones are skipped with a warning — a
// dirty value must never take down a report.
func AggregateBy(procesos []model.Proceso, keyFn KeyFn, montoFn MontoFn) []Grupo {
	indice := make(map[string]int)
	var grupos []Grupo

	for i := range procesos {
		p := &procesos[i]
		clave := keyFn(p)

		pos, ok := indice[clave]
		if !ok {
			pos = len(grupos)
			indice[clave] = pos
			grupos = append(grupos, Grupo{Clave: clave, Monto: decimal.Zero})
		}
		grupos[pos].Cantidad++

		monto, ok := aDecimal(montoFn(p))
		if !ok {
			log.Warn().
				Uint("proceso_id", p.ID).
				Str("clave", clave).
				Msg("monto no numérico ignorado en agregación")
			continue
		}
		grupos[pos].Monto = grupos[pos].Monto.Add(monto)
	}
	return grupos
}

// PorMercado partitions by the Nacional/Extranjero tag.
func PorMercado(p *model.Proceso) string { return timeline.Mercado(p) }

// PorDireccion partitions by organizational direction; procesos without one
// fall into a single unspecified bucket.
func PorDireccion(p *model.Proceso) string {
	if p.Direccion == nil || *p.Direccion == "" {
		return "Sin dirección"
	}
	return *p.Direccion
}

// PorNombre partitions by display name.
func PorNombre(p *model.Proceso) string {
	if p.Nombre == nil {
		return ""
	}
	return *p.Nombre
}

// Estimado and Previsto are the usual MontoFn choices.
func Estimado(p *model.Proceso) any { return p.Estimado }
func Previsto(p *model.Proceso) any { return p.Previsto }

// aDecimal normalizes the numeric representations seen in imported data.
// nil counts as zero; anything unparseable reports false.
func aDecimal(v any) (decimal.Decimal, bool) {
	switch n := v.(type) {
	case nil:
		return decimal.Zero, true
	case decimal.Decimal:
		return n, true
	case *decimal.Decimal:
		if n == nil {
			return decimal.Zero, true
		}
		return *n, true
	case float64:
		return decimal.NewFromFloat(n), true
	case float32:
		return decimal.NewFromFloat32(n), true
	case int:
		return decimal.NewFromInt(int64(n)), true
	case int64:
		return decimal.NewFromInt(n), true
	case string:
		if strings.TrimSpace(n) == "" {
			return decimal.Zero, true
		}
		d, err := decimal.NewFromString(strings.TrimSpace(n))
		if err != nil {
			return decimal.Zero, false
		}
		return d, true
	}
	return decimal.Zero, false
}
