package timeline

import (
	"strings"

	"github.com/Jaimelll/procesos/internal/model"
)

// Market segment tags. Every consumer (filtering, partitioning, chart
// selection) must classify through Mercado; the prefix rule lives only here.
const (
	MercadoExtranjero = "Extranjero"
	MercadoNacional   = "Nacional"
)

const prefijoExtranjero = "RE"

// Mercado classifies a proceso by its name prefix: nombres starting with
// "RE" are foreign acquisitions, everything else is domestic.
func Mercado(p *model.Proceso) string {
	if p != nil && p.Nombre != nil && strings.HasPrefix(*p.Nombre, prefijoExtranjero) {
		return MercadoExtranjero
	}
	return MercadoNacional
}
