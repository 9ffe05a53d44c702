package format

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestMoneda(t *testing.T) {
	v := decimal.RequireFromString("1234.5")
	assert.Equal(t, "1,234.50 PEN", Moneda(v, "PEN", "es-PE"))
}

func TestMonedaRedondea(t *testing.T) {
	v := decimal.RequireFromString("10.005")
	assert.Equal(t, "10.01 USD", Moneda(v, "USD", "es-PE"))
}

func TestMonedaLocaleInvalidoUsaDefecto(t *testing.T) {
	v := decimal.RequireFromString("1234.56")
	assert.Equal(t, "1,234.56 PEN", Moneda(v, "PEN", "???"))
}
