// Package format renders monetary values for chart labels and list views.
// The locale arrives as an explicit argument on every call — there is no
// process-wide locale mutation, and an unknown locale falls back instead of
// failing (the legacy system tried to set es_PE globally at startup and had
// to swallow the error on hosts without that locale).
package format

import (
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// LocaleDefecto is used when the configured locale cannot be parsed.
const LocaleDefecto = "es-PE"

// Moneda renders a value like "1,234.56 PEN" using the digit grouping of the
// given BCP 47 locale tag. moneda is the ISO currency code stored on the
// proceso.
func Moneda(valor decimal.Decimal, moneda, locale string) string {
	tag, err := language.Parse(locale)
	if err != nil {
		tag = language.MustParse(LocaleDefecto)
	}
	f, _ := valor.Round(2).Float64()
	return message.NewPrinter(tag).Sprintf("%.2f %s", f, moneda)
}
