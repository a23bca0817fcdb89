package ordering

import (
	"github.com/shopspring/decimal"
)

// PricedLine cantidad de un ítem con su precio unitario vigente en el catálogo.
type PricedLine struct {
	UnitPrice decimal.Decimal
	Quantity  int
}

// TotalCalculator suma precio*cantidad de todas las líneas y redondea una sola vez al final.
// Total = round2(Σ UnitPrice_i * Quantity_i)
// No redondear por línea: los totales de referencia dependen del redondeo único.
func TotalCalculator(lines []PricedLine) decimal.Decimal {
	total := decimal.Zero
	for _, l := range lines {
		total = total.Add(l.UnitPrice.Mul(decimal.NewFromInt(int64(l.Quantity))))
	}
	return Round2(total)
}

// Round2 redondea a 2 decimales (mitad lejos de cero).
func Round2(d decimal.Decimal) decimal.Decimal {
	return d.Round(2)
}
