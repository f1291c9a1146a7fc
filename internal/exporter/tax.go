package exporter

import (
	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

type TaxValues struct {
	Amount *decimal.Decimal
	Rate   *decimal.Decimal
	Type   string
}

// ResolveTax picks the tax sent to the provider. A stored tax amount wins, then the
// transaction's own rate, then the rate inherited from its category. Rates are applied to
// the gross amount. The tax type falls back to the category's.
func ResolveTax(tx TaxInput) TaxValues {
	out := TaxValues{Type: tx.TaxType}
	if out.Type == "" {
		out.Type = tx.CategoryTaxType
	}

	switch {
	case tx.TaxAmount != nil:
		out.Amount = copyDecimal(tx.TaxAmount)
		out.Rate = copyDecimal(tx.TaxRate)
	case tx.TaxRate != nil:
		amount := TaxFromGross(tx.Amount, *tx.TaxRate)
		out.Amount = &amount
		out.Rate = copyDecimal(tx.TaxRate)
	case tx.CategoryTaxRate != nil:
		amount := TaxFromGross(tx.Amount, *tx.CategoryTaxRate)
		out.Amount = &amount
		out.Rate = copyDecimal(tx.CategoryTaxRate)
	}

	return out
}

type TaxInput struct {
	Amount          decimal.Decimal
	TaxAmount       *decimal.Decimal
	TaxRate         *decimal.Decimal
	TaxType         string
	CategoryTaxRate *decimal.Decimal
	CategoryTaxType string
}

// TaxFromGross returns the tax contained in a tax-inclusive amount, always positive and
// rounded to cents: |gross| * rate / (100 + rate).
func TaxFromGross(gross, rate decimal.Decimal) decimal.Decimal {
	den := hundred.Add(rate)
	if den.IsZero() || rate.IsZero() {
		return decimal.Zero
	}
	return gross.Abs().Mul(rate).Div(den).Round(2)
}

func copyDecimal(d *decimal.Decimal) *decimal.Decimal {
	if d == nil {
		return nil
	}
	v := *d
	return &v
}
