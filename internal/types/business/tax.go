package business

import "github.com/shopspring/decimal"

// TaxCategoryStandard is the only tax category this system emits; all line
// items are flat-percentage VAT.
const TaxCategoryStandard = "standard"

// TaxGroup aggregates line items sharing a VAT percentage, category and
// country. Derived per send, never persisted.
type TaxGroup struct {
	Percentage    decimal.Decimal
	Category      string
	Country       string
	TaxableAmount decimal.Decimal
	TaxAmount     decimal.Decimal
}

// TaxSummary is the aggregator's output: the ordered groups plus grand
// totals. Groups keep first-seen order so subtotals render in the same order
// as the lines that produced them.
type TaxSummary struct {
	Groups            []TaxGroup
	TotalTaxable      decimal.Decimal
	TotalTax          decimal.Decimal
	TotalIncludingTax decimal.Decimal
}
