package services

import (
	"strconv"
	"strings"

	"facturo-api/internal/types/business"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// TaxService groups invoice lines into VAT subtotals and computes the
// invoice totals. All rounding is half-away-from-zero at two fraction
// digits, applied at every accumulation step.
type TaxService struct {
	logger *zap.Logger

	// defaultCountry is used for grouping and scheme synthesis when the
	// receiving party has no country set.
	defaultCountry string
}

// NewTaxService creates a new tax service.
func NewTaxService(defaultCountry string, logger *zap.Logger) *TaxService {
	return &TaxService{
		logger:         logger,
		defaultCountry: defaultCountry,
	}
}

var oneHundred = decimal.NewFromInt(100)

// Aggregate groups line items by (VAT percentage, category, country) and
// accumulates taxable and tax amounts per group, in first-seen order.
//
// Tax is rounded per line and summed, so a group's TaxAmount can diverge
// from round2(TaxableAmount * pct / 100) by up to one cent. That divergence
// is accepted behavior; recomputing from the group total would shift the
// rounding error onto individual lines instead.
func (s *TaxService) Aggregate(items []business.LineItem, country string) business.TaxSummary {
	if country == "" {
		country = s.defaultCountry
	}

	summary := business.TaxSummary{
		TotalTaxable:      decimal.Zero,
		TotalTax:          decimal.Zero,
		TotalIncludingTax: decimal.Zero,
	}

	index := map[string]int{}
	for _, item := range items {
		pct := s.vatPercentage(item.VATRate)
		amount := item.Amount()
		tax := amount.Mul(pct).Div(oneHundred).Round(2)

		key := pct.String() + "|" + business.TaxCategoryStandard + "|" + country
		i, ok := index[key]
		if !ok {
			i = len(summary.Groups)
			index[key] = i
			summary.Groups = append(summary.Groups, business.TaxGroup{
				Percentage:    pct,
				Category:      business.TaxCategoryStandard,
				Country:       country,
				TaxableAmount: decimal.Zero,
				TaxAmount:     decimal.Zero,
			})
		}

		summary.Groups[i].TaxableAmount = summary.Groups[i].TaxableAmount.Add(amount).Round(2)
		summary.Groups[i].TaxAmount = summary.Groups[i].TaxAmount.Add(tax).Round(2)
		summary.TotalTaxable = summary.TotalTaxable.Add(amount).Round(2)
		summary.TotalTax = summary.TotalTax.Add(tax).Round(2)
	}

	summary.TotalIncludingTax = summary.TotalTaxable.Add(summary.TotalTax)
	return summary
}

// vatPercentage parses a UI rate string like "21%" or "6". An unparsable
// rate aggregates as 0% but is logged so malformed invoices are visible
// instead of silently under-taxed.
func (s *TaxService) vatPercentage(rate string) decimal.Decimal {
	pct, err := ParseVATRate(rate)
	if err != nil {
		s.logger.Warn("unparsable VAT rate treated as 0%",
			zap.String("vat_rate", rate),
			zap.Error(err))
		return decimal.Zero
	}
	return pct
}

// ParseVATRate parses a percentage string, tolerating a trailing "%" and
// surrounding whitespace.
func ParseVATRate(rate string) (decimal.Decimal, error) {
	trimmed := strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(rate), "%"))
	if trimmed == "" {
		return decimal.Zero, strconv.ErrSyntax
	}
	return decimal.NewFromString(trimmed)
}
