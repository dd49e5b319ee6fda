package service

import (
	"math"
	"strconv"
	"strings"

	"github.com/Aashish23092/tax-document-extraction/dto"
	"github.com/shopspring/decimal"
)

const (
	// Subtotal deltas at or below one currency unit are treated as rounding noise.
	deltaTolerance = 1.0

	statementSource        = "(statement)"
	subtotalReconciliation = "subtotal_reconciliation"
)

// Reconcile sums the parsed trades and compares each total with the broker-stated one.
// A nil stated total yields a nil delta.
func Reconcile(trades []dto.TradeRecord, statedProceeds, statedCostBasis, statedWashSales *float64) dto.ReconciliationSummary {
	proceeds := decimal.Zero
	costBasis := decimal.Zero
	washSales := decimal.Zero
	for _, t := range trades {
		proceeds = proceeds.Add(decimalOrZero(t.ProceedsGross))
		costBasis = costBasis.Add(decimalOrZero(t.CostBasis))
		washSales = washSales.Add(decimalOrZero(t.WashSaleAmount))
	}

	summary := dto.ReconciliationSummary{
		TradeCount:      len(trades),
		StatedProceeds:  statedProceeds,
		StatedCostBasis: statedCostBasis,
		StatedWashSales: statedWashSales,
	}
	summary.ParsedProceeds, summary.ProceedsDelta = compareTotal(proceeds, statedProceeds)
	summary.ParsedCostBasis, summary.CostBasisDelta = compareTotal(costBasis, statedCostBasis)
	summary.ParsedWashSales, summary.WashSalesDelta = compareTotal(washSales, statedWashSales)

	return summary
}

func compareTotal(parsed decimal.Decimal, stated *float64) (float64, *float64) {
	parsed = parsed.Round(2)
	if stated == nil {
		return parsed.InexactFloat64(), nil
	}
	delta := parsed.Sub(decimal.NewFromFloat(*stated)).Round(2).InexactFloat64()
	return parsed.InexactFloat64(), &delta
}

func decimalOrZero(v *float64) decimal.Decimal {
	if v == nil {
		return decimal.Zero
	}
	return decimal.NewFromFloat(*v)
}

// BuildExceptions flags trades that need manual review and, when summary is given, subtotal
// deltas larger than the tolerance.
func BuildExceptions(trades []dto.TradeRecord, summary *dto.ReconciliationSummary) []dto.TradeException {
	exceptions := []dto.TradeException{}

	for _, t := range trades {
		if t.DateAcquired == nil || t.DateSold == nil {
			exceptions = append(exceptions, tradeException(t, dto.IssueMissingDates))
		}
		if t.HoldingPeriod == dto.HoldingUnknown {
			exceptions = append(exceptions, tradeException(t, dto.IssueUnknownHoldingPeriod))
		}
		if t.ProceedsGross == nil || t.CostBasis == nil {
			exceptions = append(exceptions, tradeException(t, dto.IssueMissingAmounts))
		}
	}

	if summary == nil {
		return exceptions
	}

	deltas := []struct {
		key   string
		delta *float64
	}{
		{"proceeds_delta", summary.ProceedsDelta},
		{"cost_basis_delta", summary.CostBasisDelta},
		{"wash_sales_delta", summary.WashSalesDelta},
	}
	for _, d := range deltas {
		if d.delta == nil || math.Abs(*d.delta) <= deltaTolerance {
			continue
		}
		exceptions = append(exceptions, dto.TradeException{
			SourceFile:  statementSource,
			Description: subtotalReconciliation,
			Issue:       d.key + ":" + formatDelta(*d.delta),
		})
	}

	return exceptions
}

func tradeException(t dto.TradeRecord, issue string) dto.TradeException {
	return dto.TradeException{
		SourceFile:  t.SourceFile,
		Description: t.Description,
		Issue:       issue,
	}
}

// formatDelta renders a delta with at least one fractional digit: 100 -> "100.0".
func formatDelta(v float64) string {
	s := strconv.FormatFloat(v, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}
