package service

import (
	"github.com/Aashish23092/tax-document-extraction/dto"
	"github.com/shopspring/decimal"
)

// A change of at least this many percent is flagged for review.
const largeChangePct = 20

type comparedTotal struct {
	name string
	sum  func(r *dto.ExtractionResult) *float64
}

var comparedTotals = []comparedTotal{
	{"W-2 total wages (Box 1)", sumField(w2Records, func(w dto.W2Record) *float64 { return w.Box1Wages })},
	{"W-2 federal withholding (Box 2)", sumField(w2Records, func(w dto.W2Record) *float64 { return w.Box2FedWithholding })},
	{"1099 ordinary dividends", sumField(brokerageRecords, func(b dto.Brokerage1099Summary) *float64 { return b.DivOrdinary })},
	{"1099 interest income", sumField(brokerageRecords, func(b dto.Brokerage1099Summary) *float64 { return b.IntInterestIncome })},
	{"1099-B wash sales", sumField(brokerageRecords, func(b dto.Brokerage1099Summary) *float64 { return b.BSummary.WashSales })},
	{"1098 mortgage interest", sumField(form1098Records, func(f dto.Form1098Record) *float64 { return f.MortgageInterestReceived })},
	{"1098 real estate taxes", sumField(form1098Records, func(f dto.Form1098Record) *float64 { return f.RealEstateTaxes })},
}

// CompareResults sets the headline totals of current beside those of prior. A nil result
// counts as a run with no documents.
func CompareResults(current, prior *dto.ExtractionResult) []dto.ComparisonMetric {
	metrics := make([]dto.ComparisonMetric, 0, len(comparedTotals))
	for _, total := range comparedTotals {
		metrics = append(metrics, newComparisonMetric(total.name, total.sum(current), total.sum(prior)))
	}
	return metrics
}

// CountLargeChanges returns how many metrics are flagged as large changes.
func CountLargeChanges(metrics []dto.ComparisonMetric) int {
	n := 0
	for _, m := range metrics {
		if m.LargeChange {
			n++
		}
	}
	return n
}

func newComparisonMetric(name string, current, prior *float64) dto.ComparisonMetric {
	metric := dto.ComparisonMetric{Name: name, Current: current, Prior: prior}
	if current == nil || prior == nil {
		return metric
	}

	cur := decimal.NewFromFloat(*current)
	prv := decimal.NewFromFloat(*prior)
	delta := cur.Sub(prv)
	deltaValue := delta.Round(2).InexactFloat64()
	metric.Delta = &deltaValue

	if prv.IsZero() {
		return metric
	}
	pct := delta.Div(prv).Mul(decimal.NewFromInt(100))
	pctValue := pct.Round(2).InexactFloat64()
	metric.PctChange = &pctValue
	metric.LargeChange = pct.Abs().GreaterThanOrEqual(decimal.NewFromInt(largeChangePct))
	return metric
}

// sumField totals one optional field over the records a result holds of one form type.
func sumField[T any](records func(*dto.ExtractionResult) []T, field func(T) *float64) func(*dto.ExtractionResult) *float64 {
	return func(r *dto.ExtractionResult) *float64 {
		var total statedTotal
		if r != nil {
			for _, rec := range records(r) {
				total.add(field(rec))
			}
		}
		return total.value()
	}
}

func w2Records(r *dto.ExtractionResult) []dto.W2Record { return r.W2 }
func brokerageRecords(r *dto.ExtractionResult) []dto.Brokerage1099Summary { return r.Brokerage1099 }
func form1098Records(r *dto.ExtractionResult) []dto.Form1098Record { return r.Form1098 }
