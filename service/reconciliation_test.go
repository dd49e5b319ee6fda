package service

import (
	"strings"
	"testing"
	"time"

	"github.com/Aashish23092/tax-document-extraction/dto"
	"github.com/Aashish23092/tax-document-extraction/utils/trades"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func floatPtr(v float64) *float64 { return &v }

func TestReconcileLargeProceedsDelta(t *testing.T) {
	text := `
		Short-Term Transactions for which basis is reported to the IRS
		ABC CO (ABC) 01/02/2024 03/01/2024 1,000.00 800.00 10.00
	`
	broker := "Broker"
	parsed, _ := trades.ParseTrades(text, &broker, "x.pdf", "sha")
	require.Len(t, parsed, 1)

	summary := Reconcile(parsed, floatPtr(900.00), floatPtr(700.00), floatPtr(0.0))

	assert.Equal(t, 1, summary.TradeCount)
	assert.Equal(t, 1000.00, summary.ParsedProceeds)
	require.NotNil(t, summary.ProceedsDelta)
	assert.Equal(t, 100.00, *summary.ProceedsDelta)
	require.NotNil(t, summary.CostBasisDelta)
	assert.Equal(t, 100.00, *summary.CostBasisDelta)
	require.NotNil(t, summary.WashSalesDelta)
	assert.Equal(t, 10.00, *summary.WashSalesDelta)

	exceptions := BuildExceptions(parsed, &summary)

	issues := make([]string, 0, len(exceptions))
	for _, e := range exceptions {
		issues = append(issues, e.Issue)
		assert.Equal(t, "(statement)", e.SourceFile)
		assert.Equal(t, "subtotal_reconciliation", e.Description)
	}
	assert.Equal(t, []string{"proceeds_delta:100.0", "cost_basis_delta:100.0", "wash_sales_delta:10.0"}, issues)
}

func TestReconcileWithoutStatedTotals(t *testing.T) {
	proceeds := 1050.25
	cost := 900.10
	tradeList := []dto.TradeRecord{
		{ProceedsGross: &proceeds, CostBasis: &cost},
		{ProceedsGross: floatPtr(0.10), CostBasis: floatPtr(0.20), WashSaleAmount: floatPtr(5)},
	}

	summary := Reconcile(tradeList, nil, nil, nil)

	assert.Equal(t, 2, summary.TradeCount)
	assert.Equal(t, 1050.35, summary.ParsedProceeds)
	assert.Equal(t, 900.30, summary.ParsedCostBasis)
	assert.Equal(t, 5.00, summary.ParsedWashSales)
	assert.Nil(t, summary.StatedProceeds)
	assert.Nil(t, summary.ProceedsDelta)
	assert.Nil(t, summary.CostBasisDelta)
	assert.Nil(t, summary.WashSalesDelta)
}

func TestReconcileZeroStatedTotalIsNotMissing(t *testing.T) {
	summary := Reconcile(nil, floatPtr(0), nil, nil)

	assert.Equal(t, 0, summary.TradeCount)
	require.NotNil(t, summary.ProceedsDelta)
	assert.Equal(t, 0.0, *summary.ProceedsDelta)
}

func TestReconcileDeltaSign(t *testing.T) {
	tradeList := []dto.TradeRecord{
		{ProceedsGross: floatPtr(123.45), CostBasis: floatPtr(67.89), WashSaleAmount: floatPtr(1.11)},
		{ProceedsGross: floatPtr(0.55), CostBasis: floatPtr(0.11)},
	}
	stated := []float64{0, 124.00, 200.01, -50.5}

	for _, s := range stated {
		summary := Reconcile(tradeList, floatPtr(s), floatPtr(s), floatPtr(s))
		assert.InDelta(t, summary.ParsedProceeds-s, *summary.ProceedsDelta, 1e-9)
		assert.InDelta(t, summary.ParsedCostBasis-s, *summary.CostBasisDelta, 1e-9)
		assert.InDelta(t, summary.ParsedWashSales-s, *summary.WashSalesDelta, 1e-9)
	}
}

func TestBuildExceptionsPerTrade(t *testing.T) {
	sold := time.Date(2024, 3, 11, 0, 0, 0, 0, time.UTC)
	tradeList := []dto.TradeRecord{
		{
			SourceFile:    "a.pdf",
			Description:   "MYSTERY CO",
			DateSold:      &sold,
			ProceedsGross: floatPtr(10),
			CostBasis:     floatPtr(5),
			HoldingPeriod: dto.HoldingUnknown,
		},
		{
			SourceFile:    "a.pdf",
			Description:   "NO AMOUNTS",
			DateAcquired:  &sold,
			DateSold:      &sold,
			HoldingPeriod: dto.HoldingShort,
		},
	}

	exceptions := BuildExceptions(tradeList, nil)

	assert.Equal(t, []dto.TradeException{
		{SourceFile: "a.pdf", Description: "MYSTERY CO", Issue: dto.IssueMissingDates},
		{SourceFile: "a.pdf", Description: "MYSTERY CO", Issue: dto.IssueUnknownHoldingPeriod},
		{SourceFile: "a.pdf", Description: "NO AMOUNTS", Issue: dto.IssueMissingAmounts},
	}, exceptions)
}

func TestBuildExceptionsCleanTrade(t *testing.T) {
	text := `
		Long-Term Transactions for which basis is not reported to the IRS
		INDEX FUND (VTI) 01/02/2020 03/11/2024 10,000.00 7,000.00
	`
	parsed, _ := trades.ParseTrades(text, nil, "f.pdf", "h1")
	require.Len(t, parsed, 1)

	row := parsed[0].TaxRow("Client_A", 2024)
	assert.Equal(t, "Client_A", row["client_id"])
	assert.Equal(t, 2024, row["tax_year"])
	assert.Equal(t, "E", row["form_8949_box"])

	assert.Empty(t, BuildExceptions(parsed, nil))
}

func TestBuildExceptionsWithinTolerance(t *testing.T) {
	summary := dto.ReconciliationSummary{
		ProceedsDelta:  floatPtr(1.0),
		CostBasisDelta: floatPtr(-0.99),
		WashSalesDelta: floatPtr(-1.01),
	}

	exceptions := BuildExceptions(nil, &summary)

	require.Len(t, exceptions, 1)
	assert.True(t, strings.HasPrefix(exceptions[0].Issue, "wash_sales_delta:"))
	assert.Equal(t, "wash_sales_delta:-1.01", exceptions[0].Issue)
}

func TestFormatDelta(t *testing.T) {
	assert.Equal(t, "100.0", formatDelta(100))
	assert.Equal(t, "12.34", formatDelta(12.34))
	assert.Equal(t, "-0.5", formatDelta(-0.5))
}
