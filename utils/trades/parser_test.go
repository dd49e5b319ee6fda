package trades

import (
	"testing"
	"time"

	"github.com/Aashish23092/tax-document-extraction/dto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func TestParseTradesWithSectionContext(t *testing.T) {
	text := `
		Form 1099-B
		Short-Term Transactions for which basis is reported to the IRS
		APPLE INC (AAPL) 01/02/2024 02/01/2024 1,050.25 900.10 20.00
		MICROSOFT CORP (MSFT) 01/03/2023 02/10/2024 2,000.00 1,500.00
	`

	trades, diag := ParseTrades(text, strPtr("Fidelity"), "sample.pdf", "abc123")

	require.Len(t, trades, 2)
	assert.Equal(t, Diagnostics{RowCandidates: 2, ParsedRows: 2}, diag)

	aapl := trades[0]
	require.NotNil(t, aapl.SecurityIdentifier)
	assert.Equal(t, "AAPL", *aapl.SecurityIdentifier)
	assert.Equal(t, "APPLE INC (AAPL)", aapl.Description)
	assert.Equal(t, dto.HoldingShort, aapl.HoldingPeriod)
	assert.Equal(t, dto.BasisCovered, aapl.BasisReported)
	assert.Equal(t, "A", aapl.Form8949Box)
	assert.Equal(t, 1050.25, *aapl.ProceedsGross)
	assert.Equal(t, 900.10, *aapl.CostBasis)
	require.NotNil(t, aapl.WashSaleAmount)
	assert.Equal(t, 20.00, *aapl.WashSaleAmount)
	require.NotNil(t, aapl.WashSaleCode)
	assert.Equal(t, "W", *aapl.WashSaleCode)
	require.NotNil(t, aapl.AdjustmentCode)
	assert.Equal(t, "W", *aapl.AdjustmentCode)
	assert.InDelta(t, -20.00, aapl.AdjustmentAmount, 0.001)
	assert.InDelta(t, 130.15, aapl.RealizedGainLoss, 0.001)
	assert.Equal(t, "Fidelity", *aapl.BrokerName)
	assert.Equal(t, "sample.pdf", aapl.SourceFile)
	assert.Equal(t, "abc123", aapl.SourceSHA256)
	assert.Nil(t, aapl.SourcePage)
	assert.Equal(t, time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC), *aapl.DateAcquired)
	assert.Equal(t, time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC), *aapl.DateSold)
	assert.Equal(t, "APPLE INC (AAPL) 01/02/2024 02/01/2024 1,050.25 900.10 20.00", aapl.RawTradeLine)

	msft := trades[1]
	// held over a year, but the section header wins
	assert.Equal(t, dto.HoldingShort, msft.HoldingPeriod)
	assert.Equal(t, "A", msft.Form8949Box)
	assert.Nil(t, msft.WashSaleAmount)
	assert.Nil(t, msft.WashSaleCode)
	assert.Equal(t, 0.0, msft.AdjustmentAmount)
	assert.InDelta(t, 500.00, msft.RealizedGainLoss, 0.001)
}

func TestParseTradesDerivesHoldingPeriodWithoutContext(t *testing.T) {
	text := `
		TESLA INC TSLA 01/02/2023 02/10/2024 2,000.00 1,200.00
	`

	trades, _ := ParseTrades(text, strPtr("Schwab"), "s.pdf", "hash")

	require.Len(t, trades, 1)
	assert.Equal(t, dto.HoldingLong, trades[0].HoldingPeriod)
	assert.Equal(t, dto.BasisUnknown, trades[0].BasisReported)
	assert.Equal(t, "F", trades[0].Form8949Box)
	require.NotNil(t, trades[0].SecurityIdentifier)
	assert.Equal(t, "TSLA", *trades[0].SecurityIdentifier)
}

func TestParseTradesLongTermNoncovered(t *testing.T) {
	text := `
		Long-Term Transactions for which basis is not reported to the IRS
		INDEX FUND (VTI) 01/02/2020 03/11/2024 10,000.00 7,000.00
	`

	trades, _ := ParseTrades(text, strPtr("Vanguard"), "f.pdf", "h1")

	require.Len(t, trades, 1)
	assert.Equal(t, dto.HoldingLong, trades[0].HoldingPeriod)
	assert.Equal(t, dto.BasisNoncovered, trades[0].BasisReported)
	assert.Equal(t, "E", trades[0].Form8949Box)
}

func TestParseTradesSkipsRowsWithoutAmounts(t *testing.T) {
	text := `
		Statement period 01/01/2024 12/31/2024
		ABC CO (ABC) 01/02/2024 03/01/2024 1,000.00
	`

	trades, diag := ParseTrades(text, nil, "x.pdf", "sha")

	assert.Empty(t, trades)
	assert.Equal(t, Diagnostics{RowCandidates: 2, ParsedRows: 0}, diag)
}

func TestParseTradesUnparseableDate(t *testing.T) {
	text := `
		WIDGET CORP 13/45/2024 02/01/2024 100.00 90.00
	`

	trades, _ := ParseTrades(text, nil, "x.pdf", "sha")

	require.Len(t, trades, 1)
	assert.Nil(t, trades[0].DateAcquired)
	require.NotNil(t, trades[0].DateSold)
	assert.Equal(t, dto.HoldingUnknown, trades[0].HoldingPeriod)
	assert.Equal(t, "", trades[0].Form8949Box)
}

func TestParseTradesTwoDigitYearAndNegativeAmounts(t *testing.T) {
	text := `
		- 01/02/23 03/01/23 (150.00) 200.00
	`

	trades, _ := ParseTrades(text, nil, "x.pdf", "sha")

	require.Len(t, trades, 1)
	assert.Equal(t, "UNKNOWN SECURITY", trades[0].Description)
	assert.Nil(t, trades[0].SecurityIdentifier)
	assert.Equal(t, time.Date(2023, 1, 2, 0, 0, 0, 0, time.UTC), *trades[0].DateAcquired)
	assert.Equal(t, -150.00, *trades[0].ProceedsGross)
	assert.InDelta(t, -350.00, trades[0].RealizedGainLoss, 0.001)
	assert.Equal(t, dto.HoldingShort, trades[0].HoldingPeriod)
}

func TestParseTradesTracksPages(t *testing.T) {
	text := "Short-Term Transactions for which basis is reported to the IRS\n" +
		"AAA CO (AAA) 01/02/2024 02/01/2024 100.00 90.00\f" +
		"BBB CO (BBB) 01/02/2024 02/01/2024 200.00 150.00"

	trades, _ := ParseTrades(text, nil, "x.pdf", "sha")

	require.Len(t, trades, 2)
	require.NotNil(t, trades[0].SourcePage)
	assert.Equal(t, 1, *trades[0].SourcePage)
	require.NotNil(t, trades[1].SourcePage)
	assert.Equal(t, 2, *trades[1].SourcePage)
	// context carries across the page break
	assert.Equal(t, "A", trades[1].Form8949Box)
}

func TestParseTradesZeroWashSale(t *testing.T) {
	trades, _ := ParseTrades("XYZ (XYZ) 01/02/2024 02/01/2024 100.00 90.00 0.00", nil, "x.pdf", "sha")

	require.Len(t, trades, 1)
	require.NotNil(t, trades[0].WashSaleAmount)
	assert.Equal(t, 0.0, *trades[0].WashSaleAmount)
	assert.Nil(t, trades[0].WashSaleCode)
	assert.Nil(t, trades[0].AdjustmentCode)
	assert.Equal(t, 0.0, trades[0].AdjustmentAmount)
}

func TestForm8949Box(t *testing.T) {
	tests := []struct {
		period dto.HoldingPeriod
		basis  dto.BasisReporting
		want   string
	}{
		{dto.HoldingShort, dto.BasisCovered, "A"},
		{dto.HoldingShort, dto.BasisNoncovered, "B"},
		{dto.HoldingShort, dto.BasisUnknown, "C"},
		{dto.HoldingLong, dto.BasisCovered, "D"},
		{dto.HoldingLong, dto.BasisNoncovered, "E"},
		{dto.HoldingLong, dto.BasisUnknown, "F"},
		{dto.HoldingUnknown, dto.BasisCovered, ""},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, form8949Box(tt.period, tt.basis), "%s/%s", tt.period, tt.basis)
	}
}

func TestDeriveHoldingPeriodBoundary(t *testing.T) {
	acquired := time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC)
	exactlyYear := acquired.AddDate(0, 0, 365)
	dayAfter := acquired.AddDate(0, 0, 366)

	assert.Equal(t, dto.HoldingShort, deriveHoldingPeriod(&acquired, &exactlyYear))
	assert.Equal(t, dto.HoldingLong, deriveHoldingPeriod(&acquired, &dayAfter))
	assert.Equal(t, dto.HoldingUnknown, deriveHoldingPeriod(nil, &dayAfter))
}
