package dto

import "time"

type HoldingPeriod string

const (
	HoldingShort   HoldingPeriod = "short"
	HoldingLong    HoldingPeriod = "long"
	HoldingUnknown HoldingPeriod = "unknown"
)

// BasisReporting says whether the broker reported cost basis to the IRS.
type BasisReporting string

const (
	BasisCovered    BasisReporting = "covered"
	BasisNoncovered BasisReporting = "noncovered"
	BasisUnknown    BasisReporting = "unknown"
)

// DateLayout is the layout used when trade dates are rendered as text.
const DateLayout = "2006-01-02"

// TradeRecord is one security disposition recovered from a 1099-B trade row.
type TradeRecord struct {
	BrokerName         *string        `json:"broker_name"`
	SourceFile         string         `json:"source_file"`
	SourceSHA256       string         `json:"source_sha256"`
	SourcePage         *int           `json:"source_page"`
	Description        string         `json:"description"`
	SecurityIdentifier *string        `json:"security_identifier"`
	DateAcquired       *time.Time     `json:"date_acquired"`
	DateSold           *time.Time     `json:"date_sold_or_disposed"`
	ProceedsGross      *float64       `json:"proceeds_gross"`
	CostBasis          *float64       `json:"cost_basis"`
	WashSaleCode       *string        `json:"wash_sale_code"`
	WashSaleAmount     *float64       `json:"wash_sale_amount"`
	AdjustmentCode     *string        `json:"adjustment_code"`
	AdjustmentAmount   float64        `json:"adjustment_amount"`
	RealizedGainLoss   float64        `json:"realized_gain_loss"`
	HoldingPeriod      HoldingPeriod  `json:"holding_period"`
	BasisReported      BasisReporting `json:"basis_reported_to_irs"`
	Form8949Box        string         `json:"form_8949_box"`
	RawTradeLine       string         `json:"raw_trade_line"`
}

// TaxRow flattens the trade for tax-preparation exports.
func (t TradeRecord) TaxRow(clientID string, taxYear int) map[string]any {
	return map[string]any{
		"client_id":             clientID,
		"tax_year":              taxYear,
		"account_id_suffix":     nil,
		"broker_name":           derefString(t.BrokerName),
		"source_file":           t.SourceFile,
		"source_sha256":         t.SourceSHA256,
		"source_page":           derefInt(t.SourcePage),
		"description":           t.Description,
		"security_identifier":   derefString(t.SecurityIdentifier),
		"date_acquired":         formatDate(t.DateAcquired),
		"date_sold_or_disposed": formatDate(t.DateSold),
		"proceeds_gross":        derefFloat(t.ProceedsGross),
		"cost_basis":            derefFloat(t.CostBasis),
		"wash_sale_code":        derefString(t.WashSaleCode),
		"wash_sale_amount":      derefFloat(t.WashSaleAmount),
		"adjustment_code":       derefString(t.AdjustmentCode),
		"adjustment_amount":     t.AdjustmentAmount,
		"realized_gain_loss":    t.RealizedGainLoss,
		"holding_period":        string(t.HoldingPeriod),
		"basis_reported_to_irs": string(t.BasisReported),
		"form_8949_box":         t.Form8949Box,
		"raw_trade_line":        t.RawTradeLine,
	}
}

// AnalyticsRow flattens the trade for gain/loss analytics. net_proceeds is proceeds plus
// the (non-positive) adjustment.
func (t TradeRecord) AnalyticsRow(clientID string, taxYear int) map[string]any {
	var yearMonth any
	if t.DateSold != nil {
		yearMonth = t.DateSold.Format("2006-01")
	}
	proceeds := 0.0
	if t.ProceedsGross != nil {
		proceeds = *t.ProceedsGross
	}
	return map[string]any{
		"client_id":             clientID,
		"tax_year":              taxYear,
		"broker_name":           derefString(t.BrokerName),
		"source_file":           t.SourceFile,
		"description":           t.Description,
		"ticker":                derefString(t.SecurityIdentifier),
		"date_sold_or_disposed": formatDate(t.DateSold),
		"trade_year_month":      yearMonth,
		"proceeds_gross":        derefFloat(t.ProceedsGross),
		"cost_basis":            derefFloat(t.CostBasis),
		"adjustment_amount":     t.AdjustmentAmount,
		"wash_sale_amount":      derefFloat(t.WashSaleAmount),
		"realized_gain_loss":    t.RealizedGainLoss,
		"net_proceeds":          proceeds + t.AdjustmentAmount,
	}
}

func formatDate(t *time.Time) any {
	if t == nil {
		return nil
	}
	return t.Format(DateLayout)
}

func derefString(s *string) any {
	if s == nil {
		return nil
	}
	return *s
}

func derefFloat(f *float64) any {
	if f == nil {
		return nil
	}
	return *f
}

func derefInt(i *int) any {
	if i == nil {
		return nil
	}
	return *i
}
