package dto

// Issue codes raised against individual trades.
const (
	IssueMissingDates         = "missing_dates"
	IssueUnknownHoldingPeriod = "unknown_holding_period"
	IssueMissingAmounts       = "missing_amounts"
)

// ReconciliationSummary compares parsed trade totals with the totals the broker stated.
// A stated total that the statement does not carry stays nil, and so does its delta.
type ReconciliationSummary struct {
	TradeCount      int      `json:"trade_count"`
	ParsedProceeds  float64  `json:"parsed_proceeds"`
	StatedProceeds  *float64 `json:"stated_proceeds"`
	ProceedsDelta   *float64 `json:"proceeds_delta"`
	ParsedCostBasis float64  `json:"parsed_cost_basis"`
	StatedCostBasis *float64 `json:"stated_cost_basis"`
	CostBasisDelta  *float64 `json:"cost_basis_delta"`
	ParsedWashSales float64  `json:"parsed_wash_sales"`
	StatedWashSales *float64 `json:"stated_wash_sales"`
	WashSalesDelta  *float64 `json:"wash_sales_delta"`
}

// TradeException is a row- or subtotal-level finding that needs manual review.
type TradeException struct {
	SourceFile  string `json:"source_file"`
	Description string `json:"description"`
	Issue       string `json:"issue"`
}
