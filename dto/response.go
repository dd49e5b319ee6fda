package dto

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
	Code    int    `json:"code"`
}

// ExtractionResponse is returned after a batch of documents has been processed and stored.
type ExtractionResponse struct {
	RunID       string            `json:"run_id"`
	Result      *ExtractionResult `json:"result"`
	ProcessedAt string            `json:"processed_at"`
}

// TradesResponse lists the persisted trades of one extraction run.
type TradesResponse struct {
	RunID  string        `json:"run_id"`
	Trades []TradeRecord `json:"trades"`
}
