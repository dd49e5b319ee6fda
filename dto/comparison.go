package dto

// ComparisonMetric sets one year-over-year total beside the same total from a prior run.
// Delta is absent unless both sides are present; PctChange is also absent when Prior is zero.
type ComparisonMetric struct {
	Name        string   `json:"name"`
	Current     *float64 `json:"current"`
	Prior       *float64 `json:"prior"`
	Delta       *float64 `json:"delta"`
	PctChange   *float64 `json:"pct_change"`
	LargeChange bool     `json:"large_change"`
}

// ComparisonResponse compares two stored extraction runs.
type ComparisonResponse struct {
	RunID      string             `json:"run_id"`
	PriorRunID string             `json:"prior_run_id"`
	Client     string             `json:"client"`
	Metrics    []ComparisonMetric `json:"metrics"`
	Flagged    int                `json:"flagged"`
}
