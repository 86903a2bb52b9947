package domain

import "time"

// SkippedItem records an item excluded from a run and why.
type SkippedItem struct {
	ItemID string `json:"item_id"`
	Reason string `json:"reason"`
}

// RunSummary reports the outcome of a recompute run so operators can tell a
// clean run from one that skipped records.
type RunSummary struct {
	RunID          string        `json:"run_id"`
	StartedAt      time.Time     `json:"started_at"`
	ComputedAt     time.Time     `json:"computed_at"`
	Duration       time.Duration `json:"duration"`
	ItemsTotal     int           `json:"items_total"`
	ItemsProcessed int           `json:"items_processed"`
	ItemsSkipped   int           `json:"items_skipped"`
	Skipped        []SkippedItem `json:"skipped,omitempty"`
	ViewsWritten   int           `json:"views_written"`
}

// Clean reports whether the run processed every item.
func (s RunSummary) Clean() bool {
	return s.ItemsSkipped == 0
}
