package models

import (
	"fmt"
	"time"
)

// HistoricalRecord represents one completed work item as submitted by the
// caller's ingestion pipeline
type HistoricalRecord struct {
	ID            string    `json:"id"`
	ResolvedAt    time.Time `json:"resolved_at"`
	LeadTimeDays  float64   `json:"lead_time_days"`
	CycleTimeDays float64   `json:"cycle_time_days"`
	WorkItemType  string    `json:"work_item_type,omitempty"`
}

// Validate validates a historical record
func (r *HistoricalRecord) Validate() error {
	if r.LeadTimeDays < 0 {
		return fmt.Errorf("lead_time_days cannot be negative")
	}
	if r.CycleTimeDays < 0 {
		return fmt.Errorf("cycle_time_days cannot be negative")
	}
	return nil
}

// TimeSeriesPoint represents one dated observation tagged with a metric name
type TimeSeriesPoint struct {
	Time   time.Time `json:"time"`
	Value  float64   `json:"value"`
	Metric string    `json:"metric"`
}

// Validate validates a time series point
func (p *TimeSeriesPoint) Validate() error {
	if p.Time.IsZero() {
		return fmt.Errorf("time is required")
	}
	if p.Metric == "" {
		return fmt.Errorf("metric is required")
	}
	return nil
}
