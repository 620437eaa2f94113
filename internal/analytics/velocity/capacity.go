package velocity

import (
	"fmt"

	"github.com/flowpulse/flowpulse/internal/analytics"
)

// CapacityPlan reports the velocity required to hit a target delivery window
type CapacityPlan struct {
	TargetWeeks      int     `json:"target_weeks"`
	RemainingWork    int     `json:"remaining_work"`
	RequiredVelocity float64 `json:"required_velocity"`
	CurrentVelocity  float64 `json:"current_velocity"`
	VelocityGap      float64 `json:"velocity_gap"`
	Feasible         bool    `json:"feasible"`
	Recommendation   string  `json:"recommendation"`
}

// CalculateCapacityNeeds computes the velocity gap between current throughput
// and what the target window demands. The plan is feasible when closing the
// gap needs at most a 50% increase over current velocity.
func (f *Forecaster) CalculateCapacityNeeds(targetWeeks, remainingWork int) (*CapacityPlan, error) {
	if len(f.weeks) == 0 {
		return nil, ErrNoHistory
	}
	if targetWeeks <= 0 {
		return nil, fmt.Errorf("target weeks must be positive, got %d", targetWeeks)
	}
	if remainingWork <= 0 {
		return nil, fmt.Errorf("remaining work must be positive, got %d", remainingWork)
	}

	current := analytics.Mean(f.weeks)
	required := float64(remainingWork) / float64(targetWeeks)
	gap := required - current

	return &CapacityPlan{
		TargetWeeks:      targetWeeks,
		RemainingWork:    remainingWork,
		RequiredVelocity: required,
		CurrentVelocity:  current,
		VelocityGap:      gap,
		Feasible:         gap <= current*0.5,
		Recommendation:   capacityRecommendation(gap, current),
	}, nil
}

// capacityRecommendation tiers the gap at 0%, 25% and 50% of current velocity
func capacityRecommendation(gap, current float64) string {
	switch {
	case gap <= 0:
		return "Current velocity already meets the target. No capacity change needed."
	case gap <= current*0.25:
		return "A small capacity increase (up to 25%) would close the gap. Removing blockers may be enough."
	case gap <= current*0.5:
		return "A moderate capacity increase (up to 50%) is required. Consider adding team members or reducing parallel work."
	default:
		return "The target requires more than a 50% capacity increase. Reduce scope or extend the timeline instead."
	}
}
