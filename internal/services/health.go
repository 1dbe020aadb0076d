package services

import (
	"context"

	"gearguard/internal/entities"
)

// HealthScorer turns breakdown and overdue counts into a categorical score.
// Implementations may consult an external model, but the output domain is
// fixed to Good/Warning/Critical.
type HealthScorer interface {
	Score(ctx context.Context, breakdownFrequency, overdueTasks int) (entities.HealthScore, error)
}

// RuleBasedScorer is the deterministic scorer. It doubles as the fallback
// and the test oracle for LLM-backed implementations.
type RuleBasedScorer struct{}

func NewRuleBasedScorer() *RuleBasedScorer {
	return &RuleBasedScorer{}
}

func (s *RuleBasedScorer) Score(ctx context.Context, breakdownFrequency, overdueTasks int) (entities.HealthScore, error) {
	switch {
	case breakdownFrequency >= 4 || overdueTasks >= 3:
		return entities.HealthCritical, nil
	case breakdownFrequency <= 1 && overdueTasks == 0:
		return entities.HealthGood, nil
	default:
		return entities.HealthWarning, nil
	}
}
