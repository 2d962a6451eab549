package service

import "adreach/internal/domain/entity"

// Outcomes reported with engagement metrics.
const (
	OutcomeRecorded  = "recorded"
	OutcomeDuplicate = "duplicate"
	OutcomeRemoved   = "removed"
	OutcomeFailed    = "failed"
)

// EngagementMetrics records operational counters for the engagement pipeline.
type EngagementMetrics interface {
	ObserveEvent(kind entity.EventKind, outcome string)
	ObserveDebit(amount float64)
	ObserveTransition(to entity.CampaignStatus, reason string)
}
