package entity

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// CompletionReason explains why a running campaign completed.
type CompletionReason string

const (
	CompletionBudgetExhausted CompletionReason = "budget_exhausted"
	CompletionEnded           CompletionReason = "ended"
)

// LifecycleDecision is the outcome of evaluating a campaign against its budget and dates.
type LifecycleDecision struct {
	Complete bool
	Reason   CompletionReason
	// LowBudget is set when the campaign keeps running but fell under the alert ratio
	// and the vendor was not alerted yet.
	LowBudget bool
}

// EvaluateLifecycle decides the transition for a campaign at now.
// Only RUNNING campaigns move; exhaustion is checked before the end date.
func EvaluateLifecycle(c *Campaign, now time.Time, lowBudgetRatio decimal.Decimal) LifecycleDecision {
	if c.Status != CampaignStatusRunning {
		return LifecycleDecision{}
	}

	if !c.RemainingSpending.IsPositive() {
		return LifecycleDecision{Complete: true, Reason: CompletionBudgetExhausted}
	}
	if now.After(c.EndDate) {
		return LifecycleDecision{Complete: true, Reason: CompletionEnded}
	}

	threshold := c.Budget.Mul(lowBudgetRatio)
	if c.RemainingSpending.LessThan(threshold) && c.LowBudgetAlertedAt == nil {
		return LifecycleDecision{LowBudget: true}
	}

	return LifecycleDecision{}
}

// CompletionNotification builds the vendor message for a completed campaign.
func CompletionNotification(c *Campaign, reason CompletionReason) NotificationMessage {
	message := fmt.Sprintf("Campaign %q has ended", c.Title)
	if reason == CompletionBudgetExhausted {
		message = fmt.Sprintf("Campaign %q has exhausted its budget", c.Title)
	}

	return NotificationMessage{
		Type:    NotificationCampaignCompleted,
		Title:   "Campaign Completed",
		Message: message,
		Data:    map[string]any{"campaign_id": c.ID.String(), "reason": string(reason)},
	}
}

// LowBudgetNotification builds the vendor alert for a campaign under the alert ratio.
func LowBudgetNotification(c *Campaign, ratio decimal.Decimal) NotificationMessage {
	return NotificationMessage{
		Type:  NotificationLowBudgetAlert,
		Title: "Low Budget Alert",
		Message: fmt.Sprintf("Campaign %q has less than %s%% budget remaining",
			c.Title, ratio.Mul(hundred).StringFixed(0)),
		Data: map[string]any{
			"campaign_id":        c.ID.String(),
			"remaining_spending": c.RemainingSpending.StringFixed(2),
		},
	}
}

// DaysRemaining returns the whole days left until end, rounded up, never negative.
func DaysRemaining(now, end time.Time) int {
	left := end.Sub(now)
	if left <= 0 {
		return 0
	}
	days := int(left / (24 * time.Hour))
	if left%(24*time.Hour) != 0 {
		days++
	}

	return days
}
