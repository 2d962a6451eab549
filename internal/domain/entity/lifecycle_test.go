package entity

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestEvaluateLifecycle(t *testing.T) {
	now := time.Date(2025, time.March, 12, 10, 0, 0, 0, time.UTC)
	ratio := decimal.RequireFromString("0.20")
	alerted := now.Add(-time.Hour)

	base := func() *Campaign {
		return &Campaign{
			Budget:            decimal.NewFromInt(1000),
			RemainingSpending: decimal.NewFromInt(900),
			Status:            CampaignStatusRunning,
			EndDate:           now.AddDate(0, 0, 5),
		}
	}

	tests := []struct {
		name   string
		mutate func(c *Campaign)
		want   LifecycleDecision
	}{
		{
			name:   "healthy campaign",
			mutate: func(*Campaign) {},
			want:   LifecycleDecision{},
		},
		{
			name:   "paused campaign never moves",
			mutate: func(c *Campaign) { c.Status = CampaignStatusPaused; c.RemainingSpending = decimal.Zero },
			want:   LifecycleDecision{},
		},
		{
			name:   "budget exhausted",
			mutate: func(c *Campaign) { c.RemainingSpending = decimal.Zero },
			want:   LifecycleDecision{Complete: true, Reason: CompletionBudgetExhausted},
		},
		{
			name: "exhaustion wins over end date",
			mutate: func(c *Campaign) {
				c.RemainingSpending = decimal.RequireFromString("-0.50")
				c.EndDate = now.Add(-time.Hour)
			},
			want: LifecycleDecision{Complete: true, Reason: CompletionBudgetExhausted},
		},
		{
			name:   "past end date",
			mutate: func(c *Campaign) { c.EndDate = now.Add(-time.Minute) },
			want:   LifecycleDecision{Complete: true, Reason: CompletionEnded},
		},
		{
			name:   "under alert ratio",
			mutate: func(c *Campaign) { c.RemainingSpending = decimal.NewFromInt(199) },
			want:   LifecycleDecision{LowBudget: true},
		},
		{
			name:   "exactly at alert ratio",
			mutate: func(c *Campaign) { c.RemainingSpending = decimal.NewFromInt(200) },
			want:   LifecycleDecision{},
		},
		{
			name: "already alerted",
			mutate: func(c *Campaign) {
				c.RemainingSpending = decimal.NewFromInt(50)
				c.LowBudgetAlertedAt = &alerted
			},
			want: LifecycleDecision{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := base()
			tt.mutate(c)

			assert.Equal(t, tt.want, EvaluateLifecycle(c, now, ratio))
		})
	}
}

func TestCompletionNotification(t *testing.T) {
	c := &Campaign{Title: "Monsoon Sale"}

	exhausted := CompletionNotification(c, CompletionBudgetExhausted)
	assert.Equal(t, NotificationCampaignCompleted, exhausted.Type)
	assert.Equal(t, `Campaign "Monsoon Sale" has exhausted its budget`, exhausted.Message)

	ended := CompletionNotification(c, CompletionEnded)
	assert.Equal(t, `Campaign "Monsoon Sale" has ended`, ended.Message)
	assert.Equal(t, "ended", ended.Data["reason"])
}

func TestLowBudgetNotification(t *testing.T) {
	c := &Campaign{Title: "Monsoon Sale", RemainingSpending: decimal.RequireFromString("150")}

	msg := LowBudgetNotification(c, decimal.RequireFromString("0.20"))
	assert.Equal(t, NotificationLowBudgetAlert, msg.Type)
	assert.Equal(t, `Campaign "Monsoon Sale" has less than 20% budget remaining`, msg.Message)
	assert.Equal(t, "150.00", msg.Data["remaining_spending"])
}

func TestDaysRemaining(t *testing.T) {
	now := time.Date(2025, time.March, 12, 10, 0, 0, 0, time.UTC)

	assert.Equal(t, 0, DaysRemaining(now, now.Add(-time.Hour)))
	assert.Equal(t, 1, DaysRemaining(now, now.Add(time.Hour)))
	assert.Equal(t, 1, DaysRemaining(now, now.Add(24*time.Hour)))
	assert.Equal(t, 2, DaysRemaining(now, now.Add(25*time.Hour)))
}
