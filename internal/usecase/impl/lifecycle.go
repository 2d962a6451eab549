package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "adreach/internal/delivery/context"
	"adreach/internal/domain/entity"
	"adreach/internal/domain/repository"
	"adreach/internal/domain/service"
	"adreach/internal/errors"
	"adreach/internal/usecase"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// lifecycleChecker applies EvaluateLifecycle to a locked campaign row. It is shared by the
// click path and the scheduled sweep so both transition campaigns the same way.
type lifecycleChecker struct {
	lowBudgetRatio decimal.Decimal
	metrics        service.EngagementMetrics
}

// lifecycleOutcome is what a check did, plus the notifications to send after commit.
type lifecycleOutcome struct {
	vendorID      uuid.UUID
	result        usecase.StatusCheckResult
	notifications []entity.NotificationMessage
}

// apply must run inside the transaction that locked campaign.
func (lc lifecycleChecker) apply(
	ctx context.Context,
	repo repository.CampaignRepository,
	campaign *entity.Campaign,
	now time.Time,
) (*lifecycleOutcome, error) {
	out := &lifecycleOutcome{
		vendorID: campaign.VendorID,
		result:   usecase.StatusCheckResult{Status: campaign.Status},
	}

	decision := entity.EvaluateLifecycle(campaign, now, lc.lowBudgetRatio)
	switch {
	case decision.Complete:
		moved, err := repo.TransitionStatus(ctx, campaign.ID, entity.CampaignStatusRunning, entity.CampaignStatusCompleted)
		if err != nil {
			return nil, errors.Wrap(err, "failed to complete campaign")
		}
		if !moved {
			return out, nil
		}
		campaign.Status = entity.CampaignStatusCompleted
		out.result = usecase.StatusCheckResult{
			Status:    entity.CampaignStatusCompleted,
			Completed: true,
			Reason:    decision.Reason,
		}
		out.notifications = append(out.notifications, entity.CompletionNotification(campaign, decision.Reason))
		lc.metrics.ObserveTransition(entity.CampaignStatusCompleted, string(decision.Reason))

	case decision.LowBudget:
		marked, err := repo.MarkLowBudgetAlerted(ctx, campaign.ID, now)
		if err != nil {
			return nil, errors.Wrap(err, "failed to mark low budget alert")
		}
		if !marked {
			return out, nil
		}
		alertedAt := now
		campaign.LowBudgetAlertedAt = &alertedAt
		out.result.LowBudgetAlerted = true
		out.notifications = append(out.notifications, entity.LowBudgetNotification(campaign, lc.lowBudgetRatio))
	}

	return out, nil
}

// send hands the collected notifications to the notifier. Call it after commit.
func (o *lifecycleOutcome) send(ctx context.Context, notifier service.Notifier, logger *slog.Logger) {
	if o == nil {
		return
	}
	for _, msg := range o.notifications {
		deliverycontext.GetLoggerOrDefault(ctx, logger).Info("Campaign lifecycle notification",
			slog.Any("vendorID", o.vendorID), slog.String("type", string(msg.Type)))
		notifier.Notify(ctx, o.vendorID, msg)
	}
}
