package postgres

import (
	"context"
	"time"

	"adreach/internal/domain/entity"
	"adreach/internal/domain/repository"
	"adreach/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var reactionTables = map[entity.ReactionKind]string{
	entity.ReactionLike:    model.TableLikes,
	entity.ReactionDislike: model.TableDislikes,
	entity.ReactionLove:    model.TableLoves,
	entity.ReactionSave:    model.TableSaves,
}

// eventTables lists every per-campaign event log, removed together with the campaign.
var eventTables = []string{
	model.TableImpressions,
	model.TableClicks,
	model.TableShares,
	model.TableConversions,
	model.TableLikes,
	model.TableDislikes,
	model.TableLoves,
	model.TableSaves,
}

// engagementRepository implements the repository.EngagementRepository interface.
type engagementRepository struct {
	db *gorm.DB
}

// NewEngagementRepository is the constructor for engagementRepository.
func NewEngagementRepository(db *gorm.DB) repository.EngagementRepository {
	return &engagementRepository{
		db: db,
	}
}

func reactionTable(kind entity.ReactionKind) (string, error) {
	table, ok := reactionTables[kind]
	if !ok {
		return "", errors.Errorf("unknown reaction kind %q", kind)
	}

	return table, nil
}

// DeleteReaction removes the (campaign, user) row of kind and reports whether one existed.
func (repo *engagementRepository) DeleteReaction(ctx context.Context, kind entity.ReactionKind, campaignID, userID uuid.UUID) (bool, error) {
	table, err := reactionTable(kind)
	if err != nil {
		return false, err
	}

	result := repo.db.WithContext(ctx).
		Table(table).
		Where("campaign_id = ? AND user_id = ?", campaignID, userID).
		Delete(&model.ReactionModel{})
	if result.Error != nil {
		return false, wrapWriteError(result.Error, "failed to delete reaction")
	}

	return result.RowsAffected > 0, nil
}

// InsertReaction inserts the (campaign, user) row of kind. A concurrent insert of the
// same pair is absorbed by ON CONFLICT DO NOTHING and reported as not created.
func (repo *engagementRepository) InsertReaction(ctx context.Context, kind entity.ReactionKind, campaignID, userID uuid.UUID) (bool, error) {
	table, err := reactionTable(kind)
	if err != nil {
		return false, err
	}

	row := &model.ReactionModel{CampaignID: campaignID, UserID: userID}
	result := repo.db.WithContext(ctx).
		Table(table).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "campaign_id"}, {Name: "user_id"}},
			DoNothing: true,
		}).
		Create(row)
	if result.Error != nil {
		if isForeignKeyConstraintViolation(result.Error) {
			return false, repository.ErrCampaignNotFound
		}

		return false, wrapWriteError(result.Error, "failed to insert reaction")
	}

	return result.RowsAffected == 1, nil
}

// ReactionsFor returns the user's reactions on the given campaigns, one query per reaction table.
func (repo *engagementRepository) ReactionsFor(ctx context.Context, userID uuid.UUID, campaignIDs []uuid.UUID) (entity.ReactionSet, error) {
	set := make(entity.ReactionSet, len(campaignIDs))
	if len(campaignIDs) == 0 {
		return set, nil
	}

	for _, kind := range []entity.ReactionKind{entity.ReactionLike, entity.ReactionDislike, entity.ReactionLove, entity.ReactionSave} {
		var ids []uuid.UUID
		if err := repo.db.WithContext(ctx).
			Table(reactionTables[kind]).
			Where("user_id = ? AND campaign_id IN ?", userID, campaignIDs).
			Pluck("campaign_id", &ids).Error; err != nil {
			return nil, errors.Wrapf(err, "failed to load %s reactions", kind)
		}
		for _, id := range ids {
			set.Mark(id, kind)
		}
	}

	return set, nil
}

// InsertEvent appends a share or click.
func (repo *engagementRepository) InsertEvent(ctx context.Context, event *entity.EngagementEvent) error {
	var err error
	switch event.Kind {
	case entity.EventShare:
		row := &model.ShareModel{CampaignID: event.CampaignID, UserID: event.UserID, CreatedAt: event.CreatedAt}
		err = repo.db.WithContext(ctx).Create(row).Error
		event.ID = row.ID
	case entity.EventClick:
		row := fromLocatedEventDomain(event)
		err = repo.db.WithContext(ctx).Table(model.TableClicks).Create(row).Error
		event.ID = row.ID
	default:
		return errors.Errorf("event kind %q is not an appended event", event.Kind)
	}
	if err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrCampaignNotFound
		}

		return wrapWriteError(err, "failed to insert "+string(event.Kind))
	}

	return nil
}

// InsertImpressionIfAbsent appends an impression unless one exists after since. A
// transaction-scoped advisory lock on the (campaign, user) pair serializes concurrent
// callers, so it must run inside a transaction.
func (repo *engagementRepository) InsertImpressionIfAbsent(ctx context.Context, event *entity.EngagementEvent, since time.Time) (bool, error) {
	db := repo.db.WithContext(ctx)

	lockKey := event.CampaignID.String() + ":" + event.UserID.String()
	if err := db.Exec("SELECT pg_advisory_xact_lock(hashtextextended(?, 0))", lockKey).Error; err != nil {
		return false, wrapWriteError(err, "failed to lock impression slot")
	}

	var exists bool
	if err := db.Raw(
		"SELECT EXISTS (SELECT 1 FROM "+model.TableImpressions+" WHERE campaign_id = ? AND user_id = ? AND created_at > ?)",
		event.CampaignID, event.UserID, since,
	).Scan(&exists).Error; err != nil {
		return false, errors.Wrap(err, "failed to check recent impression")
	}
	if exists {
		return false, nil
	}

	row := fromLocatedEventDomain(event)
	if err := db.Table(model.TableImpressions).Create(row).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return false, repository.ErrCampaignNotFound
		}

		return false, wrapWriteError(err, "failed to insert impression")
	}
	event.ID = row.ID

	return true, nil
}

// InsertConversion appends a conversion.
func (repo *engagementRepository) InsertConversion(ctx context.Context, conversion *entity.Conversion) error {
	row := &model.ConversionModel{
		CampaignID: conversion.CampaignID,
		UserID:     conversion.UserID,
		Amount:     conversion.Amount,
		Type:       conversion.Type,
		Metadata:   datatypes.JSONMap(conversion.Metadata),
		CreatedAt:  conversion.CreatedAt,
	}
	if err := repo.db.WithContext(ctx).Create(row).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrCampaignNotFound
		}

		return wrapWriteError(err, "failed to insert conversion")
	}
	conversion.ID = row.ID

	return nil
}

// DeleteByCampaign removes every event row of the campaign.
func (repo *engagementRepository) DeleteByCampaign(ctx context.Context, campaignID uuid.UUID) error {
	for _, table := range eventTables {
		if err := repo.db.WithContext(ctx).
			Exec("DELETE FROM "+table+" WHERE campaign_id = ?", campaignID).Error; err != nil {
			return errors.Wrapf(err, "failed to delete %s", table)
		}
	}

	return nil
}

// fromLocatedEventDomain converts an impression or click to its row.
func fromLocatedEventDomain(event *entity.EngagementEvent) *model.LocatedEventModel {
	row := &model.LocatedEventModel{
		CampaignID: event.CampaignID,
		UserID:     event.UserID,
		DeviceType: event.DeviceType,
		CreatedAt:  event.CreatedAt,
	}
	if loc := event.Location; loc != nil {
		row.City = nonEmpty(loc.City)
		row.State = nonEmpty(loc.State)
		row.Country = nonEmpty(loc.Country)
		row.Latitude = loc.Latitude
		row.Longitude = loc.Longitude
	}

	return row
}

func nonEmpty(s string) *string {
	if s == "" {
		return nil
	}

	return &s
}
