package postgres

import (
	"context"

	"adreach/internal/domain/repository"

	"gorm.io/gorm"
)

type gormTransactionManager struct {
	db *gorm.DB
}

func NewTransactionManager(db *gorm.DB) repository.TransactionManager {
	return &gormTransactionManager{db: db}
}

// Execute runs fn inside one transaction. gorm rolls back when fn errors or
// panics. A commit rejected for a concurrent write becomes repository.ErrConflict.
func (tm *gormTransactionManager) Execute(ctx context.Context, fn func(repoFactory repository.RepositoryFactory) error) error {
	var fnErr error
	err := tm.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		fnErr = fn(txRepositories{tx: tx})

		return fnErr
	})
	switch {
	case err == nil:
		return nil
	case fnErr != nil:
		return fnErr
	default:
		return wrapWriteError(err, "commit transaction")
	}
}

// txRepositories hands out repositories bound to one transaction.
type txRepositories struct {
	tx *gorm.DB
}

func (r txRepositories) NewCampaignRepository() repository.CampaignRepository {
	return NewCampaignRepository(r.tx)
}

func (r txRepositories) NewEngagementRepository() repository.EngagementRepository {
	return NewEngagementRepository(r.tx)
}

func (r txRepositories) NewCommentRepository() repository.CommentRepository {
	return NewCommentRepository(r.tx)
}

func (r txRepositories) NewPaymentTransactionRepository() repository.PaymentTransactionRepository {
	return NewPaymentTransactionRepository(r.tx)
}

func (r txRepositories) NewUserRepository() repository.UserRepository {
	return NewUserRepository(r.tx)
}

