package repository

import (
	"context"
	"errors"
)

// ErrConflict is returned when the store rejects a write because of a concurrent one
// (unique violation, serialization failure or deadlock). Callers may retry the unit once.
var ErrConflict = errors.New("concurrent update conflict")

// TransactionManager defines the interface for managing database transactions.
// This allows the use case layer to handle transactions without depending on a specific DB driver like GORM.
type TransactionManager interface {
	// Execute runs a function within a database transaction.
	// If the function returns an error, the transaction is rolled back. Otherwise, it's committed.
	// All repository operations within the function will use the same database transaction.
	Execute(ctx context.Context, fn func(txRepoFactory RepositoryFactory) error) error
}

// RepositoryFactory provides a way to get repository instances that are bound to a specific transaction.
// This ensures all repository operations within a transaction use the same database connection.
type RepositoryFactory interface {
	// NewCampaignRepository returns a CampaignRepository bound to the current transaction.
	NewCampaignRepository() CampaignRepository

	// NewEngagementRepository returns an EngagementRepository bound to the current transaction.
	NewEngagementRepository() EngagementRepository

	// NewCommentRepository returns a CommentRepository bound to the current transaction.
	NewCommentRepository() CommentRepository

	// NewPaymentTransactionRepository returns a PaymentTransactionRepository bound to the current transaction.
	NewPaymentTransactionRepository() PaymentTransactionRepository

	// NewUserRepository returns a UserRepository bound to the current transaction.
	NewUserRepository() UserRepository
}
