// Package transaction defines the data access contract for transaction
// records.
package transaction

import (
	"context"

	"github.com/emreokt/bankoffice/pkg/dto"
	"github.com/google/uuid"
)

// Repository is the transaction store. Transactions are insert-only; the
// only deletion path is the cascade when their account is removed.
type Repository interface {
	// Create inserts a new transaction record.
	Create(ctx context.Context, create dto.TransactionCreate) error

	// ListByAccount returns all transactions for an account in storage
	// order. An unknown account yields an empty slice.
	ListByAccount(ctx context.Context, accountID uuid.UUID) ([]*dto.TransactionRead, error)

	// Search returns the page of transactions matching the filter, sorted by
	// transaction date descending, along with the total match count.
	Search(ctx context.Context, filter dto.TransactionFilter) (*dto.Page[*dto.TransactionRead], error)

	// DeleteByAccount removes all transactions of an account.
	DeleteByAccount(ctx context.Context, accountID uuid.UUID) error
}
