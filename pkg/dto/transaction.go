package dto

import (
	"time"

	"github.com/emreokt/bankoffice/pkg/domain"
	"github.com/emreokt/bankoffice/pkg/domain/money"
	"github.com/google/uuid"
)

// Search pagination bounds.
const (
	DefaultPageSize = 10
	MaxPageSize     = 100
)

// TransactionCreate carries the fields for inserting a transaction record.
type TransactionCreate struct {
	ID              uuid.UUID
	AccountID       uuid.UUID
	TransactionDate time.Time
	TransactionType domain.TransactionType
	Amount          money.Amount
}

// TransactionRead is the read-optimized transaction projection.
type TransactionRead struct {
	ID              uuid.UUID
	AccountID       uuid.UUID
	TransactionDate time.Time
	TransactionType domain.TransactionType
	Amount          money.Amount
}

// TransactionFilter is the set of optional search clauses. Nil fields impose
// no constraint; present fields are combined with AND.
type TransactionFilter struct {
	AccountID       *uuid.UUID
	FromDate        *time.Time
	ToDate          *time.Time
	TransactionType *domain.TransactionType
	MinAmount       *money.Amount
	MaxAmount       *money.Amount
	Page            int
	Size            int
}

// Normalize applies the pagination defaults and cap.
func (f *TransactionFilter) Normalize() {
	if f.Page < 0 {
		f.Page = 0
	}
	if f.Size <= 0 {
		f.Size = DefaultPageSize
	}
	if f.Size > MaxPageSize {
		f.Size = MaxPageSize
	}
}

// Validate rejects inverted date and amount ranges.
func (f *TransactionFilter) Validate() error {
	if f.FromDate != nil && f.ToDate != nil && f.FromDate.After(*f.ToDate) {
		return domain.ErrInvalidDateRange
	}
	if f.MinAmount != nil && f.MaxAmount != nil && f.MinAmount.GreaterThan(*f.MaxAmount) {
		return domain.ErrInvalidAmountRange
	}
	return nil
}

// Page is one page of search results plus the total match count.
type Page[T any] struct {
	Content       []T   `json:"content"`
	TotalElements int64 `json:"totalElements"`
	TotalPages    int   `json:"totalPages"`
	Page          int   `json:"page"`
	Size          int   `json:"size"`
}

// NewPage assembles a result page, deriving the page count from the total.
func NewPage[T any](content []T, total int64, page, size int) *Page[T] {
	totalPages := 0
	if size > 0 {
		totalPages = int((total + int64(size) - 1) / int64(size))
	}
	return &Page[T]{
		Content:       content,
		TotalElements: total,
		TotalPages:    totalPages,
		Page:          page,
		Size:          size,
	}
}
