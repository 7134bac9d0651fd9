package domain

import (
	"time"

	"github.com/emreokt/bankoffice/pkg/domain/money"
	"github.com/google/uuid"
)

// TransactionType is the direction of a balance mutation.
type TransactionType string

const (
	TransactionTypeDeposit  TransactionType = "DEPOSIT"
	TransactionTypeWithdraw TransactionType = "WITHDRAW"
)

// Valid reports whether t is a known transaction type.
func (t TransactionType) Valid() bool {
	return t == TransactionTypeDeposit || t == TransactionTypeWithdraw
}

// Transaction is one applied deposit or withdrawal. Transactions are
// immutable once created and reference their account by ID only.
type Transaction struct {
	ID              uuid.UUID
	AccountID       uuid.UUID
	TransactionDate time.Time
	TransactionType TransactionType
	Amount          money.Amount
}

// NewTransaction creates a transaction record stamped with the given
// processing instant.
func NewTransaction(accountID uuid.UUID, transactionType TransactionType, amount money.Amount, at time.Time) *Transaction {
	return &Transaction{
		ID:              uuid.New(),
		AccountID:       accountID,
		TransactionDate: at,
		TransactionType: transactionType,
		Amount:          amount,
	}
}
