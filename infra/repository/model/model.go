// Package model holds the GORM persistence models.
package model

import (
	"time"

	"github.com/emreokt/bankoffice/pkg/domain"
	"github.com/emreokt/bankoffice/pkg/domain/money"
	"github.com/google/uuid"
)

// Account is the persisted account record. The (identity_no, account_type)
// pair is unique: a person holds at most one account per currency type.
type Account struct {
	ID          uuid.UUID          `gorm:"type:uuid;primaryKey"`
	IdentityNo  int64              `gorm:"type:numeric(11,0);not null;uniqueIndex:idx_accounts_identity_type"`
	FirstName   string             `gorm:"type:varchar(50);not null"`
	LastName    string             `gorm:"type:varchar(50);not null"`
	AccountType domain.AccountType `gorm:"type:varchar(3);not null;uniqueIndex:idx_accounts_identity_type"`
	Balance     money.Amount       `gorm:"type:numeric(9,2);not null"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName specifies the table name for the Account model.
func (Account) TableName() string {
	return "accounts"
}

// Transaction is the persisted transaction record. It references its account
// by ID only; the foreign key cascades deletes so no orphan rows survive an
// account removal.
type Transaction struct {
	ID              uuid.UUID              `gorm:"type:uuid;primaryKey"`
	AccountID       uuid.UUID              `gorm:"type:uuid;not null;index"`
	Account         *Account               `gorm:"constraint:OnDelete:CASCADE"`
	TransactionDate time.Time              `gorm:"not null;index"`
	TransactionType domain.TransactionType `gorm:"type:varchar(8);not null"`
	Amount          money.Amount           `gorm:"type:numeric(9,2);not null"`
	CreatedAt       time.Time
}

// TableName specifies the table name for the Transaction model.
func (Transaction) TableName() string {
	return "transactions"
}
