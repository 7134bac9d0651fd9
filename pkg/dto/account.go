// Package dto defines the data transfer objects exchanged between the
// service and repository layers.
package dto

import (
	"github.com/emreokt/bankoffice/pkg/domain"
	"github.com/emreokt/bankoffice/pkg/domain/money"
	"github.com/google/uuid"
)

// AccountCreate carries the fields for inserting a new account record.
type AccountCreate struct {
	ID          uuid.UUID
	IdentityNo  int64
	FirstName   string
	LastName    string
	AccountType domain.AccountType
	Balance     money.Amount
}

// AccountUpdate carries a partial account update; nil fields are untouched.
type AccountUpdate struct {
	FirstName *string
	LastName  *string
	Balance   *money.Amount
}

// AccountRead is the read-optimized account projection.
type AccountRead struct {
	ID          uuid.UUID
	IdentityNo  int64
	FirstName   string
	LastName    string
	AccountType domain.AccountType
	Balance     money.Amount
}
