// Package domain holds the core entities and the two balance invariants:
// deposits may not push a balance above MaxBalance and withdrawals may not
// take it below zero.
package domain

import (
	"github.com/emreokt/bankoffice/pkg/domain/money"
	"github.com/google/uuid"
)

// MaxBalance is the highest balance an account may hold after a deposit.
var MaxBalance = money.New(9_999_999.00)

// AccountType is the currency denomination of an account. No conversion
// between types ever occurs.
type AccountType string

const (
	AccountTypeTL  AccountType = "TL"
	AccountTypeUSD AccountType = "USD"
	AccountTypeGBP AccountType = "GBP"
)

// Valid reports whether t is a known account type.
func (t AccountType) Valid() bool {
	switch t {
	case AccountTypeTL, AccountTypeUSD, AccountTypeGBP:
		return true
	}
	return false
}

// Account is a bank account. At most one account may exist per
// (identity number, account type) pair. Transactions are fetched by query,
// never held on the account.
type Account struct {
	ID          uuid.UUID
	IdentityNo  int64
	FirstName   string
	LastName    string
	AccountType AccountType
	Balance     money.Amount
}

// NewAccount creates an account with a generated ID and a zero balance.
func NewAccount(identityNo int64, firstName, lastName string, accountType AccountType) *Account {
	return &Account{
		ID:          uuid.New(),
		IdentityNo:  identityNo,
		FirstName:   firstName,
		LastName:    lastName,
		AccountType: accountType,
		Balance:     money.Zero(),
	}
}

// Deposit adds amount to the balance. The balance is left untouched and
// ErrBalanceLimitExceeded returned when the result would exceed MaxBalance.
func (a *Account) Deposit(amount money.Amount) error {
	newBalance := a.Balance.Add(amount)
	if newBalance.GreaterThan(MaxBalance) {
		return ErrBalanceLimitExceeded
	}
	a.Balance = newBalance
	return nil
}

// Withdraw subtracts amount from the balance. The balance is left untouched
// and ErrInsufficientFunds returned when amount exceeds it.
func (a *Account) Withdraw(amount money.Amount) error {
	if a.Balance.LessThan(amount) {
		return ErrInsufficientFunds
	}
	a.Balance = a.Balance.Sub(amount)
	return nil
}
