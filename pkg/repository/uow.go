// Package repository defines the unit of work boundary shared by the
// services.
package repository

import (
	"context"

	"github.com/emreokt/bankoffice/pkg/repository/account"
	"github.com/emreokt/bankoffice/pkg/repository/transaction"
)

// UnitOfWork scopes repository access to one atomic unit. Do runs fn inside
// a storage transaction: every repository obtained from the uow passed to fn
// shares that transaction, and an error from fn rolls the whole unit back so
// no partial state is ever observable.
type UnitOfWork interface {
	Do(ctx context.Context, fn func(uow UnitOfWork) error) error
	Accounts() account.Repository
	Transactions() transaction.Repository
}
