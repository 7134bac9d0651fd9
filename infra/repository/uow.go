// Package repository implements the unit of work on a GORM database handle.
package repository

import (
	"context"

	infraaccount "github.com/emreokt/bankoffice/infra/repository/account"
	infratransaction "github.com/emreokt/bankoffice/infra/repository/transaction"
	"github.com/emreokt/bankoffice/pkg/repository"
	"github.com/emreokt/bankoffice/pkg/repository/account"
	"github.com/emreokt/bankoffice/pkg/repository/transaction"
	"gorm.io/gorm"
)

type unitOfWork struct {
	db *gorm.DB
}

// NewUnitOfWork creates a unit of work over db. Do nests into a database
// transaction; repositories obtained outside Do run without one.
func NewUnitOfWork(db *gorm.DB) repository.UnitOfWork {
	return &unitOfWork{db: db}
}

// Do implements repository.UnitOfWork.
func (u *unitOfWork) Do(ctx context.Context, fn func(uow repository.UnitOfWork) error) error {
	return u.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&unitOfWork{db: tx})
	})
}

// Accounts implements repository.UnitOfWork.
func (u *unitOfWork) Accounts() account.Repository {
	return infraaccount.New(u.db)
}

// Transactions implements repository.UnitOfWork.
func (u *unitOfWork) Transactions() transaction.Repository {
	return infratransaction.New(u.db)
}
