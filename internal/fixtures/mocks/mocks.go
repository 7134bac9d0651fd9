// Package mocks provides testify-based repository mocks and an in-memory
// unit of work for service and handler tests.
package mocks

import (
	"context"

	"github.com/emreokt/bankoffice/pkg/domain"
	"github.com/emreokt/bankoffice/pkg/dto"
	"github.com/emreokt/bankoffice/pkg/repository"
	accountrepo "github.com/emreokt/bankoffice/pkg/repository/account"
	transactionrepo "github.com/emreokt/bankoffice/pkg/repository/transaction"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// UnitOfWork runs the unit function directly against the mock repositories.
// There is no real transaction to roll back; tests assert non-persistence by
// the absence of repository calls instead.
type UnitOfWork struct {
	AccountRepo     *AccountRepository
	TransactionRepo *TransactionRepository
}

// NewUnitOfWork creates a unit of work over fresh mock repositories.
func NewUnitOfWork() *UnitOfWork {
	return &UnitOfWork{
		AccountRepo:     &AccountRepository{},
		TransactionRepo: &TransactionRepository{},
	}
}

// Do implements repository.UnitOfWork.
func (u *UnitOfWork) Do(ctx context.Context, fn func(uow repository.UnitOfWork) error) error {
	return fn(u)
}

// Accounts implements repository.UnitOfWork.
func (u *UnitOfWork) Accounts() accountrepo.Repository {
	return u.AccountRepo
}

// Transactions implements repository.UnitOfWork.
func (u *UnitOfWork) Transactions() transactionrepo.Repository {
	return u.TransactionRepo
}

// AccountRepository is a testify mock of the account repository.
type AccountRepository struct {
	mock.Mock
}

func (m *AccountRepository) Create(ctx context.Context, create dto.AccountCreate) error {
	args := m.Called(ctx, create)
	return args.Error(0)
}

func (m *AccountRepository) Get(ctx context.Context, id uuid.UUID) (*dto.AccountRead, error) {
	args := m.Called(ctx, id)
	var a *dto.AccountRead
	if v := args.Get(0); v != nil {
		a = v.(*dto.AccountRead)
	}
	return a, args.Error(1)
}

func (m *AccountRepository) GetForUpdate(ctx context.Context, id uuid.UUID) (*dto.AccountRead, error) {
	args := m.Called(ctx, id)
	var a *dto.AccountRead
	if v := args.Get(0); v != nil {
		a = v.(*dto.AccountRead)
	}
	return a, args.Error(1)
}

func (m *AccountRepository) List(ctx context.Context) ([]*dto.AccountRead, error) {
	args := m.Called(ctx)
	var accounts []*dto.AccountRead
	if v := args.Get(0); v != nil {
		accounts = v.([]*dto.AccountRead)
	}
	return accounts, args.Error(1)
}

func (m *AccountRepository) ExistsByIdentity(ctx context.Context, identityNo int64, accountType domain.AccountType) (bool, error) {
	args := m.Called(ctx, identityNo, accountType)
	return args.Bool(0), args.Error(1)
}

func (m *AccountRepository) Update(ctx context.Context, id uuid.UUID, update dto.AccountUpdate) error {
	args := m.Called(ctx, id, update)
	return args.Error(0)
}

func (m *AccountRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// TransactionRepository is a testify mock of the transaction repository.
type TransactionRepository struct {
	mock.Mock
}

func (m *TransactionRepository) Create(ctx context.Context, create dto.TransactionCreate) error {
	args := m.Called(ctx, create)
	return args.Error(0)
}

func (m *TransactionRepository) ListByAccount(ctx context.Context, accountID uuid.UUID) ([]*dto.TransactionRead, error) {
	args := m.Called(ctx, accountID)
	var txs []*dto.TransactionRead
	if v := args.Get(0); v != nil {
		txs = v.([]*dto.TransactionRead)
	}
	return txs, args.Error(1)
}

func (m *TransactionRepository) Search(ctx context.Context, filter dto.TransactionFilter) (*dto.Page[*dto.TransactionRead], error) {
	args := m.Called(ctx, filter)
	var page *dto.Page[*dto.TransactionRead]
	if v := args.Get(0); v != nil {
		page = v.(*dto.Page[*dto.TransactionRead])
	}
	return page, args.Error(1)
}

func (m *TransactionRepository) DeleteByAccount(ctx context.Context, accountID uuid.UUID) error {
	args := m.Called(ctx, accountID)
	return args.Error(0)
}
