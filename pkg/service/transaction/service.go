// Package transaction provides the business logic for balance mutations and
// transaction queries. Deposits respect the balance ceiling, withdrawals the
// non-negative floor, and each mutation persists the new balance together
// with its transaction row in a single unit of work.
package transaction

import (
	"context"
	"log/slog"
	"time"

	"github.com/emreokt/bankoffice/pkg/domain"
	"github.com/emreokt/bankoffice/pkg/domain/money"
	"github.com/emreokt/bankoffice/pkg/dto"
	"github.com/emreokt/bankoffice/pkg/repository"
	"github.com/google/uuid"
)

// Service applies deposits and withdrawals and answers transaction queries.
type Service struct {
	uow    repository.UnitOfWork
	logger *slog.Logger
	now    func() time.Time
}

// New creates a transaction service.
func New(uow repository.UnitOfWork, logger *slog.Logger) *Service {
	return &Service{uow: uow, logger: logger, now: time.Now}
}

// Deposit adds amount to the account balance and records a DEPOSIT
// transaction. Nothing is persisted when the account is missing or the new
// balance would exceed the ceiling.
func (s *Service) Deposit(ctx context.Context, accountID uuid.UUID, amount money.Amount) (*dto.TransactionRead, error) {
	return s.apply(ctx, accountID, amount, domain.TransactionTypeDeposit)
}

// Withdraw subtracts amount from the account balance and records a WITHDRAW
// transaction. Nothing is persisted when the account is missing or the
// balance is insufficient.
func (s *Service) Withdraw(ctx context.Context, accountID uuid.UUID, amount money.Amount) (*dto.TransactionRead, error) {
	return s.apply(ctx, accountID, amount, domain.TransactionTypeWithdraw)
}

func (s *Service) apply(ctx context.Context, accountID uuid.UUID, amount money.Amount, transactionType domain.TransactionType) (result *dto.TransactionRead, err error) {
	logger := s.logger.With("accountID", accountID, "amount", amount, "type", transactionType)
	defer func() {
		if err != nil {
			logger.Error("Transaction failed", "error", err)
		} else {
			logger.Info("Transaction applied", "transactionID", result.ID)
		}
	}()

	err = s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		read, err := uow.Accounts().GetForUpdate(ctx, accountID)
		if err != nil {
			return err
		}

		acct := domain.Account{
			ID:          read.ID,
			IdentityNo:  read.IdentityNo,
			FirstName:   read.FirstName,
			LastName:    read.LastName,
			AccountType: read.AccountType,
			Balance:     read.Balance,
		}
		switch transactionType {
		case domain.TransactionTypeDeposit:
			err = acct.Deposit(amount)
		case domain.TransactionTypeWithdraw:
			err = acct.Withdraw(amount)
		}
		if err != nil {
			return err
		}

		update := dto.AccountUpdate{Balance: &acct.Balance}
		if err := uow.Accounts().Update(ctx, accountID, update); err != nil {
			return err
		}

		tx := domain.NewTransaction(accountID, transactionType, amount, s.now())
		if err := uow.Transactions().Create(ctx, dto.TransactionCreate{
			ID:              tx.ID,
			AccountID:       tx.AccountID,
			TransactionDate: tx.TransactionDate,
			TransactionType: tx.TransactionType,
			Amount:          tx.Amount,
		}); err != nil {
			return err
		}

		result = &dto.TransactionRead{
			ID:              tx.ID,
			AccountID:       tx.AccountID,
			TransactionDate: tx.TransactionDate,
			TransactionType: tx.TransactionType,
			Amount:          tx.Amount,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// ListByAccount returns all transactions of an account in storage order.
// There is no existence check: an unknown account yields an empty list.
func (s *Service) ListByAccount(ctx context.Context, accountID uuid.UUID) (txs []*dto.TransactionRead, err error) {
	defer func() {
		if err != nil {
			s.logger.Error("List transactions failed", "accountID", accountID, "error", err)
		}
	}()
	err = s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		txs, err = uow.Transactions().ListByAccount(ctx, accountID)
		return err
	})
	if err != nil {
		return nil, err
	}
	return txs, nil
}

// Search returns the page of transactions matching the filter. Inverted date
// or amount ranges are rejected before any query runs.
func (s *Service) Search(ctx context.Context, filter dto.TransactionFilter) (page *dto.Page[*dto.TransactionRead], err error) {
	defer func() {
		if err != nil {
			s.logger.Error("Search transactions failed", "error", err)
		}
	}()

	filter.Normalize()
	if err = filter.Validate(); err != nil {
		return nil, err
	}

	err = s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		page, err = uow.Transactions().Search(ctx, filter)
		return err
	})
	if err != nil {
		return nil, err
	}
	return page, nil
}
