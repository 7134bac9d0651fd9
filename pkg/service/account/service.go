// Package account provides the business logic for account management:
// creation, listing, lookup, name updates and deletion.
package account

import (
	"context"
	"log/slog"

	"github.com/emreokt/bankoffice/pkg/domain"
	"github.com/emreokt/bankoffice/pkg/dto"
	"github.com/emreokt/bankoffice/pkg/repository"
	"github.com/google/uuid"
)

// Service orchestrates account CRUD over the account store.
type Service struct {
	uow    repository.UnitOfWork
	logger *slog.Logger
}

// New creates an account service.
func New(uow repository.UnitOfWork, logger *slog.Logger) *Service {
	return &Service{uow: uow, logger: logger}
}

// Create opens a new account with a zero balance. It fails with
// domain.ErrDuplicateAccount when an account with the same identity number
// and account type already exists.
func (s *Service) Create(ctx context.Context, identityNo int64, firstName, lastName string, accountType domain.AccountType) (a *dto.AccountRead, err error) {
	logger := s.logger.With("identityNo", identityNo, "accountType", accountType)
	defer func() {
		if err != nil {
			logger.Error("Create account failed", "error", err)
		} else {
			logger.Info("Account created", "accountID", a.ID)
		}
	}()

	acct := domain.NewAccount(identityNo, firstName, lastName, accountType)
	err = s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		exists, err := uow.Accounts().ExistsByIdentity(ctx, identityNo, accountType)
		if err != nil {
			return err
		}
		if exists {
			return domain.ErrDuplicateAccount
		}
		return uow.Accounts().Create(ctx, dto.AccountCreate{
			ID:          acct.ID,
			IdentityNo:  acct.IdentityNo,
			FirstName:   acct.FirstName,
			LastName:    acct.LastName,
			AccountType: acct.AccountType,
			Balance:     acct.Balance,
		})
	})
	if err != nil {
		return nil, err
	}
	return &dto.AccountRead{
		ID:          acct.ID,
		IdentityNo:  acct.IdentityNo,
		FirstName:   acct.FirstName,
		LastName:    acct.LastName,
		AccountType: acct.AccountType,
		Balance:     acct.Balance,
	}, nil
}

// List returns every account, unfiltered and unpaginated.
func (s *Service) List(ctx context.Context) (accounts []*dto.AccountRead, err error) {
	defer func() {
		if err != nil {
			s.logger.Error("List accounts failed", "error", err)
		}
	}()
	err = s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		accounts, err = uow.Accounts().List(ctx)
		return err
	})
	if err != nil {
		return nil, err
	}
	return accounts, nil
}

// Get returns the account with the given ID or domain.ErrAccountNotFound.
func (s *Service) Get(ctx context.Context, id uuid.UUID) (a *dto.AccountRead, err error) {
	defer func() {
		if err != nil {
			s.logger.Error("Get account failed", "accountID", id, "error", err)
		}
	}()
	err = s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		a, err = uow.Accounts().Get(ctx, id)
		return err
	})
	if err != nil {
		return nil, err
	}
	return a, nil
}

// Update mutates only the name fields of an existing account. Identity
// number, account type and balance are immutable through this path.
func (s *Service) Update(ctx context.Context, id uuid.UUID, firstName, lastName string) (a *dto.AccountRead, err error) {
	logger := s.logger.With("accountID", id)
	defer func() {
		if err != nil {
			logger.Error("Update account failed", "error", err)
		} else {
			logger.Info("Account updated")
		}
	}()
	err = s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		if _, err := uow.Accounts().Get(ctx, id); err != nil {
			return err
		}
		update := dto.AccountUpdate{FirstName: &firstName, LastName: &lastName}
		if err := uow.Accounts().Update(ctx, id, update); err != nil {
			return err
		}
		a, err = uow.Accounts().Get(ctx, id)
		return err
	})
	if err != nil {
		return nil, err
	}
	return a, nil
}

// Delete removes the account and all of its transactions in one unit of
// work, so no orphan transaction rows remain observable.
func (s *Service) Delete(ctx context.Context, id uuid.UUID) (err error) {
	logger := s.logger.With("accountID", id)
	defer func() {
		if err != nil {
			logger.Error("Delete account failed", "error", err)
		} else {
			logger.Info("Account deleted")
		}
	}()
	return s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		if _, err := uow.Accounts().Get(ctx, id); err != nil {
			return err
		}
		if err := uow.Transactions().DeleteByAccount(ctx, id); err != nil {
			return err
		}
		return uow.Accounts().Delete(ctx, id)
	})
}
