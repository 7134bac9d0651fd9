// Package account defines the data access contract for account records.
package account

import (
	"context"

	"github.com/emreokt/bankoffice/pkg/domain"
	"github.com/emreokt/bankoffice/pkg/dto"
	"github.com/google/uuid"
)

// Repository is the account store. Implementations return
// domain.ErrAccountNotFound for lookups of absent IDs.
type Repository interface {
	// Create inserts a new account record.
	Create(ctx context.Context, create dto.AccountCreate) error

	// Get retrieves an account by ID.
	Get(ctx context.Context, id uuid.UUID) (*dto.AccountRead, error)

	// GetForUpdate retrieves an account by ID, locking its row for the
	// duration of the surrounding unit of work.
	GetForUpdate(ctx context.Context, id uuid.UUID) (*dto.AccountRead, error)

	// List returns all accounts.
	List(ctx context.Context) ([]*dto.AccountRead, error)

	// ExistsByIdentity reports whether an account with the given identity
	// number and type exists.
	ExistsByIdentity(ctx context.Context, identityNo int64, accountType domain.AccountType) (bool, error)

	// Update applies a partial update to an existing account.
	Update(ctx context.Context, id uuid.UUID, update dto.AccountUpdate) error

	// Delete removes an account by ID.
	Delete(ctx context.Context, id uuid.UUID) error
}
