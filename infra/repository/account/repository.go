// Package account implements the account repository on GORM/PostgreSQL.
package account

import (
	"context"
	"errors"

	"github.com/emreokt/bankoffice/infra/repository/model"
	"github.com/emreokt/bankoffice/pkg/domain"
	"github.com/emreokt/bankoffice/pkg/dto"
	repo "github.com/emreokt/bankoffice/pkg/repository/account"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type repository struct {
	db *gorm.DB
}

// New creates an account repository using the provided *gorm.DB.
func New(db *gorm.DB) repo.Repository {
	return &repository{db: db}
}

// Create implements account.Repository.
func (r *repository) Create(ctx context.Context, create dto.AccountCreate) error {
	acct := mapCreateDTOToModel(create)
	return r.db.WithContext(ctx).Create(&acct).Error
}

// Get implements account.Repository.
func (r *repository) Get(ctx context.Context, id uuid.UUID) (*dto.AccountRead, error) {
	var acct model.Account
	if err := r.db.WithContext(ctx).First(&acct, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrAccountNotFound
		}
		return nil, err
	}
	return mapModelToDTO(&acct), nil
}

// GetForUpdate implements account.Repository. The row lock serializes
// concurrent balance mutations on the same account.
func (r *repository) GetForUpdate(ctx context.Context, id uuid.UUID) (*dto.AccountRead, error) {
	var acct model.Account
	err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&acct, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrAccountNotFound
		}
		return nil, err
	}
	return mapModelToDTO(&acct), nil
}

// List implements account.Repository.
func (r *repository) List(ctx context.Context) ([]*dto.AccountRead, error) {
	var accts []model.Account
	if err := r.db.WithContext(ctx).Find(&accts).Error; err != nil {
		return nil, err
	}
	result := make([]*dto.AccountRead, 0, len(accts))
	for i := range accts {
		result = append(result, mapModelToDTO(&accts[i]))
	}
	return result, nil
}

// ExistsByIdentity implements account.Repository.
func (r *repository) ExistsByIdentity(ctx context.Context, identityNo int64, accountType domain.AccountType) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&model.Account{}).
		Where("identity_no = ? AND account_type = ?", identityNo, accountType).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// Update implements account.Repository.
func (r *repository) Update(ctx context.Context, id uuid.UUID, update dto.AccountUpdate) error {
	updates := mapUpdateDTOToModel(update)
	if len(updates) == 0 {
		return nil
	}
	res := r.db.WithContext(ctx).
		Model(&model.Account{}).
		Where("id = ?", id).
		Updates(updates)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrAccountNotFound
	}
	return nil
}

// Delete implements account.Repository.
func (r *repository) Delete(ctx context.Context, id uuid.UUID) error {
	res := r.db.WithContext(ctx).Delete(&model.Account{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrAccountNotFound
	}
	return nil
}

// mapCreateDTOToModel maps AccountCreate DTO to the GORM model.
func mapCreateDTOToModel(create dto.AccountCreate) model.Account {
	return model.Account{
		ID:          create.ID,
		IdentityNo:  create.IdentityNo,
		FirstName:   create.FirstName,
		LastName:    create.LastName,
		AccountType: create.AccountType,
		Balance:     create.Balance,
	}
}

// mapUpdateDTOToModel maps AccountUpdate to a column map for GORM Updates.
func mapUpdateDTOToModel(update dto.AccountUpdate) map[string]any {
	updates := make(map[string]any)
	if update.FirstName != nil {
		updates["first_name"] = *update.FirstName
	}
	if update.LastName != nil {
		updates["last_name"] = *update.LastName
	}
	if update.Balance != nil {
		updates["balance"] = *update.Balance
	}
	return updates
}

// mapModelToDTO maps a GORM model to a read-optimized DTO.
func mapModelToDTO(acct *model.Account) *dto.AccountRead {
	return &dto.AccountRead{
		ID:          acct.ID,
		IdentityNo:  acct.IdentityNo,
		FirstName:   acct.FirstName,
		LastName:    acct.LastName,
		AccountType: acct.AccountType,
		Balance:     acct.Balance,
	}
}
