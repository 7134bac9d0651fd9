// Package transaction implements the transaction repository on
// GORM/PostgreSQL, including the filtered search query.
package transaction

import (
	"context"

	"github.com/emreokt/bankoffice/infra/repository/model"
	"github.com/emreokt/bankoffice/pkg/dto"
	repo "github.com/emreokt/bankoffice/pkg/repository/transaction"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type repository struct {
	db *gorm.DB
}

// New creates a transaction repository using the provided *gorm.DB.
func New(db *gorm.DB) repo.Repository {
	return &repository{db: db}
}

// Create implements transaction.Repository.
func (r *repository) Create(ctx context.Context, create dto.TransactionCreate) error {
	tx := model.Transaction{
		ID:              create.ID,
		AccountID:       create.AccountID,
		TransactionDate: create.TransactionDate,
		TransactionType: create.TransactionType,
		Amount:          create.Amount,
	}
	return r.db.WithContext(ctx).Create(&tx).Error
}

// ListByAccount implements transaction.Repository.
func (r *repository) ListByAccount(ctx context.Context, accountID uuid.UUID) ([]*dto.TransactionRead, error) {
	var txs []model.Transaction
	if err := r.db.WithContext(ctx).Where("account_id = ?", accountID).Find(&txs).Error; err != nil {
		return nil, err
	}
	result := make([]*dto.TransactionRead, 0, len(txs))
	for i := range txs {
		result = append(result, mapModelToDTO(&txs[i]))
	}
	return result, nil
}

// Search implements transaction.Repository. Each present filter field adds
// one AND clause; absent fields impose no constraint.
func (r *repository) Search(ctx context.Context, filter dto.TransactionFilter) (*dto.Page[*dto.TransactionRead], error) {
	q := r.db.WithContext(ctx).Model(&model.Transaction{})

	if filter.AccountID != nil {
		q = q.Where("account_id = ?", *filter.AccountID)
	}
	if filter.FromDate != nil {
		q = q.Where("transaction_date >= ?", *filter.FromDate)
	}
	if filter.ToDate != nil {
		q = q.Where("transaction_date <= ?", *filter.ToDate)
	}
	if filter.TransactionType != nil {
		q = q.Where("transaction_type = ?", *filter.TransactionType)
	}
	if filter.MinAmount != nil {
		q = q.Where("amount >= ?", *filter.MinAmount)
	}
	if filter.MaxAmount != nil {
		q = q.Where("amount <= ?", *filter.MaxAmount)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, err
	}

	var txs []model.Transaction
	err := q.Order("transaction_date DESC").
		Offset(filter.Page * filter.Size).
		Limit(filter.Size).
		Find(&txs).Error
	if err != nil {
		return nil, err
	}

	content := make([]*dto.TransactionRead, 0, len(txs))
	for i := range txs {
		content = append(content, mapModelToDTO(&txs[i]))
	}
	return dto.NewPage(content, total, filter.Page, filter.Size), nil
}

// DeleteByAccount implements transaction.Repository.
func (r *repository) DeleteByAccount(ctx context.Context, accountID uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.Transaction{}, "account_id = ?", accountID).Error
}

// mapModelToDTO maps a GORM model to a read-optimized DTO.
func mapModelToDTO(tx *model.Transaction) *dto.TransactionRead {
	return &dto.TransactionRead{
		ID:              tx.ID,
		AccountID:       tx.AccountID,
		TransactionDate: tx.TransactionDate,
		TransactionType: tx.TransactionType,
		Amount:          tx.Amount,
	}
}
