package transaction

import (
	"github.com/emreokt/bankoffice/pkg/domain"
	"github.com/emreokt/bankoffice/pkg/domain/money"
	"github.com/emreokt/bankoffice/pkg/dto"
	"github.com/google/uuid"
)

// TransactionRequest is the request body for deposits and withdrawals.
type TransactionRequest struct {
	Amount float64 `json:"amount" validate:"required,gte=0.01"`
}

// SearchRequest is the request body for the filtered transaction search.
// Every filter field is optional; absent fields impose no constraint.
type SearchRequest struct {
	AccountID       *string       `json:"accountId" validate:"omitempty,uuid"`
	FromDate        *dto.DateTime `json:"fromDate"`
	ToDate          *dto.DateTime `json:"toDate"`
	TransactionType *string       `json:"transactionType" validate:"omitempty,oneof=DEPOSIT WITHDRAW"`
	MinAmount       *float64      `json:"minAmount" validate:"omitempty,gt=0"`
	MaxAmount       *float64      `json:"maxAmount" validate:"omitempty,gt=0"`
	Page            int           `json:"page" validate:"gte=0"`
	Size            int           `json:"size" validate:"gte=0,lte=100"`
}

// TransactionResponse is the API representation of a transaction.
type TransactionResponse struct {
	ID              string       `json:"id"`
	AccountID       string       `json:"accountId"`
	TransactionDate dto.DateTime `json:"transactionDate"`
	TransactionType string       `json:"transactionType"`
	Amount          money.Amount `json:"amount"`
}

// toTransactionResponse maps a dto.TransactionRead to its API representation.
func toTransactionResponse(tx *dto.TransactionRead) *TransactionResponse {
	return &TransactionResponse{
		ID:              tx.ID.String(),
		AccountID:       tx.AccountID.String(),
		TransactionDate: dto.NewDateTime(tx.TransactionDate),
		TransactionType: string(tx.TransactionType),
		Amount:          tx.Amount,
	}
}

// toFilter maps a SearchRequest to the service-level filter.
func (r *SearchRequest) toFilter() dto.TransactionFilter {
	filter := dto.TransactionFilter{Page: r.Page, Size: r.Size}
	if r.AccountID != nil {
		// Validated as uuid by the binding layer.
		id := uuid.MustParse(*r.AccountID)
		filter.AccountID = &id
	}
	if r.FromDate != nil {
		t := r.FromDate.Time()
		filter.FromDate = &t
	}
	if r.ToDate != nil {
		t := r.ToDate.Time()
		filter.ToDate = &t
	}
	if r.TransactionType != nil {
		tt := domain.TransactionType(*r.TransactionType)
		filter.TransactionType = &tt
	}
	if r.MinAmount != nil {
		m := money.New(*r.MinAmount)
		filter.MinAmount = &m
	}
	if r.MaxAmount != nil {
		m := money.New(*r.MaxAmount)
		filter.MaxAmount = &m
	}
	return filter
}
