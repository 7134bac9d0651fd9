package account

import (
	"github.com/emreokt/bankoffice/pkg/domain/money"
	"github.com/emreokt/bankoffice/pkg/dto"
)

// CreateAccountRequest is the request body for opening a new account.
type CreateAccountRequest struct {
	IdentityNo  int64  `json:"identityNo" validate:"required,gt=0,lte=99999999999"`
	FirstName   string `json:"firstName" validate:"required,max=50"`
	LastName    string `json:"lastName" validate:"required,max=50"`
	AccountType string `json:"accountType" validate:"required,oneof=TL USD GBP"`
}

// UpdateAccountRequest is the request body for renaming the account holder.
// Only the name fields are mutable.
type UpdateAccountRequest struct {
	FirstName string `json:"firstName" validate:"required,max=50"`
	LastName  string `json:"lastName" validate:"required,max=50"`
}

// AccountResponse is the API representation of an account.
type AccountResponse struct {
	ID          string       `json:"id"`
	IdentityNo  int64        `json:"identityNo"`
	FirstName   string       `json:"firstName"`
	LastName    string       `json:"lastName"`
	AccountType string       `json:"accountType"`
	Balance     money.Amount `json:"balance"`
}

// toAccountResponse maps a dto.AccountRead to its API representation.
func toAccountResponse(a *dto.AccountRead) *AccountResponse {
	return &AccountResponse{
		ID:          a.ID.String(),
		IdentityNo:  a.IdentityNo,
		FirstName:   a.FirstName,
		LastName:    a.LastName,
		AccountType: string(a.AccountType),
		Balance:     a.Balance,
	}
}
