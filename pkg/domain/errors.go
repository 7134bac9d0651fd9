package domain

import "errors"

var (
	// ErrAccountNotFound indicates the requested account does not exist.
	ErrAccountNotFound = errors.New("account not found")

	// ErrDuplicateAccount indicates an account with the same identity number
	// and account type already exists.
	ErrDuplicateAccount = errors.New("an account of this type already exists for this identity number")

	// ErrBalanceLimitExceeded indicates a deposit would push the balance over
	// the permitted maximum.
	ErrBalanceLimitExceeded = errors.New("account balance cannot exceed 9999999.00")

	// ErrInsufficientFunds indicates a withdrawal exceeds the current balance.
	ErrInsufficientFunds = errors.New("insufficient funds")

	// ErrInvalidDateRange indicates a search with fromDate after toDate.
	ErrInvalidDateRange = errors.New("fromDate must be before or equal to toDate")

	// ErrInvalidAmountRange indicates a search with minAmount above maxAmount.
	ErrInvalidAmountRange = errors.New("minAmount must be less than or equal to maxAmount")
)
