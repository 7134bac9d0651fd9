// Package transaction exposes the deposit, withdraw, history and search
// endpoints.
package transaction

import (
	"github.com/emreokt/bankoffice/pkg/domain/money"
	"github.com/emreokt/bankoffice/pkg/dto"
	transactionsvc "github.com/emreokt/bankoffice/pkg/service/transaction"
	"github.com/emreokt/bankoffice/webapi/common"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// Routes registers the transaction endpoints on the given router group.
//
//   - POST /transactions/:accountId/deposit  : Deposit into an account.
//   - POST /transactions/:accountId/withdraw : Withdraw from an account.
//   - GET  /transactions/:accountId          : List an account's transactions.
//   - POST /transactions/search              : Filtered, paginated search.
func Routes(router fiber.Router, svc *transactionsvc.Service) {
	router.Post("/transactions/search", Search(svc))
	router.Post("/transactions/:accountId/deposit", Deposit(svc))
	router.Post("/transactions/:accountId/withdraw", Withdraw(svc))
	router.Get("/transactions/:accountId", ListByAccount(svc))
}

// Deposit returns the handler for depositing into an account.
// @Summary Deposit funds into an account
// @Description Adds the amount to the account balance and records a DEPOSIT transaction. Fails when the resulting balance would exceed 9999999.00.
// @Tags transactions
// @Accept json
// @Produce json
// @Param accountId path string true "Account ID"
// @Param request body TransactionRequest true "Deposit amount"
// @Success 201 {object} TransactionResponse "Deposit applied"
// @Failure 400 {object} common.ProblemDetails "Invalid amount or balance limit exceeded"
// @Failure 404 {object} common.ProblemDetails "Account not found"
// @Router /api/v1/transactions/{accountId}/deposit [post]
func Deposit(svc *transactionsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		accountID, err := uuid.Parse(c.Params("accountId"))
		if err != nil {
			return common.ErrorResponseJSON(c, fiber.StatusBadRequest, "Invalid account ID", "Account ID must be a valid UUID")
		}
		input, err := common.BindAndValidate[TransactionRequest](c)
		if input == nil {
			return err // error response already written
		}
		tx, err := svc.Deposit(c.Context(), accountID, money.New(input.Amount))
		if err != nil {
			return common.ProblemDetailsJSON(c, "Failed to deposit", err)
		}
		return c.Status(fiber.StatusCreated).JSON(toTransactionResponse(tx))
	}
}

// Withdraw returns the handler for withdrawing from an account.
// @Summary Withdraw funds from an account
// @Description Subtracts the amount from the account balance and records a WITHDRAW transaction. Fails when the amount exceeds the balance.
// @Tags transactions
// @Accept json
// @Produce json
// @Param accountId path string true "Account ID"
// @Param request body TransactionRequest true "Withdrawal amount"
// @Success 201 {object} TransactionResponse "Withdrawal applied"
// @Failure 400 {object} common.ProblemDetails "Invalid amount or insufficient funds"
// @Failure 404 {object} common.ProblemDetails "Account not found"
// @Router /api/v1/transactions/{accountId}/withdraw [post]
func Withdraw(svc *transactionsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		accountID, err := uuid.Parse(c.Params("accountId"))
		if err != nil {
			return common.ErrorResponseJSON(c, fiber.StatusBadRequest, "Invalid account ID", "Account ID must be a valid UUID")
		}
		input, err := common.BindAndValidate[TransactionRequest](c)
		if input == nil {
			return err // error response already written
		}
		tx, err := svc.Withdraw(c.Context(), accountID, money.New(input.Amount))
		if err != nil {
			return common.ProblemDetailsJSON(c, "Failed to withdraw", err)
		}
		return c.Status(fiber.StatusCreated).JSON(toTransactionResponse(tx))
	}
}

// ListByAccount returns the handler for listing an account's transactions.
// @Summary List account transactions
// @Description Returns all transactions of the account. An unknown account yields an empty array.
// @Tags transactions
// @Produce json
// @Param accountId path string true "Account ID"
// @Success 200 {array} TransactionResponse
// @Router /api/v1/transactions/{accountId} [get]
func ListByAccount(svc *transactionsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		accountID, err := uuid.Parse(c.Params("accountId"))
		if err != nil {
			return common.ErrorResponseJSON(c, fiber.StatusBadRequest, "Invalid account ID", "Account ID must be a valid UUID")
		}
		txs, err := svc.ListByAccount(c.Context(), accountID)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Failed to list transactions", err)
		}
		resp := make([]*TransactionResponse, 0, len(txs))
		for _, tx := range txs {
			resp = append(resp, toTransactionResponse(tx))
		}
		return c.JSON(resp)
	}
}

// Search returns the handler for the filtered transaction search.
// @Summary Search transactions
// @Description Searches transactions by optional account, date range, type and amount range filters, sorted by transaction date descending and paginated.
// @Tags transactions
// @Accept json
// @Produce json
// @Param request body SearchRequest true "Search filters"
// @Success 200 {object} dto.Page[TransactionResponse]
// @Failure 400 {object} common.ProblemDetails "Invalid filter range"
// @Router /api/v1/transactions/search [post]
func Search(svc *transactionsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		input, err := common.BindAndValidate[SearchRequest](c)
		if input == nil {
			return err // error response already written
		}
		page, err := svc.Search(c.Context(), input.toFilter())
		if err != nil {
			return common.ProblemDetailsJSON(c, "Failed to search transactions", err)
		}
		content := make([]*TransactionResponse, 0, len(page.Content))
		for _, tx := range page.Content {
			content = append(content, toTransactionResponse(tx))
		}
		return c.JSON(dto.NewPage(content, page.TotalElements, page.Page, page.Size))
	}
}
