// Package account exposes the account management endpoints.
package account

import (
	"github.com/emreokt/bankoffice/pkg/domain"
	accountsvc "github.com/emreokt/bankoffice/pkg/service/account"
	"github.com/emreokt/bankoffice/webapi/common"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// Routes registers the account endpoints on the given router group.
//
//   - POST   /accounts      : Create a new account.
//   - GET    /accounts      : List all accounts.
//   - GET    /accounts/:id  : Fetch one account.
//   - PUT    /accounts/:id  : Update the holder's name fields.
//   - DELETE /accounts/:id  : Delete the account and its transactions.
func Routes(router fiber.Router, svc *accountsvc.Service) {
	router.Post("/accounts", Create(svc))
	router.Get("/accounts", List(svc))
	router.Get("/accounts/:id", Get(svc))
	router.Put("/accounts/:id", Update(svc))
	router.Delete("/accounts/:id", Delete(svc))
}

// Create returns the handler for opening a new account.
// @Summary Create a new account
// @Description Creates an account for the given identity number, name and account type. The balance starts at zero.
// @Tags accounts
// @Accept json
// @Produce json
// @Param request body CreateAccountRequest true "Account details"
// @Success 201 {object} AccountResponse "Account created"
// @Failure 400 {object} common.ProblemDetails "Invalid input or duplicate account"
// @Router /api/v1/accounts [post]
func Create(svc *accountsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		input, err := common.BindAndValidate[CreateAccountRequest](c)
		if input == nil {
			return err // error response already written
		}
		a, err := svc.Create(c.Context(), input.IdentityNo, input.FirstName, input.LastName, domain.AccountType(input.AccountType))
		if err != nil {
			return common.ProblemDetailsJSON(c, "Failed to create account", err)
		}
		return c.Status(fiber.StatusCreated).JSON(toAccountResponse(a))
	}
}

// List returns the handler for listing every account.
// @Summary List all accounts
// @Tags accounts
// @Produce json
// @Success 200 {array} AccountResponse
// @Router /api/v1/accounts [get]
func List(svc *accountsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		accounts, err := svc.List(c.Context())
		if err != nil {
			return common.ProblemDetailsJSON(c, "Failed to list accounts", err)
		}
		resp := make([]*AccountResponse, 0, len(accounts))
		for _, a := range accounts {
			resp = append(resp, toAccountResponse(a))
		}
		return c.JSON(resp)
	}
}

// Get returns the handler for fetching a single account.
// @Summary Get an account
// @Tags accounts
// @Produce json
// @Param id path string true "Account ID"
// @Success 200 {object} AccountResponse
// @Failure 404 {object} common.ProblemDetails "Account not found"
// @Router /api/v1/accounts/{id} [get]
func Get(svc *accountsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := uuid.Parse(c.Params("id"))
		if err != nil {
			return common.ErrorResponseJSON(c, fiber.StatusBadRequest, "Invalid account ID", "Account ID must be a valid UUID")
		}
		a, err := svc.Get(c.Context(), id)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Failed to fetch account", err)
		}
		return c.JSON(toAccountResponse(a))
	}
}

// Update returns the handler for updating the holder's name fields.
// @Summary Update an account
// @Description Updates only the first and last name. Identity number, account type and balance are immutable.
// @Tags accounts
// @Accept json
// @Produce json
// @Param id path string true "Account ID"
// @Param request body UpdateAccountRequest true "New name fields"
// @Success 200 {object} AccountResponse
// @Failure 400 {object} common.ProblemDetails "Invalid input"
// @Failure 404 {object} common.ProblemDetails "Account not found"
// @Router /api/v1/accounts/{id} [put]
func Update(svc *accountsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := uuid.Parse(c.Params("id"))
		if err != nil {
			return common.ErrorResponseJSON(c, fiber.StatusBadRequest, "Invalid account ID", "Account ID must be a valid UUID")
		}
		input, err := common.BindAndValidate[UpdateAccountRequest](c)
		if input == nil {
			return err // error response already written
		}
		a, err := svc.Update(c.Context(), id, input.FirstName, input.LastName)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Failed to update account", err)
		}
		return c.JSON(toAccountResponse(a))
	}
}

// Delete returns the handler for removing an account and its transactions.
// @Summary Delete an account
// @Tags accounts
// @Param id path string true "Account ID"
// @Success 204 "Account deleted"
// @Failure 404 {object} common.ProblemDetails "Account not found"
// @Router /api/v1/accounts/{id} [delete]
func Delete(svc *accountsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := uuid.Parse(c.Params("id"))
		if err != nil {
			return common.ErrorResponseJSON(c, fiber.StatusBadRequest, "Invalid account ID", "Account ID must be a valid UUID")
		}
		if err := svc.Delete(c.Context(), id); err != nil {
			return common.ProblemDetailsJSON(c, "Failed to delete account", err)
		}
		return c.SendStatus(fiber.StatusNoContent)
	}
}
