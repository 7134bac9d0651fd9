// Package webapi assembles the Fiber application: middleware, error
// handling and route registration.
package webapi

import (
	"github.com/emreokt/bankoffice/pkg/config"
	accountsvc "github.com/emreokt/bankoffice/pkg/service/account"
	transactionsvc "github.com/emreokt/bankoffice/pkg/service/transaction"
	"github.com/emreokt/bankoffice/webapi/account"
	"github.com/emreokt/bankoffice/webapi/common"
	"github.com/emreokt/bankoffice/webapi/transaction"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/recover"
)

// New builds the Fiber app with all routes and middleware registered.
func New(cfg *config.App, accountSvc *accountsvc.Service, transactionSvc *transactionsvc.Service) *fiber.App {
	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			status := fiber.StatusInternalServerError
			if e, ok := err.(*fiber.Error); ok {
				status = e.Code
			}
			return common.ErrorResponseJSON(c, status, "Internal Server Error", err.Error())
		},
	})

	app.Use(limiter.New(limiter.Config{
		Max:        cfg.RateLimit.MaxRequests,
		Expiration: cfg.RateLimit.Window,
		KeyGenerator: func(c *fiber.Ctx) string {
			return c.IP()
		},
		LimitReached: func(c *fiber.Ctx) error {
			return common.ErrorResponseJSON(c, fiber.StatusTooManyRequests, "Too Many Requests", "Rate limit exceeded")
		},
	}))
	app.Use(recover.New())

	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendString("App is working!")
	})

	v1 := app.Group("/api/v1")
	account.Routes(v1, accountSvc)
	transaction.Routes(v1, transactionSvc)

	return app
}
