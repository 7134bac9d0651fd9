// Package testutils provides shared helpers for the webapi handler tests:
// an app wired to mock repositories and a request helper.
package testutils

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"time"

	"github.com/emreokt/bankoffice/internal/fixtures/mocks"
	"github.com/emreokt/bankoffice/pkg/config"
	accountsvc "github.com/emreokt/bankoffice/pkg/service/account"
	transactionsvc "github.com/emreokt/bankoffice/pkg/service/transaction"
	"github.com/emreokt/bankoffice/webapi"
	"github.com/gofiber/fiber/v2"
)

// SetupTestApp builds the Fiber app over mock repositories. Expectations are
// set on the returned unit of work's AccountRepo and TransactionRepo.
func SetupTestApp() (*fiber.App, *mocks.UnitOfWork) {
	uow := mocks.NewUnitOfWork()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	cfg := &config.App{
		Env: "test",
		RateLimit: config.RateLimit{
			MaxRequests: 1000,
			Window:      time.Minute,
		},
	}
	app := webapi.New(cfg, accountsvc.New(uow, logger), transactionsvc.New(uow, logger))
	return app, uow
}

// MakeRequest performs an in-process request against the app and returns the
// response. An empty body sends no payload.
func MakeRequest(app *fiber.App, method, path, body string) (*http.Response, error) {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	}
	return app.Test(req)
}
