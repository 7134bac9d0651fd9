package main

import (
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/emreokt/bankoffice/infra"
	infrarepo "github.com/emreokt/bankoffice/infra/repository"
	"github.com/emreokt/bankoffice/pkg/config"
	"github.com/emreokt/bankoffice/pkg/logging"
	accountsvc "github.com/emreokt/bankoffice/pkg/service/account"
	transactionsvc "github.com/emreokt/bankoffice/pkg/service/transaction"
	"github.com/emreokt/bankoffice/webapi"
)

// @title Banking Back-Office API
// @version 1.0.0
// @description Account management and account transaction endpoints.
// @host localhost:3000
// @BasePath /
func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	cfg, err := config.Load(".env")
	if err != nil {
		return fmt.Errorf("failed to load application configuration: %w", err)
	}

	logger := logging.New(cfg.Log)

	db, err := infra.NewDBConnection(cfg.DB, cfg.Env)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	if err := infra.Migrate(db); err != nil {
		return fmt.Errorf("failed to migrate database schema: %w", err)
	}

	uow := infrarepo.NewUnitOfWork(db)
	accountSvc := accountsvc.New(uow, logger)
	transactionSvc := transactionsvc.New(uow, logger)

	app := webapi.New(cfg, accountSvc, transactionSvc)

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	logger.Info("Starting server", "env", cfg.Env, "address", addr)

	return app.Listen(addr)
}
