package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/joho/godotenv"

	"github.com/mreis/penny/internal/account"
	accountStore "github.com/mreis/penny/internal/account/store"
	"github.com/mreis/penny/internal/auth"
	authStore "github.com/mreis/penny/internal/auth/store"
	"github.com/mreis/penny/internal/config"
	"github.com/mreis/penny/internal/database"
	"github.com/mreis/penny/internal/expense"
	expenseStore "github.com/mreis/penny/internal/expense/store"
	pennyHttp "github.com/mreis/penny/internal/http"
	accountHandler "github.com/mreis/penny/internal/http/account"
	authHandler "github.com/mreis/penny/internal/http/auth"
	expenseHandler "github.com/mreis/penny/internal/http/expense"
	importHandler "github.com/mreis/penny/internal/http/importcsv"
	incomeHandler "github.com/mreis/penny/internal/http/income"
	summaryHandler "github.com/mreis/penny/internal/http/summary"
	txHandler "github.com/mreis/penny/internal/http/transaction"
	"github.com/mreis/penny/internal/importer"
	"github.com/mreis/penny/internal/income"
	incomeStore "github.com/mreis/penny/internal/income/store"
	"github.com/mreis/penny/internal/summary"
	"github.com/mreis/penny/internal/transaction"
	txStore "github.com/mreis/penny/internal/transaction/store"
)

func main() {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		slog.Warn("failed to load .env file", "error", err)
	}

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	db, err := database.New(context.Background(), cfg.ConnectionString())
	if err != nil {
		slog.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	var (
		authService        = auth.NewService(authStore.New(db), cfg.Auth.Secret, cfg.Auth.TokenTTL)
		transactionService = transaction.NewService(txStore.New(db))
		accountService     = account.NewService(accountStore.New(db))
		expenseService     = expense.NewService(expenseStore.New(db))
		incomeService      = income.NewService(incomeStore.New(db))
		summaryService     = summary.NewService(expenseService, incomeService)
		importService      = importer.NewService(transactionService)
	)

	var (
		authH        = authHandler.NewHandler(authService)
		transactionH = txHandler.NewHandler(transactionService)
		accountH     = accountHandler.NewHandler(accountService)
		expenseH     = expenseHandler.NewHandler(expenseService)
		incomeH      = incomeHandler.NewHandler(incomeService)
		summaryH     = summaryHandler.NewHandler(summaryService)
		importH      = importHandler.NewHandler(importService)
	)

	router := pennyHttp.New(authService, authH, transactionH, accountH, expenseH, incomeH, summaryH, importH)

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.App.Port),
		Handler:      router,
		ReadTimeout:  cfg.Server.Timeout,
		WriteTimeout: cfg.Server.Timeout,
	}

	slog.Info("starting server", "app", cfg.App.Name, "addr", srv.Addr)

	if err := srv.ListenAndServe(); err != nil {
		slog.Error("server failed", "error", err)
		os.Exit(1)
	}
}
