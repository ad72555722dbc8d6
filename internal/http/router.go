package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/mreis/penny/internal/auth"
	accountHandler "github.com/mreis/penny/internal/http/account"
	authHandler "github.com/mreis/penny/internal/http/auth"
	expenseHandler "github.com/mreis/penny/internal/http/expense"
	importHandler "github.com/mreis/penny/internal/http/importcsv"
	incomeHandler "github.com/mreis/penny/internal/http/income"
	summaryHandler "github.com/mreis/penny/internal/http/summary"
	transactionHandler "github.com/mreis/penny/internal/http/transaction"
)

func New(
	authSvc *auth.Service,
	authV1 *authHandler.Handler,
	transactionsV1 *transactionHandler.Handler,
	accountsV1 *accountHandler.Handler,
	expensesV1 *expenseHandler.Handler,
	incomesV1 *incomeHandler.Handler,
	summaryV1 *summaryHandler.Handler,
	importV1 *importHandler.Handler,
) http.Handler {
	router := chi.NewRouter()

	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type"},
	}))

	router.Route("/api/v1", func(r chi.Router) {
		r.Route("/auth", func(r chi.Router) {
			r.Use(middleware.AllowContentType("application/json"))
			authV1.Routes(r)
		})

		r.Group(func(r chi.Router) {
			r.Use(authSvc.Middleware)

			r.Route("/transactions", func(r chi.Router) {
				r.Use(middleware.AllowContentType("application/json"))
				transactionsV1.Routes(r)
			})

			r.Route("/accounts", func(r chi.Router) {
				r.Use(middleware.AllowContentType("application/json"))
				accountsV1.Routes(r)
			})

			r.Route("/expenses", func(r chi.Router) {
				r.Use(middleware.AllowContentType("application/json"))
				expensesV1.Routes(r)
			})

			r.Route("/incomes", func(r chi.Router) {
				r.Use(middleware.AllowContentType("application/json"))
				incomesV1.Routes(r)
			})

			r.Route("/summary", summaryV1.Routes)

			r.Route("/import", importV1.Routes)
		})
	})

	return router
}
