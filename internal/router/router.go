package router

import (
	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/planvest/admin-backend/internal/handlers"
	"github.com/planvest/admin-backend/internal/middleware"
)

func NewRouter(deps *handlers.Deps) chi.Router {
	r := chi.NewRouter()

	lm := middleware.NewLoggerMiddleware(deps.Log)
	am := middleware.NewMiddleware(deps.Firebase)

	r.Use(chimiddleware.RequestID)
	r.Use(lm.LoggerMiddleware)

	th := handlers.NewTransactionHandlers(deps)
	wh := handlers.NewWalletHandlers(deps)
	ph := handlers.NewPlanHandlers(deps)
	ush := handlers.NewUserHandlers(deps)

	// Plan listing is served to end users without a credential.
	r.Get("/plans", ph.ListPlans)

	r.Group(func(r chi.Router) {
		r.Use(am.FirebaseAuth)
		r.Use(am.RequireAdmin)

		r.Mount("/transactions", th.TransactionRoutes())
		r.Mount("/wallet", wh.WalletRoutes())
		r.Mount("/users", ush.UserRoutes())
		r.Post("/plans", ph.CreatePlan)
		r.Delete("/plans/{planId}", ph.DeletePlan)
	})

	return r
}
