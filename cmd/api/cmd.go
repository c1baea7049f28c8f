package main

import (
	"log/slog"
	"net/http"
	"os"

	"github.com/planvest/admin-backend/internal/bootstrap"
	"github.com/planvest/admin-backend/internal/config"
	"github.com/planvest/admin-backend/internal/handlers"
	"github.com/planvest/admin-backend/internal/response"
	"github.com/planvest/admin-backend/internal/router"
	"github.com/planvest/admin-backend/internal/services"
	"github.com/planvest/admin-backend/internal/store"
)

func exitOnError(message string, err error, log *slog.Logger) {
	if err != nil {
		log.Error(message, "error", err)
		os.Exit(1)
	}
}

func main() {
	// bootstrap
	cfg := config.New()
	bs, err := bootstrap.Run(cfg)
	exitOnError("bootstrap failed", err, bs.Log)
	defer bs.Close()

	// stores
	tstore := store.NewTransactionStore(bs.Firestore)
	ustore := store.NewUserStore(bs.Firestore)
	dstore := store.NewDenominationStore(bs.Firestore)
	wstore := store.NewWalletStore(bs.Firestore)
	pstore := store.NewPlanStore(bs.Firestore)
	lstore := store.NewLogoStore(bs.Storage, cfg.PlanLogoBucket)

	// services
	aserv := services.NewApprovalService(tstore, ustore)
	wserv := services.NewWalletService(dstore, wstore)
	pserv := services.NewPlanService(pstore, lstore)
	userv := services.NewUserService(ustore)

	// response handler
	rh := response.New(bs.Log)

	// dependancies
	deps := new(handlers.Deps)
	deps.Log = bs.Log
	deps.ResponseHandler = rh
	deps.Firebase = bs.Firebase
	deps.ApprovalSvc = aserv
	deps.WalletSvc = wserv
	deps.PlanSvc = pserv
	deps.UserSvc = userv

	// router
	r := router.NewRouter(deps)
	err = http.ListenAndServe(":"+cfg.Port, r)
	exitOnError("server start failed", err, bs.Log)
}
