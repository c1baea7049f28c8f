package handlers

import (
	"log/slog"

	"firebase.google.com/go/v4/auth"

	"github.com/planvest/admin-backend/internal/response"
)

type Deps struct {
	Log             *slog.Logger
	ResponseHandler response.ResponseHandler
	Firebase        *auth.Client
	ApprovalSvc     approvalService
	WalletSvc       walletService
	PlanSvc         planService
	UserSvc         userService
}
