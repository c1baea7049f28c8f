package dto

import (
	"github.com/planvest/admin-backend/internal/models"
)

type PlanList struct {
	Plans []models.Plan `json:"plans"`
}

// CreatePlanRequest carries the multipart form fields of a plan create;
// the logo file travels alongside it as a stream.
type CreatePlanRequest struct {
	Name             string
	Description      string
	Price            float64
	Duration         int
	Type             models.PlanType
	ReturnPercentage float64
}
