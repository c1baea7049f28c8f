package models

import (
	"time"
)

type PlanType string

const (
	PlanRunning  PlanType = "RUNNING"
	PlanUpcoming PlanType = "UPCOMING"
	PlanExpired  PlanType = "EXPIRED"
)

func ValidPlanType(t PlanType) bool {
	switch t {
	case PlanRunning, PlanUpcoming, PlanExpired:
		return true
	}
	return false
}

type Plan struct {
	ID               string    `firestore:"-" json:"id"` // Firestore doc ID (uuid)
	Name             string    `firestore:"name" json:"name"`
	Description      string    `firestore:"description" json:"description"`
	Price            float64   `firestore:"price" json:"price"`
	Duration         int       `firestore:"duration" json:"duration"` // days
	Type             PlanType  `firestore:"type" json:"type"`
	ReturnPercentage float64   `firestore:"returnPercentage" json:"returnPercentage"`
	LogoURL          string    `firestore:"logoUrl" json:"logoUrl,omitempty"`
	CreatedAt        time.Time `firestore:"createdAt" json:"createdAt"`
	UpdatedAt        time.Time `firestore:"updatedAt" json:"updatedAt"`
}
