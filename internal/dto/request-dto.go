package dto

import (
	"time"

	"gearguard/internal/entities"

	"github.com/aarondl/null/v8"
)

type CreateCorrectiveRequestDTO struct {
	Subject     string `json:"subject" validate:"required,min=3"`
	EquipmentID string `json:"equipment_id" validate:"required"`
	CreatedBy   string `json:"created_by" validate:"omitempty,min=1"`
	Priority    string `json:"priority" validate:"required,priority"`
}

type CreatePreventiveRequestDTO struct {
	Subject       string    `json:"subject" validate:"required,min=3"`
	EquipmentID   string    `json:"equipment_id" validate:"required"`
	ScheduledDate time.Time `json:"scheduled_date" validate:"required"`
	Priority      string    `json:"priority" validate:"required,priority"`
	CreatedBy     string    `json:"created_by" validate:"omitempty,min=1"`
}

// TransitionStatusDTO moves a request through the lifecycle. RootCause and
// Duration are only meaningful when closing out a repair and stay untouched
// when absent.
type TransitionStatusDTO struct {
	Status    string       `json:"status" validate:"required,request_status"`
	RootCause null.String  `json:"root_cause"`
	Duration  null.Float64 `json:"duration"`
}

// RequestDTO is the response shape: the stored request enriched with the
// referenced names the board and calendar cards display.
type RequestDTO struct {
	ID             string                 `json:"id"`
	Subject        string                 `json:"subject"`
	EquipmentID    string                 `json:"equipment_id"`
	EquipmentName  string                 `json:"equipment_name,omitempty"`
	TeamID         string                 `json:"team_id"`
	TechnicianID   string                 `json:"technician_id"`
	TechnicianName string                 `json:"technician_name,omitempty"`
	Type           entities.RequestType   `json:"type"`
	Status         entities.RequestStatus `json:"status"`
	Priority       entities.Priority      `json:"priority"`
	ScheduledDate  time.Time              `json:"scheduled_date"`
	Duration       float64                `json:"duration"`
	RootCause      string                 `json:"root_cause"`
	CreatedBy      string                 `json:"created_by"`
	Overdue        bool                   `json:"overdue"`
	SLABreached    bool                   `json:"sla_breached"`
}
