package dto

import "gearguard/internal/entities"

type CreateEquipmentDTO struct {
	Name                 string `json:"name" validate:"required,min=3"`
	SerialNumber         string `json:"serial_number" validate:"required,min=3"`
	Location             string `json:"location" validate:"required,min=3"`
	Department           string `json:"department" validate:"required,min=3"`
	AssignedEmployee     string `json:"assigned_employee" validate:"required,min=3"`
	MaintenanceTeamID    string `json:"maintenance_team_id" validate:"required"`
	DefaultTechnicianID  string `json:"default_technician_id" validate:"required"`
	MaintenanceFrequency int    `json:"maintenance_frequency" validate:"required,min=1"`
}

// HealthSummaryDTO is the per-equipment reliability snapshot fed into the
// scorer: corrective breakdowns that progressed past intake plus tasks still
// open past their scheduled date.
type HealthSummaryDTO struct {
	BreakdownFrequency int    `json:"breakdown_frequency"`
	OverdueTasks       int    `json:"overdue_tasks"`
	HealthScore        string `json:"health_score"`
}

// EquipmentDetailDTO is the detail-page payload: the asset itself, its
// maintenance history newest-first, and the computed health summary.
type EquipmentDetailDTO struct {
	Equipment    *entities.Equipment `json:"equipment"`
	TeamName     string              `json:"team_name,omitempty"`
	OpenRequests int                 `json:"open_requests"`
	History      []RequestDTO        `json:"history"`
	Health       HealthSummaryDTO    `json:"health"`
}
