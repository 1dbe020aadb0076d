package entities

import "gearguard/pkg/types"

type Equipment struct {
	ID                   string `json:"id"`
	Name                 string `json:"name"`
	SerialNumber         string `json:"serial_number"`
	Location             string `json:"location"`
	Department           string `json:"department"`
	AssignedEmployee     string `json:"assigned_employee"`
	MaintenanceTeamID    string `json:"maintenance_team_id"`
	DefaultTechnicianID  string `json:"default_technician_id"`
	IsScrapped           bool   `json:"is_scrapped"`
	MaintenanceFrequency int    `json:"maintenance_frequency"` // days
	ImageURL             string `json:"image_url"`
	ImageHint            string `json:"image_hint"`

	types.BaseEntity
}
