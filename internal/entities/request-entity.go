package entities

import (
	"time"

	"gearguard/pkg/types"
)

type RequestType string

const (
	TypeCorrective RequestType = "corrective"
	TypePreventive RequestType = "preventive"
)

type RequestStatus string

const (
	StatusNew        RequestStatus = "new"
	StatusInProgress RequestStatus = "in_progress"
	StatusRepaired   RequestStatus = "repaired"
	StatusScrap      RequestStatus = "scrap"
)

// AllStatuses lists the kanban columns in board order.
var AllStatuses = []RequestStatus{StatusNew, StatusInProgress, StatusRepaired, StatusScrap}

func (s RequestStatus) Valid() bool {
	switch s {
	case StatusNew, StatusInProgress, StatusRepaired, StatusScrap:
		return true
	}
	return false
}

// Terminal reports whether the status ends the lifecycle. Terminal states
// never transition again.
func (s RequestStatus) Terminal() bool {
	return s == StatusRepaired || s == StatusScrap
}

// CanTransitionTo encodes the forward-only lifecycle:
// new -> in_progress -> repaired, with scrap reachable from any open state.
func (s RequestStatus) CanTransitionTo(next RequestStatus) bool {
	if s.Terminal() {
		return false
	}
	switch s {
	case StatusNew:
		return next == StatusInProgress || next == StatusScrap
	case StatusInProgress:
		return next == StatusRepaired || next == StatusScrap
	}
	return false
}

type Priority string

const (
	PriorityHigh   Priority = "High"
	PriorityMedium Priority = "Medium"
	PriorityLow    Priority = "Low"
)

// Rank orders priorities for badge selection; lower is more urgent.
func (p Priority) Rank() int {
	switch p {
	case PriorityHigh:
		return 0
	case PriorityMedium:
		return 1
	case PriorityLow:
		return 2
	}
	return 3
}

type MaintenanceRequest struct {
	ID            string        `json:"id"`
	Subject       string        `json:"subject"`
	EquipmentID   string        `json:"equipment_id"`
	TeamID        string        `json:"team_id"`
	TechnicianID  string        `json:"technician_id"`
	Type          RequestType   `json:"type"`
	Status        RequestStatus `json:"status"`
	Priority      Priority      `json:"priority"`
	ScheduledDate time.Time     `json:"scheduled_date"`
	Duration      float64       `json:"duration"` // hours
	RootCause     string        `json:"root_cause"`
	CreatedBy     string        `json:"created_by"`

	types.BaseEntity
}
