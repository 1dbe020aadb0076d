package entities

import "time"

// ReportFilter narrows the maintenance report.
type ReportFilter struct {
	DateFrom    *time.Time
	DateTo      *time.Time
	Statuses    []RequestStatus
	Types       []RequestType
	EquipmentID string
}

// ReportItem is one flattened row of the maintenance report, with the
// referenced names resolved for export.
type ReportItem struct {
	RequestID      string
	Subject        string
	EquipmentName  string
	SerialNumber   string
	TeamName       string
	TechnicianName string
	Type           RequestType
	Status         RequestStatus
	Priority       Priority
	ScheduledDate  time.Time
	DurationHours  float64
	RootCause      string
	CreatedBy      string
	Overdue        bool
	SLABreached    bool
}
