package seeders

import (
	"time"

	"gearguard/internal/entities"
)

var teamsData = []entities.Team{
	{ID: "team-mechanics", Name: "Mechanics"},
	{ID: "team-electrical", Name: "Electrical"},
	{ID: "team-it", Name: "IT Support"},
}

var techniciansData = []entities.Technician{
	{ID: "tech-j-alvarez", Name: "J. Alvarez", Workload: 2},
	{ID: "tech-m-chen", Name: "M. Chen", Workload: 1},
	{ID: "tech-s-okafor", Name: "S. Okafor", Workload: 0},
	{ID: "tech-l-petrov", Name: "L. Petrov", Workload: 3},
	{ID: "tech-a-rahimi", Name: "A. Rahimi", Workload: 1},
}

var teamMembersData = map[string][]string{
	"team-mechanics":  {"tech-j-alvarez", "tech-m-chen"},
	"team-electrical": {"tech-s-okafor", "tech-l-petrov"},
	"team-it":         {"tech-a-rahimi"},
}

var equipmentsData = []entities.Equipment{
	{
		ID: "eq-cnc-01", Name: "CNC Milling Machine", SerialNumber: "CNC-2022-0147",
		Location: "Hall A", Department: "Production", AssignedEmployee: "R. Douglas",
		MaintenanceTeamID: "team-mechanics", DefaultTechnicianID: "tech-j-alvarez",
		MaintenanceFrequency: 90,
		ImageURL:             "https://placehold.co/600x400.png", ImageHint: "cnc machine",
	},
	{
		ID: "eq-conveyor-02", Name: "Conveyor Belt B2", SerialNumber: "CVB-2019-0031",
		Location: "Hall B", Department: "Logistics", AssignedEmployee: "T. Mensah",
		MaintenanceTeamID: "team-mechanics", DefaultTechnicianID: "",
		MaintenanceFrequency: 60,
		ImageURL:             "https://placehold.co/600x400.png", ImageHint: "conveyor belt",
	},
	{
		ID: "eq-press-03", Name: "Hydraulic Press", SerialNumber: "HYP-2020-0092",
		Location: "Hall A", Department: "Production", AssignedEmployee: "K. Ivanova",
		MaintenanceTeamID: "team-electrical", DefaultTechnicianID: "tech-s-okafor",
		MaintenanceFrequency: 45,
		ImageURL:             "https://placehold.co/600x400.png", ImageHint: "hydraulic press",
	},
	{
		ID: "eq-printer-04", Name: "Label Printer", SerialNumber: "LBP-2023-0008",
		Location: "Office 2F", Department: "Shipping", AssignedEmployee: "D. Costa",
		MaintenanceTeamID: "team-it", DefaultTechnicianID: "tech-a-rahimi",
		MaintenanceFrequency: 180,
		ImageURL:             "https://placehold.co/600x400.png", ImageHint: "label printer",
	},
}

type requestSeed struct {
	ID            string
	Subject       string
	EquipmentID   string
	Type          entities.RequestType
	Status        entities.RequestStatus
	Priority      entities.Priority
	ScheduledDays int // offset from now, negative for past dates
	Duration      float64
	RootCause     string
	CreatedBy     string
}

var requestsData = []requestSeed{
	{
		ID: "req-seed-001", Subject: "Spindle vibrates above 2000 RPM",
		EquipmentID: "eq-cnc-01", Type: entities.TypeCorrective,
		Status: entities.StatusInProgress, Priority: entities.PriorityHigh,
		ScheduledDays: -3, CreatedBy: "R. Douglas",
	},
	{
		ID: "req-seed-002", Subject: "Quarterly belt tension check",
		EquipmentID: "eq-conveyor-02", Type: entities.TypePreventive,
		Status: entities.StatusNew, Priority: entities.PriorityMedium,
		ScheduledDays: 7, CreatedBy: "Manager",
	},
	{
		ID: "req-seed-003", Subject: "Press cycle stalls mid-stroke",
		EquipmentID: "eq-press-03", Type: entities.TypeCorrective,
		Status: entities.StatusRepaired, Priority: entities.PriorityHigh,
		ScheduledDays: -14, Duration: 5.5, RootCause: "Worn seal on the main cylinder",
		CreatedBy: "K. Ivanova",
	},
	{
		ID: "req-seed-004", Subject: "Firmware update and head cleaning",
		EquipmentID: "eq-printer-04", Type: entities.TypePreventive,
		Status: entities.StatusNew, Priority: entities.PriorityLow,
		ScheduledDays: 21, CreatedBy: "Manager",
	},
	{
		ID: "req-seed-005", Subject: "Coolant leak under the bed",
		EquipmentID: "eq-cnc-01", Type: entities.TypeCorrective,
		Status: entities.StatusNew, Priority: entities.PriorityMedium,
		ScheduledDays: -1, CreatedBy: "R. Douglas",
	},
}

func (r requestSeed) toEntity(now time.Time) *entities.MaintenanceRequest {
	var equipment entities.Equipment
	for _, e := range equipmentsData {
		if e.ID == r.EquipmentID {
			equipment = e
			break
		}
	}

	technicianID := equipment.DefaultTechnicianID
	if technicianID == "" {
		if members := teamMembersData[equipment.MaintenanceTeamID]; len(members) > 0 {
			technicianID = members[0]
		}
	}

	req := &entities.MaintenanceRequest{
		ID:            r.ID,
		Subject:       r.Subject,
		EquipmentID:   r.EquipmentID,
		TeamID:        equipment.MaintenanceTeamID,
		TechnicianID:  technicianID,
		Type:          r.Type,
		Status:        r.Status,
		Priority:      r.Priority,
		ScheduledDate: now.AddDate(0, 0, r.ScheduledDays),
		Duration:      r.Duration,
		RootCause:     r.RootCause,
		CreatedBy:     r.CreatedBy,
	}
	req.CreatedAt = now
	req.UpdatedAt = now
	return req
}
