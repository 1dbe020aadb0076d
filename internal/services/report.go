package services

import (
	"context"
	"time"

	"go.uber.org/zap"

	"gearguard/internal/entities"
	"gearguard/internal/repositories"
)

type ReportServiceInterface interface {
	GetReport(ctx context.Context, filter entities.ReportFilter) ([]entities.ReportItem, error)
}

type reportService struct {
	requestRepo    repositories.RequestRepositoryInterface
	equipmentRepo  repositories.EquipmentRepositoryInterface
	teamRepo       repositories.TeamRepositoryInterface
	technicianRepo repositories.TechnicianRepositoryInterface
	slaOffsetDays  int
	logger         *zap.Logger
}

func NewReportService(
	requestRepo repositories.RequestRepositoryInterface,
	equipmentRepo repositories.EquipmentRepositoryInterface,
	teamRepo repositories.TeamRepositoryInterface,
	technicianRepo repositories.TechnicianRepositoryInterface,
	slaOffsetDays int,
	logger *zap.Logger,
) ReportServiceInterface {
	return &reportService{
		requestRepo:    requestRepo,
		equipmentRepo:  equipmentRepo,
		teamRepo:       teamRepo,
		technicianRepo: technicianRepo,
		slaOffsetDays:  slaOffsetDays,
		logger:         logger,
	}
}

// GetReport flattens the filtered request set into export rows with every
// referenced name resolved. Lookups are bulk-loaded once per call.
func (s *reportService) GetReport(ctx context.Context, filter entities.ReportFilter) ([]entities.ReportItem, error) {
	requests, err := s.requestRepo.GetRequestsFiltered(ctx, filter)
	if err != nil {
		return nil, err
	}

	equipmentByID := make(map[string]*entities.Equipment)
	if equipments, err := s.equipmentRepo.GetEquipments(ctx); err == nil {
		for _, e := range equipments {
			equipmentByID[e.ID] = e
		}
	} else {
		s.logger.Warn("report equipment lookup failed", zap.Error(err))
	}
	teamNames := make(map[string]string)
	if teams, err := s.teamRepo.GetTeams(ctx); err == nil {
		for _, t := range teams {
			teamNames[t.ID] = t.Name
		}
	}
	technicianNames := make(map[string]string)
	if technicians, err := s.technicianRepo.GetTechnicians(ctx); err == nil {
		for _, t := range technicians {
			technicianNames[t.ID] = t.Name
		}
	}

	now := time.Now().UTC()
	items := make([]entities.ReportItem, 0, len(requests))
	for _, r := range requests {
		item := entities.ReportItem{
			RequestID:      r.ID,
			Subject:        r.Subject,
			TeamName:       teamNames[r.TeamID],
			TechnicianName: technicianNames[r.TechnicianID],
			Type:           r.Type,
			Status:         r.Status,
			Priority:       r.Priority,
			ScheduledDate:  r.ScheduledDate,
			DurationHours:  r.Duration,
			RootCause:      r.RootCause,
			CreatedBy:      r.CreatedBy,
			Overdue:        Overdue(r, now),
			SLABreached:    SLABreached(r, now, s.slaOffsetDays),
		}
		if e, ok := equipmentByID[r.EquipmentID]; ok {
			item.EquipmentName = e.Name
			item.SerialNumber = e.SerialNumber
		}
		items = append(items, item)
	}
	return items, nil
}
