package services

import (
	"context"
	"time"

	"go.uber.org/zap"

	"gearguard/internal/dto"
	"gearguard/internal/entities"
	"gearguard/internal/repositories"
	apperrors "gearguard/pkg/errors"
	"gearguard/pkg/utils"
)

// systemActor is the default creator recorded for preventive tasks when the
// request carries no explicit or authenticated actor.
const systemActor = "Manager"

// Overdue reports whether a still-open request has slipped past its
// scheduled date. Terminal requests are never overdue.
func Overdue(r *entities.MaintenanceRequest, now time.Time) bool {
	return !r.Status.Terminal() && r.ScheduledDate.Before(now)
}

// SLABreached reports whether a still-open request has exceeded its grace
// window of offsetDays after the scheduled date.
func SLABreached(r *entities.MaintenanceRequest, now time.Time, offsetDays int) bool {
	return !r.Status.Terminal() && now.After(r.ScheduledDate.AddDate(0, 0, offsetDays))
}

// BreakdownCount counts corrective requests that progressed past intake.
// It feeds the breakdown-frequency input of the health score.
func BreakdownCount(requests []*entities.MaintenanceRequest) int {
	count := 0
	for _, r := range requests {
		if r.Type == entities.TypeCorrective && r.Status != entities.StatusNew {
			count++
		}
	}
	return count
}

// OverdueCount counts open requests past their scheduled date.
func OverdueCount(requests []*entities.MaintenanceRequest, now time.Time) int {
	count := 0
	for _, r := range requests {
		if Overdue(r, now) {
			count++
		}
	}
	return count
}

type RequestServiceInterface interface {
	GetRequests(ctx context.Context) ([]dto.RequestDTO, error)
	GetBoard(ctx context.Context) (map[entities.RequestStatus][]dto.RequestDTO, error)
	FindRequest(ctx context.Context, id string) (*dto.RequestDTO, error)
	CreateCorrective(ctx context.Context, input dto.CreateCorrectiveRequestDTO) (*dto.RequestDTO, error)
	CreatePreventive(ctx context.Context, input dto.CreatePreventiveRequestDTO) (*dto.RequestDTO, error)
	TransitionStatus(ctx context.Context, id string, input dto.TransitionStatusDTO) (*dto.RequestDTO, error)
}

type RequestService struct {
	requestRepo    repositories.RequestRepositoryInterface
	equipmentRepo  repositories.EquipmentRepositoryInterface
	teamRepo       repositories.TeamRepositoryInterface
	technicianRepo repositories.TechnicianRepositoryInterface
	slaOffsetDays  int
	logger         *zap.Logger

	// now is a hook for tests; production wiring leaves it nil.
	now func() time.Time
}

func NewRequestService(
	requestRepo repositories.RequestRepositoryInterface,
	equipmentRepo repositories.EquipmentRepositoryInterface,
	teamRepo repositories.TeamRepositoryInterface,
	technicianRepo repositories.TechnicianRepositoryInterface,
	slaOffsetDays int,
	logger *zap.Logger,
) *RequestService {
	return &RequestService{
		requestRepo:    requestRepo,
		equipmentRepo:  equipmentRepo,
		teamRepo:       teamRepo,
		technicianRepo: technicianRepo,
		slaOffsetDays:  slaOffsetDays,
		logger:         logger,
	}
}

func (s *RequestService) timeNow() time.Time {
	if s.now != nil {
		return s.now()
	}
	return time.Now().UTC()
}

// resolveEquipment loads and gate-checks the target equipment. Scrapped
// equipment rejects new requests of either type.
func (s *RequestService) resolveEquipment(ctx context.Context, equipmentID string) (*entities.Equipment, error) {
	equipment, err := s.equipmentRepo.FindEquipment(ctx, equipmentID)
	if err != nil {
		return nil, err
	}
	if equipment.IsScrapped {
		return nil, apperrors.ErrEquipmentScrapped
	}
	return equipment, nil
}

// resolveTechnician snapshots the assignment at creation time. When the
// equipment's default technician no longer resolves, it falls back to the
// least-loaded member of the equipment's team, then to the least-loaded
// technician overall. Only an empty technician roster fails.
func (s *RequestService) resolveTechnician(ctx context.Context, equipment *entities.Equipment) (string, error) {
	if _, err := s.technicianRepo.FindTechnician(ctx, equipment.DefaultTechnicianID); err == nil {
		return equipment.DefaultTechnicianID, nil
	}

	technicians, err := s.technicianRepo.GetTechnicians(ctx)
	if err != nil {
		return "", err
	}
	if len(technicians) == 0 {
		return "", apperrors.ErrNoTechnicianAvailable
	}

	// GetTechnicians orders by workload, so the first match is the
	// least-loaded candidate.
	if team, err := s.teamRepo.FindTeam(ctx, equipment.MaintenanceTeamID); err == nil {
		members := make(map[string]bool, len(team.Members))
		for _, id := range team.Members {
			members[id] = true
		}
		for _, t := range technicians {
			if members[t.ID] {
				return t.ID, nil
			}
		}
	}
	return technicians[0].ID, nil
}

func (s *RequestService) CreateCorrective(ctx context.Context, input dto.CreateCorrectiveRequestDTO) (*dto.RequestDTO, error) {
	equipment, err := s.resolveEquipment(ctx, input.EquipmentID)
	if err != nil {
		return nil, err
	}

	technicianID, err := s.resolveTechnician(ctx, equipment)
	if err != nil {
		return nil, err
	}

	createdBy := input.CreatedBy
	if createdBy == "" {
		createdBy = utils.ActorFromCtx(ctx)
	}
	if createdBy == "" {
		return nil, apperrors.NewInvalidInputError("created_by is required")
	}

	now := s.timeNow()
	request := &entities.MaintenanceRequest{
		ID:            utils.NewID("req"),
		Subject:       input.Subject,
		EquipmentID:   equipment.ID,
		TeamID:        equipment.MaintenanceTeamID,
		TechnicianID:  technicianID,
		Type:          entities.TypeCorrective,
		Status:        entities.StatusNew,
		Priority:      entities.Priority(input.Priority),
		ScheduledDate: now, // corrective issues are scheduled for now
		Duration:      0,
		RootCause:     "",
		CreatedBy:     createdBy,
	}
	request.CreatedAt = now
	request.UpdatedAt = now

	if err := s.requestRepo.CreateRequest(ctx, request); err != nil {
		s.logger.Error("failed to create corrective request", zap.Error(err))
		return nil, err
	}

	s.logger.Info("corrective request created",
		zap.String("id", request.ID),
		zap.String("equipment_id", equipment.ID),
		zap.String("technician_id", technicianID))
	return s.enrich(ctx, request), nil
}

func (s *RequestService) CreatePreventive(ctx context.Context, input dto.CreatePreventiveRequestDTO) (*dto.RequestDTO, error) {
	equipment, err := s.resolveEquipment(ctx, input.EquipmentID)
	if err != nil {
		return nil, err
	}

	technicianID, err := s.resolveTechnician(ctx, equipment)
	if err != nil {
		return nil, err
	}

	createdBy := input.CreatedBy
	if createdBy == "" {
		createdBy = utils.ActorFromCtx(ctx)
	}
	if createdBy == "" {
		createdBy = systemActor
	}

	now := s.timeNow()
	request := &entities.MaintenanceRequest{
		ID:            utils.NewID("req"),
		Subject:       input.Subject,
		EquipmentID:   equipment.ID,
		TeamID:        equipment.MaintenanceTeamID,
		TechnicianID:  technicianID,
		Type:          entities.TypePreventive,
		Status:        entities.StatusNew,
		Priority:      entities.Priority(input.Priority),
		ScheduledDate: input.ScheduledDate.UTC(),
		Duration:      0,
		RootCause:     "",
		CreatedBy:     createdBy,
	}
	request.CreatedAt = now
	request.UpdatedAt = now

	if err := s.requestRepo.CreateRequest(ctx, request); err != nil {
		s.logger.Error("failed to create preventive request", zap.Error(err))
		return nil, err
	}

	s.logger.Info("preventive request scheduled",
		zap.String("id", request.ID),
		zap.String("equipment_id", equipment.ID),
		zap.Time("scheduled_date", request.ScheduledDate))
	return s.enrich(ctx, request), nil
}

func (s *RequestService) TransitionStatus(ctx context.Context, id string, input dto.TransitionStatusDTO) (*dto.RequestDTO, error) {
	request, err := s.requestRepo.FindRequest(ctx, id)
	if err != nil {
		return nil, err
	}

	newStatus := entities.RequestStatus(input.Status)

	// A card dropped on its own column is a no-op, not an error.
	if newStatus == request.Status {
		return s.enrich(ctx, request), nil
	}
	if !request.Status.CanTransitionTo(newStatus) {
		s.logger.Warn("rejected status transition",
			zap.String("id", id),
			zap.String("from", string(request.Status)),
			zap.String("to", string(newStatus)))
		return nil, apperrors.ErrInvalidTransition
	}

	request.Status = newStatus
	if input.RootCause.Valid {
		request.RootCause = input.RootCause.String
	}
	if input.Duration.Valid {
		request.Duration = input.Duration.Float64
	}
	request.UpdatedAt = s.timeNow()

	if err := s.requestRepo.UpdateRequest(ctx, request); err != nil {
		return nil, err
	}

	s.logger.Info("request status changed",
		zap.String("id", id),
		zap.String("status", string(newStatus)))
	return s.enrich(ctx, request), nil
}

func (s *RequestService) GetRequests(ctx context.Context) ([]dto.RequestDTO, error) {
	requests, err := s.requestRepo.GetRequests(ctx)
	if err != nil {
		return nil, err
	}
	return s.enrichAll(ctx, requests), nil
}

func (s *RequestService) GetBoard(ctx context.Context) (map[entities.RequestStatus][]dto.RequestDTO, error) {
	requests, err := s.requestRepo.GetRequests(ctx)
	if err != nil {
		return nil, err
	}

	board := make(map[entities.RequestStatus][]dto.RequestDTO, len(entities.AllStatuses))
	for status, column := range GroupByStatus(requests) {
		board[status] = s.enrichAll(ctx, column)
	}
	return board, nil
}

func (s *RequestService) FindRequest(ctx context.Context, id string) (*dto.RequestDTO, error) {
	request, err := s.requestRepo.FindRequest(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.enrich(ctx, request), nil
}

// enrich resolves display names and derived flags. Name lookups are
// best-effort: a dangling reference renders as an empty name, it never fails
// the operation.
func (s *RequestService) enrich(ctx context.Context, r *entities.MaintenanceRequest) *dto.RequestDTO {
	now := s.timeNow()
	out := &dto.RequestDTO{
		ID:            r.ID,
		Subject:       r.Subject,
		EquipmentID:   r.EquipmentID,
		TeamID:        r.TeamID,
		TechnicianID:  r.TechnicianID,
		Type:          r.Type,
		Status:        r.Status,
		Priority:      r.Priority,
		ScheduledDate: r.ScheduledDate,
		Duration:      r.Duration,
		RootCause:     r.RootCause,
		CreatedBy:     r.CreatedBy,
		Overdue:       Overdue(r, now),
		SLABreached:   SLABreached(r, now, s.slaOffsetDays),
	}
	if equipment, err := s.equipmentRepo.FindEquipment(ctx, r.EquipmentID); err == nil {
		out.EquipmentName = equipment.Name
	}
	if technician, err := s.technicianRepo.FindTechnician(ctx, r.TechnicianID); err == nil {
		out.TechnicianName = technician.Name
	}
	return out
}

// nameMaps bulk-loads the id-to-name lookups used for display enrichment.
func (s *RequestService) nameMaps(ctx context.Context) (equipmentNames, technicianNames map[string]string) {
	equipmentNames = make(map[string]string)
	if equipments, err := s.equipmentRepo.GetEquipments(ctx); err == nil {
		for _, e := range equipments {
			equipmentNames[e.ID] = e.Name
		}
	}
	technicianNames = make(map[string]string)
	if technicians, err := s.technicianRepo.GetTechnicians(ctx); err == nil {
		for _, t := range technicians {
			technicianNames[t.ID] = t.Name
		}
	}
	return equipmentNames, technicianNames
}

// enrichAll resolves names through two bulk lookups instead of one query
// pair per request.
func (s *RequestService) enrichAll(ctx context.Context, requests []*entities.MaintenanceRequest) []dto.RequestDTO {
	equipmentNames, technicianNames := s.nameMaps(ctx)
	return s.enrichWith(requests, equipmentNames, technicianNames)
}

func (s *RequestService) enrichWith(requests []*entities.MaintenanceRequest, equipmentNames, technicianNames map[string]string) []dto.RequestDTO {
	now := s.timeNow()
	out := make([]dto.RequestDTO, 0, len(requests))
	for _, r := range requests {
		out = append(out, dto.RequestDTO{
			ID:             r.ID,
			Subject:        r.Subject,
			EquipmentID:    r.EquipmentID,
			EquipmentName:  equipmentNames[r.EquipmentID],
			TeamID:         r.TeamID,
			TechnicianID:   r.TechnicianID,
			TechnicianName: technicianNames[r.TechnicianID],
			Type:           r.Type,
			Status:         r.Status,
			Priority:       r.Priority,
			ScheduledDate:  r.ScheduledDate,
			Duration:       r.Duration,
			RootCause:      r.RootCause,
			CreatedBy:      r.CreatedBy,
			Overdue:        Overdue(r, now),
			SLABreached:    SLABreached(r, now, s.slaOffsetDays),
		})
	}
	return out
}
