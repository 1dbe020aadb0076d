package services

import (
	"context"
	"encoding/json"
	"time"

	"go.uber.org/zap"

	"gearguard/internal/dto"
	"gearguard/internal/entities"
	"gearguard/internal/repositories"
	"gearguard/pkg/utils"
)

const healthCachePrefix = "health:"

type EquipmentServiceInterface interface {
	GetEquipments(ctx context.Context) ([]*entities.Equipment, error)
	FindEquipment(ctx context.Context, id string) (*dto.EquipmentDetailDTO, error)
	CreateEquipment(ctx context.Context, input dto.CreateEquipmentDTO) (*entities.Equipment, error)
	Health(ctx context.Context, equipmentID string) (*dto.HealthSummaryDTO, error)
}

type EquipmentService struct {
	equipmentRepo  repositories.EquipmentRepositoryInterface
	requestRepo    repositories.RequestRepositoryInterface
	teamRepo       repositories.TeamRepositoryInterface
	technicianRepo repositories.TechnicianRepositoryInterface
	cacheRepo      repositories.CacheRepositoryInterface
	scorer         HealthScorer
	requestSvc     *RequestService
	healthTTL      time.Duration
	logger         *zap.Logger
}

func NewEquipmentService(
	equipmentRepo repositories.EquipmentRepositoryInterface,
	requestRepo repositories.RequestRepositoryInterface,
	teamRepo repositories.TeamRepositoryInterface,
	technicianRepo repositories.TechnicianRepositoryInterface,
	cacheRepo repositories.CacheRepositoryInterface,
	scorer HealthScorer,
	requestSvc *RequestService,
	healthTTL time.Duration,
	logger *zap.Logger,
) *EquipmentService {
	return &EquipmentService{
		equipmentRepo:  equipmentRepo,
		requestRepo:    requestRepo,
		teamRepo:       teamRepo,
		technicianRepo: technicianRepo,
		cacheRepo:      cacheRepo,
		scorer:         scorer,
		requestSvc:     requestSvc,
		healthTTL:      healthTTL,
		logger:         logger,
	}
}

func (s *EquipmentService) GetEquipments(ctx context.Context) ([]*entities.Equipment, error) {
	return s.equipmentRepo.GetEquipments(ctx)
}

func (s *EquipmentService) CreateEquipment(ctx context.Context, input dto.CreateEquipmentDTO) (*entities.Equipment, error) {
	if _, err := s.teamRepo.FindTeam(ctx, input.MaintenanceTeamID); err != nil {
		s.logger.Warn("equipment create rejected: unknown maintenance team",
			zap.String("team_id", input.MaintenanceTeamID), zap.Error(err))
		return nil, err
	}
	if _, err := s.technicianRepo.FindTechnician(ctx, input.DefaultTechnicianID); err != nil {
		s.logger.Warn("equipment create rejected: unknown default technician",
			zap.String("technician_id", input.DefaultTechnicianID), zap.Error(err))
		return nil, err
	}

	now := time.Now().UTC()
	equipment := &entities.Equipment{
		ID:                   utils.NewID("eq"),
		Name:                 input.Name,
		SerialNumber:         input.SerialNumber,
		Location:             input.Location,
		Department:           input.Department,
		AssignedEmployee:     input.AssignedEmployee,
		MaintenanceTeamID:    input.MaintenanceTeamID,
		DefaultTechnicianID:  input.DefaultTechnicianID,
		MaintenanceFrequency: input.MaintenanceFrequency,
		ImageURL:             "https://placehold.co/600x400.png",
		ImageHint:            "industrial equipment",
	}
	equipment.CreatedAt = now
	equipment.UpdatedAt = now

	if err := s.equipmentRepo.CreateEquipment(ctx, equipment); err != nil {
		s.logger.Error("failed to create equipment", zap.Error(err))
		return nil, err
	}
	s.logger.Info("equipment created",
		zap.String("equipment_id", equipment.ID),
		zap.String("name", equipment.Name))
	return equipment, nil
}

func (s *EquipmentService) FindEquipment(ctx context.Context, id string) (*dto.EquipmentDetailDTO, error) {
	equipment, err := s.equipmentRepo.FindEquipment(ctx, id)
	if err != nil {
		return nil, err
	}

	history, err := s.requestRepo.GetRequestsByEquipment(ctx, id)
	if err != nil {
		return nil, err
	}

	detail := &dto.EquipmentDetailDTO{
		Equipment: equipment,
		History:   s.requestSvc.enrichAll(ctx, history),
	}
	for _, r := range history {
		if !r.Status.Terminal() {
			detail.OpenRequests++
		}
	}
	if team, err := s.teamRepo.FindTeam(ctx, equipment.MaintenanceTeamID); err == nil {
		detail.TeamName = team.Name
	}

	health, err := s.healthFromHistory(ctx, id, history)
	if err != nil {
		return nil, err
	}
	detail.Health = *health
	return detail, nil
}

// Health computes the breakdown and overdue counters for one asset and runs
// them through the scorer. Results are cached under health:<id> so repeated
// dashboard and detail loads do not re-hit the model.
func (s *EquipmentService) Health(ctx context.Context, equipmentID string) (*dto.HealthSummaryDTO, error) {
	if cached, err := s.cacheRepo.Get(ctx, healthCachePrefix+equipmentID); err == nil && cached != "" {
		var summary dto.HealthSummaryDTO
		if err := json.Unmarshal([]byte(cached), &summary); err == nil {
			return &summary, nil
		}
	}

	if _, err := s.equipmentRepo.FindEquipment(ctx, equipmentID); err != nil {
		return nil, err
	}
	history, err := s.requestRepo.GetRequestsByEquipment(ctx, equipmentID)
	if err != nil {
		return nil, err
	}
	return s.healthFromHistory(ctx, equipmentID, history)
}

func (s *EquipmentService) healthFromHistory(ctx context.Context, equipmentID string, history []*entities.MaintenanceRequest) (*dto.HealthSummaryDTO, error) {
	now := time.Now().UTC()
	summary := &dto.HealthSummaryDTO{
		BreakdownFrequency: BreakdownCount(history),
		OverdueTasks:       OverdueCount(history, now),
	}

	score, err := s.scorer.Score(ctx, summary.BreakdownFrequency, summary.OverdueTasks)
	if err != nil {
		s.logger.Warn("health scorer failed, using rule-based fallback",
			zap.String("equipment_id", equipmentID), zap.Error(err))
		score, _ = NewRuleBasedScorer().Score(ctx, summary.BreakdownFrequency, summary.OverdueTasks)
	}
	summary.HealthScore = string(score)

	if payload, err := json.Marshal(summary); err == nil {
		if err := s.cacheRepo.Set(ctx, healthCachePrefix+equipmentID, string(payload), s.healthTTL); err != nil {
			s.logger.Debug("health cache write failed", zap.Error(err))
		}
	}
	return summary, nil
}
