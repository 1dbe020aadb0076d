package services

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"

	"gearguard/internal/dto"
	"gearguard/internal/entities"
	"gearguard/internal/repositories"
)

type DashboardServiceInterface interface {
	GetDashboardStats(ctx context.Context) (*dto.DashboardDTO, error)
}

type DashboardService struct {
	requestRepo   repositories.RequestRepositoryInterface
	equipmentRepo repositories.EquipmentRepositoryInterface
	teamRepo      repositories.TeamRepositoryInterface
	equipmentSvc  EquipmentServiceInterface
	logger        *zap.Logger
}

func NewDashboardService(
	requestRepo repositories.RequestRepositoryInterface,
	equipmentRepo repositories.EquipmentRepositoryInterface,
	teamRepo repositories.TeamRepositoryInterface,
	equipmentSvc EquipmentServiceInterface,
	logger *zap.Logger,
) *DashboardService {
	return &DashboardService{
		requestRepo:   requestRepo,
		equipmentRepo: equipmentRepo,
		teamRepo:      teamRepo,
		equipmentSvc:  equipmentSvc,
		logger:        logger,
	}
}

func (s *DashboardService) GetDashboardStats(ctx context.Context) (*dto.DashboardDTO, error) {
	var (
		wg         sync.WaitGroup
		requests   []*entities.MaintenanceRequest
		equipments []*entities.Equipment
		teams      []*entities.Team

		errs []error
		mu   sync.Mutex
	)

	addTask := func(fn func() error) {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if err := fn(); err != nil {
				mu.Lock()
				errs = append(errs, err)
				mu.Unlock()
			}
		}()
	}

	addTask(func() (err error) { requests, err = s.requestRepo.GetRequests(ctx); return })
	addTask(func() (err error) { equipments, err = s.equipmentRepo.GetEquipments(ctx); return })
	addTask(func() (err error) { teams, err = s.teamRepo.GetTeams(ctx); return })

	wg.Wait()

	if len(errs) > 0 {
		s.logger.Error("dashboard fetch failed", zap.Error(errs[0]))
		return nil, errs[0]
	}

	now := time.Now().UTC()
	stats := &dto.DashboardDTO{
		Teams:              len(teams),
		Equipment:          len(equipments),
		HealthDistribution: make(map[string]int),
	}

	openByTeam := make(map[string]int)
	for _, r := range requests {
		if r.Status.Terminal() {
			continue
		}
		stats.OpenRequests++
		openByTeam[r.TeamID]++
		if Overdue(r, now) {
			stats.OverdueRequests++
		}
	}

	stats.RequestsByTeam = make([]dto.TeamOpenCountDTO, 0, len(teams))
	for _, t := range teams {
		stats.RequestsByTeam = append(stats.RequestsByTeam, dto.TeamOpenCountDTO{
			TeamID:   t.ID,
			TeamName: t.Name,
			Open:     openByTeam[t.ID],
		})
	}

	for _, e := range equipments {
		health, err := s.equipmentSvc.Health(ctx, e.ID)
		if err != nil {
			s.logger.Warn("health lookup failed",
				zap.String("equipment_id", e.ID), zap.Error(err))
			continue
		}
		stats.HealthDistribution[health.HealthScore]++
	}

	return stats, nil
}
