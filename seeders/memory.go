package seeders

import (
	"context"
	"time"

	"go.uber.org/zap"

	"gearguard/internal/repositories"
	"gearguard/pkg/utils"
)

// SeedMemory loads the demo dataset into the in-memory store. The memory
// driver starts empty on every boot, so this runs unconditionally.
func SeedMemory(store *repositories.MemoryStore, logger *zap.Logger) {
	ctx := context.Background()
	now := time.Now().UTC()

	for i := range teamsData {
		t := teamsData[i]
		t.Members = append([]string{}, teamMembersData[t.ID]...)
		store.AddTeam(&t)
	}
	for i := range techniciansData {
		t := techniciansData[i]
		store.AddTechnician(&t)
	}
	for i := range equipmentsData {
		e := equipmentsData[i]
		e.CreatedAt = now
		e.UpdatedAt = now
		if err := store.CreateEquipment(ctx, &e); err != nil {
			logger.Warn("seed equipment failed", zap.String("id", e.ID), zap.Error(err))
		}
	}

	// Seeds are inserted oldest-first so the store's newest-first ordering
	// matches the declared order.
	for i := len(requestsData) - 1; i >= 0; i-- {
		req := requestsData[i].toEntity(now)
		if err := store.CreateRequest(ctx, req); err != nil {
			logger.Warn("seed request failed", zap.String("id", req.ID), zap.Error(err))
		}
	}

	seedAdmin(ctx, store, logger, now)

	logger.Info("memory store seeded",
		zap.Int("teams", len(teamsData)),
		zap.Int("technicians", len(techniciansData)),
		zap.Int("equipment", len(equipmentsData)),
		zap.Int("requests", len(requestsData)))
}

func seedAdmin(ctx context.Context, store *repositories.MemoryStore, logger *zap.Logger, now time.Time) {
	hash, err := utils.HashPassword("changeme123")
	if err != nil {
		logger.Warn("seed admin hash failed", zap.Error(err))
		return
	}
	admin := adminUser(hash, now)
	if err := store.CreateUser(ctx, admin); err != nil {
		logger.Warn("seed admin failed", zap.Error(err))
	}
}
