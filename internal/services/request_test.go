package services

import (
	"context"
	"testing"
	"time"

	"github.com/aarondl/null/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"gearguard/internal/dto"
	"gearguard/internal/entities"
	"gearguard/internal/repositories"
	apperrors "gearguard/pkg/errors"
)

var testNow = time.Date(2024, time.March, 15, 10, 0, 0, 0, time.UTC)

func seedStore(t *testing.T) *repositories.MemoryStore {
	t.Helper()
	store := repositories.NewMemoryStore()

	store.AddTeam(&entities.Team{ID: "t1", Name: "Mechanics", Members: []string{"tech-a", "tech-b"}})
	store.AddTeam(&entities.Team{ID: "t2", Name: "Electrical", Members: []string{}})

	store.AddTechnician(&entities.Technician{ID: "tech-a", Name: "Alvarez", Workload: 2})
	store.AddTechnician(&entities.Technician{ID: "tech-b", Name: "Chen", Workload: 1})
	store.AddTechnician(&entities.Technician{ID: "tech-c", Name: "Okafor", Workload: 0})

	ctx := context.Background()
	require.NoError(t, store.CreateEquipment(ctx, &entities.Equipment{
		ID: "eq-1", Name: "CNC Mill", MaintenanceTeamID: "t1", DefaultTechnicianID: "tech-a",
	}))
	require.NoError(t, store.CreateEquipment(ctx, &entities.Equipment{
		ID: "eq-2", Name: "Conveyor", MaintenanceTeamID: "t1", DefaultTechnicianID: "",
	}))
	require.NoError(t, store.CreateEquipment(ctx, &entities.Equipment{
		ID: "eq-3", Name: "Old Press", MaintenanceTeamID: "t1", DefaultTechnicianID: "tech-a", IsScrapped: true,
	}))
	require.NoError(t, store.CreateEquipment(ctx, &entities.Equipment{
		ID: "eq-4", Name: "Label Printer", MaintenanceTeamID: "t2", DefaultTechnicianID: "",
	}))
	return store
}

func newTestService(store *repositories.MemoryStore) *RequestService {
	svc := NewRequestService(store, store, store, store, 2, zap.NewNop())
	svc.now = func() time.Time { return testNow }
	return svc
}

func TestCreateCorrectiveSnapshotsEquipmentDefaults(t *testing.T) {
	store := seedStore(t)
	svc := newTestService(store)

	res, err := svc.CreateCorrective(context.Background(), dto.CreateCorrectiveRequestDTO{
		Subject:     "Spindle vibrates",
		EquipmentID: "eq-1",
		CreatedBy:   "R. Douglas",
		Priority:    "High",
	})
	require.NoError(t, err)

	assert.Equal(t, "t1", res.TeamID)
	assert.Equal(t, "tech-a", res.TechnicianID)
	assert.Equal(t, entities.TypeCorrective, res.Type)
	assert.Equal(t, entities.StatusNew, res.Status)
	assert.Equal(t, entities.PriorityHigh, res.Priority)
	assert.Equal(t, testNow, res.ScheduledDate)
	assert.Equal(t, "R. Douglas", res.CreatedBy)
	assert.Equal(t, "CNC Mill", res.EquipmentName)
	assert.Equal(t, "Alvarez", res.TechnicianName)
}

func TestCreateCorrectiveScrappedEquipmentRejected(t *testing.T) {
	svc := newTestService(seedStore(t))

	_, err := svc.CreateCorrective(context.Background(), dto.CreateCorrectiveRequestDTO{
		Subject: "Leak", EquipmentID: "eq-3", CreatedBy: "X", Priority: "Low",
	})
	assert.ErrorIs(t, err, apperrors.ErrEquipmentScrapped)
}

func TestCreateCorrectiveUnknownEquipment(t *testing.T) {
	svc := newTestService(seedStore(t))

	_, err := svc.CreateCorrective(context.Background(), dto.CreateCorrectiveRequestDTO{
		Subject: "Leak", EquipmentID: "eq-missing", CreatedBy: "X", Priority: "Low",
	})
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestCreateCorrectiveRequiresCreator(t *testing.T) {
	svc := newTestService(seedStore(t))

	_, err := svc.CreateCorrective(context.Background(), dto.CreateCorrectiveRequestDTO{
		Subject: "Leak", EquipmentID: "eq-1", Priority: "Low",
	})

	var invalid *apperrors.InvalidInputError
	assert.ErrorAs(t, err, &invalid)
}

func TestTechnicianFallbackToLeastLoadedTeamMember(t *testing.T) {
	svc := newTestService(seedStore(t))

	// eq-2 has no default technician; tech-b carries the lowest workload
	// among the team's members even though tech-c is idler overall.
	res, err := svc.CreateCorrective(context.Background(), dto.CreateCorrectiveRequestDTO{
		Subject: "Belt slips", EquipmentID: "eq-2", CreatedBy: "X", Priority: "Medium",
	})
	require.NoError(t, err)
	assert.Equal(t, "tech-b", res.TechnicianID)
}

func TestTechnicianFallbackToLeastLoadedOverall(t *testing.T) {
	svc := newTestService(seedStore(t))

	// eq-4's team has no members, so assignment falls back to the global
	// least-loaded technician.
	res, err := svc.CreateCorrective(context.Background(), dto.CreateCorrectiveRequestDTO{
		Subject: "Paper jam", EquipmentID: "eq-4", CreatedBy: "X", Priority: "Low",
	})
	require.NoError(t, err)
	assert.Equal(t, "tech-c", res.TechnicianID)
}

func TestEmptyRosterFailsAssignment(t *testing.T) {
	store := repositories.NewMemoryStore()
	store.AddTeam(&entities.Team{ID: "t1", Name: "Mechanics"})
	require.NoError(t, store.CreateEquipment(context.Background(), &entities.Equipment{
		ID: "eq-1", Name: "CNC Mill", MaintenanceTeamID: "t1",
	}))
	svc := newTestService(store)

	_, err := svc.CreateCorrective(context.Background(), dto.CreateCorrectiveRequestDTO{
		Subject: "Broken", EquipmentID: "eq-1", CreatedBy: "X", Priority: "High",
	})
	assert.ErrorIs(t, err, apperrors.ErrNoTechnicianAvailable)
}

func TestCreatePreventiveDefaultsToSystemActor(t *testing.T) {
	svc := newTestService(seedStore(t))

	scheduled := time.Date(2024, time.April, 1, 0, 0, 0, 0, time.UTC)
	res, err := svc.CreatePreventive(context.Background(), dto.CreatePreventiveRequestDTO{
		Subject:       "Quarterly inspection",
		EquipmentID:   "eq-1",
		ScheduledDate: scheduled,
		Priority:      "Medium",
	})
	require.NoError(t, err)

	assert.Equal(t, "Manager", res.CreatedBy)
	assert.Equal(t, entities.TypePreventive, res.Type)
	assert.Equal(t, scheduled, res.ScheduledDate)
}

func TestCreatePreventiveAcceptsPastDates(t *testing.T) {
	svc := newTestService(seedStore(t))

	past := testNow.AddDate(0, 0, -10)
	res, err := svc.CreatePreventive(context.Background(), dto.CreatePreventiveRequestDTO{
		Subject: "Backdated check", EquipmentID: "eq-1", ScheduledDate: past, Priority: "Low",
	})
	require.NoError(t, err)
	assert.True(t, res.Overdue)
}

func createRequestWithStatus(t *testing.T, store *repositories.MemoryStore, id string, status entities.RequestStatus) {
	t.Helper()
	req := &entities.MaintenanceRequest{
		ID: id, Subject: "seed", EquipmentID: "eq-1", TeamID: "t1", TechnicianID: "tech-a",
		Type: entities.TypeCorrective, Status: status, Priority: entities.PriorityMedium,
		ScheduledDate: testNow,
	}
	req.CreatedAt = testNow
	req.UpdatedAt = testNow
	require.NoError(t, store.CreateRequest(context.Background(), req))
}

func TestTransitionMatrix(t *testing.T) {
	cases := []struct {
		from    entities.RequestStatus
		to      entities.RequestStatus
		allowed bool
	}{
		{entities.StatusNew, entities.StatusInProgress, true},
		{entities.StatusNew, entities.StatusScrap, true},
		{entities.StatusNew, entities.StatusRepaired, false},
		{entities.StatusInProgress, entities.StatusRepaired, true},
		{entities.StatusInProgress, entities.StatusScrap, true},
		{entities.StatusInProgress, entities.StatusNew, false},
		{entities.StatusRepaired, entities.StatusInProgress, false},
		{entities.StatusRepaired, entities.StatusScrap, false},
		{entities.StatusScrap, entities.StatusNew, false},
		{entities.StatusScrap, entities.StatusRepaired, false},
	}

	for _, tc := range cases {
		t.Run(string(tc.from)+"_to_"+string(tc.to), func(t *testing.T) {
			store := seedStore(t)
			svc := newTestService(store)
			createRequestWithStatus(t, store, "req-1", tc.from)

			_, err := svc.TransitionStatus(context.Background(), "req-1", dto.TransitionStatusDTO{
				Status: string(tc.to),
			})
			if tc.allowed {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, apperrors.ErrInvalidTransition)
			}
		})
	}
}

func TestTransitionSameStatusIsNoOp(t *testing.T) {
	store := seedStore(t)
	svc := newTestService(store)
	createRequestWithStatus(t, store, "req-1", entities.StatusNew)

	res, err := svc.TransitionStatus(context.Background(), "req-1", dto.TransitionStatusDTO{
		Status: string(entities.StatusNew),
	})
	require.NoError(t, err)
	assert.Equal(t, entities.StatusNew, res.Status)

	stored, err := store.FindRequest(context.Background(), "req-1")
	require.NoError(t, err)
	assert.Equal(t, testNow, stored.UpdatedAt)
}

func TestTransitionAppliesCloseoutFields(t *testing.T) {
	store := seedStore(t)
	svc := newTestService(store)
	createRequestWithStatus(t, store, "req-1", entities.StatusInProgress)

	res, err := svc.TransitionStatus(context.Background(), "req-1", dto.TransitionStatusDTO{
		Status:    string(entities.StatusRepaired),
		RootCause: null.StringFrom("Worn seal"),
		Duration:  null.Float64From(5.5),
	})
	require.NoError(t, err)
	assert.Equal(t, "Worn seal", res.RootCause)
	assert.Equal(t, 5.5, res.Duration)

	stored, err := store.FindRequest(context.Background(), "req-1")
	require.NoError(t, err)
	assert.Equal(t, entities.StatusRepaired, stored.Status)
	assert.Equal(t, "Worn seal", stored.RootCause)
}

func TestTransitionLeavesCloseoutFieldsWhenAbsent(t *testing.T) {
	store := seedStore(t)
	svc := newTestService(store)
	createRequestWithStatus(t, store, "req-1", entities.StatusInProgress)

	res, err := svc.TransitionStatus(context.Background(), "req-1", dto.TransitionStatusDTO{
		Status: string(entities.StatusScrap),
	})
	require.NoError(t, err)
	assert.Empty(t, res.RootCause)
	assert.Zero(t, res.Duration)
}

func TestTransitionUnknownRequest(t *testing.T) {
	svc := newTestService(seedStore(t))

	_, err := svc.TransitionStatus(context.Background(), "req-missing", dto.TransitionStatusDTO{
		Status: string(entities.StatusScrap),
	})
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestOverdueOnlyForOpenRequests(t *testing.T) {
	past := testNow.AddDate(0, 0, -5)
	for _, status := range entities.AllStatuses {
		r := &entities.MaintenanceRequest{Status: status, ScheduledDate: past}
		want := status == entities.StatusNew || status == entities.StatusInProgress
		assert.Equal(t, want, Overdue(r, testNow), "status %s", status)
	}

	future := &entities.MaintenanceRequest{Status: entities.StatusNew, ScheduledDate: testNow.AddDate(0, 0, 1)}
	assert.False(t, Overdue(future, testNow))
}

func TestSLABreachBoundary(t *testing.T) {
	scheduled := testNow.AddDate(0, 0, -2)
	r := &entities.MaintenanceRequest{Status: entities.StatusNew, ScheduledDate: scheduled}

	// Exactly at the offset boundary the SLA still holds.
	assert.False(t, SLABreached(r, scheduled.AddDate(0, 0, 2), 2))
	assert.True(t, SLABreached(r, scheduled.AddDate(0, 0, 2).Add(time.Second), 2))

	closed := &entities.MaintenanceRequest{Status: entities.StatusRepaired, ScheduledDate: scheduled}
	assert.False(t, SLABreached(closed, testNow.AddDate(0, 0, 30), 2))
}

func TestBreakdownAndOverdueCounters(t *testing.T) {
	past := testNow.AddDate(0, 0, -1)
	requests := []*entities.MaintenanceRequest{
		{Type: entities.TypeCorrective, Status: entities.StatusNew, ScheduledDate: past},
		{Type: entities.TypeCorrective, Status: entities.StatusInProgress, ScheduledDate: past},
		{Type: entities.TypeCorrective, Status: entities.StatusRepaired, ScheduledDate: past},
		{Type: entities.TypePreventive, Status: entities.StatusInProgress, ScheduledDate: past},
		{Type: entities.TypePreventive, Status: entities.StatusNew, ScheduledDate: testNow.AddDate(0, 0, 3)},
	}

	assert.Equal(t, 2, BreakdownCount(requests))
	assert.Equal(t, 3, OverdueCount(requests, testNow))
}

func TestGetBoardPartitionIsLossless(t *testing.T) {
	store := seedStore(t)
	svc := newTestService(store)
	createRequestWithStatus(t, store, "req-1", entities.StatusNew)
	createRequestWithStatus(t, store, "req-2", entities.StatusInProgress)
	createRequestWithStatus(t, store, "req-3", entities.StatusNew)
	createRequestWithStatus(t, store, "req-4", entities.StatusScrap)

	board, err := svc.GetBoard(context.Background())
	require.NoError(t, err)

	total := 0
	for _, status := range entities.AllStatuses {
		column, ok := board[status]
		assert.True(t, ok, "missing column %s", status)
		total += len(column)
	}
	assert.Equal(t, 4, total)
	assert.Len(t, board[entities.StatusNew], 2)
	assert.Len(t, board[entities.StatusRepaired], 0)
}
