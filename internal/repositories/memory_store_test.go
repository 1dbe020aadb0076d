package repositories

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gearguard/internal/entities"
	apperrors "gearguard/pkg/errors"
)

func requestAt(id string, scheduled time.Time) *entities.MaintenanceRequest {
	return &entities.MaintenanceRequest{
		ID: id, Subject: "r " + id, EquipmentID: "eq-1",
		Type: entities.TypeCorrective, Status: entities.StatusNew,
		Priority: entities.PriorityMedium, ScheduledDate: scheduled,
	}
}

func TestMemoryStoreRequestsNewestFirst(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()
	base := time.Date(2024, time.June, 1, 0, 0, 0, 0, time.UTC)

	for i, id := range []string{"r1", "r2", "r3"} {
		require.NoError(t, store.CreateRequest(ctx, requestAt(id, base.AddDate(0, 0, i))))
	}

	list, err := store.GetRequests(ctx)
	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.Equal(t, "r3", list[0].ID)
	assert.Equal(t, "r1", list[2].ID)
}

func TestMemoryStoreCopiesOnReturn(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()
	require.NoError(t, store.CreateRequest(ctx, requestAt("r1", time.Now())))

	first, err := store.FindRequest(ctx, "r1")
	require.NoError(t, err)
	first.Subject = "mutated"

	second, err := store.FindRequest(ctx, "r1")
	require.NoError(t, err)
	assert.Equal(t, "r r1", second.Subject)
}

func TestMemoryStoreUpdateRequest(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()
	require.NoError(t, store.CreateRequest(ctx, requestAt("r1", time.Now())))

	updated := requestAt("r1", time.Now())
	updated.Status = entities.StatusInProgress
	require.NoError(t, store.UpdateRequest(ctx, updated))

	stored, err := store.FindRequest(ctx, "r1")
	require.NoError(t, err)
	assert.Equal(t, entities.StatusInProgress, stored.Status)

	missing := requestAt("r-missing", time.Now())
	assert.ErrorIs(t, store.UpdateRequest(ctx, missing), apperrors.ErrNotFound)
}

func TestMemoryStoreFilteredReport(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()
	base := time.Date(2024, time.June, 10, 0, 0, 0, 0, time.UTC)

	early := requestAt("r-early", base.AddDate(0, 0, -20))
	mid := requestAt("r-mid", base)
	mid.Type = entities.TypePreventive
	late := requestAt("r-late", base.AddDate(0, 0, 20))
	late.Status = entities.StatusRepaired
	other := requestAt("r-other", base)
	other.EquipmentID = "eq-2"

	for _, r := range []*entities.MaintenanceRequest{early, mid, late, other} {
		require.NoError(t, store.CreateRequest(ctx, r))
	}

	from := base.AddDate(0, 0, -1)
	to := base.AddDate(0, 0, 30)
	list, err := store.GetRequestsFiltered(ctx, entities.ReportFilter{
		DateFrom:    &from,
		DateTo:      &to,
		EquipmentID: "eq-1",
	})
	require.NoError(t, err)
	require.Len(t, list, 2)

	list, err = store.GetRequestsFiltered(ctx, entities.ReportFilter{
		Statuses: []entities.RequestStatus{entities.StatusRepaired},
	})
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "r-late", list[0].ID)

	list, err = store.GetRequestsFiltered(ctx, entities.ReportFilter{
		Types: []entities.RequestType{entities.TypePreventive},
	})
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "r-mid", list[0].ID)
}

func TestMemoryStoreTeamsSortedAndIsolated(t *testing.T) {
	store := NewMemoryStore()
	store.AddTeam(&entities.Team{ID: "t2", Name: "Zeta", Members: []string{"a"}})
	store.AddTeam(&entities.Team{ID: "t1", Name: "Alpha", Members: []string{"b"}})

	teams, err := store.GetTeams(context.Background())
	require.NoError(t, err)
	require.Len(t, teams, 2)
	assert.Equal(t, "Alpha", teams[0].Name)

	teams[0].Members[0] = "mutated"
	again, err := store.FindTeam(context.Background(), "t1")
	require.NoError(t, err)
	assert.Equal(t, []string{"b"}, again.Members)
}

func TestMemoryStoreUsers(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	u := &entities.User{ID: "u1", Name: "Admin", Email: "admin@example.com"}
	require.NoError(t, store.CreateUser(ctx, u))

	byEmail, err := store.FindUserByEmail(ctx, "admin@example.com")
	require.NoError(t, err)
	assert.Equal(t, "u1", byEmail.ID)

	_, err = store.FindUserByEmail(ctx, "nobody@example.com")
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}
