package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gearguard/internal/entities"
)

func calendarRequest(id string, scheduled time.Time, priority entities.Priority) *entities.MaintenanceRequest {
	return &entities.MaintenanceRequest{
		ID: id, Subject: "task " + id, EquipmentID: "eq-1", TeamID: "t1",
		Type: entities.TypePreventive, Status: entities.StatusNew,
		Priority: priority, ScheduledDate: scheduled,
	}
}

func TestBuildMonthGridShape(t *testing.T) {
	// March 2024 starts on a Friday and ends on a Sunday; whole weeks make
	// it a 6x7 grid running Feb 25 through Apr 6.
	grid := BuildMonthGrid(2024, time.March, nil)

	require.Len(t, grid.Cells, 42)
	assert.Zero(t, len(grid.Cells)%7)
	assert.Equal(t, time.Sunday, grid.Cells[0].Date.Weekday())
	assert.Equal(t, time.Saturday, grid.Cells[len(grid.Cells)-1].Date.Weekday())
	assert.Equal(t, "2024-02-25", grid.Cells[0].Date.Format("2006-01-02"))
	assert.Equal(t, "2024-04-06", grid.Cells[len(grid.Cells)-1].Date.Format("2006-01-02"))

	inMonth := 0
	for _, cell := range grid.Cells {
		if cell.InMonth {
			inMonth++
		}
	}
	assert.Equal(t, 31, inMonth)
}

func TestBuildMonthGridFebruaryExactWeeks(t *testing.T) {
	// February 2026 spans exactly four Sunday-to-Saturday weeks.
	grid := BuildMonthGrid(2026, time.February, nil)
	assert.Len(t, grid.Cells, 28)
	for _, cell := range grid.Cells {
		assert.True(t, cell.InMonth)
	}
}

func TestBuildMonthGridOverflowCap(t *testing.T) {
	day := time.Date(2024, time.March, 12, 9, 30, 0, 0, time.UTC)
	requests := []*entities.MaintenanceRequest{
		calendarRequest("r1", day, entities.PriorityLow),
		calendarRequest("r2", day.Add(2*time.Hour), entities.PriorityHigh),
		calendarRequest("r3", day.Add(4*time.Hour), entities.PriorityMedium),
		calendarRequest("r4", day.Add(6*time.Hour), entities.PriorityLow),
	}

	grid := BuildMonthGrid(2024, time.March, requests)

	var cell *DayCell
	for i := range grid.Cells {
		if grid.Cells[i].Date.Day() == 12 && grid.Cells[i].InMonth {
			cell = &grid.Cells[i]
			break
		}
	}
	require.NotNil(t, cell)

	assert.Equal(t, 4, cell.Total)
	assert.Len(t, cell.Visible, CalendarVisibleCap)
	assert.Equal(t, 2, cell.Overflow)
	assert.Equal(t, entities.PriorityHigh, cell.TopPriority)
	// Visible keeps input order, it is not resorted by priority.
	assert.Equal(t, "r1", cell.Visible[0].ID)
	assert.Equal(t, "r2", cell.Visible[1].ID)
}

func TestBuildMonthGridBucketsInUTC(t *testing.T) {
	// 23:00 in UTC-5 is 04:00 next day UTC; the request lands on the 13th.
	loc := time.FixedZone("UTC-5", -5*3600)
	local := time.Date(2024, time.March, 12, 23, 0, 0, 0, loc)
	requests := []*entities.MaintenanceRequest{
		calendarRequest("r1", local, entities.PriorityMedium),
	}

	grid := BuildMonthGrid(2024, time.March, requests)
	for _, cell := range grid.Cells {
		if !cell.InMonth {
			continue
		}
		switch cell.Date.Day() {
		case 12:
			assert.Zero(t, cell.Total)
		case 13:
			assert.Equal(t, 1, cell.Total)
		}
	}
}

func TestMonthViewEnrichesVisibleRequests(t *testing.T) {
	store := seedStore(t)
	svc := newTestService(store)

	scheduled := time.Date(2024, time.March, 20, 8, 0, 0, 0, time.UTC)
	req := calendarRequest("req-cal", scheduled, entities.PriorityHigh)
	req.TechnicianID = "tech-a"
	require.NoError(t, store.CreateRequest(context.Background(), req))

	view, err := svc.MonthView(context.Background(), 2024, time.March)
	require.NoError(t, err)
	assert.Equal(t, 2024, view.Year)
	assert.Equal(t, 3, view.Month)

	found := false
	for _, cell := range view.Cells {
		if cell.Date == "2024-03-20" {
			found = true
			require.Len(t, cell.Requests, 1)
			assert.Equal(t, "CNC Mill", cell.Requests[0].EquipmentName)
			assert.Equal(t, "Alvarez", cell.Requests[0].TechnicianName)
			assert.Equal(t, "High", cell.TopPriority)
		}
	}
	assert.True(t, found)
}
