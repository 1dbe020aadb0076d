package services

import (
	"context"
	"time"

	"gearguard/internal/dto"
	"gearguard/internal/entities"
)

// CalendarVisibleCap limits how many requests a day cell lists before
// collapsing the rest into an overflow count.
const CalendarVisibleCap = 2

type DayCell struct {
	Date    time.Time
	InMonth bool
	// TopPriority is the most urgent priority present in the cell, empty
	// when the day has no requests.
	TopPriority entities.Priority
	Visible     []*entities.MaintenanceRequest
	Overflow    int
	Total       int
}

type MonthGrid struct {
	Year  int
	Month time.Month
	Cells []DayCell
}

// dateKey truncates to the calendar day in UTC. The bucketing policy is
// UTC throughout; clients localize for display.
func dateKey(t time.Time) string {
	return t.UTC().Format("2006-01-02")
}

// BuildMonthGrid lays the month out as whole Sunday-to-Saturday weeks: the
// grid runs from the Sunday on or before the 1st to the Saturday on or
// after the month's last day, so the cell count is always a multiple of 7.
// Requests are bucketed by the date part of their scheduled date. The
// builder is a pure projection and is recomputed per call.
func BuildMonthGrid(year int, month time.Month, requests []*entities.MaintenanceRequest) MonthGrid {
	byDate := make(map[string][]*entities.MaintenanceRequest)
	for _, r := range requests {
		key := dateKey(r.ScheduledDate)
		byDate[key] = append(byDate[key], r)
	}

	first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	last := first.AddDate(0, 1, -1)
	start := first.AddDate(0, 0, -int(first.Weekday()))
	end := last.AddDate(0, 0, 6-int(last.Weekday()))

	grid := MonthGrid{Year: year, Month: month}
	for day := start; !day.After(end); day = day.AddDate(0, 0, 1) {
		bucket := byDate[dateKey(day)]

		cell := DayCell{
			Date:    day,
			InMonth: day.Month() == month,
			Total:   len(bucket),
		}
		for _, r := range bucket {
			if cell.TopPriority == "" || r.Priority.Rank() < cell.TopPriority.Rank() {
				cell.TopPriority = r.Priority
			}
		}
		if len(bucket) > CalendarVisibleCap {
			cell.Visible = bucket[:CalendarVisibleCap]
			cell.Overflow = len(bucket) - CalendarVisibleCap
		} else {
			cell.Visible = bucket
		}
		grid.Cells = append(grid.Cells, cell)
	}
	return grid
}

// MonthView builds the calendar payload for a month: the pure grid over the
// current request set, with visible requests enriched for display.
func (s *RequestService) MonthView(ctx context.Context, year int, month time.Month) (*dto.MonthGridDTO, error) {
	requests, err := s.requestRepo.GetRequests(ctx)
	if err != nil {
		return nil, err
	}

	grid := BuildMonthGrid(year, month, requests)
	equipmentNames, technicianNames := s.nameMaps(ctx)
	out := &dto.MonthGridDTO{
		Year:  grid.Year,
		Month: int(grid.Month),
		Cells: make([]dto.DayCellDTO, 0, len(grid.Cells)),
	}
	for _, cell := range grid.Cells {
		out.Cells = append(out.Cells, dto.DayCellDTO{
			Date:        cell.Date.Format("2006-01-02"),
			InMonth:     cell.InMonth,
			TopPriority: string(cell.TopPriority),
			Requests:    s.enrichWith(cell.Visible, equipmentNames, technicianNames),
			Overflow:    cell.Overflow,
			Total:       cell.Total,
		})
	}
	return out, nil
}
