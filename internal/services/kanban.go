package services

import "gearguard/internal/entities"

// GroupByStatus partitions requests into the four board columns. The
// partition is stable and lossless: every request lands in exactly one
// bucket and keeps its relative order, and every column key is present even
// when empty. It never mutates its input; drag-and-drop reassignment goes
// through TransitionStatus, not through the view.
func GroupByStatus(requests []*entities.MaintenanceRequest) map[entities.RequestStatus][]*entities.MaintenanceRequest {
	board := make(map[entities.RequestStatus][]*entities.MaintenanceRequest, len(entities.AllStatuses))
	for _, status := range entities.AllStatuses {
		board[status] = []*entities.MaintenanceRequest{}
	}
	for _, r := range requests {
		board[r.Status] = append(board[r.Status], r)
	}
	return board
}
