package dto

type TeamOpenCountDTO struct {
	TeamID   string `json:"team_id"`
	TeamName string `json:"team_name"`
	Open     int    `json:"open"`
}

type DashboardDTO struct {
	OpenRequests       int                `json:"open_requests"`
	OverdueRequests    int                `json:"overdue_requests"`
	Teams              int                `json:"teams"`
	Equipment          int                `json:"equipment"`
	RequestsByTeam     []TeamOpenCountDTO `json:"requests_by_team"`
	HealthDistribution map[string]int     `json:"health_distribution"`
}
