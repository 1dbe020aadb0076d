package dto

type HealthScoreInputDTO struct {
	BreakdownFrequency int `json:"breakdown_frequency" validate:"min=0"`
	OverdueTasks       int `json:"overdue_tasks" validate:"min=0"`
}

type HealthScoreOutputDTO struct {
	HealthScore string `json:"health_score"`
}

type SupportQueryDTO struct {
	Query string `json:"query" validate:"required,min=1"`
}

type SupportAnswerDTO struct {
	Answer string `json:"answer"`
}
