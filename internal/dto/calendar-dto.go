package dto

type DayCellDTO struct {
	Date        string       `json:"date"` // YYYY-MM-DD
	InMonth     bool         `json:"in_month"`
	TopPriority string       `json:"top_priority,omitempty"`
	Requests    []RequestDTO `json:"requests"`
	Overflow    int          `json:"overflow"`
	Total       int          `json:"total"`
}

type MonthGridDTO struct {
	Year  int          `json:"year"`
	Month int          `json:"month"`
	Cells []DayCellDTO `json:"cells"`
}
