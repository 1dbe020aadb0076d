package entities

// Team is static reference data: a named maintenance crew.
type Team struct {
	ID      string   `json:"id"`
	Name    string   `json:"name"`
	Members []string `json:"members"` // technician ids
}
