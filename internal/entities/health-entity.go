package entities

// HealthScore is the categorical reliability summary of a piece of
// equipment.
type HealthScore string

const (
	HealthGood     HealthScore = "Good"
	HealthWarning  HealthScore = "Warning"
	HealthCritical HealthScore = "Critical"
)
