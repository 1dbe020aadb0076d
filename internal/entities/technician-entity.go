package entities

// Technician is static reference data. Workload is informational and feeds
// the assignment fallback; it is not enforced as a scheduling constraint.
type Technician struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Workload int    `json:"workload"`
}
