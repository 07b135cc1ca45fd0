package models

// Allocation assigns a percentage of a user's capacity to a project over a
// date range. Percentages are per record; nothing caps the sum across
// overlapping allocations.
type Allocation struct {
	ID         string  `json:"id"`
	UserID     string  `json:"userId"`
	ProjectID  string  `json:"projectId"`
	PhaseID    string  `json:"phaseId,omitempty"`
	StartDate  string  `json:"startDate"`
	EndDate    string  `json:"endDate"`
	Percentage float64 `json:"percentage"`
}
