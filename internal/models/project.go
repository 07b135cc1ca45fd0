package models

const (
	ProjectTypeFixedPrice   = "fixed_price"
	ProjectTypeTimeMaterial = "time_material"
)

const (
	ProjectStatusActive   = "active"
	ProjectStatusInactive = "inactive"
	ProjectStatusArchived = "archived"
)

const (
	PhaseStatusActive = "active"
	PhaseStatusDone   = "done"
)

// Dates are carried as ISO strings (YYYY-MM-DD); no calendar arithmetic
// happens on them anywhere in the core.
type Project struct {
	ID             string  `json:"id"`
	Code           string  `json:"code"`
	Title          string  `json:"title"`
	Description    string  `json:"description,omitempty"`
	ClientID       string  `json:"clientId"`
	LeaderID       string  `json:"leaderId"`
	Type           string  `json:"type"`
	Status         string  `json:"status"`
	StartDate      string  `json:"startDate"`
	EndDate        string  `json:"endDate,omitempty"`
	BudgetFees     float64 `json:"budgetFees"`
	BudgetExpenses float64 `json:"budgetExpenses"`
}

type Phase struct {
	ID          string  `json:"id"`
	ProjectID   string  `json:"projectId"`
	Code        string  `json:"code"`
	Description string  `json:"description"`
	Status      string  `json:"status"`
	BudgetFees  float64 `json:"budgetFees,omitempty"`
}

// ProjectPatch is a partial-field update: nil fields leave the existing
// value untouched. The merge contract is deliberate — callers send only
// what changed.
type ProjectPatch struct {
	Code           *string  `json:"code,omitempty"`
	Title          *string  `json:"title,omitempty"`
	Description    *string  `json:"description,omitempty"`
	ClientID       *string  `json:"clientId,omitempty"`
	LeaderID       *string  `json:"leaderId,omitempty"`
	Type           *string  `json:"type,omitempty"`
	Status         *string  `json:"status,omitempty"`
	StartDate      *string  `json:"startDate,omitempty"`
	EndDate        *string  `json:"endDate,omitempty"`
	BudgetFees     *float64 `json:"budgetFees,omitempty"`
	BudgetExpenses *float64 `json:"budgetExpenses,omitempty"`
}

func (patch ProjectPatch) Apply(project *Project) {
	if project == nil {
		return
	}
	if patch.Code != nil {
		project.Code = *patch.Code
	}
	if patch.Title != nil {
		project.Title = *patch.Title
	}
	if patch.Description != nil {
		project.Description = *patch.Description
	}
	if patch.ClientID != nil {
		project.ClientID = *patch.ClientID
	}
	if patch.LeaderID != nil {
		project.LeaderID = *patch.LeaderID
	}
	if patch.Type != nil {
		project.Type = *patch.Type
	}
	if patch.Status != nil {
		project.Status = *patch.Status
	}
	if patch.StartDate != nil {
		project.StartDate = *patch.StartDate
	}
	if patch.EndDate != nil {
		project.EndDate = *patch.EndDate
	}
	if patch.BudgetFees != nil {
		project.BudgetFees = *patch.BudgetFees
	}
	if patch.BudgetExpenses != nil {
		project.BudgetExpenses = *patch.BudgetExpenses
	}
}
