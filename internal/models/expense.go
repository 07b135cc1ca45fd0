package models

type ExpenseType struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type ExpenseEntry struct {
	ID            string  `json:"id"`
	ProjectID     string  `json:"projectId"`
	PhaseID       string  `json:"phaseId"`
	UserID        string  `json:"userId"`
	ExpenseTypeID string  `json:"expenseTypeId"`
	Date          string  `json:"date"`
	Amount        float64 `json:"amount"`
	Currency      string  `json:"currency"`
	Description   string  `json:"description"`
	Billed        bool    `json:"billed"`
	InvoiceID     string  `json:"invoiceId,omitempty"`
}
