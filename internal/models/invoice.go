package models

const (
	InvoiceStatusDraft     = "draft"
	InvoiceStatusOpen      = "open"
	InvoiceStatusPaid      = "paid"
	InvoiceStatusCancelled = "cancelled"
)

type Invoice struct {
	ID          string        `json:"id"`
	Number      string        `json:"number"`
	ProjectID   string        `json:"projectId"`
	Date        string        `json:"date"`
	DueDate     string        `json:"dueDate"`
	TotalAmount float64       `json:"totalAmount"`
	Status      string        `json:"status"`
	Items       []InvoiceItem `json:"items"`
}

type InvoiceItem struct {
	ID          string  `json:"id"`
	Description string  `json:"description"`
	Amount      float64 `json:"amount"`
}
