package models

type ServiceType struct {
	ID           string  `json:"id"`
	Name         string  `json:"name"`
	StandardRate float64 `json:"standardRate"`
}

// ServiceEntry is a logged block of time. Billed stays false until the
// entry is attached to an invoice, at which point InvoiceID is set.
type ServiceEntry struct {
	ID            string `json:"id"`
	ProjectID     string `json:"projectId"`
	PhaseID       string `json:"phaseId"`
	UserID        string `json:"userId"`
	ServiceTypeID string `json:"serviceTypeId"`
	Date          string `json:"date"`
	Minutes       int    `json:"minutes"`
	Description   string `json:"description"`
	Billed        bool   `json:"billed"`
	InvoiceID     string `json:"invoiceId,omitempty"`
}
