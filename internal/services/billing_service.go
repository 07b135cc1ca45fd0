package services

import (
	"time"

	"github.com/praxislabs/praxis/internal/ident"
	"github.com/praxislabs/praxis/internal/models"
)

// FlatHourlyRate is the single rate applied when estimating a draft
// invoice. Draft estimation deliberately does not resolve each entry's
// service-type rate; the estimate is a flat-rate approximation.
const FlatHourlyRate = 150.0

const draftDueDays = 30

type BillingEntryReader interface {
	ServiceEntries() []models.ServiceEntry
}

// BillingService derives invoice drafts from unbilled time.
type BillingService struct {
	entries BillingEntryReader
}

func NewBillingService(entries BillingEntryReader) *BillingService {
	return &BillingService{entries: entries}
}

// UnbilledMinutes sums the minutes of every unbilled entry on the project.
// Entries already attached to an invoice are invisible here.
func UnbilledMinutes(entries []models.ServiceEntry, projectID string) int {
	total := 0
	for _, entry := range entries {
		if entry.ProjectID == projectID && !entry.Billed {
			total += entry.Minutes
		}
	}
	return total
}

// DraftAmount converts unbilled minutes to the flat-rate estimate.
func DraftAmount(minutes int) float64 {
	return float64(minutes) / 60 * FlatHourlyRate
}

type UnbilledSummary struct {
	ProjectID       string  `json:"projectId"`
	Minutes         int     `json:"minutes"`
	Hours           float64 `json:"hours"`
	EstimatedAmount float64 `json:"estimatedAmount"`
}

func (service *BillingService) UnbilledSummary(projectID string) UnbilledSummary {
	minutes := UnbilledMinutes(service.entries.ServiceEntries(), projectID)
	return UnbilledSummary{
		ProjectID:       projectID,
		Minutes:         minutes,
		Hours:           float64(minutes) / 60,
		EstimatedAmount: DraftAmount(minutes),
	}
}

// BuildDraftInvoice assembles a draft invoice for the project's unbilled
// time as of now. The underlying entries stay unbilled; attaching them to
// the invoice is a separate, not yet implemented step, so the draft starts
// with no items.
func (service *BillingService) BuildDraftInvoice(projectID string, now time.Time) models.Invoice {
	minutes := UnbilledMinutes(service.entries.ServiceEntries(), projectID)
	return models.Invoice{
		ID:          ident.New("inv"),
		Number:      ident.InvoiceNumber(now.Year()),
		ProjectID:   projectID,
		Date:        now.Format("2006-01-02"),
		DueDate:     now.AddDate(0, 0, draftDueDays).Format("2006-01-02"),
		TotalAmount: DraftAmount(minutes),
		Status:      models.InvoiceStatusDraft,
		Items:       []models.InvoiceItem{},
	}
}
