package services

import "github.com/praxislabs/praxis/internal/models"

type ReportInvoiceReader interface {
	Invoices() []models.Invoice
}

type ReportProjectReader interface {
	Projects() []models.Project
}

// ReportService assembles the management overview figures.
type ReportService struct {
	invoices      ReportInvoiceReader
	projects      ReportProjectReader
	opportunities PipelineOpportunityReader
}

func NewReportService(invoices ReportInvoiceReader, projects ReportProjectReader, opportunities PipelineOpportunityReader) *ReportService {
	return &ReportService{invoices: invoices, projects: projects, opportunities: opportunities}
}

// RevenueTotal sums every invoice regardless of status, cancelled ones
// included.
func RevenueTotal(invoices []models.Invoice) float64 {
	total := 0.0
	for _, invoice := range invoices {
		total += invoice.TotalAmount
	}
	return total
}

// OutstandingTotal sums open invoices only.
func OutstandingTotal(invoices []models.Invoice) float64 {
	total := 0.0
	for _, invoice := range invoices {
		if invoice.Status == models.InvoiceStatusOpen {
			total += invoice.TotalAmount
		}
	}
	return total
}

func OpenInvoiceCount(invoices []models.Invoice) int {
	count := 0
	for _, invoice := range invoices {
		if invoice.Status == models.InvoiceStatusOpen {
			count++
		}
	}
	return count
}

// PortfolioMix counts projects by contract type.
func PortfolioMix(projects []models.Project) map[string]int {
	mix := map[string]int{}
	for _, project := range projects {
		mix[project.Type]++
	}
	return mix
}

type Overview struct {
	TotalRevenue     float64        `json:"totalRevenue"`
	Outstanding      float64        `json:"outstanding"`
	OpenInvoiceCount int            `json:"openInvoiceCount"`
	PipelineValue    float64        `json:"pipelineValue"`
	PortfolioMix     map[string]int `json:"portfolioMix"`
}

func (service *ReportService) BuildOverview() Overview {
	invoices := service.invoices.Invoices()
	return Overview{
		TotalRevenue:     RevenueTotal(invoices),
		Outstanding:      OutstandingTotal(invoices),
		OpenInvoiceCount: OpenInvoiceCount(invoices),
		PipelineValue:    TotalVolume(service.opportunities.Opportunities()),
		PortfolioMix:     PortfolioMix(service.projects.Projects()),
	}
}
