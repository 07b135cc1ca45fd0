package store

import "github.com/praxislabs/praxis/internal/models"

// NewSeeded returns a store preloaded with the demo fixture set: a small
// consulting shop with one running project, a billing history and a sales
// funnel in three stages. Time and expense entries start empty.
func NewSeeded() *Store {
	seeded := New()
	seeded.users = seedUsers()
	seeded.projects = seedProjects()
	seeded.phases = seedPhases()
	seeded.serviceTypes = seedServiceTypes()
	seeded.invoices = seedInvoices()
	seeded.allocations = seedAllocations()
	seeded.opportunities = seedOpportunities()
	return seeded
}

func seedUsers() []models.User {
	return []models.User{
		{ID: "u1", Name: "Anna Smith", Email: "anna@example.com", Role: models.RoleProjectManager, HourlyRate: 150},
		{ID: "u2", Name: "Bob Jones", Email: "bob@example.com", Role: models.RoleEmployee, HourlyRate: 100},
	}
}

func seedProjects() []models.Project {
	return []models.Project{
		{
			ID: "p1", Code: "P-2024-001", Title: "Website Relaunch", ClientID: "c1", LeaderID: "u1",
			Type: models.ProjectTypeFixedPrice, Status: models.ProjectStatusActive,
			StartDate: "2024-01-01", BudgetFees: 50000, BudgetExpenses: 5000,
		},
	}
}

func seedPhases() []models.Phase {
	return []models.Phase{
		{ID: "ph1", ProjectID: "p1", Code: "10", Description: "Concept", Status: models.PhaseStatusDone, BudgetFees: 10000},
		{ID: "ph2", ProjectID: "p1", Code: "20", Description: "Development", Status: models.PhaseStatusActive, BudgetFees: 30000},
	}
}

func seedServiceTypes() []models.ServiceType {
	return []models.ServiceType{
		{ID: "st1", Name: "Consulting", StandardRate: 150},
		{ID: "st2", Name: "Development", StandardRate: 120},
	}
}

func seedInvoices() []models.Invoice {
	return []models.Invoice{
		{
			ID: "inv1", Number: "INV-2024-001", ProjectID: "p1", Date: "2024-01-20", DueDate: "2024-02-19",
			TotalAmount: 12500, Status: models.InvoiceStatusPaid, Items: []models.InvoiceItem{},
		},
		{
			ID: "inv2", Number: "INV-2024-002", ProjectID: "p1", Date: "2024-02-20", DueDate: "2024-03-21",
			TotalAmount: 8400, Status: models.InvoiceStatusOpen, Items: []models.InvoiceItem{},
		},
	}
}

func seedAllocations() []models.Allocation {
	return []models.Allocation{
		{ID: "al1", UserID: "u1", ProjectID: "p1", StartDate: "2024-01-01", EndDate: "2024-03-31", Percentage: 50},
		{ID: "al2", UserID: "u2", ProjectID: "p1", StartDate: "2024-02-01", EndDate: "2024-02-28", Percentage: 100},
	}
}

func seedOpportunities() []models.Opportunity {
	return []models.Opportunity{
		{ID: "opp1", Title: "New CRM Implementation", ClientID: "c2", OwnerID: "u1", Stage: models.StageOffer, Probability: 60, ExpectedVolume: 25000, CloseDate: "2024-03-01"},
		{ID: "opp2", Title: "Data Migration Audit", ClientID: "c3", OwnerID: "u2", Stage: models.StageLead, Probability: 20, ExpectedVolume: 5000, CloseDate: "2024-04-15"},
		{ID: "opp3", Title: "Mobile App Concept", ClientID: "c1", OwnerID: "u1", Stage: models.StageWon, Probability: 100, ExpectedVolume: 12000, CloseDate: "2024-02-10"},
	}
}
