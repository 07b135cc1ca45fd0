package store

import (
	"errors"
	"sync"

	"github.com/praxislabs/praxis/internal/models"
)

// ErrNotInitialized is returned when a component is handed a nil store
// handle instead of one built with New or NewSeeded.
var ErrNotInitialized = errors.New("store not initialized")

// Store is the single owned state container for every entity collection.
// Collections keep insertion order. Mutations go through the methods below;
// reads return copied snapshots, so callers can never reach the backing
// slices. The store itself validates nothing — a record is stored exactly
// as the caller built it, and updates against an unknown id are silent
// no-ops.
type Store struct {
	mu sync.RWMutex

	users          []models.User
	projects       []models.Project
	phases         []models.Phase
	serviceTypes   []models.ServiceType
	serviceEntries []models.ServiceEntry
	expenseTypes   []models.ExpenseType
	expenseEntries []models.ExpenseEntry
	opportunities  []models.Opportunity
	invoices       []models.Invoice
	allocations    []models.Allocation
}

// New returns an empty store.
func New() *Store {
	return &Store{}
}

func snapshot[T any](records []T) []T {
	result := make([]T, len(records))
	copy(result, records)
	return result
}

func (store *Store) Users() []models.User {
	store.mu.RLock()
	defer store.mu.RUnlock()
	return snapshot(store.users)
}

func (store *Store) Projects() []models.Project {
	store.mu.RLock()
	defer store.mu.RUnlock()
	return snapshot(store.projects)
}

func (store *Store) Phases() []models.Phase {
	store.mu.RLock()
	defer store.mu.RUnlock()
	return snapshot(store.phases)
}

func (store *Store) ServiceTypes() []models.ServiceType {
	store.mu.RLock()
	defer store.mu.RUnlock()
	return snapshot(store.serviceTypes)
}

func (store *Store) ServiceEntries() []models.ServiceEntry {
	store.mu.RLock()
	defer store.mu.RUnlock()
	return snapshot(store.serviceEntries)
}

func (store *Store) ExpenseTypes() []models.ExpenseType {
	store.mu.RLock()
	defer store.mu.RUnlock()
	return snapshot(store.expenseTypes)
}

func (store *Store) ExpenseEntries() []models.ExpenseEntry {
	store.mu.RLock()
	defer store.mu.RUnlock()
	return snapshot(store.expenseEntries)
}

func (store *Store) Opportunities() []models.Opportunity {
	store.mu.RLock()
	defer store.mu.RUnlock()
	return snapshot(store.opportunities)
}

// Invoices clones item slices as well, so a snapshot invoice cannot leak
// writes back into the store through its Items backing array.
func (store *Store) Invoices() []models.Invoice {
	store.mu.RLock()
	defer store.mu.RUnlock()
	result := make([]models.Invoice, len(store.invoices))
	for index, invoice := range store.invoices {
		invoice.Items = snapshot(invoice.Items)
		result[index] = invoice
	}
	return result
}

func (store *Store) Allocations() []models.Allocation {
	store.mu.RLock()
	defer store.mu.RUnlock()
	return snapshot(store.allocations)
}

func (store *Store) AddServiceEntry(entry models.ServiceEntry) {
	store.mu.Lock()
	defer store.mu.Unlock()
	store.serviceEntries = append(store.serviceEntries, entry)
}

func (store *Store) AddExpenseEntry(entry models.ExpenseEntry) {
	store.mu.Lock()
	defer store.mu.Unlock()
	store.expenseEntries = append(store.expenseEntries, entry)
}

func (store *Store) AddProject(project models.Project) {
	store.mu.Lock()
	defer store.mu.Unlock()
	store.projects = append(store.projects, project)
}

// UpdateProject merges the patch into the matching project. Unknown ids
// leave the collection untouched.
func (store *Store) UpdateProject(id string, patch models.ProjectPatch) {
	store.mu.Lock()
	defer store.mu.Unlock()
	for index := range store.projects {
		if store.projects[index].ID == id {
			patch.Apply(&store.projects[index])
			return
		}
	}
}

func (store *Store) AddInvoice(invoice models.Invoice) {
	store.mu.Lock()
	defer store.mu.Unlock()
	store.invoices = append(store.invoices, invoice)
}

func (store *Store) UpdateInvoiceStatus(id string, status string) {
	store.mu.Lock()
	defer store.mu.Unlock()
	for index := range store.invoices {
		if store.invoices[index].ID == id {
			store.invoices[index].Status = status
			return
		}
	}
}

func (store *Store) AddAllocation(allocation models.Allocation) {
	store.mu.Lock()
	defer store.mu.Unlock()
	store.allocations = append(store.allocations, allocation)
}

func (store *Store) AddOpportunity(opportunity models.Opportunity) {
	store.mu.Lock()
	defer store.mu.Unlock()
	store.opportunities = append(store.opportunities, opportunity)
}

func (store *Store) UpdateOpportunityStage(id string, stage string) {
	store.mu.Lock()
	defer store.mu.Unlock()
	for index := range store.opportunities {
		if store.opportunities[index].ID == id {
			store.opportunities[index].Stage = stage
			return
		}
	}
}
