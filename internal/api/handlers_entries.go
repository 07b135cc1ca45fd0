package api

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/praxislabs/praxis/internal/ident"
	"github.com/praxislabs/praxis/internal/metrics"
	"github.com/praxislabs/praxis/internal/models"
)

// CreateServiceEntry logs time. Entries always arrive unbilled; billing
// state only ever changes when an invoice picks the entry up.
func (handler *Handler) CreateServiceEntry(c *fiber.Ctx) error {
	var entry models.ServiceEntry
	if err := c.BodyParser(&entry); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid request body")
	}
	if entry.ProjectID == "" || entry.ServiceTypeID == "" || entry.Date == "" {
		return apiError(c, fiber.StatusBadRequest, "projectId, serviceTypeId and date are required")
	}
	if entry.ID == "" {
		entry.ID = ident.New("se")
	}
	entry.Billed = false
	entry.InvoiceID = ""

	handler.store.AddServiceEntry(entry)
	metrics.IncrementStoreMutation("service_entry", "add")
	handler.logger.Info("service entry logged",
		zap.String("id", entry.ID),
		zap.String("project", entry.ProjectID),
		zap.Int("minutes", entry.Minutes))
	return created(c, entry)
}

func (handler *Handler) CreateExpenseEntry(c *fiber.Ctx) error {
	var entry models.ExpenseEntry
	if err := c.BodyParser(&entry); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid request body")
	}
	if entry.ProjectID == "" || entry.Date == "" {
		return apiError(c, fiber.StatusBadRequest, "projectId and date are required")
	}
	if entry.ID == "" {
		entry.ID = ident.New("ee")
	}
	entry.Billed = false
	entry.InvoiceID = ""

	handler.store.AddExpenseEntry(entry)
	metrics.IncrementStoreMutation("expense_entry", "add")
	return created(c, entry)
}
