package api

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/praxislabs/praxis/internal/ident"
	"github.com/praxislabs/praxis/internal/metrics"
	"github.com/praxislabs/praxis/internal/models"
)

func (handler *Handler) CreateInvoice(c *fiber.Ctx) error {
	var invoice models.Invoice
	if err := c.BodyParser(&invoice); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid request body")
	}
	if invoice.ProjectID == "" {
		return apiError(c, fiber.StatusBadRequest, "projectId is required")
	}
	if invoice.ID == "" {
		invoice.ID = ident.New("inv")
	}
	if invoice.Status == "" {
		invoice.Status = models.InvoiceStatusDraft
	}
	if invoice.Items == nil {
		invoice.Items = []models.InvoiceItem{}
	}

	handler.store.AddInvoice(invoice)
	metrics.IncrementStoreMutation("invoice", "add")
	return created(c, invoice)
}

type generateInvoiceRequest struct {
	ProjectID string `json:"projectId"`
}

// GenerateInvoice builds a flat-rate draft from the project's unbilled
// time. Generating against a project with no unbilled minutes is refused,
// mirroring the disabled state in the invoice wizard.
func (handler *Handler) GenerateInvoice(c *fiber.Ctx) error {
	var request generateInvoiceRequest
	if err := c.BodyParser(&request); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid request body")
	}
	if request.ProjectID == "" {
		return apiError(c, fiber.StatusBadRequest, "projectId is required")
	}

	invoice := handler.billing.BuildDraftInvoice(request.ProjectID, handler.now())
	if invoice.TotalAmount == 0 {
		return apiError(c, fiber.StatusUnprocessableEntity, "no unbilled time on project")
	}

	handler.store.AddInvoice(invoice)
	metrics.IncrementStoreMutation("invoice", "add")
	handler.logger.Info("draft invoice generated",
		zap.String("id", invoice.ID),
		zap.String("project", invoice.ProjectID),
		zap.Float64("amount", invoice.TotalAmount))
	return created(c, invoice)
}

type invoiceStatusRequest struct {
	Status string `json:"status"`
}

// UpdateInvoiceStatus sets the status directly. No transition graph is
// enforced; repeating a status is a harmless overwrite.
func (handler *Handler) UpdateInvoiceStatus(c *fiber.Ctx) error {
	var request invoiceStatusRequest
	if err := c.BodyParser(&request); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid request body")
	}
	if request.Status == "" {
		return apiError(c, fiber.StatusBadRequest, "status is required")
	}

	handler.store.UpdateInvoiceStatus(c.Params("id"), request.Status)
	metrics.IncrementStoreMutation("invoice", "update_status")
	return noContent(c)
}
