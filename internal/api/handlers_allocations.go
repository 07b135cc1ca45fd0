package api

import (
	"github.com/gofiber/fiber/v2"

	"github.com/praxislabs/praxis/internal/ident"
	"github.com/praxislabs/praxis/internal/metrics"
	"github.com/praxislabs/praxis/internal/models"
)

func (handler *Handler) CreateAllocation(c *fiber.Ctx) error {
	var allocation models.Allocation
	if err := c.BodyParser(&allocation); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid request body")
	}
	if allocation.UserID == "" || allocation.ProjectID == "" || allocation.Percentage == 0 {
		return apiError(c, fiber.StatusBadRequest, "userId, projectId and percentage are required")
	}
	if allocation.ID == "" {
		allocation.ID = ident.New("al")
	}

	handler.store.AddAllocation(allocation)
	metrics.IncrementStoreMutation("allocation", "add")
	return created(c, allocation)
}

func (handler *Handler) GetResourceLoads(c *fiber.Ctx) error {
	return c.JSON(handler.resources.LoadSummaries())
}
