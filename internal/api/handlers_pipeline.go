package api

import (
	"github.com/gofiber/fiber/v2"

	"github.com/praxislabs/praxis/internal/ident"
	"github.com/praxislabs/praxis/internal/metrics"
	"github.com/praxislabs/praxis/internal/models"
)

func (handler *Handler) CreateOpportunity(c *fiber.Ctx) error {
	var opportunity models.Opportunity
	if err := c.BodyParser(&opportunity); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid request body")
	}
	if opportunity.Title == "" {
		return apiError(c, fiber.StatusBadRequest, "title is required")
	}
	if opportunity.ID == "" {
		opportunity.ID = ident.New("opp")
	}
	if opportunity.Stage == "" {
		opportunity.Stage = models.StageLead
	}

	handler.store.AddOpportunity(opportunity)
	metrics.IncrementStoreMutation("opportunity", "add")
	return created(c, opportunity)
}

type opportunityStageRequest struct {
	Stage string `json:"stage"`
}

// UpdateOpportunityStage reassigns the funnel position. Stages are
// free-form by contract — the board allows any move in any direction.
func (handler *Handler) UpdateOpportunityStage(c *fiber.Ctx) error {
	var request opportunityStageRequest
	if err := c.BodyParser(&request); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid request body")
	}
	if request.Stage == "" {
		return apiError(c, fiber.StatusBadRequest, "stage is required")
	}

	handler.store.UpdateOpportunityStage(c.Params("id"), request.Stage)
	metrics.IncrementStoreMutation("opportunity", "update_stage")
	return noContent(c)
}

func (handler *Handler) GetPipelineVolumes(c *fiber.Ctx) error {
	return c.JSON(handler.pipeline.StageSummaries())
}
