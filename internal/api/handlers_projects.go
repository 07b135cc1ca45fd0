package api

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/praxislabs/praxis/internal/ident"
	"github.com/praxislabs/praxis/internal/metrics"
	"github.com/praxislabs/praxis/internal/models"
)

func (handler *Handler) CreateProject(c *fiber.Ctx) error {
	var project models.Project
	if err := c.BodyParser(&project); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid request body")
	}
	if project.Title == "" || project.Code == "" {
		return apiError(c, fiber.StatusBadRequest, "code and title are required")
	}
	if project.ID == "" {
		project.ID = ident.New("p")
	}
	if project.Status == "" {
		project.Status = models.ProjectStatusActive
	}

	handler.store.AddProject(project)
	metrics.IncrementStoreMutation("project", "add")
	handler.logger.Info("project created", zap.String("id", project.ID), zap.String("code", project.Code))
	return created(c, project)
}

// PatchProject merges the provided fields. An unknown id is a silent
// no-op, matching the store contract.
func (handler *Handler) PatchProject(c *fiber.Ctx) error {
	var patch models.ProjectPatch
	if err := c.BodyParser(&patch); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid request body")
	}

	handler.store.UpdateProject(c.Params("id"), patch)
	metrics.IncrementStoreMutation("project", "update")
	return noContent(c)
}
