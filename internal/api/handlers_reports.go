package api

import "github.com/gofiber/fiber/v2"

func (handler *Handler) GetReportOverview(c *fiber.Ctx) error {
	return c.JSON(handler.reports.BuildOverview())
}

func (handler *Handler) GetUnbilledSummary(c *fiber.Ctx) error {
	return c.JSON(handler.billing.UnbilledSummary(c.Params("id")))
}
