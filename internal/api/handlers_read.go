package api

import "github.com/gofiber/fiber/v2"

func (handler *Handler) ListUsers(c *fiber.Ctx) error {
	return c.JSON(handler.store.Users())
}

func (handler *Handler) ListProjects(c *fiber.Ctx) error {
	return c.JSON(handler.store.Projects())
}

func (handler *Handler) ListPhases(c *fiber.Ctx) error {
	return c.JSON(handler.store.Phases())
}

func (handler *Handler) ListServiceTypes(c *fiber.Ctx) error {
	return c.JSON(handler.store.ServiceTypes())
}

func (handler *Handler) ListServiceEntries(c *fiber.Ctx) error {
	return c.JSON(handler.store.ServiceEntries())
}

func (handler *Handler) ListExpenseTypes(c *fiber.Ctx) error {
	return c.JSON(handler.store.ExpenseTypes())
}

func (handler *Handler) ListExpenseEntries(c *fiber.Ctx) error {
	return c.JSON(handler.store.ExpenseEntries())
}

func (handler *Handler) ListInvoices(c *fiber.Ctx) error {
	return c.JSON(handler.store.Invoices())
}

func (handler *Handler) ListAllocations(c *fiber.Ctx) error {
	return c.JSON(handler.store.Allocations())
}

func (handler *Handler) ListOpportunities(c *fiber.Ctx) error {
	return c.JSON(handler.store.Opportunities())
}
