package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func RegisterRoutes(app *fiber.App, handler *Handler) {
	app.Get("/healthz", handler.Health)
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

	api := app.Group("/api", handler.requestMetrics)

	api.Get("/users", handler.ListUsers)
	api.Get("/phases", handler.ListPhases)
	api.Get("/service-types", handler.ListServiceTypes)
	api.Get("/expense-types", handler.ListExpenseTypes)

	projects := api.Group("/projects")
	projects.Get("", handler.ListProjects)
	projects.Post("", handler.CreateProject)
	projects.Patch("/:id", handler.PatchProject)
	projects.Get("/:id/unbilled", handler.GetUnbilledSummary)

	entries := api.Group("/service-entries")
	entries.Get("", handler.ListServiceEntries)
	entries.Post("", handler.CreateServiceEntry)

	expenses := api.Group("/expense-entries")
	expenses.Get("", handler.ListExpenseEntries)
	expenses.Post("", handler.CreateExpenseEntry)

	invoices := api.Group("/invoices")
	invoices.Get("", handler.ListInvoices)
	invoices.Post("", handler.CreateInvoice)
	invoices.Post("/generate", handler.GenerateInvoice)
	invoices.Patch("/:id/status", handler.UpdateInvoiceStatus)

	allocations := api.Group("/allocations")
	allocations.Get("", handler.ListAllocations)
	allocations.Post("", handler.CreateAllocation)

	opportunities := api.Group("/opportunities")
	opportunities.Get("", handler.ListOpportunities)
	opportunities.Post("", handler.CreateOpportunity)
	opportunities.Patch("/:id/stage", handler.UpdateOpportunityStage)

	api.Get("/pipeline/volumes", handler.GetPipelineVolumes)
	api.Get("/resources/load", handler.GetResourceLoads)
	api.Get("/reports/overview", handler.GetReportOverview)
}
