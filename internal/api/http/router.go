package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/stepperslife/events-service/internal/api/http/handlers"
	"github.com/stepperslife/events-service/internal/auth"
	"github.com/stepperslife/events-service/internal/domain"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health         *handlers.HealthHandler
	Metrics        *handlers.MetricsHandler
	Users          *handlers.UsersHandler
	Events         *handlers.EventsHandler
	Staff          *handlers.StaffHandler
	Tickets        *handlers.TicketsHandler
	Teams          *handlers.TeamsHandler
	Restaurants    *handlers.RestaurantsHandler
	AuthMiddleware *auth.AuthMiddleware
}

// RegisterRoutes wires HTTP routes.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	app.Get("/health/live", cfg.Health.Live)
	app.Get("/health/ready", cfg.Health.Ready)
	app.Get("/metrics", cfg.Metrics.Snapshot)

	authGroup := app.Group("/auth")
	authGroup.Post("/register", cfg.Users.Register)
	authGroup.Post("/login", cfg.Users.Login)

	protected := app.Group("", cfg.AuthMiddleware.Handle, auth.RequireAuthenticated())

	eventsGroup := protected.Group("/events")
	eventsGroup.Post("", cfg.Events.Create)
	eventsGroup.Patch("/:id", cfg.Events.Update)
	eventsGroup.Delete("/:id", cfg.Events.Delete)
	eventsGroup.Get("/:id/analytics", cfg.Events.Analytics)
	eventsGroup.Post("/:id/staff", cfg.Staff.Assign)
	eventsGroup.Get("/:id/staff", cfg.Staff.List)
	eventsGroup.Post("/:id/tickets", cfg.Tickets.Sell)

	staffGroup := protected.Group("/staff")
	staffGroup.Post("/:id/sub-sellers", cfg.Staff.Delegate)
	staffGroup.Patch("/:id", cfg.Staff.Update)
	staffGroup.Delete("/:id", cfg.Staff.Deactivate)

	protected.Post("/tickets/:id/scan", cfg.Tickets.Scan)

	transfersGroup := protected.Group("/transfers")
	transfersGroup.Post("", cfg.Tickets.CreateTransfer)
	transfersGroup.Post("/:id/accept", cfg.Tickets.AcceptTransfer)
	transfersGroup.Post("/:id/reject", cfg.Tickets.RejectTransfer)
	transfersGroup.Post("/:id/cancel", cfg.Tickets.CancelTransfer)

	organizersGroup := protected.Group("/organizers")
	organizersGroup.Post("/:id/team", cfg.Teams.AddMember)
	organizersGroup.Get("/:id/team", cfg.Teams.List)
	protected.Delete("/team/:id", cfg.Teams.RemoveMember)

	restaurantsGroup := protected.Group("/restaurants",
		auth.RequireRole(domain.UserRoleRestaurateur))
	restaurantsGroup.Post("", cfg.Restaurants.Create)
	restaurantsGroup.Patch("/:id", cfg.Restaurants.Update)
}
