package router

import (
	"parking-api/modules/ticket/controller"

	"github.com/labstack/echo/v4"
)

// TicketRouter handles ticket routes
type TicketRouter struct {
	TicketController *controller.TicketController
}

// NewTicketRouter creates a new router
func NewTicketRouter(ticketController *controller.TicketController) *TicketRouter {
	return &TicketRouter{
		TicketController: ticketController,
	}
}

// Setup registers ticket routes. The static /tickets/active route is
// registered alongside /tickets/:id; echo resolves static segments first.
func (r *TicketRouter) Setup(e *echo.Echo) {
	api := e.Group("/api")

	ticketRoutes := api.Group("/tickets")
	ticketRoutes.GET("", r.TicketController.GetTickets)
	ticketRoutes.POST("", r.TicketController.CheckIn)
	ticketRoutes.GET("/active", r.TicketController.GetActiveTickets)
	ticketRoutes.GET("/:id", r.TicketController.GetTicket)
	ticketRoutes.POST("/:id/exit", r.TicketController.CheckOut)
}
