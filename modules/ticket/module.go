package ticket

import (
	"parking-api/core/cache"
	"parking-api/core/database"
	"parking-api/core/jobs"
	slotRepository "parking-api/modules/slot/repository"
	"parking-api/modules/ticket/controller"
	"parking-api/modules/ticket/repository"
	"parking-api/modules/ticket/router"
	"parking-api/modules/ticket/service"

	"github.com/labstack/echo/v4"
)

// Init initializes the ticket module and registers routes
func Init(e *echo.Echo, db database.IDatabase, c cache.Cache, jobClient jobs.Client) {
	ticketRepo := repository.NewTicketRepository(db)
	slotRepo := slotRepository.NewSlotRepository(db)
	svc := service.NewTicketService(ticketRepo, slotRepo, db, c, jobClient)
	ctrl := controller.NewTicketController(svc)
	rtr := router.NewTicketRouter(ctrl)

	rtr.Setup(e)
}
