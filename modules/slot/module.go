package slot

import (
	"parking-api/core/cache"
	"parking-api/core/database"
	"parking-api/modules/slot/controller"
	"parking-api/modules/slot/repository"
	"parking-api/modules/slot/router"
	"parking-api/modules/slot/service"

	"github.com/labstack/echo/v4"
)

// Init initializes the slot module and registers routes
func Init(e *echo.Echo, db database.IDatabase, c cache.Cache) {
	repo := repository.NewSlotRepository(db)
	svc := service.NewSlotService(repo, c)
	ctrl := controller.NewSlotController(svc)
	rtr := router.NewSlotRouter(ctrl)

	rtr.Setup(e)
}
