package router

import (
	"parking-api/modules/slot/controller"

	"github.com/labstack/echo/v4"
)

// SlotRouter handles slot routes
type SlotRouter struct {
	SlotController *controller.SlotController
}

// NewSlotRouter creates a new router
func NewSlotRouter(slotController *controller.SlotController) *SlotRouter {
	return &SlotRouter{
		SlotController: slotController,
	}
}

// Setup registers slot routes
func (r *SlotRouter) Setup(e *echo.Echo) {
	api := e.Group("/api")

	slotRoutes := api.Group("/slots")
	slotRoutes.GET("", r.SlotController.GetSlots)
	slotRoutes.GET("/available", r.SlotController.GetAvailableSlots)
}
