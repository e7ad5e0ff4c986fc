package controller

import (
	"net/http"

	"parking-api/core/controller"
	"parking-api/modules/slot/service"

	"github.com/labstack/echo/v4"
)

// SlotController handles slot HTTP requests
type SlotController struct {
	controller.BaseController
	SlotService service.SlotServiceInterface
}

// NewSlotController creates a new controller
func NewSlotController(svc service.SlotServiceInterface) *SlotController {
	return &SlotController{
		BaseController: controller.NewBaseController(),
		SlotService:    svc,
	}
}

// GetSlots handles GET /slots
// @Summary List all parking slots
// @Tags Slot
// @Produce json
// @Success 200 {array} dto.SlotResponse
// @Router /slots [get]
func (c *SlotController) GetSlots(ctx echo.Context) error {
	result, appErr := c.SlotService.ListSlots(ctx.Request().Context())
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}

	return ctx.JSON(http.StatusOK, result)
}

// GetAvailableSlots handles GET /slots/available
// @Summary List free parking slots
// @Tags Slot
// @Produce json
// @Success 200 {array} dto.AvailableSlotResponse
// @Router /slots/available [get]
func (c *SlotController) GetAvailableSlots(ctx echo.Context) error {
	result, appErr := c.SlotService.ListAvailable(ctx.Request().Context())
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}

	return ctx.JSON(http.StatusOK, result)
}
