package controller

import (
	"net/http"

	"parking-api/core/controller"
	"parking-api/core/errors"
	"parking-api/modules/ticket/dto"
	"parking-api/modules/ticket/service"

	"github.com/labstack/echo/v4"
)

// TicketController handles ticket HTTP requests
type TicketController struct {
	controller.BaseController
	TicketService service.TicketServiceInterface
}

// NewTicketController creates a new controller
func NewTicketController(svc service.TicketServiceInterface) *TicketController {
	return &TicketController{
		BaseController: controller.NewBaseController(),
		TicketService:  svc,
	}
}

// CheckIn handles POST /tickets
// @Summary Check a vehicle in
// @Description Creates an active ticket and occupies the requested slot
// @Tags Ticket
// @Accept json
// @Produce json
// @Param request body dto.CheckInRequest true "Check-in details"
// @Success 201 {object} dto.ActiveTicketResponse
// @Failure 400 {object} errors.AppError
// @Failure 404 {object} errors.AppError
// @Failure 409 {object} errors.AppError
// @Router /tickets [post]
func (c *TicketController) CheckIn(ctx echo.Context) error {
	var req dto.CheckInRequest
	if err := ctx.Bind(&req); err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "Invalid request body")
	}

	result, appErr := c.TicketService.CheckIn(ctx.Request().Context(), &req)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}

	return ctx.JSON(http.StatusCreated, result)
}

// CheckOut handles POST /tickets/:id/exit
// @Summary Check a vehicle out
// @Description Completes the active ticket with its fee and frees the slot
// @Tags Ticket
// @Produce json
// @Param id path string true "Ticket ID"
// @Success 200 {object} dto.TicketResponse
// @Failure 404 {object} errors.AppError
// @Router /tickets/{id}/exit [post]
func (c *TicketController) CheckOut(ctx echo.Context) error {
	result, appErr := c.TicketService.CheckOut(ctx.Request().Context(), ctx.Param("id"))
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}

	return ctx.JSON(http.StatusOK, result)
}

// GetTicket handles GET /tickets/:id
// @Summary Get one ticket
// @Tags Ticket
// @Produce json
// @Param id path string true "Ticket ID"
// @Success 200 {object} dto.TicketResponse
// @Failure 404 {object} errors.AppError
// @Router /tickets/{id} [get]
func (c *TicketController) GetTicket(ctx echo.Context) error {
	result, appErr := c.TicketService.GetTicket(ctx.Request().Context(), ctx.Param("id"))
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}

	return ctx.JSON(http.StatusOK, result)
}

// GetActiveTickets handles GET /tickets/active
// @Summary List active tickets
// @Tags Ticket
// @Produce json
// @Success 200 {array} dto.ActiveTicketResponse
// @Router /tickets/active [get]
func (c *TicketController) GetActiveTickets(ctx echo.Context) error {
	result, appErr := c.TicketService.ListActive(ctx.Request().Context())
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}

	return ctx.JSON(http.StatusOK, result)
}

// GetTickets handles GET /tickets
// @Summary List recent tickets, including completed
// @Tags Ticket
// @Produce json
// @Success 200 {array} dto.TicketResponse
// @Router /tickets [get]
func (c *TicketController) GetTickets(ctx echo.Context) error {
	result, appErr := c.TicketService.ListRecent(ctx.Request().Context())
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}

	return ctx.JSON(http.StatusOK, result)
}
