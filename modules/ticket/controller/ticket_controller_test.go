package controller

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"parking-api/core/errors"
	"parking-api/modules/ticket/dto"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockTicketService struct {
	mock.Mock
}

func (m *mockTicketService) CheckIn(ctx context.Context, req *dto.CheckInRequest) (*dto.ActiveTicketResponse, *errors.AppError) {
	args := m.Called(ctx, req)
	var resp *dto.ActiveTicketResponse
	if args.Get(0) != nil {
		resp = args.Get(0).(*dto.ActiveTicketResponse)
	}
	var appErr *errors.AppError
	if args.Get(1) != nil {
		appErr = args.Get(1).(*errors.AppError)
	}
	return resp, appErr
}

func (m *mockTicketService) CheckOut(ctx context.Context, ticketID string) (*dto.TicketResponse, *errors.AppError) {
	args := m.Called(ctx, ticketID)
	var resp *dto.TicketResponse
	if args.Get(0) != nil {
		resp = args.Get(0).(*dto.TicketResponse)
	}
	var appErr *errors.AppError
	if args.Get(1) != nil {
		appErr = args.Get(1).(*errors.AppError)
	}
	return resp, appErr
}

func (m *mockTicketService) GetTicket(ctx context.Context, ticketID string) (*dto.TicketResponse, *errors.AppError) {
	args := m.Called(ctx, ticketID)
	var resp *dto.TicketResponse
	if args.Get(0) != nil {
		resp = args.Get(0).(*dto.TicketResponse)
	}
	var appErr *errors.AppError
	if args.Get(1) != nil {
		appErr = args.Get(1).(*errors.AppError)
	}
	return resp, appErr
}

func (m *mockTicketService) ListActive(ctx context.Context) ([]dto.ActiveTicketResponse, *errors.AppError) {
	args := m.Called(ctx)
	var resp []dto.ActiveTicketResponse
	if args.Get(0) != nil {
		resp = args.Get(0).([]dto.ActiveTicketResponse)
	}
	var appErr *errors.AppError
	if args.Get(1) != nil {
		appErr = args.Get(1).(*errors.AppError)
	}
	return resp, appErr
}

func (m *mockTicketService) ListRecent(ctx context.Context) ([]dto.TicketResponse, *errors.AppError) {
	args := m.Called(ctx)
	var resp []dto.TicketResponse
	if args.Get(0) != nil {
		resp = args.Get(0).([]dto.TicketResponse)
	}
	var appErr *errors.AppError
	if args.Get(1) != nil {
		appErr = args.Get(1).(*errors.AppError)
	}
	return resp, appErr
}

func newTestContext(method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestCheckInCreated(t *testing.T) {
	svc := &mockTicketService{}
	c := NewTicketController(svc)

	svc.On("CheckIn", mock.Anything, mock.MatchedBy(func(req *dto.CheckInRequest) bool {
		return req.VehicleNumber == "KA01HH1234" && req.SlotID == 5 && req.TicketID == "TKT-1001"
	})).Return(&dto.ActiveTicketResponse{
		ID:            "TKT-1001",
		VehicleNumber: "KA01HH1234",
		VehicleType:   "car",
		SlotID:        5,
		DriverName:    "John Smith",
		ContactNumber: "555-0100",
		EntryTime:     time.Now().UTC(),
		Status:        "active",
	}, nil)

	body := `{"vehicleNumber":"KA01HH1234","vehicleType":"car","slotId":5,"driverName":"John Smith","contactNumber":"555-0100","ticketId":"TKT-1001"}`
	ctx, rec := newTestContext(http.MethodPost, "/api/tickets", body)

	require.NoError(t, c.CheckIn(ctx))
	assert.Equal(t, http.StatusCreated, rec.Code)

	var resp dto.ActiveTicketResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "TKT-1001", resp.ID)
	assert.Equal(t, "active", resp.Status)
}

func TestCheckInSlotConflict(t *testing.T) {
	svc := &mockTicketService{}
	c := NewTicketController(svc)

	svc.On("CheckIn", mock.Anything, mock.Anything).
		Return(nil, errors.NewAppError(errors.ErrAlreadyExists, "Slot is already occupied", nil))

	body := `{"vehicleNumber":"KA01HH1234","vehicleType":"car","slotId":5,"driverName":"John Smith","contactNumber":"555-0100","ticketId":"TKT-1001"}`
	ctx, rec := newTestContext(http.MethodPost, "/api/tickets", body)

	require.NoError(t, c.CheckIn(ctx))
	assert.Equal(t, http.StatusConflict, rec.Code)

	var resp map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "error", resp["status"])
	assert.Equal(t, string(errors.ErrAlreadyExists), resp["code"])
	assert.Equal(t, "Slot is already occupied", resp["message"])
}

func TestCheckInInvalidBody(t *testing.T) {
	svc := &mockTicketService{}
	c := NewTicketController(svc)

	ctx, _ := newTestContext(http.MethodPost, "/api/tickets", `{"slotId":"not-a-number"}`)

	err := c.CheckIn(ctx)
	require.Error(t, err)

	httpErr, ok := err.(*echo.HTTPError)
	require.True(t, ok)
	assert.Equal(t, http.StatusBadRequest, httpErr.Code)
	svc.AssertNotCalled(t, "CheckIn")
}

func TestCheckOutOK(t *testing.T) {
	svc := &mockTicketService{}
	c := NewTicketController(svc)

	exit := time.Now().UTC()
	fee := 10.0
	svc.On("CheckOut", mock.Anything, "TKT-1001").Return(&dto.TicketResponse{
		ID:       "TKT-1001",
		SlotID:   5,
		ExitTime: &exit,
		Status:   "completed",
		Fee:      &fee,
	}, nil)

	ctx, rec := newTestContext(http.MethodPost, "/api/tickets/TKT-1001/exit", "")
	ctx.SetParamNames("id")
	ctx.SetParamValues("TKT-1001")

	require.NoError(t, c.CheckOut(ctx))
	assert.Equal(t, http.StatusOK, rec.Code)

	var resp dto.TicketResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "completed", resp.Status)
	require.NotNil(t, resp.Fee)
	assert.Equal(t, 10.0, *resp.Fee)
}

func TestCheckOutNotFound(t *testing.T) {
	svc := &mockTicketService{}
	c := NewTicketController(svc)

	svc.On("CheckOut", mock.Anything, "TKT-404").
		Return(nil, errors.NewAppError(errors.ErrNotFound, "Active ticket not found", nil))

	ctx, rec := newTestContext(http.MethodPost, "/api/tickets/TKT-404/exit", "")
	ctx.SetParamNames("id")
	ctx.SetParamValues("TKT-404")

	require.NoError(t, c.CheckOut(ctx))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestGetTicketOK(t *testing.T) {
	svc := &mockTicketService{}
	c := NewTicketController(svc)

	svc.On("GetTicket", mock.Anything, "TKT-1001").Return(&dto.TicketResponse{
		ID:     "TKT-1001",
		Status: "active",
	}, nil)

	ctx, rec := newTestContext(http.MethodGet, "/api/tickets/TKT-1001", "")
	ctx.SetParamNames("id")
	ctx.SetParamValues("TKT-1001")

	require.NoError(t, c.GetTicket(ctx))
	assert.Equal(t, http.StatusOK, rec.Code)

	// active tickets serialize with null exitTime and fee
	var resp map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Nil(t, resp["exitTime"])
	assert.Nil(t, resp["fee"])
}

func TestGetActiveTicketsOK(t *testing.T) {
	svc := &mockTicketService{}
	c := NewTicketController(svc)

	svc.On("ListActive", mock.Anything).Return([]dto.ActiveTicketResponse{
		{ID: "TKT-2", Status: "active"},
		{ID: "TKT-1", Status: "active"},
	}, nil)

	ctx, rec := newTestContext(http.MethodGet, "/api/tickets/active", "")

	require.NoError(t, c.GetActiveTickets(ctx))
	assert.Equal(t, http.StatusOK, rec.Code)

	var resp []dto.ActiveTicketResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp, 2)
	assert.Equal(t, "TKT-2", resp[0].ID)
}

func TestGetTicketsEmpty(t *testing.T) {
	svc := &mockTicketService{}
	c := NewTicketController(svc)

	svc.On("ListRecent", mock.Anything).Return([]dto.TicketResponse{}, nil)

	ctx, rec := newTestContext(http.MethodGet, "/api/tickets", "")

	require.NoError(t, c.GetTickets(ctx))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, "[]", rec.Body.String())
}
