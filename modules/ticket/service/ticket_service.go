package service

import (
	"context"
	stderrors "errors"
	"strings"
	"time"

	"parking-api/core/cache"
	"parking-api/core/constants"
	"parking-api/core/database"
	"parking-api/core/errors"
	"parking-api/core/jobs"
	"parking-api/core/logger"
	slotrepo "parking-api/modules/slot/repository"
	"parking-api/modules/ticket/dto"
	"parking-api/modules/ticket/entity"
	"parking-api/modules/ticket/repository"

	"github.com/jmoiron/sqlx"
)

// errAborted signals that the transaction closure already produced an
// AppError and the rollback is intentional.
var errAborted = stderrors.New("transaction aborted")

type TicketServiceInterface interface {
	CheckIn(ctx context.Context, req *dto.CheckInRequest) (*dto.ActiveTicketResponse, *errors.AppError)
	CheckOut(ctx context.Context, ticketID string) (*dto.TicketResponse, *errors.AppError)
	GetTicket(ctx context.Context, ticketID string) (*dto.TicketResponse, *errors.AppError)
	ListActive(ctx context.Context) ([]dto.ActiveTicketResponse, *errors.AppError)
	ListRecent(ctx context.Context) ([]dto.TicketResponse, *errors.AppError)
}

// ticketService coordinates slot and ticket transitions. Check-in and
// checkout are the only code paths that mutate slot occupancy or ticket
// status, and each runs as a single database transaction.
type ticketService struct {
	ticketRepo repository.TicketRepositoryInterface
	slotRepo   slotrepo.SlotRepositoryInterface
	txRunner   database.TxRunner
	cache      cache.Cache
	jobs       jobs.Client
}

func NewTicketService(
	ticketRepo repository.TicketRepositoryInterface,
	slotRepo slotrepo.SlotRepositoryInterface,
	txRunner database.TxRunner,
	c cache.Cache,
	jobClient jobs.Client,
) TicketServiceInterface {
	return &ticketService{
		ticketRepo: ticketRepo,
		slotRepo:   slotRepo,
		txRunner:   txRunner,
		cache:      c,
		jobs:       jobClient,
	}
}

// CheckIn creates an active ticket and occupies its slot as one unit.
// The slot row lock serializes concurrent check-ins on the same slot:
// exactly one wins, the rest observe the slot occupied.
func (s *ticketService) CheckIn(ctx context.Context, req *dto.CheckInRequest) (*dto.ActiveTicketResponse, *errors.AppError) {
	if validationErrs := req.Validate(); len(validationErrs) > 0 {
		return nil, errors.NewAppError(errors.ErrInvalidInput, "Missing required fields", validationErrs)
	}

	ticket := &entity.Ticket{
		ID:            strings.TrimSpace(req.TicketID),
		VehicleNumber: strings.ToUpper(strings.TrimSpace(req.VehicleNumber)),
		VehicleType:   entity.VehicleType(strings.ToLower(strings.TrimSpace(req.VehicleType))),
		SlotID:        req.SlotID,
		DriverName:    strings.TrimSpace(req.DriverName),
		ContactNumber: strings.TrimSpace(req.ContactNumber),
		EntryTime:     time.Now().UTC(),
		Status:        entity.TicketStatusActive,
	}

	var created *entity.Ticket
	var appErr *errors.AppError

	txErr := s.txRunner.Transaction(ctx, func(tx *sqlx.Tx) error {
		slot, err := s.slotRepo.GetByNumberForUpdate(ctx, tx, req.SlotID)
		if err != nil {
			return err
		}
		if slot == nil {
			appErr = errors.NewAppError(errors.ErrNotFound, "Slot not found", nil)
			return errAborted
		}
		if !slot.Available {
			appErr = errors.NewAppError(errors.ErrAlreadyExists, "Slot is already occupied", nil)
			return errAborted
		}

		created, err = s.ticketRepo.Create(ctx, tx, ticket)
		if err != nil {
			if stderrors.Is(err, repository.ErrDuplicateID) {
				appErr = errors.NewAppError(errors.ErrAlreadyExists, "Ticket id already exists", nil)
				return errAborted
			}
			return err
		}

		return s.slotRepo.Occupy(ctx, tx, slot.SlotNumber, created.ID)
	})

	if appErr != nil {
		return nil, appErr
	}
	if txErr != nil {
		logger.Error("TicketService:CheckIn", "error", txErr, "ticket_id", ticket.ID, "slot_id", req.SlotID)
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to check in", nil)
	}

	s.invalidateAvailability(ctx)

	logger.Info("TicketService:CheckIn:Success",
		"ticket_id", created.ID,
		"slot_id", created.SlotID,
		"vehicle_number", created.VehicleNumber,
	)

	result := dto.NewActiveTicketResponse(created)
	return &result, nil
}

// CheckOut completes the active ticket and releases its slot as one
// unit: the slot is freed iff the completion commits. The ticket row
// lock makes concurrent checkouts of the same ticket yield exactly one
// success; later attempts see no active row.
func (s *ticketService) CheckOut(ctx context.Context, ticketID string) (*dto.TicketResponse, *errors.AppError) {
	if strings.TrimSpace(ticketID) == "" {
		return nil, errors.NewAppError(errors.ErrInvalidInput, "Ticket id is required", nil)
	}

	var completed *entity.Ticket
	var appErr *errors.AppError

	txErr := s.txRunner.Transaction(ctx, func(tx *sqlx.Tx) error {
		ticket, err := s.ticketRepo.GetActiveByIDForUpdate(ctx, tx, ticketID)
		if err != nil {
			return err
		}
		if ticket == nil {
			appErr = errors.NewAppError(errors.ErrNotFound, "Active ticket not found", nil)
			return errAborted
		}

		exitTime := time.Now().UTC()
		fee := ComputeFee(ticket.EntryTime, exitTime, ticket.VehicleType)

		if err := s.ticketRepo.Complete(ctx, tx, ticket.ID, exitTime, fee); err != nil {
			return err
		}
		if err := s.slotRepo.Release(ctx, tx, ticket.SlotID); err != nil {
			return err
		}

		ticket.ExitTime = &exitTime
		ticket.Fee = &fee
		ticket.Status = entity.TicketStatusCompleted
		completed = ticket
		return nil
	})

	if appErr != nil {
		return nil, appErr
	}
	if txErr != nil {
		logger.Error("TicketService:CheckOut", "error", txErr, "ticket_id", ticketID)
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to check out", nil)
	}

	s.invalidateAvailability(ctx)
	s.enqueueReceipt(ctx, completed)

	logger.Info("TicketService:CheckOut:Success",
		"ticket_id", completed.ID,
		"slot_id", completed.SlotID,
		"fee", *completed.Fee,
	)

	result := dto.NewTicketResponse(completed)
	return &result, nil
}

func (s *ticketService) GetTicket(ctx context.Context, ticketID string) (*dto.TicketResponse, *errors.AppError) {
	ticket, err := s.ticketRepo.GetByID(ctx, ticketID)
	if err != nil {
		logger.Error("TicketService:GetTicket", "error", err, "ticket_id", ticketID)
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to get ticket", nil)
	}
	if ticket == nil {
		return nil, errors.NewAppError(errors.ErrNotFound, "Ticket not found", nil)
	}

	result := dto.NewTicketResponse(ticket)
	return &result, nil
}

func (s *ticketService) ListActive(ctx context.Context) ([]dto.ActiveTicketResponse, *errors.AppError) {
	tickets, err := s.ticketRepo.ListActive(ctx)
	if err != nil {
		logger.Error("TicketService:ListActive", "error", err)
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to list active tickets", nil)
	}

	result := make([]dto.ActiveTicketResponse, 0, len(tickets))
	for i := range tickets {
		result = append(result, dto.NewActiveTicketResponse(&tickets[i]))
	}
	return result, nil
}

func (s *ticketService) ListRecent(ctx context.Context) ([]dto.TicketResponse, *errors.AppError) {
	tickets, err := s.ticketRepo.ListRecent(ctx, constants.RecentTicketsLimit)
	if err != nil {
		logger.Error("TicketService:ListRecent", "error", err)
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to list tickets", nil)
	}

	result := make([]dto.TicketResponse, 0, len(tickets))
	for i := range tickets {
		result = append(result, dto.NewTicketResponse(&tickets[i]))
	}
	return result, nil
}

func (s *ticketService) invalidateAvailability(ctx context.Context) {
	if err := s.cache.Delete(ctx, constants.CacheKeyAvailableSlots); err != nil {
		logger.Warn("TicketService:InvalidateAvailability", "error", err)
	}
}

// enqueueReceipt is best-effort; a failed enqueue never fails the checkout.
func (s *ticketService) enqueueReceipt(ctx context.Context, t *entity.Ticket) {
	payload := jobs.ReceiptPayload{
		TicketID:      t.ID,
		VehicleNumber: t.VehicleNumber,
		DriverName:    t.DriverName,
		ContactNumber: t.ContactNumber,
		SlotID:        t.SlotID,
		EntryTime:     t.EntryTime,
		ExitTime:      *t.ExitTime,
		Fee:           *t.Fee,
	}
	if err := s.jobs.EnqueueReceipt(ctx, payload); err != nil {
		logger.Warn("TicketService:EnqueueReceipt", "error", err, "ticket_id", t.ID)
	}
}
