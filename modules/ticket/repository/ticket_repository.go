package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"parking-api/core/database"
	"parking-api/core/logger"
	"parking-api/modules/ticket/entity"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
)

// ErrDuplicateID is returned when a ticket id already exists.
var ErrDuplicateID = errors.New("ticket id already exists")

const pgUniqueViolation = "23505"

// TicketRepository handles tickets database operations
type TicketRepository struct {
	DB database.IDatabase
}

// NewTicketRepository creates a new repository instance
func NewTicketRepository(db database.IDatabase) *TicketRepository {
	return &TicketRepository{DB: db}
}

// TicketRepositoryInterface defines the repository contract
type TicketRepositoryInterface interface {
	GetByID(ctx context.Context, id string) (*entity.Ticket, error)
	ListActive(ctx context.Context) ([]entity.Ticket, error)
	ListRecent(ctx context.Context, limit int) ([]entity.Ticket, error)

	// Transaction-scoped operations driven by the ticket service.
	Create(ctx context.Context, tx *sqlx.Tx, ticket *entity.Ticket) (*entity.Ticket, error)
	GetActiveByIDForUpdate(ctx context.Context, tx *sqlx.Tx, id string) (*entity.Ticket, error)
	Complete(ctx context.Context, tx *sqlx.Tx, id string, exitTime time.Time, fee float64) error
}

func (r *TicketRepository) Create(ctx context.Context, tx *sqlx.Tx, ticket *entity.Ticket) (*entity.Ticket, error) {
	query := `
		INSERT INTO tickets (id, vehicle_number, vehicle_type, slot_id, driver_name, contact_number, entry_time, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, vehicle_number, vehicle_type, slot_id, driver_name, contact_number,
		          entry_time, exit_time, status, fee, created_at
	`

	var created entity.Ticket
	err := tx.GetContext(ctx, &created, query,
		ticket.ID, ticket.VehicleNumber, ticket.VehicleType, ticket.SlotID,
		ticket.DriverName, ticket.ContactNumber, ticket.EntryTime, ticket.Status)

	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == pgUniqueViolation {
			return nil, ErrDuplicateID
		}
		logger.Error("TicketRepository:Create", "error", err)
		return nil, err
	}

	return &created, nil
}

func (r *TicketRepository) GetByID(ctx context.Context, id string) (*entity.Ticket, error) {
	query := `
		SELECT id, vehicle_number, vehicle_type, slot_id, driver_name, contact_number,
		       entry_time, exit_time, status, fee, created_at
		FROM tickets WHERE id = $1
	`

	var ticket entity.Ticket
	err := r.DB.GetContext(ctx, &ticket, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		logger.Error("TicketRepository:GetByID", "error", err)
		return nil, err
	}

	return &ticket, nil
}

// GetActiveByIDForUpdate locks the active ticket row for the duration of
// tx. Concurrent checkouts of the same ticket serialize here: the loser
// re-reads after commit, finds no active row, and fails.
func (r *TicketRepository) GetActiveByIDForUpdate(ctx context.Context, tx *sqlx.Tx, id string) (*entity.Ticket, error) {
	query := `
		SELECT id, vehicle_number, vehicle_type, slot_id, driver_name, contact_number,
		       entry_time, exit_time, status, fee, created_at
		FROM tickets WHERE id = $1 AND status = 'active'
		FOR UPDATE
	`

	var ticket entity.Ticket
	err := tx.GetContext(ctx, &ticket, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		logger.Error("TicketRepository:GetActiveByIDForUpdate", "error", err)
		return nil, err
	}

	return &ticket, nil
}

func (r *TicketRepository) ListActive(ctx context.Context) ([]entity.Ticket, error) {
	query := `
		SELECT id, vehicle_number, vehicle_type, slot_id, driver_name, contact_number,
		       entry_time, exit_time, status, fee, created_at
		FROM tickets
		WHERE status = 'active'
		ORDER BY entry_time DESC, created_at DESC
	`

	var tickets []entity.Ticket
	err := r.DB.SelectContext(ctx, &tickets, query)
	if err != nil {
		logger.Error("TicketRepository:ListActive", "error", err)
		return nil, err
	}

	return tickets, nil
}

func (r *TicketRepository) ListRecent(ctx context.Context, limit int) ([]entity.Ticket, error) {
	query := `
		SELECT id, vehicle_number, vehicle_type, slot_id, driver_name, contact_number,
		       entry_time, exit_time, status, fee, created_at
		FROM tickets
		ORDER BY entry_time DESC, created_at DESC
		LIMIT $1
	`

	var tickets []entity.Ticket
	err := r.DB.SelectContext(ctx, &tickets, query, limit)
	if err != nil {
		logger.Error("TicketRepository:ListRecent", "error", err)
		return nil, err
	}

	return tickets, nil
}

// Complete transitions the ticket to its terminal state. Exit time, fee
// and status change in one update.
func (r *TicketRepository) Complete(ctx context.Context, tx *sqlx.Tx, id string, exitTime time.Time, fee float64) error {
	query := `
		UPDATE tickets
		SET exit_time = $2, fee = $3, status = 'completed'
		WHERE id = $1
	`

	if _, err := tx.ExecContext(ctx, query, id, exitTime, fee); err != nil {
		logger.Error("TicketRepository:Complete", "error", err)
		return err
	}
	return nil
}
