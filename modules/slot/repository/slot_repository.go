package repository

import (
	"context"
	"database/sql"
	"errors"

	"parking-api/core/database"
	"parking-api/core/logger"
	"parking-api/modules/slot/entity"

	"github.com/jmoiron/sqlx"
)

// SlotRepository handles parking_slots database operations
type SlotRepository struct {
	DB database.IDatabase
}

// NewSlotRepository creates a new repository instance
func NewSlotRepository(db database.IDatabase) *SlotRepository {
	return &SlotRepository{DB: db}
}

// SlotRepositoryInterface defines the repository contract
type SlotRepositoryInterface interface {
	List(ctx context.Context) ([]entity.Slot, error)
	ListAvailable(ctx context.Context) ([]entity.Slot, error)
	GetByNumber(ctx context.Context, slotNumber int) (*entity.Slot, error)

	// Transaction-scoped mutations; only the ticket service's check-in
	// and checkout transactions may call these.
	GetByNumberForUpdate(ctx context.Context, tx *sqlx.Tx, slotNumber int) (*entity.Slot, error)
	Occupy(ctx context.Context, tx *sqlx.Tx, slotNumber int, ticketID string) error
	Release(ctx context.Context, tx *sqlx.Tx, slotNumber int) error
}

func (r *SlotRepository) List(ctx context.Context) ([]entity.Slot, error) {
	query := `
		SELECT id, slot_number, available, ticket_id, created_at, updated_at
		FROM parking_slots
		ORDER BY slot_number
	`

	var slots []entity.Slot
	err := r.DB.SelectContext(ctx, &slots, query)
	if err != nil {
		logger.Error("SlotRepository:List", "error", err)
		return nil, err
	}

	return slots, nil
}

func (r *SlotRepository) ListAvailable(ctx context.Context) ([]entity.Slot, error) {
	query := `
		SELECT id, slot_number, available, ticket_id, created_at, updated_at
		FROM parking_slots
		WHERE available = TRUE
		ORDER BY slot_number
	`

	var slots []entity.Slot
	err := r.DB.SelectContext(ctx, &slots, query)
	if err != nil {
		logger.Error("SlotRepository:ListAvailable", "error", err)
		return nil, err
	}

	return slots, nil
}

func (r *SlotRepository) GetByNumber(ctx context.Context, slotNumber int) (*entity.Slot, error) {
	query := `
		SELECT id, slot_number, available, ticket_id, created_at, updated_at
		FROM parking_slots
		WHERE slot_number = $1
	`

	var slot entity.Slot
	err := r.DB.GetContext(ctx, &slot, query, slotNumber)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		logger.Error("SlotRepository:GetByNumber", "error", err)
		return nil, err
	}

	return &slot, nil
}

// GetByNumberForUpdate locks the slot row for the duration of tx. This is
// the serialization point for concurrent check-ins on the same slot.
func (r *SlotRepository) GetByNumberForUpdate(ctx context.Context, tx *sqlx.Tx, slotNumber int) (*entity.Slot, error) {
	query := `
		SELECT id, slot_number, available, ticket_id, created_at, updated_at
		FROM parking_slots
		WHERE slot_number = $1
		FOR UPDATE
	`

	var slot entity.Slot
	err := tx.GetContext(ctx, &slot, query, slotNumber)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		logger.Error("SlotRepository:GetByNumberForUpdate", "error", err)
		return nil, err
	}

	return &slot, nil
}

func (r *SlotRepository) Occupy(ctx context.Context, tx *sqlx.Tx, slotNumber int, ticketID string) error {
	query := `
		UPDATE parking_slots
		SET available = FALSE, ticket_id = $2, updated_at = NOW()
		WHERE slot_number = $1
	`

	if _, err := tx.ExecContext(ctx, query, slotNumber, ticketID); err != nil {
		logger.Error("SlotRepository:Occupy", "error", err)
		return err
	}
	return nil
}

// Release clears occupancy. Releasing an already-free slot is a no-op
// success; the checkout transaction holds the ticket row lock, so the
// distinction is unobservable through the coordinator.
func (r *SlotRepository) Release(ctx context.Context, tx *sqlx.Tx, slotNumber int) error {
	query := `
		UPDATE parking_slots
		SET available = TRUE, ticket_id = NULL, updated_at = NOW()
		WHERE slot_number = $1
	`

	if _, err := tx.ExecContext(ctx, query, slotNumber); err != nil {
		logger.Error("SlotRepository:Release", "error", err)
		return err
	}
	return nil
}
