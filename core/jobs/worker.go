package jobs

import (
	"context"
	"encoding/json"
	"fmt"

	"parking-api/core/config"
	"parking-api/core/logger"

	"github.com/hibiken/asynq"
)

// NewServer builds the asynq worker that processes receipt tasks.
func NewServer(cfg config.RedisConfig) *asynq.Server {
	return asynq.NewServer(
		asynq.RedisClientOpt{
			Addr:     cfg.Addr,
			Password: cfg.Password,
			DB:       cfg.DB,
		},
		asynq.Config{
			Concurrency: 5,
			Queues: map[string]int{
				DefaultQueue: 1,
			},
		},
	)
}

// NewMux registers task handlers.
func NewMux() *asynq.ServeMux {
	mux := asynq.NewServeMux()
	mux.HandleFunc(TypeTicketReceipt, HandleTicketReceipt)
	return mux
}

// HandleTicketReceipt dispatches the checkout receipt to the driver's
// contact number. There is no SMS gateway wired up, so dispatch is a
// structured log entry operators can ship onward.
func HandleTicketReceipt(ctx context.Context, t *asynq.Task) error {
	var p ReceiptPayload
	if err := json.Unmarshal(t.Payload(), &p); err != nil {
		return fmt.Errorf("unmarshal receipt payload: %w", err)
	}

	logger.Info("Worker:HandleTicketReceipt",
		"ticket_id", p.TicketID,
		"vehicle_number", p.VehicleNumber,
		"driver_name", p.DriverName,
		"contact_number", p.ContactNumber,
		"slot_id", p.SlotID,
		"entry_time", p.EntryTime,
		"exit_time", p.ExitTime,
		"fee", p.Fee,
	)
	return nil
}
