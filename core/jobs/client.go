package jobs

import (
	"context"
	"encoding/json"
	"time"

	"parking-api/core/config"
	"parking-api/core/logger"

	"github.com/hibiken/asynq"
)

const (
	TypeTicketReceipt = "ticket:receipt"
	DefaultQueue      = "default"
)

// ReceiptPayload carries the checkout summary dispatched to the driver.
type ReceiptPayload struct {
	TicketID      string    `json:"ticket_id"`
	VehicleNumber string    `json:"vehicle_number"`
	DriverName    string    `json:"driver_name"`
	ContactNumber string    `json:"contact_number"`
	SlotID        int       `json:"slot_id"`
	EntryTime     time.Time `json:"entry_time"`
	ExitTime      time.Time `json:"exit_time"`
	Fee           float64   `json:"fee"`
}

// Client enqueues background tasks. Receipts are best-effort: callers log
// enqueue failures and carry on.
type Client interface {
	EnqueueReceipt(ctx context.Context, payload ReceiptPayload) error
	Close() error
}

type asynqJobClient struct {
	client *asynq.Client
}

func NewClient(cfg config.RedisConfig) Client {
	client := asynq.NewClient(asynq.RedisClientOpt{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
	return &asynqJobClient{client: client}
}

func (c *asynqJobClient) EnqueueReceipt(ctx context.Context, payload ReceiptPayload) error {
	payloadBytes, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	task := asynq.NewTask(TypeTicketReceipt, payloadBytes)
	info, err := c.client.EnqueueContext(ctx, task, asynq.Queue(DefaultQueue), asynq.MaxRetry(3))
	if err != nil {
		return err
	}

	logger.Info("JobClient:EnqueueReceipt",
		"job_id", info.ID,
		"job_type", TypeTicketReceipt,
		"ticket_id", payload.TicketID,
	)
	return nil
}

func (c *asynqJobClient) Close() error {
	return c.client.Close()
}

// noopClient is used when Redis is not configured.
type noopClient struct{}

func NewNoopClient() Client {
	return noopClient{}
}

func (noopClient) EnqueueReceipt(ctx context.Context, payload ReceiptPayload) error {
	return nil
}

func (noopClient) Close() error {
	return nil
}
