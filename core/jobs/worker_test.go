package jobs

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/hibiken/asynq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHandleTicketReceipt(t *testing.T) {
	payload := ReceiptPayload{
		TicketID:      "TKT-1001",
		VehicleNumber: "KA01HH1234",
		DriverName:    "John Smith",
		ContactNumber: "555-0100",
		SlotID:        5,
		EntryTime:     time.Now().UTC().Add(-2 * time.Hour),
		ExitTime:      time.Now().UTC(),
		Fee:           10,
	}
	raw, err := json.Marshal(payload)
	require.NoError(t, err)

	task := asynq.NewTask(TypeTicketReceipt, raw)
	assert.NoError(t, HandleTicketReceipt(context.Background(), task))
}

func TestHandleTicketReceiptBadPayload(t *testing.T) {
	task := asynq.NewTask(TypeTicketReceipt, []byte("not json"))
	assert.Error(t, HandleTicketReceipt(context.Background(), task))
}
