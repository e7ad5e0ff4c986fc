package utils

import (
	"fmt"
	"time"

	gonanoid "github.com/matoous/go-nanoid/v2"
)

func GenerateID() string {
	id, err := gonanoid.Generate("0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz", 7)
	if err != nil {
		return ""
	}
	return id
}

// GenerateTicketID returns a TKT-prefixed id in the same shape the kiosk
// clients produce. Ticket ids remain caller-supplied at the API level;
// this exists for seeding and tooling.
func GenerateTicketID() string {
	return fmt.Sprintf("TKT-%d-%s", time.Now().UnixMilli(), GenerateID())
}
