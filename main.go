package main

import (
	"parking-api/core/logger"
	"parking-api/core/server"
)

// @title Parking Lot API
// @version 1.0
// @description Fixed-capacity parking lot management: slot occupancy and ticket check-in/checkout.

// @host localhost:3000
// @BasePath /api

func main() {
	if err := server.Run(); err != nil {
		logger.Error("run server error", "error", err)
	}
}
