package constants

import "time"

// Database connection pool settings
const (
	DatabaseSSLMode         = "disable"
	DatabaseMaxOpenConns    = 25
	DatabaseMaxIdleConns    = 5
	DatabaseConnMaxLifetime = 30 // in minutes
)

// Parking defaults
const (
	DefaultSlotCapacity = 20
	RecentTicketsLimit  = 100
)

// Cache keys and TTLs
const (
	CacheKeyAvailableSlots = "parking:slots:available"
	AvailableSlotsCacheTTL = 5 * time.Second
)
