package service

import (
	"math"
	"time"

	"parking-api/modules/ticket/entity"
)

// Hourly rates per vehicle class, in currency units per hour.
var hourlyRates = map[entity.VehicleType]float64{
	entity.VehicleTypeCar:        5,
	entity.VehicleTypeMotorcycle: 2,
	entity.VehicleTypeTruck:      8,
	entity.VehicleTypeSUV:        6,
}

const defaultHourlyRate float64 = 5

// HourlyRate returns the rate for a vehicle class; unknown classes bill
// at the default rate.
func HourlyRate(vehicleType entity.VehicleType) float64 {
	if rate, ok := hourlyRates[vehicleType]; ok {
		return rate
	}
	return defaultHourlyRate
}

// ComputeFee bills whole hours rounded up: any partial hour counts as a
// full hour. Duration is clamped at zero first, so a skewed clock yields
// fee 0 rather than a negative amount.
func ComputeFee(entryTime, exitTime time.Time, vehicleType entity.VehicleType) float64 {
	duration := exitTime.Sub(entryTime)
	if duration < 0 {
		duration = 0
	}

	hours := math.Ceil(duration.Hours())
	return hours * HourlyRate(vehicleType)
}
