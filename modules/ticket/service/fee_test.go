package service

import (
	"testing"
	"time"

	"parking-api/modules/ticket/entity"

	"github.com/stretchr/testify/assert"
)

func TestComputeFee(t *testing.T) {
	entry := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)

	tests := []struct {
		name        string
		exit        time.Time
		vehicleType entity.VehicleType
		want        float64
	}{
		{
			name:        "one second rounds up to a full hour",
			exit:        entry.Add(time.Second),
			vehicleType: entity.VehicleTypeCar,
			want:        5,
		},
		{
			name:        "exactly two hours for a truck",
			exit:        entry.Add(2 * time.Hour),
			vehicleType: entity.VehicleTypeTruck,
			want:        16,
		},
		{
			name:        "partial second hour counts fully",
			exit:        entry.Add(time.Hour + time.Minute),
			vehicleType: entity.VehicleTypeMotorcycle,
			want:        4,
		},
		{
			name:        "suv rate",
			exit:        entry.Add(30 * time.Minute),
			vehicleType: entity.VehicleTypeSUV,
			want:        6,
		},
		{
			name:        "unknown class bills at the default rate",
			exit:        entry.Add(3 * time.Hour),
			vehicleType: entity.VehicleType("van"),
			want:        15,
		},
		{
			name:        "zero duration is free",
			exit:        entry,
			vehicleType: entity.VehicleTypeCar,
			want:        0,
		},
		{
			name:        "clock skew clamps to zero instead of going negative",
			exit:        entry.Add(-10 * time.Minute),
			vehicleType: entity.VehicleTypeTruck,
			want:        0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ComputeFee(entry, tt.exit, tt.vehicleType)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestComputeFeeMonotonic(t *testing.T) {
	entry := time.Date(2025, 6, 1, 8, 0, 0, 0, time.UTC)

	prev := float64(-1)
	for minutes := 0; minutes <= 24*60; minutes += 17 {
		exit := entry.Add(time.Duration(minutes) * time.Minute)
		fee := ComputeFee(entry, exit, entity.VehicleTypeCar)

		assert.GreaterOrEqual(t, fee, prev, "fee decreased at %d minutes", minutes)
		assert.GreaterOrEqual(t, fee, 0.0)
		prev = fee
	}
}

func TestHourlyRate(t *testing.T) {
	assert.Equal(t, 5.0, HourlyRate(entity.VehicleTypeCar))
	assert.Equal(t, 2.0, HourlyRate(entity.VehicleTypeMotorcycle))
	assert.Equal(t, 8.0, HourlyRate(entity.VehicleTypeTruck))
	assert.Equal(t, 6.0, HourlyRate(entity.VehicleTypeSUV))
	assert.Equal(t, 5.0, HourlyRate(entity.VehicleType("bus")))
}
