package service

import (
	"context"
	"encoding/json"

	"parking-api/core/cache"
	"parking-api/core/constants"
	"parking-api/core/errors"
	"parking-api/core/logger"
	"parking-api/modules/slot/dto"
	"parking-api/modules/slot/repository"
)

type SlotServiceInterface interface {
	ListSlots(ctx context.Context) ([]dto.SlotResponse, *errors.AppError)
	ListAvailable(ctx context.Context) ([]dto.AvailableSlotResponse, *errors.AppError)
}

type slotService struct {
	slotRepo repository.SlotRepositoryInterface
	cache    cache.Cache
}

func NewSlotService(slotRepo repository.SlotRepositoryInterface, c cache.Cache) SlotServiceInterface {
	return &slotService{
		slotRepo: slotRepo,
		cache:    c,
	}
}

func (s *slotService) ListSlots(ctx context.Context) ([]dto.SlotResponse, *errors.AppError) {
	slots, err := s.slotRepo.List(ctx)
	if err != nil {
		logger.Error("SlotService:ListSlots", "error", err)
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to list slots", nil)
	}

	result := make([]dto.SlotResponse, 0, len(slots))
	for i := range slots {
		result = append(result, dto.NewSlotResponse(&slots[i]))
	}
	return result, nil
}

// ListAvailable serves from a short-TTL cache when possible. Stale reads
// are bounded by the TTL and never affect check-in correctness, which is
// re-validated under the slot row lock.
func (s *slotService) ListAvailable(ctx context.Context) ([]dto.AvailableSlotResponse, *errors.AppError) {
	if cached, err := s.cache.Get(ctx, constants.CacheKeyAvailableSlots); err == nil {
		var result []dto.AvailableSlotResponse
		decodeErr := json.Unmarshal([]byte(cached), &result)
		if decodeErr == nil {
			return result, nil
		}
		logger.Warn("SlotService:ListAvailable:CacheDecode", "error", decodeErr)
	}

	slots, err := s.slotRepo.ListAvailable(ctx)
	if err != nil {
		logger.Error("SlotService:ListAvailable", "error", err)
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to list available slots", nil)
	}

	result := make([]dto.AvailableSlotResponse, 0, len(slots))
	for i := range slots {
		result = append(result, dto.NewAvailableSlotResponse(&slots[i]))
	}

	if encoded, err := json.Marshal(result); err == nil {
		if err := s.cache.Set(ctx, constants.CacheKeyAvailableSlots, string(encoded), constants.AvailableSlotsCacheTTL); err != nil {
			logger.Warn("SlotService:ListAvailable:CacheSet", "error", err)
		}
	}

	return result, nil
}
