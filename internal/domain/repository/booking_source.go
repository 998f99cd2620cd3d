package repository

import (
	"context"

	"airport-transfer-board/internal/domain/entity"
)

// BookingSource supplies one dataset's booking list
type BookingSource interface {
	// Name identifies the source in logs and errors
	Name() string
	Fetch(ctx context.Context) ([]entity.Booking, error)
}
