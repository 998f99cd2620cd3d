package repository

import (
	"bytes"
	"context"
	"errors"
	"fmt"

	"airport-transfer-board/internal/domain/entity"
	domainRepo "airport-transfer-board/internal/domain/repository"

	"github.com/redis/go-redis/v9"
)

// redisBookingSource reads a transfer document stored as a plain string value
type redisBookingSource struct {
	client *redis.Client
	key    string
}

func NewRedisBookingSource(client *redis.Client, key string) domainRepo.BookingSource {
	return &redisBookingSource{
		client: client,
		key:    key,
	}
}

func (s *redisBookingSource) Name() string {
	return RedisLocatorPrefix + s.key
}

func (s *redisBookingSource) Fetch(ctx context.Context) ([]entity.Booking, error) {
	raw, err := s.client.Get(ctx, s.key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, fmt.Errorf("get %s: %w", s.key, ErrSourceNotFound)
		}
		return nil, fmt.Errorf("get %s: %w", s.key, err)
	}

	bookings, err := decodeTransferDocument(bytes.NewReader(raw))
	if err != nil {
		return nil, fmt.Errorf("get %s: %w", s.key, err)
	}
	return bookings, nil
}
