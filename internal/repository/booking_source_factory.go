package repository

import (
	"errors"
	"net/http"
	"strings"

	domainRepo "airport-transfer-board/internal/domain/repository"

	"github.com/redis/go-redis/v9"
	"github.com/spf13/afero"
)

// RedisLocatorPrefix marks a locator naming a Redis key, e.g. "redis:transfers:today"
const RedisLocatorPrefix = "redis:"

var ErrRedisUnavailable = errors.New("redis locator used without a redis client")

// SourceDeps carries the clients a locator may need
type SourceDeps struct {
	FS          afero.Fs
	HTTPClient  *http.Client
	RedisClient *redis.Client
}

// IsRedisLocator reports whether the locator needs a Redis client
func IsRedisLocator(locator string) bool {
	return strings.HasPrefix(locator, RedisLocatorPrefix)
}

// NewBookingSource picks the source implementation from the locator:
// http(s) URLs, "redis:<key>", or a file path.
func NewBookingSource(locator string, deps SourceDeps) (domainRepo.BookingSource, error) {
	switch {
	case strings.HasPrefix(locator, "http://"), strings.HasPrefix(locator, "https://"):
		return NewHTTPBookingSource(deps.HTTPClient, locator), nil
	case IsRedisLocator(locator):
		if deps.RedisClient == nil {
			return nil, ErrRedisUnavailable
		}
		return NewRedisBookingSource(deps.RedisClient, strings.TrimPrefix(locator, RedisLocatorPrefix)), nil
	default:
		fsys := deps.FS
		if fsys == nil {
			fsys = afero.NewOsFs()
		}
		return NewFileBookingSource(fsys, locator), nil
	}
}
