package repository

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"airport-transfer-board/internal/domain/entity"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleDocument = `{
  "template": {
    "content": [
      {"id": "ABC123", "Flight": "FR 1234", "HotelName": "Hotel Sol", "Time": "08:15"},
      {"id": "XYZ999", "Flight": "VY 7001", "HotelName": "Playa Park", "Time": "09:40"}
    ]
  }
}`

var sampleBookings = []entity.Booking{
	{ID: "ABC123", Flight: "FR 1234", HotelName: "Hotel Sol", Time: "08:15"},
	{ID: "XYZ999", Flight: "VY 7001", HotelName: "Playa Park", Time: "09:40"},
}

func TestFileBookingSource(t *testing.T) {
	fsys := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fsys, "data.json", []byte(sampleDocument), 0o644))
	require.NoError(t, afero.WriteFile(fsys, "empty.json", []byte(`{"template": {}}`), 0o644))
	require.NoError(t, afero.WriteFile(fsys, "notemplate.json", []byte(`{"other": 1}`), 0o644))
	require.NoError(t, afero.WriteFile(fsys, "broken.json", []byte(`{"template": `), 0o644))

	t.Run("content", func(t *testing.T) {
		got, err := NewFileBookingSource(fsys, "data.json").Fetch(context.Background())
		require.NoError(t, err)
		assert.Equal(t, sampleBookings, got)
	})

	t.Run("missing content defaults to empty", func(t *testing.T) {
		got, err := NewFileBookingSource(fsys, "empty.json").Fetch(context.Background())
		require.NoError(t, err)
		assert.NotNil(t, got)
		assert.Empty(t, got)
	})

	t.Run("missing template", func(t *testing.T) {
		_, err := NewFileBookingSource(fsys, "notemplate.json").Fetch(context.Background())
		assert.ErrorIs(t, err, ErrMissingTemplate)
	})

	t.Run("malformed json", func(t *testing.T) {
		_, err := NewFileBookingSource(fsys, "broken.json").Fetch(context.Background())
		assert.Error(t, err)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := NewFileBookingSource(fsys, "nope.json").Fetch(context.Background())
		assert.ErrorIs(t, err, ErrSourceNotFound)
	})

	t.Run("cancelled context", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		_, err := NewFileBookingSource(fsys, "data.json").Fetch(ctx)
		assert.ErrorIs(t, err, context.Canceled)
	})
}

func TestHTTPBookingSource(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/data.json":
			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(sampleDocument))
		case "/broken.json":
			w.Write([]byte(`<html>oops</html>`))
		case "/fail.json":
			w.WriteHeader(http.StatusBadGateway)
		default:
			http.NotFound(w, r)
		}
	}))
	defer srv.Close()

	got, err := NewHTTPBookingSource(srv.Client(), srv.URL+"/data.json").Fetch(context.Background())
	require.NoError(t, err)
	assert.Equal(t, sampleBookings, got)

	_, err = NewHTTPBookingSource(srv.Client(), srv.URL+"/broken.json").Fetch(context.Background())
	assert.Error(t, err)

	_, err = NewHTTPBookingSource(srv.Client(), srv.URL+"/fail.json").Fetch(context.Background())
	assert.ErrorContains(t, err, "unexpected status 502")

	_, err = NewHTTPBookingSource(srv.Client(), srv.URL+"/missing.json").Fetch(context.Background())
	assert.ErrorIs(t, err, ErrSourceNotFound)
}

func TestRedisBookingSource(t *testing.T) {
	mr := miniredis.RunT(t)
	require.NoError(t, mr.Set("transfers:today", sampleDocument))

	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	defer client.Close()

	src := NewRedisBookingSource(client, "transfers:today")
	assert.Equal(t, "redis:transfers:today", src.Name())

	got, err := src.Fetch(context.Background())
	require.NoError(t, err)
	assert.Equal(t, sampleBookings, got)

	_, err = NewRedisBookingSource(client, "transfers:tomorrow").Fetch(context.Background())
	assert.ErrorIs(t, err, ErrSourceNotFound)
}

func TestNewBookingSourceSelectsByLocator(t *testing.T) {
	client := redis.NewClient(&redis.Options{Addr: "localhost:0"})
	defer client.Close()
	deps := SourceDeps{FS: afero.NewMemMapFs(), HTTPClient: http.DefaultClient, RedisClient: client}

	src, err := NewBookingSource("https://example.com/data.json", deps)
	require.NoError(t, err)
	assert.IsType(t, &httpBookingSource{}, src)

	src, err = NewBookingSource("redis:transfers:today", deps)
	require.NoError(t, err)
	assert.IsType(t, &redisBookingSource{}, src)

	src, err = NewBookingSource("data.json", deps)
	require.NoError(t, err)
	assert.IsType(t, &fileBookingSource{}, src)

	_, err = NewBookingSource("redis:x", SourceDeps{})
	assert.ErrorIs(t, err, ErrRedisUnavailable)

	assert.True(t, IsRedisLocator("redis:k"))
	assert.False(t, IsRedisLocator("data.json"))
}
