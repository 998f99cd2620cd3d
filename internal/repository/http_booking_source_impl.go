package repository

import (
	"context"
	"fmt"
	"net/http"

	"airport-transfer-board/internal/domain/entity"
	domainRepo "airport-transfer-board/internal/domain/repository"
)

type httpBookingSource struct {
	client *http.Client
	url    string
}

func NewHTTPBookingSource(client *http.Client, url string) domainRepo.BookingSource {
	if client == nil {
		client = http.DefaultClient
	}
	return &httpBookingSource{
		client: client,
		url:    url,
	}
}

func (s *httpBookingSource) Name() string {
	return s.url
}

func (s *httpBookingSource) Fetch(ctx context.Context) ([]entity.Booking, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.url, nil)
	if err != nil {
		return nil, fmt.Errorf("build request for %s: %w", s.url, err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch %s: %w", s.url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, fmt.Errorf("fetch %s: %w", s.url, ErrSourceNotFound)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("fetch %s: unexpected status %d", s.url, resp.StatusCode)
	}

	bookings, err := decodeTransferDocument(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("fetch %s: %w", s.url, err)
	}
	return bookings, nil
}
