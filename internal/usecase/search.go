package usecase

import (
	"context"
	"strings"

	"airport-transfer-board/internal/converter"
	"airport-transfer-board/internal/delivery/dto"
	"airport-transfer-board/internal/domain/entity"
	"airport-transfer-board/internal/render"
	"airport-transfer-board/internal/service"
	"airport-transfer-board/pkg/metrics"
)

type searchState struct {
	query         string
	legendVisible bool
	resultVisible bool
	outcome       string
	match         *entity.Booking
	matchDataset  entity.Dataset
}

func (s searchState) toResponse(cfg BoardConfig) *dto.SearchStateResponse {
	resp := &dto.SearchStateResponse{
		Query:         s.query,
		LegendVisible: s.legendVisible,
		ResultVisible: s.resultVisible,
		Outcome:       s.outcome,
	}
	switch s.outcome {
	case render.OutcomeFound:
		resp.Booking = converter.BookingToResponse(s.match, s.matchDataset)
	case render.OutcomeNotFound:
		resp.ContactMessage = cfg.ContactMessage
		resp.QRImageURL = cfg.QRImageURL
	}
	return resp
}

// Search looks the query up by exact, case-insensitive id, today's list first.
// An empty query returns to HOME. Hit or miss, the inactivity timer is re-armed.
func (b *boardUsecase) Search(ctx context.Context, query string) *dto.BoardStateResponse {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.screen != ScreenSearch {
		b.enterSearch()
	}

	b.timers.Cancel(service.TimerInactivity)
	b.search.legendVisible = false
	b.search.resultVisible = true
	b.search.query = query

	q := normalizeQuery(query)
	if q == "" {
		b.metrics.Searches.WithLabelValues(metrics.SearchEmpty).Inc()
		b.exitSearch()
		return b.snapshot()
	}

	b.timers.Schedule(service.TimerInactivity, b.cfg.InactivityTimeout, b.exitSearch)

	booking, dataset, ok := b.findBooking(q)
	if ok {
		b.search.outcome = render.OutcomeFound
		b.search.match = &booking
		b.search.matchDataset = dataset
		b.metrics.Searches.WithLabelValues(metrics.SearchFound).Inc()
		b.log.Infof("Booking search matched in %s", dataset)
	} else {
		b.search.outcome = render.OutcomeNotFound
		b.search.match = nil
		b.search.matchDataset = ""
		b.metrics.Searches.WithLabelValues(metrics.SearchNotFound).Inc()
		b.log.Info("Booking search found no match")
	}

	return b.snapshot()
}

// LookupBooking applies the search matching rules without touching screen or timers
func (b *boardUsecase) LookupBooking(ctx context.Context, id string) (*dto.BookingResponse, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.status != LoadStatusReady {
		return nil, ErrBoardNotReady
	}

	booking, dataset, ok := b.findBooking(normalizeQuery(id))
	if !ok {
		return nil, ErrBookingNotFound
	}
	return converter.BookingToResponse(&booking, dataset), nil
}

// GetDatasetPage returns any page of either dataset. ViewState is left untouched.
func (b *boardUsecase) GetDatasetPage(ctx context.Context, dataset entity.Dataset, page int) (*dto.BookingPageResponse, error) {
	if !dataset.IsValid() {
		return nil, ErrUnknownDataset
	}
	if page < 1 {
		return nil, ErrInvalidPage
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	if b.status != LoadStatusReady {
		return nil, ErrBoardNotReady
	}

	records := b.datasets.Records(dataset)
	return &dto.BookingPageResponse{
		Dataset:    string(dataset),
		Bookings:   converter.BookingsToResponses(PageSlice(records, page, b.view.PageSize), dataset),
		Page:       page,
		PageSize:   b.view.PageSize,
		TotalPages: TotalPages(len(records), b.view.PageSize),
		Total:      len(records),
	}, nil
}

// findBooking returns the first match, scanning today before tomorrow. Caller holds mu.
func (b *boardUsecase) findBooking(q string) (entity.Booking, entity.Dataset, bool) {
	if q == "" || b.datasets == nil {
		return entity.Booking{}, "", false
	}
	for _, label := range []entity.Dataset{entity.DatasetToday, entity.DatasetTomorrow} {
		records := b.datasets.Records(label)
		for i := range records {
			if records[i].MatchesID(q) {
				return records[i], label, true
			}
		}
	}
	return entity.Booking{}, "", false
}

func normalizeQuery(q string) string {
	return strings.ToLower(strings.TrimSpace(q))
}
