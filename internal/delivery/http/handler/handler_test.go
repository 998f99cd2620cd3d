package handler

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"airport-transfer-board/internal/delivery/dto"
	"airport-transfer-board/internal/delivery/http/middleware"
	"airport-transfer-board/internal/domain/entity"
	"airport-transfer-board/internal/render"
	"airport-transfer-board/internal/usecase"
	"airport-transfer-board/pkg/validator"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"
	logtest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubBoard struct {
	usecase.BoardUsecase

	state     *dto.BoardStateResponse
	lookupErr error
	pageErr   error
	searched  []string
	calls     []string
}

func (s *stubBoard) State(ctx context.Context) *dto.BoardStateResponse { return s.state }

func (s *stubBoard) EnterSearch(ctx context.Context) { s.calls = append(s.calls, "enter") }

func (s *stubBoard) ExitSearch(ctx context.Context) { s.calls = append(s.calls, "exit") }

func (s *stubBoard) Adventure(ctx context.Context) { s.calls = append(s.calls, "adventure") }

func (s *stubBoard) Search(ctx context.Context, query string) *dto.BoardStateResponse {
	s.searched = append(s.searched, query)
	return s.state
}

func (s *stubBoard) LookupBooking(ctx context.Context, id string) (*dto.BookingResponse, error) {
	if s.lookupErr != nil {
		return nil, s.lookupErr
	}
	return &dto.BookingResponse{ID: id, Dataset: "today"}, nil
}

func (s *stubBoard) GetDatasetPage(ctx context.Context, dataset entity.Dataset, page int) (*dto.BookingPageResponse, error) {
	if s.pageErr != nil {
		return nil, s.pageErr
	}
	return &dto.BookingPageResponse{Dataset: string(dataset), Page: page, PageSize: 15, TotalPages: 1}, nil
}

type failingRenderer struct{}

func (failingRenderer) RenderPage(w io.Writer, v render.PageView) error {
	return errors.New("boom")
}

func quietLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

func homeState() *dto.BoardStateResponse {
	return &dto.BoardStateResponse{
		Status:    "ready",
		Screen:    render.ScreenHome,
		Dataset:   "today",
		Title:     entity.DatasetToday.Title(),
		Container: "<table></table>",
	}
}

func TestKioskHandlerPage(t *testing.T) {
	renderer, err := render.NewHTMLRenderer()
	require.NoError(t, err)
	h := NewKioskHandler(&stubBoard{state: homeState()}, renderer, 2*time.Second, quietLogger())

	rec := httptest.NewRecorder()
	h.Page(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "no-store", rec.Header().Get("Cache-Control"))
	assert.Contains(t, rec.Body.String(), `<div id="table-container"><table></table></div>`)
}

func TestKioskHandlerPageRenderFailure(t *testing.T) {
	h := NewKioskHandler(&stubBoard{state: homeState()}, failingRenderer{}, time.Second, quietLogger())

	rec := httptest.NewRecorder()
	h.Page(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestKioskHandlerRenderFailureLogsRequestID(t *testing.T) {
	log, hook := logtest.NewNullLogger()
	h := NewKioskHandler(&stubBoard{state: homeState()}, failingRenderer{}, time.Second, log)
	next := middleware.NewRequestLoggerMiddleware(log).Handle(http.HandlerFunc(h.Page))

	id := uuid.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(middleware.RequestIDHeader, id.String())
	rec := httptest.NewRecorder()
	next.ServeHTTP(rec, req)

	require.Equal(t, http.StatusInternalServerError, rec.Code)
	var failure *logrus.Entry
	for _, entry := range hook.AllEntries() {
		if entry.Level == logrus.ErrorLevel {
			failure = entry
		}
	}
	require.NotNil(t, failure)
	assert.Equal(t, id.String(), failure.Data["request_id"])
	assert.Contains(t, failure.Message, "Failed to render kiosk page")
}

func TestKioskHandlerTransitions(t *testing.T) {
	board := &stubBoard{state: homeState()}
	h := NewKioskHandler(board, failingRenderer{}, time.Second, quietLogger())

	post := func(fn http.HandlerFunc, body string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
		rec := httptest.NewRecorder()
		fn(rec, req)
		return rec
	}

	for _, fn := range []http.HandlerFunc{h.StartSearch, h.Home, h.Adventure} {
		rec := post(fn, "")
		assert.Equal(t, http.StatusSeeOther, rec.Code)
		assert.Equal(t, "/", rec.Header().Get("Location"))
	}
	assert.Equal(t, []string{"enter", "exit", "adventure"}, board.calls)

	rec := post(h.Search, "query=+AB12+")
	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, []string{" AB12 "}, board.searched)
}

func TestBoardHandlerErrors(t *testing.T) {
	tests := []struct {
		name   string
		board  *stubBoard
		target string
		route  string
		fn     func(h *BoardHandler) http.HandlerFunc
		status int
	}{
		{
			name:   "lookup not loaded",
			board:  &stubBoard{lookupErr: usecase.ErrBoardNotReady},
			route:  "/bookings/{id}",
			target: "/bookings/A1",
			fn:     func(h *BoardHandler) http.HandlerFunc { return h.LookupBooking },
			status: http.StatusServiceUnavailable,
		},
		{
			name:   "lookup miss",
			board:  &stubBoard{lookupErr: usecase.ErrBookingNotFound},
			route:  "/bookings/{id}",
			target: "/bookings/A1",
			fn:     func(h *BoardHandler) http.HandlerFunc { return h.LookupBooking },
			status: http.StatusNotFound,
		},
		{
			name:   "lookup unexpected",
			board:  &stubBoard{lookupErr: errors.New("boom")},
			route:  "/bookings/{id}",
			target: "/bookings/A1",
			fn:     func(h *BoardHandler) http.HandlerFunc { return h.LookupBooking },
			status: http.StatusInternalServerError,
		},
		{
			name:   "page not loaded",
			board:  &stubBoard{pageErr: usecase.ErrBoardNotReady},
			route:  "/datasets/{dataset}/bookings",
			target: "/datasets/today/bookings",
			fn:     func(h *BoardHandler) http.HandlerFunc { return h.GetDatasetPage },
			status: http.StatusServiceUnavailable,
		},
		{
			name:   "page ok",
			board:  &stubBoard{},
			route:  "/datasets/{dataset}/bookings",
			target: "/datasets/tomorrow/bookings?page=3",
			fn:     func(h *BoardHandler) http.HandlerFunc { return h.GetDatasetPage },
			status: http.StatusOK,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewBoardHandler(tt.board, validator.NewValidator())
			r := mux.NewRouter()
			r.HandleFunc(tt.route, tt.fn(h))

			rec := httptest.NewRecorder()
			r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, tt.target, nil))
			assert.Equal(t, tt.status, rec.Code)
		})
	}
}
