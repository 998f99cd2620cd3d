package usecase

import (
	"context"
	"errors"
	"html/template"
	"sync"
	"time"

	"airport-transfer-board/internal/delivery/dto"
	"airport-transfer-board/internal/domain/entity"
	"airport-transfer-board/internal/render"
	"airport-transfer-board/internal/service"
	"airport-transfer-board/pkg/clock"
	"airport-transfer-board/pkg/metrics"

	"github.com/sirupsen/logrus"
)

var (
	ErrBoardNotReady      = errors.New("board data is not loaded")
	ErrBoardAlreadyLoaded = errors.New("board data was already loaded")
	ErrBookingNotFound    = errors.New("booking not found")
	ErrUnknownDataset     = errors.New("unknown dataset")
	ErrInvalidPage        = errors.New("page must be at least 1")
)

// Screen is one of the two mutually exclusive kiosk screens
type Screen string

const (
	ScreenHome   Screen = render.ScreenHome
	ScreenSearch Screen = render.ScreenSearch
)

// LoadStatus tracks the one-shot startup load
type LoadStatus string

const (
	LoadStatusLoading LoadStatus = "loading"
	LoadStatusReady   LoadStatus = "ready"
	LoadStatusFailed  LoadStatus = "failed"
)

// TableRenderer produces the content of the table area
type TableRenderer interface {
	RenderTable(v render.TableView) (template.HTML, error)
	ErrorMessage() template.HTML
}

type BoardConfig struct {
	PageSize          int
	RotationInterval  time.Duration
	InactivityTimeout time.Duration
	ContactMessage    string
	QRImageURL        string
}

// ViewState is the pagination position on the active dataset
type ViewState struct {
	Active      entity.Dataset
	CurrentPage int
	PageSize    int
	TotalPages  int
}

// BoardUsecase is the kiosk controller. Every transition, whether triggered by a
// request or by one of the two timers, runs under a single lock.
type BoardUsecase interface {
	Load(ctx context.Context) error
	State(ctx context.Context) *dto.BoardStateResponse
	EnterSearch(ctx context.Context)
	ExitSearch(ctx context.Context)
	Search(ctx context.Context, query string) *dto.BoardStateResponse
	Adventure(ctx context.Context)
	LookupBooking(ctx context.Context, id string) (*dto.BookingResponse, error)
	GetDatasetPage(ctx context.Context, dataset entity.Dataset, page int) (*dto.BookingPageResponse, error)
	Stop()
}

type boardUsecase struct {
	mu       sync.Mutex
	log      *logrus.Logger
	cfg      BoardConfig
	loader   LoaderUsecase
	renderer TableRenderer
	metrics  *metrics.Metrics
	clock    clock.Clock
	timers   *service.TimerRegistry

	status    LoadStatus
	datasets  *entity.Datasets
	view      ViewState
	screen    Screen
	container template.HTML
	search    searchState
	stopped   bool
}

func NewBoardUsecase(
	log *logrus.Logger,
	cfg BoardConfig,
	loader LoaderUsecase,
	renderer TableRenderer,
	m *metrics.Metrics,
	clk clock.Clock,
) BoardUsecase {
	b := &boardUsecase{
		log:      log,
		cfg:      cfg,
		loader:   loader,
		renderer: renderer,
		metrics:  m,
		clock:    clk,
		status:   LoadStatusLoading,
		view: ViewState{
			Active:      entity.DatasetToday,
			CurrentPage: 1,
			PageSize:    cfg.PageSize,
		},
		screen: ScreenHome,
	}
	b.timers = service.NewTimerRegistry(clk, &b.mu)
	return b
}

// Load runs the startup load. A failure is terminal: the table area keeps the
// error message for the rest of the process lifetime.
func (b *boardUsecase) Load(ctx context.Context) error {
	b.mu.Lock()
	if b.status != LoadStatusLoading {
		b.mu.Unlock()
		return ErrBoardAlreadyLoaded
	}
	b.mu.Unlock()

	start := b.clock.Now()
	datasets, err := b.loader.Load(ctx)
	b.metrics.LoadDuration.Observe(b.clock.Now().Sub(start).Seconds())

	b.mu.Lock()
	defer b.mu.Unlock()

	if err != nil {
		b.fail(err)
		return err
	}

	b.datasets = datasets
	b.status = LoadStatusReady
	b.view.Active = entity.DatasetToday
	b.view.CurrentPage = 1
	b.view.TotalPages = TotalPages(len(datasets.Today), b.view.PageSize)
	b.log.Infof("Board ready, showing %q", b.view.Active.Title())

	// a user who opened search while loading sees the table when returning home
	if b.screen == ScreenHome {
		b.render()
	}
	return nil
}

func (b *boardUsecase) State(ctx context.Context) *dto.BoardStateResponse {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.snapshot()
}

func (b *boardUsecase) Stop() {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.stopped = true
	b.timers.CancelAll()
	b.log.Info("Board timers stopped")
}

// fail switches to the terminal error state. Caller holds mu.
func (b *boardUsecase) fail(err error) {
	b.status = LoadStatusFailed
	b.container = b.renderer.ErrorMessage()
	b.timers.Cancel(service.TimerRotation)
	b.metrics.LoadFailures.Inc()
	b.log.Errorf("Error loading data: %+v", err)
}

// render rebuilds the table area wholesale and re-arms rotation. Caller holds mu.
func (b *boardUsecase) render() {
	if b.status != LoadStatusReady || b.stopped {
		return
	}

	b.timers.Cancel(service.TimerRotation)

	records := b.datasets.Records(b.view.Active)
	b.view.TotalPages = TotalPages(len(records), b.view.PageSize)

	html, err := b.renderer.RenderTable(render.TableView{
		Rows:        PageSlice(records, b.view.CurrentPage, b.view.PageSize),
		CurrentPage: b.view.CurrentPage,
		TotalPages:  b.view.TotalPages,
	})
	if err != nil {
		b.log.Errorf("Failed to render %s page %d: %+v", b.view.Active, b.view.CurrentPage, err)
	} else {
		b.container = html
	}

	if b.view.TotalPages > 1 {
		b.timers.Schedule(service.TimerRotation, b.cfg.RotationInterval, b.advancePage)
	}
}

// advancePage is the rotation tick. Caller holds mu.
func (b *boardUsecase) advancePage() {
	b.metrics.RotationTicks.Inc()

	b.view.CurrentPage++
	if b.view.CurrentPage > b.view.TotalPages {
		b.switchDataset()
	}
	b.log.Debugf("Rotating to %s page %d", b.view.Active, b.view.CurrentPage)

	b.render()
}

// switchDataset flips today/tomorrow and restarts at the first page. Caller holds mu.
func (b *boardUsecase) switchDataset() {
	b.view.Active = b.view.Active.Other()
	b.view.CurrentPage = 1
	b.metrics.DatasetSwitches.Inc()
	b.log.Infof("Switched board to %q", b.view.Active.Title())
}

func (b *boardUsecase) snapshot() *dto.BoardStateResponse {
	state := &dto.BoardStateResponse{
		Status:           string(b.status),
		Screen:           string(b.screen),
		Dataset:          string(b.view.Active),
		Title:            b.view.Active.Title(),
		CurrentPage:      b.view.CurrentPage,
		TotalPages:       b.view.TotalPages,
		PageSize:         b.view.PageSize,
		RotationActive:   b.timers.IsArmed(service.TimerRotation),
		InactivityActive: b.timers.IsArmed(service.TimerInactivity),
		Container:        b.container,
	}
	if b.screen == ScreenSearch {
		state.Search = b.search.toResponse(b.cfg)
	}
	return state
}
