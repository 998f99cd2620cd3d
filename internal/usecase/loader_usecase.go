package usecase

import (
	"context"
	"fmt"
	"time"

	"airport-transfer-board/internal/domain/entity"
	"airport-transfer-board/internal/domain/repository"

	"github.com/sirupsen/logrus"
	"github.com/sourcegraph/conc/pool"
)

type LoaderUsecase interface {
	// Load fetches both datasets concurrently. Either failure aborts the whole load.
	Load(ctx context.Context) (*entity.Datasets, error)
}

type loaderUsecase struct {
	log            *logrus.Logger
	todaySource    repository.BookingSource
	tomorrowSource repository.BookingSource
	timeout        time.Duration
}

func NewLoaderUsecase(
	log *logrus.Logger,
	todaySource repository.BookingSource,
	tomorrowSource repository.BookingSource,
	timeout time.Duration,
) LoaderUsecase {
	return &loaderUsecase{
		log:            log,
		todaySource:    todaySource,
		tomorrowSource: tomorrowSource,
		timeout:        timeout,
	}
}

func (u *loaderUsecase) Load(ctx context.Context) (*entity.Datasets, error) {
	if u.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, u.timeout)
		defer cancel()
	}

	var datasets entity.Datasets

	p := pool.New().WithContext(ctx).WithCancelOnError().WithFirstError()
	p.Go(func(ctx context.Context) error {
		records, err := u.todaySource.Fetch(ctx)
		if err != nil {
			return fmt.Errorf("load %s bookings from %s: %w", entity.DatasetToday, u.todaySource.Name(), err)
		}
		datasets.Today = records
		return nil
	})
	p.Go(func(ctx context.Context) error {
		records, err := u.tomorrowSource.Fetch(ctx)
		if err != nil {
			return fmt.Errorf("load %s bookings from %s: %w", entity.DatasetTomorrow, u.tomorrowSource.Name(), err)
		}
		datasets.Tomorrow = records
		return nil
	})

	if err := p.Wait(); err != nil {
		u.log.Warnf("Failed to load bookings: %+v", err)
		return nil, err
	}

	u.log.Infof("Loaded %d %s and %d %s bookings",
		len(datasets.Today), entity.DatasetToday, len(datasets.Tomorrow), entity.DatasetTomorrow)

	return &datasets, nil
}
