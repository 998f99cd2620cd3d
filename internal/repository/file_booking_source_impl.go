package repository

import (
	"context"
	"errors"
	"fmt"
	"io/fs"

	"airport-transfer-board/internal/domain/entity"
	domainRepo "airport-transfer-board/internal/domain/repository"

	"github.com/spf13/afero"
)

type fileBookingSource struct {
	fs   afero.Fs
	path string
}

func NewFileBookingSource(fsys afero.Fs, path string) domainRepo.BookingSource {
	return &fileBookingSource{
		fs:   fsys,
		path: path,
	}
}

func (s *fileBookingSource) Name() string {
	return s.path
}

func (s *fileBookingSource) Fetch(ctx context.Context) ([]entity.Booking, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	f, err := s.fs.Open(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("open %s: %w", s.path, ErrSourceNotFound)
		}
		return nil, fmt.Errorf("open %s: %w", s.path, err)
	}
	defer f.Close()

	bookings, err := decodeTransferDocument(f)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", s.path, err)
	}
	return bookings, nil
}
