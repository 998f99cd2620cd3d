package repository

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"airport-transfer-board/internal/domain/entity"
)

var (
	// ErrMissingTemplate is returned when a document has no "template" object
	ErrMissingTemplate = errors.New("document has no template")
	// ErrSourceNotFound is returned when the source holds no document at all
	ErrSourceNotFound = errors.New("booking source not found")
)

// decodeTransferDocument extracts template.content, defaulting to an empty list
func decodeTransferDocument(r io.Reader) ([]entity.Booking, error) {
	var doc entity.TransferDocument
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("decode document: %w", err)
	}
	if doc.Template == nil {
		return nil, ErrMissingTemplate
	}
	if doc.Template.Content == nil {
		return []entity.Booking{}, nil
	}
	return doc.Template.Content, nil
}
