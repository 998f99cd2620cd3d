package entity

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Booking represents one airport transfer reservation as supplied by a data source
type Booking struct {
	ID        string `json:"id"`
	Flight    string `json:"Flight"`
	HotelName string `json:"HotelName"`
	Time      string `json:"Time"`
}

// MatchesID reports whether the booking id equals an already lower-cased query
func (b *Booking) MatchesID(query string) bool {
	return strings.ToLower(b.ID) == query
}

// UnmarshalJSON accepts any scalar for the display fields, since upstream exports
// are not consistent about quoting numeric booking and flight numbers.
func (b *Booking) UnmarshalJSON(data []byte) error {
	var raw struct {
		ID        json.RawMessage `json:"id"`
		Flight    json.RawMessage `json:"Flight"`
		HotelName json.RawMessage `json:"HotelName"`
		Time      json.RawMessage `json:"Time"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	fields := []struct {
		name string
		src  json.RawMessage
		dst  *string
	}{
		{"id", raw.ID, &b.ID},
		{"Flight", raw.Flight, &b.Flight},
		{"HotelName", raw.HotelName, &b.HotelName},
		{"Time", raw.Time, &b.Time},
	}
	for _, f := range fields {
		text, err := scalarText(f.src)
		if err != nil {
			return fmt.Errorf("booking field %s: %w", f.name, err)
		}
		*f.dst = text
	}
	return nil
}

func scalarText(src json.RawMessage) (string, error) {
	if len(src) == 0 {
		return "", nil
	}

	var v interface{}
	if err := json.Unmarshal(src, &v); err != nil {
		return "", err
	}

	switch val := v.(type) {
	case nil:
		return "", nil
	case string:
		return val, nil
	case bool:
		return fmt.Sprint(val), nil
	case float64:
		// keep the literal so 007 or 1e3 are not normalized
		return string(src), nil
	default:
		return "", fmt.Errorf("unsupported value %s", string(src))
	}
}
