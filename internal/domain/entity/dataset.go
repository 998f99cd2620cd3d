package entity

import "fmt"

// Dataset labels one of the two booking collections shown on the board
type Dataset string

const (
	DatasetToday    Dataset = "today"
	DatasetTomorrow Dataset = "tomorrow"
)

// Other returns the dataset the rotation swaps to
func (d Dataset) Other() Dataset {
	if d == DatasetToday {
		return DatasetTomorrow
	}
	return DatasetToday
}

// Title is the heading shown above the table while the dataset is active
func (d Dataset) Title() string {
	if d == DatasetToday {
		return "Today’s pick-up airport transfers"
	}
	return "Tomorrow’s pick-up airport transfers"
}

func (d Dataset) IsValid() bool {
	return d == DatasetToday || d == DatasetTomorrow
}

// ParseDataset converts a path or query value into a Dataset
func ParseDataset(s string) (Dataset, error) {
	d := Dataset(s)
	if !d.IsValid() {
		return "", fmt.Errorf("unknown dataset %q", s)
	}
	return d, nil
}

// Datasets holds both collections after a successful load. They are never mutated.
type Datasets struct {
	Today    []Booking
	Tomorrow []Booking
}

func (d *Datasets) Records(label Dataset) []Booking {
	if d == nil {
		return nil
	}
	if label == DatasetToday {
		return d.Today
	}
	return d.Tomorrow
}
