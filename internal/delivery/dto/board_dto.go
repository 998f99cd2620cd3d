package dto

import "html/template"

// Response DTOs

type BookingResponse struct {
	ID        string `json:"id"`
	Flight    string `json:"flight"`
	HotelName string `json:"hotel_name"`
	Time      string `json:"time"`
	Dataset   string `json:"dataset"`
}

type BookingPageResponse struct {
	Dataset    string            `json:"dataset"`
	Bookings   []BookingResponse `json:"bookings"`
	Page       int               `json:"page"`
	PageSize   int               `json:"page_size"`
	TotalPages int               `json:"total_pages"`
	Total      int               `json:"total"`
}

type SearchStateResponse struct {
	Query          string           `json:"query"`
	LegendVisible  bool             `json:"legend_visible"`
	ResultVisible  bool             `json:"result_visible"`
	Outcome        string           `json:"outcome,omitempty"`
	Booking        *BookingResponse `json:"booking,omitempty"`
	ContactMessage string           `json:"contact_message,omitempty"`
	QRImageURL     string           `json:"qr_image_url,omitempty"`
}

// BoardStateResponse is a point-in-time copy of the board
type BoardStateResponse struct {
	Status           string               `json:"status"`
	Screen           string               `json:"screen"`
	Dataset          string               `json:"dataset"`
	Title            string               `json:"title"`
	CurrentPage      int                  `json:"current_page"`
	TotalPages       int                  `json:"total_pages"`
	PageSize         int                  `json:"page_size"`
	RotationActive   bool                 `json:"rotation_active"`
	InactivityActive bool                 `json:"inactivity_active"`
	Search           *SearchStateResponse `json:"search,omitempty"`

	// Container is the rendered table area, served as HTML only
	Container template.HTML `json:"-"`
}

// Request DTOs

type LookupBookingRequest struct {
	ID string `validate:"required,max=64"`
}

type DatasetPageRequest struct {
	Dataset string `validate:"required,oneof=today tomorrow"`
	Page    int    `validate:"gte=1"`
}
