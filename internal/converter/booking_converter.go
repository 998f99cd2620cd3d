package converter

import (
	"airport-transfer-board/internal/delivery/dto"
	"airport-transfer-board/internal/domain/entity"
)

// BookingToResponse converts a Booking entity to BookingResponse DTO
func BookingToResponse(booking *entity.Booking, dataset entity.Dataset) *dto.BookingResponse {
	if booking == nil {
		return nil
	}

	return &dto.BookingResponse{
		ID:        booking.ID,
		Flight:    booking.Flight,
		HotelName: booking.HotelName,
		Time:      booking.Time,
		Dataset:   string(dataset),
	}
}

// BookingsToResponses converts a slice of Booking entities to slice of BookingResponse DTOs
func BookingsToResponses(bookings []entity.Booking, dataset entity.Dataset) []dto.BookingResponse {
	responses := make([]dto.BookingResponse, len(bookings))
	for i := range bookings {
		responses[i] = *BookingToResponse(&bookings[i], dataset)
	}
	return responses
}
