package response

import (
	"time"

	"ferry-booking/internal/data/entity"
)

type BookingResponse struct {
	ID        string    `json:"id"`
	Customer  string    `json:"customer"`
	Trip      string    `json:"trip"`
	Seats     int       `json:"seats"`
	CreatedAt time.Time `json:"created_at"`
}

// Helper converters
func BookingToResponse(booking *entity.Booking) *BookingResponse {
	return &BookingResponse{
		ID:        booking.ID.String(),
		Customer:  booking.Customer,
		Trip:      booking.Trip,
		Seats:     booking.Seats,
		CreatedAt: booking.CreatedAt,
	}
}

func BookingsToResponse(bookings []*entity.Booking) []*BookingResponse {
	out := make([]*BookingResponse, 0, len(bookings))
	for _, booking := range bookings {
		out = append(out, BookingToResponse(booking))
	}
	return out
}
