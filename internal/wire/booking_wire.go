package wire

import (
	"ferry-booking/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireBooking(r chi.Router, bookingHandler *adaptor.BookingHandler) {
	// GET /api/bookings - every stored booking, store order
	r.Get("/api/bookings", bookingHandler.ListBookings)

	// POST /api/bookings - insert the JSON body as a new booking
	r.Post("/api/bookings", bookingHandler.CreateBooking)
}
