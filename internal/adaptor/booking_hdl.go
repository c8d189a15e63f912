package adaptor

import (
	"encoding/json"
	"net/http"

	"ferry-booking/internal/dto/request"
	"ferry-booking/internal/usecase"
	"ferry-booking/pkg/utils"

	"go.uber.org/zap"
)

// Fixed error bodies. The caller never sees the underlying cause, it is
// logged for operators only.
const (
	errCreatingBooking  = "Error creating booking"
	errFetchingBookings = "Error fetching bookings"
)

type BookingHandler struct {
	service usecase.BookingService
	log     *zap.Logger
}

func NewBookingHandler(service usecase.BookingService, log *zap.Logger) *BookingHandler {
	return &BookingHandler{
		service: service,
		log:     log.With(zap.String("handler", "booking")),
	}
}

// ListBookings handles GET /api/bookings. Responds with a plain JSON
// array of every stored booking.
func (h *BookingHandler) ListBookings(w http.ResponseWriter, r *http.Request) {
	bookings, err := h.service.ListBookings(r.Context())
	if err != nil {
		h.log.Error("API error", zap.Error(err))
		utils.ResponseText(w, http.StatusInternalServerError, errFetchingBookings)
		return
	}

	utils.ResponseJSON(w, http.StatusOK, bookings)
}

// CreateBooking handles POST /api/bookings. Any parse or store failure
// collapses to an opaque 500 with a fixed plain-text body.
func (h *BookingHandler) CreateBooking(w http.ResponseWriter, r *http.Request) {
	var req request.CreateBookingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.log.Error("API error", zap.Error(err))
		utils.ResponseText(w, http.StatusInternalServerError, errCreatingBooking)
		return
	}

	booking, err := h.service.CreateBooking(r.Context(), &req)
	if err != nil {
		h.log.Error("API error", zap.Error(err))
		utils.ResponseText(w, http.StatusInternalServerError, errCreatingBooking)
		return
	}

	utils.ResponseJSON(w, http.StatusOK, booking)
}
