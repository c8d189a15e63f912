package usecase

import (
	"context"
	"fmt"
	"time"

	"ferry-booking/internal/data/entity"
	"ferry-booking/internal/data/repository"
	"ferry-booking/internal/dto/request"
	"ferry-booking/internal/dto/response"
	"ferry-booking/pkg/utils"

	"go.uber.org/zap"
)

const (
	TripTypeOneWay    = "one-way"
	TripTypeRoundTrip = "round-trip"
)

type BookingService interface {
	// API endpoints
	ListBookings(ctx context.Context) ([]*response.BookingResponse, error)
	CreateBooking(ctx context.Context, req *request.CreateBookingRequest) (*response.BookingResponse, error)

	// No-JS form fallback
	CreateFromForm(ctx context.Context, req *request.BookingFormRequest) (*response.BookingResponse, error)
}

type bookingService struct {
	repo repository.BookingRepository
	log  *zap.Logger
}

func NewBookingService(repo repository.BookingRepository, log *zap.Logger) BookingService {
	return &bookingService{
		repo: repo,
		log:  log.With(zap.String("service", "booking")),
	}
}

// ListBookings returns every stored booking in store order.
func (s *bookingService) ListBookings(ctx context.Context) ([]*response.BookingResponse, error) {
	bookings, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list bookings: %w", err)
	}

	return response.BookingsToResponse(bookings), nil
}

// CreateBooking inserts the request as-is. Field validation is left to
// the store's schema constraints; whatever the insert rejects comes
// back as an error.
func (s *bookingService) CreateBooking(ctx context.Context, req *request.CreateBookingRequest) (*response.BookingResponse, error) {
	booking := &entity.Booking{
		Customer: req.Customer,
		Trip:     req.Trip,
		Seats:    req.Seats,
	}

	if err := s.repo.Create(ctx, booking); err != nil {
		return nil, err
	}

	s.log.Info("Booking created",
		zap.String("booking_id", booking.ID.String()),
		zap.String("trip", booking.Trip),
		zap.Int("seats", booking.Seats),
	)

	return response.BookingToResponse(booking), nil
}

// CreateFromForm validates a structured form submission, builds the trip
// string the same way the client does, and creates the booking.
func (s *bookingService) CreateFromForm(ctx context.Context, req *request.BookingFormRequest) (*response.BookingResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Booking form validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	// Dates compare in the server's zone; parsing in UTC would push a
	// same-day submission into yesterday on servers west of UTC.
	now := time.Now()
	depart, err := time.ParseInLocation(FormDateLayout, req.DepartDate, now.Location())
	if err != nil {
		return nil, fmt.Errorf("invalid departure date %q: %w", req.DepartDate, err)
	}

	// The date picker only offers today-or-later; hold the fallback path
	// to the same floor.
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	if depart.Before(today) {
		return nil, fmt.Errorf("invalid departure date %s: date is in the past", req.DepartDate)
	}

	var ret *time.Time
	if req.TripType == TripTypeRoundTrip {
		parsed, err := time.ParseInLocation(FormDateLayout, req.ReturnDate, now.Location())
		if err != nil {
			return nil, fmt.Errorf("invalid return date %q: %w", req.ReturnDate, err)
		}
		if parsed.Before(depart) {
			return nil, fmt.Errorf("invalid return date %s: before departure", req.ReturnDate)
		}
		ret = &parsed
	}

	return s.CreateBooking(ctx, &request.CreateBookingRequest{
		Customer: req.Customer,
		Trip:     FormatTrip(req.Origin, req.Destination, depart, ret),
		Seats:    req.Seats,
	})
}
