package adaptor_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"ferry-booking/internal/adaptor"
	"ferry-booking/internal/data/entity"
	"ferry-booking/internal/dto/response"
	"ferry-booking/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeBookingRepo struct {
	bookings  []*entity.Booking
	createErr error
	findErr   error
}

func (f *fakeBookingRepo) Create(_ context.Context, booking *entity.Booking) error {
	if f.createErr != nil {
		return f.createErr
	}
	booking.ID = uuid.New()
	booking.CreatedAt = time.Now()
	stored := *booking
	f.bookings = append(f.bookings, &stored)
	return nil
}

func (f *fakeBookingRepo) FindAll(_ context.Context) ([]*entity.Booking, error) {
	if f.findErr != nil {
		return nil, f.findErr
	}
	return f.bookings, nil
}

func newBookingHandler(repo *fakeBookingRepo) *adaptor.BookingHandler {
	service := usecase.NewBookingService(repo, zap.NewNop())
	return adaptor.NewBookingHandler(service, zap.NewNop())
}

func TestListBookings_EmptyArray(t *testing.T) {
	handler := newBookingHandler(&fakeBookingRepo{})

	rec := httptest.NewRecorder()
	handler.ListBookings(rec, httptest.NewRequest(http.MethodGet, "/api/bookings", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.JSONEq(t, "[]", rec.Body.String())
}

func TestCreateBooking_ThenList(t *testing.T) {
	repo := &fakeBookingRepo{}
	handler := newBookingHandler(repo)

	body := `{"customer":"Ana","trip":"White Tower → Perea (01/06/2024)","seats":2}`
	rec := httptest.NewRecorder()
	handler.CreateBooking(rec, httptest.NewRequest(http.MethodPost, "/api/bookings", strings.NewReader(body)))

	require.Equal(t, http.StatusOK, rec.Code)

	var created response.BookingResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, "Ana", created.Customer)
	assert.Equal(t, "White Tower → Perea (01/06/2024)", created.Trip)
	assert.Equal(t, 2, created.Seats)

	rec = httptest.NewRecorder()
	handler.ListBookings(rec, httptest.NewRequest(http.MethodGet, "/api/bookings", nil))

	require.Equal(t, http.StatusOK, rec.Code)

	var listed []response.BookingResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &listed))
	require.Len(t, listed, 1)
	assert.Equal(t, created.ID, listed[0].ID)
	assert.Equal(t, "Ana", listed[0].Customer)
}

func TestCreateBooking_MalformedJSON(t *testing.T) {
	repo := &fakeBookingRepo{}
	handler := newBookingHandler(repo)

	rec := httptest.NewRecorder()
	handler.CreateBooking(rec, httptest.NewRequest(http.MethodPost, "/api/bookings", strings.NewReader(`{"customer":`)))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "Error creating booking", rec.Body.String())
	assert.Empty(t, repo.bookings, "malformed body must not create a record")
}

func TestCreateBooking_StoreError(t *testing.T) {
	handler := newBookingHandler(&fakeBookingRepo{createErr: errors.New("null value in column \"customer\"")})

	rec := httptest.NewRecorder()
	handler.CreateBooking(rec, httptest.NewRequest(http.MethodPost, "/api/bookings", strings.NewReader(`{"seats":1}`)))

	// cause is logged only, caller gets the fixed body
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "Error creating booking", rec.Body.String())
}

func TestCreateBooking_DuplicateSubmissions(t *testing.T) {
	repo := &fakeBookingRepo{}
	handler := newBookingHandler(repo)

	body := `{"customer":"Ana","trip":"White Tower → Perea (01/06/2024)","seats":2}`
	for i := 0; i < 2; i++ {
		rec := httptest.NewRecorder()
		handler.CreateBooking(rec, httptest.NewRequest(http.MethodPost, "/api/bookings", strings.NewReader(body)))
		require.Equal(t, http.StatusOK, rec.Code)
	}

	require.Len(t, repo.bookings, 2)
	assert.NotEqual(t, repo.bookings[0].ID, repo.bookings[1].ID)
}

func TestListBookings_StoreError(t *testing.T) {
	handler := newBookingHandler(&fakeBookingRepo{findErr: errors.New("connection refused")})

	rec := httptest.NewRecorder()
	handler.ListBookings(rec, httptest.NewRequest(http.MethodGet, "/api/bookings", nil))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "Error fetching bookings", rec.Body.String())
}
