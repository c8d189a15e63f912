package wire_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"ferry-booking/internal/data/entity"
	"ferry-booking/internal/data/repository"
	"ferry-booking/internal/dto/response"
	"ferry-booking/internal/wire"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeBookingRepo struct {
	bookings []*entity.Booking
}

func (f *fakeBookingRepo) Create(_ context.Context, booking *entity.Booking) error {
	booking.ID = uuid.New()
	booking.CreatedAt = time.Now()
	stored := *booking
	f.bookings = append(f.bookings, &stored)
	return nil
}

func (f *fakeBookingRepo) FindAll(_ context.Context) ([]*entity.Booking, error) {
	return f.bookings, nil
}

func newTestServer(t *testing.T) (*httptest.Server, *fakeBookingRepo) {
	t.Helper()

	repo := &fakeBookingRepo{}
	app := wire.Wiring(&repository.Repository{Booking: repo}, zap.NewNop())

	server := httptest.NewServer(app.Router)
	t.Cleanup(server.Close)

	return server, repo
}

func TestRouting_Health(t *testing.T) {
	server, _ := newTestServer(t)

	res, err := http.Get(server.URL + "/health")
	require.NoError(t, err)
	defer res.Body.Close()

	assert.Equal(t, http.StatusOK, res.StatusCode)
}

func TestRouting_FormPage(t *testing.T) {
	server, _ := newTestServer(t)

	res, err := http.Get(server.URL + "/")
	require.NoError(t, err)
	defer res.Body.Close()

	assert.Equal(t, http.StatusOK, res.StatusCode)
	assert.Contains(t, res.Header.Get("Content-Type"), "text/html")
}

func TestRouting_StaticAssets(t *testing.T) {
	server, _ := newTestServer(t)

	for _, path := range []string{"/static/booking.js", "/static/style.css"} {
		res, err := http.Get(server.URL + path)
		require.NoError(t, err)
		res.Body.Close()
		assert.Equal(t, http.StatusOK, res.StatusCode, path)
	}
}

func TestRouting_CreateThenList(t *testing.T) {
	server, repo := newTestServer(t)

	body := `{"customer":"Ana","trip":"White Tower → Perea (01/06/2024)","seats":2}`
	res, err := http.Post(server.URL+"/api/bookings", "application/json", strings.NewReader(body))
	require.NoError(t, err)
	defer res.Body.Close()

	require.Equal(t, http.StatusOK, res.StatusCode)
	require.Len(t, repo.bookings, 1)

	res, err = http.Get(server.URL + "/api/bookings")
	require.NoError(t, err)
	defer res.Body.Close()

	require.Equal(t, http.StatusOK, res.StatusCode)

	var listed []response.BookingResponse
	require.NoError(t, json.NewDecoder(res.Body).Decode(&listed))
	require.Len(t, listed, 1)
	assert.Equal(t, "Ana", listed[0].Customer)
	assert.Equal(t, 2, listed[0].Seats)
}
