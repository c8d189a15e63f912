package adaptor

import (
	"html/template"
	"net/http"

	"ferry-booking/internal/dto/request"
	"ferry-booking/internal/usecase"
	"ferry-booking/internal/web"
	"ferry-booking/pkg/utils"

	"go.uber.org/zap"
)

// Status messages shown under the form. The fetch path in booking.js
// shows the same strings; keep them in sync.
const (
	msgSuccess = "Your reservation has been completed!"
	msgFailure = "Something went wrong, please try again."
)

type pageData struct {
	Message string
	Form    *request.BookingFormRequest
}

type PageHandler struct {
	service usecase.BookingService
	tmpl    *template.Template
	log     *zap.Logger
}

func NewPageHandler(service usecase.BookingService, log *zap.Logger) *PageHandler {
	return &PageHandler{
		service: service,
		tmpl:    template.Must(template.ParseFS(web.Assets, "templates/index.html")),
		log:     log.With(zap.String("handler", "page")),
	}
}

// ShowForm handles GET /
func (h *PageHandler) ShowForm(w http.ResponseWriter, r *http.Request) {
	h.render(w, &pageData{Form: &request.BookingFormRequest{}})
}

// SubmitForm handles POST /bookings, the no-JS fallback. On failure the
// submitted values are rendered back so the user can retry.
func (h *PageHandler) SubmitForm(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.log.Error("Failed to parse booking form", zap.Error(err))
		h.render(w, &pageData{Message: msgFailure, Form: &request.BookingFormRequest{}})
		return
	}

	req := &request.BookingFormRequest{
		Customer:    r.PostFormValue("customer"),
		TripType:    r.PostFormValue("trip_type"),
		Origin:      r.PostFormValue("origin"),
		Destination: r.PostFormValue("destination"),
		DepartDate:  r.PostFormValue("depart_date"),
		ReturnDate:  r.PostFormValue("return_date"),
		Seats:       utils.ParseInt(r.PostFormValue("seats"), 1),
	}

	if _, err := h.service.CreateFromForm(r.Context(), req); err != nil {
		h.log.Warn("Booking form submission failed", zap.Error(err))
		h.render(w, &pageData{Message: msgFailure, Form: req})
		return
	}

	// Reset fields on success, same as the client
	h.render(w, &pageData{Message: msgSuccess, Form: &request.BookingFormRequest{}})
}

func (h *PageHandler) render(w http.ResponseWriter, data *pageData) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := h.tmpl.Execute(w, data); err != nil {
		h.log.Error("Failed to render booking page", zap.Error(err))
	}
}
