package wire

import (
	"io/fs"
	"net/http"

	"ferry-booking/internal/adaptor"
	"ferry-booking/internal/web"

	"github.com/go-chi/chi/v5"
)

func wirePage(r chi.Router, pageHandler *adaptor.PageHandler) {
	// GET / - booking form page
	r.Get("/", pageHandler.ShowForm)

	// POST /bookings - no-JS form submission
	r.Post("/bookings", pageHandler.SubmitForm)

	// Embedded assets for the form page
	static, _ := fs.Sub(web.Assets, "static")
	r.Handle("/static/*", http.StripPrefix("/static/", http.FileServer(http.FS(static))))
}
