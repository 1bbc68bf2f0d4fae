package orderform

import "github.com/go-chi/chi/v5"

// QuotePath is the recalculation endpoint polled by the page script.
const QuotePath = "/api/quote"

// MountRoutes registers the page and JSON endpoints.
func (h *Handler) MountRoutes(r chi.Router) {
	r.Get("/", h.ShowForm)
	r.Post("/mail", h.GenerateMail)
	r.Post("/reset", h.ResetForm)
	r.Post(QuotePath, h.APIQuote)
	r.Post("/api/mail", h.APIMail)
}
