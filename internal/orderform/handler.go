package orderform

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/odyssey-erp/orderform/internal/observability"
	"github.com/odyssey-erp/orderform/internal/platform/httpx"
	"github.com/odyssey-erp/orderform/internal/shared"
	"github.com/odyssey-erp/orderform/internal/view"
)

const (
	pageTemplate = "pages/orderform.html"
	pageTitle    = "お申込みメール作成"

	// resetProductKey carries the product name across the reset redirect.
	resetProductKey = "orderform.reset_product"
)

// HandlerConfig carries the settings the handler reads on every request.
type HandlerConfig struct {
	// ProductName pre-fills the product field of a fresh form.
	ProductName string
	// Now supplies "today" for the default start date. Defaults to time.Now.
	Now func() time.Time
}

// Handler serves the order form page and its JSON API.
type Handler struct {
	logger      *slog.Logger
	templates   *view.Engine
	csrf        *shared.CSRFManager
	metrics     *observability.Metrics
	productName string
	now         func() time.Time
}

// NewHandler builds a Handler.
func NewHandler(logger *slog.Logger, templates *view.Engine, csrf *shared.CSRFManager, metrics *observability.Metrics, cfg HandlerConfig) *Handler {
	if logger == nil {
		logger = slog.Default()
	}
	now := cfg.Now
	if now == nil {
		now = time.Now
	}
	return &Handler{
		logger:      logger,
		templates:   templates,
		csrf:        csrf,
		metrics:     metrics,
		productName: cfg.ProductName,
		now:         now,
	}
}

// ShowForm renders a fresh form with today's defaults. Right after a reset
// the product name posted with the reset is kept instead.
func (h *Handler) ShowForm(w http.ResponseWriter, r *http.Request) {
	form, quote := Calculate(NewForm(h.now(), h.productName))
	if sess := shared.SessionFromRequest(r); sess != nil {
		if productName, ok := sess.Take(resetProductKey); ok {
			form, quote = Reset(Form{ProductName: productName}, h.now())
		}
	}
	h.render(w, r, http.StatusOK, pageData{Form: form, Quote: quote}, nil)
}

// GenerateMail fills the mail body from the posted form. A validation
// failure answers 422 with the notice and focus on the offending field.
func (h *Handler) GenerateMail(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}
	form := formFromRequest(r)

	next, err := GenerateMailBody(form)
	if err != nil {
		var verr *ValidationError
		if !errors.As(err, &verr) {
			h.logger.Error("generate mail body", slog.Any("error", err))
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
		h.metrics.ValidationFailed(verr.Field)
		shown, quote := Calculate(form)
		h.render(w, r, http.StatusUnprocessableEntity, pageData{Form: shown, Quote: quote, Focus: verr.Field},
			&shared.FlashMessage{Kind: shared.FlashError, Message: Notice(err)})
		return
	}

	_, quote := Calculate(form)
	h.recordGenerated(quote)
	h.render(w, r, http.StatusOK, pageData{Form: next, Quote: quote}, nil)
}

// ResetForm clears the customer inputs but keeps the posted product name,
// then redirects to the form with a success flash.
func (h *Handler) ResetForm(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}
	posted := formFromRequest(r)
	sess := shared.SessionFromRequest(r)
	if sess == nil {
		form, quote := Reset(posted, h.now())
		h.render(w, r, http.StatusOK, pageData{Form: form, Quote: quote}, nil)
		return
	}
	sess.Set(resetProductKey, posted.ProductName)
	sess.AddFlash(shared.FlashMessage{Kind: shared.FlashSuccess, Message: ResetNotice})
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// APIQuote recalculates prices and the billing month for the page script.
func (h *Handler) APIQuote(w http.ResponseWriter, r *http.Request) {
	var req QuoteRequest
	if err := httpx.DecodeJSON(w, r, &req); err != nil {
		httpx.RespondError(w, err)
		return
	}
	_, quote := Calculate(Form{Quantity: req.Quantity, StartDate: req.StartDate})
	if quote.QuantityCorrected {
		h.metrics.QuantityCorrected()
	}
	httpx.JSON(w, http.StatusOK, NewQuoteResponse(quote))
}

// APIMail is GenerateMail for JSON clients.
func (h *Handler) APIMail(w http.ResponseWriter, r *http.Request) {
	var form Form
	if err := httpx.DecodeJSON(w, r, &form); err != nil {
		httpx.RespondError(w, err)
		return
	}

	next, err := GenerateMailBody(form)
	if err != nil {
		var verr *ValidationError
		if errors.As(err, &verr) {
			h.metrics.ValidationFailed(verr.Field)
			httpx.RespondError(w, &httpx.FieldError{Field: verr.Field, Notice: Notice(err), Err: verr.Err})
			return
		}
		h.logger.Error("generate mail body", slog.Any("error", err))
		httpx.RespondError(w, err)
		return
	}

	_, quote := Calculate(form)
	h.recordGenerated(quote)
	httpx.JSON(w, http.StatusOK, MailResponse{MailBody: next.MailBody, Quote: NewQuoteResponse(quote)})
}

func (h *Handler) recordGenerated(quote Quote) {
	h.metrics.MailGenerated()
	if quote.QuantityCorrected {
		h.metrics.QuantityCorrected()
	}
}

func (h *Handler) render(w http.ResponseWriter, r *http.Request, status int, data pageData, flash *shared.FlashMessage) {
	sess := shared.SessionFromRequest(r)
	csrfToken, err := h.csrf.EnsureToken(sess)
	if err != nil {
		h.logger.Warn("ensure csrf token", slog.Any("error", err))
	}
	if flash == nil && sess != nil {
		flash = sess.PopFlash()
	}
	data.EmptyNotice = Notice(ErrNothingToCopy)
	data.CopiedNotice = CopiedNotice
	data.CopyFailedNotice = CopyFailedNotice
	data.QuoteFailedNotice = QuoteFailedNotice

	viewData := view.TemplateData{
		Title:       pageTitle,
		CSRFToken:   csrfToken,
		Flash:       flash,
		CurrentPath: r.URL.Path,
		Data:        data,
	}
	if err := h.templates.RenderStatus(w, status, pageTemplate, viewData); err != nil {
		h.logger.Error("render order form", slog.Any("error", err))
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
	}
}
