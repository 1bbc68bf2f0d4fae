package orderform

import "net/http"

// formMailBody posts the generated body back; the other page fields share
// their names with the Field constants.
const formMailBody = "mailBody"

// QuoteRequest is the body of POST /api/quote.
type QuoteRequest struct {
	Quantity  string `json:"quantity"`
	StartDate string `json:"start_date"`
}

// QuoteResponse is a Quote with display labels attached.
type QuoteResponse struct {
	Quantity               int    `json:"quantity"`
	QuantityCorrected      bool   `json:"quantity_corrected"`
	PriceExcludingTax      int64  `json:"price_excluding_tax"`
	PriceIncludingTax      int64  `json:"price_including_tax"`
	PriceExcludingTaxLabel string `json:"price_excluding_tax_label"`
	PriceIncludingTaxLabel string `json:"price_including_tax_label"`
	BillingMonth           string `json:"billing_month"`
}

// MailResponse is the body returned by POST /api/mail.
type MailResponse struct {
	MailBody string        `json:"mail_body"`
	Quote    QuoteResponse `json:"quote"`
}

// NewQuoteResponse renders q for the JSON API.
func NewQuoteResponse(q Quote) QuoteResponse {
	return QuoteResponse{
		Quantity:               q.Quantity,
		QuantityCorrected:      q.QuantityCorrected,
		PriceExcludingTax:      q.PriceExcludingTax,
		PriceIncludingTax:      q.PriceIncludingTax,
		PriceExcludingTaxLabel: q.PriceExcludingTaxLabel(),
		PriceIncludingTaxLabel: q.PriceIncludingTaxLabel(),
		BillingMonth:           q.BillingMonth,
	}
}

// formFromRequest reads the posted page fields. The request form must be
// parsed already.
func formFromRequest(r *http.Request) Form {
	return Form{
		CompanyName: r.PostFormValue(FieldCompanyName),
		ProductName: r.PostFormValue(FieldProductName),
		Quantity:    r.PostFormValue(FieldQuantity),
		StartDate:   r.PostFormValue(FieldStartDate),
		MailBody:    r.PostFormValue(formMailBody),
	}
}

// pageData feeds pages/orderform.html.
type pageData struct {
	Form              Form
	Quote             Quote
	Focus             string
	EmptyNotice       string
	CopiedNotice      string
	CopyFailedNotice  string
	QuoteFailedNotice string
}
