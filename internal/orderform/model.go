package orderform

import "time"

// Pricing and formatting constants for the annual membership order.
const (
	// UnitPriceExcludingTax is the yen price of one 口 before consumption tax.
	UnitPriceExcludingTax int64 = 240000
	// HeadcountPerUnit is the number of members covered by one 口.
	HeadcountPerUnit = 5
	// DefaultQuantity is used whenever the quantity input is unusable.
	DefaultQuantity = 1

	// CurrencySuffix is appended to displayed prices.
	CurrencySuffix = "円"

	// DateLayout is the wire format of the start date input.
	DateLayout = "2006-01-02"
	// DisplayDateLayout is the format used inside the mail body.
	DisplayDateLayout = "2006/01/02"
)

// Field names of the page inputs, also used to return focus after a failed
// validation.
const (
	FieldCompanyName = "companyName"
	FieldProductName = "productName"
	FieldQuantity    = "quantity"
	FieldStartDate   = "startDate"
)

// Form is the complete state of one order form. Every operation takes a Form
// and returns the updated copy; nothing is kept between calls.
type Form struct {
	CompanyName string `json:"company_name"`
	ProductName string `json:"product_name"`
	Quantity    string `json:"quantity"`
	StartDate   string `json:"start_date"`
	MailBody    string `json:"mail_body,omitempty"`
}

// Quote holds the values derived from a form's quantity and start date.
type Quote struct {
	Quantity          int    `json:"quantity"`
	QuantityCorrected bool   `json:"quantity_corrected"`
	PriceExcludingTax int64  `json:"price_excluding_tax"`
	PriceIncludingTax int64  `json:"price_including_tax"`
	BillingMonth      string `json:"billing_month"`
}

// PriceExcludingTaxLabel renders the pre-tax price for display, e.g. "720,000円".
func (q Quote) PriceExcludingTaxLabel() string {
	return FormatYen(q.PriceExcludingTax)
}

// PriceIncludingTaxLabel renders the tax-inclusive price for display.
func (q Quote) PriceIncludingTaxLabel() string {
	return FormatYen(q.PriceIncludingTax)
}

// Headcount is the number of members the quoted quantity covers.
func (q Quote) Headcount() int {
	return q.Quantity * HeadcountPerUnit
}

// SubscriptionPeriod is the inclusive one-year term starting at Start.
type SubscriptionPeriod struct {
	Start time.Time
	End   time.Time
}

// String formats the period as "2025/04/01 ～ 2026/03/31".
func (p SubscriptionPeriod) String() string {
	return p.Start.Format(DisplayDateLayout) + " ～ " + p.End.Format(DisplayDateLayout)
}
