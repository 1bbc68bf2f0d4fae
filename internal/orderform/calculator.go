package orderform

import (
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// taxMultiplier applies the 10% consumption tax. Kept in decimal so that
// ceiling rounding never sees binary float residue (720000 × 1.1 is not
// 792000 in float64).
var taxMultiplier = decimal.RequireFromString("1.10")

var amountPrinter = message.NewPrinter(language.Japanese)

// DefaultStartDate returns the first day of now's month when today is the
// 1st, otherwise the first day of the following month.
func DefaultStartDate(now time.Time) time.Time {
	year, month, day := now.Date()
	if day == 1 {
		return time.Date(year, month, 1, 0, 0, 0, 0, now.Location())
	}
	// time.Date normalises month 13 to January of the next year.
	return time.Date(year, month+1, 1, 0, 0, 0, 0, now.Location())
}

// NewForm returns the initial form state for now.
func NewForm(now time.Time, productName string) Form {
	return Form{
		ProductName: productName,
		Quantity:    strconv.Itoa(DefaultQuantity),
		StartDate:   DefaultStartDate(now).Format(DateLayout),
	}
}

// ParseQuantity reads the leading integer of raw. Inputs without digits,
// out of 32-bit range or below 1 yield DefaultQuantity and corrected=true.
func ParseQuantity(raw string) (quantity int, corrected bool) {
	s := strings.TrimSpace(raw)
	end := 0
	if end < len(s) && (s[end] == '+' || s[end] == '-') {
		end++
	}
	digits := end
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == digits {
		return DefaultQuantity, true
	}
	n, err := strconv.ParseInt(s[:end], 10, 32)
	if err != nil || n < 1 {
		return DefaultQuantity, true
	}
	return int(n), false
}

// PriceIncludingTax adds consumption tax to amount and rounds up to the yen.
func PriceIncludingTax(amount int64) int64 {
	return decimal.NewFromInt(amount).Mul(taxMultiplier).Ceil().IntPart()
}

// BillingMonth derives the "YYYY/MM" label from the literal text of an ISO
// date. It does not reparse the calendar value.
func BillingMonth(startDate string) string {
	if startDate == "" {
		return ""
	}
	parts := strings.Split(startDate, "-")
	if len(parts) < 2 {
		return ""
	}
	return parts[0] + "/" + parts[1]
}

// Calculate recomputes the quote for f. The returned form carries the
// normalised quantity text.
func Calculate(f Form) (Form, Quote) {
	quantity, corrected := ParseQuantity(f.Quantity)
	f.Quantity = strconv.Itoa(quantity)

	excluding := int64(quantity) * UnitPriceExcludingTax
	return f, Quote{
		Quantity:          quantity,
		QuantityCorrected: corrected,
		PriceExcludingTax: excluding,
		PriceIncludingTax: PriceIncludingTax(excluding),
		BillingMonth:      BillingMonth(f.StartDate),
	}
}

// Reset clears the customer inputs and the generated body, restores the
// default quantity and start date for now, and recalculates. The product
// name is left as is.
func Reset(f Form, now time.Time) (Form, Quote) {
	return Calculate(NewForm(now, f.ProductName))
}

// FormatAmount groups digits the ja-JP way, e.g. 720000 -> "720,000".
func FormatAmount(amount int64) string {
	return amountPrinter.Sprintf("%d", amount)
}

// FormatYen is FormatAmount followed by the yen suffix.
func FormatYen(amount int64) string {
	return FormatAmount(amount) + CurrencySuffix
}
