package orderform

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDefaultStartDate(t *testing.T) {
	tokyo := time.FixedZone("JST", 9*60*60)
	cases := []struct {
		name string
		now  time.Time
		want string
	}{
		{name: "first of month stays", now: time.Date(2025, 4, 1, 23, 59, 0, 0, tokyo), want: "2025-04-01"},
		{name: "mid month moves on", now: time.Date(2025, 4, 15, 8, 0, 0, 0, tokyo), want: "2025-05-01"},
		{name: "last day moves on", now: time.Date(2025, 1, 31, 8, 0, 0, 0, tokyo), want: "2025-02-01"},
		{name: "december rolls over", now: time.Date(2025, 12, 2, 8, 0, 0, 0, tokyo), want: "2026-01-01"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := DefaultStartDate(tc.now)
			assert.Equal(t, tc.want, got.Format(DateLayout))
			assert.Equal(t, tokyo, got.Location())
		})
	}
}

func TestNewForm(t *testing.T) {
	f := NewForm(time.Date(2025, 3, 15, 0, 0, 0, 0, time.UTC), "Gold Plan")
	assert.Equal(t, Form{ProductName: "Gold Plan", Quantity: "1", StartDate: "2025-04-01"}, f)
}

func TestParseQuantity(t *testing.T) {
	cases := map[string]struct {
		quantity  int
		corrected bool
	}{
		"3":           {3, false},
		" 12 ":        {12, false},
		"+4":          {4, false},
		"3abc":        {3, false},
		"3.7":         {3, false},
		"007":         {7, false},
		"":            {1, true},
		"abc":         {1, true},
		"0":           {1, true},
		"-2":          {1, true},
		"-":           {1, true},
		"99999999999": {1, true},
		"2147483647":  {2147483647, false},
	}
	for raw, want := range cases {
		q, corrected := ParseQuantity(raw)
		assert.Equal(t, want.quantity, q, "quantity for %q", raw)
		assert.Equal(t, want.corrected, corrected, "corrected for %q", raw)
	}
}

func TestPriceIncludingTaxRoundsUpExactly(t *testing.T) {
	for q := int64(1); q <= 100; q++ {
		excl := q * UnitPriceExcludingTax
		// 240000 × 1.1 is a whole number of yen, so no rounding may happen.
		assert.Equal(t, excl+excl/10, PriceIncludingTax(excl), "q=%d", q)
	}
	assert.Equal(t, int64(792000), PriceIncludingTax(720000))
	assert.Equal(t, int64(2), PriceIncludingTax(1))
	assert.Equal(t, int64(11), PriceIncludingTax(10))
}

func TestBillingMonth(t *testing.T) {
	assert.Equal(t, "2025/04", BillingMonth("2025-04-01"))
	assert.Equal(t, "2024/12", BillingMonth("2024-12-31"))
	assert.Equal(t, "2025/4", BillingMonth("2025-4"))
	assert.Equal(t, "", BillingMonth(""))
	assert.Equal(t, "", BillingMonth("20250401"))
}

func TestCalculate(t *testing.T) {
	f, q := Calculate(Form{Quantity: "3", StartDate: "2025-04-01"})
	assert.Equal(t, "3", f.Quantity)
	assert.Equal(t, Quote{
		Quantity:          3,
		PriceExcludingTax: 720000,
		PriceIncludingTax: 792000,
		BillingMonth:      "2025/04",
	}, q)
	assert.Equal(t, "720,000円", q.PriceExcludingTaxLabel())
	assert.Equal(t, "792,000円", q.PriceIncludingTaxLabel())
	assert.Equal(t, 15, q.Headcount())
}

func TestCalculateNormalisesInvalidQuantity(t *testing.T) {
	for _, raw := range []string{"", "abc", "0", "-5"} {
		f, q := Calculate(Form{Quantity: raw})
		assert.Equal(t, "1", f.Quantity, "raw %q", raw)
		assert.True(t, q.QuantityCorrected)
		assert.Equal(t, int64(240000), q.PriceExcludingTax)
		assert.Equal(t, int64(264000), q.PriceIncludingTax)
		assert.Equal(t, "", q.BillingMonth)
	}
}

func TestCalculateIsIdempotent(t *testing.T) {
	once, q1 := Calculate(Form{CompanyName: "Acme", Quantity: "2x", StartDate: "2025-06-01"})
	twice, q2 := Calculate(once)
	assert.Equal(t, once, twice)
	assert.Equal(t, q1.PriceIncludingTax, q2.PriceIncludingTax)
}

func TestReset(t *testing.T) {
	now := time.Date(2025, 12, 20, 0, 0, 0, 0, time.UTC)
	f, q := Reset(Form{
		CompanyName: "Acme Corp",
		ProductName: "Gold Plan",
		Quantity:    "7",
		StartDate:   "2025-04-01",
		MailBody:    "previous body",
	}, now)

	assert.Equal(t, Form{ProductName: "Gold Plan", Quantity: "1", StartDate: "2026-01-01"}, f)
	assert.Equal(t, int64(240000), q.PriceExcludingTax)
	assert.Equal(t, "2026/01", q.BillingMonth)
}

func TestFormatAmount(t *testing.T) {
	assert.Equal(t, "0", FormatAmount(0))
	assert.Equal(t, "240,000", FormatAmount(240000))
	assert.Equal(t, "1,234,567", FormatAmount(1234567))
	assert.Equal(t, "264,000円", FormatYen(264000))
}
