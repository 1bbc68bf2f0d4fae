package orderform

import (
	"errors"
	"strings"
	"text/template"
	"time"

	"github.com/go-playground/validator/v10"
)

// mailTemplate is pasted into customer mail as is; keep it byte for byte.
const mailTemplate = `----------------------------------------
・企業名　： {{.CompanyName}}
・品　名　： {{.ProductName}}
・口　数　： {{.Quantity}}口 ({{.Headcount}}名)
・期　間　： {{.Period}}
・料　金　： {{.PriceExcludingTax}} (税込{{.PriceIncludingTax}})
・ご請求月： {{.BillingMonth}}
----------------------------------------

【年間特典】
・会員専用メルマガ配信
・各種イベントご招待
・オンラインセミナー アーカイブ先行配信、資料DL
・会員専用プレスリリース窓口の設置
・広告メニュー10%オフ
========================================`

var mailBody = template.Must(template.New("mail").Parse(mailTemplate))

var validate = validator.New()

type mailInput struct {
	CompanyName string `validate:"required"`
	StartDate   string `validate:"required,datetime=2006-01-02"`
}

type mailData struct {
	CompanyName       string
	ProductName       string
	Quantity          int
	Headcount         int
	Period            SubscriptionPeriod
	PriceExcludingTax string
	PriceIncludingTax string
	BillingMonth      string
}

// SubscriptionPeriodFor returns the term that starts on start and ends the
// day before the same calendar date one year later.
func SubscriptionPeriodFor(start time.Time) SubscriptionPeriod {
	return SubscriptionPeriod{Start: start, End: start.AddDate(1, 0, -1)}
}

// GenerateMailBody validates f and, when the company name and start date
// are usable, returns the recalculated form with MailBody filled in. On a
// validation failure f is returned untouched together with a
// *ValidationError.
func GenerateMailBody(f Form) (Form, error) {
	input := mailInput{
		CompanyName: strings.TrimSpace(f.CompanyName),
		StartDate:   f.StartDate,
	}
	if err := validateMailInput(input); err != nil {
		return f, err
	}

	start, err := time.Parse(DateLayout, f.StartDate)
	if err != nil {
		return f, &ValidationError{Field: FieldStartDate, Err: ErrInvalidStartDate}
	}

	next, quote := Calculate(f)
	data := mailData{
		CompanyName:       input.CompanyName,
		ProductName:       next.ProductName,
		Quantity:          quote.Quantity,
		Headcount:         quote.Headcount(),
		Period:            SubscriptionPeriodFor(start),
		PriceExcludingTax: FormatAmount(quote.PriceExcludingTax),
		PriceIncludingTax: FormatAmount(quote.PriceIncludingTax),
		BillingMonth:      quote.BillingMonth,
	}

	var b strings.Builder
	if err := mailBody.Execute(&b, data); err != nil {
		return f, err
	}
	next.MailBody = b.String()
	return next, nil
}

// validateMailInput reports the first failing field in form order.
func validateMailInput(input mailInput) error {
	err := validate.Struct(input)
	if err == nil {
		return nil
	}
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
		return err
	}
	first := fieldErrs[0]
	switch first.StructField() {
	case "CompanyName":
		return &ValidationError{Field: FieldCompanyName, Err: ErrMissingCompanyName}
	case "StartDate":
		if first.Tag() == "required" {
			return &ValidationError{Field: FieldStartDate, Err: ErrMissingStartDate}
		}
		return &ValidationError{Field: FieldStartDate, Err: ErrInvalidStartDate}
	}
	return err
}
