package cli

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/odyssey-erp/orderform/internal/orderform"
)

// MailOptions defines the flags of the mail command. Empty Quantity and
// Start fall back to the defaults of a fresh form.
type MailOptions struct {
	Company     string
	Product     string
	Quantity    string
	Start       string
	Interactive bool
	Copy        bool
	JSONOutput  bool
	Stdout      io.Writer
	Stderr      io.Writer
}

// MailCommand generates the order mail body and optionally copies it.
func (c *OrderMailCLI) MailCommand(ctx context.Context, opts MailOptions) int {
	stdout, stderr := outputs(opts.Stdout, opts.Stderr)

	form := orderform.NewForm(c.now(), opts.Product)
	form.CompanyName = opts.Company
	if opts.Quantity != "" {
		form.Quantity = opts.Quantity
	}
	if opts.Start != "" {
		form.StartDate = opts.Start
	}

	if opts.Interactive {
		var err error
		form, err = c.promptMissing(ctx, form, opts)
		if err != nil {
			_, _ = fmt.Fprintf(stderr, "mail: %v\n", err)
			return ExitError
		}
	}

	_, quote := orderform.Calculate(form)
	if quote.QuantityCorrected {
		_, _ = fmt.Fprintf(stderr, "mail: quantity %q is not a positive integer, using %d\n", form.Quantity, quote.Quantity)
	}

	generated, err := orderform.GenerateMailBody(form)
	if err != nil {
		if notice := orderform.Notice(err); notice != "" {
			_, _ = fmt.Fprintln(stderr, notice)
			return ExitValidation
		}
		_, _ = fmt.Fprintf(stderr, "mail: %v\n", err)
		return ExitError
	}

	if opts.JSONOutput {
		out := orderform.MailResponse{MailBody: generated.MailBody, Quote: orderform.NewQuoteResponse(quote)}
		if err := json.NewEncoder(stdout).Encode(out); err != nil {
			_, _ = fmt.Fprintf(stderr, "mail: encode json: %v\n", err)
			return ExitError
		}
	} else {
		_, _ = fmt.Fprintln(stdout, generated.MailBody)
	}

	if opts.Copy {
		if c.clipboard == nil {
			_, _ = fmt.Fprintln(stderr, "mail: no clipboard available")
			return ExitError
		}
		if err := orderform.Copy(generated, c.clipboard); err != nil {
			if errors.Is(err, orderform.ErrNothingToCopy) {
				_, _ = fmt.Fprintln(stderr, orderform.Notice(err))
				return ExitValidation
			}
			_, _ = fmt.Fprintf(stderr, "mail: %v\n", err)
			return ExitError
		}
		_, _ = fmt.Fprintln(stderr, orderform.CopiedNotice)
	}
	return ExitOK
}

// promptMissing asks for the company and product when blank, and for the
// quantity and start date when no flag supplied them.
func (c *OrderMailCLI) promptMissing(ctx context.Context, form orderform.Form, opts MailOptions) (orderform.Form, error) {
	if c.prompter == nil {
		return form, errors.New("interactive mode needs a terminal")
	}

	var err error
	if strings.TrimSpace(form.CompanyName) == "" {
		form.CompanyName, err = c.prompter.Input(ctx, InputConfig{
			Message:   "企業名",
			Validator: requireText(orderform.ErrMissingCompanyName),
		})
		if err != nil {
			return form, err
		}
	}
	if form.ProductName == "" {
		form.ProductName, err = c.prompter.Input(ctx, InputConfig{Message: "品名"})
		if err != nil {
			return form, err
		}
	}
	if opts.Quantity == "" {
		form.Quantity, err = c.prompter.Input(ctx, InputConfig{Message: "口数", Default: form.Quantity})
		if err != nil {
			return form, err
		}
	}
	if opts.Start == "" {
		form.StartDate, err = c.prompter.Input(ctx, InputConfig{
			Message:   "開始日 (YYYY-MM-DD)",
			Default:   form.StartDate,
			Validator: requireText(orderform.ErrMissingStartDate),
		})
		if err != nil {
			return form, err
		}
	}
	return form, nil
}

func requireText(cause error) func(string) error {
	return func(value string) error {
		if strings.TrimSpace(value) == "" {
			return errors.New(orderform.Notice(cause))
		}
		return nil
	}
}
