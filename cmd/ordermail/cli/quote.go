package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/odyssey-erp/orderform/internal/orderform"
)

// QuoteOptions defines the flags of the quote command.
type QuoteOptions struct {
	Quantity   string
	Start      string
	JSONOutput bool
	Stdout     io.Writer
	Stderr     io.Writer
}

// QuoteCommand prints the prices and billing month for a quantity.
func (c *OrderMailCLI) QuoteCommand(opts QuoteOptions) int {
	stdout, stderr := outputs(opts.Stdout, opts.Stderr)

	_, quote := orderform.Calculate(orderform.Form{Quantity: opts.Quantity, StartDate: opts.Start})
	if quote.QuantityCorrected {
		_, _ = fmt.Fprintf(stderr, "quote: quantity %q is not a positive integer, using %d\n", opts.Quantity, quote.Quantity)
	}

	if opts.JSONOutput {
		if err := json.NewEncoder(stdout).Encode(orderform.NewQuoteResponse(quote)); err != nil {
			_, _ = fmt.Fprintf(stderr, "quote: encode json: %v\n", err)
			return ExitError
		}
		return ExitOK
	}
	renderQuoteHuman(stdout, quote)
	return ExitOK
}

func renderQuoteHuman(w io.Writer, quote orderform.Quote) {
	_, _ = fmt.Fprintf(w, "口数　　: %d口 (%d名)\n", quote.Quantity, quote.Headcount())
	_, _ = fmt.Fprintf(w, "税抜　　: %s\n", quote.PriceExcludingTaxLabel())
	_, _ = fmt.Fprintf(w, "税込　　: %s\n", quote.PriceIncludingTaxLabel())
	_, _ = fmt.Fprintf(w, "ご請求月: %s\n", quote.BillingMonth)
}
