package cli

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/odyssey-erp/orderform/internal/orderform"
)

// DefaultsOptions defines the flags of the defaults command.
type DefaultsOptions struct {
	// Date overrides today, as YYYY-MM-DD.
	Date   string
	Stdout io.Writer
	Stderr io.Writer
}

// DefaultsCommand prints the start date a fresh form would carry.
func (c *OrderMailCLI) DefaultsCommand(opts DefaultsOptions) int {
	stdout, stderr := outputs(opts.Stdout, opts.Stderr)

	today := c.now()
	if raw := strings.TrimSpace(opts.Date); raw != "" {
		parsed, err := time.ParseInLocation(orderform.DateLayout, raw, today.Location())
		if err != nil {
			_, _ = fmt.Fprintf(stderr, "defaults: invalid date %q (expected YYYY-MM-DD)\n", opts.Date)
			return ExitError
		}
		today = parsed
	}

	_, _ = fmt.Fprintln(stdout, orderform.DefaultStartDate(today).Format(orderform.DateLayout))
	return ExitOK
}
