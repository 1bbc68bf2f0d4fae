// Package cli implements the ordermail commands on top of the order form
// domain, so quotes and mail bodies can be produced without a browser.
package cli

import (
	"io"
	"os"
	"time"

	"github.com/odyssey-erp/orderform/internal/orderform"
)

// Exit codes shared by every command.
const (
	ExitOK         = 0
	ExitError      = 1
	ExitValidation = 2
)

// OrderMailCLI bundles the collaborators the commands need.
type OrderMailCLI struct {
	prompter  Prompter
	clipboard orderform.Clipboard
	now       func() time.Time
}

// NewOrderMailCLI constructs the CLI. A nil now falls back to time.Now.
func NewOrderMailCLI(prompter Prompter, clipboard orderform.Clipboard, now func() time.Time) *OrderMailCLI {
	if now == nil {
		now = time.Now
	}
	return &OrderMailCLI{prompter: prompter, clipboard: clipboard, now: now}
}

func outputs(stdout, stderr io.Writer) (io.Writer, io.Writer) {
	if stdout == nil {
		stdout = os.Stdout
	}
	if stderr == nil {
		stderr = os.Stderr
	}
	return stdout, stderr
}
