package orderform

import "fmt"

// Clipboard receives the generated mail body.
type Clipboard interface {
	WriteAll(text string) error
}

// Copy writes f.MailBody to cb. An empty body returns ErrNothingToCopy and
// cb is never called.
func Copy(f Form, cb Clipboard) error {
	if f.MailBody == "" {
		return ErrNothingToCopy
	}
	if err := cb.WriteAll(f.MailBody); err != nil {
		return fmt.Errorf("orderform: copy to clipboard: %w", err)
	}
	return nil
}
