package cli

import (
	"errors"

	"github.com/atotto/clipboard"
)

var errClipboardUnsupported = errors.New("no clipboard utility found (install xclip, xsel or wl-clipboard)")

// SystemClipboard writes to the OS clipboard (pbcopy, xclip, xsel,
// wl-copy or the Windows API, whichever is present).
type SystemClipboard struct{}

// WriteAll implements orderform.Clipboard.
func (SystemClipboard) WriteAll(text string) error {
	if clipboard.Unsupported {
		return errClipboardUnsupported
	}
	return clipboard.WriteAll(text)
}
