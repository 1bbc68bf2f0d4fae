package orderform

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubClipboard struct {
	written []string
	err     error
}

func (s *stubClipboard) WriteAll(text string) error {
	s.written = append(s.written, text)
	return s.err
}

func TestCopyEmptyBodyNeverTouchesClipboard(t *testing.T) {
	cb := &stubClipboard{}
	err := Copy(Form{CompanyName: "Acme"}, cb)

	assert.ErrorIs(t, err, ErrNothingToCopy)
	assert.Equal(t, "生成するメール本文がありません。", Notice(err))
	assert.Empty(t, cb.written)
}

func TestCopyWritesBody(t *testing.T) {
	cb := &stubClipboard{}
	require.NoError(t, Copy(Form{MailBody: acmeMail}, cb))
	assert.Equal(t, []string{acmeMail}, cb.written)
}

func TestCopyReportsClipboardFailure(t *testing.T) {
	cause := errors.New("no clipboard utilities available")
	cb := &stubClipboard{err: cause}

	err := Copy(Form{MailBody: "body"}, cb)
	assert.ErrorIs(t, err, cause)
	assert.NotErrorIs(t, err, ErrNothingToCopy)
}
