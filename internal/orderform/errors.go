package orderform

import (
	"errors"
	"fmt"
)

var (
	// ErrMissingCompanyName indicates the company name is blank after trimming.
	ErrMissingCompanyName = errors.New("orderform: company name is required")
	// ErrMissingStartDate indicates no start date was selected.
	ErrMissingStartDate = errors.New("orderform: start date is required")
	// ErrInvalidStartDate indicates the start date is not YYYY-MM-DD.
	ErrInvalidStartDate = errors.New("orderform: start date must be YYYY-MM-DD")
	// ErrNothingToCopy indicates a copy was requested before a mail body exists.
	ErrNothingToCopy = errors.New("orderform: mail body is empty")
)

// CopiedNotice confirms a successful clipboard copy.
const CopiedNotice = "生成されたテキストがクリップボードにコピーされました！"

// CopyFailedNotice reports that the clipboard refused the text.
const CopyFailedNotice = "クリップボードへのコピーに失敗しました。"

// QuoteFailedNotice replaces live recalculation results the server refused.
const QuoteFailedNotice = "料金を再計算できませんでした。しばらくしてから再度お試しください。"

// ResetNotice confirms that the inputs were cleared.
const ResetNotice = "入力内容をリセットしました。"

var notices = map[error]string{
	ErrMissingCompanyName: "企業名を入力してください。",
	ErrMissingStartDate:   "開始日を選択してください。",
	ErrInvalidStartDate:   "開始日の形式が正しくありません。",
	ErrNothingToCopy:      "生成するメール本文がありません。",
}

// ValidationError ties a failed check to the form field that should receive
// focus again.
type ValidationError struct {
	Field string
	Err   error
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %v", e.Field, e.Err)
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

// Notice returns the user-facing message for err, or "" when err is not one
// of the form errors.
func Notice(err error) string {
	for target, msg := range notices {
		if errors.Is(err, target) {
			return msg
		}
	}
	return ""
}

// FocusField reports which field should regain focus for err.
func FocusField(err error) string {
	var verr *ValidationError
	if errors.As(err, &verr) {
		return verr.Field
	}
	return ""
}
