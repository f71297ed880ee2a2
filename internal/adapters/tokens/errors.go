package tokens

import "errors"

// Sentinel kinds for token store errors.
var (
	ErrLoad     = errors.New("token store load failed")
	ErrSave     = errors.New("token store save failed")
	ErrNoTokens = errors.New("no tokens changed")
)
