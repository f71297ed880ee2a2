package ledger

import "errors"

// Sentinel kinds for ledger errors.
var (
	ErrLoad = errors.New("ledger load failed")
	ErrSave = errors.New("ledger save failed")
)
