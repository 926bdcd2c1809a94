package entity

import "errors"

// ErrDuplicateQuoteID is returned by the store when an insert collides with
// an existing quote token. Callers regenerate the token and retry.
var ErrDuplicateQuoteID = errors.New("quote id already exists")
