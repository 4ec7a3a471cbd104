package fee

import "errors"

var (
	ErrInvalidOrder   = errors.New("invalid order")
	ErrInvalidQuoteID = errors.New("invalid quote id")

	ErrPublishFailed = errors.New("publish fee calculated event")
)
