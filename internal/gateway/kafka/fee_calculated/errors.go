package fee_calculated

import "errors"

var (
	ErrBreakerOpen = errors.New("fee calculated publisher: circuit breaker is open")
	ErrEncode      = errors.New("fee calculated publisher: encode event")
)
