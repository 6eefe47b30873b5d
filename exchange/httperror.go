package exchange

import (
	"fmt"
	"net/http"
)

//
// HTTPError is the cause of a TransportError when an endpoint answers with a status outside of the
// 2xx range. Exchanges frequently still include an error payload in such responses, which is why
// the TransportError keeps the body around.
//
type HTTPError struct {
	statusCode int
}

func NewHTTPError(statusCode int) *HTTPError {
	return &HTTPError{
		statusCode: statusCode,
	}
}

func (o *HTTPError) StatusCode() int {
	return o.statusCode
}

//
// Retryable returns whether or not the status indicates a condition on the server side (5xx) or a
// throttled request (429), as opposed to a request that will never succeed as sent.
//
func (o *HTTPError) Retryable() bool {
	return o.statusCode == http.StatusTooManyRequests || o.statusCode >= 500
}

func (o *HTTPError) Error() string {
	if text := http.StatusText(o.statusCode); text != "" {
		return fmt.Sprintf("server responded with a %d (%s) status code", o.statusCode, text)
	}

	return fmt.Sprintf("server responded with a %d status code", o.statusCode)
}
