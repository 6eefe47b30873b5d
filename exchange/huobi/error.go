package huobi

import (
	"errors"
	"fmt"
	"strings"

	"github.com/lukehollenback/huobi/exchange"
)

var _ exchange.APIError = (*ExchangeError)(nil)

var (
	//
	// ErrMalformedResponse matches (via errors.Is) every *ValidationError.
	//
	ErrMalformedResponse = errors.New("malformed response")

	//
	// ErrMissingCredentials is returned when a private endpoint is called without an API key and
	// secret having been configured.
	//
	ErrMissingCredentials = errors.New("private endpoint requires an api key and secret")
)

//
// ExchangeError is the single failure type surfaced for requests that did not succeed – whether
// the round trip itself failed or the exchange embedded an error in an otherwise successful
// response. Code is empty unless the exchange supplied one.
//
type ExchangeError struct {
	Message string
	Code    ErrorCode

	cause error
}

func (o *ExchangeError) ErrorCode() string {
	return string(o.Code)
}

func (o *ExchangeError) ErrorMessage() string {
	return o.Message
}

//
// HasCode returns whether or not the exchange supplied a machine-readable error code.
//
func (o *ExchangeError) HasCode() bool {
	return o.Code != ""
}

func (o *ExchangeError) Error() string {
	if o.HasCode() {
		return fmt.Sprintf("%s (code: %s)", o.Message, o.Code)
	}

	return o.Message
}

//
// Unwrap exposes the transport failure (if any) that led to the error.
//
func (o *ExchangeError) Unwrap() error {
	return o.cause
}

//
// CodeOf returns the error code carried by the first *ExchangeError in err's chain, and whether one
// was present at all.
//
func CodeOf(err error) (ErrorCode, bool) {
	var exchangeErr *ExchangeError

	if errors.As(err, &exchangeErr) && exchangeErr.HasCode() {
		return exchangeErr.Code, true
	}

	return "", false
}

//
// ValidationError reports a response whose shape does not match the schema of the record being
// parsed. Index is the offending item's position in the "data" array, or -1 when the problem lies
// in the envelope itself.
//
type ValidationError struct {
	Record string
	Index  int
	Field  string
	Reason string
}

func (o *ValidationError) Error() string {
	b := strings.Builder{}

	b.WriteString("malformed ")
	b.WriteString(o.Record)
	b.WriteString(" response")

	if o.Index >= 0 {
		fmt.Fprintf(&b, " (item %d)", o.Index)
	}

	if o.Field != "" {
		fmt.Fprintf(&b, ": field %q", o.Field)
	}

	b.WriteString(": ")
	b.WriteString(o.Reason)

	return b.String()
}

func (o *ValidationError) Is(target error) bool {
	return target == ErrMalformedResponse
}
