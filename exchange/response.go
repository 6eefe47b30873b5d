package exchange

import "net/http"

//
// Response represents the outcome of a round trip against an exchange's API endpoint. The body has
// already been fully read so that it can be inspected more than once (e.g. for embedded errors and
// then for data).
//
type Response struct {
	StatusCode int
	Header     http.Header
	Body       []byte
}

//
// OK returns whether or not the response carries a 2xx status code.
//
func (o *Response) OK() bool {
	return o != nil && o.StatusCode >= 200 && o.StatusCode < 300
}
