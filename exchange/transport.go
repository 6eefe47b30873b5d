package exchange

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/lukehollenback/huobi/constants"
)

//
// Transport performs the actual HTTP round trip for a request descriptor. Whenever the round trip
// fails – whether due to a system failure or a non-2xx status – the returned error is a
// *TransportError and, if at all possible, the response that was received is returned alongside it.
//
type Transport interface {
	Do(ctx context.Context, req *Request) (*Response, error)
}

//
// TransportError represents a failed round trip. Response holds whatever was received before the
// failure was detected and may be nil.
//
type TransportError struct {
	Err      error
	Response *Response
}

func (o *TransportError) Error() string {
	return o.Err.Error()
}

func (o *TransportError) Unwrap() error {
	return o.Err
}

//
// HTTPTransport implements the Transport interface on top of a connection-pooling *http.Client. A
// single instance is meant to be shared by every client in the process so that keep-alive
// connections get reused.
//
type HTTPTransport struct {
	httpClient *http.Client
}

//
// NewHTTPTransport wraps the provided HTTP client. If nil is provided, a client with a keep-alive
// connection pool and the default timeout is created.
//
func NewHTTPTransport(httpClient *http.Client) *HTTPTransport {
	if httpClient == nil {
		httpClient = &http.Client{
			Timeout: constants.DefaultTimeout,
			Transport: &http.Transport{
				Proxy:               http.ProxyFromEnvironment,
				ForceAttemptHTTP2:   true,
				MaxIdleConns:        100,
				MaxIdleConnsPerHost: 16,
				IdleConnTimeout:     90 * time.Second,
				TLSHandshakeTimeout: 10 * time.Second,
			},
		}
	}

	return &HTTPTransport{
		httpClient: httpClient,
	}
}

//
// Do implements the Transport interface.
//
func (o *HTTPTransport) Do(ctx context.Context, req *Request) (*Response, error) {
	//
	// Build the underlying HTTP request.
	//
	u, err := req.URL()
	if err != nil {
		return nil, &TransportError{Err: err}
	}

	var body io.Reader

	if req.Body != nil {
		raw, err := json.Marshal(req.Body)
		if err != nil {
			return nil, &TransportError{Err: fmt.Errorf("failed to encode request body: %w", err)}
		}

		body = bytes.NewReader(raw)
	}

	httpReq, err := http.NewRequestWithContext(ctx, req.Method, u.String(), body)
	if err != nil {
		return nil, &TransportError{Err: err}
	}

	httpReq.Header.Set("Content-Type", "application/json")

	//
	// Make the request to the endpoint.
	//
	httpResp, err := o.httpClient.Do(httpReq)
	if err != nil {
		return nil, &TransportError{Err: err}
	}
	defer httpResp.Body.Close()

	resp := &Response{
		StatusCode: httpResp.StatusCode,
		Header:     httpResp.Header,
	}

	//
	// Read the response.
	//
	resp.Body, err = io.ReadAll(httpResp.Body)
	if err != nil {
		return resp, &TransportError{Err: err, Response: resp}
	}

	//
	// Make sure the status code was valid.
	//
	if !resp.OK() {
		return resp, &TransportError{Err: NewHTTPError(resp.StatusCode), Response: resp}
	}

	return resp, nil
}

//
// Close releases any idle pooled connections. Requests that are in flight are unaffected.
//
func (o *HTTPTransport) Close() {
	o.httpClient.CloseIdleConnections()
}
