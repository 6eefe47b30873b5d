package exchange

import (
	"fmt"
	"net/url"
	"strings"
)

//
// Request describes a single call against an exchange's REST API. It is purposefully independent of
// net/http so that it can be signed, logged, and replayed against fake transports in tests.
//
type Request struct {
	BaseURL string
	Path    string
	Method  string
	Query   url.Values
	Body    interface{}
}

//
// URL resolves the request's path against its base address and attaches its encoded query string
// (see EncodeQuery).
//
func (o *Request) URL() (*url.URL, error) {
	base, err := url.Parse(o.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid base address %q: %w", o.BaseURL, err)
	}

	if !strings.HasSuffix(base.Path, "/") {
		base.Path += "/"
	}

	ref, err := url.Parse(strings.TrimPrefix(o.Path, "/"))
	if err != nil {
		return nil, fmt.Errorf("invalid path %q: %w", o.Path, err)
	}

	resolved := base.ResolveReference(ref)
	resolved.RawQuery = EncodeQuery(o.Query)

	return resolved, nil
}

//
// EncodeQuery encodes the values sorted by key, escaping spaces as "%20" rather than "+". A literal
// "+" is always escaped as "%2B", so every "+" left by url.Values.Encode stands for a space.
//
func EncodeQuery(values url.Values) string {
	return strings.ReplaceAll(values.Encode(), "+", "%20")
}
