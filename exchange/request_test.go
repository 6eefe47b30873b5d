package exchange

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequestURL(t *testing.T) {
	tests := []struct {
		name string
		req  Request
		want string
	}{
		{
			name: "public path",
			req:  Request{BaseURL: "https://api.huobi.pro/", Path: "v1/common/symbols"},
			want: "https://api.huobi.pro/v1/common/symbols",
		},
		{
			name: "versioned base without trailing slash",
			req:  Request{BaseURL: "https://api.huobi.pro/v1", Path: "account/accounts"},
			want: "https://api.huobi.pro/v1/account/accounts",
		},
		{
			name: "leading slash on path",
			req:  Request{BaseURL: "https://api.huobi.pro/v1/", Path: "/account/accounts"},
			want: "https://api.huobi.pro/v1/account/accounts",
		},
		{
			name: "query parameters",
			req: Request{
				BaseURL: "https://api.huobi.pro/",
				Path:    "market/tickers",
				Query:   url.Values{"b": {"2"}, "a": {"1"}},
			},
			want: "https://api.huobi.pro/market/tickers?a=1&b=2",
		},
		{
			name: "spaces and plus signs in values",
			req: Request{
				BaseURL: "https://api.huobi.pro/",
				Path:    "market/tickers",
				Query:   url.Values{"q": {"a b+c"}},
			},
			want: "https://api.huobi.pro/market/tickers?q=a%20b%2Bc",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			u, err := tt.req.URL()
			require.NoError(t, err)
			assert.Equal(t, tt.want, u.String())
		})
	}
}

func TestRequestURLInvalidBase(t *testing.T) {
	req := Request{BaseURL: "://nope", Path: "x"}

	_, err := req.URL()
	assert.Error(t, err)
}

func TestEncodeQuery(t *testing.T) {
	assert.Equal(t, "", EncodeQuery(nil))
	assert.Equal(t, "a=1&b=x%20y", EncodeQuery(url.Values{"b": {"x y"}, "a": {"1"}}))
	assert.Equal(t, "t=2017-05-11T15%3A19%3A30&v=1%2B1", EncodeQuery(url.Values{"v": {"1+1"}, "t": {"2017-05-11T15:19:30"}}))
}
