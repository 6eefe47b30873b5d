package huobi

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"net/http"
	"net/url"
	"testing"
	"time"

	"github.com/lukehollenback/huobi/exchange"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func hmacBase64(secret string, payload string) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(payload))

	return base64.StdEncoding.EncodeToString(mac.Sum(nil))
}

func TestSignerCanonicalPayload(t *testing.T) {
	req := &exchange.Request{
		BaseURL: "https://api.huobi.pro/v1/",
		Path:    "order/orders",
		Method:  http.MethodGet,
		Query:   url.Values{"order-id": {"1234567890"}},
	}

	now := time.Date(2017, 5, 11, 15, 19, 30, 0, time.UTC)

	require.NoError(t, NewSigner("e2xxxxxx-99xxxxxx-84xxxxxx-7xxxx", "b0xxxxxx-c6xxxxxx-94xxxxxx-dxxxx").Sign(req, now))

	payload := "GET\n" +
		"api.huobi.pro\n" +
		"/v1/order/orders\n" +
		"AccessKeyId=e2xxxxxx-99xxxxxx-84xxxxxx-7xxxx&SignatureMethod=HmacSHA256&SignatureVersion=2&Timestamp=2017-05-11T15%3A19%3A30&order-id=1234567890"

	assert.Equal(t, hmacBase64("b0xxxxxx-c6xxxxxx-94xxxxxx-dxxxx", payload), req.Query.Get("Signature"))
	assert.Equal(t, "e2xxxxxx-99xxxxxx-84xxxxxx-7xxxx", req.Query.Get("AccessKeyId"))
	assert.Equal(t, "HmacSHA256", req.Query.Get("SignatureMethod"))
	assert.Equal(t, "2", req.Query.Get("SignatureVersion"))
	assert.Equal(t, "2017-05-11T15:19:30", req.Query.Get("Timestamp"))
	assert.Equal(t, "1234567890", req.Query.Get("order-id"))
}

func TestSignerEscapesSpacesAsPercent20(t *testing.T) {
	req := &exchange.Request{
		BaseURL: "https://api.huobi.pro/v1/",
		Path:    "order/orders",
		Method:  http.MethodGet,
		Query:   url.Values{"client-order-id": {"a b"}},
	}

	now := time.Date(2017, 5, 11, 15, 19, 30, 0, time.UTC)

	require.NoError(t, NewSigner("key", "secret").Sign(req, now))

	payload := "GET\n" +
		"api.huobi.pro\n" +
		"/v1/order/orders\n" +
		"AccessKeyId=key&SignatureMethod=HmacSHA256&SignatureVersion=2&Timestamp=2017-05-11T15%3A19%3A30&client-order-id=a%20b"

	assert.Equal(t, hmacBase64("secret", payload), req.Query.Get("Signature"))

	u, err := req.URL()
	require.NoError(t, err)
	assert.Contains(t, u.RawQuery, "client-order-id=a%20b")
	assert.NotContains(t, u.RawQuery, "+")
}

func TestSignerUsesUTC(t *testing.T) {
	req := &exchange.Request{BaseURL: "https://api.huobi.pro/v1/", Path: "account/accounts", Method: http.MethodGet}

	zone := time.FixedZone("UTC+8", 8*60*60)
	now := time.Date(2019, 3, 30, 8, 52, 52, 0, zone)

	require.NoError(t, NewSigner("key", "secret").Sign(req, now))
	assert.Equal(t, "2019-03-30T00:52:52", req.Query.Get("Timestamp"))
}

func TestSignerDoesNotMutateCallerQuery(t *testing.T) {
	params := url.Values{"symbol": {"btcusdt"}}
	req := &exchange.Request{BaseURL: "https://api.huobi.pro/v1/", Path: "order/orders", Method: http.MethodGet, Query: params}

	require.NoError(t, NewSigner("key", "secret").Sign(req, time.Now()))

	assert.Len(t, params, 1)
	assert.NotEmpty(t, req.Query.Get("Signature"))
}

func TestSignerRejectsBadBase(t *testing.T) {
	req := &exchange.Request{BaseURL: "://bad", Path: "x", Method: http.MethodGet}

	assert.Error(t, NewSigner("key", "secret").Sign(req, time.Now()))
}
