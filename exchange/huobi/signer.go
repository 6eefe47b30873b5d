package huobi

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"net/url"
	"strings"
	"time"

	"github.com/lukehollenback/huobi/exchange"
)

const (
	signatureMethod  = "HmacSHA256"
	signatureVersion = "2"
	timestampLayout  = "2006-01-02T15:04:05"
)

//
// Signer signs private requests with the exchange's "signature version 2" scheme: the request's
// query parameters plus AccessKeyId, SignatureMethod, SignatureVersion, and a UTC Timestamp are
// sorted and URL-encoded, the method, host, path, and that query are joined by newlines, and the
// base64-encoded HMAC-SHA256 of the result is appended as the Signature parameter.
//
type Signer struct {
	key    string
	secret string
}

func NewSigner(key string, secret string) *Signer {
	return &Signer{
		key:    key,
		secret: secret,
	}
}

//
// Sign adds the authentication parameters to the request's query. The request must not be modified
// afterwards.
//
func (o *Signer) Sign(req *exchange.Request, now time.Time) error {
	u, err := req.URL()
	if err != nil {
		return err
	}

	query := url.Values{}

	for k, v := range req.Query {
		query[k] = append([]string(nil), v...)
	}

	query.Set("AccessKeyId", o.key)
	query.Set("SignatureMethod", signatureMethod)
	query.Set("SignatureVersion", signatureVersion)
	query.Set("Timestamp", now.UTC().Format(timestampLayout))

	// The payload must use the same encoding the transport puts on the wire.
	payload := strings.Join([]string{
		strings.ToUpper(req.Method),
		strings.ToLower(u.Host),
		u.EscapedPath(),
		exchange.EncodeQuery(query),
	}, "\n")

	query.Set("Signature", o.signature(payload))
	req.Query = query

	return nil
}

func (o *Signer) signature(payload string) string {
	mac := hmac.New(sha256.New, []byte(o.secret))
	mac.Write([]byte(payload))

	return base64.StdEncoding.EncodeToString(mac.Sum(nil))
}
