package huobi

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/logrusorgru/aurora"
	"github.com/lukehollenback/huobi/constants"
	"github.com/lukehollenback/huobi/exchange"
	"github.com/lukehollenback/huobi/structs/evictingqueue"
)

var logger = log.New(log.Writer(), fmt.Sprintf(constants.LogPrefixFmt, Name), log.Ldate|log.Ltime|log.Lmsgprefix)

//
// Config holds everything a Client can be constructed with. Zero values are replaced with sensible
// defaults by NewClient.
//
type Config struct {
	// Host is the scheme and authority of the API (e.g. "https://api.huobi.pro").
	Host string

	Key    string
	Secret string

	// Transport is shared by every request the client makes. Share one instance across clients to
	// reuse keep-alive connections.
	Transport exchange.Transport

	Logger *log.Logger

	// JournalSize is the number of completed requests retained by Journal. Negative disables it.
	JournalSize int

	// Now is the clock used to timestamp signatures and journal entries.
	Now func() time.Time
}

//
// Client implements typed access to the Huobi REST API. It holds no per-request state, so a single
// instance may be used from many goroutines at once.
//
// Whenever an endpoint fails – whether due to a system failure, an HTTP error, or an API error –
// an *ExchangeError is returned. Responses that do not match the expected shape yield a
// *ValidationError instead.
//
type Client struct {
	key        string
	secret     string
	publicURL  string
	privateURL string
	transport  exchange.Transport
	logger     *log.Logger
	journal    *evictingqueue.EvictingQueue[Entry]
	now        func() time.Time
}

func NewClient(cfg Config) *Client {
	if cfg.Host == "" {
		cfg.Host = DefaultHost
	}

	if cfg.Transport == nil {
		cfg.Transport = exchange.NewHTTPTransport(nil)
	}

	if cfg.Logger == nil {
		cfg.Logger = logger
	}

	if cfg.JournalSize == 0 {
		cfg.JournalSize = constants.DefaultJournalSize
	}

	if cfg.Now == nil {
		cfg.Now = time.Now
	}

	host := strings.TrimSuffix(cfg.Host, "/")

	return &Client{
		key:        cfg.Key,
		secret:     cfg.Secret,
		publicURL:  host + PublicBasePath,
		privateURL: host + PrivateBasePath,
		transport:  cfg.Transport,
		logger:     cfg.Logger,
		journal:    evictingqueue.New[Entry](cfg.JournalSize),
		now:        cfg.Now,
	}
}

//
// Auth provides the API key and secret used to sign private requests. It must not be called while
// requests are in flight.
//
func (o *Client) Auth(key string, secret string) {
	o.key = key
	o.secret = secret
}

//
// ListSymbols retrieves every market the exchange lists, in the exchange's own order.
//
func (o *Client) ListSymbols(ctx context.Context) ([]Symbol, error) {
	env, err := o.publicRequest(ctx, SymbolsPath, nil)
	if err != nil {
		return nil, err
	}

	return symbolSchema.parse(env.data())
}

//
// ListCurrencies retrieves the quote currencies the exchange supports.
//
func (o *Client) ListCurrencies(ctx context.Context) ([]Currency, error) {
	env, err := o.publicRequest(ctx, CurrenciesPath, nil)
	if err != nil {
		return nil, err
	}

	return currencySchema.parse(env.data())
}

//
// ListTickers retrieves the current ticker of every market. Each ticker carries the timestamp of
// the response as a whole.
//
func (o *Client) ListTickers(ctx context.Context) ([]Ticker, error) {
	env, err := o.publicRequest(ctx, TickersPath, nil)
	if err != nil {
		return nil, err
	}

	tickers, err := tickerSchema.parse(env.data())
	if err != nil {
		return nil, err
	}

	if len(tickers) == 0 {
		return tickers, nil
	}

	ts, err := extractInteger(env["ts"])
	if err != nil {
		return nil, tickerSchema.fail(-1, "ts", err)
	}

	for i := range tickers {
		tickers[i].TS = ts
	}

	return tickers, nil
}

//
// ListAccounts retrieves the trading accounts of the user the configured credentials belong to.
//
func (o *Client) ListAccounts(ctx context.Context) ([]Account, error) {
	env, err := o.privateRequest(ctx, http.MethodGet, AccountsPath, nil)
	if err != nil {
		return nil, err
	}

	return accountSchema.parse(env.data())
}

//
// Journal returns the most recently completed requests, oldest first.
//
func (o *Client) Journal() []Entry {
	return o.journal.Snapshot()
}

//
// LastRequest returns the most recently completed request, or false if none has been journaled.
//
func (o *Client) LastRequest() (Entry, bool) {
	return o.journal.Get(o.journal.Len() - 1)
}

func (o *Client) publicRequest(ctx context.Context, path string, params url.Values) (envelope, error) {
	return o.do(ctx, &exchange.Request{
		BaseURL: o.publicURL,
		Path:    path,
		Method:  http.MethodGet,
		Query:   params,
	}, nil)
}

//
// privateRequest makes a signed request. GET parameters travel in the query string; for any other
// method they are sent as the JSON body and only the authentication parameters are signed.
//
func (o *Client) privateRequest(ctx context.Context, method string, path string, params url.Values) (envelope, error) {
	if o.key == "" || o.secret == "" {
		return nil, &ExchangeError{
			Message: ErrMissingCredentials.Error(),
			cause:   ErrMissingCredentials,
		}
	}

	req := &exchange.Request{
		BaseURL: o.privateURL,
		Path:    path,
		Method:  method,
	}

	if method == http.MethodGet {
		req.Query = params
	} else {
		body := map[string]string{}

		for k := range params {
			body[k] = params.Get(k)
		}

		req.Body = body
	}

	signer := NewSigner(o.key, o.secret)

	return o.do(ctx, req, func(req *exchange.Request) error {
		return signer.Sign(req, o.now())
	})
}

//
// do dispatches the request and resolves its outcome into exactly one of: a failed round trip, an
// error embedded by the exchange, or a well-formed envelope. The optional sign step runs after the
// request has been logged so that signatures never end up in the logs.
//
func (o *Client) do(ctx context.Context, req *exchange.Request, sign func(*exchange.Request) error) (envelope, error) {
	entry := Entry{
		ID:      uuid.NewString(),
		Key:     o.keyOrPlaceholder(),
		Method:  req.Method,
		Path:    req.Path,
		Started: o.now(),
	}

	summary := summarize(req)
	began := time.Now()

	o.logger.Printf("[%s] %s %s %s %s", entry.ID, entry.Key, req.Method, req.Path, summary)

	var env envelope
	var err error

	if sign != nil {
		err = sign(req)
	}

	if err == nil {
		env, err = resolve(o.transport.Do(ctx, req))
	}

	entry.Duration = time.Since(began)
	entry.Err = err

	if err != nil {
		o.logger.Printf("[%s] %s %s %s %s %s %s", entry.ID, entry.Key, req.Method, req.Path, summary, aurora.Red("FAILED"), err)
	} else {
		o.logger.Printf("[%s] %s %s %s %s %s", entry.ID, entry.Key, req.Method, req.Path, summary, aurora.Green("SUCCESS"))
	}

	o.journal.Add(entry)

	return env, err
}

//
// resolve funnels every round trip outcome through the same embedded error check so that an
// exchange rejection is recognised identically whether or not the transport considered the call a
// success.
//
func resolve(resp *exchange.Response, err error) (envelope, error) {
	if err != nil {
		partial := resp

		var transportErr *exchange.TransportError

		if errors.As(err, &transportErr) && transportErr.Response != nil {
			partial = transportErr.Response
		}

		if partial != nil {
			if env, decodeErr := decodeEnvelope(partial.Body); decodeErr == nil {
				if apiErr := env.embeddedError(); apiErr != nil {
					apiErr.cause = err

					return nil, apiErr
				}
			}
		}

		return nil, &ExchangeError{
			Message: err.Error(),
			cause:   err,
		}
	}

	env, err := decodeEnvelope(resp.Body)
	if err != nil {
		return nil, err
	}

	if apiErr := env.embeddedError(); apiErr != nil {
		return nil, apiErr
	}

	return env, nil
}

func (o *Client) keyOrPlaceholder() string {
	if o.key == "" {
		return anonymousKey
	}

	return o.key
}

func summarize(req *exchange.Request) string {
	raw, err := json.Marshal(struct {
		Params url.Values  `json:"params,omitempty"`
		Data   interface{} `json:"data,omitempty"`
	}{
		Params: req.Query,
		Data:   req.Body,
	})
	if err != nil {
		return "{}"
	}

	return string(raw)
}
