package huobi

const (
	Name = "≪huobi-client≫"

	DefaultHost = "https://api.huobi.pro"

	PublicBasePath  = "/"
	PrivateBasePath = "/v1/"

	SymbolsPath    = "v1/common/symbols"
	CurrenciesPath = "v1/common/currencys"
	TickersPath    = "market/tickers"
	AccountsPath   = "account/accounts"

	// Placeholder logged in place of an API key for anonymous requests.
	anonymousKey = "NO_KEY"

	errorMessagePrefix = "huobi error: "
)
