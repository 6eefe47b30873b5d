package huobi

import (
	"strconv"

	"github.com/shopspring/decimal"
)

//
// Symbol describes a tradable market.
//
type Symbol struct {
	BaseCurrency    string
	QuoteCurrency   string
	PricePrecision  int64
	AmountPrecision int64
	SymbolPartition string
	Symbol          string
}

//
// Currency is a quote currency supported by the exchange.
//
type Currency struct {
	QuoteCurrency string
}

//
// Account is one of the authenticated user's trading accounts.
//
type Account struct {
	ID     int64
	UserID int64
	Type   string
	State  string
}

//
// Ticker is a market's rolling 24h summary. TS is the millisecond timestamp of the response the
// ticker arrived in and is therefore shared by every ticker of one batch.
//
type Ticker struct {
	Open   Number
	Close  Number
	Low    Number
	High   Number
	Amount Number
	Count  Number
	Vol    Number
	Symbol string
	TS     int64
}

//
// Number is a numeric value exactly as the exchange rendered it. It is never rounded or otherwise
// converted on the way in; an absent value is the empty Number.
//
type Number string

func (o Number) String() string {
	return string(o)
}

//
// Float64 converts the number to a float64 (which may lose precision).
//
func (o Number) Float64() (float64, error) {
	return strconv.ParseFloat(string(o), 64)
}

//
// Decimal converts the number to an arbitrary-precision decimal.
//
func (o Number) Decimal() (decimal.Decimal, error) {
	return decimal.NewFromString(string(o))
}
