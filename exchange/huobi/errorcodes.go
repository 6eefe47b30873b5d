package huobi

//
// ErrorCode is the machine-readable code the exchange attaches to a rejected request (the
// "err-code" member of a response envelope). Codes the exchange introduces after this list was
// written are still carried verbatim; use Known to tell them apart.
//
type ErrorCode string

const (
	AccountFrozenBalanceInsufficientError ErrorCode = "account-frozen-balance-insufficient-error"
	BaseRecordInvalid                     ErrorCode = "base-record-invalid"
	APISignatureNotValid                  ErrorCode = "api-signature-not-valid"
	OrderOrderpricePrecisionError         ErrorCode = "order-orderprice-precision-error"
	OrderLimitorderAmountMinError         ErrorCode = "order-limitorder-amount-min-error"
	APISignatureCheckFailed               ErrorCode = "api-signature-check-failed"
	BaseSymbolError                       ErrorCode = "base-symbol-error"
	InvalidParameter                      ErrorCode = "invalid-parameter"
	LoginRequired                         ErrorCode = "login-required"
	OrderAccountbalanceError              ErrorCode = "order-accountbalance-error"
	OrderMarketorderAmountMinError        ErrorCode = "order-marketorder-amount-min-error"
)

var knownErrorCodes = map[ErrorCode]struct{}{
	AccountFrozenBalanceInsufficientError: {},
	BaseRecordInvalid:                     {},
	APISignatureNotValid:                  {},
	OrderOrderpricePrecisionError:         {},
	OrderLimitorderAmountMinError:         {},
	APISignatureCheckFailed:               {},
	BaseSymbolError:                       {},
	InvalidParameter:                      {},
	LoginRequired:                         {},
	OrderAccountbalanceError:              {},
	OrderMarketorderAmountMinError:        {},
}

//
// Known returns whether or not the code is one of the documented codes declared above.
//
func (o ErrorCode) Known() bool {
	_, ok := knownErrorCodes[o]

	return ok
}

func (o ErrorCode) String() string {
	return string(o)
}
