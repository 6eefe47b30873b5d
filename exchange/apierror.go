package exchange

//
// APIError generically provides an interface to objects that represent a first-class error provided
// in the response of a request against a cryptocurrency exchange's API.
//
type APIError interface {
	error

	//
	// ErrorCode returns the machine-readable error code provided by the API (if there was one). An
	// empty string means that the exchange did not supply a code.
	//
	ErrorCode() string

	//
	// ErrorMessage returns the human-readable error message associated with the failure.
	//
	ErrorMessage() string
}
