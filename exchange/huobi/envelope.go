package huobi

import (
	"bytes"
	"encoding/json"
	"io"
)

//
// envelope is the decoded top-level object of every response:
//
//   { "status": "ok"|"error", "ts": 1553907172501, "data": [...], "err-code": "...", "err-msg": "..." }
//
// Numbers are kept as json.Number so that nothing is rounded before the schemas see it.
//
type envelope map[string]interface{}

func decodeEnvelope(body []byte) (envelope, error) {
	dec := json.NewDecoder(bytes.NewReader(body))
	dec.UseNumber()

	var env envelope

	if err := dec.Decode(&env); err != nil {
		return nil, &ValidationError{
			Record: "envelope",
			Index:  -1,
			Reason: "body is not a JSON object: " + err.Error(),
		}
	}

	var trailing interface{}

	if err := dec.Decode(&trailing); err != io.EOF {
		return nil, &ValidationError{
			Record: "envelope",
			Index:  -1,
			Reason: "body has trailing data after the JSON object",
		}
	}

	if env == nil {
		return nil, &ValidationError{
			Record: "envelope",
			Index:  -1,
			Reason: "body is null",
		}
	}

	return env, nil
}

func (o envelope) data() interface{} {
	return o["data"]
}

//
// embeddedError returns the error the exchange embedded in the envelope, or nil when it does not
// carry both an "err-code" and an "err-msg".
//
func (o envelope) embeddedError() *ExchangeError {
	rawCode, hasCode := o["err-code"]
	rawMsg, hasMsg := o["err-msg"]

	if !hasCode || !hasMsg {
		return nil
	}

	code, _ := extractText(rawCode)
	msg, _ := extractText(rawMsg)

	return &ExchangeError{
		Message: errorMessagePrefix + msg,
		Code:    ErrorCode(code),
	}
}
