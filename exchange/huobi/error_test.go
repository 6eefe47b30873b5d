package huobi

import (
	"errors"
	"fmt"
	"testing"

	"github.com/lukehollenback/huobi/exchange"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExchangeErrorWithoutCode(t *testing.T) {
	err := &ExchangeError{Message: "test message"}

	assert.Equal(t, "test message", err.Error())
	assert.False(t, err.HasCode())

	_, ok := CodeOf(err)
	assert.False(t, ok)
}

func TestExchangeErrorWithCode(t *testing.T) {
	err := &ExchangeError{Message: "huobi error: invalid signature", Code: APISignatureNotValid}

	var apiErr exchange.APIError = err

	assert.Equal(t, "api-signature-not-valid", apiErr.ErrorCode())
	assert.Equal(t, "huobi error: invalid signature", apiErr.ErrorMessage())
	assert.Contains(t, err.Error(), "api-signature-not-valid")

	code, ok := CodeOf(fmt.Errorf("listing accounts: %w", err))
	require.True(t, ok)
	assert.Equal(t, APISignatureNotValid, code)
}

func TestExchangeErrorUnwrapsCause(t *testing.T) {
	cause := errors.New("dial tcp: connection refused")
	err := &ExchangeError{Message: cause.Error(), cause: cause}

	assert.ErrorIs(t, err, cause)
}

func TestErrorCodeKnown(t *testing.T) {
	assert.True(t, AccountFrozenBalanceInsufficientError.Known())
	assert.True(t, OrderLimitorderAmountMinError.Known())
	assert.False(t, ErrorCode("some-new-error").Known())
}

func TestValidationErrorMessage(t *testing.T) {
	err := &ValidationError{Record: "symbol", Index: 3, Field: "symbol", Reason: "value is missing"}
	assert.Equal(t, `malformed symbol response (item 3): field "symbol": value is missing`, err.Error())

	err = &ValidationError{Record: "ticker", Index: -1, Field: "ts", Reason: "value is missing"}
	assert.Equal(t, `malformed ticker response: field "ts": value is missing`, err.Error())

	assert.ErrorIs(t, err, ErrMalformedResponse)
}

func TestEmbeddedError(t *testing.T) {
	env, err := decodeEnvelope([]byte(`{"status":"error","err-code":"base-record-invalid","err-msg":"record invalid","data":null}`))
	require.NoError(t, err)

	apiErr := env.embeddedError()
	require.NotNil(t, apiErr)
	assert.Equal(t, "huobi error: record invalid", apiErr.Message)
	assert.Equal(t, BaseRecordInvalid, apiErr.Code)
}

func TestEmbeddedErrorRequiresCodeAndMessage(t *testing.T) {
	for _, body := range []string{
		`{"status":"error","err-code":"base-record-invalid"}`,
		`{"status":"error","err-msg":"record invalid"}`,
		`{"status":"ok","data":[]}`,
	} {
		env, err := decodeEnvelope([]byte(body))
		require.NoError(t, err)
		assert.Nil(t, env.embeddedError(), body)
	}
}

func TestEmbeddedErrorKeepsUnknownCodes(t *testing.T) {
	env, err := decodeEnvelope([]byte(`{"err-code":"brand-new-code","err-msg":"nope"}`))
	require.NoError(t, err)

	apiErr := env.embeddedError()
	require.NotNil(t, apiErr)
	assert.Equal(t, ErrorCode("brand-new-code"), apiErr.Code)
	assert.False(t, apiErr.Code.Known())
}

func TestDecodeEnvelopeRejectsNonObjects(t *testing.T) {
	for _, body := range []string{``, `null`, `[]`, `not json`, `{"status":"ok"} garbage`, `{"status":"ok"}}`, `{"status":"ok"}{}`} {
		_, err := decodeEnvelope([]byte(body))
		assert.ErrorIs(t, err, ErrMalformedResponse, body)
	}
}

func TestDecodeEnvelopeToleratesTrailingWhitespace(t *testing.T) {
	env, err := decodeEnvelope([]byte("{\"status\":\"ok\",\"data\":[\"a\"]}\r\n  "))
	require.NoError(t, err)
	assert.Equal(t, "ok", env["status"])
}
