package exchange

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHTTPError(t *testing.T) {
	err := NewHTTPError(http.StatusServiceUnavailable)

	assert.Equal(t, http.StatusServiceUnavailable, err.StatusCode())
	assert.Equal(t, "server responded with a 503 (Service Unavailable) status code", err.Error())
	assert.True(t, err.Retryable())

	assert.False(t, NewHTTPError(http.StatusBadRequest).Retryable())
	assert.True(t, NewHTTPError(http.StatusTooManyRequests).Retryable())
	assert.Equal(t, "server responded with a 599 status code", NewHTTPError(599).Error())
}
