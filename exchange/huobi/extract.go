package huobi

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

//
// The extractors below coerce one raw value of a decoded (UseNumber) JSON document. They report a
// *ValidationError that only carries a reason; the schema that invoked them fills in the record,
// item, and field.
//

var (
	minInt64 = decimal.NewFromInt(math.MinInt64)
	maxInt64 = decimal.NewFromInt(math.MaxInt64)
)

func invalid(format string, args ...interface{}) *ValidationError {
	return &ValidationError{
		Index:  -1,
		Reason: fmt.Sprintf(format, args...),
	}
}

//
// extractText accepts strings as well as scalars that have an obvious textual form.
//
func extractText(v interface{}) (string, error) {
	switch t := v.(type) {
	case nil:
		return "", invalid("value is missing")
	case string:
		return t, nil
	case json.Number:
		return t.String(), nil
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64), nil
	case bool:
		return strconv.FormatBool(t), nil
	default:
		return "", invalid("expected text but got %s", describe(v))
	}
}

//
// extractInteger accepts numbers and numeric strings, so long as they have no fractional remainder
// and fit in an int64.
//
func extractInteger(v interface{}) (int64, error) {
	var s string

	switch t := v.(type) {
	case nil:
		return 0, invalid("value is missing")
	case json.Number:
		s = t.String()
	case string:
		s = strings.TrimSpace(t)
	case float64:
		s = strconv.FormatFloat(t, 'f', -1, 64)
	default:
		return 0, invalid("expected an integer but got %s", describe(v))
	}

	d, err := decimal.NewFromString(s)
	if err != nil {
		return 0, invalid("expected an integer but got %q", s)
	}

	if !d.Equal(d.Truncate(0)) {
		return 0, invalid("expected an integer but %s has a fractional remainder", d)
	}

	if d.LessThan(minInt64) || d.GreaterThan(maxInt64) {
		return 0, invalid("integer %s is out of range", d)
	}

	return d.IntPart(), nil
}

//
// extractPrecision is extractInteger restricted to values that can describe a number of decimal
// places.
//
func extractPrecision(v interface{}) (int64, error) {
	n, err := extractInteger(v)
	if err != nil {
		return 0, err
	}

	if n < 0 {
		return 0, invalid("precision must not be negative but was %d", n)
	}

	return n, nil
}

func extractArray(v interface{}) ([]interface{}, error) {
	switch t := v.(type) {
	case nil:
		return nil, invalid("value is missing")
	case []interface{}:
		return t, nil
	default:
		return nil, invalid("expected an array but got %s", describe(v))
	}
}

//
// extractNumber forwards numeric values verbatim. It never fails: the exchange is known to vary the
// precision it renders these values with, so they are not validated. Values of any other kind are
// forwarded as their JSON text.
//
func extractNumber(v interface{}) (Number, error) {
	switch t := v.(type) {
	case nil:
		return "", nil
	case json.Number:
		return Number(t), nil
	case string:
		return Number(t), nil
	case float64:
		return Number(strconv.FormatFloat(t, 'f', -1, 64)), nil
	default:
		raw, err := json.Marshal(t)
		if err != nil {
			return Number(fmt.Sprint(t)), nil
		}

		return Number(raw), nil
	}
}

func describe(v interface{}) string {
	switch v.(type) {
	case map[string]interface{}:
		return "an object"
	case []interface{}:
		return "an array"
	case bool:
		return "a boolean"
	case string:
		return "text"
	case json.Number, float64:
		return "a number"
	default:
		return fmt.Sprintf("%T", v)
	}
}
