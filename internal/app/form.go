package app

import (
	"math"
	"net/url"
	"strconv"
	"strings"

	"github.com/linaank/web1/internal/domain"
	apperrors "github.com/linaank/web1/internal/platform/errors"
	"github.com/linaank/web1/internal/platform/i18n"
)

// Accepted bounds for Y and R. X is unconstrained.
const (
	MinY = -3.0
	MaxY = 3.0
	MinR = 2.0
	MaxR = 5.0
)

var requiredFields = []string{"x", "y", "r"}

// ParseQuery extracts and validates x, y and r from decoded form values.
// All three must be present; each is parsed in order and the first failure is
// returned. Range checks run only once every value parsed.
func ParseQuery(form url.Values) (domain.Query, error) {
	for _, field := range requiredFields {
		if _, ok := form[field]; !ok {
			return domain.Query{}, apperrors.MissingParameterError()
		}
	}

	var values [3]float64
	for i, field := range requiredFields {
		v, err := ParseNumber(field, lastValue(form, field))
		if err != nil {
			return domain.Query{}, err
		}
		values[i] = v
	}

	q := domain.Query{X: values[0], Y: values[1], R: values[2]}
	if err := Validate(q); err != nil {
		return domain.Query{}, err
	}
	return q, nil
}

// ParseNumber parses a decimal number that may use either '.' or ',' as the
// decimal separator. NaN and infinities are rejected.
func ParseNumber(field, raw string) (float64, error) {
	normalized := strings.ReplaceAll(strings.TrimSpace(raw), ",", ".")
	v, err := strconv.ParseFloat(normalized, 64)
	if err != nil {
		return 0, apperrors.NotANumberError(field, err)
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, apperrors.NotANumberError(field, nil)
	}
	return v, nil
}

// Validate checks y before r and reports only the first violated bound.
func Validate(q domain.Query) error {
	if q.Y < MinY || q.Y > MaxY {
		return apperrors.RangeError(i18n.MsgYRange).WithField("y", q.Y)
	}
	if q.R < MinR || q.R > MaxR {
		return apperrors.RangeError(i18n.MsgRRange).WithField("r", q.R)
	}
	return nil
}

// lastValue mirrors a plain key/value decoder where later duplicates win.
func lastValue(form url.Values, key string) string {
	vs := form[key]
	if len(vs) == 0 {
		return ""
	}
	return vs[len(vs)-1]
}
