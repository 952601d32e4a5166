package alert

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Fields holds the normalized values of a validated payload. A nil pointer
// means the field was not supplied and must be left untouched.
type Fields struct {
	Email     *string
	Threshold *float64
	Active    *bool
}

// FieldError names exactly one offending field. Validation stops at the
// first failure, so callers always get a single field/message pair.
type FieldError struct {
	Field   string
	Message string
}

func (e *FieldError) Error() string {
	return e.Field + ": " + e.Message
}

// Validate normalizes and checks a raw JSON payload.
//
// Full mode (partial=false, create/PUT): email and threshold must be
// present and non-null. Partial mode (partial=true, PATCH): only supplied
// fields are checked; an empty payload is a valid no-op request.
// Checks run in a fixed order: missing payload, required presence, email
// format, threshold format, active type.
func Validate(raw map[string]any, partial bool) (Fields, *FieldError) {
	var f Fields

	if raw == nil {
		if partial {
			return f, nil
		}
		return f, &FieldError{Field: "payload", Message: "payload missing or malformed"}
	}

	email, hasEmail := raw["email"]
	threshold, hasThreshold := raw["threshold"]
	active, hasActive := raw["active"]

	if !partial {
		if !hasEmail || email == nil {
			return f, &FieldError{Field: "email", Message: "email is required"}
		}
		if !hasThreshold || threshold == nil {
			return f, &FieldError{Field: "threshold", Message: "threshold is required"}
		}
	}

	if hasEmail && email != nil {
		s := strings.TrimSpace(stringify(email))
		if s == "" {
			return f, &FieldError{Field: "email", Message: "email must be a non-empty string"}
		}
		f.Email = &s
	}

	if hasThreshold && threshold != nil {
		n, ok := toFloat(threshold)
		if !ok {
			return f, &FieldError{Field: "threshold", Message: "threshold must be a number"}
		}
		f.Threshold = &n
	}

	if hasActive && active != nil {
		b, ok := active.(bool)
		if !ok {
			return f, &FieldError{Field: "active", Message: "active must be a boolean"}
		}
		f.Active = &b
	}

	return f, nil
}

func stringify(v any) string {
	if s, ok := v.(string); ok {
		return s
	}
	return fmt.Sprintf("%v", v)
}

// toFloat accepts JSON numbers and numeric strings; anything else
// (booleans, arrays, objects) and non-finite values fail.
func toFloat(v any) (float64, bool) {
	var n float64
	switch t := v.(type) {
	case float64:
		n = t
	case string:
		parsed, err := strconv.ParseFloat(strings.TrimSpace(t), 64)
		if err != nil {
			return 0, false
		}
		n = parsed
	default:
		return 0, false
	}
	if math.IsNaN(n) || math.IsInf(n, 0) {
		return 0, false
	}
	return n, true
}
