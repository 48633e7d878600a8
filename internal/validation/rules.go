package validation

import "fmt"

// Shared rule constructors. Each yields a named Rule with exactly one
// possible error, so ordering stays deterministic.

// requireText fails unless the field stringifies to a non-empty trimmed
// value.
func requireText(field, message string) Rule {
	return Rule{
		Name: field + ".required",
		Check: func(data Fields) *FieldError {
			if !hasText(data[field]) {
				return &FieldError{Field: field, Code: "MISSING_REQUIRED", Message: message}
			}
			return nil
		},
	}
}

// enumWhenPresent checks membership only when a value is present; absence is
// not itself an error.
func enumWhenPresent(field string, allowed []string, message string) Rule {
	return Rule{
		Name: field + ".enum",
		Check: func(data Fields) *FieldError {
			v, ok := data[field]
			if !ok || !hasText(v) {
				return nil
			}
			if !oneOf(asString(v), allowed) {
				return &FieldError{Field: field, Code: "INVALID_ENUM_VALUE", Message: message}
			}
			return nil
		},
	}
}

// exactDigitsWhenPresent enforces a fixed-length all-digit value when the
// field is filled in.
func exactDigitsWhenPresent(field string, n int, message string) Rule {
	return Rule{
		Name: field + ".digits",
		Check: func(data Fields) *FieldError {
			v, ok := data[field]
			if !ok || !hasText(v) {
				return nil
			}
			if !allDigits(asString(v), n) {
				return &FieldError{Field: field, Code: "INVALID_FORMAT", Message: message}
			}
			return nil
		},
	}
}

// minLengthWhenPresent enforces a minimum character count when the field is
// filled in.
func minLengthWhenPresent(field string, n int, message string) Rule {
	return Rule{
		Name: field + ".minLength",
		Check: func(data Fields) *FieldError {
			v, ok := data[field]
			if !ok || !hasText(v) {
				return nil
			}
			if len(asString(v)) < n {
				return &FieldError{Field: field, Code: "MIN_LENGTH_VIOLATION", Message: message}
			}
			return nil
		},
	}
}

// requireAcceptance fails unless the field is the boolean literal true.
func requireAcceptance(field, message string) Rule {
	return Rule{
		Name: field + ".accepted",
		Check: func(data Fields) *FieldError {
			if !isTrue(data[field]) {
				return &FieldError{Field: field, Code: "NOT_ACCEPTED", Message: message}
			}
			return nil
		},
	}
}

// rangeWhenTriggered makes `field` mandatory and range-checked only when the
// trigger list is non-empty. This is the conditional-requirement shape:
// presence of one field makes another mandatory.
func rangeWhenTriggered(field, triggerList string, min, max float64) Rule {
	return Rule{
		Name: field + ".conditionalRange",
		Check: func(data Fields) *FieldError {
			if len(asList(data[triggerList])) == 0 {
				return nil
			}
			n, ok := asNumber(data[field])
			if !ok {
				return &FieldError{
					Field:   field,
					Code:    "MISSING_REQUIRED",
					Message: fmt.Sprintf("%s is required when %s is set", field, triggerList),
				}
			}
			if n < min || n > max {
				return &FieldError{
					Field:   field,
					Code:    "RANGE_VIOLATION",
					Message: fmt.Sprintf("%s must be between %g and %g", field, min, max),
				}
			}
			return nil
		},
	}
}
