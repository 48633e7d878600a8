// Package validation holds the per-step validators for the admission wizard.
// Each step declares an ordered list of named rules over the step's field
// set; rules run in order and the first failure is the one surfaced to the
// user. Every field is optional at the type level because the API may return
// null; required-ness is always a cross-field refinement.
package validation

import "fmt"

// Fields is the untyped bag of form values for one step, as decoded from
// JSON. Null, empty string and absent are all treated as "missing".
type Fields map[string]interface{}

// FieldError is one failed rule, tagged with the field path it belongs to.
type FieldError struct {
	Field   string `json:"field"`
	Code    string `json:"code"`
	Message string `json:"message"`
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// Rule is a named predicate over the full step's field set, yielding zero or
// one error.
type Rule struct {
	Name  string
	Check func(Fields) *FieldError
}

// FieldKind is the permissive type a field must have when present.
type FieldKind int

const (
	KindText FieldKind = iota // string
	KindFlag                  // bool
	KindNumeric               // number, or numeric string
	KindList                  // array
)

// FieldSpec declares one known field of a step. Order matters: type checks
// run in declaration order before any refinement.
type FieldSpec struct {
	Name string
	Kind FieldKind
}

// Schema is the declarative validator for one backend step.
type Schema struct {
	BackendStep int
	Fields      []FieldSpec
	Rules       []Rule
}

// Validate runs type checks then refinements and returns the first error, or
// nil when the data passes. Only the explicit "proceed" action calls this;
// in-progress typing is never blocked.
func (s *Schema) Validate(data Fields) *FieldError {
	for _, spec := range s.Fields {
		if err := checkKind(data, spec); err != nil {
			return err
		}
	}
	for _, rule := range s.Rules {
		if err := rule.Check(data); err != nil {
			return err
		}
	}
	return nil
}

// checkKind validates a field's type only when the value is present;
// absence is never itself a type error.
func checkKind(data Fields, spec FieldSpec) *FieldError {
	v, ok := data[spec.Name]
	if !ok || v == nil {
		return nil
	}

	switch spec.Kind {
	case KindText:
		if _, ok := v.(string); !ok {
			return typeError(spec.Name, "string", v)
		}
	case KindFlag:
		if _, ok := v.(bool); !ok {
			return typeError(spec.Name, "boolean", v)
		}
	case KindNumeric:
		// Numeric inputs arrive as float64 from JSON or as a string from a
		// text field; both are accepted, anything else is rejected.
		switch v.(type) {
		case float64, int, int32, int64, string:
		default:
			return typeError(spec.Name, "number", v)
		}
	case KindList:
		if _, ok := v.([]interface{}); !ok {
			return typeError(spec.Name, "array", v)
		}
	}
	return nil
}

func typeError(field, expected string, got interface{}) *FieldError {
	return &FieldError{
		Field:   field,
		Code:    "INVALID_TYPE",
		Message: fmt.Sprintf("%s must be a %s, got %T", field, expected, got),
	}
}
