package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validateStep(t *testing.T, backend int, data Fields) *FieldError {
	t.Helper()
	schema, ok := ForBackendStep(backend)
	require.True(t, ok, "schema for backend step %d", backend)
	return schema.Validate(data)
}

func TestStep1_ExamCodeRequired(t *testing.T) {
	tests := []struct {
		name    string
		data    Fields
		wantErr bool
	}{
		{name: "present", data: Fields{"examCode": "SSLC"}, wantErr: false},
		{name: "absent", data: Fields{}, wantErr: true},
		{name: "null", data: Fields{"examCode": nil}, wantErr: true},
		{name: "empty string", data: Fields{"examCode": ""}, wantErr: true},
		{name: "whitespace only", data: Fields{"examCode": "   "}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateStep(t, 1, tt.data)
			if tt.wantErr {
				require.NotNil(t, err)
				assert.Equal(t, "examCode", err.Field)
			} else {
				assert.Nil(t, err)
			}
		})
	}
}

func TestStep2_CategoryEnum(t *testing.T) {
	err := validateStep(t, 2, Fields{"applicantName": "A", "category": "OBC"})
	assert.Nil(t, err)

	err = validateStep(t, 2, Fields{"applicantName": "A", "category": "XX"})
	require.NotNil(t, err)
	assert.Equal(t, "category", err.Field)
	assert.Contains(t, err.Message, "Category")
}

func TestStep2_GenderEnum(t *testing.T) {
	tests := []struct {
		name    string
		gender  interface{}
		wantErr bool
	}{
		{name: "male", gender: "Male", wantErr: false},
		{name: "others", gender: "Others", wantErr: false},
		{name: "absent is fine", gender: nil, wantErr: false},
		{name: "lowercase rejected", gender: "male", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data := Fields{"applicantName": "A"}
			if tt.gender != nil {
				data["gender"] = tt.gender
			}
			err := validateStep(t, 2, data)
			if tt.wantErr {
				require.NotNil(t, err)
				assert.Equal(t, "gender", err.Field)
			} else {
				assert.Nil(t, err)
			}
		})
	}
}

func TestStep2_FirstErrorWins(t *testing.T) {
	// Name missing and gender invalid: rule order surfaces the name first.
	err := validateStep(t, 2, Fields{"gender": "X"})
	require.NotNil(t, err)
	assert.Equal(t, "applicantName", err.Field)
}

func TestStep3_PercentageConditionalGate(t *testing.T) {
	tests := []struct {
		name    string
		data    Fields
		wantErr bool
	}{
		{
			name:    "types set, percentage missing",
			data:    Fields{"differentlyAbledTypes": []interface{}{"Blind"}, "differentlyAbledPercentage": nil},
			wantErr: true,
		},
		{
			name:    "types empty, percentage missing",
			data:    Fields{"differentlyAbledTypes": []interface{}{}, "differentlyAbledPercentage": nil},
			wantErr: false,
		},
		{
			name:    "types absent entirely",
			data:    Fields{},
			wantErr: false,
		},
		{
			name:    "types set, percentage in range",
			data:    Fields{"differentlyAbledTypes": []interface{}{"Blind"}, "differentlyAbledPercentage": 40.0},
			wantErr: false,
		},
		{
			name:    "types set, percentage over 100",
			data:    Fields{"differentlyAbledTypes": []interface{}{"Blind"}, "differentlyAbledPercentage": 120.0},
			wantErr: true,
		},
		{
			name:    "types set, percentage as string",
			data:    Fields{"differentlyAbledTypes": []interface{}{"Blind"}, "differentlyAbledPercentage": "55"},
			wantErr: false,
		},
		{
			name:    "zero percentage counts as provided",
			data:    Fields{"differentlyAbledTypes": []interface{}{"Blind"}, "differentlyAbledPercentage": 0.0},
			wantErr: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateStep(t, 3, tt.data)
			if tt.wantErr {
				require.NotNil(t, err)
				assert.Equal(t, "differentlyAbledPercentage", err.Field)
			} else {
				assert.Nil(t, err)
			}
		})
	}
}

func TestStep4_PinCodeStrictness(t *testing.T) {
	err := validateStep(t, 4, Fields{"permanentPinCode": "12345"})
	require.NotNil(t, err)
	assert.Equal(t, "permanentPinCode", err.Field)

	assert.Nil(t, validateStep(t, 4, Fields{"permanentPinCode": "123456"}))
	assert.Nil(t, validateStep(t, 4, Fields{}))

	err = validateStep(t, 4, Fields{"permanentPinCode": "12345a"})
	require.NotNil(t, err, "non-digit characters rejected")
}

func TestStep4_PhoneMinLength(t *testing.T) {
	err := validateStep(t, 4, Fields{"phone": "12345"})
	require.NotNil(t, err)
	assert.Equal(t, "phone", err.Field)

	assert.Nil(t, validateStep(t, 4, Fields{"phone": "9876543210"}))
	assert.Nil(t, validateStep(t, 4, Fields{"phone": ""}))
}

func TestStep10_PreviousAttemptsLengthMatch(t *testing.T) {
	attempt := map[string]interface{}{"regNo": "R1", "month": "03", "year": "2024"}

	tests := []struct {
		name    string
		data    Fields
		wantErr bool
	}{
		{
			name:    "one of two attempts filled",
			data:    Fields{"sslcAttempts": 2.0, "previousAttempts": []interface{}{attempt}},
			wantErr: true,
		},
		{
			name:    "both attempts filled",
			data:    Fields{"sslcAttempts": 2.0, "previousAttempts": []interface{}{attempt, attempt}},
			wantErr: false,
		},
		{
			name: "empty list tolerated as not yet filled in",
			data: Fields{"sslcAttempts": 2.0, "previousAttempts": []interface{}{}},
		},
		{
			name: "attempts as string",
			data: Fields{"sslcAttempts": "2", "previousAttempts": []interface{}{attempt, attempt}},
		},
		{
			name: "zero attempts, list irrelevant",
			data: Fields{"sslcAttempts": 0.0, "previousAttempts": []interface{}{attempt}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateStep(t, 10, tt.data)
			if tt.wantErr {
				require.NotNil(t, err)
				assert.Equal(t, "previousAttempts", err.Field)
			} else {
				assert.Nil(t, err)
			}
		})
	}
}

func TestDisclaimerGate(t *testing.T) {
	for _, backend := range []int{11, 13} {
		assert.Nil(t, validateStep(t, backend, Fields{"disclaimerAccepted": true}))

		err := validateStep(t, backend, Fields{"disclaimerAccepted": false})
		require.NotNil(t, err, "backend step %d", backend)

		// Literal true only: absent and truthy-but-not-bool both fail.
		require.NotNil(t, validateStep(t, backend, Fields{}))
	}
	// A non-bool value fails the type check before the acceptance rule.
	err := validateStep(t, 13, Fields{"disclaimerAccepted": "yes"})
	require.NotNil(t, err)
	assert.Equal(t, "INVALID_TYPE", err.Code)
}

func TestTypeChecks_PermissiveWhenAbsent(t *testing.T) {
	// Nulls from the API are never type errors.
	assert.Nil(t, validateStep(t, 5, Fields{"ncc": nil, "littleKitesGrade": nil}))

	err := validateStep(t, 5, Fields{"ncc": "yes"})
	require.NotNil(t, err)
	assert.Equal(t, "INVALID_TYPE", err.Code)
}

func TestNumericFields_AcceptStringOrNumber(t *testing.T) {
	assert.Nil(t, validateStep(t, 6, Fields{"sportsStateCount": 2.0}))
	assert.Nil(t, validateStep(t, 6, Fields{"sportsStateCount": "2"}))

	err := validateStep(t, 6, Fields{"sportsStateCount": true})
	require.NotNil(t, err)
	assert.Equal(t, "INVALID_TYPE", err.Code)
}

func TestForBackendStep_CoversAllThirteen(t *testing.T) {
	for b := 1; b <= 13; b++ {
		s, ok := ForBackendStep(b)
		require.True(t, ok, "backend step %d", b)
		assert.Equal(t, b, s.BackendStep)
	}
	_, ok := ForBackendStep(14)
	assert.False(t, ok)
}
