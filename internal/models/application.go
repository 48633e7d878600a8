package models

// ApplicationStatus is the server-side lifecycle state of an application.
// Monotonic except for resubmission flows, which the backend owns.
type ApplicationStatus string

const (
	StatusDraft    ApplicationStatus = "DRAFT"
	StatusPending  ApplicationStatus = "PENDING"
	StatusVerified ApplicationStatus = "VERIFIED"
	StatusRejected ApplicationStatus = "REJECTED"
)

// Application is the aggregate root persisted server-side and cached in the
// client state cell. CurrentStep is in backend numbering (1..13, with the
// preferences/documents steps swapped relative to route order); translate
// with the steps package before comparing to a route step.
type Application struct {
	ID          string                 `json:"id"`
	Status      ApplicationStatus      `json:"status"`
	CurrentStep int                    `json:"currentStep"`
	StepData    map[string]interface{} `json:"stepData,omitempty"`
	Preferences []Preference           `json:"preferences,omitempty"`
	Documents   []Document             `json:"documents,omitempty"`
}

// Preference is one school/combination choice. PreferenceNumber is 1-based
// and contiguous; removal renumbers the remainder.
type Preference struct {
	PreferenceNumber int    `json:"preferenceNumber"`
	SchoolCode       string `json:"schoolCode"`
	CombinationCode  string `json:"combinationCode"`
}

// SaveStepResult is the backend's acknowledgement of a step save.
type SaveStepResult struct {
	CurrentStep int `json:"currentStep"`
}
