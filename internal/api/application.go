package api

import (
	"context"
	"strconv"

	apperrors "admission-client/internal/common/errors"
	"admission-client/internal/common/metrics"
	"admission-client/internal/models"
)

// ApplicationAPI persists wizard progress server-side. Step numbers on this
// surface are always in backend numbering; the wizard translates before
// calling in.
type ApplicationAPI struct {
	client *Client
}

func NewApplicationAPI(client *Client) *ApplicationAPI {
	return &ApplicationAPI{client: client}
}

// Get fetches the caller's application, nil when none exists yet.
func (a *ApplicationAPI) Get(ctx context.Context) (*models.Application, error) {
	var app models.Application
	err := a.client.getJSON(ctx, "/application", nil, &app)
	if err != nil {
		// A missing application is a normal first-run state, not a fault.
		if appErr := apperrors.AsAppError(err); appErr.Code == apperrors.ErrCodeServerRejected {
			if status, ok := appErr.Metadata["status"].(int); ok && status == 404 {
				return nil, nil
			}
		}
		return nil, err
	}
	return &app, nil
}

type saveStepRequest struct {
	Step int                    `json:"step"`
	Data map[string]interface{} `json:"data"`
}

// SaveStep persists one step's fields under the given backend step number.
func (a *ApplicationAPI) SaveStep(ctx context.Context, backendStep int, data map[string]interface{}) (*models.SaveStepResult, error) {
	var result models.SaveStepResult
	err := a.client.putJSON(ctx, "/application/step", saveStepRequest{Step: backendStep, Data: data}, &result)
	label := strconv.Itoa(backendStep)
	if err != nil {
		metrics.StepSavesTotal.WithLabelValues(label, "failure").Inc()
		return nil, err
	}
	metrics.StepSavesTotal.WithLabelValues(label, "success").Inc()
	return &result, nil
}

type savePreferencesRequest struct {
	Preferences []models.Preference `json:"preferences"`
}

// SavePreferences replaces the full ordered preference list.
func (a *ApplicationAPI) SavePreferences(ctx context.Context, prefs []models.Preference) error {
	return a.client.putJSON(ctx, "/application/preferences", savePreferencesRequest{Preferences: prefs}, nil)
}

// Submit finalizes the application. The wizard enforces the payment and
// disclaimer gates before this call is made.
func (a *ApplicationAPI) Submit(ctx context.Context) (*models.Application, error) {
	var app models.Application
	if err := a.client.postJSON(ctx, "/application/submit", nil, &app); err != nil {
		metrics.SubmissionsTotal.WithLabelValues("failure").Inc()
		return nil, err
	}
	metrics.SubmissionsTotal.WithLabelValues("success").Inc()
	return &app, nil
}
