// Package wizard orchestrates the multi-step admission application flow:
// validation before persistence, route/backend step translation, cache
// merging on success, and the payment and disclaimer gates in front of
// final submission.
package wizard

import (
	"context"
	"errors"
	"strconv"
	"time"

	apperrors "admission-client/internal/common/errors"
	"admission-client/internal/common/logger"
	"admission-client/internal/common/metrics"
	"admission-client/internal/common/observability"
	"admission-client/internal/models"
	"admission-client/internal/steps"
	"admission-client/internal/store"
	"admission-client/internal/validation"
)

// State is the orchestrator's lifecycle phase. The wizard is single-owner:
// one flow per signed-in user, driven from one goroutine.
type State string

const (
	StateEditing   State = "EDITING"
	StateSubmitted State = "SUBMITTED"
)

// ApplicationPersister is the slice of the backend surface the wizard needs.
type ApplicationPersister interface {
	SaveStep(ctx context.Context, backendStep int, data map[string]interface{}) (*models.SaveStepResult, error)
	SavePreferences(ctx context.Context, prefs []models.Preference) error
	Submit(ctx context.Context) (*models.Application, error)
}

// PaymentChecker refreshes the fee status from the backend.
type PaymentChecker interface {
	GetStatus(ctx context.Context) (*models.PaymentStatus, error)
}

// Orchestrator drives the wizard. Step position is tracked in route
// numbering; translation to backend numbering happens only at the
// persistence boundary.
type Orchestrator struct {
	cell     *store.ApplicationCell
	backend  ApplicationPersister
	payments PaymentChecker
	logger   logger.Logger
	obs      *observability.Observability

	current int
	state   State
	paid    bool
}

func NewOrchestrator(cell *store.ApplicationCell, backend ApplicationPersister, payments PaymentChecker, log logger.Logger, obs *observability.Observability) *Orchestrator {
	return &Orchestrator{
		cell:     cell,
		backend:  backend,
		payments: payments,
		logger:   log,
		obs:      obs,
		current:  steps.FirstRouteStep,
		state:    StateEditing,
	}
}

// CurrentRouteStep returns the wizard's position in route numbering.
func (o *Orchestrator) CurrentRouteStep() int {
	return o.current
}

// LifecycleState returns the lifecycle phase.
func (o *Orchestrator) LifecycleState() State {
	return o.state
}

// PaymentComplete reports the locally known fee status.
func (o *Orchestrator) PaymentComplete() bool {
	return o.paid
}

// MarkPaymentComplete records a successful gateway verification so the
// submission gate opens without another status round-trip.
func (o *Orchestrator) MarkPaymentComplete() {
	o.paid = true
}

// RefreshPaymentStatus re-reads the fee status from the backend. Used on
// resume, when the local flag may be stale.
func (o *Orchestrator) RefreshPaymentStatus(ctx context.Context) error {
	status, err := o.payments.GetStatus(ctx)
	if err != nil {
		return err
	}
	o.paid = status.Paid
	return nil
}

// ResumeFromPersisted seeds the wizard from a fetched application, placing
// the user at the route step matching the server's progress marker.
func (o *Orchestrator) ResumeFromPersisted(app *models.Application) {
	if app == nil {
		// First run: nothing fetched, the backend will create the
		// application on the first step save. Cache a draft now so step
		// saves and preference edits have somewhere to land.
		o.cell.Set(&models.Application{Status: models.StatusDraft, CurrentStep: 1})
		o.current = steps.FirstRouteStep
		o.state = StateEditing
		return
	}
	o.cell.Set(app)
	route := steps.BackendToRoute(app.CurrentStep)
	if route < steps.FirstRouteStep {
		route = steps.FirstRouteStep
	}
	if route > steps.LastRouteStep {
		route = steps.LastRouteStep
	}
	o.current = route
	if app.Status != models.StatusDraft && app.Status != "" {
		o.state = StateSubmitted
	} else {
		o.state = StateEditing
	}
}

// GoNext validates the current step's form data, persists it under the
// backend step number, merges it into the cached application, and advances.
// Any failure leaves the position unchanged. On the preferences step the
// cached preference list is persisted instead of the form fields.
func (o *Orchestrator) GoNext(ctx context.Context, formData map[string]interface{}) error {
	if o.state == StateSubmitted {
		return apperrors.NewInternalError(errors.New("application already submitted"))
	}

	backendStep := steps.RouteToBackend(o.current)
	if err := o.validate(backendStep, formData); err != nil {
		return err
	}

	ctx, span := o.obs.StartSpan(ctx, "wizard.save_step")
	defer span.End()
	start := time.Now()

	if o.current == steps.RouteStepPreferences {
		// The progress marker only moves on step-save responses; the
		// preferences endpoint does not return one.
		if err := o.backend.SavePreferences(ctx, o.preferences()); err != nil {
			o.recordSave(ctx, backendStep, start, "failure")
			return err
		}
	} else {
		result, err := o.backend.SaveStep(ctx, backendStep, formData)
		if err != nil {
			o.recordSave(ctx, backendStep, start, "failure")
			return err
		}
		o.cell.MergeStepData(formData)
		o.cell.SetCurrentStep(result.CurrentStep)
	}
	o.recordSave(ctx, backendStep, start, "success")

	// The final route step has no successor; submission takes over there.
	if o.current < steps.LastRouteStep {
		o.current++
	}
	o.logger.Debug("Step saved", map[string]interface{}{
		"route_step":   o.current,
		"backend_step": backendStep,
	})
	return nil
}

// GoPrevious steps back without touching the server. Already-saved data
// stays saved.
func (o *Orchestrator) GoPrevious() {
	if o.current > steps.FirstRouteStep {
		o.current--
	}
}

// Submit finalizes the application. Both gates are checked locally first:
// an unpaid fee or missing disclaimer acceptance blocks without any server
// contact.
func (o *Orchestrator) Submit(ctx context.Context, formData map[string]interface{}) (*models.Application, error) {
	if o.state == StateSubmitted {
		return nil, apperrors.NewInternalError(errors.New("application already submitted"))
	}
	if !o.paid {
		return nil, apperrors.NewPaymentRequiredError()
	}
	if err := o.validate(steps.BackendStepCount, formData); err != nil {
		if appErr := apperrors.AsAppError(err); appErr.Code == apperrors.ErrCodeValidationFailed {
			return nil, apperrors.NewDisclaimerRequiredError()
		}
		return nil, err
	}

	ctx, span := o.obs.StartSpan(ctx, "wizard.submit")
	defer span.End()

	app, err := o.backend.Submit(ctx)
	if err != nil {
		return nil, err
	}
	o.cell.Set(app)
	o.state = StateSubmitted
	o.logger.Info("Application submitted", map[string]interface{}{
		"application_id": app.ID,
		"status":         string(app.Status),
	})
	return app, nil
}

// validate runs the backend step's schema and maps the first failing rule
// to a user-facing validation error.
func (o *Orchestrator) validate(backendStep int, formData map[string]interface{}) error {
	schema, ok := validation.ForBackendStep(backendStep)
	if !ok {
		return nil
	}
	if fieldErr := schema.Validate(validation.Fields(formData)); fieldErr != nil {
		metrics.ValidationFailuresTotal.WithLabelValues(
			strconv.Itoa(steps.BackendToRoute(backendStep)), fieldErr.Field,
		).Inc()
		o.logger.Debug("Step validation failed", map[string]interface{}{
			"backend_step": backendStep,
			"field":        fieldErr.Field,
			"code":         fieldErr.Code,
		})
		return apperrors.NewValidationError(fieldErr.Message)
	}
	return nil
}

func (o *Orchestrator) preferences() []models.Preference {
	app := o.cell.Get()
	if app == nil {
		return nil
	}
	return app.Preferences
}

func (o *Orchestrator) recordSave(ctx context.Context, backendStep int, start time.Time, result string) {
	o.obs.RecordStepSaved(ctx, backendStep, result)
	o.obs.RecordSaveDuration(ctx, time.Since(start), result)
}
