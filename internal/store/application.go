// Package store holds the client-side caches: the process-wide application
// cell and the persisted auth session.
package store

import (
	"sync"

	"admission-client/internal/models"
)

// ApplicationCell is the single cached Application. Single-writer by
// convention (the wizard orchestrator and the login/logout flow), read by
// all step screens. The mutex keeps reads consistent for callers off the
// UI goroutine.
type ApplicationCell struct {
	mu  sync.RWMutex
	app *models.Application
}

func NewApplicationCell() *ApplicationCell {
	return &ApplicationCell{}
}

// Get returns the cached application, nil when none is loaded.
func (c *ApplicationCell) Get() *models.Application {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.app
}

// Set replaces the cached application wholesale (fetch on login/foreground).
func (c *ApplicationCell) Set(app *models.Application) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.app = app
}

// SetCurrentStep records the backend step number returned by a step save.
func (c *ApplicationCell) SetCurrentStep(backendStep int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.app != nil {
		c.app.CurrentStep = backendStep
	}
}

// ensureDraft backs writes on the first-run path: the backend creates the
// application implicitly on the first step save, so a write into an empty
// cell caches a fresh draft rather than vanishing. Callers hold the lock.
func (c *ApplicationCell) ensureDraft() {
	if c.app == nil {
		c.app = &models.Application{Status: models.StatusDraft, CurrentStep: 1}
	}
}

// MergeStepData folds one step's fields into the accumulated bag by key
// union, last write wins per key. Saving step N never erases fields
// belonging to other steps.
func (c *ApplicationCell) MergeStepData(data map[string]interface{}) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.ensureDraft()
	if c.app.StepData == nil {
		c.app.StepData = make(map[string]interface{}, len(data))
	}
	for k, v := range data {
		c.app.StepData[k] = v
	}
}

// SetPreferences replaces the preference list after a successful save.
func (c *ApplicationCell) SetPreferences(prefs []models.Preference) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.ensureDraft()
	c.app.Preferences = prefs
}

// StepData returns a copy of the merged field bag, nil-safe.
func (c *ApplicationCell) StepData() map[string]interface{} {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.app == nil || c.app.StepData == nil {
		return map[string]interface{}{}
	}
	out := make(map[string]interface{}, len(c.app.StepData))
	for k, v := range c.app.StepData {
		out[k] = v
	}
	return out
}

// Clear empties the cell. Invoked exactly at logout and account-switch
// boundaries.
func (c *ApplicationCell) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.app = nil
}
