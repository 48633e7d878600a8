package errors

// Handler catches step-level errors at the screen boundary so nothing in the
// wizard is fatal to the process.
type Handler struct {
	logger    Logger
	presenter Presenter
	logout    func()
}

type Logger interface {
	Error(msg string, fields map[string]interface{})
	Warn(msg string, fields map[string]interface{})
}

// Presenter shows a blocking alert to the user. The UI layer supplies the
// implementation; tests supply a recorder.
type Presenter interface {
	Alert(title, message string)
}

// NewHandler builds a boundary handler. The logout callback clears the
// session and cached application; it runs exactly once per unauthorized
// error, centrally, never at call sites.
func NewHandler(logger Logger, presenter Presenter, logout func()) *Handler {
	return &Handler{logger: logger, presenter: presenter, logout: logout}
}

// Handle routes err according to its kind. Validation errors surface the
// first rule message; transport errors surface the server message verbatim;
// unauthorized forces logout; feature-unavailable degrades to an
// informational alert.
func (h *Handler) Handle(err error) {
	if err == nil {
		return
	}
	appErr := AsAppError(err)

	switch appErr.Kind {
	case KindValidation:
		h.presenter.Alert("Error", appErr.Message)
	case KindUnauthorized:
		h.logger.Warn("session expired, forcing logout", map[string]interface{}{
			"code": string(appErr.Code),
		})
		if h.logout != nil {
			h.logout()
		}
		h.presenter.Alert("Signed out", appErr.Message)
	case KindFeatureUnavailable:
		h.presenter.Alert("Development Build Required", appErr.Message)
	default:
		h.logError(appErr)
		h.presenter.Alert("Error", appErr.Message)
	}
}

func (h *Handler) logError(appErr *AppError) {
	h.logger.Error("operation failed", map[string]interface{}{
		"kind":      string(appErr.Kind),
		"code":      string(appErr.Code),
		"message":   appErr.Message,
		"details":   appErr.Details,
		"retryable": appErr.Retryable,
	})
}
