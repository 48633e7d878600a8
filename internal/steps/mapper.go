// Package steps translates between the two step coordinate systems of the
// admission wizard. The route order shown to the user is linear with
// 11 = Documents, 12 = Preferences; the backend's persisted currentStep uses
// 11 = Preferences, 12 = Documents. Every persistence call crosses this
// boundary exactly once per direction.
package steps

const (
	// FirstRouteStep and LastRouteStep bound the user-visible sequence.
	FirstRouteStep = 1
	LastRouteStep  = 12

	// RouteStepDocuments and RouteStepPreferences are the swapped pair.
	RouteStepDocuments   = 11
	RouteStepPreferences = 12

	// BackendStepCount includes the declaration step (13), which shares a
	// merged panel with preferences on the route side.
	BackendStepCount = 13
)

// RouteToBackend maps a route step to the backend currentStep number.
// Values outside 1..13 pass through unchanged; callers clamp at the route
// layer.
func RouteToBackend(route int) int {
	switch route {
	case RouteStepDocuments:
		return 12
	case RouteStepPreferences:
		return 11
	default:
		return route
	}
}

// BackendToRoute maps a backend currentStep to the route step to open.
func BackendToRoute(backend int) int {
	switch backend {
	case 11:
		return 12
	case 12:
		return 11
	default:
		return backend
	}
}
