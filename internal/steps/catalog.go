package steps

// StepInfo describes one wizard step in both coordinate systems.
type StepInfo struct {
	RouteStep   int    `json:"routeStep"`
	BackendStep int    `json:"backendStep"`
	TitleKey    string `json:"titleKey"`
	// MergedWith points at the route step whose panel renders this schema
	// too. The declaration step (backend 13) has no panel of its own; it is
	// folded into the preferences panel.
	MergedWith int `json:"mergedWith,omitempty"`
}

// Catalog lists all 13 backend steps in route presentation order, with the
// declaration step last. Step schemas in the validation package are looked
// up by backend step number.
var Catalog = []StepInfo{
	{RouteStep: 1, BackendStep: 1, TitleKey: "form.step1.title"},
	{RouteStep: 2, BackendStep: 2, TitleKey: "form.step2.title"},
	{RouteStep: 3, BackendStep: 3, TitleKey: "form.step3.title"},
	{RouteStep: 4, BackendStep: 4, TitleKey: "form.step4.title"},
	{RouteStep: 5, BackendStep: 5, TitleKey: "form.step5.title"},
	{RouteStep: 6, BackendStep: 6, TitleKey: "form.step6.title"},
	{RouteStep: 7, BackendStep: 7, TitleKey: "form.step7.title"},
	{RouteStep: 8, BackendStep: 8, TitleKey: "form.step8.title"},
	{RouteStep: 9, BackendStep: 9, TitleKey: "form.step9.title"},
	{RouteStep: 10, BackendStep: 10, TitleKey: "form.step10.title"},
	{RouteStep: 11, BackendStep: 12, TitleKey: "form.step12.title"},
	{RouteStep: 12, BackendStep: 11, TitleKey: "form.step11.title"},
	{RouteStep: 12, BackendStep: 13, TitleKey: "form.step13.title", MergedWith: 12},
}

// ByBackendStep returns the catalog entry for a backend step number.
func ByBackendStep(backend int) (StepInfo, bool) {
	for _, info := range Catalog {
		if info.BackendStep == backend {
			return info, true
		}
	}
	return StepInfo{}, false
}
