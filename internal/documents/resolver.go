// Package documents decides which upload slots are mandatory for the
// document step, given the answers accumulated in earlier steps.
package documents

import "math"

// DocumentType identifies an upload slot.
type DocumentType string

const (
	TypeAadhaar         DocumentType = "AADHAAR"
	TypeSSLCMarksheet   DocumentType = "SSLC_MARKSHEET"
	TypeCategoryCert    DocumentType = "CATEGORY_CERTIFICATE"
	TypeReservationCert DocumentType = "RESERVATION_CERTIFICATE"
	TypeSportsCert      DocumentType = "SPORTS_CERTIFICATE"
	TypeKalolsavamCert  DocumentType = "KALOLSAVAM_CERTIFICATE"
	TypeScholarshipCert DocumentType = "SCHOLARSHIP_CERTIFICATE"
	TypeDisabilityCert  DocumentType = "DISABILITY_CERTIFICATE"
)

// StepData is the merged field bag from all saved steps.
type StepData map[string]interface{}

// Rule defines when one document type is required, and the help-text key
// explaining why, shown next to the slot when the rule fires.
type Rule struct {
	Type           DocumentType
	LabelKey       string
	AlwaysRequired bool
	IsRequired     func(StepData) bool
	HelpTextKey    string
}

// Requirement is one resolved upload slot.
type Requirement struct {
	Type        DocumentType
	LabelKey    string
	HelpTextKey string // empty for always-required slots
}

// hasValue reports whether a field was explicitly set: not nil, not an
// empty string, not NaN. An explicit 0 counts as set, so zero participation
// counts still trigger the matching certificate.
func hasValue(v interface{}) bool {
	switch t := v.(type) {
	case nil:
		return false
	case string:
		return t != ""
	case float64:
		return !math.IsNaN(t)
	default:
		return true
	}
}

func flagTrue(d StepData, field string) bool {
	b, ok := d[field].(bool)
	return ok && b
}

func anySet(d StepData, fields ...string) bool {
	for _, f := range fields {
		if hasValue(d[f]) {
			return true
		}
	}
	return false
}

func hasSportsParticipation(d StepData) bool {
	return anySet(d,
		"sportsStateCount",
		"sportsDistrictFirst",
		"sportsDistrictSecond",
		"sportsDistrictThird",
		"sportsDistrictParticipation",
	)
}

func hasKalolsavamParticipation(d StepData) bool {
	return anySet(d,
		"kalolsavamStateCount",
		"kalolsavamDistrictA",
		"kalolsavamDistrictB",
		"kalolsavamDistrictC",
		"kalolsavamDistrictParticipation",
	)
}

func hasScholarship(d StepData) bool {
	return flagTrue(d, "ntse") || flagTrue(d, "nmms") || flagTrue(d, "uss") || flagTrue(d, "lss")
}

func hasCategory(d StepData) bool {
	return anySet(d, "category", "categoryCode")
}

func hasReservationOrEws(d StepData) bool {
	return flagTrue(d, "ews") || hasCategory(d)
}

// Rules is the full rule table, evaluated independently per type.
var Rules = []Rule{
	{
		Type:           TypeAadhaar,
		LabelKey:       "form.step12.aadhaar",
		AlwaysRequired: true,
	},
	{
		Type:           TypeSSLCMarksheet,
		LabelKey:       "form.step12.sslcMarksheet",
		AlwaysRequired: true,
	},
	{
		Type:        TypeCategoryCert,
		LabelKey:    "form.step12.categoryCertificate",
		IsRequired:  hasCategory,
		HelpTextKey: "form.step12.requiredBecauseCategory",
	},
	{
		Type:        TypeReservationCert,
		LabelKey:    "form.step12.reservationCertificate",
		IsRequired:  hasReservationOrEws,
		HelpTextKey: "form.step12.requiredBecauseReservation",
	},
	{
		Type:        TypeSportsCert,
		LabelKey:    "form.step12.sportsCertificate",
		IsRequired:  hasSportsParticipation,
		HelpTextKey: "form.step12.requiredBecauseSports",
	},
	{
		Type:        TypeKalolsavamCert,
		LabelKey:    "form.step12.kalolsavamCertificate",
		IsRequired:  hasKalolsavamParticipation,
		HelpTextKey: "form.step12.requiredBecauseKalolsavam",
	},
	{
		Type:        TypeScholarshipCert,
		LabelKey:    "form.step12.scholarshipCertificate",
		IsRequired:  hasScholarship,
		HelpTextKey: "form.step12.requiredBecauseScholarship",
	},
	{
		Type:     TypeDisabilityCert,
		LabelKey: "form.step12.disabilityCertificate",
		IsRequired: func(d StepData) bool {
			return flagTrue(d, "differentlyAbled")
		},
		HelpTextKey: "form.step12.requiredBecauseDisability",
	},
}

// Required resolves the mandatory upload slots for the given step data:
// the always-required set unioned with every conditional rule that fires,
// in rule-table order.
func Required(d StepData) []Requirement {
	var out []Requirement
	for _, rule := range Rules {
		switch {
		case rule.AlwaysRequired:
			out = append(out, Requirement{Type: rule.Type, LabelKey: rule.LabelKey})
		case rule.IsRequired != nil && rule.IsRequired(d):
			out = append(out, Requirement{
				Type:        rule.Type,
				LabelKey:    rule.LabelKey,
				HelpTextKey: rule.HelpTextKey,
			})
		}
	}
	return out
}

// RequiredTypes returns just the set of required document types.
func RequiredTypes(d StepData) map[DocumentType]bool {
	set := make(map[DocumentType]bool)
	for _, req := range Required(d) {
		set[req.Type] = true
	}
	return set
}
