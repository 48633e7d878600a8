package validation

// Step schemas, keyed by backend step number. Field lists mirror the
// backend's step payloads; rules encode the cross-field refinements.

var (
	genderValues   = []string{"Male", "Female", "Others"}
	categoryValues = []string{"General", "OBC", "SC", "ST"}
)

// step1: qualifying examination.
var step1 = &Schema{
	BackendStep: 1,
	Fields: []FieldSpec{
		{Name: "examCode", Kind: KindText},
		{Name: "examName", Kind: KindText},
		{Name: "examNameOther", Kind: KindText},
		{Name: "registerNumber", Kind: KindText},
		{Name: "passingMonth", Kind: KindNumeric},
		{Name: "passingYear", Kind: KindNumeric},
		{Name: "schoolCode", Kind: KindText},
		{Name: "schoolName", Kind: KindText},
		{Name: "passedBoardExam", Kind: KindFlag},
	},
	Rules: []Rule{
		requireText("examCode", "Exam code is required"),
	},
}

// step2: applicant details.
var step2 = &Schema{
	BackendStep: 2,
	Fields: []FieldSpec{
		{Name: "applicantName", Kind: KindText},
		{Name: "aadhaarNumber", Kind: KindText},
		{Name: "gender", Kind: KindText},
		{Name: "category", Kind: KindText},
		{Name: "categoryCode", Kind: KindText},
		{Name: "dateOfBirth", Kind: KindText},
		{Name: "motherName", Kind: KindText},
		{Name: "fatherName", Kind: KindText},
		{Name: "email", Kind: KindText},
		{Name: "ews", Kind: KindFlag},
	},
	Rules: []Rule{
		requireText("applicantName", "Applicant name is required"),
		enumWhenPresent("gender", genderValues, "Gender must be Male, Female or Others"),
		enumWhenPresent("category", categoryValues, "Category must be General, OBC, SC or ST"),
	},
}

// step3: special categories. The disability percentage becomes mandatory
// and range-checked only once a disability type is selected.
var step3 = &Schema{
	BackendStep: 3,
	Fields: []FieldSpec{
		{Name: "oec", Kind: KindFlag},
		{Name: "linguisticMinority", Kind: KindFlag},
		{Name: "linguisticLanguage", Kind: KindText},
		{Name: "differentlyAbled", Kind: KindFlag},
		{Name: "differentlyAbledTypes", Kind: KindList},
		{Name: "differentlyAbledPercentage", Kind: KindNumeric},
	},
	Rules: []Rule{
		rangeWhenTriggered("differentlyAbledPercentage", "differentlyAbledTypes", 0, 100),
	},
}

// step4: residence and address.
var step4 = &Schema{
	BackendStep: 4,
	Fields: []FieldSpec{
		{Name: "nativeState", Kind: KindText},
		{Name: "nativeDistrict", Kind: KindText},
		{Name: "nativeTaluk", Kind: KindText},
		{Name: "nativePanchayat", Kind: KindText},
		{Name: "permanentAddress", Kind: KindText},
		{Name: "permanentPinCode", Kind: KindText},
		{Name: "communicationAddress", Kind: KindText},
		{Name: "communicationPinCode", Kind: KindText},
		{Name: "phone", Kind: KindText},
		{Name: "email", Kind: KindText},
	},
	Rules: []Rule{
		exactDigitsWhenPresent("permanentPinCode", 6, "PIN code must be exactly 6 digits"),
		exactDigitsWhenPresent("communicationPinCode", 6, "PIN code must be exactly 6 digits"),
		minLengthWhenPresent("phone", 10, "Phone must be at least 10 digits"),
	},
}

// step5: grace and bonus marks. Flags only, nothing to refine.
var step5 = &Schema{
	BackendStep: 5,
	Fields: []FieldSpec{
		{Name: "graceMarks", Kind: KindFlag},
		{Name: "ncc", Kind: KindFlag},
		{Name: "scouts", Kind: KindFlag},
		{Name: "spc", Kind: KindFlag},
		{Name: "defenceDependent", Kind: KindFlag},
		{Name: "littleKitesGrade", Kind: KindText},
	},
}

// step6: sports participation counts.
var step6 = &Schema{
	BackendStep: 6,
	Fields: []FieldSpec{
		{Name: "sportsStateCount", Kind: KindNumeric},
		{Name: "sportsDistrictFirst", Kind: KindNumeric},
		{Name: "sportsDistrictSecond", Kind: KindNumeric},
		{Name: "sportsDistrictThird", Kind: KindNumeric},
		{Name: "sportsDistrictParticipation", Kind: KindNumeric},
	},
}

// step7: kalolsavam participation counts.
var step7 = &Schema{
	BackendStep: 7,
	Fields: []FieldSpec{
		{Name: "kalolsavamStateCount", Kind: KindNumeric},
		{Name: "kalolsavamDistrictA", Kind: KindNumeric},
		{Name: "kalolsavamDistrictB", Kind: KindNumeric},
		{Name: "kalolsavamDistrictC", Kind: KindNumeric},
		{Name: "kalolsavamDistrictParticipation", Kind: KindNumeric},
	},
}

// step8: scholarships.
var step8 = &Schema{
	BackendStep: 8,
	Fields: []FieldSpec{
		{Name: "ntse", Kind: KindFlag},
		{Name: "nmms", Kind: KindFlag},
		{Name: "uss", Kind: KindFlag},
		{Name: "lss", Kind: KindFlag},
	},
}

// step9: co-curricular grades.
var step9 = &Schema{
	BackendStep: 9,
	Fields: []FieldSpec{
		{Name: "scienceFairGrade", Kind: KindText},
		{Name: "mathsFairGrade", Kind: KindText},
		{Name: "itFairGrade", Kind: KindText},
		{Name: "workExperienceGrade", Kind: KindText},
		{Name: "clubs", Kind: KindList},
	},
}

// step10: SSLC attempts and marks. The previous-attempts table must match
// the declared attempt count once both are filled in; an empty table is
// tolerated as "not yet filled in" even when attempts >= 1.
var step10 = &Schema{
	BackendStep: 10,
	Fields: []FieldSpec{
		{Name: "sslcAttempts", Kind: KindNumeric},
		{Name: "previousAttempts", Kind: KindList},
		{Name: "subjectGrade_English", Kind: KindText},
		{Name: "subjectGrade_Malayalam", Kind: KindText},
		{Name: "subjectGrade_Hindi", Kind: KindText},
		{Name: "subjectGrade_Mathematics", Kind: KindText},
		{Name: "subjectGrade_Science", Kind: KindText},
		{Name: "subjectGrade_SocialScience", Kind: KindText},
	},
	Rules: []Rule{
		{
			Name: "previousAttempts.lengthMatch",
			Check: func(data Fields) *FieldError {
				n, ok := asNumber(data["sslcAttempts"])
				if !ok || n < 1 {
					return nil
				}
				prev := asList(data["previousAttempts"])
				if len(prev) == 0 {
					return nil
				}
				if len(prev) != int(n) {
					return &FieldError{
						Field:   "previousAttempts",
						Code:    "LENGTH_MISMATCH",
						Message: "Number of previous attempts must match the number of attempts specified",
					}
				}
				return nil
			},
		},
	},
}

// step11: preferences and final-submit disclaimer.
var step11 = &Schema{
	BackendStep: 11,
	Fields: []FieldSpec{
		{Name: "preferences", Kind: KindList},
		{Name: "disclaimerAccepted", Kind: KindFlag},
	},
	Rules: []Rule{
		requireAcceptance("disclaimerAccepted", "You must accept the disclaimer"),
	},
}

// step12: document uploads. Requirement rules live in the documents
// package; the step itself has no field refinements.
var step12 = &Schema{
	BackendStep: 12,
	Fields: []FieldSpec{
		{Name: "documents", Kind: KindList},
	},
}

// step13: declaration. Shares the preferences panel but keeps its own
// schema.
var step13 = &Schema{
	BackendStep: 13,
	Fields: []FieldSpec{
		{Name: "disclaimerAccepted", Kind: KindFlag},
	},
	Rules: []Rule{
		requireAcceptance("disclaimerAccepted", "You must accept the disclaimer"),
	},
}

var schemas = map[int]*Schema{
	1: step1, 2: step2, 3: step3, 4: step4, 5: step5, 6: step6, 7: step7,
	8: step8, 9: step9, 10: step10, 11: step11, 12: step12, 13: step13,
}

// ForBackendStep returns the schema for a backend step number.
func ForBackendStep(backend int) (*Schema, bool) {
	s, ok := schemas[backend]
	return s, ok
}
