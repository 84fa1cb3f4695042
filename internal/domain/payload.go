package domain

// SubmitReportPayload is the composite body of POST /api/statuses/submit/report.
// The client assembles the whole month's draft locally and submits it once;
// there is no incremental save on the server side.
//
// Numeric fields are pointers so the validator can tell "absent" from zero
// and report every missing field in one pass.
type SubmitReportPayload struct {
	M1Report   *M1ReportPayload     `json:"m1Report"`
	M2Report   []MorbidityEntry     `json:"m2Report"`
	M1ReportID *int64               `json:"m1ReportId"`
	M2ReportID *int64               `json:"m2ReportId"`
}

// M1ReportPayload holds the three M1 sections plus the projected population.
type M1ReportPayload struct {
	ProjectedPopulation *int                 `json:"projectedPopulation"`
	FamilyPlanning      []FamilyPlanningEntry `json:"familyplanning"`
	ServiceData         []ServiceDataEntry    `json:"servicedata"`
	WRA                 []WRAEntry            `json:"wra"`
}

// FamilyPlanningEntry is one (method, age category) line of the FP section.
// AgeCategory is the human-readable bracket label; the resolver maps it to
// its reference id at submit time.
type FamilyPlanningEntry struct {
	AgeCategory                string `json:"age_category"`
	FPMethodID                 *int64 `json:"fp_method_id"`
	CurrentUsersBeginningMonth *int   `json:"current_users_beginning_month"`
	NewAcceptorsPrevMonth      *int   `json:"new_acceptors_prev_month"`
	OtherAcceptorsPresentMonth *int   `json:"other_acceptors_present_month"`
	DropOutsPresentMonth       *int   `json:"drop_outs_present_month"`
	CurrentUsersEndMonth       *int   `json:"current_users_end_month"`
	NewAcceptorsPresentMonth   *int   `json:"new_acceptors_present_month"`
}

// Counters returns the six counters with absent values treated as zero.
// Only meaningful after validation has confirmed all six are present.
func (e *FamilyPlanningEntry) Counters() FPCounters {
	return FPCounters{
		CurrentUsersBeginningMonth: deref(e.CurrentUsersBeginningMonth),
		NewAcceptorsPrevMonth:      deref(e.NewAcceptorsPrevMonth),
		OtherAcceptorsPresentMonth: deref(e.OtherAcceptorsPresentMonth),
		DropOutsPresentMonth:       deref(e.DropOutsPresentMonth),
		CurrentUsersEndMonth:       deref(e.CurrentUsersEndMonth),
		NewAcceptorsPresentMonth:   deref(e.NewAcceptorsPresentMonth),
	}
}

// ServiceDataEntry is one service-data cell. Indicator, age category and
// value type are optional depending on the service shape.
type ServiceDataEntry struct {
	ServiceID   *int64   `json:"service_id"`
	IndicatorID *int64   `json:"indicator_id"`
	AgeCategory string   `json:"age_category"`
	ValueType   string   `json:"value_type"`
	Value       *float64 `json:"value"`
	Remarks     string   `json:"remarks"`
}

// WRAEntry is one women-of-reproductive-age unmet-need line.
type WRAEntry struct {
	AgeCategory       string `json:"age_category"`
	UnmetNeedModernFP *int   `json:"unmet_need_modern_fp"`
}

// MorbidityEntry is one (disease, age category) line of the M2 form.
// DiseaseName travels alongside DiseaseID so the resolver can cross-check
// the id against the reference table.
type MorbidityEntry struct {
	DiseaseID     *int64 `json:"disease_id"`
	DiseaseName   string `json:"disease_name"`
	AgeCategoryID *int64 `json:"age_category_id"`
	Male          *int   `json:"male"`
	Female        *int   `json:"female"`
}

func deref(p *int) int {
	if p == nil {
		return 0
	}
	return *p
}
