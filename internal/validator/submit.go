package validator

import (
	"fmt"

	"fhsis/internal/domain"
)

// ValidateSubmitPayload checks the shape and types of the composite submit
// body in one pass, before any resolver, guard or writer work. Every
// violation is collected; nothing fails fast.
func ValidateSubmitPayload(p *domain.SubmitReportPayload) *FieldErrors {
	errs := NewFieldErrors()

	if p.M1Report == nil && len(p.M2Report) == 0 {
		errs.Add("m1Report", "At least one report section is required")
		return errs
	}

	// A section payload without its open report id cannot be attached to a
	// submission; reject before touching storage.
	if p.M1Report != nil && p.M1ReportID == nil {
		errs.Add("m1ReportId", "The m1ReportId field is required when m1Report is present")
	}
	if len(p.M2Report) > 0 && p.M2ReportID == nil {
		errs.Add("m2ReportId", "The m2ReportId field is required when m2Report is present")
	}

	if p.M1Report != nil {
		validateM1(p.M1Report, errs)
	}
	for i := range p.M2Report {
		validateMorbidityEntry(i, &p.M2Report[i], errs)
	}

	return errs
}

func validateM1(m1 *domain.M1ReportPayload, errs *FieldErrors) {
	if m1.ProjectedPopulation != nil && *m1.ProjectedPopulation < 0 {
		errs.Add("m1Report.projectedPopulation", "The m1Report.projectedPopulation must be a non-negative integer")
	}

	for i := range m1.FamilyPlanning {
		validateFPEntry(i, &m1.FamilyPlanning[i], errs)
	}
	for i := range m1.ServiceData {
		validateServiceEntry(i, &m1.ServiceData[i], errs)
	}
	for i := range m1.WRA {
		validateWRAEntry(i, &m1.WRA[i], errs)
	}
}

func validateFPEntry(i int, e *domain.FamilyPlanningEntry, errs *FieldErrors) {
	prefix := fmt.Sprintf("m1Report.familyplanning.%d", i)

	if e.AgeCategory == "" {
		errs.Addf(prefix+".age_category", "The %s.age_category field is required", prefix)
	} else if !domain.ValidAgeBrackets[e.AgeCategory] {
		errs.Addf(prefix+".age_category", "The %s.age_category must be a valid age category", prefix)
	}
	if e.FPMethodID == nil {
		errs.Addf(prefix+".fp_method_id", "The %s.fp_method_id field is required", prefix)
	}

	counters := []struct {
		name  string
		value *int
	}{
		{"current_users_beginning_month", e.CurrentUsersBeginningMonth},
		{"new_acceptors_prev_month", e.NewAcceptorsPrevMonth},
		{"other_acceptors_present_month", e.OtherAcceptorsPresentMonth},
		{"drop_outs_present_month", e.DropOutsPresentMonth},
		{"current_users_end_month", e.CurrentUsersEndMonth},
		{"new_acceptors_present_month", e.NewAcceptorsPresentMonth},
	}
	for _, c := range counters {
		field := prefix + "." + c.name
		switch {
		case c.value == nil:
			errs.Addf(field, "The %s field is required", field)
		case *c.value < 0:
			errs.Addf(field, "The %s must be a non-negative integer", field)
		}
	}
}

func validateServiceEntry(i int, e *domain.ServiceDataEntry, errs *FieldErrors) {
	prefix := fmt.Sprintf("m1Report.servicedata.%d", i)

	if e.ServiceID == nil {
		errs.Addf(prefix+".service_id", "The %s.service_id field is required", prefix)
	}
	if e.AgeCategory != "" && !domain.ValidAgeBrackets[e.AgeCategory] {
		errs.Addf(prefix+".age_category", "The %s.age_category must be a valid age category", prefix)
	}
	if e.ValueType != "" {
		if _, ok := domain.ValidValueTypes[e.ValueType]; !ok {
			errs.Addf(prefix+".value_type", "The %s.value_type must be one of male, female, total", prefix)
		}
	}
	if e.Value == nil {
		errs.Addf(prefix+".value", "The %s.value field is required", prefix)
	}
}

func validateWRAEntry(i int, e *domain.WRAEntry, errs *FieldErrors) {
	prefix := fmt.Sprintf("m1Report.wra.%d", i)

	if e.AgeCategory == "" {
		errs.Addf(prefix+".age_category", "The %s.age_category field is required", prefix)
	} else if !domain.ValidAgeBrackets[e.AgeCategory] {
		errs.Addf(prefix+".age_category", "The %s.age_category must be a valid age category", prefix)
	}
	if e.UnmetNeedModernFP == nil {
		errs.Addf(prefix+".unmet_need_modern_fp", "The %s.unmet_need_modern_fp field is required", prefix)
	}
}

func validateMorbidityEntry(i int, e *domain.MorbidityEntry, errs *FieldErrors) {
	prefix := fmt.Sprintf("m2Report.%d", i)

	if e.DiseaseID == nil {
		errs.Addf(prefix+".disease_id", "The %s.disease_id field is required", prefix)
	}
	if e.DiseaseName == "" {
		errs.Addf(prefix+".disease_name", "The %s.disease_name field is required", prefix)
	}
	if e.AgeCategoryID == nil {
		errs.Addf(prefix+".age_category_id", "The %s.age_category_id field is required", prefix)
	}
	for _, c := range []struct {
		name  string
		value *int
	}{{"male", e.Male}, {"female", e.Female}} {
		field := prefix + "." + c.name
		switch {
		case c.value == nil:
			errs.Addf(field, "The %s field is required", field)
		case *c.value < 0:
			errs.Addf(field, "The %s must be a non-negative integer", field)
		}
	}
}

// ValidatePeriodFilter checks the filtered-report request body, naming every
// missing field in one response.
func ValidatePeriodFilter(f *domain.ReportPeriodFilter) *FieldErrors {
	errs := NewFieldErrors()
	if f.ReportMonth == 0 {
		errs.Add("report_month", "The report_month field is required")
	} else if f.ReportMonth < 1 || f.ReportMonth > 12 {
		errs.Add("report_month", "The report_month must be between 1 and 12")
	}
	if f.ReportYear == 0 {
		errs.Add("report_year", "The report_year field is required")
	} else if f.ReportYear < 2000 || f.ReportYear > 2100 {
		errs.Add("report_year", "The report_year must be a valid year")
	}
	return errs
}
