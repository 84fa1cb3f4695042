package domain

// Nested read shapes returned by the filtered report endpoints. These mirror
// what the form views render: flat storage rows regrouped per method,
// indicator or disease, with derived totals computed at read time and never
// stored.

// FPMethodReport is one FP method with its per-age-category counters.
type FPMethodReport struct {
	MethodID      int64                 `json:"method_id"`
	MethodName    string                `json:"method_name"`
	AgeCategories map[string]FPCounters `json:"age_categories"`
}

// FPTotals holds per-age-category sums of the six counters across all
// methods.
type FPTotals struct {
	TotalCurrentUsersBeginningMonth int `json:"total_current_users_beginning_month"`
	TotalNewAcceptorsPrevMonth      int `json:"total_new_acceptors_prev_month"`
	TotalOtherAcceptorsPresentMonth int `json:"total_other_acceptors_present_month"`
	TotalDropOutsPresentMonth       int `json:"total_drop_outs_present_month"`
	TotalCurrentUsersEndMonth       int `json:"total_current_users_end_month"`
	TotalNewAcceptorsPresentMonth   int `json:"total_new_acceptors_present_month"`
}

// FamilyPlanningReport is the nested FP shape for one barangay period.
type FamilyPlanningReport struct {
	ProjectedPopulation int                 `json:"projected_population"`
	Methods             []FPMethodReport    `json:"methods"`
	Totals              map[string]FPTotals `json:"totals"`
}

// WRAReport is the per-age-category unmet-need shape. Total and Age15To49
// are derived sums, recomputed on every read.
type WRAReport struct {
	AgeCategories map[string]int `json:"age_categories"`
	Total         int            `json:"total"`
	Age15To49     int            `json:"15-49"`
}

// ServiceIndicatorReport is one indicator line of the service-data shape.
type ServiceIndicatorReport struct {
	IndicatorID       int64                       `json:"indicator_id"`
	IndicatorName     string                      `json:"indicator_name"`
	ParentIndicatorID *int64                      `json:"parent_indicator_id"`
	ServiceID         int64                       `json:"service_id"`
	ServiceName       string                      `json:"service_name"`
	Male              float64                     `json:"male"`
	Female            float64                     `json:"female"`
	Total             float64                     `json:"total"`
	Remarks           string                      `json:"remarks"`
	AgeCategories     map[string]ServiceCellGroup `json:"age_categories,omitempty"`
}

// ServiceCellGroup holds the per-value-type cells within one age category.
type ServiceCellGroup struct {
	Male   float64 `json:"male"`
	Female float64 `json:"female"`
	Total  float64 `json:"total"`
}

// MorbidityCell is the male/female pair for one age bracket.
type MorbidityCell struct {
	M int `json:"M"`
	F int `json:"F"`
}

// DiseaseReport is one disease with its per-age-category cells. The "Total"
// bucket is synthesized from the real age categories at read time.
type DiseaseReport struct {
	DiseaseID     int64                    `json:"disease_id"`
	DiseaseName   string                   `json:"disease_name"`
	AgeCategories map[string]MorbidityCell `json:"age_categories"`
}

// FPFlatRow is a flat FP row joined with its reference names, used by the
// unfiltered listing endpoints.
type FPFlatRow struct {
	ID           int64  `db:"id" json:"id"`
	BarangayName string `db:"barangay_name" json:"barangay_name"`
	ReportMonth  int    `db:"report_month" json:"report_month"`
	ReportYear   int    `db:"report_year" json:"report_year"`
	MethodName   string `db:"method_name" json:"method_name"`
	AgeCategory  string `db:"age_category" json:"age_category"`
	FPCounters
}

// WRAFlatRow is a flat WRA row joined with its reference names.
type WRAFlatRow struct {
	ID                int64  `db:"id" json:"id"`
	BarangayName      string `db:"barangay_name" json:"barangay_name"`
	ReportMonth       int    `db:"report_month" json:"report_month"`
	ReportYear        int    `db:"report_year" json:"report_year"`
	AgeCategory       string `db:"age_category" json:"age_category"`
	UnmetNeedModernFP int    `db:"unmet_need_modern_fp" json:"unmet_need_modern_fp"`
}

// FlatRowFilter narrows the unfiltered listing endpoints.
type FlatRowFilter struct {
	BarangayName string `json:"barangayName"`
	Year         int    `json:"year"`
}
