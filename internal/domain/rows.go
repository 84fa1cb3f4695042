package domain

// Joined read rows produced by the report reader queries. Each carries the
// reference labels alongside the stored counts so the formatter never has
// to re-query lookup tables.

// FPJoinedRow is one stored FP cell with its method and age labels.
type FPJoinedRow struct {
	FPMethodID int64  `db:"fp_method_id"`
	MethodName string `db:"method_name"`
	AgeLabel   string `db:"age_label"`
	FPCounters
}

// WRAJoinedRow is one stored WRA cell with its age label.
type WRAJoinedRow struct {
	AgeLabel          string `db:"age_label"`
	UnmetNeedModernFP int    `db:"unmet_need_modern_fp"`
}

// ServiceJoinedRow is one stored service-data cell with its service and
// indicator labels. Optional dimensions stay nullable.
type ServiceJoinedRow struct {
	ServiceID         int64   `db:"service_id"`
	ServiceName       string  `db:"service_name"`
	IndicatorID       *int64  `db:"indicator_id"`
	IndicatorName     *string `db:"indicator_name"`
	ParentIndicatorID *int64  `db:"parent_indicator_id"`
	AgeLabel          *string `db:"age_label"`
	ValueType         *string `db:"value_type"`
	Value             float64 `db:"value"`
	Remarks           string  `db:"remarks"`
}

// MorbidityJoinedRow is one stored morbidity cell with its disease and age
// labels.
type MorbidityJoinedRow struct {
	DiseaseID   int64  `db:"disease_id"`
	DiseaseName string `db:"disease_name"`
	AgeLabel    string `db:"age_label"`
	Male        int    `db:"male"`
	Female      int    `db:"female"`
}

// SubmissionOverviewRow is one submission with its template context, used
// by the admin review listing.
type SubmissionOverviewRow struct {
	SubmissionID   int64            `db:"submission_id" json:"submission_id"`
	ReportStatusID int64            `db:"report_status_id" json:"report_status_id"`
	BarangayID     int64            `db:"barangay_id" json:"barangay_id"`
	BarangayName   string           `db:"barangay_name" json:"barangay_name"`
	ReportMonth    int              `db:"report_month" json:"report_month"`
	ReportYear     int              `db:"report_year" json:"report_year"`
	FormType       FormType         `db:"form_type" json:"form_type"`
	Status         SubmissionStatus `db:"status" json:"status"`
	ApprovalStatus ApprovalStatus   `db:"approval_status" json:"approval_status"`
}
