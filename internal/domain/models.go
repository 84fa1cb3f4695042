package domain

import "time"

// User represents a health-office user account. Encoders belong to a
// barangay; admins are office-wide.
type User struct {
	ID           int64     `db:"id" json:"id"`
	BarangayID   *int64    `db:"barangay_id" json:"barangay_id"`
	Email        string    `db:"email" json:"email"`
	PasswordHash string    `db:"password_hash" json:"-"`
	FullName     string    `db:"full_name" json:"full_name"`
	Role         UserRole  `db:"role" json:"role"`
	IsActive     bool      `db:"is_active" json:"is_active"`
	CreatedAt    time.Time `db:"created_at" json:"created_at"`
	UpdatedAt    time.Time `db:"updated_at" json:"updated_at"`
}

// Barangay is the smallest administrative unit and the reporting unit for
// health data.
type Barangay struct {
	ID   int64  `db:"id" json:"id"`
	Name string `db:"name" json:"name"`
}

// AgeCategory is a reference age-bracket label resolved by exact match.
type AgeCategory struct {
	ID    int64  `db:"id" json:"id"`
	Label string `db:"label" json:"label"`
}

// FamilyPlanningMethod is a reference FP method resolved by exact name.
type FamilyPlanningMethod struct {
	ID   int64  `db:"id" json:"id"`
	Name string `db:"name" json:"name"`
}

// Service is a reference M1 service grouping (prenatal care, immunization,
// deworming and so on).
type Service struct {
	ID   int64  `db:"id" json:"id"`
	Name string `db:"name" json:"name"`
}

// Indicator is a per-service report line. ParentIndicatorID nests sub-rows
// under header rows for display; aggregation ignores the nesting.
type Indicator struct {
	ID                int64  `db:"id" json:"id"`
	ServiceID         int64  `db:"service_id" json:"service_id"`
	Name              string `db:"name" json:"name"`
	ParentIndicatorID *int64 `db:"parent_indicator_id" json:"parent_indicator_id"`
}

// Disease is a reference morbidity entry resolved by exact name.
type Disease struct {
	ID   int64  `db:"id" json:"id"`
	Name string `db:"name" json:"name"`
}

// ReportSubmissionTemplate is the reporting obligation an encoder must
// fulfill: one barangay, one month+year period, one form, one due date.
type ReportSubmissionTemplate struct {
	ID          int64     `db:"id" json:"id"`
	BarangayID  int64     `db:"barangay_id" json:"barangay_id"`
	ReportMonth int       `db:"report_month" json:"report_month"`
	ReportYear  int       `db:"report_year" json:"report_year"`
	FormType    FormType  `db:"form_type" json:"form_type"`
	DueAt       time.Time `db:"due_at" json:"due_at"`
	CreatedAt   time.Time `db:"created_at" json:"created_at"`
}

// ReportSubmission is one attempt to fulfill a template. Once finalized it
// is immutable for its (barangay, template) pair.
type ReportSubmission struct {
	ID          int64            `db:"id" json:"id"`
	TemplateID  int64            `db:"template_id" json:"template_id"`
	Status      SubmissionStatus `db:"status" json:"status"`
	SubmittedAt *time.Time       `db:"submitted_at" json:"submitted_at"`
	CreatedAt   time.Time        `db:"created_at" json:"created_at"`
	UpdatedAt   time.Time        `db:"updated_at" json:"updated_at"`
}

// ReportStatus carries the content-approval state of a submission,
// decoupled from submission-timing status. All report rows hang off it.
type ReportStatus struct {
	ID             int64          `db:"id" json:"id"`
	SubmissionID   int64          `db:"submission_id" json:"submission_id"`
	ApprovalStatus ApprovalStatus `db:"approval_status" json:"approval_status"`
	ReviewedBy     *int64         `db:"reviewed_by" json:"reviewed_by"`
	ReviewedAt     *time.Time     `db:"reviewed_at" json:"reviewed_at"`
}

// FPCounters holds the six monthly family-planning counters.
type FPCounters struct {
	CurrentUsersBeginningMonth int `db:"current_users_beginning_month" json:"current_users_beginning_month"`
	NewAcceptorsPrevMonth      int `db:"new_acceptors_prev_month" json:"new_acceptors_prev_month"`
	OtherAcceptorsPresentMonth int `db:"other_acceptors_present_month" json:"other_acceptors_present_month"`
	DropOutsPresentMonth       int `db:"drop_outs_present_month" json:"drop_outs_present_month"`
	CurrentUsersEndMonth       int `db:"current_users_end_month" json:"current_users_end_month"`
	NewAcceptorsPresentMonth   int `db:"new_acceptors_present_month" json:"new_acceptors_present_month"`
}

// Add accumulates other into c.
func (c *FPCounters) Add(other FPCounters) {
	c.CurrentUsersBeginningMonth += other.CurrentUsersBeginningMonth
	c.NewAcceptorsPrevMonth += other.NewAcceptorsPrevMonth
	c.OtherAcceptorsPresentMonth += other.OtherAcceptorsPresentMonth
	c.DropOutsPresentMonth += other.DropOutsPresentMonth
	c.CurrentUsersEndMonth += other.CurrentUsersEndMonth
	c.NewAcceptorsPresentMonth += other.NewAcceptorsPresentMonth
}

// FamilyPlanningReportRow is one (method, age category) cell of the M1 FP
// section.
type FamilyPlanningReportRow struct {
	ID             int64 `db:"id" json:"id"`
	ReportStatusID int64 `db:"report_status_id" json:"report_status_id"`
	FPMethodID     int64 `db:"fp_method_id" json:"fp_method_id"`
	AgeCategoryID  int64 `db:"age_category_id" json:"age_category_id"`
	FPCounters
}

// ServiceDataRow is one M1 service-data cell. Indicator, age category and
// value type are optional dimensions; not every service carries all three.
type ServiceDataRow struct {
	ID             int64   `db:"id" json:"id"`
	ReportStatusID int64   `db:"report_status_id" json:"report_status_id"`
	ServiceID      int64   `db:"service_id" json:"service_id"`
	IndicatorID    *int64  `db:"indicator_id" json:"indicator_id"`
	AgeCategoryID  *int64  `db:"age_category_id" json:"age_category_id"`
	ValueType      *string `db:"value_type" json:"value_type"`
	Value          float64 `db:"value" json:"value"`
	Remarks        string  `db:"remarks" json:"remarks"`
}

// WomenOfReproductiveAgeRow is one per-age-category unmet-need count.
type WomenOfReproductiveAgeRow struct {
	ID                int64 `db:"id" json:"id"`
	ReportStatusID    int64 `db:"report_status_id" json:"report_status_id"`
	AgeCategoryID     int64 `db:"age_category_id" json:"age_category_id"`
	UnmetNeedModernFP int   `db:"unmet_need_modern_fp" json:"unmet_need_modern_fp"`
}

// MorbidityReportRow is one (disease, age category) cell of the M2 form.
type MorbidityReportRow struct {
	ID             int64 `db:"id" json:"id"`
	ReportStatusID int64 `db:"report_status_id" json:"report_status_id"`
	DiseaseID      int64 `db:"disease_id" json:"disease_id"`
	AgeCategoryID  int64 `db:"age_category_id" json:"age_category_id"`
	Male           int   `db:"male" json:"male"`
	Female         int   `db:"female" json:"female"`
}

// AppointmentCategory is a bookable appointment type.
type AppointmentCategory struct {
	ID   int64  `db:"id" json:"id"`
	Name string `db:"name" json:"name"`
}

// Appointment is a citizen booking against a category.
type Appointment struct {
	ID          int64             `db:"id" json:"id"`
	CategoryID  int64             `db:"category_id" json:"category_id"`
	BarangayID  *int64            `db:"barangay_id" json:"barangay_id"`
	PatientName string            `db:"patient_name" json:"patient_name"`
	Phone       string            `db:"phone" json:"phone"`
	Email       string            `db:"email" json:"email"`
	ScheduledAt time.Time         `db:"scheduled_at" json:"scheduled_at"`
	Status      AppointmentStatus `db:"status" json:"status"`
	CreatedAt   time.Time         `db:"created_at" json:"created_at"`
	UpdatedAt   time.Time         `db:"updated_at" json:"updated_at"`
}

// ReportPeriodFilter selects one barangay's reporting period.
type ReportPeriodFilter struct {
	BarangayID  *int64 `json:"barangay_id"`
	ReportMonth int    `json:"report_month"`
	ReportYear  int    `json:"report_year"`
}
