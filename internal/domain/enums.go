package domain

import "time"

// SubmissionStatus represents the lifecycle of a report submission.
type SubmissionStatus string

const (
	SubmissionPending       SubmissionStatus = "pending"
	SubmissionSubmitted     SubmissionStatus = "submitted"
	SubmissionSubmittedLate SubmissionStatus = "submitted late"
)

// Finalized reports whether the submission has reached a terminal status.
func (s SubmissionStatus) Finalized() bool {
	return s == SubmissionSubmitted || s == SubmissionSubmittedLate
}

// SubmissionStatusAt returns the status a submission earns when finalized at
// the given instant. Submitting exactly on the due date is still on time.
func SubmissionStatusAt(dueAt, now time.Time) SubmissionStatus {
	if now.After(dueAt) {
		return SubmissionSubmittedLate
	}
	return SubmissionSubmitted
}

// ApprovalStatus represents the content-review state of a report, tracked
// independently of submission timing.
type ApprovalStatus string

const (
	ApprovalPending  ApprovalStatus = "pending"
	ApprovalApproved ApprovalStatus = "approved"
	ApprovalRejected ApprovalStatus = "rejected"
)

// FormType identifies which monthly FHSIS form a template covers.
type FormType string

const (
	FormM1 FormType = "M1"
	FormM2 FormType = "M2"
)

// UserRole defines the role hierarchy.
type UserRole string

const (
	RoleAdmin   UserRole = "admin"
	RoleEncoder UserRole = "encoder"
)

// AppointmentStatus represents the lifecycle of a citizen appointment.
type AppointmentStatus string

const (
	AppointmentPending   AppointmentStatus = "pending"
	AppointmentConfirmed AppointmentStatus = "confirmed"
	AppointmentCancelled AppointmentStatus = "cancelled"
	AppointmentCompleted AppointmentStatus = "completed"
)

// ValidAppointmentStatuses maps accepted appointment status strings.
var ValidAppointmentStatuses = map[string]AppointmentStatus{
	"pending":   AppointmentPending,
	"confirmed": AppointmentConfirmed,
	"cancelled": AppointmentCancelled,
	"completed": AppointmentCompleted,
}

// ValueType classifies a service-data cell by sex dimension.
type ValueType string

const (
	ValueTypeMale   ValueType = "male"
	ValueTypeFemale ValueType = "female"
	ValueTypeTotal  ValueType = "total"
)

// ValidValueTypes maps accepted value_type strings for service data rows.
var ValidValueTypes = map[string]ValueType{
	"male":   ValueTypeMale,
	"female": ValueTypeFemale,
	"total":  ValueTypeTotal,
}

// AgeBrackets lists the age-category labels a payload may reference, in
// report display order.
var AgeBrackets = []string{"10-14", "15-19", "20-49", "Total"}

// ValidAgeBrackets is the membership set for AgeBrackets.
var ValidAgeBrackets = map[string]bool{
	"10-14": true,
	"15-19": true,
	"20-49": true,
	"Total": true,
}
