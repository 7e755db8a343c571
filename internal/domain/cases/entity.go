package cases

import (
	"strings"
	"time"
)

// ID tipe untuk Application
type ID string

// Status enum
type Status string

const (
	StatusSubmitted   Status = "SUBMITTED"
	StatusInReview    Status = "In Review"
	StatusApproved    Status = "Approved"
	StatusRejected    Status = "Rejected"
	StatusConditional Status = "Conditionally Approved"
)

// NormalizeStatus maps legacy and UI status variations onto the canonical
// enum. Unrecognized values pass through unchanged.
func NormalizeStatus(s string) Status {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "DRAFT", "SUBMITTED":
		return StatusSubmitted
	case "IN_REVIEW", "IN REVIEW":
		return StatusInReview
	case "APPROVED":
		return StatusApproved
	case "REJECTED":
		return StatusRejected
	case "CONDITIONAL APPROVED", "CONDITIONALLY APPROVED":
		return StatusConditional
	}
	return Status(strings.TrimSpace(s))
}

// Aggregate Root: Application (one loan application / case)
type Application struct {
	ID            ID        `json:"application_id"`
	UserID        string    `json:"user_id"`
	Email         string    `json:"email,omitempty"`
	Name          string    `json:"name,omitempty"`
	LoanType      string    `json:"loan_type,omitempty"`
	ApplicantType string    `json:"applicant_type,omitempty"`
	LoanAmount    float64   `json:"loan_amount,omitempty"`
	Status        Status    `json:"status"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`

	Decision      string `json:"case_decision,omitempty"`
	DecisionNotes string `json:"case_notes,omitempty"`
	ReviewedBy    string `json:"reviewed_by,omitempty"`
}

// Decision value object recorded by an administrator on review.
type Decision struct {
	Status     Status `json:"status"`
	Decision   string `json:"decision"`
	Notes      string `json:"notes,omitempty"`
	ReviewedBy string `json:"reviewed_by,omitempty"`
}
