package documents

import "time"

// ID tipe untuk Document
type ID string

// Type enum: the identity/financial document kinds applicants upload
type Type string

const (
	TypeAadhaar       Type = "aadhaar"
	TypePAN           Type = "pan"
	TypePayslip       Type = "payslip"
	TypeBankStatement Type = "bank_statement"
	TypeCIBILReport   Type = "cibil_report"
	TypeITR           Type = "itr"
	TypeGSTReturn     Type = "gst_return"
	TypePassport      Type = "passport"
	TypeOther         Type = "other"
)

// Status enum
type Status string

const (
	StatusUploaded Status = "uploaded"
	StatusAnalyzed Status = "analyzed"
	StatusFailed   Status = "failed"
)

// Document tracks one uploaded file belonging to a case. The binary lives in
// object storage; this record carries the reference.
type Document struct {
	ID            ID      `json:"document_id"`
	ApplicationID string  `json:"application_id"`
	UserID        string  `json:"user_id,omitempty"`
	Type          Type    `json:"document_type"`
	FileName      string  `json:"file_name"`
	StorageURL    string  `json:"storage_url,omitempty"`
	Status        Status  `json:"status"`
	RiskScore     float64 `json:"risk_score,omitempty"`
	RiskLevel     string  `json:"risk_level,omitempty"`

	UploadedAt time.Time `json:"uploaded_at"`
}
