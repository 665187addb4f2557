package domain

// ContactSource records how a contact entered the system.
type ContactSource string

const (
	ContactSourceWebhook ContactSource = "WEBHOOK"
	ContactSourceManual  ContactSource = "MANUAL"
)

// Contact is a student or lead of a company, unique per (company, email).
type Contact struct {
	ContactID            string        `json:"contactID"`
	CompanyID            string        `json:"companyID"`
	Name                 string        `json:"name"`
	Email                string        `json:"email"`
	Phone                string        `json:"phone"` // E.164 when it could be parsed
	ProductName          string        `json:"productName"`
	Source               ContactSource `json:"source"`
	StudentAccessGranted bool          `json:"studentAccessGranted"`
	AuditFields
}
