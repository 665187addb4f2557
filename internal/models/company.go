package models

// Company is the row stored in companies.
type Company struct {
	CompanyID string  `db:"company_id"`
	Name      string  `db:"name"`
	Document  *string `db:"document"`
	IsActive  bool    `db:"is_active"`
	AuditFields
}

// CompanyMember is the row stored in company_members.
type CompanyMember struct {
	CompanyID string `db:"company_id"`
	UserID    string `db:"user_id"`
	Role      string `db:"role"`
	AuditFields
}
