package models

// Contact is the row stored in contacts.
type Contact struct {
	ContactID            string  `db:"contact_id"`
	CompanyID            string  `db:"company_id"`
	Name                 string  `db:"name"`
	Email                string  `db:"email"`
	Phone                *string `db:"phone"`
	ProductName          *string `db:"product_name"`
	Source               string  `db:"source"`
	StudentAccessGranted bool    `db:"student_access_granted"`
	AuditFields
}
