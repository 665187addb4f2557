package domain

// Company is the tenant that owns entries, debts, contacts and API keys.
type Company struct {
	CompanyID string `json:"companyID"`
	Name      string `json:"name"`
	Document  string `json:"document"` // CNPJ/CPF, optional
	IsActive  bool   `json:"isActive"`
	AuditFields
}

// MemberRole is a user's role inside one company.
type MemberRole string

const (
	RoleAdmin    MemberRole = "ADMIN"    // manages the company, its members and API keys
	RoleMember   MemberRole = "MEMBER"   // writes entries and debts
	RoleReadOnly MemberRole = "READONLY" // reads only
)

func (r MemberRole) rank() int {
	switch r {
	case RoleAdmin:
		return 3
	case RoleMember:
		return 2
	case RoleReadOnly:
		return 1
	}
	return 0
}

func (r MemberRole) Valid() bool {
	return r.rank() > 0
}

// Allows reports whether r meets or exceeds required.
func (r MemberRole) Allows(required MemberRole) bool {
	return r.Valid() && r.rank() >= required.rank()
}

// CompanyMember links a JWT subject to a company with a role.
type CompanyMember struct {
	CompanyID string     `json:"companyID"`
	UserID    string     `json:"userID"`
	Role      MemberRole `json:"role"`
	AuditFields
}
