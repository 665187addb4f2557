package dto

import (
	"time"

	"github.com/SscSPs/edu_backoffice/internal/core/domain"
)

// CreateCompanyRequest defines data for creating a new company.
type CreateCompanyRequest struct {
	Name     string `json:"name" binding:"required,max=255"`
	Document string `json:"document" binding:"omitempty,max=32"`
}

// UpdateCompanyRequest carries the fields that may change. Nil means unchanged.
type UpdateCompanyRequest struct {
	Name     *string `json:"name" binding:"omitempty,min=1,max=255"`
	Document *string `json:"document" binding:"omitempty,max=32"`
	IsActive *bool   `json:"isActive"`
}

type CompanyResponse struct {
	CompanyID     string    `json:"companyID"`
	Name          string    `json:"name"`
	Document      string    `json:"document,omitempty"`
	IsActive      bool      `json:"isActive"`
	CreatedAt     time.Time `json:"createdAt"`
	CreatedBy     string    `json:"createdBy"`
	LastUpdatedAt time.Time `json:"lastUpdatedAt"`
	LastUpdatedBy string    `json:"lastUpdatedBy"`
}

type ListCompaniesParams struct {
	Limit  int `form:"limit,default=20"`
	Offset int `form:"offset,default=0"`
}

type ListCompaniesResponse struct {
	Companies []CompanyResponse `json:"companies"`
}

func ToCompanyResponse(c *domain.Company) CompanyResponse {
	return CompanyResponse{
		CompanyID:     c.CompanyID,
		Name:          c.Name,
		Document:      c.Document,
		IsActive:      c.IsActive,
		CreatedAt:     c.CreatedAt,
		CreatedBy:     c.CreatedBy,
		LastUpdatedAt: c.LastUpdatedAt,
		LastUpdatedBy: c.LastUpdatedBy,
	}
}

func ToListCompaniesResponse(companies []domain.Company) ListCompaniesResponse {
	out := make([]CompanyResponse, len(companies))
	for i := range companies {
		out[i] = ToCompanyResponse(&companies[i])
	}
	return ListCompaniesResponse{Companies: out}
}

// AddMemberRequest grants userID a role in the company, replacing any previous one.
type AddMemberRequest struct {
	UserID string            `json:"userID" binding:"required,max=255"`
	Role   domain.MemberRole `json:"role" binding:"required,oneof=ADMIN MEMBER READONLY"`
}

type MemberResponse struct {
	CompanyID string            `json:"companyID"`
	UserID    string            `json:"userID"`
	Role      domain.MemberRole `json:"role"`
	CreatedAt time.Time         `json:"createdAt"`
	CreatedBy string            `json:"createdBy"`
}

type ListMembersResponse struct {
	Members []MemberResponse `json:"members"`
}

func ToMemberResponse(m *domain.CompanyMember) MemberResponse {
	return MemberResponse{
		CompanyID: m.CompanyID,
		UserID:    m.UserID,
		Role:      m.Role,
		CreatedAt: m.CreatedAt,
		CreatedBy: m.CreatedBy,
	}
}

func ToListMembersResponse(members []domain.CompanyMember) ListMembersResponse {
	out := make([]MemberResponse, len(members))
	for i := range members {
		out[i] = ToMemberResponse(&members[i])
	}
	return ListMembersResponse{Members: out}
}
