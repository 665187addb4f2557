package services_test

import (
	"context"
	"testing"

	"github.com/SscSPs/edu_backoffice/internal/apperrors"
	"github.com/SscSPs/edu_backoffice/internal/core/domain"
	portssvc "github.com/SscSPs/edu_backoffice/internal/core/ports/services"
	"github.com/SscSPs/edu_backoffice/internal/core/services"
	"github.com/SscSPs/edu_backoffice/internal/dto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type CompanyServiceTestSuite struct {
	suite.Suite
	repo    *MockCompanyRepository
	service portssvc.CompanySvcFacade
	ctx     context.Context
}

func (suite *CompanyServiceTestSuite) SetupTest() {
	suite.repo = new(MockCompanyRepository)
	suite.service = services.NewCompanyService(suite.repo)
	suite.ctx = context.Background()
}

func (suite *CompanyServiceTestSuite) member(companyID, userID string, role domain.MemberRole) {
	suite.repo.On("FindMember", mock.Anything, companyID, userID).
		Return(&domain.CompanyMember{CompanyID: companyID, UserID: userID, Role: role}, nil)
}

func (suite *CompanyServiceTestSuite) TestCreateCompany_CreatorBecomesAdmin() {
	var savedID string
	suite.repo.On("SaveCompany", mock.Anything,
		mock.MatchedBy(func(c domain.Company) bool {
			savedID = c.CompanyID
			return c.Name == "Escola Alfa" && c.IsActive && c.CreatedBy == "u1" && c.CompanyID != ""
		}),
		mock.MatchedBy(func(m domain.CompanyMember) bool {
			return m.UserID == "u1" && m.Role == domain.RoleAdmin && m.CompanyID == savedID
		}),
	).Return(nil).Once()

	company, err := suite.service.CreateCompany(suite.ctx, dto.CreateCompanyRequest{Name: " Escola Alfa "}, "u1")

	suite.Require().NoError(err)
	suite.Equal("Escola Alfa", company.Name)
	suite.repo.AssertExpectations(suite.T())
}

func (suite *CompanyServiceTestSuite) TestCreateCompany_SaveError() {
	suite.repo.On("SaveCompany", mock.Anything, mock.Anything, mock.Anything).Return(assert.AnError).Once()

	company, err := suite.service.CreateCompany(suite.ctx, dto.CreateCompanyRequest{Name: "Escola"}, "u1")

	suite.Nil(company)
	suite.ErrorIs(err, assert.AnError)
}

func (suite *CompanyServiceTestSuite) TestGetCompanyByID_NotFound() {
	suite.member("missing", "u1", domain.RoleAdmin)
	suite.repo.On("FindCompanyByID", mock.Anything, "missing").Return(nil, apperrors.ErrNotFound).Once()

	_, err := suite.service.GetCompanyByID(suite.ctx, "missing", "u1")

	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.Equal("Empresa não encontrada", apperrors.UserMessage(err, ""))
}

func (suite *CompanyServiceTestSuite) TestGetCompanyByID_NonMemberIsForbidden() {
	suite.repo.On("FindMember", mock.Anything, "c1", "stranger").Return(nil, apperrors.ErrNotFound).Once()

	_, err := suite.service.GetCompanyByID(suite.ctx, "c1", "stranger")

	suite.ErrorIs(err, apperrors.ErrForbidden)
	suite.repo.AssertNotCalled(suite.T(), "FindCompanyByID", mock.Anything, mock.Anything)
}

func (suite *CompanyServiceTestSuite) TestUpdateCompany_AppliesProvidedFields() {
	suite.member("c1", "u2", domain.RoleAdmin)
	existing := &domain.Company{CompanyID: "c1", Name: "Antiga", Document: "123", IsActive: true}
	suite.repo.On("FindCompanyByID", mock.Anything, "c1").Return(existing, nil).Once()
	suite.repo.On("UpdateCompany", mock.Anything, mock.MatchedBy(func(c domain.Company) bool {
		return c.Name == "Nova" && c.Document == "123" && !c.IsActive && c.LastUpdatedBy == "u2"
	})).Return(nil).Once()

	name := "Nova"
	inactive := false
	company, err := suite.service.UpdateCompany(suite.ctx, "c1", dto.UpdateCompanyRequest{Name: &name, IsActive: &inactive}, "u2")

	suite.Require().NoError(err)
	suite.False(company.IsActive)
	suite.repo.AssertExpectations(suite.T())
}

func (suite *CompanyServiceTestSuite) TestUpdateCompany_ReactivatesInactiveCompany() {
	suite.member("c1", "u2", domain.RoleAdmin)
	suite.repo.On("FindCompanyByID", mock.Anything, "c1").Return(&domain.Company{CompanyID: "c1", Name: "Escola"}, nil).Once()
	suite.repo.On("UpdateCompany", mock.Anything, mock.MatchedBy(func(c domain.Company) bool { return c.IsActive })).Return(nil).Once()

	active := true
	company, err := suite.service.UpdateCompany(suite.ctx, "c1", dto.UpdateCompanyRequest{IsActive: &active}, "u2")

	suite.Require().NoError(err)
	suite.True(company.IsActive)
}

func (suite *CompanyServiceTestSuite) TestUpdateCompany_MemberIsForbidden() {
	suite.member("c1", "u3", domain.RoleMember)

	name := "Nova"
	_, err := suite.service.UpdateCompany(suite.ctx, "c1", dto.UpdateCompanyRequest{Name: &name}, "u3")

	suite.ErrorIs(err, apperrors.ErrForbidden)
	suite.repo.AssertNotCalled(suite.T(), "UpdateCompany", mock.Anything, mock.Anything)
}

func (suite *CompanyServiceTestSuite) TestEnsureActiveCompany() {
	suite.repo.On("FindCompanyByID", mock.Anything, "active").Return(&domain.Company{CompanyID: "active", IsActive: true}, nil).Once()
	suite.repo.On("FindCompanyByID", mock.Anything, "inactive").Return(&domain.Company{CompanyID: "inactive"}, nil).Once()
	suite.repo.On("FindCompanyByID", mock.Anything, "missing").Return(nil, apperrors.ErrNotFound).Once()

	suite.NoError(suite.service.EnsureActiveCompany(suite.ctx, "active"))
	suite.ErrorIs(suite.service.EnsureActiveCompany(suite.ctx, "inactive"), apperrors.ErrForbidden)
	suite.ErrorIs(suite.service.EnsureActiveCompany(suite.ctx, "missing"), apperrors.ErrNotFound)
}

func (suite *CompanyServiceTestSuite) TestEnsureCompanyAccess_RoleHierarchy() {
	suite.repo.On("FindCompanyByID", mock.Anything, "c1").Return(&domain.Company{CompanyID: "c1", IsActive: true}, nil)
	suite.member("c1", "admin", domain.RoleAdmin)
	suite.member("c1", "clerk", domain.RoleMember)
	suite.member("c1", "viewer", domain.RoleReadOnly)
	suite.repo.On("FindMember", mock.Anything, "c1", "stranger").Return(nil, apperrors.ErrNotFound)

	tests := []struct {
		user     string
		required domain.MemberRole
		allowed  bool
	}{
		{"admin", domain.RoleAdmin, true},
		{"admin", domain.RoleReadOnly, true},
		{"clerk", domain.RoleMember, true},
		{"clerk", domain.RoleAdmin, false},
		{"viewer", domain.RoleReadOnly, true},
		{"viewer", domain.RoleMember, false},
		{"stranger", domain.RoleReadOnly, false},
	}
	for _, tt := range tests {
		suite.Run(tt.user+"/"+string(tt.required), func() {
			err := suite.service.EnsureCompanyAccess(suite.ctx, tt.user, "c1", tt.required)
			if tt.allowed {
				suite.NoError(err)
			} else {
				suite.ErrorIs(err, apperrors.ErrForbidden)
			}
		})
	}
}

func (suite *CompanyServiceTestSuite) TestEnsureCompanyAccess_InactiveCompany() {
	suite.member("c1", "admin", domain.RoleAdmin)
	suite.repo.On("FindCompanyByID", mock.Anything, "c1").Return(&domain.Company{CompanyID: "c1"}, nil).Once()

	err := suite.service.EnsureCompanyAccess(suite.ctx, "admin", "c1", domain.RoleReadOnly)

	suite.ErrorIs(err, apperrors.ErrForbidden)
	suite.Equal("Empresa inativa", apperrors.UserMessage(err, ""))
}

func (suite *CompanyServiceTestSuite) TestListCompanies_ScopedToUserAndClamped() {
	suite.repo.On("ListCompaniesByUserID", mock.Anything, "u1", 100, 0).Return(nil, nil).Once()

	companies, err := suite.service.ListCompanies(suite.ctx, dto.ListCompaniesParams{Limit: 5000, Offset: -3}, "u1")

	suite.Require().NoError(err)
	suite.NotNil(companies)
	suite.Empty(companies)
	suite.repo.AssertExpectations(suite.T())
}

func (suite *CompanyServiceTestSuite) TestAddMember_AdminGrantsRole() {
	suite.member("c1", "admin", domain.RoleAdmin)
	suite.repo.On("FindCompanyByID", mock.Anything, "c1").Return(&domain.Company{CompanyID: "c1", IsActive: true}, nil).Once()
	suite.repo.On("SaveMember", mock.Anything, mock.MatchedBy(func(m domain.CompanyMember) bool {
		return m.CompanyID == "c1" && m.UserID == "u9" && m.Role == domain.RoleReadOnly && m.CreatedBy == "admin"
	})).Return(nil).Once()

	member, err := suite.service.AddMember(suite.ctx, "c1", dto.AddMemberRequest{UserID: " u9 ", Role: domain.RoleReadOnly}, "admin")

	suite.Require().NoError(err)
	suite.Equal("u9", member.UserID)
	suite.repo.AssertExpectations(suite.T())
}

func (suite *CompanyServiceTestSuite) TestAddMember_Rejections() {
	suite.member("c1", "admin", domain.RoleAdmin)
	suite.member("c1", "clerk", domain.RoleMember)
	suite.repo.On("FindCompanyByID", mock.Anything, "c1").Return(&domain.Company{CompanyID: "c1", IsActive: true}, nil)

	_, err := suite.service.AddMember(suite.ctx, "c1", dto.AddMemberRequest{UserID: "u9", Role: domain.RoleAdmin}, "clerk")
	suite.ErrorIs(err, apperrors.ErrForbidden)

	_, err = suite.service.AddMember(suite.ctx, "c1", dto.AddMemberRequest{UserID: "admin", Role: domain.RoleReadOnly}, "admin")
	suite.ErrorIs(err, apperrors.ErrValidation)

	_, err = suite.service.AddMember(suite.ctx, "c1", dto.AddMemberRequest{UserID: "u9", Role: "OWNER"}, "admin")
	suite.ErrorIs(err, apperrors.ErrValidation)

	suite.repo.AssertNotCalled(suite.T(), "SaveMember", mock.Anything, mock.Anything)
}

func TestCompanyService(t *testing.T) {
	suite.Run(t, new(CompanyServiceTestSuite))
}
