package services

import (
	"context"
	"log/slog"
	"time"

	"github.com/SscSPs/edu_backoffice/internal/core/domain"
	portssvc "github.com/SscSPs/edu_backoffice/internal/core/ports/services"
	"github.com/SscSPs/edu_backoffice/internal/middleware"
)

const msgAmountPrecision = "O valor deve ter no máximo duas casas decimais"

// BaseService provides common functionality for all services
type BaseService struct {
	CompanyGuard portssvc.CompanyGuardSvc
	clock        func() time.Time
}

// GetLogger gets the logger from context or returns a default one
func (s *BaseService) GetLogger(ctx context.Context) *slog.Logger {
	return middleware.GetLoggerFromCtx(ctx)
}

// LogError logs an error with consistent formatting
func (s *BaseService) LogError(ctx context.Context, err error, msg string, keyvals ...any) {
	args := make([]any, 0, len(keyvals)+1)
	args = append(args, slog.String("error", err.Error()))
	args = append(args, keyvals...)
	s.GetLogger(ctx).Error(msg, args...)
}

// LogWarn logs a warning with consistent formatting
func (s *BaseService) LogWarn(ctx context.Context, msg string, keyvals ...any) {
	s.GetLogger(ctx).Warn(msg, keyvals...)
}

// LogInfo logs an info message with consistent formatting
func (s *BaseService) LogInfo(ctx context.Context, msg string, keyvals ...any) {
	s.GetLogger(ctx).Info(msg, keyvals...)
}

// LogDebug logs a debug message with consistent formatting
func (s *BaseService) LogDebug(ctx context.Context, msg string, keyvals ...any) {
	s.GetLogger(ctx).Debug(msg, keyvals...)
}

// Now returns the current UTC time.
func (s *BaseService) Now() time.Time {
	if s.clock != nil {
		return s.clock()
	}
	return time.Now().UTC()
}

// AuthorizeCompany rejects users without at least role in an active company.
func (s *BaseService) AuthorizeCompany(ctx context.Context, userID, companyID string, role domain.MemberRole) error {
	if s.CompanyGuard == nil {
		return nil
	}
	if err := s.CompanyGuard.EnsureCompanyAccess(ctx, userID, companyID, role); err != nil {
		s.LogDebug(ctx, "Company access denied",
			slog.String("company_id", companyID),
			slog.String("user_id", userID),
			slog.String("error", err.Error()))
		return err
	}
	return nil
}

// EnsureCompany rejects calls against unknown or deactivated companies. Calls
// made by a user go through AuthorizeCompany instead.
func (s *BaseService) EnsureCompany(ctx context.Context, companyID string) error {
	if s.CompanyGuard == nil {
		return nil
	}
	if err := s.CompanyGuard.EnsureActiveCompany(ctx, companyID); err != nil {
		s.LogDebug(ctx, "Company check failed", slog.String("company_id", companyID), slog.String("error", err.Error()))
		return err
	}
	return nil
}
