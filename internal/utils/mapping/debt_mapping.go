package mapping

import (
	"github.com/SscSPs/edu_backoffice/internal/core/domain"
	"github.com/SscSPs/edu_backoffice/internal/models"
)

func ToModelDebt(d domain.Debt) models.Debt {
	return models.Debt{
		DebtID:            d.DebtID,
		CompanyID:         d.CompanyID,
		Description:       d.Description,
		Creditor:          d.Creditor,
		TotalAmount:       d.TotalAmount,
		InterestRate:      d.InterestRate,
		IsInstallment:     d.IsInstallment,
		TotalInstallments: int32(d.TotalInstallments),
		PaidInstallments:  int32(d.PaidInstallments),
		Status:            string(d.Status),
		NegotiatedAt:      d.NegotiatedAt,
		AuditFields:       ToModelAuditFields(d.AuditFields),
	}
}

func ToDomainDebt(m models.Debt) domain.Debt {
	return domain.Debt{
		DebtID:            m.DebtID,
		CompanyID:         m.CompanyID,
		Description:       m.Description,
		Creditor:          m.Creditor,
		TotalAmount:       m.TotalAmount,
		InterestRate:      m.InterestRate,
		IsInstallment:     m.IsInstallment,
		TotalInstallments: int(m.TotalInstallments),
		PaidInstallments:  int(m.PaidInstallments),
		Status:            domain.DebtStatus(m.Status),
		NegotiatedAt:      m.NegotiatedAt,
		AuditFields:       ToDomainAuditFields(m.AuditFields),
	}
}

func ToDomainDebtSlice(ms []models.Debt) []domain.Debt {
	ds := make([]domain.Debt, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainDebt(m)
	}
	return ds
}
