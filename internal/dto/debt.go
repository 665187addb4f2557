package dto

import (
	"time"

	"github.com/SscSPs/edu_backoffice/internal/core/domain"
	"github.com/SscSPs/edu_backoffice/internal/utils/schedule"
	"github.com/shopspring/decimal"
)

// --- Debt DTOs ---

type CreateDebtRequest struct {
	Description       string          `json:"description" binding:"required,max=255"`
	Creditor          string          `json:"creditor" binding:"required,max=255"`
	TotalAmount       decimal.Decimal `json:"totalAmount"`
	InterestRate      decimal.Decimal `json:"interestRate"` // annual percent
	IsInstallment     bool            `json:"isInstallment"`
	TotalInstallments int             `json:"totalInstallments" binding:"omitempty,min=1,max=600"`
}

// NegotiateDebtRequest turns a debt into installments. Installments and
// InterestRate default to the values stored on the debt.
type NegotiateDebtRequest struct {
	FirstDueDate *Date            `json:"firstDueDate" binding:"required"`
	Installments *int             `json:"installments" binding:"omitempty,min=1,max=600"`
	InterestRate *decimal.Decimal `json:"interestRate"`
	Category     string           `json:"category" binding:"max=100"`
}

// PreviewDebtParams is the query form of NegotiateDebtRequest.
type PreviewDebtParams struct {
	FirstDueDate string `form:"firstDueDate" binding:"required,date_ymd"`
	Installments int    `form:"installments" binding:"omitempty,min=1,max=600"`
	InterestRate string `form:"interestRate" binding:"omitempty,numeric"`
}

func (p PreviewDebtParams) ToNegotiateRequest() (NegotiateDebtRequest, error) {
	first, err := ParseDate(p.FirstDueDate)
	if err != nil {
		return NegotiateDebtRequest{}, err
	}
	req := NegotiateDebtRequest{FirstDueDate: &first}
	if p.Installments > 0 {
		n := p.Installments
		req.Installments = &n
	}
	if p.InterestRate != "" {
		rate, err := decimal.NewFromString(p.InterestRate)
		if err != nil {
			return NegotiateDebtRequest{}, err
		}
		req.InterestRate = &rate
	}
	return req, nil
}

type ListDebtsParams struct {
	Limit  int `form:"limit,default=20"`
	Offset int `form:"offset,default=0"`
}

type DebtResponse struct {
	DebtID            string            `json:"debtID"`
	CompanyID         string            `json:"companyID"`
	Description       string            `json:"description"`
	Creditor          string            `json:"creditor"`
	TotalAmount       decimal.Decimal   `json:"totalAmount"`
	InterestRate      decimal.Decimal   `json:"interestRate"`
	IsInstallment     bool              `json:"isInstallment"`
	TotalInstallments int               `json:"totalInstallments"`
	PaidInstallments  int               `json:"paidInstallments"`
	Status            domain.DebtStatus `json:"status"`
	NegotiatedAt      *time.Time        `json:"negotiatedAt,omitempty"`
	CreatedAt         time.Time         `json:"createdAt"`
	CreatedBy         string            `json:"createdBy"`
	LastUpdatedAt     time.Time         `json:"lastUpdatedAt"`
	LastUpdatedBy     string            `json:"lastUpdatedBy"`
}

type ListDebtsResponse struct {
	Debts []DebtResponse `json:"debts"`
}

type NegotiateDebtResponse struct {
	Debt    DebtResponse    `json:"debt"`
	Entries []EntryResponse `json:"entries"`
}

type InstallmentResponse struct {
	Number    int             `json:"number"`
	Principal decimal.Decimal `json:"principal"`
	Interest  decimal.Decimal `json:"interest"`
	Amount    decimal.Decimal `json:"amount"`
	DueDate   Date            `json:"dueDate"`
}

type DebtPreviewResponse struct {
	DebtID        string                `json:"debtID"`
	Installments  []InstallmentResponse `json:"installments"`
	Total         decimal.Decimal       `json:"total"`
	TotalInterest decimal.Decimal       `json:"totalInterest"`
}

type DeleteDebtResponse struct {
	DebtID         string `json:"debtID"`
	DeletedEntries int64  `json:"deletedEntries"`
}

func ToDebtResponse(d *domain.Debt) DebtResponse {
	return DebtResponse{
		DebtID:            d.DebtID,
		CompanyID:         d.CompanyID,
		Description:       d.Description,
		Creditor:          d.Creditor,
		TotalAmount:       d.TotalAmount,
		InterestRate:      d.InterestRate,
		IsInstallment:     d.IsInstallment,
		TotalInstallments: d.TotalInstallments,
		PaidInstallments:  d.PaidInstallments,
		Status:            d.Status,
		NegotiatedAt:      d.NegotiatedAt,
		CreatedAt:         d.CreatedAt,
		CreatedBy:         d.CreatedBy,
		LastUpdatedAt:     d.LastUpdatedAt,
		LastUpdatedBy:     d.LastUpdatedBy,
	}
}

func ToListDebtsResponse(debts []domain.Debt) ListDebtsResponse {
	out := make([]DebtResponse, len(debts))
	for i := range debts {
		out[i] = ToDebtResponse(&debts[i])
	}
	return ListDebtsResponse{Debts: out}
}

func ToDebtPreviewResponse(debtID string, plan []schedule.Installment) DebtPreviewResponse {
	resp := DebtPreviewResponse{
		DebtID:        debtID,
		Installments:  make([]InstallmentResponse, len(plan)),
		Total:         decimal.Zero,
		TotalInterest: decimal.Zero,
	}
	for i, inst := range plan {
		resp.Installments[i] = InstallmentResponse{
			Number:    inst.Number,
			Principal: inst.Principal,
			Interest:  inst.Interest,
			Amount:    inst.Amount,
			DueDate:   NewDate(inst.DueDate),
		}
		resp.Total = resp.Total.Add(inst.Amount)
		resp.TotalInterest = resp.TotalInterest.Add(inst.Interest)
	}
	return resp
}
