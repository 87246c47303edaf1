package mapping

import (
	"github.com/fairsplit/fairsplit/internal/core/domain"
	"github.com/fairsplit/fairsplit/internal/models"
)

// ToModelShare converts a domain Share to a model Share
func ToModelShare(d domain.Share) models.Share {
	return models.Share{
		ShareID:     d.ShareID,
		ExpenseID:   d.ExpenseID,
		UserID:      d.UserID,
		Amount:      d.Amount,
		Percentage:  d.Percentage,
		Status:      models.ShareStatus(d.Status),
		AuditFields: ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainShare converts a model Share to a domain Share
func ToDomainShare(m models.Share) domain.Share {
	return domain.Share{
		ShareID:     m.ShareID,
		ExpenseID:   m.ExpenseID,
		UserID:      m.UserID,
		Amount:      m.Amount,
		Percentage:  m.Percentage,
		Status:      domain.ShareStatus(m.Status),
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainShareSlice converts a slice of model Shares to a slice of domain Shares
func ToDomainShareSlice(ms []models.Share) []domain.Share {
	ds := make([]domain.Share, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainShare(m)
	}
	return ds
}
