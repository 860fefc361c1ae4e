package mapping

import (
	"github.com/SscSPs/autoinvest_app/internal/core/domain"
	"github.com/SscSPs/autoinvest_app/internal/models"
)

// ToModelAccount converts a domain Account to a model Account
func ToModelAccount(d domain.Account) models.Account {
	return models.Account{
		AccountID:      d.AccountID,
		Handle:         d.Handle,
		PasswordHash:   d.PasswordHash,
		Balance:        d.Balance,
		ReferrerHandle: toNullString(d.ReferrerHandle),
		AuditFields:    ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainAccount converts a model Account to a domain Account
func ToDomainAccount(m models.Account) domain.Account {
	return domain.Account{
		AccountID:      m.AccountID,
		Handle:         m.Handle,
		PasswordHash:   m.PasswordHash,
		Balance:        m.Balance,
		ReferrerHandle: fromNullString(m.ReferrerHandle),
		AuditFields:    ToDomainAuditFields(m.AuditFields),
	}
}
