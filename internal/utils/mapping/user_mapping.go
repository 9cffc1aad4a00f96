package mapping

import (
	"github.com/traiders/practice-backend/internal/core/domain"
	"github.com/traiders/practice-backend/internal/models"
)

// ToModelUser converts a domain.User to its DB model.
func ToModelUser(d domain.User) models.User {
	return models.User{
		UserID:       d.UserID,
		Username:     d.Username,
		Email:        d.Email,
		PasswordHash: d.PasswordHash,
		AuditFields:  toModelAudit(d.AuditFields),
	}
}

// ToDomainUser converts a DB model user to its domain form.
func ToDomainUser(m models.User) domain.User {
	return domain.User{
		UserID:       m.UserID,
		Username:     m.Username,
		Email:        m.Email,
		PasswordHash: m.PasswordHash,
		AuditFields:  toDomainAudit(m.AuditFields),
	}
}
