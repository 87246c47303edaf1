package mapping

import (
	"github.com/fairsplit/fairsplit/internal/core/domain"
	"github.com/fairsplit/fairsplit/internal/models"
)

// ToModelGroup converts a domain Group to a model Group
func ToModelGroup(d domain.Group) models.Group {
	return models.Group{
		GroupID:     d.GroupID,
		Name:        d.Name,
		Description: d.Description,
		AuditFields: ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainGroup converts a model Group to a domain Group
func ToDomainGroup(m models.Group) domain.Group {
	return domain.Group{
		GroupID:     m.GroupID,
		Name:        m.Name,
		Description: m.Description,
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainGroupSlice converts a slice of model Groups to a slice of domain Groups
func ToDomainGroupSlice(ms []models.Group) []domain.Group {
	ds := make([]domain.Group, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainGroup(m)
	}
	return ds
}

// ToModelGroupMember converts a domain GroupMember to a model GroupMember
func ToModelGroupMember(d domain.GroupMember) models.GroupMember {
	return models.GroupMember{
		GroupID:  d.GroupID,
		UserID:   d.UserID,
		Role:     models.MemberRole(d.Role),
		JoinedAt: d.JoinedAt,
	}
}

// ToDomainGroupMember converts a model GroupMember to a domain GroupMember
func ToDomainGroupMember(m models.GroupMember) domain.GroupMember {
	return domain.GroupMember{
		GroupID:  m.GroupID,
		UserID:   m.UserID,
		Role:     domain.MemberRole(m.Role),
		JoinedAt: m.JoinedAt,
	}
}

// ToDomainGroupMemberSlice converts a slice of model GroupMembers to a slice of domain GroupMembers
func ToDomainGroupMemberSlice(ms []models.GroupMember) []domain.GroupMember {
	ds := make([]domain.GroupMember, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainGroupMember(m)
	}
	return ds
}
