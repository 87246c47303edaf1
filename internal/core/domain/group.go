package domain

import "time"

// MemberRole defines the role of a user within a group.
type MemberRole string

const (
	RoleAdmin  MemberRole = "ADMIN"
	RoleMember MemberRole = "MEMBER"
)

// Group defines the scope over which expenses are shared and balances
// are aggregated.
type Group struct {
	GroupID     string `json:"groupID"` // Primary Key (UUID)
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	AuditFields
}

// GroupMember links a user to a group with a role.
type GroupMember struct {
	GroupID  string     `json:"groupID"`
	UserID   string     `json:"userID"`
	Role     MemberRole `json:"role"`
	JoinedAt time.Time  `json:"joinedAt"`
}
