package models

import "time"

// MemberRole defines the role of a user within a group.
type MemberRole string

const (
	RoleAdmin  MemberRole = "ADMIN"
	RoleMember MemberRole = "MEMBER"
)

// Group represents a group row.
type Group struct {
	GroupID     string `db:"group_id"`
	Name        string `db:"name"`
	Description string `db:"description"`
	AuditFields
}

// GroupMember represents one row of the group membership join table.
type GroupMember struct {
	GroupID  string     `db:"group_id"`
	UserID   string     `db:"user_id"`
	Role     MemberRole `db:"role"`
	JoinedAt time.Time  `db:"joined_at"`
}
