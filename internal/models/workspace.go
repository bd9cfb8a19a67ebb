package models

// WorkspaceType represents the kind of tenancy a workspace provides
type WorkspaceType string

const (
	WorkspaceTypePersonal WorkspaceType = "personal"
	WorkspaceTypeFamily   WorkspaceType = "family"
	WorkspaceTypeBusiness WorkspaceType = "business"
)

// Workspace is the tenancy boundary scoping budgets, transactions, and alerts.
type Workspace struct {
	Base
	OwnerID    uint          `gorm:"not null;index" json:"owner_id"`
	Name       string        `gorm:"not null" json:"name"`
	Type       WorkspaceType `gorm:"not null;default:personal" json:"type"`
	Currency   string        `gorm:"size:3;not null;default:USD" json:"currency"`
	InviteCode string        `gorm:"uniqueIndex;size:36" json:"-"`

	// Relationships
	Members []WorkspaceMember `gorm:"foreignKey:WorkspaceID" json:"members,omitempty"`
}

// WorkspaceMemberRole represents a member's role within a shared workspace
type WorkspaceMemberRole string

const (
	WorkspaceRoleOwner  WorkspaceMemberRole = "owner"
	WorkspaceRoleMember WorkspaceMemberRole = "member"
)

// WorkspaceMember links a user to a workspace they participate in.
type WorkspaceMember struct {
	Base
	WorkspaceID uint                `gorm:"not null;uniqueIndex:idx_workspace_user" json:"workspace_id"`
	UserID      uint                `gorm:"not null;uniqueIndex:idx_workspace_user" json:"user_id"`
	Role        WorkspaceMemberRole `gorm:"not null;default:member" json:"role"`
}
