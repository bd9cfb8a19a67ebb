package services

import (
	"errors"

	"gorm.io/gorm"

	apperrors "moneta/internal/errors"
	"moneta/internal/models"
	"moneta/internal/pagination"
	"moneta/internal/uuid"
)

// workspaceService handles workspace-related business logic.
type workspaceService struct {
	db *gorm.DB
}

// NewWorkspaceService creates a new WorkspaceServicer.
func NewWorkspaceService(db *gorm.DB) WorkspaceServicer {
	return &workspaceService{db: db}
}

// CreateWorkspace creates a workspace owned by the user, adding the owner as
// its first member.
func (s *workspaceService) CreateWorkspace(ownerID uint, name string, wsType models.WorkspaceType, currency string) (*models.Workspace, error) {
	if name == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "workspace name is required")
	}

	workspace := &models.Workspace{
		OwnerID:    ownerID,
		Name:       name,
		Type:       wsType,
		Currency:   currency,
		InviteCode: uuid.New(),
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(workspace).Error; err != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		member := &models.WorkspaceMember{
			WorkspaceID: workspace.ID,
			UserID:      ownerID,
			Role:        models.WorkspaceRoleOwner,
		}
		if err := tx.Create(member).Error; err != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return workspace, nil
}

// GetUserWorkspaces returns a paginated list of workspaces the user belongs to.
func (s *workspaceService) GetUserWorkspaces(userID uint, page pagination.PageRequest) (*pagination.PageResponse[models.Workspace], error) {
	page.Defaults()

	base := s.db.Model(&models.Workspace{}).
		Joins("JOIN workspace_members ON workspace_members.workspace_id = workspaces.id").
		Where("workspace_members.user_id = ? AND workspace_members.deleted_at IS NULL", userID)

	var totalItems int64
	if err := base.Count(&totalItems).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	var workspaces []models.Workspace
	if err := base.Scopes(pagination.Paginate(page)).Find(&workspaces).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	result := pagination.NewPageResponse(workspaces, page.Page, page.PageSize, totalItems)
	return &result, nil
}

// GetWorkspaceByID returns a workspace by ID if the user is a member.
func (s *workspaceService) GetWorkspaceByID(userID, workspaceID uint) (*models.Workspace, error) {
	if err := s.RequireMembership(userID, &workspaceID); err != nil {
		return nil, err
	}

	var workspace models.Workspace
	if err := s.db.Preload("Members").First(&workspace, workspaceID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrWorkspaceNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &workspace, nil
}

// UpdateWorkspace updates a workspace's name and currency. Owner only.
func (s *workspaceService) UpdateWorkspace(userID, workspaceID uint, name string, currency string) (*models.Workspace, error) {
	workspace, err := s.getOwnedWorkspace(userID, workspaceID)
	if err != nil {
		return nil, err
	}

	updates := make(map[string]interface{})
	if name != "" {
		updates["name"] = name
	}
	if currency != "" {
		updates["currency"] = currency
	}

	if len(updates) > 0 {
		if err := s.db.Model(workspace).Updates(updates).Error; err != nil {
			return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
	}

	return workspace, nil
}

// DeleteWorkspace soft-deletes a workspace and its memberships. Owner only.
func (s *workspaceService) DeleteWorkspace(userID, workspaceID uint) error {
	workspace, err := s.getOwnedWorkspace(userID, workspaceID)
	if err != nil {
		return err
	}

	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("workspace_id = ?", workspaceID).Delete(&models.WorkspaceMember{}).Error; err != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		if err := tx.Delete(workspace).Error; err != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		return nil
	})
}

// JoinWorkspace adds the user as a member of the workspace matching the
// invite code.
func (s *workspaceService) JoinWorkspace(userID uint, inviteCode string) (*models.Workspace, error) {
	var workspace models.Workspace
	if err := s.db.Where("invite_code = ?", inviteCode).First(&workspace).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrInvalidInviteCode
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	var count int64
	s.db.Model(&models.WorkspaceMember{}).
		Where("workspace_id = ? AND user_id = ?", workspace.ID, userID).Count(&count)
	if count > 0 {
		return nil, apperrors.ErrAlreadyMember
	}

	member := &models.WorkspaceMember{
		WorkspaceID: workspace.ID,
		UserID:      userID,
		Role:        models.WorkspaceRoleMember,
	}
	if err := s.db.Create(member).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	return &workspace, nil
}

// RequireMembership verifies the user is a member of the workspace. A nil
// workspace ID denotes the user's personal (legacy) scope and always passes.
func (s *workspaceService) RequireMembership(userID uint, workspaceID *uint) error {
	if workspaceID == nil {
		return nil
	}

	var count int64
	if err := s.db.Model(&models.WorkspaceMember{}).
		Where("workspace_id = ? AND user_id = ?", *workspaceID, userID).
		Count(&count).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	if count == 0 {
		return apperrors.ErrWorkspaceNotFound
	}
	return nil
}

// getOwnedWorkspace fetches a workspace and verifies ownership.
func (s *workspaceService) getOwnedWorkspace(userID, workspaceID uint) (*models.Workspace, error) {
	var workspace models.Workspace
	if err := s.db.First(&workspace, workspaceID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrWorkspaceNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	if workspace.OwnerID != userID {
		return nil, apperrors.ErrNotWorkspaceOwner
	}
	return &workspace, nil
}
