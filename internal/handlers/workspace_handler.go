package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "moneta/internal/errors"
	"moneta/internal/models"
	"moneta/internal/pagination"
	"moneta/internal/services"
)

// WorkspaceHandler handles workspace-related requests.
type WorkspaceHandler struct {
	workspaceService services.WorkspaceServicer
	auditService     services.AuditServicer
}

// NewWorkspaceHandler creates a new WorkspaceHandler.
func NewWorkspaceHandler(workspaceService services.WorkspaceServicer, auditService services.AuditServicer) *WorkspaceHandler {
	return &WorkspaceHandler{workspaceService: workspaceService, auditService: auditService}
}

// CreateWorkspaceRequest represents the request payload for creating a workspace.
type CreateWorkspaceRequest struct {
	Name     string               `json:"name" binding:"required,min=1,max=100"`
	Type     models.WorkspaceType `json:"type" binding:"required,workspace_type"`
	Currency string               `json:"currency" binding:"required,iso4217"`
}

// UpdateWorkspaceRequest represents the request payload for updating a workspace.
type UpdateWorkspaceRequest struct {
	Name     string `json:"name" binding:"omitempty,min=1,max=100"`
	Currency string `json:"currency" binding:"omitempty,iso4217"`
}

// JoinWorkspaceRequest represents the request payload for joining a workspace.
type JoinWorkspaceRequest struct {
	InviteCode string `json:"invite_code" binding:"required"`
}

// CreateWorkspace handles the creation of a new workspace.
// @Summary     Create a workspace
// @Description Create a new shared workspace owned by the authenticated user
// @Tags        workspaces
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       request body CreateWorkspaceRequest true "Workspace details"
// @Success     201 {object} models.Workspace "Workspace created"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /workspaces [post]
func (h *WorkspaceHandler) CreateWorkspace(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req CreateWorkspaceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	workspace, err := h.workspaceService.CreateWorkspace(userID, req.Name, req.Type, req.Currency)
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(userID, "CREATE_WORKSPACE", "workspace", workspace.ID, c.ClientIP(),
		map[string]interface{}{"name": req.Name, "type": req.Type})

	c.JSON(http.StatusCreated, gin.H{"workspace": workspace})
}

// GetWorkspaces handles listing the workspaces the user belongs to.
// @Summary     Get workspaces
// @Description Get a paginated list of workspaces the authenticated user is a member of
// @Tags        workspaces
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       page      query int false "Page number (default 1)"
// @Param       page_size query int false "Items per page (default 20, max 100)"
// @Success     200 {object} pagination.PageResponse[models.Workspace] "Paginated workspaces"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /workspaces [get]
func (h *WorkspaceHandler) GetWorkspaces(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var page pagination.PageRequest
	if err := c.ShouldBindQuery(&page); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	result, err := h.workspaceService.GetUserWorkspaces(userID, page)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// GetWorkspace handles retrieving a specific workspace.
// @Summary     Get workspace by ID
// @Description Get a specific workspace with its members
// @Tags        workspaces
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id path int true "Workspace ID"
// @Success     200 {object} models.Workspace "Workspace details"
// @Failure     400 {object} ErrorResponse "Invalid workspace ID"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Workspace not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /workspaces/{id} [get]
func (h *WorkspaceHandler) GetWorkspace(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	workspaceID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	workspace, err := h.workspaceService.GetWorkspaceByID(userID, workspaceID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"workspace": workspace})
}

// UpdateWorkspace handles updating a workspace. Owner only.
// @Summary     Update workspace
// @Description Update a workspace's name or currency
// @Tags        workspaces
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id      path int                    true "Workspace ID"
// @Param       request body UpdateWorkspaceRequest true "Updated workspace details"
// @Success     200 {object} models.Workspace "Updated workspace"
// @Failure     400 {object} ErrorResponse "Invalid input or workspace ID"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     403 {object} ErrorResponse "Not the workspace owner"
// @Failure     404 {object} ErrorResponse "Workspace not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /workspaces/{id} [put]
func (h *WorkspaceHandler) UpdateWorkspace(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	workspaceID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req UpdateWorkspaceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	workspace, err := h.workspaceService.UpdateWorkspace(userID, workspaceID, req.Name, req.Currency)
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(userID, "UPDATE_WORKSPACE", "workspace", workspaceID, c.ClientIP(),
		map[string]interface{}{"name": req.Name})

	c.JSON(http.StatusOK, gin.H{"workspace": workspace})
}

// DeleteWorkspace handles deleting a workspace. Owner only.
// @Summary     Delete workspace
// @Description Delete a workspace and its memberships (soft delete)
// @Tags        workspaces
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id path int true "Workspace ID"
// @Success     200 {object} MessageResponse "Workspace deleted"
// @Failure     400 {object} ErrorResponse "Invalid workspace ID"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     403 {object} ErrorResponse "Not the workspace owner"
// @Failure     404 {object} ErrorResponse "Workspace not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /workspaces/{id} [delete]
func (h *WorkspaceHandler) DeleteWorkspace(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	workspaceID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	if err := h.workspaceService.DeleteWorkspace(userID, workspaceID); err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(userID, "DELETE_WORKSPACE", "workspace", workspaceID, c.ClientIP(), nil)

	c.JSON(http.StatusOK, gin.H{"message": "Workspace deleted successfully"})
}

// JoinWorkspace handles joining a workspace via invite code.
// @Summary     Join workspace
// @Description Join an existing workspace using its invite code
// @Tags        workspaces
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       request body JoinWorkspaceRequest true "Invite code"
// @Success     200 {object} models.Workspace "Joined workspace"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Invite code not valid"
// @Failure     409 {object} ErrorResponse "Already a member"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /workspaces/join [post]
func (h *WorkspaceHandler) JoinWorkspace(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req JoinWorkspaceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	workspace, err := h.workspaceService.JoinWorkspace(userID, req.InviteCode)
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(userID, "JOIN_WORKSPACE", "workspace", workspace.ID, c.ClientIP(), nil)

	c.JSON(http.StatusOK, gin.H{"workspace": workspace})
}
