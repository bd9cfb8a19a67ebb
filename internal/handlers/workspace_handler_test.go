package handlers

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"

	apperrors "moneta/internal/errors"
	"moneta/internal/models"
	"moneta/internal/pagination"
)

// --- mock service ---

type mockWorkspaceService struct {
	createWorkspaceFn   func(ownerID uint, name string, wsType models.WorkspaceType, currency string) (*models.Workspace, error)
	getUserWorkspacesFn func(userID uint, page pagination.PageRequest) (*pagination.PageResponse[models.Workspace], error)
	getWorkspaceByIDFn  func(userID, workspaceID uint) (*models.Workspace, error)
	updateWorkspaceFn   func(userID, workspaceID uint, name string, currency string) (*models.Workspace, error)
	deleteWorkspaceFn   func(userID, workspaceID uint) error
	joinWorkspaceFn     func(userID uint, inviteCode string) (*models.Workspace, error)
	requireMembershipFn func(userID uint, workspaceID *uint) error
}

func (m *mockWorkspaceService) CreateWorkspace(ownerID uint, name string, wsType models.WorkspaceType, currency string) (*models.Workspace, error) {
	if m.createWorkspaceFn != nil {
		return m.createWorkspaceFn(ownerID, name, wsType, currency)
	}
	return &models.Workspace{}, nil
}

func (m *mockWorkspaceService) GetUserWorkspaces(userID uint, page pagination.PageRequest) (*pagination.PageResponse[models.Workspace], error) {
	if m.getUserWorkspacesFn != nil {
		return m.getUserWorkspacesFn(userID, page)
	}
	return &pagination.PageResponse[models.Workspace]{}, nil
}

func (m *mockWorkspaceService) GetWorkspaceByID(userID, workspaceID uint) (*models.Workspace, error) {
	if m.getWorkspaceByIDFn != nil {
		return m.getWorkspaceByIDFn(userID, workspaceID)
	}
	return &models.Workspace{}, nil
}

func (m *mockWorkspaceService) UpdateWorkspace(userID, workspaceID uint, name string, currency string) (*models.Workspace, error) {
	if m.updateWorkspaceFn != nil {
		return m.updateWorkspaceFn(userID, workspaceID, name, currency)
	}
	return &models.Workspace{}, nil
}

func (m *mockWorkspaceService) DeleteWorkspace(userID, workspaceID uint) error {
	if m.deleteWorkspaceFn != nil {
		return m.deleteWorkspaceFn(userID, workspaceID)
	}
	return nil
}

func (m *mockWorkspaceService) JoinWorkspace(userID uint, inviteCode string) (*models.Workspace, error) {
	if m.joinWorkspaceFn != nil {
		return m.joinWorkspaceFn(userID, inviteCode)
	}
	return &models.Workspace{}, nil
}

func (m *mockWorkspaceService) RequireMembership(userID uint, workspaceID *uint) error {
	if m.requireMembershipFn != nil {
		return m.requireMembershipFn(userID, workspaceID)
	}
	return nil
}

func setupWorkspaceRouter(handler *WorkspaceHandler) *gin.Engine {
	r := gin.New()
	r.POST("/workspaces", injectUserID(1), handler.CreateWorkspace)
	r.GET("/workspaces", injectUserID(1), handler.GetWorkspaces)
	r.POST("/workspaces/join", injectUserID(1), handler.JoinWorkspace)
	r.GET("/workspaces/:id", injectUserID(1), handler.GetWorkspace)
	r.PUT("/workspaces/:id", injectUserID(1), handler.UpdateWorkspace)
	r.DELETE("/workspaces/:id", injectUserID(1), handler.DeleteWorkspace)
	return r
}

// --- tests ---

func TestWorkspaceHandler_CreateWorkspace(t *testing.T) {
	t.Run("returns 201 on success", func(t *testing.T) {
		wsSvc := &mockWorkspaceService{
			createWorkspaceFn: func(ownerID uint, name string, wsType models.WorkspaceType, currency string) (*models.Workspace, error) {
				return &models.Workspace{
					Base:       models.Base{ID: 1},
					OwnerID:    ownerID,
					Name:       name,
					Type:       wsType,
					Currency:   currency,
					InviteCode: "abc-123",
				}, nil
			},
		}
		handler := NewWorkspaceHandler(wsSvc, &mockAuditService{})
		r := setupWorkspaceRouter(handler)

		rec := doRequest(r, "POST", "/workspaces", `{"name":"Family","type":"family","currency":"USD"}`)

		if rec.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
		}
		result := parseJSON(t, rec)
		ws := result["workspace"].(map[string]interface{})
		if ws["name"] != "Family" {
			t.Errorf("expected name Family, got %v", ws["name"])
		}
	})

	t.Run("returns 400 on invalid type", func(t *testing.T) {
		handler := NewWorkspaceHandler(&mockWorkspaceService{}, &mockAuditService{})
		r := setupWorkspaceRouter(handler)

		rec := doRequest(r, "POST", "/workspaces", `{"name":"X","type":"club","currency":"USD"}`)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
	})

	t.Run("returns 400 on invalid currency", func(t *testing.T) {
		handler := NewWorkspaceHandler(&mockWorkspaceService{}, &mockAuditService{})
		r := setupWorkspaceRouter(handler)

		rec := doRequest(r, "POST", "/workspaces", `{"name":"X","type":"family","currency":"dollars"}`)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
	})
}

func TestWorkspaceHandler_JoinWorkspace(t *testing.T) {
	t.Run("returns 200 on success", func(t *testing.T) {
		wsSvc := &mockWorkspaceService{
			joinWorkspaceFn: func(_ uint, inviteCode string) (*models.Workspace, error) {
				return &models.Workspace{Base: models.Base{ID: 2}, Name: "Family", InviteCode: inviteCode}, nil
			},
		}
		handler := NewWorkspaceHandler(wsSvc, &mockAuditService{})
		r := setupWorkspaceRouter(handler)

		rec := doRequest(r, "POST", "/workspaces/join", `{"invite_code":"abc-123"}`)

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
		}
	})

	t.Run("returns 404 on invalid code", func(t *testing.T) {
		wsSvc := &mockWorkspaceService{
			joinWorkspaceFn: func(_ uint, _ string) (*models.Workspace, error) {
				return nil, apperrors.ErrInvalidInviteCode
			},
		}
		handler := NewWorkspaceHandler(wsSvc, &mockAuditService{})
		r := setupWorkspaceRouter(handler)

		rec := doRequest(r, "POST", "/workspaces/join", `{"invite_code":"nope"}`)

		if rec.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", rec.Code)
		}
		assertErrorCode(t, parseJSON(t, rec), "INVALID_INVITE_CODE")
	})

	t.Run("returns 409 when already a member", func(t *testing.T) {
		wsSvc := &mockWorkspaceService{
			joinWorkspaceFn: func(_ uint, _ string) (*models.Workspace, error) {
				return nil, apperrors.ErrAlreadyMember
			},
		}
		handler := NewWorkspaceHandler(wsSvc, &mockAuditService{})
		r := setupWorkspaceRouter(handler)

		rec := doRequest(r, "POST", "/workspaces/join", `{"invite_code":"abc-123"}`)

		if rec.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", rec.Code)
		}
	})
}

func TestWorkspaceHandler_UpdateWorkspace(t *testing.T) {
	t.Run("returns 403 for non-owner", func(t *testing.T) {
		wsSvc := &mockWorkspaceService{
			updateWorkspaceFn: func(_, _ uint, _ string, _ string) (*models.Workspace, error) {
				return nil, apperrors.ErrNotWorkspaceOwner
			},
		}
		handler := NewWorkspaceHandler(wsSvc, &mockAuditService{})
		r := setupWorkspaceRouter(handler)

		rec := doRequest(r, "PUT", "/workspaces/2", `{"name":"Hijacked"}`)

		if rec.Code != http.StatusForbidden {
			t.Fatalf("expected 403, got %d", rec.Code)
		}
		assertErrorCode(t, parseJSON(t, rec), "NOT_WORKSPACE_OWNER")
	})

	t.Run("returns 200 with updated workspace", func(t *testing.T) {
		wsSvc := &mockWorkspaceService{
			updateWorkspaceFn: func(_, workspaceID uint, name string, currency string) (*models.Workspace, error) {
				return &models.Workspace{Base: models.Base{ID: workspaceID}, Name: name, Currency: currency}, nil
			},
		}
		handler := NewWorkspaceHandler(wsSvc, &mockAuditService{})
		r := setupWorkspaceRouter(handler)

		rec := doRequest(r, "PUT", "/workspaces/2", `{"name":"Renamed","currency":"EUR"}`)

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
		}
		result := parseJSON(t, rec)
		ws := result["workspace"].(map[string]interface{})
		if ws["name"] != "Renamed" {
			t.Errorf("expected name Renamed, got %v", ws["name"])
		}
	})
}

func TestWorkspaceHandler_DeleteWorkspace(t *testing.T) {
	t.Run("returns 404 when not found", func(t *testing.T) {
		wsSvc := &mockWorkspaceService{
			deleteWorkspaceFn: func(_, _ uint) error {
				return apperrors.ErrWorkspaceNotFound
			},
		}
		handler := NewWorkspaceHandler(wsSvc, &mockAuditService{})
		r := setupWorkspaceRouter(handler)

		rec := doRequest(r, "DELETE", "/workspaces/99", "")

		if rec.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", rec.Code)
		}
	})

	t.Run("returns 200 on success", func(t *testing.T) {
		handler := NewWorkspaceHandler(&mockWorkspaceService{}, &mockAuditService{})
		r := setupWorkspaceRouter(handler)

		rec := doRequest(r, "DELETE", "/workspaces/2", "")

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
	})
}
