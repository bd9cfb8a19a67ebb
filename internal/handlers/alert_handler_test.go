package handlers

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"

	apperrors "moneta/internal/errors"
	"moneta/internal/models"
	"moneta/internal/pagination"
)

func setupAlertRouter(handler *AlertHandler) *gin.Engine {
	r := gin.New()
	r.GET("/alerts", injectUserID(1), handler.GetAlerts)
	r.POST("/alerts/:id/dismiss", injectUserID(1), handler.DismissAlert)
	return r
}

func TestAlertHandler_GetAlerts(t *testing.T) {
	t.Run("returns 200 with alerts", func(t *testing.T) {
		alertSvc := &mockAlertService{
			getUserAlertsFn: func(_ uint, _ pagination.PageRequest, _ bool) (*pagination.PageResponse[models.FinancialAlert], error) {
				return &pagination.PageResponse[models.FinancialAlert]{
					Data: []models.FinancialAlert{
						{Base: models.Base{ID: 1}, Category: "Food", Tier: "warning"},
					},
					TotalItems: 1,
				}, nil
			},
		}
		handler := NewAlertHandler(alertSvc)
		r := setupAlertRouter(handler)

		rec := doRequest(r, "GET", "/alerts", "")

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
		}
		result := parseJSON(t, rec)
		items := result["data"].([]interface{})
		if len(items) != 1 {
			t.Fatalf("expected 1 alert, got %d", len(items))
		}
		alert := items[0].(map[string]interface{})
		if alert["tier"] != "warning" {
			t.Errorf("expected tier warning, got %v", alert["tier"])
		}
	})

	t.Run("passes undismissed filter", func(t *testing.T) {
		var gotUndismissed bool
		alertSvc := &mockAlertService{
			getUserAlertsFn: func(_ uint, _ pagination.PageRequest, undismissedOnly bool) (*pagination.PageResponse[models.FinancialAlert], error) {
				gotUndismissed = undismissedOnly
				return &pagination.PageResponse[models.FinancialAlert]{}, nil
			},
		}
		handler := NewAlertHandler(alertSvc)
		r := setupAlertRouter(handler)

		rec := doRequest(r, "GET", "/alerts?undismissed=true", "")

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
		if !gotUndismissed {
			t.Error("expected undismissedOnly to be true")
		}
	})

	t.Run("returns 400 on bad undismissed value", func(t *testing.T) {
		handler := NewAlertHandler(&mockAlertService{})
		r := setupAlertRouter(handler)

		rec := doRequest(r, "GET", "/alerts?undismissed=maybe", "")

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
	})
}

func TestAlertHandler_DismissAlert(t *testing.T) {
	t.Run("returns 200 on success", func(t *testing.T) {
		var dismissed uint
		alertSvc := &mockAlertService{
			dismissAlertFn: func(_, alertID uint) error {
				dismissed = alertID
				return nil
			},
		}
		handler := NewAlertHandler(alertSvc)
		r := setupAlertRouter(handler)

		rec := doRequest(r, "POST", "/alerts/5/dismiss", "")

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
		if dismissed != 5 {
			t.Errorf("expected alert 5 dismissed, got %d", dismissed)
		}
	})

	t.Run("returns 404 when alert not found", func(t *testing.T) {
		alertSvc := &mockAlertService{
			dismissAlertFn: func(_, _ uint) error {
				return apperrors.ErrAlertNotFound
			},
		}
		handler := NewAlertHandler(alertSvc)
		r := setupAlertRouter(handler)

		rec := doRequest(r, "POST", "/alerts/99/dismiss", "")

		if rec.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", rec.Code)
		}
		assertErrorCode(t, parseJSON(t, rec), "ALERT_NOT_FOUND")
	})

	t.Run("returns 400 on invalid alert ID", func(t *testing.T) {
		handler := NewAlertHandler(&mockAlertService{})
		r := setupAlertRouter(handler)

		rec := doRequest(r, "POST", "/alerts/abc/dismiss", "")

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
	})
}
