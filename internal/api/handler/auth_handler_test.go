package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/chargemesh/cms-admin-api/internal/core/domain"
	"github.com/chargemesh/cms-admin-api/internal/core/ports"
)

func newJSONContext(t *testing.T, body string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	e.Validator = NewValidator()
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

type stubAuthService struct {
	result *ports.LoginResult
	err    error
	gotIn  ports.LoginInput
}

func (s *stubAuthService) Login(_ context.Context, input ports.LoginInput) (*ports.LoginResult, error) {
	s.gotIn = input
	if s.err != nil {
		return nil, s.err
	}
	return s.result, nil
}

func TestAuthHandler_CheckLoginCredentials_Success(t *testing.T) {
	svc := &stubAuthService{result: &ports.LoginResult{
		Reseller: &domain.Reseller{ResellerID: 2, ResellerName: "Volt Networks"},
		Token:    "tok",
	}}
	h := NewAuthHandler(svc)

	c, rec := newJSONContext(t, `{"email":"admin@example.com","password":"s3cret","admin":"Association Admin"}`)
	if err := h.CheckLoginCredentials(c); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp struct {
		Status string           `json:"status"`
		Data   *domain.Reseller `json:"data"`
		Token  string           `json:"token"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	if resp.Status != "Success" {
		t.Errorf("expected status Success, got %q", resp.Status)
	}
	if resp.Data == nil || resp.Data.ResellerID != 2 {
		t.Errorf("expected reseller 2, got %+v", resp.Data)
	}
	if resp.Token != "tok" {
		t.Errorf("expected token in response, got %q", resp.Token)
	}
	if svc.gotIn.RoleName != "Association Admin" {
		t.Errorf("expected admin field mapped to role name, got %q", svc.gotIn.RoleName)
	}
}

func TestAuthHandler_CheckLoginCredentials_Unauthorized(t *testing.T) {
	h := NewAuthHandler(&stubAuthService{err: domain.ErrInvalidCredentials})

	c, _ := newJSONContext(t, `{"email":"admin@example.com","password":"wrong","admin":"Association Admin"}`)
	err := h.CheckLoginCredentials(c)
	if !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials to propagate, got %v", err)
	}
}

func TestAuthHandler_CheckLoginCredentials_InvalidPayload(t *testing.T) {
	h := NewAuthHandler(&stubAuthService{})

	c, _ := newJSONContext(t, `{"email":`)
	err := h.CheckLoginCredentials(c)

	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusBadRequest {
		t.Fatalf("expected a 400 HTTPError, got %v", err)
	}
}
