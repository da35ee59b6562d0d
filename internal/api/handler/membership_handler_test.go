package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/chargemesh/cms-admin-api/internal/core/domain"
	"github.com/chargemesh/cms-admin-api/internal/core/ports"
)

type stubMembershipService struct {
	users      []domain.User
	err        error
	assignIn   ports.AssignInput
	unassignIn ports.UnassignInput
}

func (s *stubMembershipService) AssignableUsers(_ context.Context) ([]domain.User, error) {
	return s.users, s.err
}

func (s *stubMembershipService) AssignedUsers(_ context.Context, _ int) ([]domain.User, error) {
	return s.users, s.err
}

func (s *stubMembershipService) Assign(_ context.Context, input ports.AssignInput) error {
	s.assignIn = input
	return s.err
}

func (s *stubMembershipService) Unassign(_ context.Context, input ports.UnassignInput) error {
	s.unassignIn = input
	return s.err
}

func TestMembershipHandler_FetchAssignable_Empty(t *testing.T) {
	h := NewMembershipHandler(&stubMembershipService{err: domain.ErrNoUsersFound})

	c, _ := newJSONContext(t, "")
	err := h.FetchUsersWithSpecificRolesToAssgin(c)
	if !errors.Is(err, domain.ErrNoUsersFound) {
		t.Fatalf("expected ErrNoUsersFound to propagate, got %v", err)
	}
}

func TestMembershipHandler_AddUser_Success(t *testing.T) {
	svc := &stubMembershipService{}
	h := NewMembershipHandler(svc)

	c, rec := newJSONContext(t, `{"association_id":7,"user_id":1,"modified_by":"root"}`)
	if err := h.AddUserToAssociation(c); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp messageResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	if resp.Message != "User Successfully Assigned to Association" {
		t.Fatalf("unexpected message %q", resp.Message)
	}
	if svc.assignIn.AssociationID != 7 || svc.assignIn.UserID != 1 {
		t.Errorf("input not forwarded: %+v", svc.assignIn)
	}
}

func TestMembershipHandler_AddUser_Validation(t *testing.T) {
	h := NewMembershipHandler(&stubMembershipService{})

	c, _ := newJSONContext(t, `{"association_id":7}`)
	err := h.AddUserToAssociation(c)

	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusBadRequest {
		t.Fatalf("expected a 400 HTTPError, got %v", err)
	}
}

func TestMembershipHandler_RemoveUser_Success(t *testing.T) {
	svc := &stubMembershipService{}
	h := NewMembershipHandler(svc)

	c, rec := newJSONContext(t, `{"user_id":1,"association_id":7,"modified_by":"root"}`)
	if err := h.RemoveUserFromAssociation(c); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if svc.unassignIn.UserID != 1 || svc.unassignIn.AssociationID != 7 {
		t.Errorf("input not forwarded: %+v", svc.unassignIn)
	}
}
