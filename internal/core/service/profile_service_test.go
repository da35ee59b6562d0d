package service

import (
	"context"
	"errors"
	"testing"

	"github.com/chargemesh/cms-admin-api/internal/core/domain"
	"github.com/chargemesh/cms-admin-api/internal/core/ports"
)

func newProfileFixture() (*ProfileService, *stubUserRepo, *stubAssociationRepo) {
	users := newStubUserRepo()
	associations := newStubAssociationRepo()
	svc := NewProfileService(users, associations, discardLogger)
	return svc, users, associations
}

func TestProfileService_FetchUserProfile_NotFound(t *testing.T) {
	svc, _, _ := newProfileFixture()

	_, err := svc.FetchUserProfile(context.Background(), 99)
	if !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestProfileService_UpdateUserProfile_Success(t *testing.T) {
	svc, users, _ := newProfileFixture()
	users.add(domain.User{UserID: 1, Username: "old", PhoneNo: "111", Password: "pw"})

	err := svc.UpdateUserProfile(context.Background(), ports.UpdateUserProfileInput{
		UserID:   1,
		Username: "new",
		PhoneNo:  "222",
		Password: "pw2",
	})
	if err != nil {
		t.Fatalf("expected update to succeed, got %v", err)
	}

	stored := users.users[1]
	if stored.Username != "new" || stored.PhoneNo != "222" || stored.Password != "pw2" {
		t.Fatalf("fields not overwritten: %+v", stored)
	}
	if stored.ModifiedBy == nil || *stored.ModifiedBy != "new" {
		t.Errorf("expected the submitted username as audit actor, got %v", stored.ModifiedBy)
	}
}

func TestProfileService_UpdateUserProfile_NotFound(t *testing.T) {
	svc, _, _ := newProfileFixture()

	err := svc.UpdateUserProfile(context.Background(), ports.UpdateUserProfileInput{UserID: 99, Username: "x"})
	if !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestProfileService_UpdateAssociationProfile_Success(t *testing.T) {
	svc, _, associations := newProfileFixture()
	associations.associations[4] = &domain.Association{AssociationID: 4, PhoneNo: "111", Address: "Old St"}

	err := svc.UpdateAssociationProfile(context.Background(), ports.UpdateAssociationProfileInput{
		AssociationID: 4,
		PhoneNo:       "222",
		Address:       "New St",
		ModifiedBy:    "root",
	})
	if err != nil {
		t.Fatalf("expected update to succeed, got %v", err)
	}
	stored := associations.associations[4]
	if stored.PhoneNo != "222" || stored.Address != "New St" {
		t.Fatalf("fields not overwritten: %+v", stored)
	}
}

func TestProfileService_UpdateAssociationProfile_NotFound(t *testing.T) {
	svc, _, _ := newProfileFixture()

	err := svc.UpdateAssociationProfile(context.Background(), ports.UpdateAssociationProfileInput{AssociationID: 99})
	if !errors.Is(err, domain.ErrAssociationNotFound) {
		t.Fatalf("expected ErrAssociationNotFound, got %v", err)
	}
}

func TestProfileService_UpdateAssociationProfile_NoChange(t *testing.T) {
	svc, _, associations := newProfileFixture()
	associations.associations[4] = &domain.Association{AssociationID: 4, PhoneNo: "111", Address: "Old St"}

	err := svc.UpdateAssociationProfile(context.Background(), ports.UpdateAssociationProfileInput{
		AssociationID: 4,
		PhoneNo:       "111",
		Address:       "Old St",
		ModifiedBy:    "root",
	})
	if !errors.Is(err, domain.ErrNothingModified) {
		t.Fatalf("expected ErrNothingModified for identical values, got %v", err)
	}
}

func TestProfileService_WalletBalance(t *testing.T) {
	svc, users, _ := newProfileFixture()
	users.add(domain.User{UserID: 1, WalletBalance: 17.25})

	bal, err := svc.WalletBalance(context.Background(), 1)
	if err != nil {
		t.Fatalf("expected balance, got %v", err)
	}
	if bal != 17.25 {
		t.Errorf("expected 17.25, got %v", bal)
	}

	if _, err := svc.WalletBalance(context.Background(), 99); !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}
