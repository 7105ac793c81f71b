package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/tylerhq/tyler-go/internal/crypto"
	"github.com/tylerhq/tyler-go/internal/model"
)

func newTestAuthService() (*AuthService, *fakeUserStore) {
	users := newFakeUserStore()
	return NewAuthService(users, "test-secret", time.Hour), users
}

func TestSignupMissingFields(t *testing.T) {
	svc, _ := newTestAuthService()
	ctx := context.Background()

	cases := []model.SignupRequest{
		{Email: "", Password: "Secret123", FullName: "U"},
		{Email: "u@x.com", Password: "", FullName: "U"},
		{Email: "u@x.com", Password: "Secret123", FullName: ""},
	}
	for _, req := range cases {
		if _, err := svc.Signup(ctx, req); !errors.Is(err, ErrSignupFieldsRequired) {
			t.Errorf("Signup(%+v) error = %v, want ErrSignupFieldsRequired", req, err)
		}
	}
}

func TestSignupAndSignin(t *testing.T) {
	svc, _ := newTestAuthService()
	ctx := context.Background()

	resp, err := svc.Signup(ctx, model.SignupRequest{
		Email: "u@x.com", Password: "Secret123", FullName: "U",
	})
	if err != nil {
		t.Fatalf("Signup() unexpected error: %v", err)
	}
	if resp.Token == "" {
		t.Fatal("Signup() returned empty token")
	}
	if resp.User.Email != "u@x.com" || resp.User.FullName != "U" {
		t.Errorf("Signup() user = %+v", resp.User)
	}

	claims, err := crypto.ValidateToken(resp.Token, "test-secret")
	if err != nil {
		t.Fatalf("signup token invalid: %v", err)
	}
	if claims.UserID != resp.User.ID {
		t.Errorf("token user id = %d, want %d", claims.UserID, resp.User.ID)
	}

	login, err := svc.Signin(ctx, model.SigninRequest{Email: "u@x.com", Password: "Secret123"})
	if err != nil {
		t.Fatalf("Signin() unexpected error: %v", err)
	}
	if login.Token == "" {
		t.Fatal("Signin() returned empty token")
	}
}

func TestSignupDuplicateEmail(t *testing.T) {
	svc, _ := newTestAuthService()
	ctx := context.Background()

	req := model.SignupRequest{Email: "u@x.com", Password: "Secret123", FullName: "U"}
	if _, err := svc.Signup(ctx, req); err != nil {
		t.Fatalf("Signup() unexpected error: %v", err)
	}
	if _, err := svc.Signup(ctx, req); !errors.Is(err, ErrEmailTaken) {
		t.Errorf("second Signup() error = %v, want ErrEmailTaken", err)
	}
}

func TestSigninIsVagueAboutFailureReason(t *testing.T) {
	svc, _ := newTestAuthService()
	ctx := context.Background()

	if _, err := svc.Signup(ctx, model.SignupRequest{
		Email: "u@x.com", Password: "Secret123", FullName: "U",
	}); err != nil {
		t.Fatalf("Signup() unexpected error: %v", err)
	}

	// Unknown email and wrong password must be indistinguishable.
	_, unknownErr := svc.Signin(ctx, model.SigninRequest{Email: "nobody@x.com", Password: "Secret123"})
	_, wrongErr := svc.Signin(ctx, model.SigninRequest{Email: "u@x.com", Password: "wrong"})

	if !errors.Is(unknownErr, ErrInvalidCredentials) {
		t.Errorf("unknown email error = %v, want ErrInvalidCredentials", unknownErr)
	}
	if !errors.Is(wrongErr, ErrInvalidCredentials) {
		t.Errorf("wrong password error = %v, want ErrInvalidCredentials", wrongErr)
	}
}

func TestChangePassword(t *testing.T) {
	svc, _ := newTestAuthService()
	ctx := context.Background()

	resp, err := svc.Signup(ctx, model.SignupRequest{
		Email: "u@x.com", Password: "Secret123", FullName: "U",
	})
	if err != nil {
		t.Fatalf("Signup() unexpected error: %v", err)
	}
	userID := resp.User.ID

	if err := svc.ChangePassword(ctx, userID, model.ChangePasswordRequest{}); !errors.Is(err, ErrPasswordFieldsRequired) {
		t.Errorf("empty request error = %v, want ErrPasswordFieldsRequired", err)
	}

	if err := svc.ChangePassword(ctx, userID, model.ChangePasswordRequest{
		CurrentPassword: "wrong", NewPassword: "Another456",
	}); !errors.Is(err, ErrWrongPassword) {
		t.Errorf("wrong current password error = %v, want ErrWrongPassword", err)
	}

	if err := svc.ChangePassword(ctx, userID, model.ChangePasswordRequest{
		CurrentPassword: "Secret123", NewPassword: "Another456",
	}); err != nil {
		t.Fatalf("ChangePassword() unexpected error: %v", err)
	}

	// Old password no longer signs in; the new one does.
	if _, err := svc.Signin(ctx, model.SigninRequest{Email: "u@x.com", Password: "Secret123"}); !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("old password signin error = %v, want ErrInvalidCredentials", err)
	}
	if _, err := svc.Signin(ctx, model.SigninRequest{Email: "u@x.com", Password: "Another456"}); err != nil {
		t.Errorf("new password signin unexpected error: %v", err)
	}
}

func TestChangePasswordUnknownUser(t *testing.T) {
	svc, _ := newTestAuthService()

	err := svc.ChangePassword(context.Background(), 99, model.ChangePasswordRequest{
		CurrentPassword: "Secret123", NewPassword: "Another456",
	})
	if !errors.Is(err, ErrUserNotFound) {
		t.Errorf("error = %v, want ErrUserNotFound", err)
	}
}

func TestUpdateAndGetProfile(t *testing.T) {
	svc, _ := newTestAuthService()
	ctx := context.Background()

	resp, err := svc.Signup(ctx, model.SignupRequest{
		Email: "u@x.com", Password: "Secret123", FullName: "U",
	})
	if err != nil {
		t.Fatalf("Signup() unexpected error: %v", err)
	}

	updated, err := svc.UpdateProfile(ctx, resp.User.ID, model.UpdateProfileRequest{
		FullName: "Updated Name", Phone: "+15550100", Bio: "hello",
	})
	if err != nil {
		t.Fatalf("UpdateProfile() unexpected error: %v", err)
	}
	if updated.FullName != "Updated Name" || updated.Phone != "+15550100" || updated.Bio != "hello" {
		t.Errorf("UpdateProfile() = %+v", updated)
	}

	got, err := svc.GetProfile(ctx, resp.User.ID)
	if err != nil {
		t.Fatalf("GetProfile() unexpected error: %v", err)
	}
	if got.FullName != "Updated Name" {
		t.Errorf("GetProfile() FullName = %q", got.FullName)
	}
}
