package service

import (
	"context"
	"crypto/subtle"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/tylerhq/tyler-go/internal/crypto"
	"github.com/tylerhq/tyler-go/internal/mail"
	"github.com/tylerhq/tyler-go/internal/otpstore"
	"github.com/tylerhq/tyler-go/internal/repository"
)

var (
	ErrEmailRequired = errors.New("email is required")
	ErrEmailNotFound = errors.New("email not found")
	ErrSendFailed    = errors.New("failed to send OTP email")
	ErrOTPInvalid    = errors.New("OTP expired or invalid")
	ErrTicketInvalid = errors.New("invalid or expired reset ticket")
	ErrSamePassword  = errors.New("new password must be different from your current password")
)

// PasswordResetService drives the three-step forgot-password flow:
// request a mailed passcode, confirm it, set a new password. Confirming
// consumes the passcode and hands out a single-use reset ticket that the
// final step requires, so only a caller who proved email ownership can
// overwrite the password.
type PasswordResetService struct {
	users   UserStore
	codes   otpstore.Store
	tickets otpstore.Store
	mailer  mail.Sender

	codeLength int
	codeTTL    time.Duration
	ticketTTL  time.Duration
}

// NewPasswordResetService creates a PasswordResetService. The codes and
// tickets stores may share a backend as long as their key prefixes differ.
func NewPasswordResetService(users UserStore, codes, tickets otpstore.Store, mailer mail.Sender, codeLength int, codeTTL, ticketTTL time.Duration) *PasswordResetService {
	return &PasswordResetService{
		users:      users,
		codes:      codes,
		tickets:    tickets,
		mailer:     mailer,
		codeLength: codeLength,
		codeTTL:    codeTTL,
		ticketTTL:  ticketTTL,
	}
}

// RequestCode generates a passcode for the account behind email, stores
// it (replacing any unconsumed one), and mails it out. A failed send
// leaves the code issued: the user retrying simply gets a fresh code,
// which is safe because the old one is overwritten.
func (s *PasswordResetService) RequestCode(ctx context.Context, email string) error {
	if email == "" {
		return ErrEmailRequired
	}

	if _, err := s.users.GetByEmail(ctx, email); err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return ErrEmailNotFound
		}
		return err
	}

	code, err := crypto.GenerateOTP(s.codeLength)
	if err != nil {
		return err
	}

	if err := s.codes.Put(ctx, email, code, s.codeTTL); err != nil {
		return err
	}

	if err := s.mailer.Send(email, mail.OTPSubject, mail.OTPBody(code, s.codeTTL)); err != nil {
		slog.Error("otp mail dispatch failed", "email", email, "error", err)
		return fmt.Errorf("%w: %v", ErrSendFailed, err)
	}

	return nil
}

// ConfirmCode checks a submitted passcode. On the first match the code is
// consumed and a reset ticket is returned. Absent, expired, and mismatched
// codes all report the same error; a mismatch leaves the code in place so
// the user keeps their remaining attempts until it expires.
func (s *PasswordResetService) ConfirmCode(ctx context.Context, email, code string) (string, error) {
	stored, ok, err := s.codes.Get(ctx, email)
	if err != nil {
		return "", err
	}
	if !ok || !equalCode(stored, code) {
		return "", ErrOTPInvalid
	}

	if err := s.codes.Delete(ctx, email); err != nil {
		return "", err
	}

	ticket := crypto.GenerateResetTicket()
	if err := s.tickets.Put(ctx, email, ticket, s.ticketTTL); err != nil {
		return "", err
	}

	return ticket, nil
}

// ResetPassword sets a new password for the account behind email. The
// caller must present the ticket from ConfirmCode; it is consumed only
// after the password has actually been updated, so a failed write leaves
// it usable for a retry.
func (s *PasswordResetService) ResetPassword(ctx context.Context, email, ticket, newPassword string) error {
	if ticket == "" {
		return ErrTicketInvalid
	}

	stored, ok, err := s.tickets.Get(ctx, email)
	if err != nil {
		return err
	}
	if !ok || subtle.ConstantTimeCompare([]byte(stored), []byte(ticket)) != 1 {
		return ErrTicketInvalid
	}

	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		return err
	}

	same, err := crypto.VerifyPassword(newPassword, user.PasswordHash)
	if err != nil {
		return err
	}
	if same {
		return ErrSamePassword
	}

	hash, err := crypto.HashPassword(newPassword)
	if err != nil {
		return err
	}

	if err := s.users.UpdatePasswordByEmail(ctx, email, hash); err != nil {
		return err
	}

	return s.tickets.Delete(ctx, email)
}

func equalCode(stored, submitted string) bool {
	if len(stored) != len(submitted) {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(stored), []byte(submitted)) == 1
}
