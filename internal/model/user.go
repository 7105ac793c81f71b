package model

import "time"

// User represents a registered account in the database. PasswordHash is
// never serialized into any response.
type User struct {
	ID           int64
	Email        string
	PasswordHash string
	FullName     string
	Phone        string
	Bio          string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// SignupRequest represents an account registration request.
type SignupRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	FullName string `json:"fullName"`
}

// SigninRequest represents a login request.
type SigninRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// ChangePasswordRequest represents an authenticated password change.
type ChangePasswordRequest struct {
	CurrentPassword string `json:"currentPassword"`
	NewPassword     string `json:"newPassword"`
}

// GenerateOTPRequest starts the forgot-password flow.
type GenerateOTPRequest struct {
	Email string `json:"email"`
}

// ConfirmOTPRequest presents a previously mailed passcode.
type ConfirmOTPRequest struct {
	Email string `json:"email"`
	OTP   string `json:"otp"`
}

// ResetPasswordRequest completes the forgot-password flow. ResetTicket is
// the single-use ticket returned by a successful OTP confirmation.
type ResetPasswordRequest struct {
	Email       string `json:"email"`
	ResetTicket string `json:"resetTicket"`
	NewPassword string `json:"newPassword"`
}

// UpdateProfileRequest carries the editable profile fields.
type UpdateProfileRequest struct {
	FullName string `json:"fullName"`
	Phone    string `json:"phone"`
	Bio      string `json:"bio"`
}

// AuthResponse is returned by signup and signin.
type AuthResponse struct {
	User  UserResponse `json:"user"`
	Token string       `json:"token"`
}

// UserResponse represents account data safe for API responses.
type UserResponse struct {
	ID        int64     `json:"id"`
	Email     string    `json:"email"`
	FullName  string    `json:"fullName"`
	Phone     string    `json:"phone,omitempty"`
	Bio       string    `json:"bio,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

// PublicUser strips the password hash from a stored user.
func PublicUser(u *User) UserResponse {
	return UserResponse{
		ID:        u.ID,
		Email:     u.Email,
		FullName:  u.FullName,
		Phone:     u.Phone,
		Bio:       u.Bio,
		CreatedAt: u.CreatedAt,
	}
}
