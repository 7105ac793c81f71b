package crypto

import (
	"crypto/rand"
	"errors"
	"math/big"

	"github.com/google/uuid"
)

const otpDigits = "0123456789"

var ErrOTPLengthInvalid = errors.New("otp length must be positive")

// GenerateOTP produces a numeric one-time passcode of the given length
// using a cryptographically secure source. Leading zeros are allowed, so
// the code is always compared as a string.
func GenerateOTP(length int) (string, error) {
	if length <= 0 {
		return "", ErrOTPLengthInvalid
	}

	code := make([]byte, length)
	max := big.NewInt(int64(len(otpDigits)))
	for i := range code {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			return "", err
		}
		code[i] = otpDigits[n.Int64()]
	}

	return string(code), nil
}

// GenerateResetTicket produces an opaque single-use ticket handed out
// after a successful OTP confirmation.
func GenerateResetTicket() string {
	return uuid.NewString()
}
