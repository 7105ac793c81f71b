package mail

import (
	"strings"
	"testing"
	"time"
)

func TestOTPBodyContainsCodeAndValidity(t *testing.T) {
	body := OTPBody("493028", 2*time.Minute)

	if !strings.Contains(body, "493028") {
		t.Error("body does not contain the passcode")
	}
	if !strings.Contains(body, "expire in 2 minutes") {
		t.Error("body does not state the validity window")
	}
	if !strings.Contains(body, "<!DOCTYPE html>") {
		t.Error("body is not an HTML document")
	}
}
