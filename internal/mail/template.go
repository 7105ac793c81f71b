package mail

import (
	"fmt"
	"time"
)

// OTPSubject is the subject line for password-reset passcode mail.
const OTPSubject = "Password Reset OTP"

// OTPBody renders the HTML body for a password-reset passcode email.
func OTPBody(code string, validity time.Duration) string {
	return fmt.Sprintf(`<!DOCTYPE html>
<html>
<head>
  <meta charset="utf-8">
  <title>Password Reset</title>
</head>
<body style="font-family: Arial, sans-serif; color: #333; max-width: 600px; margin: 0 auto;">
  <div style="padding: 20px; border: 1px solid #e9e9e9; border-radius: 5px;">
    <div style="background-color: #4a6cf7; color: white; padding: 15px; text-align: center; border-radius: 5px 5px 0 0;">
      <h2>Password Reset</h2>
    </div>
    <div style="padding: 20px;">
      <p>Hello,</p>
      <p>You have requested to reset your password. Please use the following OTP to complete the process:</p>
      <div style="margin: 25px 0; text-align: center;">
        <div style="font-size: 30px; font-weight: bold; letter-spacing: 10px; color: #4a6cf7;">%s</div>
      </div>
      <p>This OTP will expire in %d minutes.</p>
      <p>If you did not request a password reset, please ignore this email and your password will remain unchanged.</p>
    </div>
    <div style="margin-top: 20px; font-size: 12px; color: #999; text-align: center;">
      <p>&copy; %d Tyler. All rights reserved.</p>
    </div>
  </div>
</body>
</html>`, code, int(validity.Minutes()), time.Now().Year())
}
