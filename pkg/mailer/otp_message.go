package mailer

import (
	"fmt"
	"time"
)

const otpSubject = "Verify your account"

// NewOTPJob builds the fixed verification email for a freshly issued code.
func NewOTPJob(to, code string, ttl time.Duration) EmailJob {
	return EmailJob{
		To:      to,
		Subject: otpSubject,
		Body:    fmt.Sprintf("Your OTP is %s. It expires in %d minutes.", code, int(ttl.Minutes())),
	}
}
