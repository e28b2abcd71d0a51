package helpers

import (
	"crypto/rand"
	"encoding/binary"
	"fmt"
)

// OTPLength is the fixed number of digits in a verification code.
const OTPLength = 6

// GenOTPCode generates a cryptographically random 6-digit code,
// zero-padded ("004217" is a valid code).
func GenOTPCode() (string, error) {
	var b [4]byte
	if _, err := rand.Read(b[:]); err != nil {
		return "", err
	}
	n := binary.BigEndian.Uint32(b[:]) % 1000000
	return fmt.Sprintf("%06d", n), nil
}
