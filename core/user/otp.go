package user

import (
	"crypto/rand"
	"crypto/subtle"
	"errors"
	"fmt"
	"io"
	"math/big"
)

// A signup verification code is 4 numeric digits, held only in the session
// view and never persisted. Delivery is simulated (see Service.SendOTP).

var (
	otpMax     = big.NewInt(10000)
	randReader io.Reader = rand.Reader // mockable

	ErrInvalidOTP = errors.New("invalid verification code")
)

// GenerateOTP returns a fresh 4-digit code, zero-padded.
func GenerateOTP() (string, error) {
	n, err := rand.Int(randReader, otpMax)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%04d", n.Int64()), nil
}

// VerifyOTP checks enteredCode against the code generated for this session.
// An absent expected code (never requested, or already consumed) fails the
// same way as a mismatch.
func VerifyOTP(expectedCode, enteredCode string) error {
	if expectedCode == "" || enteredCode == "" {
		return ErrInvalidOTP
	}
	if subtle.ConstantTimeCompare([]byte(expectedCode), []byte(enteredCode)) == 0 {
		return ErrInvalidOTP
	}
	return nil
}
