package utils

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"math/big"
	"time"
)

// GenerateOTPCode returns a random 6-digit one-time password
func GenerateOTPCode() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(1000000))
	if err != nil {
		return "", fmt.Errorf("failed to generate OTP: %w", err)
	}
	return fmt.Sprintf("%06d", n.Int64()), nil
}

// GenerateReceiptID returns a timestamp-derived receipt identifier for
// gateway orders.
func GenerateReceiptID() string {
	return fmt.Sprintf("rcpt_%d", time.Now().UnixNano())
}

// GenerateSecureToken returns a random hex token of the given byte length
func GenerateSecureToken(bytes int) (string, error) {
	b := make([]byte, bytes)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("failed to generate token: %w", err)
	}
	return hex.EncodeToString(b), nil
}
