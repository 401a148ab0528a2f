package utils

import (
	"fmt"
	"regexp"
	"strings"
)

// Indian mobile numbers start with 6-9 and have 10 digits
var msisdnPattern = regexp.MustCompile(`^[6-9]\d{9}$`)

// ValidateMSISDN validates a phone number and normalizes it to the
// 91-prefixed international format.
func ValidateMSISDN(msisdn string) (bool, string, error) {
	// Clean the input by removing any separator characters
	stripped := strings.ReplaceAll(msisdn, "-", "")
	stripped = strings.ReplaceAll(stripped, " ", "")
	stripped = strings.ReplaceAll(stripped, "+", "")

	// Remove country code or trunk prefix if present
	if strings.HasPrefix(stripped, "91") && len(stripped) == 12 {
		stripped = stripped[2:]
	} else if strings.HasPrefix(stripped, "0") {
		stripped = stripped[1:]
	}

	if !msisdnPattern.MatchString(stripped) {
		return false, "", fmt.Errorf("invalid MSISDN format")
	}

	// Format with country code
	formatted := "91" + stripped

	return true, formatted, nil
}
