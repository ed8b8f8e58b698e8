// Package validation holds input checks for phone numbers and Aadhaar
// identifiers.
package validation

// MinMobileLength is the minimum number of digits accepted for a phone
// number.
const MinMobileLength = 10

// AadhaarLength is the exact number of digits in an Aadhaar identifier.
const AadhaarLength = 12

// ValidateMobileNumber checks that a phone number consists only of
// decimal digits and is at least MinMobileLength characters long.
func ValidateMobileNumber(number string) bool {
	if len(number) < MinMobileLength {
		return false
	}
	return isDigits(number)
}

// IsAadhaarNumber reports whether a value qualifies as an Aadhaar
// identifier: exactly AadhaarLength decimal digits.
func IsAadhaarNumber(value string) bool {
	if len(value) != AadhaarLength {
		return false
	}
	return isDigits(value)
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, c := range s {
		if c < '0' || c > '9' {
			return false
		}
	}
	return true
}
