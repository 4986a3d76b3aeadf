// Package hashing implements the one-way transform applied to identity fields
// (email, phone) before they leave the service.
package hashing

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"
	"unicode"
)

// Hash lowercases and trims value, then returns its SHA-256 digest as
// lowercase hex. Equal normalized inputs always give equal digests.
func Hash(value string) string {
	sum := sha256.Sum256([]byte(strings.ToLower(strings.TrimSpace(value))))
	return hex.EncodeToString(sum[:])
}

// DigitsOnly drops every non-digit character from value.
func DigitsOnly(value string) string {
	return strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' {
			return r
		}
		return -1
	}, value)
}

// HashPhone strips formatting from a phone number and hashes the digits.
// It returns "" when value holds no digits.
func HashPhone(value string) string {
	digits := DigitsOnly(value)
	if digits == "" {
		return ""
	}
	return Hash(digits)
}

// HashEmail hashes a non-blank email. It returns "" for blank input.
func HashEmail(value string) string {
	if strings.IndexFunc(value, func(r rune) bool { return !unicode.IsSpace(r) }) < 0 {
		return ""
	}
	return Hash(value)
}
