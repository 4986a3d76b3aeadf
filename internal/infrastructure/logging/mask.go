package logging

import (
	"net/url"
	"strings"
)

// MaskSecret keeps only the last 4 characters of a token.
func MaskSecret(value string) string {
	value = strings.TrimSpace(value)
	if value == "" {
		return ""
	}
	if len(value) <= 4 {
		return "****"
	}
	return "****" + value[len(value)-4:]
}

// MaskURL keeps scheme and host and hides path and query, which for inbound
// CRM webhooks carry the location and trigger ids.
func MaskURL(raw string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return ""
	}
	u, err := url.Parse(raw)
	if err != nil || u.Host == "" {
		return MaskSecret(raw)
	}
	masked := u.Scheme + "://" + u.Host
	if p := strings.Trim(u.Path, "/"); p != "" {
		masked += "/" + MaskSecret(p)
	}
	return masked
}

// MaskEmail hides the local part of an address: jane@example.com -> j***@example.com.
func MaskEmail(email string) string {
	email = strings.TrimSpace(email)
	at := strings.LastIndex(email, "@")
	if at <= 0 {
		return MaskSecret(email)
	}
	return email[:1] + "***" + email[at:]
}
