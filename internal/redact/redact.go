// Package redact provides utilities for scrubbing sensitive information
// from strings before they are logged. This prevents accidental leakage of
// credentials, connection strings, and tokens through error messages.
package redact

import "regexp"

// Redaction placeholders.
const (
	RedactionPlaceholder          = "[REDACTED]"
	RedactedCredentialPlaceholder = "[REDACTED_CREDENTIAL]"
)

// Precompiled regex patterns
var (
	// Database connection strings with inline credentials
	dbConnRegex = regexp.MustCompile(`(?i)(postgres|postgresql|mysql|db|database)://[^@\s]+@`)

	// Password-ish key/value fragments
	passwordRegex = regexp.MustCompile(`(?i)(password|passwd|pwd)([=:\s]?['"]?)[^'"&\s]{3,}`)

	// API keys, secrets, and similar credentials
	apiKeyRegex = regexp.MustCompile(
		`(?i)(api[_-]?key|token|secret|key|auth)(['"\s:=]+)[A-Za-z0-9_\-.~+/]{8,}`,
	)

	// The standard three-part base64url-encoded JWT token format
	jwtTokenRegex = regexp.MustCompile(`eyJ[a-zA-Z0-9_-]+\.eyJ[a-zA-Z0-9_-]+\.[a-zA-Z0-9_-]+`)
)

// String returns s with all recognized sensitive fragments replaced by
// placeholders.
func String(s string) string {
	if s == "" {
		return s
	}

	s = dbConnRegex.ReplaceAllString(s, "$1://"+RedactedCredentialPlaceholder+"@")
	s = passwordRegex.ReplaceAllString(s, "$1$2"+RedactionPlaceholder)
	s = apiKeyRegex.ReplaceAllString(s, "$1$2"+RedactionPlaceholder)
	s = jwtTokenRegex.ReplaceAllString(s, RedactionPlaceholder)

	return s
}

// Error returns the redacted message of err, or an empty string for nil.
func Error(err error) string {
	if err == nil {
		return ""
	}
	return String(err.Error())
}
