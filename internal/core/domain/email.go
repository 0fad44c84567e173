package domain

import "strings"

// NormalizeEmail lower-cases the domain part of an address and leaves the
// local part untouched. Input without an "@" is returned as-is.
//
//	"TEST3@EXAMPLE.COM" → "TEST3@example.com"
func NormalizeEmail(email string) string {
	trimmed := strings.TrimSpace(email)
	at := strings.LastIndex(trimmed, "@")
	if at < 0 {
		return email
	}
	return trimmed[:at] + "@" + strings.ToLower(trimmed[at+1:])
}
