package helpers

import "strings"

// NullableString converts a string pointer to a value usable as a nullable
// SQL parameter; empty strings are stored as NULL so stale blanks never
// survive a write.
func NullableString(s *string) *string {
	if s == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*s)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
