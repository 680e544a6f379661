package handlers

import "strings"

// normalizeEmail trims and lowercases an address.
func normalizeEmail(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

func normalizeEmailPtr(s *string) *string {
	if s == nil {
		return nil
	}
	v := normalizeEmail(*s)
	return &v
}
