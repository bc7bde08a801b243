package utils

import (
	"regexp"
	"strings"
)

var (
	unsafeKeyRegex = regexp.MustCompile(`[^a-zA-Z0-9._-]+`)
	multiDashRegex = regexp.MustCompile(`-+`)
)

// SanitizeFilename strips path separators and unsafe characters so a
// client-supplied filename can be embedded in a storage key.
func SanitizeFilename(name string) string {
	if i := strings.LastIndexAny(name, `/\`); i >= 0 {
		name = name[i+1:]
	}

	name = strings.TrimSpace(name)
	name = unsafeKeyRegex.ReplaceAllString(name, "-")
	name = multiDashRegex.ReplaceAllString(name, "-")
	name = strings.Trim(name, "-")

	if name == "" {
		return "file"
	}
	return name
}

func StrPtr(s string) *string {
	return &s
}

func PtrString(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
