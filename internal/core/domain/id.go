package domain

import "strings"

// Entity references are opaque 24-character hex identifiers. The domain layer
// validates their shape and compares them by canonical string form; parsing
// into driver-native ids happens in the persistence layer.

// ValidID reports whether s has the shape of an entity identifier.
func ValidID(s string) bool {
	if len(s) != 24 {
		return false
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		if (c < '0' || c > '9') && (c < 'a' || c > 'f') && (c < 'A' || c > 'F') {
			return false
		}
	}
	return true
}

// CanonicalID normalizes an identifier to its canonical string form.
func CanonicalID(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// SameID compares two identifiers by canonical string form, never by the
// structured reference values the persistence layer hands back.
func SameID(a, b string) bool {
	return a != "" && CanonicalID(a) == CanonicalID(b)
}
