package session

import "strings"

const (
	// KeySeparator joins the prefix, session id and attribute key.
	KeySeparator = ":"

	maxIDLength = 256
)

// BuildKey derives the storage key for an attribute.
// It returns "prefix:id:attr", or "id:attr" when prefix is empty.
func BuildKey(prefix, id, attr string) string {
	if prefix == "" {
		return id + KeySeparator + attr
	}
	return prefix + KeySeparator + id + KeySeparator + attr
}

// validateAttr rejects keys that would make the composite key ambiguous.
func validateAttr(attr string) error {
	if attr == "" || strings.Contains(attr, KeySeparator) {
		return ErrInvalidKey
	}
	return nil
}

func validateID(id string) error {
	if id == "" {
		return ErrEmptySessionID
	}
	if len(id) > maxIDLength || strings.Contains(id, KeySeparator) {
		return ErrInvalidSessionID
	}
	return nil
}
