package repository

import "github.com/google/uuid"

// IsUUID reports whether s is a hyphenated 8-4-4-4-12 hex identifier.
// uuid.Parse also accepts braced, urn and bare-hex forms, which the length
// check excludes.
func IsUUID(s string) bool {
	if len(s) != 36 {
		return false
	}
	_, err := uuid.Parse(s)
	return err == nil
}

// RouteUserKey splits an external identifier into the user_id or
// participant_id column value.
func RouteUserKey(key string) (userID, participantID *string) {
	if IsUUID(key) {
		return &key, nil
	}
	return nil, &key
}
