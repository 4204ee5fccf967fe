package store

// IsOwnerOrAdmin returns true if the session's username matches the owner of
// the target record, OR the session carries the admin flag. It is the single
// authorization decision for every feedback and user mutation.
//
// Callers must reject requests with no session identity before calling this;
// "not logged in" is a distinct condition from "logged in but not allowed".
func IsOwnerOrAdmin(sessionUsername string, isAdmin bool, ownerUsername string) bool {
	if isAdmin {
		return true
	}
	return sessionUsername == ownerUsername
}
