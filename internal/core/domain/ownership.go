package domain

// AssertOwner enforces the ownership policy: only the identity that created a
// resource may mutate or delete it. Callers must check resource existence
// first; this is a pure predicate with no side effects.
func AssertOwner(ownerID, actorID string) error {
	if !SameID(ownerID, actorID) {
		return ErrForbidden
	}
	return nil
}
