package models

// Identity is the verified caller extracted from a bearer token. The rest of
// the backend trusts it without re-validating signatures.
type Identity struct {
	UserID string
	Role   string
}

const RoleAdmin = "admin"

func (i *Identity) IsAdmin() bool {
	return i != nil && i.Role == RoleAdmin
}
