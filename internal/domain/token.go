package domain

// AuthToken maps an opaque value to a user id. Tokens never expire; many
// tokens may point at the same user.
type AuthToken struct {
	Value  string `json:"authToken"`
	UserID string `json:"uid"`
}
