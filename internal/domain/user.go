package domain

// User is a registered account. Every user owns exactly one root Person
// (PersonID) from which the synthetic ancestor tree hangs.
type User struct {
	ID       string `json:"uid"`
	PersonID string `json:"personID"`
	Username string `json:"userName"`
	Password string `json:"password"`
	Email    string `json:"email"`
}

// Login is the payload returned by the register and login operations.
type Login struct {
	AuthToken string `json:"authToken"`
	Username  string `json:"userName"`
	PersonID  string `json:"personID"`
}
