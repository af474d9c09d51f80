package domain

// Genders accepted for a Person. The schema enforces the same set.
const (
	GenderMale   = "m"
	GenderFemale = "f"
)

// Person belongs to exactly one user (Descendant holds the owning username).
// Father/mother/spouse links are optional; ancestors beyond the generated
// depth keep them empty.
type Person struct {
	ID         string `json:"personID"`
	Descendant string `json:"descendant"`
	FirstName  string `json:"firstName"`
	LastName   string `json:"lastName"`
	Gender     string `json:"gender"`
	FatherID   string `json:"father,omitempty"`
	MotherID   string `json:"mother,omitempty"`
	SpouseID   string `json:"spouse,omitempty"`
}
