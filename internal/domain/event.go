package domain

// Event types always present for a generated ancestor.
const (
	EventBirth    = "Birth"
	EventMarriage = "Marriage"
	EventDeath    = "Death"
)

// Event is a life event tied to a Person and to the owning username.
// Year stays textual end to end, as stored.
type Event struct {
	ID         string  `json:"eventID"`
	PersonID   string  `json:"personID"`
	Descendant string  `json:"descendant"`
	EventType  string  `json:"eventType"`
	Latitude   float64 `json:"latitude"`
	Longitude  float64 `json:"longitude"`
	Country    string  `json:"country"`
	City       string  `json:"city"`
	Year       string  `json:"year"`
}
