// Package generator produces synthetic ancestor trees. Generation is pure:
// it touches no storage, so an orchestrator can materialize a whole subtree
// and persist it in one transaction afterwards.
package generator

import (
	"math/rand"
	"strconv"

	"github.com/google/uuid"

	"github.com/vietanh2810/familymap-api/internal/domain"
)

const (
	// referenceYear anchors all generated dates.
	referenceYear = 2017
	// generationSpan is the assumed number of years between generations.
	generationSpan = 18

	minExtraEvents = 1
	maxExtraEvents = 5
)

// Location is a place an event happened at.
type Location struct {
	Country   string  `json:"country"`
	City      string  `json:"city"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// NameSource supplies random names for generated persons.
type NameSource interface {
	GivenName(gender string) string
	Surname() string
}

// LocationSource supplies random locations for generated events.
type LocationSource interface {
	Location() Location
}

// Tree is the output of one generation run: every person created beyond the
// root, and every event attached to them.
type Tree struct {
	Persons []*domain.Person
	Events  []*domain.Event
}

type Generator struct {
	names     NameSource
	locations LocationSource
	rng       *rand.Rand
	newID     func() string
}

func New(names NameSource, locations LocationSource, rng *rand.Rand) *Generator {
	return &Generator{
		names:     names,
		locations: locations,
		rng:       rng,
		newID:     uuid.NewString,
	}
}

// Generate expands generations of ancestors above root. The root is mutated
// in place: it gains a spouse id and, when generations > 0, father and mother
// ids. For N generations the tree holds 2^(N+1)-1 persons — 2^(N+1)-2
// ancestors plus one spouse. Everyone except the spouse gets events.
func (g *Generator) Generate(root *domain.Person, generations int) *Tree {
	tree := &Tree{}

	g.addSpouse(root, tree)
	g.fillGenerations(root, generations, generations, tree)

	return tree
}

// addSpouse creates an event-less partner of the opposite gender and
// cross-assigns the spouse ids.
func (g *Generator) addSpouse(root *domain.Person, tree *Tree) {
	gender := domain.GenderMale
	if root.Gender == domain.GenderMale {
		gender = domain.GenderFemale
	}

	spouse := g.newPerson(root.Descendant, gender, g.names.Surname())
	root.SpouseID = spouse.ID
	spouse.SpouseID = root.ID

	tree.Persons = append(tree.Persons, spouse)
}

func (g *Generator) fillGenerations(person *domain.Person, total, remaining int, tree *Tree) {
	if remaining == 0 {
		return
	}

	// Fathers share the child's surname; mothers get their own.
	father := g.newPerson(person.Descendant, domain.GenderMale, person.LastName)
	tree.Events = append(tree.Events, g.lifeEvents(father, total-remaining)...)
	tree.Persons = append(tree.Persons, father)

	mother := g.newPerson(person.Descendant, domain.GenderFemale, g.names.Surname())
	tree.Events = append(tree.Events, g.lifeEvents(mother, total-remaining)...)
	tree.Persons = append(tree.Persons, mother)

	person.FatherID = father.ID
	person.MotherID = mother.ID
	father.SpouseID = mother.ID
	mother.SpouseID = father.ID

	g.fillGenerations(father, total, remaining-1, tree)
	g.fillGenerations(mother, total, remaining-1, tree)
}

func (g *Generator) newPerson(descendant, gender, lastName string) *domain.Person {
	return &domain.Person{
		ID:         g.newID(),
		Descendant: descendant,
		FirstName:  g.names.GivenName(gender),
		LastName:   lastName,
		Gender:     gender,
	}
}

// lifeEvents builds the mandatory Birth/Marriage/Death events plus 1-5
// randomly typed extras. Extra event years land anywhere in the lifespan with
// no ordering against the mandatory three; that matches the source behavior
// and is intentional.
func (g *Generator) lifeEvents(person *domain.Person, generation int) []*domain.Event {
	birthYear := g.birthYear(generation)
	deathYear := g.deathYear(birthYear)
	marriageYear := g.marriageYear(birthYear, deathYear)

	events := []*domain.Event{
		g.newEvent(person, domain.EventBirth, birthYear),
		g.newEvent(person, domain.EventMarriage, marriageYear),
		g.newEvent(person, domain.EventDeath, deathYear),
	}

	extras := g.intBetween(minExtraEvents, maxExtraEvents)
	for i := 0; i < extras; i++ {
		events = append(events, g.newEvent(person, g.randomEventType(), g.intBetween(birthYear, deathYear)))
	}

	return events
}

func (g *Generator) newEvent(person *domain.Person, eventType string, year int) *domain.Event {
	location := g.locations.Location()

	return &domain.Event{
		ID:         g.newID(),
		PersonID:   person.ID,
		Descendant: person.Descendant,
		EventType:  eventType,
		Latitude:   location.Latitude,
		Longitude:  location.Longitude,
		Country:    location.Country,
		City:       location.City,
		Year:       strconv.Itoa(year),
	}
}

func (g *Generator) birthYear(generation int) int {
	min := referenceYear - generationSpan - generation*generationSpan
	return g.intBetween(min, min+generationSpan)
}

func (g *Generator) deathYear(birthYear int) int {
	return g.intBetween(birthYear+generationSpan+1, birthYear+generationSpan*6)
}

func (g *Generator) marriageYear(birthYear, deathYear int) int {
	return g.intBetween(birthYear+generationSpan, deathYear-1)
}

func (g *Generator) randomEventType() string {
	switch n := g.intBetween(0, 100); {
	case n < 10:
		return "Court Record"
	case n < 20:
		return "Baptism"
	case n < 40:
		return "Christening"
	default:
		return "Census Record"
	}
}

// intBetween returns a uniform int in [min, max], both ends inclusive.
func (g *Generator) intBetween(min, max int) int {
	return g.rng.Intn(max-min+1) + min
}
