// Package dataset embeds the name and location pools the generator draws
// from and adapts them to the generator's source interfaces.
package dataset

import (
	"embed"
	"encoding/json"
	"fmt"
	"math/rand"

	"github.com/vietanh2810/familymap-api/internal/domain"
	"github.com/vietanh2810/familymap-api/internal/generator"
)

//go:embed mnames.json fnames.json snames.json locations.json
var files embed.FS

type nameList struct {
	Data []string `json:"data"`
}

type locationList struct {
	Data []generator.Location `json:"data"`
}

// Source draws uniformly from the embedded pools.
type Source struct {
	male      []string
	female    []string
	surnames  []string
	locations []generator.Location
	rng       *rand.Rand
}

func Load(rng *rand.Rand) (*Source, error) {
	s := &Source{rng: rng}

	for _, f := range []struct {
		name string
		dest *[]string
	}{
		{"mnames.json", &s.male},
		{"fnames.json", &s.female},
		{"snames.json", &s.surnames},
	} {
		var list nameList
		if err := decode(f.name, &list); err != nil {
			return nil, err
		}
		*f.dest = list.Data
	}

	var locations locationList
	if err := decode("locations.json", &locations); err != nil {
		return nil, err
	}
	s.locations = locations.Data

	return s, nil
}

// MustLoad is Load for callers where a malformed embedded asset is fatal.
func MustLoad(rng *rand.Rand) *Source {
	s, err := Load(rng)
	if err != nil {
		panic(err)
	}

	return s
}

func (s *Source) GivenName(gender string) string {
	if gender == domain.GenderFemale {
		return s.female[s.rng.Intn(len(s.female))]
	}

	return s.male[s.rng.Intn(len(s.male))]
}

func (s *Source) Surname() string {
	return s.surnames[s.rng.Intn(len(s.surnames))]
}

func (s *Source) Location() generator.Location {
	return s.locations[s.rng.Intn(len(s.locations))]
}

func decode(name string, dest any) error {
	raw, err := files.ReadFile(name)
	if err != nil {
		return fmt.Errorf("files.ReadFile(%v) -> %w", name, err)
	}

	if err := json.Unmarshal(raw, dest); err != nil {
		return fmt.Errorf("json.Unmarshal(%v) -> %w", name, err)
	}

	return nil
}
