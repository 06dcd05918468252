package naturesite

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed seed.yaml
var defaultSeed []byte

// Seed is the fixture data a fresh store starts from. All of it lives in
// process memory for the lifetime of the app; nothing is written back.
type Seed struct {
	Posts       []BlogPost       `yaml:"posts"`
	Config      SiteConfig       `yaml:"config"`
	Events      []CalendarEvent  `yaml:"events"`
	Services    []Service        `yaml:"services"`
	Regions     []MapRegion      `yaml:"regions"`
	Submissions []UserSubmission `yaml:"submissions"`
}

// DefaultSeed parses the fixtures embedded in the binary.
func DefaultSeed() (Seed, error) {
	return parseSeed(defaultSeed)
}

// LoadSeedFile parses fixtures from a YAML file on disk, for sites that want
// their own starting content.
func LoadSeedFile(path string) (Seed, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Seed{}, fmt.Errorf("read seed file: %w", err)
	}
	return parseSeed(data)
}

func parseSeed(data []byte) (Seed, error) {
	var seed Seed
	if err := yaml.Unmarshal(data, &seed); err != nil {
		return Seed{}, fmt.Errorf("parse seed: %w", err)
	}
	return seed, nil
}
