package scenario

import (
	"fmt"
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Scenario is a named profile with one or more concurrent exposures.
type Scenario struct {
	Name      string         `json:"name" yaml:"name"`
	Profile   ProfileSpec    `json:"profile" yaml:"profile"`
	Exposures []ExposureSpec `json:"exposures" yaml:"exposures"`
}

// File is the on-disk scenario format (YAML or JSON). A top-level profile
// applies to every scenario that does not set its own.
type File struct {
	Profile   *ProfileSpec `json:"profile,omitempty" yaml:"profile,omitempty"`
	Scenarios []Scenario   `json:"scenarios" yaml:"scenarios"`
}

// Load reads the scenarios in path.
func Load(path string) ([]Scenario, error) {
	if path == "" {
		return nil, errors.New("scenario file path required")
	}

	b, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "error reading scenario file: %s", path)
	}

	list, err := Parse(b)
	if err != nil {
		return nil, errors.Wrapf(err, "error parsing scenario file: %s", path)
	}
	return list, nil
}

// Parse decodes a scenario file body. Unnamed scenarios are named by position.
func Parse(b []byte) ([]Scenario, error) {
	var f File
	if err := yaml.Unmarshal(b, &f); err != nil {
		return nil, errors.Wrap(err, "error decoding scenarios")
	}

	if len(f.Scenarios) == 0 {
		return nil, errors.New("no scenarios defined")
	}

	for i := range f.Scenarios {
		s := &f.Scenarios[i]
		if s.Name == "" {
			s.Name = fmt.Sprintf("scenario-%d", i+1)
		}
		if f.Profile != nil && s.Profile.AgeGroup == "" && s.Profile.Country == "" {
			s.Profile = *f.Profile
		}
	}

	return f.Scenarios, nil
}
