package catalog

import (
	"os"

	"gopkg.in/yaml.v3"

	"github.com/orrerylab/orrery/internal/timeline"
)

// File is the on-disk catalog format: an optional time scale override
// plus the ordered body list.
type File struct {
	Scale  *timeline.Scale `yaml:"scale"`
	Bodies []Body          `yaml:"bodies"`
}

// Load reads a catalog file, validates it and returns the catalog plus
// the time scale (the default scale when the file does not set one).
func Load(path string) (*Catalog, timeline.Scale, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, timeline.Scale{}, err
	}
	return Parse(data)
}

// Parse decodes and validates catalog YAML.
func Parse(data []byte) (*Catalog, timeline.Scale, error) {
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, timeline.Scale{}, err
	}

	scale := timeline.DefaultScale()
	if f.Scale != nil {
		scale = *f.Scale
	}

	c := New()
	for _, b := range f.Bodies {
		if err := c.Add(b); err != nil {
			return nil, timeline.Scale{}, err
		}
	}
	if err := c.Validate(); err != nil {
		return nil, timeline.Scale{}, err
	}
	return c, scale, nil
}

// Save writes the catalog (with an explicit scale) back to YAML.
func Save(path string, c *Catalog, scale timeline.Scale) error {
	f := File{Scale: &scale, Bodies: c.Bodies()}
	data, err := yaml.Marshal(&f)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
