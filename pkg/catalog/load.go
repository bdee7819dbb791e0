package catalog

import (
	"os"

	"github.com/mchmarny/leadcalc/pkg/model"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// ProductFile is the on-disk format for user-defined products (YAML or JSON).
type ProductFile struct {
	Products []model.Product `json:"products" yaml:"products"`
}

// LoadFile reads and validates the products in path. IDs must be unique
// within the file and must not shadow a built-in product.
func LoadFile(path string) ([]model.Product, error) {
	if path == "" {
		return nil, errors.New("product file path required")
	}

	b, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "error reading product file: %s", path)
	}

	return Parse(b)
}

// Parse decodes and validates a product file body.
func Parse(b []byte) ([]model.Product, error) {
	var f ProductFile
	if err := yaml.Unmarshal(b, &f); err != nil {
		return nil, errors.Wrap(err, "error decoding product file")
	}

	seen := make(map[string]bool, len(f.Products))
	for i := range f.Products {
		p := &f.Products[i]
		if err := p.Validate(); err != nil {
			return nil, errors.Wrapf(err, "invalid product at index %d", i)
		}
		if Exists(p.ID) {
			return nil, errors.Errorf("product id %q is reserved by the built-in catalog", p.ID)
		}
		if seen[p.ID] {
			return nil, errors.Errorf("duplicate product id: %s", p.ID)
		}
		seen[p.ID] = true
		if p.Name == "" {
			p.Name = p.ID
		}
	}

	return f.Products, nil
}
