package chem

import (
	"bytes"
	_ "embed"
	"fmt"
	"io"
	"sort"
	"sync"

	"gopkg.in/yaml.v3"
)

//go:embed species.yaml
var defaultSpeciesData []byte

type catalogFile struct {
	Species []speciesEntry `yaml:"species"`
}

type speciesEntry struct {
	Name      string  `yaml:"name"`
	MolarMass float64 `yaml:"molar_mass"` // g/mol
	NTrDOFs   float64 `yaml:"n_tr_dofs"`
	Charge    int     `yaml:"charge"`
}

// Catalog maps species names to their static data.
type Catalog struct {
	species map[string]Species
}

var defaultCatalog = sync.OnceValue(func() *Catalog {
	cat, err := LoadCatalog(bytes.NewReader(defaultSpeciesData))
	if err != nil {
		panic(fmt.Sprintf("chem: embedded species data: %v", err))
	}
	return cat
})

// DefaultCatalog returns the catalog covering the embedded CEA dataset.
func DefaultCatalog() *Catalog {
	return defaultCatalog()
}

// LoadCatalog reads a YAML species list. Molar masses are given in g/mol.
func LoadCatalog(r io.Reader) (*Catalog, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	var f catalogFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("chem: parse catalog: %w", err)
	}

	cat := &Catalog{species: make(map[string]Species, len(f.Species))}
	for _, e := range f.Species {
		sp := Species{
			Name:      e.Name,
			MolarMass: e.MolarMass * 1e-3,
			NTrDOFs:   e.NTrDOFs,
			Charge:    e.Charge,
		}
		if err := sp.validate(); err != nil {
			return nil, err
		}
		if _, dup := cat.species[sp.Name]; dup {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateSpecies, sp.Name)
		}
		cat.species[sp.Name] = sp
	}
	return cat, nil
}

// Lookup returns the species with the given name.
func (c *Catalog) Lookup(name string) (Species, bool) {
	sp, ok := c.species[name]
	return sp, ok
}

// Names returns all species names in sorted order.
func (c *Catalog) Names() []string {
	names := make([]string, 0, len(c.species))
	for name := range c.species {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Len returns the number of species in the catalog.
func (c *Catalog) Len() int {
	return len(c.species)
}
