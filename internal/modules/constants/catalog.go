package constants

import (
	"fmt"
	"sort"

	"gopkg.in/yaml.v3"

	"github.com/mtimmerkamp/littlecalc/internal/core"
	"github.com/mtimmerkamp/littlecalc/internal/data/embedded"
	"github.com/mtimmerkamp/littlecalc/pkg/number"
)

// UnknownConstantError reports a lookup of a constant id the catalog
// does not know.
type UnknownConstantError struct {
	ID string
}

func (e *UnknownConstantError) Error() string {
	return fmt.Sprintf("no such constant: %q", e.ID)
}

// ComputationError reports a failure while computing a
// precision-dependent constant.
type ComputationError struct {
	ID  string
	Err error
}

func (e *ComputationError) Error() string {
	return fmt.Sprintf("cannot compute constant %q: %v", e.ID, e.Err)
}

func (e *ComputationError) Unwrap() error { return e.Err }

// CalcFunc computes a constant at the calculator's ambient precision.
type CalcFunc func(cat *Catalog, c *core.Calculator) (number.Value, error)

// Catalog maps constant ids to their values. Fixed constants are known
// to a fixed number of significant digits and stored as literals;
// computed constants are recomputed on every request so they track the
// ambient precision.
type Catalog struct {
	descriptions map[string]string
	fixed        map[string]string
	calculators  map[string]CalcFunc
}

type catalogEntry struct {
	ID          string `yaml:"id"`
	Description string `yaml:"description"`
	Value       string `yaml:"value"`
}

type catalogFile struct {
	Constants []catalogEntry `yaml:"constants"`
}

// NewCatalog parses the embedded constant catalog and registers the
// computed constants on top of it.
func NewCatalog() (*Catalog, error) {
	cat := &Catalog{
		descriptions: make(map[string]string),
		fixed:        make(map[string]string),
		calculators:  make(map[string]CalcFunc),
	}

	var file catalogFile
	if err := yaml.Unmarshal(embedded.ConstantsCatalogData, &file); err != nil {
		return nil, fmt.Errorf("failed to parse constant catalog: %w", err)
	}
	for _, entry := range file.Constants {
		if entry.ID == "" {
			return nil, fmt.Errorf("constant catalog entry without id")
		}
		if cat.Has(entry.ID) {
			return nil, fmt.Errorf("duplicate constant id %q in catalog", entry.ID)
		}
		if _, err := number.Parse(entry.Value); err != nil {
			return nil, fmt.Errorf("constant %q has invalid value %q: %w", entry.ID, entry.Value, err)
		}
		cat.AddFixed(entry.ID, entry.Description, entry.Value)
	}

	registerComputed(cat)
	return cat, nil
}

// AddFixed registers a constant with a fixed-precision literal value.
// An existing constant with the same id is replaced.
func (cat *Catalog) AddFixed(id, description, value string) {
	cat.descriptions[id] = description
	cat.fixed[id] = value
	delete(cat.calculators, id)
}

// AddComputed registers a constant that is computed on every request.
// An existing constant with the same id is replaced.
func (cat *Catalog) AddComputed(id, description string, fn CalcFunc) {
	cat.descriptions[id] = description
	cat.calculators[id] = fn
	delete(cat.fixed, id)
}

// Has reports whether the catalog knows the given constant id.
func (cat *Catalog) Has(id string) bool {
	_, ok := cat.descriptions[id]
	return ok
}

// Describe returns the description stored for a constant id.
func (cat *Catalog) Describe(id string) string {
	return cat.descriptions[id]
}

// IDs returns all known constant ids, sorted.
func (cat *Catalog) IDs() []string {
	ids := make([]string, 0, len(cat.descriptions))
	for id := range cat.descriptions {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Get returns the value of the requested constant. Computed constants
// take precedence over fixed ones; fixed values are parsed through the
// calculator's converter chain so they honor the active numeral
// systems.
func (cat *Catalog) Get(id string, c *core.Calculator) (number.Value, error) {
	if fn, ok := cat.calculators[id]; ok {
		v, err := fn(cat, c)
		if err != nil {
			return number.Value{}, &ComputationError{ID: id, Err: err}
		}
		return v, nil
	}
	if value, ok := cat.fixed[id]; ok {
		return c.ToNumeric(value)
	}
	return number.Value{}, &UnknownConstantError{ID: id}
}
