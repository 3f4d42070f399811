package walk

import (
	"fmt"
	"sort"
	"strings"
	"sync"
)

// AllVariants is the name that expands to every registered variant.
const AllVariants = "all"

// Variant is a named walker configuration.
// A walker either uses Directions, or commits at construction to one of
// Alternatives and keeps it for its whole path.
type Variant struct {
	Name         string
	Title        string
	Directions   []Direction
	Alternatives [][]Direction
	Step         StepPolicy
}

// Validate checks that the variant can drive a walker.
func (v Variant) Validate() error {
	if v.Name == "" {
		return fmt.Errorf("walk: variant without a name: %w", ErrInvalidConfig)
	}
	if len(v.Directions) == 0 && len(v.Alternatives) == 0 {
		return fmt.Errorf("walk: variant %q has no directions: %w", v.Name, ErrInvalidConfig)
	}
	for _, alt := range v.Alternatives {
		if len(alt) == 0 {
			return fmt.Errorf("walk: variant %q has an empty alternative: %w", v.Name, ErrInvalidConfig)
		}
	}
	return v.Step.Validate()
}

// directions picks the direction set a new walker will use.
func (v Variant) directions(r Rand) []Direction {
	if len(v.Alternatives) > 0 {
		return Choose(r, v.Alternatives)
	}
	return v.Directions
}

// VariantInfo contains metadata about a registered variant.
type VariantInfo struct {
	Name  string
	Title string
	Step  string
}

// Registry maps variant names to configurations.
type Registry struct {
	mu       sync.RWMutex
	variants map[string]Variant
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{variants: make(map[string]Variant)}
}

// Register adds a variant.
// Panics if the variant is invalid or the name is already registered.
func (r *Registry) Register(v Variant) {
	if err := v.Validate(); err != nil {
		panic(err.Error())
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	name := strings.ToLower(v.Name)
	if _, exists := r.variants[name]; exists {
		panic(fmt.Sprintf("walk: variant %q already registered", name))
	}
	v.Name = name
	r.variants[name] = v
}

// Lookup returns the variant registered under name.
func (r *Registry) Lookup(name string) (Variant, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	v, ok := r.variants[strings.ToLower(name)]
	if !ok {
		return Variant{}, fmt.Errorf("walk: unknown variant %q: %w", name, ErrInvalidConfig)
	}
	return v, nil
}

// Exists reports whether a variant is registered under name.
func (r *Registry) Exists(name string) bool {
	_, err := r.Lookup(name)
	return err == nil
}

// Names returns all registered variant names, sorted.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.variants))
	for name := range r.variants {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// List returns information about all registered variants, sorted by name.
func (r *Registry) List() []VariantInfo {
	names := r.Names()

	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]VariantInfo, 0, len(names))
	for _, name := range names {
		v := r.variants[name]
		result = append(result, VariantInfo{Name: v.Name, Title: v.Title, Step: v.Step.String()})
	}
	return result
}

// Resolve expands "all" and validates every name.
// The returned slice keeps the order of names, without duplicates.
func (r *Registry) Resolve(names []string) ([]Variant, error) {
	seen := make(map[string]bool, len(names))
	var result []Variant
	for _, name := range names {
		if strings.EqualFold(name, AllVariants) {
			for _, n := range r.Names() {
				if !seen[n] {
					seen[n] = true
					v, _ := r.Lookup(n)
					result = append(result, v)
				}
			}
			continue
		}
		v, err := r.Lookup(name)
		if err != nil {
			return nil, err
		}
		if !seen[v.Name] {
			seen[v.Name] = true
			result = append(result, v)
		}
	}
	return result, nil
}

// PlainVariant builds the plain walker of the given neighbourhood with a
// fixed step size. It is not registered.
func PlainVariant(p Pattern, stepSize float64) Variant {
	return Variant{
		Name:       string(p),
		Title:      "Plain " + string(p) + " walker",
		Directions: p.Directions(),
		Step:       Fixed(stepSize),
	}
}

var defaultRegistry = NewRegistry()

func init() {
	defaultRegistry.Register(Variant{
		Name:       "rook",
		Title:      "Rook",
		Directions: Cardinal,
		Step:       Uniform(0, 20),
	})
	defaultRegistry.Register(Variant{
		Name:       "bishop",
		Title:      "Bishop",
		Directions: Diagonals,
		Step:       Uniform(0, 20),
	})
	defaultRegistry.Register(Variant{
		Name:       "king",
		Title:      "King",
		Directions: All,
		Step:       Fixed(1),
	})
	defaultRegistry.Register(Variant{
		Name:       "queen",
		Title:      "Queen",
		Directions: All,
		Step:       Fixed(20),
	})
	defaultRegistry.Register(Variant{
		Name:  "pawn",
		Title: "Pawn",
		Alternatives: [][]Direction{
			{North, NorthWest, NorthEast},
			{South, SouthWest, SouthEast},
		},
		Step: Fixed(1),
	})
}

// Default returns the registry holding the built-in chess-piece variants.
func Default() *Registry {
	return defaultRegistry
}

// Register adds a variant to the default registry.
func Register(v Variant) {
	defaultRegistry.Register(v)
}

// KnownVariants returns the names in the default registry.
func KnownVariants() []string {
	return defaultRegistry.Names()
}
