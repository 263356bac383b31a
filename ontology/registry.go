package ontology

import (
	"fmt"
	"slices"
	"strings"
)

// Registry holds the derived descriptors for one class table and serves
// the three read surfaces: sorted descriptor list, sorted name list, and
// exact-match lookup. A Registry is immutable after construction and safe
// for any number of concurrent readers without locking.
type Registry struct {
	byName      map[string]ClassDescriptor
	descriptors []ClassDescriptor
	names       []string
}

// NewRegistry derives a registry from a raw class table. Each entry
// becomes exactly one descriptor via DeriveDescriptor; the sorted views
// are computed here, once.
//
// An empty class name or an empty glyph aborts construction. The error
// reports every offending entry; there is no partial registry on failure.
func NewRegistry(raw map[string]RawClassDefinition) (*Registry, error) {
	var problems []string
	for name, def := range raw {
		if name == "" {
			problems = append(problems, "empty class name")
			continue
		}
		if def.Glyph == "" {
			problems = append(problems, fmt.Sprintf("class %q has no glyph", name))
		}
	}
	if len(problems) > 0 {
		slices.Sort(problems)
		return nil, fmt.Errorf("invalid class table: %s", strings.Join(problems, "; "))
	}

	r := &Registry{
		byName:      make(map[string]ClassDescriptor, len(raw)),
		descriptors: make([]ClassDescriptor, 0, len(raw)),
		names:       make([]string, 0, len(raw)),
	}
	for name, def := range raw {
		r.byName[name] = DeriveDescriptor(name, def)
		r.names = append(r.names, name)
	}
	slices.Sort(r.names)
	for _, name := range r.names {
		r.descriptors = append(r.descriptors, r.byName[name])
	}
	return r, nil
}

// Descriptors returns all class descriptors sorted ascending by class
// name. The returned slice is the caller's to keep.
func (r *Registry) Descriptors() []ClassDescriptor {
	return slices.Clone(r.descriptors)
}

// ClassNames returns all class names, sorted ascending, in the same
// order as Descriptors. The returned slice is the caller's to keep.
func (r *Registry) ClassNames() []string {
	return slices.Clone(r.names)
}

// ByName returns the descriptor for an exact class name. The second
// return reports whether the name is in the table; a miss is a normal
// result, not an error.
func (r *Registry) ByName(name string) (ClassDescriptor, bool) {
	d, ok := r.byName[name]
	return d, ok
}

// Len returns the number of classes in the registry.
func (r *Registry) Len() int {
	return len(r.descriptors)
}
