package ontology

import (
	"fmt"
	"sync"
)

var (
	builtinOnce sync.Once
	builtin     *Registry
)

// Builtin returns the process-wide registry over the compiled-in class
// table. The first call builds the registry; every later call returns
// the same instance. Safe for concurrent use.
//
// A compiled-in table that fails validation is a defect in this package,
// so Builtin panics rather than hand out a half-built ontology.
func Builtin() *Registry {
	builtinOnce.Do(func() {
		r, err := NewRegistry(builtinClasses)
		if err != nil {
			panic(fmt.Sprintf("ontology: builtin class table: %v", err))
		}
		builtin = r
	})
	return builtin
}
