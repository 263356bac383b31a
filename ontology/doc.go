// Package ontology defines the static class ontology for music notation
// symbols: the curated table of symbol classes, the derivation rule that
// computes standard-alignment facts for each class, and the immutable
// registry serving read-only views of the result.
//
// # Data Model
//
// A class starts life as a RawClassDefinition: the authored table entry
// carrying a display glyph, reference-dataset membership, an alignment
// claim, and optional grouping/transcription/justification attributes.
// DeriveDescriptor turns each raw entry into a ClassDescriptor, adding
// the derived facts:
//   - IsStandardAligned: whether the class name follows the SMuFL glyph
//     vocabulary (see the smufl subpackage)
//   - Justification: whether a divergence from the standard is accounted
//     for (notApplicable / satisfied / missing)
//
// A divergence counts as satisfied when the class is a container, is
// transcribable, or records a justification. A diverged class with none
// of these is a data-quality gap; Lint surfaces it as a finding rather
// than an error.
//
// # Registry
//
// NewRegistry validates a raw table and precomputes the three read
// surfaces: Descriptors (sorted by class name), ClassNames (same order),
// and ByName (exact-match lookup with a comma-ok miss). Registries are
// immutable after construction and safe for concurrent readers.
//
// Builtin returns the process-wide registry over the compiled-in class
// table. Updating that table means editing classes.go and rebuilding.
//
// # Usage
//
//	reg := ontology.Builtin()
//	if d, ok := reg.ByName("noteheadBlack"); ok {
//	    fmt.Println(d.Glyph, d.IsStandardAligned)
//	}
//	for _, f := range ontology.Lint(reg) {
//	    fmt.Printf("%s: %s: %s\n", f.ClassName, f.Rule, f.Detail)
//	}
package ontology
