package ontology

import (
	"fmt"

	"github.com/omrstudio/notagraph/ontology/smufl"
)

// Rule identifies a lint rule.
type Rule string

const (
	// RuleUnjustifiedDivergence flags a diverged class with no recorded
	// account of the departure.
	RuleUnjustifiedDivergence Rule = "unjustified-divergence"

	// RuleUnresolvedEquivalent flags a standard equivalent naming no
	// class in the registry.
	RuleUnresolvedEquivalent Rule = "unresolved-equivalent"

	// RuleDivergedEquivalent flags a standard equivalent resolving to a
	// class that is itself diverged.
	RuleDivergedEquivalent Rule = "diverged-equivalent"

	// RuleUnknownStandardGlyph flags an aligned class whose name is not
	// a canonical SMuFL glyph name.
	RuleUnknownStandardGlyph Rule = "unknown-standard-glyph"

	// RuleGlyphMismatch flags an aligned class whose glyph differs from
	// the SMuFL codepoint for its name.
	RuleGlyphMismatch Rule = "glyph-mismatch"
)

// RuleDescriptions provides human-readable descriptions for lint rules.
var RuleDescriptions = map[Rule]string{
	RuleUnjustifiedDivergence: "Diverged class lacks a container, transcribable, or justification marker",
	RuleUnresolvedEquivalent:  "Standard equivalent names no class in the registry",
	RuleDivergedEquivalent:    "Standard equivalent resolves to a diverged class",
	RuleUnknownStandardGlyph:  "Aligned class name is not a canonical SMuFL glyph name",
	RuleGlyphMismatch:         "Aligned class glyph differs from the SMuFL codepoint for its name",
}

// Finding is one data-quality observation about a class table. Findings
// are signals for review, not errors: a table with findings still
// constructs and serves reads.
type Finding struct {
	ClassName string
	Rule      Rule
	Detail    string
}

// Lint checks a registry's data quality. Findings come back sorted by
// class name, with a fixed rule order within each class, so output is
// stable across runs. A clean table yields an empty slice.
func Lint(r *Registry) []Finding {
	var findings []Finding
	for _, d := range r.Descriptors() {
		findings = append(findings, lintClass(r, d)...)
	}
	return findings
}

func lintClass(r *Registry, d ClassDescriptor) []Finding {
	var findings []Finding

	if d.Justification == JustificationMissing {
		findings = append(findings, Finding{
			ClassName: d.ClassName,
			Rule:      RuleUnjustifiedDivergence,
			Detail:    "diverged class is neither a container nor transcribable and records no justification",
		})
	}

	for _, eq := range d.StandardEquivalents {
		target, ok := r.ByName(eq)
		if !ok {
			findings = append(findings, Finding{
				ClassName: d.ClassName,
				Rule:      RuleUnresolvedEquivalent,
				Detail:    fmt.Sprintf("standard equivalent %q is not in the registry", eq),
			})
			continue
		}
		if !target.IsStandardAligned {
			findings = append(findings, Finding{
				ClassName: d.ClassName,
				Rule:      RuleDivergedEquivalent,
				Detail:    fmt.Sprintf("standard equivalent %q is itself diverged", eq),
			})
		}
	}

	if d.IsStandardAligned {
		cp, ok := smufl.Codepoint(d.ClassName)
		switch {
		case !ok:
			findings = append(findings, Finding{
				ClassName: d.ClassName,
				Rule:      RuleUnknownStandardGlyph,
				Detail:    "aligned class name is not a canonical SMuFL glyph name",
			})
		case cp != d.Glyph:
			findings = append(findings, Finding{
				ClassName: d.ClassName,
				Rule:      RuleGlyphMismatch,
				Detail:    fmt.Sprintf("glyph %s does not match the SMuFL codepoint %s for this name", d.Glyph, cp),
			})
		}
	}

	return findings
}
