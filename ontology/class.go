package ontology

import "slices"

// Justification classifies whether a class's divergence from the glyph
// standard is accounted for.
type Justification string

const (
	// JustificationNotApplicable marks a standard-aligned class; the
	// question of justifying a divergence does not arise.
	JustificationNotApplicable Justification = "notApplicable"

	// JustificationSatisfied marks a diverged class whose departure is
	// accounted for: it is a container, it is transcribable, or it
	// carries an explicit justification.
	JustificationSatisfied Justification = "satisfied"

	// JustificationMissing marks a diverged class with no recorded
	// account of the departure. A data-quality gap, not an error.
	JustificationMissing Justification = "missing"
)

// RawClassDefinition is one authored table entry for a symbol class.
// Derived facts (alignment flags, justification status) are not stored
// here; DeriveDescriptor computes them.
type RawClassDefinition struct {
	// Glyph is the display representation: a SMuFL codepoint string such
	// as "U+E030", or a short literal marker for classes without a glyph
	// of their own. Required.
	Glyph string

	// InReferenceDataset reports whether the class occurs in the
	// reference corpus (see the muscima subpackage).
	InReferenceDataset bool

	// Alignment is the standard-alignment claim. The zero value claims
	// alignment, in which case the class name must be a canonical
	// standard glyph name.
	Alignment Alignment

	// StandardEquivalents names standard-aligned classes in the same
	// table that approximate this one, for callers needing a
	// standard-only view. Meaningful on diverged classes.
	StandardEquivalents []string

	// IsContainer marks a grouping class that aggregates other symbols
	// and has no visual footprint of its own.
	IsContainer bool

	// DivergenceJustification records why the class is allowed to
	// diverge from the standard despite being neither a container nor
	// transcribable.
	DivergenceJustification string

	// IsTranscribable marks a class whose instances carry a free-text
	// transcription (lyrics, tempo words, numerals).
	IsTranscribable bool
}

// ClassDescriptor is the read-only view of one class: the raw fields plus
// the facts DeriveDescriptor computes from them. Descriptors are value
// data and are never mutated after construction.
type ClassDescriptor struct {
	// ClassName is the class's unique name and identity.
	ClassName string

	// Glyph is the display representation, copied from the raw entry.
	Glyph string

	// IsStandardAligned reports whether the class name follows the
	// standard glyph vocabulary.
	IsStandardAligned bool

	// Justification classifies whether a divergence is accounted for.
	// Always JustificationNotApplicable on aligned classes.
	Justification Justification

	// DivergenceJustification is the recorded account of the departure:
	// the raw field when set, else the reason carried inline by the
	// alignment claim.
	DivergenceJustification string

	// StandardEquivalents names approximating standard-aligned classes.
	StandardEquivalents []string

	// InReferenceDataset reports reference-corpus membership.
	InReferenceDataset bool

	// IsContainer marks grouping classes.
	IsContainer bool

	// IsTranscribable marks text-carrying classes.
	IsTranscribable bool
}

// DeriveDescriptor computes the descriptor for one raw entry. This is
// the single place alignment facts are derived, so every view of a class
// agrees on them.
//
// A divergence counts as satisfied when the class is a container, is
// transcribable, or records a justification; grouping and transcription
// classes depart from the standard structurally and need no prose.
func DeriveDescriptor(className string, raw RawClassDefinition) ClassDescriptor {
	d := ClassDescriptor{
		ClassName:           className,
		Glyph:               raw.Glyph,
		IsStandardAligned:   raw.Alignment.IsAligned(),
		StandardEquivalents: slices.Clone(raw.StandardEquivalents),
		InReferenceDataset:  raw.InReferenceDataset,
		IsContainer:         raw.IsContainer,
		IsTranscribable:     raw.IsTranscribable,
	}

	d.DivergenceJustification = raw.DivergenceJustification
	if d.DivergenceJustification == "" {
		if reason, ok := raw.Alignment.Reason(); ok {
			d.DivergenceJustification = reason
		}
	}

	switch {
	case d.IsStandardAligned:
		d.Justification = JustificationNotApplicable
	case raw.IsContainer || raw.IsTranscribable || d.DivergenceJustification != "":
		d.Justification = JustificationSatisfied
	default:
		d.Justification = JustificationMissing
	}
	return d
}
