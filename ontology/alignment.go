package ontology

// alignmentState discriminates the cases of an Alignment value.
type alignmentState int

const (
	alignmentAligned alignmentState = iota
	alignmentDiverged
	alignmentDivergedWithReason
)

// Alignment is a class's standard-alignment claim: the name either follows
// the SMuFL glyph vocabulary or deliberately departs from it, and a
// departure may carry its reason inline. The zero value is the aligned
// case, so raw definitions that leave the field unset claim alignment.
type Alignment struct {
	state  alignmentState
	reason string
}

// Aligned returns the claim for a class whose name is a canonical
// standard glyph name.
func Aligned() Alignment {
	return Alignment{}
}

// Diverged returns the claim for a class whose name departs from the
// standard. Any justification lives in the raw definition's
// DivergenceJustification field.
func Diverged() Alignment {
	return Alignment{state: alignmentDiverged}
}

// DivergedWithReason returns a divergence claim carrying its reason
// inline. An empty reason degrades to the plain Diverged case.
func DivergedWithReason(reason string) Alignment {
	if reason == "" {
		return Diverged()
	}
	return Alignment{state: alignmentDivergedWithReason, reason: reason}
}

// IsAligned reports whether the claim is standard alignment.
func (a Alignment) IsAligned() bool {
	return a.state == alignmentAligned
}

// Reason returns the inline divergence reason, if one was recorded.
func (a Alignment) Reason() (string, bool) {
	if a.state != alignmentDivergedWithReason {
		return "", false
	}
	return a.reason, true
}

// String renders the claim for logs and error messages.
func (a Alignment) String() string {
	switch a.state {
	case alignmentDiverged:
		return "diverged"
	case alignmentDivergedWithReason:
		return "diverged: " + a.reason
	default:
		return "aligned"
	}
}
