package ontology

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/omrstudio/notagraph/ontology/smufl"
)

func TestBuiltin_TableShape(t *testing.T) {
	r := Builtin()

	assert.GreaterOrEqual(t, r.Len(), 100, "builtin table should carry the full symbol inventory")
	assert.Equal(t, len(builtinClasses), r.Len())
}

func TestBuiltin_KnownClasses(t *testing.T) {
	tests := []struct {
		className   string
		wantGlyph   string
		wantAligned bool
		wantJust    Justification
	}{
		{"barlineSingle", smufl.BarlineSingle, true, JustificationNotApplicable},
		{"noteheadBlack", smufl.NoteheadBlack, true, JustificationNotApplicable},
		{"gClef", smufl.GClef, true, JustificationNotApplicable},
		{"restQuarter", smufl.RestQuarter, true, JustificationNotApplicable},
		{"measureSeparator", smufl.BarlineSingle, false, JustificationSatisfied},
		{"lyricText", "Aa", false, JustificationSatisfied},
		{"slur", "⌣", false, JustificationSatisfied},
		{"noteheadSmall", smufl.NoteheadBlack, false, JustificationSatisfied},
		{"unclassified", "?", false, JustificationMissing},
	}

	r := Builtin()
	for _, tt := range tests {
		t.Run(tt.className, func(t *testing.T) {
			d, ok := r.ByName(tt.className)
			require.True(t, ok, "class %q missing from builtin table", tt.className)
			assert.Equal(t, tt.wantGlyph, d.Glyph)
			assert.Equal(t, tt.wantAligned, d.IsStandardAligned)
			assert.Equal(t, tt.wantJust, d.Justification)
		})
	}
}

func TestBuiltin_ContainerFlags(t *testing.T) {
	containers := []string{
		"measureSeparator", "keySignature", "timeSignature",
		"tuplet", "staffGroup", "measure", "chord",
	}

	r := Builtin()
	for _, name := range containers {
		t.Run(name, func(t *testing.T) {
			d, ok := r.ByName(name)
			require.True(t, ok)
			assert.True(t, d.IsContainer)
			assert.False(t, d.IsStandardAligned, "containers group symbols and cannot be glyph-aligned")
		})
	}
}

func TestBuiltin_TranscribableFlags(t *testing.T) {
	r := Builtin()
	var transcribable int
	for _, d := range r.Descriptors() {
		if !d.IsTranscribable {
			continue
		}
		transcribable++
		assert.False(t, d.IsStandardAligned,
			"class %q: transcribable classes carry text, not a standard glyph", d.ClassName)
	}
	assert.GreaterOrEqual(t, transcribable, 5)
}

func TestBuiltin_AlignedNamesAreCanonical(t *testing.T) {
	// Every aligned class must be named after a SMuFL glyph and carry
	// that glyph's codepoint.
	for _, d := range Builtin().Descriptors() {
		if !d.IsStandardAligned {
			continue
		}
		cp, ok := smufl.Codepoint(d.ClassName)
		require.True(t, ok, "aligned class %q has no SMuFL codepoint", d.ClassName)
		assert.Equal(t, cp, d.Glyph, "class %q", d.ClassName)
	}
}

func TestBuiltin_EquivalentsResolveToAlignedClasses(t *testing.T) {
	r := Builtin()
	for _, d := range r.Descriptors() {
		for _, eq := range d.StandardEquivalents {
			target, ok := r.ByName(eq)
			require.True(t, ok, "class %q: equivalent %q not in table", d.ClassName, eq)
			assert.True(t, target.IsStandardAligned,
				"class %q: equivalent %q must be standard-aligned", d.ClassName, eq)
		}
	}
}

func TestBuiltin_DatasetMembership(t *testing.T) {
	r := Builtin()

	var members int
	for _, d := range r.Descriptors() {
		if d.InReferenceDataset {
			members++
		}
	}
	assert.Greater(t, members, 0)
	assert.Less(t, members, r.Len(), "the corpus covers a strict subset of the ontology")
}

func TestBuiltin_LintFindings(t *testing.T) {
	// The shipped table has exactly one recorded data-quality gap: the
	// unclassified bucket diverges without justification.
	findings := Lint(Builtin())

	require.Len(t, findings, 1)
	assert.Equal(t, "unclassified", findings[0].ClassName)
	assert.Equal(t, RuleUnjustifiedDivergence, findings[0].Rule)
}
