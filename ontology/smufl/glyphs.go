package smufl

import (
	"strconv"
	"strings"
	"unicode/utf8"
)

// Version is the SMuFL specification version the glyph tables follow.
const Version = "1.40"

// Namespace is the base IRI prefix for SMuFL glyph references in RDF export.
const Namespace = "https://notagraph.dev/ontology/smufl/"

// RangeStart and RangeEnd bound the Private Use Area block that SMuFL
// allocates glyph codepoints from.
const (
	RangeStart rune = 0xE000
	RangeEnd   rune = 0xF8FF
)

// Staff brackets and dividers (U+E000–U+E00F).
const (
	// Brace is the curved brace joining staves of a grand staff.
	Brace = "U+E000"

	// Bracket is the square bracket joining staves of a system group.
	Bracket = "U+E002"
)

// Staves and leger lines (U+E010–U+E02F).
const (
	// Staff1Line is a one-line percussion staff.
	Staff1Line = "U+E010"

	// Staff5Lines is the standard five-line staff.
	Staff5Lines = "U+E014"

	// LegerLine is a leger line extending the staff for high or low notes.
	LegerLine = "U+E022"
)

// Barlines (U+E030–U+E03F).
const (
	// BarlineSingle is the thin single barline.
	BarlineSingle = "U+E030"

	// BarlineDouble is the thin double barline.
	BarlineDouble = "U+E031"

	// BarlineFinal is the thin-thick final barline.
	BarlineFinal = "U+E032"

	// BarlineReverseFinal is the thick-thin reverse final barline.
	BarlineReverseFinal = "U+E033"

	// BarlineHeavy is the single thick barline.
	BarlineHeavy = "U+E034"

	// BarlineHeavyHeavy is the double thick barline.
	BarlineHeavyHeavy = "U+E035"

	// BarlineDashed is the dashed barline.
	BarlineDashed = "U+E036"

	// BarlineDotted is the dotted barline.
	BarlineDotted = "U+E037"

	// BarlineShort is the short barline spanning the middle staff lines.
	BarlineShort = "U+E038"

	// BarlineTick is the tick barline crossing only the top staff line.
	BarlineTick = "U+E039"
)

// Repeats (U+E040–U+E04F).
const (
	// RepeatLeft is the left (start) repeat barline.
	RepeatLeft = "U+E040"

	// RepeatRight is the right (end) repeat barline.
	RepeatRight = "U+E041"

	// RepeatRightLeft is the combined end-start repeat barline.
	RepeatRightLeft = "U+E042"

	// RepeatDots is the pair of repeat dots.
	RepeatDots = "U+E043"

	// RepeatDot is a single repeat dot.
	RepeatDot = "U+E044"

	// DalSegno is the D.S. instruction glyph.
	DalSegno = "U+E045"

	// DaCapo is the D.C. instruction glyph.
	DaCapo = "U+E046"

	// Segno is the segno sign.
	Segno = "U+E047"

	// Coda is the coda sign.
	Coda = "U+E048"

	// CodaSquare is the square variant of the coda sign.
	CodaSquare = "U+E049"
)

// Clefs (U+E050–U+E07F).
const (
	// GClef is the G (treble) clef.
	GClef = "U+E050"

	// GClef8vb is the G clef transposing down an octave.
	GClef8vb = "U+E052"

	// GClef8va is the G clef transposing up an octave.
	GClef8va = "U+E053"

	// CClef is the C (alto or tenor) clef.
	CClef = "U+E05C"

	// FClef is the F (bass) clef.
	FClef = "U+E062"

	// FClef8vb is the F clef transposing down an octave.
	FClef8vb = "U+E064"

	// UnpitchedPercussionClef1 is the open-rectangle percussion clef.
	UnpitchedPercussionClef1 = "U+E069"
)

// Time signatures (U+E080–U+E09F).
const (
	// TimeSig0 is the time signature digit 0.
	TimeSig0 = "U+E080"

	// TimeSig1 is the time signature digit 1.
	TimeSig1 = "U+E081"

	// TimeSig2 is the time signature digit 2.
	TimeSig2 = "U+E082"

	// TimeSig3 is the time signature digit 3.
	TimeSig3 = "U+E083"

	// TimeSig4 is the time signature digit 4.
	TimeSig4 = "U+E084"

	// TimeSig5 is the time signature digit 5.
	TimeSig5 = "U+E085"

	// TimeSig6 is the time signature digit 6.
	TimeSig6 = "U+E086"

	// TimeSig7 is the time signature digit 7.
	TimeSig7 = "U+E087"

	// TimeSig8 is the time signature digit 8.
	TimeSig8 = "U+E088"

	// TimeSig9 is the time signature digit 9.
	TimeSig9 = "U+E089"

	// TimeSigCommon is the common time (C) symbol.
	TimeSigCommon = "U+E08A"

	// TimeSigCutCommon is the cut time (crossed C) symbol.
	TimeSigCutCommon = "U+E08B"
)

// Noteheads (U+E0A0–U+E0FF).
const (
	// NoteheadDoubleWhole is the double whole (breve) notehead.
	NoteheadDoubleWhole = "U+E0A0"

	// NoteheadDoubleWholeSquare is the square double whole notehead.
	NoteheadDoubleWholeSquare = "U+E0A1"

	// NoteheadWhole is the whole (semibreve) notehead.
	NoteheadWhole = "U+E0A2"

	// NoteheadHalf is the half (minim) notehead.
	NoteheadHalf = "U+E0A3"

	// NoteheadBlack is the filled notehead used for quarters and shorter.
	NoteheadBlack = "U+E0A4"

	// NoteheadNull is the invisible notehead placeholder.
	NoteheadNull = "U+E0A5"

	// NoteheadXDoubleWhole is the X double whole notehead.
	NoteheadXDoubleWhole = "U+E0A6"

	// NoteheadXWhole is the X whole notehead.
	NoteheadXWhole = "U+E0A7"

	// NoteheadXHalf is the X half notehead.
	NoteheadXHalf = "U+E0A8"

	// NoteheadXBlack is the X filled notehead used for unpitched sounds.
	NoteheadXBlack = "U+E0A9"
)

// Duration dots (from the individual notes range, U+E1D0–U+E1EF).
const (
	// AugmentationDot is the dot lengthening a note by half its value.
	AugmentationDot = "U+E1E7"
)

// Stems (U+E210–U+E21F).
const (
	// Stem is the plain note stem.
	Stem = "U+E210"
)

// Tremolos (U+E220–U+E23F).
const (
	// Tremolo1 is the one-stroke tremolo slash.
	Tremolo1 = "U+E220"

	// Tremolo2 is the two-stroke tremolo slash.
	Tremolo2 = "U+E221"

	// Tremolo3 is the three-stroke tremolo slash.
	Tremolo3 = "U+E222"
)

// Flags (U+E240–U+E25F).
const (
	// Flag8thUp is the eighth-note flag for an upward stem.
	Flag8thUp = "U+E240"

	// Flag8thDown is the eighth-note flag for a downward stem.
	Flag8thDown = "U+E241"

	// Flag16thUp is the sixteenth-note flag for an upward stem.
	Flag16thUp = "U+E242"

	// Flag16thDown is the sixteenth-note flag for a downward stem.
	Flag16thDown = "U+E243"

	// Flag32ndUp is the thirty-second-note flag for an upward stem.
	Flag32ndUp = "U+E244"

	// Flag32ndDown is the thirty-second-note flag for a downward stem.
	Flag32ndDown = "U+E245"

	// Flag64thUp is the sixty-fourth-note flag for an upward stem.
	Flag64thUp = "U+E246"

	// Flag64thDown is the sixty-fourth-note flag for a downward stem.
	Flag64thDown = "U+E247"

	// Flag128thUp is the hundred-twenty-eighth-note flag for an upward stem.
	Flag128thUp = "U+E248"

	// Flag128thDown is the hundred-twenty-eighth-note flag for a downward stem.
	Flag128thDown = "U+E249"
)

// Standard accidentals (U+E260–U+E26F).
const (
	// AccidentalFlat is the flat sign.
	AccidentalFlat = "U+E260"

	// AccidentalNatural is the natural sign.
	AccidentalNatural = "U+E261"

	// AccidentalSharp is the sharp sign.
	AccidentalSharp = "U+E262"

	// AccidentalDoubleSharp is the double sharp sign.
	AccidentalDoubleSharp = "U+E263"

	// AccidentalDoubleFlat is the double flat sign.
	AccidentalDoubleFlat = "U+E264"
)

// Articulation (U+E4A0–U+E4BF).
const (
	// ArticAccentAbove is the accent placed above the note.
	ArticAccentAbove = "U+E4A0"

	// ArticAccentBelow is the accent placed below the note.
	ArticAccentBelow = "U+E4A1"

	// ArticStaccatoAbove is the staccato dot placed above the note.
	ArticStaccatoAbove = "U+E4A2"

	// ArticStaccatoBelow is the staccato dot placed below the note.
	ArticStaccatoBelow = "U+E4A3"

	// ArticTenutoAbove is the tenuto line placed above the note.
	ArticTenutoAbove = "U+E4A4"

	// ArticTenutoBelow is the tenuto line placed below the note.
	ArticTenutoBelow = "U+E4A5"

	// ArticStaccatissimoAbove is the staccatissimo wedge above the note.
	ArticStaccatissimoAbove = "U+E4A6"

	// ArticStaccatissimoBelow is the staccatissimo wedge below the note.
	ArticStaccatissimoBelow = "U+E4A7"

	// ArticMarcatoAbove is the marcato mark above the note.
	ArticMarcatoAbove = "U+E4AC"

	// ArticMarcatoBelow is the marcato mark below the note.
	ArticMarcatoBelow = "U+E4AD"
)

// Holds and pauses (U+E4C0–U+E4DF).
const (
	// FermataAbove is the fermata placed above the staff.
	FermataAbove = "U+E4C0"

	// FermataBelow is the fermata placed below the staff.
	FermataBelow = "U+E4C1"

	// BreathMarkComma is the comma breath mark.
	BreathMarkComma = "U+E4CE"

	// Caesura is the caesura (railroad tracks) mark.
	Caesura = "U+E4D1"
)

// Rests (U+E4E0–U+E4FF).
const (
	// RestMaxima is the maxima rest.
	RestMaxima = "U+E4E0"

	// RestLonga is the longa rest.
	RestLonga = "U+E4E1"

	// RestDoubleWhole is the double whole (breve) rest.
	RestDoubleWhole = "U+E4E2"

	// RestWhole is the whole (semibreve) rest.
	RestWhole = "U+E4E3"

	// RestHalf is the half (minim) rest.
	RestHalf = "U+E4E4"

	// RestQuarter is the quarter (crotchet) rest.
	RestQuarter = "U+E4E5"

	// Rest8th is the eighth (quaver) rest.
	Rest8th = "U+E4E6"

	// Rest16th is the sixteenth rest.
	Rest16th = "U+E4E7"

	// Rest32nd is the thirty-second rest.
	Rest32nd = "U+E4E8"

	// Rest64th is the sixty-fourth rest.
	Rest64th = "U+E4E9"

	// Rest128th is the hundred-twenty-eighth rest.
	Rest128th = "U+E4EA"

	// RestHBar is the horizontal-bar multi-measure rest.
	RestHBar = "U+E4EE"
)

// Dynamics (U+E520–U+E54F).
const (
	// DynamicPiano is the dynamic letter p.
	DynamicPiano = "U+E520"

	// DynamicMezzo is the dynamic letter m.
	DynamicMezzo = "U+E521"

	// DynamicForte is the dynamic letter f.
	DynamicForte = "U+E522"

	// DynamicRinforzando is the dynamic letter r.
	DynamicRinforzando = "U+E523"

	// DynamicSforzando is the dynamic letter s.
	DynamicSforzando = "U+E524"

	// DynamicZ is the dynamic letter z.
	DynamicZ = "U+E525"

	// DynamicNiente is the dynamic letter n.
	DynamicNiente = "U+E526"

	// DynamicPP is the pianissimo mark.
	DynamicPP = "U+E52B"

	// DynamicMP is the mezzo-piano mark.
	DynamicMP = "U+E52C"

	// DynamicMF is the mezzo-forte mark.
	DynamicMF = "U+E52D"

	// DynamicFF is the fortissimo mark.
	DynamicFF = "U+E52F"

	// DynamicCrescendoHairpin is the opening crescendo wedge.
	DynamicCrescendoHairpin = "U+E53E"

	// DynamicDiminuendoHairpin is the closing diminuendo wedge.
	DynamicDiminuendoHairpin = "U+E53F"
)

// Grace notes (U+E560–U+E56F) and common ornaments (U+E566–U+E57F).
const (
	// GraceNoteAcciaccaturaStemUp is the slashed grace note with upward stem.
	GraceNoteAcciaccaturaStemUp = "U+E560"

	// GraceNoteAcciaccaturaStemDown is the slashed grace note with downward stem.
	GraceNoteAcciaccaturaStemDown = "U+E561"

	// GraceNoteAppoggiaturaStemUp is the unslashed grace note with upward stem.
	GraceNoteAppoggiaturaStemUp = "U+E562"

	// GraceNoteAppoggiaturaStemDown is the unslashed grace note with downward stem.
	GraceNoteAppoggiaturaStemDown = "U+E563"

	// OrnamentTrill is the tr trill sign.
	OrnamentTrill = "U+E566"

	// OrnamentTurn is the turn sign.
	OrnamentTurn = "U+E567"

	// OrnamentTurnInverted is the inverted turn sign.
	OrnamentTurnInverted = "U+E568"

	// OrnamentShortTrill is the short trill (upper mordent) sign.
	OrnamentShortTrill = "U+E56C"

	// OrnamentMordent is the mordent sign.
	OrnamentMordent = "U+E56D"
)

// Keyboard techniques (U+E650–U+E67F).
const (
	// KeyboardPedalPed is the Ped. pedal-down mark.
	KeyboardPedalPed = "U+E650"

	// KeyboardPedalUp is the pedal-up (asterisk) mark.
	KeyboardPedalUp = "U+E655"
)

// Tuplets (U+E880–U+E88F).
const (
	// Tuplet3 is the tuplet digit 3.
	Tuplet3 = "U+E883"

	// Tuplet6 is the tuplet digit 6.
	Tuplet6 = "U+E886"
)

// Codepoints maps canonical SMuFL glyph names to their codepoint strings.
// Ontology classes that claim standard alignment use these names verbatim,
// so membership here is what makes an alignment claim checkable.
var Codepoints = map[string]string{
	// Staff brackets and dividers
	"brace":   Brace,
	"bracket": Bracket,

	// Staves and leger lines
	"staff1Line":  Staff1Line,
	"staff5Lines": Staff5Lines,
	"legerLine":   LegerLine,

	// Barlines
	"barlineSingle":       BarlineSingle,
	"barlineDouble":       BarlineDouble,
	"barlineFinal":        BarlineFinal,
	"barlineReverseFinal": BarlineReverseFinal,
	"barlineHeavy":        BarlineHeavy,
	"barlineHeavyHeavy":   BarlineHeavyHeavy,
	"barlineDashed":       BarlineDashed,
	"barlineDotted":       BarlineDotted,
	"barlineShort":        BarlineShort,
	"barlineTick":         BarlineTick,

	// Repeats
	"repeatLeft":      RepeatLeft,
	"repeatRight":     RepeatRight,
	"repeatRightLeft": RepeatRightLeft,
	"repeatDots":      RepeatDots,
	"repeatDot":       RepeatDot,
	"dalSegno":        DalSegno,
	"daCapo":          DaCapo,
	"segno":           Segno,
	"coda":            Coda,
	"codaSquare":      CodaSquare,

	// Clefs
	"gClef":                    GClef,
	"gClef8vb":                 GClef8vb,
	"gClef8va":                 GClef8va,
	"cClef":                    CClef,
	"fClef":                    FClef,
	"fClef8vb":                 FClef8vb,
	"unpitchedPercussionClef1": UnpitchedPercussionClef1,

	// Time signatures
	"timeSig0":         TimeSig0,
	"timeSig1":         TimeSig1,
	"timeSig2":         TimeSig2,
	"timeSig3":         TimeSig3,
	"timeSig4":         TimeSig4,
	"timeSig5":         TimeSig5,
	"timeSig6":         TimeSig6,
	"timeSig7":         TimeSig7,
	"timeSig8":         TimeSig8,
	"timeSig9":         TimeSig9,
	"timeSigCommon":    TimeSigCommon,
	"timeSigCutCommon": TimeSigCutCommon,

	// Noteheads
	"noteheadDoubleWhole":       NoteheadDoubleWhole,
	"noteheadDoubleWholeSquare": NoteheadDoubleWholeSquare,
	"noteheadWhole":             NoteheadWhole,
	"noteheadHalf":              NoteheadHalf,
	"noteheadBlack":             NoteheadBlack,
	"noteheadNull":              NoteheadNull,
	"noteheadXDoubleWhole":      NoteheadXDoubleWhole,
	"noteheadXWhole":            NoteheadXWhole,
	"noteheadXHalf":             NoteheadXHalf,
	"noteheadXBlack":            NoteheadXBlack,

	// Duration dots
	"augmentationDot": AugmentationDot,

	// Stems
	"stem": Stem,

	// Tremolos
	"tremolo1": Tremolo1,
	"tremolo2": Tremolo2,
	"tremolo3": Tremolo3,

	// Flags
	"flag8thUp":     Flag8thUp,
	"flag8thDown":   Flag8thDown,
	"flag16thUp":    Flag16thUp,
	"flag16thDown":  Flag16thDown,
	"flag32ndUp":    Flag32ndUp,
	"flag32ndDown":  Flag32ndDown,
	"flag64thUp":    Flag64thUp,
	"flag64thDown":  Flag64thDown,
	"flag128thUp":   Flag128thUp,
	"flag128thDown": Flag128thDown,

	// Standard accidentals
	"accidentalFlat":        AccidentalFlat,
	"accidentalNatural":     AccidentalNatural,
	"accidentalSharp":       AccidentalSharp,
	"accidentalDoubleSharp": AccidentalDoubleSharp,
	"accidentalDoubleFlat":  AccidentalDoubleFlat,

	// Articulation
	"articAccentAbove":        ArticAccentAbove,
	"articAccentBelow":        ArticAccentBelow,
	"articStaccatoAbove":      ArticStaccatoAbove,
	"articStaccatoBelow":      ArticStaccatoBelow,
	"articTenutoAbove":        ArticTenutoAbove,
	"articTenutoBelow":        ArticTenutoBelow,
	"articStaccatissimoAbove": ArticStaccatissimoAbove,
	"articStaccatissimoBelow": ArticStaccatissimoBelow,
	"articMarcatoAbove":       ArticMarcatoAbove,
	"articMarcatoBelow":       ArticMarcatoBelow,

	// Holds and pauses
	"fermataAbove":    FermataAbove,
	"fermataBelow":    FermataBelow,
	"breathMarkComma": BreathMarkComma,
	"caesura":         Caesura,

	// Rests
	"restMaxima":      RestMaxima,
	"restLonga":       RestLonga,
	"restDoubleWhole": RestDoubleWhole,
	"restWhole":       RestWhole,
	"restHalf":        RestHalf,
	"restQuarter":     RestQuarter,
	"rest8th":         Rest8th,
	"rest16th":        Rest16th,
	"rest32nd":        Rest32nd,
	"rest64th":        Rest64th,
	"rest128th":       Rest128th,
	"restHBar":        RestHBar,

	// Dynamics
	"dynamicPiano":             DynamicPiano,
	"dynamicMezzo":             DynamicMezzo,
	"dynamicForte":             DynamicForte,
	"dynamicRinforzando":       DynamicRinforzando,
	"dynamicSforzando":         DynamicSforzando,
	"dynamicZ":                 DynamicZ,
	"dynamicNiente":            DynamicNiente,
	"dynamicPP":                DynamicPP,
	"dynamicMP":                DynamicMP,
	"dynamicMF":                DynamicMF,
	"dynamicFF":                DynamicFF,
	"dynamicCrescendoHairpin":  DynamicCrescendoHairpin,
	"dynamicDiminuendoHairpin": DynamicDiminuendoHairpin,

	// Grace notes and ornaments
	"graceNoteAcciaccaturaStemUp":   GraceNoteAcciaccaturaStemUp,
	"graceNoteAcciaccaturaStemDown": GraceNoteAcciaccaturaStemDown,
	"graceNoteAppoggiaturaStemUp":   GraceNoteAppoggiaturaStemUp,
	"graceNoteAppoggiaturaStemDown": GraceNoteAppoggiaturaStemDown,
	"ornamentTrill":                 OrnamentTrill,
	"ornamentTurn":                  OrnamentTurn,
	"ornamentTurnInverted":          OrnamentTurnInverted,
	"ornamentShortTrill":            OrnamentShortTrill,
	"ornamentMordent":               OrnamentMordent,

	// Keyboard techniques
	"keyboardPedalPed": KeyboardPedalPed,
	"keyboardPedalUp":  KeyboardPedalUp,

	// Tuplets
	"tuplet3": Tuplet3,
	"tuplet6": Tuplet6,
}

// Codepoint returns the codepoint string for a canonical glyph name.
func Codepoint(name string) (string, bool) {
	cp, ok := Codepoints[name]
	return cp, ok
}

// Rune parses a codepoint string of the form "U+E050" into its rune value.
func Rune(codepoint string) (rune, bool) {
	hex, found := strings.CutPrefix(codepoint, "U+")
	if !found || hex == "" {
		return 0, false
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return 0, false
	}
	r := rune(v)
	if !utf8.ValidRune(r) {
		return 0, false
	}
	return r, true
}

// InReservedRange reports whether r falls inside the Private Use Area
// block SMuFL allocates glyphs from.
func InReservedRange(r rune) bool {
	return r >= RangeStart && r <= RangeEnd
}

// GlyphIRI returns the IRI used to reference a glyph in RDF export.
func GlyphIRI(name string) string {
	return Namespace + name
}
