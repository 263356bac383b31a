package ontology

import "github.com/omrstudio/notagraph/ontology/smufl"

// builtinClasses is the compiled-in class table. Aligned classes are
// named by their canonical SMuFL glyph name and carry that glyph's
// codepoint; diverged classes carry a borrowed codepoint or a literal
// display marker. Updating the ontology means editing this table and
// rebuilding.
var builtinClasses = map[string]RawClassDefinition{
	// Staff brackets and grouping symbols.
	"brace":   {Glyph: smufl.Brace, InReferenceDataset: true},
	"bracket": {Glyph: smufl.Bracket, InReferenceDataset: true},

	// Staves and leger lines.
	"staff1Line":  {Glyph: smufl.Staff1Line},
	"staff5Lines": {Glyph: smufl.Staff5Lines, InReferenceDataset: true},
	"legerLine":   {Glyph: smufl.LegerLine, InReferenceDataset: true},

	// Barlines.
	"barlineSingle":       {Glyph: smufl.BarlineSingle, InReferenceDataset: true},
	"barlineDouble":       {Glyph: smufl.BarlineDouble, InReferenceDataset: true},
	"barlineFinal":        {Glyph: smufl.BarlineFinal, InReferenceDataset: true},
	"barlineReverseFinal": {Glyph: smufl.BarlineReverseFinal},
	"barlineHeavy":        {Glyph: smufl.BarlineHeavy, InReferenceDataset: true},
	"barlineHeavyHeavy":   {Glyph: smufl.BarlineHeavyHeavy},
	"barlineDashed":       {Glyph: smufl.BarlineDashed},
	"barlineDotted":       {Glyph: smufl.BarlineDotted},
	"barlineShort":        {Glyph: smufl.BarlineShort},
	"barlineTick":         {Glyph: smufl.BarlineTick},

	// Repeat structures.
	"repeatLeft":      {Glyph: smufl.RepeatLeft, InReferenceDataset: true},
	"repeatRight":     {Glyph: smufl.RepeatRight, InReferenceDataset: true},
	"repeatRightLeft": {Glyph: smufl.RepeatRightLeft},
	"repeatDots":      {Glyph: smufl.RepeatDots, InReferenceDataset: true},
	"repeatDot":       {Glyph: smufl.RepeatDot},
	"dalSegno":        {Glyph: smufl.DalSegno},
	"daCapo":          {Glyph: smufl.DaCapo},
	"segno":           {Glyph: smufl.Segno},
	"coda":            {Glyph: smufl.Coda},
	"codaSquare":      {Glyph: smufl.CodaSquare},

	// Clefs.
	"gClef":                    {Glyph: smufl.GClef, InReferenceDataset: true},
	"gClef8vb":                 {Glyph: smufl.GClef8vb},
	"gClef8va":                 {Glyph: smufl.GClef8va},
	"cClef":                    {Glyph: smufl.CClef, InReferenceDataset: true},
	"fClef":                    {Glyph: smufl.FClef, InReferenceDataset: true},
	"fClef8vb":                 {Glyph: smufl.FClef8vb},
	"unpitchedPercussionClef1": {Glyph: smufl.UnpitchedPercussionClef1},

	// Time signature digits and symbols.
	"timeSig0":         {Glyph: smufl.TimeSig0},
	"timeSig1":         {Glyph: smufl.TimeSig1, InReferenceDataset: true},
	"timeSig2":         {Glyph: smufl.TimeSig2, InReferenceDataset: true},
	"timeSig3":         {Glyph: smufl.TimeSig3, InReferenceDataset: true},
	"timeSig4":         {Glyph: smufl.TimeSig4, InReferenceDataset: true},
	"timeSig5":         {Glyph: smufl.TimeSig5, InReferenceDataset: true},
	"timeSig6":         {Glyph: smufl.TimeSig6, InReferenceDataset: true},
	"timeSig7":         {Glyph: smufl.TimeSig7, InReferenceDataset: true},
	"timeSig8":         {Glyph: smufl.TimeSig8, InReferenceDataset: true},
	"timeSig9":         {Glyph: smufl.TimeSig9, InReferenceDataset: true},
	"timeSigCommon":    {Glyph: smufl.TimeSigCommon, InReferenceDataset: true},
	"timeSigCutCommon": {Glyph: smufl.TimeSigCutCommon, InReferenceDataset: true},

	// Noteheads.
	"noteheadDoubleWhole":       {Glyph: smufl.NoteheadDoubleWhole},
	"noteheadDoubleWholeSquare": {Glyph: smufl.NoteheadDoubleWholeSquare},
	"noteheadWhole":             {Glyph: smufl.NoteheadWhole, InReferenceDataset: true},
	"noteheadHalf":              {Glyph: smufl.NoteheadHalf, InReferenceDataset: true},
	"noteheadBlack":             {Glyph: smufl.NoteheadBlack, InReferenceDataset: true},
	"noteheadNull":              {Glyph: smufl.NoteheadNull},
	"noteheadXDoubleWhole":      {Glyph: smufl.NoteheadXDoubleWhole},
	"noteheadXWhole":            {Glyph: smufl.NoteheadXWhole},
	"noteheadXHalf":             {Glyph: smufl.NoteheadXHalf},
	"noteheadXBlack":            {Glyph: smufl.NoteheadXBlack},

	// Duration dots.
	"augmentationDot": {Glyph: smufl.AugmentationDot, InReferenceDataset: true},

	// Stems.
	"stem": {Glyph: smufl.Stem, InReferenceDataset: true},

	// Tremolo strokes.
	"tremolo1": {Glyph: smufl.Tremolo1, InReferenceDataset: true},
	"tremolo2": {Glyph: smufl.Tremolo2, InReferenceDataset: true},
	"tremolo3": {Glyph: smufl.Tremolo3},

	// Flags.
	"flag8thUp":     {Glyph: smufl.Flag8thUp, InReferenceDataset: true},
	"flag8thDown":   {Glyph: smufl.Flag8thDown, InReferenceDataset: true},
	"flag16thUp":    {Glyph: smufl.Flag16thUp, InReferenceDataset: true},
	"flag16thDown":  {Glyph: smufl.Flag16thDown, InReferenceDataset: true},
	"flag32ndUp":    {Glyph: smufl.Flag32ndUp},
	"flag32ndDown":  {Glyph: smufl.Flag32ndDown},
	"flag64thUp":    {Glyph: smufl.Flag64thUp},
	"flag64thDown":  {Glyph: smufl.Flag64thDown},
	"flag128thUp":   {Glyph: smufl.Flag128thUp},
	"flag128thDown": {Glyph: smufl.Flag128thDown},

	// Accidentals.
	"accidentalFlat":        {Glyph: smufl.AccidentalFlat, InReferenceDataset: true},
	"accidentalNatural":     {Glyph: smufl.AccidentalNatural, InReferenceDataset: true},
	"accidentalSharp":       {Glyph: smufl.AccidentalSharp, InReferenceDataset: true},
	"accidentalDoubleSharp": {Glyph: smufl.AccidentalDoubleSharp, InReferenceDataset: true},
	"accidentalDoubleFlat":  {Glyph: smufl.AccidentalDoubleFlat},

	// Articulation marks.
	"articAccentAbove":        {Glyph: smufl.ArticAccentAbove, InReferenceDataset: true},
	"articAccentBelow":        {Glyph: smufl.ArticAccentBelow, InReferenceDataset: true},
	"articStaccatoAbove":      {Glyph: smufl.ArticStaccatoAbove, InReferenceDataset: true},
	"articStaccatoBelow":      {Glyph: smufl.ArticStaccatoBelow, InReferenceDataset: true},
	"articTenutoAbove":        {Glyph: smufl.ArticTenutoAbove, InReferenceDataset: true},
	"articTenutoBelow":        {Glyph: smufl.ArticTenutoBelow, InReferenceDataset: true},
	"articStaccatissimoAbove": {Glyph: smufl.ArticStaccatissimoAbove},
	"articStaccatissimoBelow": {Glyph: smufl.ArticStaccatissimoBelow},
	"articMarcatoAbove":       {Glyph: smufl.ArticMarcatoAbove},
	"articMarcatoBelow":       {Glyph: smufl.ArticMarcatoBelow},

	// Holds and pauses.
	"fermataAbove":    {Glyph: smufl.FermataAbove, InReferenceDataset: true},
	"fermataBelow":    {Glyph: smufl.FermataBelow, InReferenceDataset: true},
	"breathMarkComma": {Glyph: smufl.BreathMarkComma},
	"caesura":         {Glyph: smufl.Caesura},

	// Rests.
	"restMaxima":      {Glyph: smufl.RestMaxima},
	"restLonga":       {Glyph: smufl.RestLonga},
	"restDoubleWhole": {Glyph: smufl.RestDoubleWhole},
	"restWhole":       {Glyph: smufl.RestWhole, InReferenceDataset: true},
	"restHalf":        {Glyph: smufl.RestHalf, InReferenceDataset: true},
	"restQuarter":     {Glyph: smufl.RestQuarter, InReferenceDataset: true},
	"rest8th":         {Glyph: smufl.Rest8th, InReferenceDataset: true},
	"rest16th":        {Glyph: smufl.Rest16th, InReferenceDataset: true},
	"rest32nd":        {Glyph: smufl.Rest32nd, InReferenceDataset: true},
	"rest64th":        {Glyph: smufl.Rest64th},
	"rest128th":       {Glyph: smufl.Rest128th},
	"restHBar":        {Glyph: smufl.RestHBar},

	// Dynamics.
	"dynamicPiano":             {Glyph: smufl.DynamicPiano, InReferenceDataset: true},
	"dynamicMezzo":             {Glyph: smufl.DynamicMezzo, InReferenceDataset: true},
	"dynamicForte":             {Glyph: smufl.DynamicForte, InReferenceDataset: true},
	"dynamicRinforzando":       {Glyph: smufl.DynamicRinforzando},
	"dynamicSforzando":         {Glyph: smufl.DynamicSforzando, InReferenceDataset: true},
	"dynamicZ":                 {Glyph: smufl.DynamicZ},
	"dynamicNiente":            {Glyph: smufl.DynamicNiente},
	"dynamicPP":                {Glyph: smufl.DynamicPP, InReferenceDataset: true},
	"dynamicMP":                {Glyph: smufl.DynamicMP, InReferenceDataset: true},
	"dynamicMF":                {Glyph: smufl.DynamicMF, InReferenceDataset: true},
	"dynamicFF":                {Glyph: smufl.DynamicFF, InReferenceDataset: true},
	"dynamicCrescendoHairpin":  {Glyph: smufl.DynamicCrescendoHairpin, InReferenceDataset: true},
	"dynamicDiminuendoHairpin": {Glyph: smufl.DynamicDiminuendoHairpin, InReferenceDataset: true},

	// Grace notes and ornaments.
	"graceNoteAcciaccaturaStemUp":   {Glyph: smufl.GraceNoteAcciaccaturaStemUp},
	"graceNoteAcciaccaturaStemDown": {Glyph: smufl.GraceNoteAcciaccaturaStemDown},
	"graceNoteAppoggiaturaStemUp":   {Glyph: smufl.GraceNoteAppoggiaturaStemUp},
	"graceNoteAppoggiaturaStemDown": {Glyph: smufl.GraceNoteAppoggiaturaStemDown},
	"ornamentTrill":                 {Glyph: smufl.OrnamentTrill, InReferenceDataset: true},
	"ornamentTurn":                  {Glyph: smufl.OrnamentTurn, InReferenceDataset: true},
	"ornamentTurnInverted":          {Glyph: smufl.OrnamentTurnInverted},
	"ornamentShortTrill":            {Glyph: smufl.OrnamentShortTrill},
	"ornamentMordent":               {Glyph: smufl.OrnamentMordent, InReferenceDataset: true},

	// Keyboard pedal marks.
	"keyboardPedalPed": {Glyph: smufl.KeyboardPedalPed},
	"keyboardPedalUp":  {Glyph: smufl.KeyboardPedalUp},

	// Tuplet digits.
	"tuplet3": {Glyph: smufl.Tuplet3, InReferenceDataset: true},
	"tuplet6": {Glyph: smufl.Tuplet6, InReferenceDataset: true},

	// Grouping classes. Containers aggregate other symbols and borrow a
	// representative codepoint for display.
	"measureSeparator": {
		Glyph:               smufl.BarlineSingle,
		InReferenceDataset:  true,
		Alignment:           Diverged(),
		StandardEquivalents: []string{"barlineSingle", "barlineDouble"},
		IsContainer:         true,
	},
	"keySignature": {
		Glyph:               smufl.AccidentalSharp,
		InReferenceDataset:  true,
		Alignment:           Diverged(),
		StandardEquivalents: []string{"accidentalSharp", "accidentalFlat", "accidentalNatural"},
		IsContainer:         true,
	},
	"timeSignature": {
		Glyph:               smufl.TimeSigCommon,
		InReferenceDataset:  true,
		Alignment:           Diverged(),
		StandardEquivalents: []string{"timeSigCommon", "timeSigCutCommon"},
		IsContainer:         true,
	},
	"tuplet": {
		Glyph:               smufl.Tuplet3,
		InReferenceDataset:  true,
		Alignment:           Diverged(),
		StandardEquivalents: []string{"tuplet3", "tuplet6"},
		IsContainer:         true,
	},
	"staffGroup": {
		Glyph:               smufl.Brace,
		InReferenceDataset:  true,
		Alignment:           Diverged(),
		StandardEquivalents: []string{"brace", "bracket"},
		IsContainer:         true,
	},
	"measure": {
		Glyph:       smufl.BarlineSingle,
		Alignment:   Diverged(),
		IsContainer: true,
	},
	"chord": {
		Glyph:       smufl.NoteheadBlack,
		Alignment:   Diverged(),
		IsContainer: true,
	},

	// Transcribable text classes. Instances carry a free-text
	// transcription; the glyph is a display marker only.
	"lyricText": {
		Glyph:              "Aa",
		InReferenceDataset: true,
		Alignment:          Diverged(),
		IsTranscribable:    true,
	},
	"tempoText": {
		Glyph:              "Aa",
		InReferenceDataset: true,
		Alignment:          Diverged(),
		IsTranscribable:    true,
	},
	"directionText": {
		Glyph:              "Aa",
		InReferenceDataset: true,
		Alignment:          Diverged(),
		IsTranscribable:    true,
	},
	"dynamicText": {
		Glyph:              "Aa",
		InReferenceDataset: true,
		Alignment:          Diverged(),
		IsTranscribable:    true,
	},
	"rehearsalMark": {
		Glyph:           "A",
		Alignment:       Diverged(),
		IsTranscribable: true,
	},
	"measureNumber": {
		Glyph:           "1",
		Alignment:       Diverged(),
		IsTranscribable: true,
	},
	"fingering": {
		Glyph:           "1",
		Alignment:       Diverged(),
		IsTranscribable: true,
	},
	"figuredBass": {
		Glyph:           "6",
		Alignment:       Diverged(),
		IsTranscribable: true,
	},

	// Drawn primitives. Shaped at layout time rather than taken from a
	// font, so no SMuFL name fits; each records its justification.
	"slur": {
		Glyph:                   "⌣",
		InReferenceDataset:      true,
		Alignment:               Diverged(),
		DivergenceJustification: "drawn primitive: the curve is shaped by its endpoints, not taken from a font",
	},
	"tie": {
		Glyph:                   "⌣",
		InReferenceDataset:      true,
		Alignment:               Diverged(),
		DivergenceJustification: "drawn primitive: rendered as an endpoint-shaped curve rather than a font glyph",
	},
	"beam": {
		Glyph:                   "▬",
		InReferenceDataset:      true,
		Alignment:               Diverged(),
		DivergenceJustification: "drawn primitive: beams are sized and sloped per note group",
	},
	"staffLine": {
		Glyph:                   "―",
		InReferenceDataset:      true,
		Alignment:               Diverged(),
		StandardEquivalents:     []string{"staff1Line"},
		DivergenceJustification: "drawn primitive: staff furniture is ruled to the system width at layout time",
	},
	"staffSpace": {
		Glyph:                   "␣",
		InReferenceDataset:      true,
		Alignment:               Diverged(),
		DivergenceJustification: "structural region between two staff lines, used as an annotation target",
	},
	"volta": {
		Glyph:                   "1.",
		InReferenceDataset:      true,
		Alignment:               Diverged(),
		DivergenceJustification: "drawn primitive: the ending bracket is ruled over a measure span with a transcribed number",
	},
	"wavyLineTrill": {
		Glyph:                   "≈",
		Alignment:               Diverged(),
		StandardEquivalents:     []string{"ornamentTrill"},
		DivergenceJustification: "drawn primitive: the extension wiggle repeats to length; the tr prefix is ornamentTrill",
	},

	// Compatibility aliases kept for existing annotation files.
	"noteheadSmall": {
		Glyph:                   smufl.NoteheadBlack,
		InReferenceDataset:      true,
		Alignment:               Diverged(),
		StandardEquivalents:     []string{"noteheadBlack"},
		DivergenceJustification: "cue-size variant; size is a rendering attribute, not a separate standard glyph",
	},
	"multiMeasureRest": {
		Glyph:                   smufl.RestHBar,
		Alignment:               Diverged(),
		StandardEquivalents:     []string{"restHBar"},
		DivergenceJustification: "legacy alias kept for annotation files that predate the restHBar name",
	},
	"graceNotehead": {
		Glyph:                   smufl.NoteheadBlack,
		InReferenceDataset:      true,
		Alignment:               Diverged(),
		StandardEquivalents:     []string{"noteheadBlack", "graceNoteAcciaccaturaStemUp"},
		DivergenceJustification: "the corpus annotates the small notehead alone while the standard encodes precomposed grace notes",
	},

	// Catch-all bucket for symbols annotators could not classify. Records
	// no justification; Lint reports it.
	"unclassified": {
		Glyph:              "?",
		InReferenceDataset: true,
		Alignment:          Diverged(),
	},
}
