// Package smufl provides the Standard Music Font Layout glyph vocabulary
// used by the class ontology.
//
// SMuFL (Standard Music Font Layout) assigns canonical names and Unicode
// Private Use Area codepoints to music notation glyphs. This package embeds
// the subset of that mapping the class ontology references: each glyph gets
// a Go constant holding its codepoint string, and Codepoints maps canonical
// glyph names to those codepoints.
//
// # Codepoint Strings
//
// Codepoints are carried as display strings in the "U+E030" form used by
// the SMuFL tables, not as runes. Rune converts a codepoint string to its
// rune value, and InReservedRange reports whether a rune falls inside the
// Private Use Area block SMuFL allocates from (U+E000 through U+F8FF).
//
// # Canonical Names
//
// Glyph names are SMuFL's lowerCamel identifiers (gClef, barlineSingle,
// noteheadBlack). Ontology classes that align with the standard reuse these
// names verbatim, so a class name can be resolved against Codepoints to
// confirm the alignment claim:
//
//	cp, ok := smufl.Codepoint("gClef") // "U+E050", true
//
// # Usage
//
//	if cp, ok := smufl.Codepoint(name); ok {
//	    r, _ := smufl.Rune(cp)
//	    fmt.Printf("%s renders as %c\n", name, r)
//	}
package smufl
