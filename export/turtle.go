package export

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/omrstudio/notagraph/ontology"
	"github.com/omrstudio/notagraph/ontology/smufl"
)

// skosExactMatch links a standard-aligned class to its SMuFL glyph term.
const skosExactMatch = "http://www.w3.org/2004/02/skos/core#exactMatch"

// defaultPrefixes returns the standard namespace prefixes for Turtle
// output.
func defaultPrefixes() map[string]string {
	return map[string]string{
		"rdf":   "http://www.w3.org/1999/02/22-rdf-syntax-ns#",
		"rdfs":  "http://www.w3.org/2000/01/rdf-schema#",
		"xsd":   "http://www.w3.org/2001/XMLSchema#",
		"skos":  "http://www.w3.org/2004/02/skos/core#",
		"class": ontology.Namespace,
		"smufl": smufl.Namespace,
	}
}

// TurtleWriter writes RDF in Turtle format, grouping statements by
// subject. Statements accumulate between BeginSubject and EndSubject,
// so callers never track which statement terminates a block.
type TurtleWriter struct {
	prefixes   map[string]string
	sb         strings.Builder
	subject    string
	statements []string
}

// NewTurtleWriter creates a new Turtle writer with default prefixes.
func NewTurtleWriter() *TurtleWriter {
	return &TurtleWriter{
		prefixes: defaultPrefixes(),
	}
}

// SetPrefix sets a namespace prefix.
func (w *TurtleWriter) SetPrefix(prefix, iri string) {
	w.prefixes[prefix] = iri
}

// WritePrefixes writes prefix declarations, sorted for stable output.
func (w *TurtleWriter) WritePrefixes() {
	keys := make([]string, 0, len(w.prefixes))
	for k := range w.prefixes {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, prefix := range keys {
		w.sb.WriteString(fmt.Sprintf("@prefix %s: <%s> .\n", prefix, w.prefixes[prefix]))
	}
	w.sb.WriteString("\n")
}

// BeginSubject starts collecting statements for a new subject.
func (w *TurtleWriter) BeginSubject(iri string) {
	w.subject = iri
	w.statements = w.statements[:0]
}

// AddType records a type assertion for the current subject.
func (w *TurtleWriter) AddType(typeIRI string) {
	w.statements = append(w.statements, fmt.Sprintf("a <%s>", typeIRI))
}

// AddRef records an object-property statement referencing another IRI.
func (w *TurtleWriter) AddRef(predicateIRI, objectIRI string) {
	w.statements = append(w.statements, fmt.Sprintf("<%s> <%s>", predicateIRI, objectIRI))
}

// AddLiteral records a data-property statement with a literal object.
func (w *TurtleWriter) AddLiteral(predicateIRI string, value any) {
	w.statements = append(w.statements, fmt.Sprintf("<%s> %s", predicateIRI, formatLiteral(value)))
}

// EndSubject flushes the collected statements as one subject block.
func (w *TurtleWriter) EndSubject() {
	if w.subject == "" || len(w.statements) == 0 {
		return
	}
	w.sb.WriteString(fmt.Sprintf("<%s>\n", w.subject))
	for i, stmt := range w.statements {
		terminator := " ;"
		if i == len(w.statements)-1 {
			terminator = " ."
		}
		w.sb.WriteString("    " + stmt + terminator + "\n")
	}
	w.sb.WriteString("\n")
	w.subject = ""
}

// String returns the accumulated Turtle output.
func (w *TurtleWriter) String() string {
	return w.sb.String()
}

// formatLiteral formats a literal value for Turtle output.
func formatLiteral(value any) string {
	switch v := value.(type) {
	case bool:
		return fmt.Sprintf("\"%t\"^^xsd:boolean", v)
	case string:
		return fmt.Sprintf("\"%s\"", escapeString(v))
	default:
		return fmt.Sprintf("\"%v\"", v)
	}
}

// escapeString escapes special characters in strings for RDF
// serialization.
func escapeString(s string) string {
	s = strings.ReplaceAll(s, "\\", "\\\\")
	s = strings.ReplaceAll(s, "\"", "\\\"")
	s = strings.ReplaceAll(s, "\n", "\\n")
	s = strings.ReplaceAll(s, "\r", "\\r")
	s = strings.ReplaceAll(s, "\t", "\\t")
	return s
}

// writeTurtle emits the descriptors as RDF classes. Every class is
// typed as a symbol class, containers additionally as container
// classes, and standard-aligned classes with canonical names link to
// their SMuFL glyph term.
func writeTurtle(w io.Writer, descriptors []ontology.ClassDescriptor) error {
	tw := NewTurtleWriter()
	tw.WritePrefixes()

	for _, d := range descriptors {
		tw.BeginSubject(ontology.ClassIRI(d.ClassName))
		tw.AddType(ontology.ClassSymbolClass)
		if d.IsContainer {
			tw.AddType(ontology.ClassContainerClass)
		}
		tw.AddLiteral(ontology.PropGlyph, d.Glyph)
		tw.AddLiteral(ontology.PropStandardAligned, d.IsStandardAligned)
		if d.InReferenceDataset {
			tw.AddLiteral(ontology.PropInReferenceDataset, true)
		}
		if d.IsTranscribable {
			tw.AddLiteral(ontology.PropTranscribable, true)
		}
		switch d.Justification {
		case ontology.JustificationSatisfied:
			tw.AddLiteral(ontology.PropJustifiedDivergence, true)
		case ontology.JustificationMissing:
			tw.AddLiteral(ontology.PropJustifiedDivergence, false)
		}
		if d.DivergenceJustification != "" {
			tw.AddLiteral(ontology.PropDivergenceJustification, d.DivergenceJustification)
		}
		for _, eq := range d.StandardEquivalents {
			tw.AddRef(ontology.PropStandardEquivalent, ontology.ClassIRI(eq))
		}
		if d.IsStandardAligned {
			if _, ok := smufl.Codepoint(d.ClassName); ok {
				tw.AddRef(skosExactMatch, smufl.GlyphIRI(d.ClassName))
			}
		}
		tw.EndSubject()
	}

	_, err := io.WriteString(w, tw.String())
	return err
}
