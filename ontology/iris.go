package ontology

// Namespace is the base IRI prefix for class ontology terms.
const Namespace = "https://notagraph.dev/ontology/class/"

// Class IRIs define the RDF types of exported classes.
const (
	// ClassSymbolClass represents a symbol class of the ontology.
	ClassSymbolClass = Namespace + "SymbolClass"

	// ClassContainerClass represents a grouping class with no visual
	// footprint of its own.
	// Extends: ClassSymbolClass
	ClassContainerClass = Namespace + "ContainerClass"
)

// Data Property IRIs define literal-valued attributes of classes.
const (
	// PropGlyph is the display glyph codepoint or marker.
	PropGlyph = Namespace + "glyph"

	// PropStandardAligned is the standard-alignment flag.
	PropStandardAligned = Namespace + "standardAligned"

	// PropJustifiedDivergence is the derived justification flag.
	// Omitted on standard-aligned classes.
	PropJustifiedDivergence = Namespace + "justifiedDivergence"

	// PropDivergenceJustification is the recorded divergence reason.
	PropDivergenceJustification = Namespace + "divergenceJustification"

	// PropInReferenceDataset is the reference-corpus membership flag.
	PropInReferenceDataset = Namespace + "inReferenceDataset"

	// PropTranscribable is the free-text transcription flag.
	PropTranscribable = Namespace + "transcribable"
)

// Object Property IRIs define relationships between classes.
const (
	// PropStandardEquivalent links a diverged class to a standard-aligned
	// class that approximates it.
	// Domain: ClassSymbolClass, Range: ClassSymbolClass
	PropStandardEquivalent = Namespace + "standardEquivalent"
)

// ClassIRI returns the IRI identifying a class in RDF export.
func ClassIRI(className string) string {
	return Namespace + className
}
