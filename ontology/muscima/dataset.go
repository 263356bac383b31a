package muscima

import "github.com/omrstudio/notagraph/ontology"

// DatasetName is the canonical name of the reference corpus.
const DatasetName = "MUSCIMA++"

// DatasetVersion is the corpus release the membership flags follow.
const DatasetVersion = "2.0"

// Homepage is the corpus distribution page.
const Homepage = "https://ufal.mff.cuni.cz/muscima"

// Member reports whether a class occurs in the reference corpus.
func Member(d ontology.ClassDescriptor) bool {
	return d.InReferenceDataset
}

// Members returns the corpus subset of a registry, in registry order.
func Members(r *ontology.Registry) []ontology.ClassDescriptor {
	var members []ontology.ClassDescriptor
	for _, d := range r.Descriptors() {
		if Member(d) {
			members = append(members, d)
		}
	}
	return members
}

// Stats summarizes corpus coverage of a class ontology.
type Stats struct {
	// Classes is the total number of classes in the registry.
	Classes int `json:"classes"`

	// Members is the number of classes that occur in the corpus.
	Members int `json:"members"`

	// Aligned counts members whose names follow the glyph standard.
	Aligned int `json:"aligned"`

	// Diverged counts members that depart from the glyph standard.
	Diverged int `json:"diverged"`

	// Containers counts members that are grouping classes.
	Containers int `json:"containers"`

	// Transcribable counts members that carry free-text transcriptions.
	Transcribable int `json:"transcribable"`
}

// Coverage computes corpus coverage statistics for a registry.
func Coverage(r *ontology.Registry) Stats {
	s := Stats{Classes: r.Len()}
	for _, d := range r.Descriptors() {
		if !Member(d) {
			continue
		}
		s.Members++
		if d.IsStandardAligned {
			s.Aligned++
		} else {
			s.Diverged++
		}
		if d.IsContainer {
			s.Containers++
		}
		if d.IsTranscribable {
			s.Transcribable++
		}
	}
	return s
}
