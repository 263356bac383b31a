package export

import (
	"encoding/json"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/omrstudio/notagraph/ontology"
)

// classRecord is the wire form of one class descriptor. The derived
// justification enum flattens to an optional boolean here: absent on
// standard-aligned classes, where the question does not apply.
type classRecord struct {
	ClassName               string   `json:"className" yaml:"className"`
	Glyph                   string   `json:"glyph" yaml:"glyph"`
	IsStandardAligned       bool     `json:"isStandardAligned" yaml:"isStandardAligned"`
	JustifiedDivergence     *bool    `json:"justifiedDivergence,omitempty" yaml:"justifiedDivergence,omitempty"`
	DivergenceJustification string   `json:"divergenceJustification,omitempty" yaml:"divergenceJustification,omitempty"`
	StandardEquivalents     []string `json:"standardEquivalents,omitempty" yaml:"standardEquivalents,omitempty"`
	InReferenceDataset      bool     `json:"inReferenceDataset" yaml:"inReferenceDataset"`
	IsContainer             bool     `json:"isContainer" yaml:"isContainer"`
	IsTranscribable         bool     `json:"isTranscribable" yaml:"isTranscribable"`
}

// newClassRecord converts a descriptor to its wire form.
func newClassRecord(d ontology.ClassDescriptor) classRecord {
	rec := classRecord{
		ClassName:               d.ClassName,
		Glyph:                   d.Glyph,
		IsStandardAligned:       d.IsStandardAligned,
		DivergenceJustification: d.DivergenceJustification,
		StandardEquivalents:     d.StandardEquivalents,
		InReferenceDataset:      d.InReferenceDataset,
		IsContainer:             d.IsContainer,
		IsTranscribable:         d.IsTranscribable,
	}
	switch d.Justification {
	case ontology.JustificationSatisfied:
		justified := true
		rec.JustifiedDivergence = &justified
	case ontology.JustificationMissing:
		justified := false
		rec.JustifiedDivergence = &justified
	}
	return rec
}

// records converts a descriptor slice to wire form, preserving order.
func records(descriptors []ontology.ClassDescriptor) []classRecord {
	recs := make([]classRecord, 0, len(descriptors))
	for _, d := range descriptors {
		recs = append(recs, newClassRecord(d))
	}
	return recs
}

// writeJSON emits the descriptors as a pretty-printed JSON array.
func writeJSON(w io.Writer, descriptors []ontology.ClassDescriptor) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(records(descriptors))
}

// writeYAML emits the descriptors as a YAML array.
func writeYAML(w io.Writer, descriptors []ontology.ClassDescriptor) error {
	data, err := yaml.Marshal(records(descriptors))
	if err != nil {
		return err
	}
	_, err = w.Write(data)
	return err
}

// writeDescriptorJSON emits one descriptor as a bare JSON object.
func writeDescriptorJSON(w io.Writer, d ontology.ClassDescriptor) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(newClassRecord(d))
}

// writeDescriptorYAML emits one descriptor as a bare YAML mapping.
func writeDescriptorYAML(w io.Writer, d ontology.ClassDescriptor) error {
	data, err := yaml.Marshal(newClassRecord(d))
	if err != nil {
		return err
	}
	_, err = w.Write(data)
	return err
}
