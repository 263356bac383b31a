// Package export serializes class ontology registries for downstream
// consumers: machine-readable descriptor arrays (JSON, YAML), RDF in
// Turtle, and a plain name list.
package export

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/omrstudio/notagraph/ontology"
)

// Format specifies the output serialization format.
type Format string

const (
	// FormatJSON produces a pretty-printed JSON descriptor array.
	FormatJSON Format = "json"

	// FormatYAML produces a YAML descriptor array.
	FormatYAML Format = "yaml"

	// FormatTurtle produces Turtle (.ttl) RDF output.
	FormatTurtle Format = "turtle"

	// FormatNames produces a newline-separated class name list.
	FormatNames Format = "names"
)

// ErrUnsupportedFormat reports a format name outside the registry of
// supported serializations.
var ErrUnsupportedFormat = errors.New("unsupported format")

// ParseFormat resolves a user-supplied format name, case-insensitively,
// to a supported Format.
func ParseFormat(name string) (Format, error) {
	format := Format(strings.ToLower(strings.TrimSpace(name)))
	if _, ok := FormatRegistry[format]; !ok {
		return "", fmt.Errorf("%w: %q (supported: %s)",
			ErrUnsupportedFormat, name, strings.Join(supportedFormats(), ", "))
	}
	return format, nil
}

// Write serializes a registry's full descriptor set to w in the given
// format. It writes to w only; nothing else is touched.
func Write(w io.Writer, r *ontology.Registry, format Format) error {
	return WriteDescriptors(w, r.Descriptors(), format)
}

// WriteDescriptors serializes a descriptor slice to w in the given
// format, preserving the slice's order. Filtered registry subsets
// serialize the same way the full set does.
func WriteDescriptors(w io.Writer, descriptors []ontology.ClassDescriptor, format Format) error {
	switch format {
	case FormatJSON:
		return writeJSON(w, descriptors)
	case FormatYAML:
		return writeYAML(w, descriptors)
	case FormatTurtle:
		return writeTurtle(w, descriptors)
	case FormatNames:
		return writeNames(w, descriptors)
	default:
		return fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}
}

// WriteDescriptor serializes a single descriptor: a bare object for
// json and yaml rather than a one-element array.
func WriteDescriptor(w io.Writer, d ontology.ClassDescriptor, format Format) error {
	switch format {
	case FormatJSON:
		return writeDescriptorJSON(w, d)
	case FormatYAML:
		return writeDescriptorYAML(w, d)
	case FormatTurtle, FormatNames:
		return WriteDescriptors(w, []ontology.ClassDescriptor{d}, format)
	default:
		return fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}
}

// writeNames emits class names, one per line.
func writeNames(w io.Writer, descriptors []ontology.ClassDescriptor) error {
	for _, d := range descriptors {
		if _, err := fmt.Fprintln(w, d.ClassName); err != nil {
			return err
		}
	}
	return nil
}
