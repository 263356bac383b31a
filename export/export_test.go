package export_test

import (
	"bytes"
	"errors"
	"testing"

	"github.com/omrstudio/notagraph/export"
	"github.com/omrstudio/notagraph/ontology"
)

func testRegistry(t *testing.T) *ontology.Registry {
	t.Helper()
	r, err := ontology.NewRegistry(map[string]ontology.RawClassDefinition{
		"gClef":         {Glyph: "U+E050", InReferenceDataset: true},
		"noteheadBlack": {Glyph: "U+E0A4", InReferenceDataset: true},
		"barlineSingle": {Glyph: "U+E030", InReferenceDataset: true},
		"measureSeparator": {
			Glyph:               "U+E030",
			InReferenceDataset:  true,
			Alignment:           ontology.Diverged(),
			IsContainer:         true,
			StandardEquivalents: []string{"barlineSingle"},
		},
		"unclassified": {
			Glyph:              "?",
			InReferenceDataset: true,
			Alignment:          ontology.Diverged(),
		},
	})
	if err != nil {
		t.Fatalf("building registry: %v", err)
	}
	return r
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		input   string
		want    export.Format
		wantErr bool
	}{
		{"json", export.FormatJSON, false},
		{"YAML", export.FormatYAML, false},
		{" turtle ", export.FormatTurtle, false},
		{"names", export.FormatNames, false},
		{"xml", "", true},
		{"", "", true},
	}

	for _, tc := range tests {
		t.Run(tc.input, func(t *testing.T) {
			got, err := export.ParseFormat(tc.input)
			if tc.wantErr {
				if !errors.Is(err, export.ErrUnsupportedFormat) {
					t.Fatalf("got err %v, want ErrUnsupportedFormat", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseFormat(%q) failed: %v", tc.input, err)
			}
			if got != tc.want {
				t.Errorf("got %q, want %q", got, tc.want)
			}
		})
	}
}

func TestWriteNames(t *testing.T) {
	var buf bytes.Buffer
	if err := export.Write(&buf, testRegistry(t), export.FormatNames); err != nil {
		t.Fatalf("Write failed: %v", err)
	}

	want := "barlineSingle\ngClef\nmeasureSeparator\nnoteheadBlack\nunclassified\n"
	if buf.String() != want {
		t.Errorf("got %q, want %q", buf.String(), want)
	}
}

func TestWriteDescriptorsSubset(t *testing.T) {
	r := testRegistry(t)
	clef, ok := r.ByName("gClef")
	if !ok {
		t.Fatal("gClef not in registry")
	}
	notehead, ok := r.ByName("noteheadBlack")
	if !ok {
		t.Fatal("noteheadBlack not in registry")
	}

	var buf bytes.Buffer
	subset := []ontology.ClassDescriptor{clef, notehead}
	if err := export.WriteDescriptors(&buf, subset, export.FormatNames); err != nil {
		t.Fatalf("WriteDescriptors failed: %v", err)
	}

	want := "gClef\nnoteheadBlack\n"
	if buf.String() != want {
		t.Errorf("got %q, want %q", buf.String(), want)
	}
}

func TestWriteUnsupportedFormat(t *testing.T) {
	var buf bytes.Buffer
	err := export.Write(&buf, testRegistry(t), export.Format("xml"))
	if !errors.Is(err, export.ErrUnsupportedFormat) {
		t.Fatalf("got err %v, want ErrUnsupportedFormat", err)
	}
	if buf.Len() != 0 {
		t.Errorf("failed Write should produce no output, got %q", buf.String())
	}
}
