package export_test

import (
	"bytes"
	"encoding/json"
	"testing"

	"gopkg.in/yaml.v3"

	"github.com/omrstudio/notagraph/export"
)

func findRecord(t *testing.T, records []map[string]any, name string) map[string]any {
	t.Helper()
	for _, rec := range records {
		if rec["className"] == name {
			return rec
		}
	}
	t.Fatalf("no record for class %q", name)
	return nil
}

func TestWriteJSON(t *testing.T) {
	var buf bytes.Buffer
	if err := export.Write(&buf, testRegistry(t), export.FormatJSON); err != nil {
		t.Fatalf("Write failed: %v", err)
	}

	var got []map[string]any
	if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if len(got) != 5 {
		t.Fatalf("got %d records, want 5", len(got))
	}
	if got[0]["className"] != "barlineSingle" {
		t.Errorf("first record: got %v, want barlineSingle", got[0]["className"])
	}

	clef := findRecord(t, got, "gClef")
	if clef["glyph"] != "U+E050" {
		t.Errorf("gClef glyph: got %v, want U+E050", clef["glyph"])
	}
	if clef["isStandardAligned"] != true {
		t.Errorf("gClef isStandardAligned: got %v, want true", clef["isStandardAligned"])
	}
	if _, ok := clef["justifiedDivergence"]; ok {
		t.Error("gClef is standard-aligned; justifiedDivergence should be absent")
	}

	sep := findRecord(t, got, "measureSeparator")
	if v, ok := sep["justifiedDivergence"]; !ok || v != true {
		t.Errorf("measureSeparator justifiedDivergence: got %v (present %v), want true", v, ok)
	}
	if sep["isContainer"] != true {
		t.Errorf("measureSeparator isContainer: got %v, want true", sep["isContainer"])
	}

	gap := findRecord(t, got, "unclassified")
	if v, ok := gap["justifiedDivergence"]; !ok || v != false {
		t.Errorf("unclassified justifiedDivergence: got %v (present %v), want false", v, ok)
	}
}

func TestWriteDescriptor(t *testing.T) {
	r := testRegistry(t)
	clef, ok := r.ByName("gClef")
	if !ok {
		t.Fatal("gClef not in registry")
	}

	var buf bytes.Buffer
	if err := export.WriteDescriptor(&buf, clef, export.FormatJSON); err != nil {
		t.Fatalf("WriteDescriptor failed: %v", err)
	}

	// A single descriptor serializes as a bare object, not an array.
	var got map[string]any
	if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("output is not a JSON object: %v", err)
	}
	if got["className"] != "gClef" {
		t.Errorf("className: got %v, want gClef", got["className"])
	}
	if _, ok := got["justifiedDivergence"]; ok {
		t.Error("gClef is standard-aligned; justifiedDivergence should be absent")
	}

	buf.Reset()
	if err := export.WriteDescriptor(&buf, clef, export.FormatYAML); err != nil {
		t.Fatalf("WriteDescriptor failed: %v", err)
	}
	var gotYAML map[string]any
	if err := yaml.Unmarshal(buf.Bytes(), &gotYAML); err != nil {
		t.Fatalf("output is not a YAML mapping: %v", err)
	}
	if gotYAML["className"] != "gClef" {
		t.Errorf("className: got %v, want gClef", gotYAML["className"])
	}
}

func TestWriteYAML(t *testing.T) {
	var buf bytes.Buffer
	if err := export.Write(&buf, testRegistry(t), export.FormatYAML); err != nil {
		t.Fatalf("Write failed: %v", err)
	}

	var got []map[string]any
	if err := yaml.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("output is not valid YAML: %v", err)
	}
	if len(got) != 5 {
		t.Fatalf("got %d records, want 5", len(got))
	}
	if got[0]["className"] != "barlineSingle" {
		t.Errorf("first record: got %v, want barlineSingle", got[0]["className"])
	}

	sep := findRecord(t, got, "measureSeparator")
	equivalents, ok := sep["standardEquivalents"].([]any)
	if !ok || len(equivalents) != 1 || equivalents[0] != "barlineSingle" {
		t.Errorf("measureSeparator standardEquivalents: got %v, want [barlineSingle]", sep["standardEquivalents"])
	}
	if _, ok := findRecord(t, got, "gClef")["justifiedDivergence"]; ok {
		t.Error("gClef is standard-aligned; justifiedDivergence should be absent")
	}
}
