package export_test

import (
	"strings"
	"testing"

	"github.com/omrstudio/notagraph/export"
)

func TestGetFormatInfo(t *testing.T) {
	tests := []struct {
		format    export.Format
		mimeType  string
		extension string
	}{
		{export.FormatJSON, "application/json", ".json"},
		{export.FormatYAML, "application/yaml", ".yaml"},
		{export.FormatTurtle, "text/turtle", ".ttl"},
		{export.FormatNames, "text/plain", ".txt"},
	}

	for _, tc := range tests {
		t.Run(string(tc.format), func(t *testing.T) {
			info, ok := export.GetFormatInfo(tc.format)
			if !ok {
				t.Fatalf("no format info for %q", tc.format)
			}
			if info.MIMEType != tc.mimeType {
				t.Errorf("MIME type: got %q, want %q", info.MIMEType, tc.mimeType)
			}
			if info.Extension != tc.extension {
				t.Errorf("extension: got %q, want %q", info.Extension, tc.extension)
			}
		})
	}
}

func TestGetFormatInfoUnknown(t *testing.T) {
	if _, ok := export.GetFormatInfo("xml"); ok {
		t.Error("GetFormatInfo should not recognize format xml")
	}
}

func TestFormatRegistryWellFormed(t *testing.T) {
	for format, info := range export.FormatRegistry {
		if info.Name != format {
			t.Errorf("format %q: registry name %q does not match key", format, info.Name)
		}
		if info.MIMEType == "" {
			t.Errorf("format %q has no MIME type", format)
		}
		if !strings.HasPrefix(info.Extension, ".") {
			t.Errorf("format %q: extension %q should start with a dot", format, info.Extension)
		}
		if info.Description == "" {
			t.Errorf("format %q has no description", format)
		}
	}
}
