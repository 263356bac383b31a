package main

import (
	"encoding/json"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/omrstudio/notagraph/export"
	"github.com/omrstudio/notagraph/ontology"
)

func TestClassesListPattern(t *testing.T) {
	cfgPath := writeConfig(t, "output:\n  format: json\n")

	out, err := execute(t, "classes", "list", "notehead*", "--config", cfgPath)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	assert.Contains(t, lines, "noteheadBlack")
	assert.Contains(t, lines, "noteheadXHalf")
	for _, line := range lines {
		assert.True(t, strings.HasPrefix(line, "notehead"), "unexpected class %q", line)
	}
}

func TestClassesListBracePattern(t *testing.T) {
	cfgPath := writeConfig(t, "")

	out, err := execute(t, "classes", "list", "{rest,flag}*", "--config", cfgPath)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	assert.Contains(t, lines, "restQuarter")
	assert.Contains(t, lines, "flag8thUp")
	assert.NotContains(t, lines, "gClef")
}

func TestClassesListFilters(t *testing.T) {
	cfgPath := writeConfig(t, "")

	out, err := execute(t, "classes", "list", "--containers", "--config", cfgPath)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	assert.ElementsMatch(t, lines, []string{
		"chord", "keySignature", "measure", "measureSeparator",
		"staffGroup", "timeSignature", "tuplet",
	})

	out, err = execute(t, "classes", "list", "--dataset", "--diverged", "--config", cfgPath)
	require.NoError(t, err)
	lines = strings.Split(strings.TrimSpace(out), "\n")
	assert.Contains(t, lines, "unclassified")
	assert.Contains(t, lines, "lyricText")
	assert.NotContains(t, lines, "gClef")
	assert.NotContains(t, lines, "chord")
}

func TestClassesListInvalidPattern(t *testing.T) {
	cfgPath := writeConfig(t, "")

	_, err := execute(t, "classes", "list", "[", "--config", cfgPath)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid pattern")
}

func TestClassesListVerboseConfig(t *testing.T) {
	cfgPath := writeConfig(t, "output:\n  format: json\n  verbose: true\n")

	out, err := execute(t, "classes", "list", "gClef", "--config", cfgPath)
	require.NoError(t, err)

	var got []map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	require.Len(t, got, 1)
	assert.Equal(t, "gClef", got[0]["className"])
	assert.Equal(t, "U+E050", got[0]["glyph"])
}

func TestClassesListFormatFlagWinsOverVerbose(t *testing.T) {
	cfgPath := writeConfig(t, "output:\n  format: json\n  verbose: true\n")

	out, err := execute(t, "classes", "list", "gClef", "--format", "names", "--config", cfgPath)
	require.NoError(t, err)
	assert.Equal(t, "gClef\n", out)
}

func TestSelectClasses(t *testing.T) {
	reg := ontology.Builtin()

	all, err := selectClasses(reg, "", false, false, false)
	require.NoError(t, err)
	assert.Len(t, all, reg.Len())

	diverged, err := selectClasses(reg, "", false, true, false)
	require.NoError(t, err)
	for _, d := range diverged {
		assert.False(t, d.IsStandardAligned, "class %s", d.ClassName)
	}
	assert.NotEmpty(t, diverged)
	assert.Less(t, len(diverged), len(all))

	_, err = selectClasses(reg, "[", false, false, false)
	require.Error(t, err)
}

func TestClassesShow(t *testing.T) {
	out, err := execute(t, "classes", "show", "noteheadBlack")
	require.NoError(t, err)

	var got map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Equal(t, "noteheadBlack", got["className"])
	assert.Equal(t, "U+E0A4", got["glyph"])
	assert.Equal(t, true, got["isStandardAligned"])
	assert.NotContains(t, got, "justifiedDivergence")
}

func TestClassesShowYAML(t *testing.T) {
	out, err := execute(t, "classes", "show", "lyricText", "--format", "yaml")
	require.NoError(t, err)

	var got map[string]any
	require.NoError(t, yaml.Unmarshal([]byte(out), &got))
	assert.Equal(t, "lyricText", got["className"])
	assert.Equal(t, true, got["isTranscribable"])
	assert.Equal(t, true, got["justifiedDivergence"])
}

func TestClassesShowNotFound(t *testing.T) {
	_, err := execute(t, "classes", "show", "doesNotExist")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestClassesLintStrict(t *testing.T) {
	cfgPath := writeConfig(t, "")

	out, err := execute(t, "classes", "lint", "--config", cfgPath)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "1 lint finding")
	assert.Contains(t, out, "unclassified: unjustified-divergence")
}

func TestClassesLintIgnore(t *testing.T) {
	cfgPath := writeConfig(t, "lint:\n  ignore:\n    - unclassified\n")

	out, err := execute(t, "classes", "lint", "--config", cfgPath)
	require.NoError(t, err)
	assert.Empty(t, strings.TrimSpace(out))
}

func TestClassesLintAllowFindings(t *testing.T) {
	cfgPath := writeConfig(t, "lint:\n  allow_findings: true\n")

	out, err := execute(t, "classes", "lint", "--config", cfgPath)
	require.NoError(t, err)
	assert.Contains(t, out, "unclassified: unjustified-divergence")
}

func TestLintLongHelp(t *testing.T) {
	help := lintLongHelp()
	for rule := range ontology.RuleDescriptions {
		assert.Contains(t, help, string(rule))
	}
}

func TestClassesExportNames(t *testing.T) {
	cfgPath := writeConfig(t, "output:\n  format: names\n")

	out, err := execute(t, "classes", "export", "--config", cfgPath)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	assert.Len(t, lines, ontology.Builtin().Len())
	assert.Equal(t, "accidentalDoubleFlat", lines[0])
	assert.Contains(t, lines, "noteheadBlack")
}

func TestClassesExportFormatFlagWins(t *testing.T) {
	cfgPath := writeConfig(t, "output:\n  format: names\n")

	out, err := execute(t, "classes", "export", "--format", "turtle", "--config", cfgPath)
	require.NoError(t, err)
	assert.Contains(t, out, "@prefix class: <https://notagraph.dev/ontology/class/> .")
	assert.Contains(t, out, "<https://notagraph.dev/ontology/class/noteheadBlack>")
}

func TestClassesExportUnsupportedFormat(t *testing.T) {
	cfgPath := writeConfig(t, "")

	_, err := execute(t, "classes", "export", "--format", "xml", "--config", cfgPath)
	require.Error(t, err)
	assert.ErrorIs(t, err, export.ErrUnsupportedFormat)
}

func TestFormatHelp(t *testing.T) {
	help := formatHelp()
	for format := range export.FormatRegistry {
		assert.Contains(t, help, string(format))
	}
}

func TestClassesStats(t *testing.T) {
	out, err := execute(t, "classes", "stats")
	require.NoError(t, err)

	assert.Contains(t, out, fmt.Sprintf("%-22s %d", "classes:", ontology.Builtin().Len()))
	assert.Contains(t, out, "MUSCIMA++ 2.0 coverage")
	assert.Contains(t, out, "members:")
	assert.Contains(t, out, "transcribable:")
}
