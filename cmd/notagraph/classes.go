package main

import (
	"fmt"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/spf13/cobra"

	"github.com/omrstudio/notagraph/export"
	"github.com/omrstudio/notagraph/ontology"
	"github.com/omrstudio/notagraph/ontology/muscima"
)

// newClassesCmd builds the classes command tree.
func newClassesCmd(configPath *string) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "classes",
		Short: "Query the symbol class ontology",
	}

	cmd.AddCommand(newClassesListCmd(configPath))
	cmd.AddCommand(newClassesShowCmd())
	cmd.AddCommand(newClassesLintCmd(configPath))
	cmd.AddCommand(newClassesExportCmd(configPath))
	cmd.AddCommand(newClassesStatsCmd())

	return cmd
}

func newClassesListCmd(configPath *string) *cobra.Command {
	var (
		format         string
		datasetOnly    bool
		divergedOnly   bool
		containersOnly bool
	)

	cmd := &cobra.Command{
		Use:   "list [pattern]",
		Short: "List ontology classes",
		Long: `List ontology classes, optionally filtered by a glob pattern on the
class name. Filter flags combine with AND logic.

Examples:
  # All class names
  notagraph classes list

  # Noteheads only
  notagraph classes list 'notehead*'

  # Rests and flags, as JSON descriptors
  notagraph classes list '{rest,flag}*' --format json

  # MUSCIMA++ corpus classes that diverge from SMuFL
  notagraph classes list --dataset --diverged`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(*configPath)
			if err != nil {
				return err
			}

			pattern := ""
			if len(args) == 1 {
				pattern = args[0]
			}

			descriptors, err := selectClasses(ontology.Builtin(), pattern, datasetOnly, divergedOnly, containersOnly)
			if err != nil {
				return err
			}

			// Bare names unless verbose output is configured; an
			// explicit --format wins over both.
			name := string(export.FormatNames)
			if cfg.Output.Verbose {
				name = cfg.Output.Format
			}
			if cmd.Flags().Changed("format") {
				name = format
			}
			parsed, err := export.ParseFormat(name)
			if err != nil {
				return err
			}

			return export.WriteDescriptors(cmd.OutOrStdout(), descriptors, parsed)
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", string(export.FormatNames), "Output format (json, yaml, turtle, names)")
	cmd.Flags().BoolVar(&datasetOnly, "dataset", false, "Only classes in the MUSCIMA++ reference corpus")
	cmd.Flags().BoolVar(&divergedOnly, "diverged", false, "Only classes diverging from the SMuFL standard")
	cmd.Flags().BoolVar(&containersOnly, "containers", false, "Only container classes")

	return cmd
}

// selectClasses filters a registry's descriptors by glob pattern and
// flags, preserving the registry's sorted order.
func selectClasses(r *ontology.Registry, pattern string, datasetOnly, divergedOnly, containersOnly bool) ([]ontology.ClassDescriptor, error) {
	var selected []ontology.ClassDescriptor
	for _, d := range r.Descriptors() {
		if pattern != "" {
			match, err := doublestar.Match(pattern, d.ClassName)
			if err != nil {
				return nil, fmt.Errorf("invalid pattern %q: %w", pattern, err)
			}
			if !match {
				continue
			}
		}
		if datasetOnly && !d.InReferenceDataset {
			continue
		}
		if divergedOnly && d.IsStandardAligned {
			continue
		}
		if containersOnly && !d.IsContainer {
			continue
		}
		selected = append(selected, d)
	}
	return selected, nil
}

func newClassesShowCmd() *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "show <name>",
		Short: "Show one class descriptor",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			d, ok := ontology.Builtin().ByName(args[0])
			if !ok {
				return fmt.Errorf("class %q not found", args[0])
			}

			parsed, err := export.ParseFormat(format)
			if err != nil {
				return err
			}
			return export.WriteDescriptor(cmd.OutOrStdout(), d, parsed)
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", string(export.FormatJSON), "Output format (json, yaml, turtle, names)")

	return cmd
}

func newClassesLintCmd(configPath *string) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "lint",
		Short: "Check the ontology for data-quality findings",
		Long:  lintLongHelp(),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(*configPath)
			if err != nil {
				return err
			}

			ignored := make(map[string]bool, len(cfg.Lint.Ignore))
			for _, name := range cfg.Lint.Ignore {
				ignored[name] = true
			}

			remaining := 0
			for _, f := range ontology.Lint(ontology.Builtin()) {
				if ignored[f.ClassName] {
					continue
				}
				remaining++
				fmt.Fprintf(cmd.OutOrStdout(), "%s: %s: %s\n", f.ClassName, f.Rule, f.Detail)
			}

			if remaining == 0 || cfg.Lint.AllowFindings {
				return nil
			}
			return fmt.Errorf("%d lint finding(s)", remaining)
		},
	}

	return cmd
}

// lintLongHelp renders the lint command help with one line per rule.
func lintLongHelp() string {
	rules := make([]string, 0, len(ontology.RuleDescriptions))
	for rule := range ontology.RuleDescriptions {
		rules = append(rules, string(rule))
	}
	sort.Strings(rules)

	var sb strings.Builder
	sb.WriteString(`Check the shipped class table for data-quality findings.

Findings are review signals, not errors. Class names listed under
lint.ignore in the configuration are suppressed; with lint.allow_findings
set, remaining findings are reported without failing the command.

Rules:
`)
	for _, rule := range rules {
		sb.WriteString(fmt.Sprintf("  %-24s %s\n", rule, ontology.RuleDescriptions[ontology.Rule(rule)]))
	}
	return sb.String()
}

func newClassesExportCmd(configPath *string) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export the full ontology",
		Long: `Export every class descriptor in a machine-readable format.

Formats:
` + formatHelp(),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(*configPath)
			if err != nil {
				return err
			}

			name := cfg.Output.Format
			if cmd.Flags().Changed("format") {
				name = format
			}
			parsed, err := export.ParseFormat(name)
			if err != nil {
				return err
			}

			return export.Write(cmd.OutOrStdout(), ontology.Builtin(), parsed)
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "", "Output format (default from config output.format)")

	return cmd
}

// formatHelp renders one help line per supported export format.
func formatHelp() string {
	var sb strings.Builder
	for _, name := range supportedFormatNames() {
		info, ok := export.GetFormatInfo(export.Format(name))
		if !ok {
			continue
		}
		sb.WriteString(fmt.Sprintf("  %-8s %s (%s)\n", name, info.Description, info.Extension))
	}
	return sb.String()
}

// supportedFormatNames returns the registered format names, sorted.
func supportedFormatNames() []string {
	names := make([]string, 0, len(export.FormatRegistry))
	for format := range export.FormatRegistry {
		names = append(names, string(format))
	}
	sort.Strings(names)
	return names
}

func newClassesStatsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Summarize the ontology and corpus coverage",
		RunE: func(cmd *cobra.Command, args []string) error {
			reg := ontology.Builtin()
			coverage := muscima.Coverage(reg)

			aligned, justified := 0, 0
			for _, d := range reg.Descriptors() {
				if d.IsStandardAligned {
					aligned++
				}
				if d.Justification == ontology.JustificationSatisfied {
					justified++
				}
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%-22s %d\n", "classes:", reg.Len())
			fmt.Fprintf(out, "%-22s %d\n", "standard aligned:", aligned)
			fmt.Fprintf(out, "%-22s %d\n", "diverged:", reg.Len()-aligned)
			fmt.Fprintf(out, "%-22s %d\n", "justified divergence:", justified)
			fmt.Fprintf(out, "\n%s %s coverage\n", muscima.DatasetName, muscima.DatasetVersion)
			fmt.Fprintf(out, "%-22s %d\n", "  members:", coverage.Members)
			fmt.Fprintf(out, "%-22s %d\n", "  aligned:", coverage.Aligned)
			fmt.Fprintf(out, "%-22s %d\n", "  diverged:", coverage.Diverged)
			fmt.Fprintf(out, "%-22s %d\n", "  containers:", coverage.Containers)
			fmt.Fprintf(out, "%-22s %d\n", "  transcribable:", coverage.Transcribable)
			return nil
		},
	}

	return cmd
}
