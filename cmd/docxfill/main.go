// Command docxfill fills placeholders in DOCX templates from the command
// line. Values come from a YAML mapping file; repeating regions can be
// cloned before filling.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/diego-vieira/docxfill/pkg/docxfill"
)

var version = "0.1.0"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var logLevel string

	root := &cobra.Command{
		Use:     "docxfill",
		Short:   "Fill ${name} placeholders in DOCX templates",
		Version: version,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if logLevel != "" {
				config := docxfill.GetGlobalConfig()
				config.LogLevel = logLevel
				docxfill.SetGlobalConfig(config)
			}
		},
	}

	root.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level (debug, info, warn, error, off)")

	root.AddCommand(newVarsCmd())
	root.AddCommand(newFillCmd())
	root.AddCommand(newCloneRowCmd())
	root.AddCommand(newCloneBlockCmd())
	return root
}

func newVarsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "vars <template.docx>",
		Short: "List the distinct placeholder names in a template",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			tmpl, err := docxfill.Open(args[0])
			if err != nil {
				return err
			}
			defer tmpl.Close()

			for _, name := range tmpl.Variables() {
				fmt.Fprintln(cmd.OutOrStdout(), name)
			}
			return nil
		},
	}
}

func newFillCmd() *cobra.Command {
	var (
		output   string
		dataFile string
		limit    int
	)

	cmd := &cobra.Command{
		Use:   "fill <template.docx>",
		Short: "Substitute placeholder values from a YAML mapping",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			values, err := loadValues(dataFile)
			if err != nil {
				return err
			}

			tmpl, err := docxfill.Open(args[0])
			if err != nil {
				return err
			}
			defer tmpl.Close()

			for name, value := range values {
				tmpl.SetValueLimit(name, value, limit)
			}
			return tmpl.SaveAs(output)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "destination file (required)")
	cmd.Flags().StringVar(&dataFile, "data", "", "YAML file mapping placeholder names to values (required)")
	cmd.Flags().IntVar(&limit, "limit", -1, "max substitutions per part, -1 for unbounded")
	cmd.MarkFlagRequired("output")
	cmd.MarkFlagRequired("data")
	return cmd
}

func newCloneRowCmd() *cobra.Command {
	var (
		output   string
		search   string
		count    int
		dataFile string
	)

	cmd := &cobra.Command{
		Use:   "clone-row <template.docx>",
		Short: "Clone the table row holding a placeholder, then fill",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			values, err := loadValues(dataFile)
			if err != nil {
				return err
			}

			tmpl, err := docxfill.Open(args[0])
			if err != nil {
				return err
			}
			defer tmpl.Close()

			if err := tmpl.CloneRow(search, count); err != nil {
				return err
			}
			for name, value := range values {
				tmpl.SetValue(name, value)
			}
			return tmpl.SaveAs(output)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "destination file (required)")
	cmd.Flags().StringVar(&search, "search", "", "placeholder marking the row (required)")
	cmd.Flags().IntVar(&count, "count", 1, "number of row copies")
	cmd.Flags().StringVar(&dataFile, "data", "", "YAML file mapping placeholder names to values")
	cmd.MarkFlagRequired("output")
	cmd.MarkFlagRequired("search")
	return cmd
}

func newCloneBlockCmd() *cobra.Command {
	var (
		output string
		name   string
		clones int
	)

	cmd := &cobra.Command{
		Use:   "clone-block <template.docx>",
		Short: "Clone a ${name}...${/name} block in place",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			tmpl, err := docxfill.Open(args[0])
			if err != nil {
				return err
			}
			defer tmpl.Close()

			if _, ok := tmpl.CloneBlock(name, clones, true, 0); !ok {
				return fmt.Errorf("block '%s' not found", name)
			}
			return tmpl.SaveAs(output)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "destination file (required)")
	cmd.Flags().StringVar(&name, "name", "", "block name (required)")
	cmd.Flags().IntVar(&clones, "clones", 1, "number of extra copies of the block body")
	cmd.MarkFlagRequired("output")
	cmd.MarkFlagRequired("name")
	return cmd
}

// loadValues reads a YAML mapping of placeholder names to values. An empty
// path yields an empty mapping.
func loadValues(path string) (map[string]string, error) {
	if path == "" {
		return map[string]string{}, nil
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read data file: %w", err)
	}

	values := make(map[string]string)
	if err := yaml.Unmarshal(content, &values); err != nil {
		return nil, fmt.Errorf("failed to parse data file: %w", err)
	}
	return values, nil
}
