package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/huangsam/workscope/internal/contract"
	"github.com/huangsam/workscope/schema"
)

// modelsCmd lists the effort estimation methodologies.
var modelsCmd = &cobra.Command{
	Use:   "models",
	Short: "List the effort estimation methodologies in the active catalog.",
	Long: `Show every estimation methodology the report will compare, with its
hours-per-line factor, description, and references.

The built-in catalog is used unless --catalog points at a JSON file.

Examples:
  # Show the built-in methodologies
  workscope models

  # Show a custom catalog
  workscope models --catalog team-catalog.json`,
	PreRunE: func(_ *cobra.Command, _ []string) error {
		return loadConfigFile()
	},
	Run: func(_ *cobra.Command, _ []string) {
		catalog := schema.DefaultCatalog()
		if path := viper.GetString("catalog"); path != "" {
			loaded, err := schema.LoadCatalog(path)
			if err != nil {
				contract.LogFatal("Cannot load methodology catalog", err)
			}
			catalog = loaded
		}

		table := tablewriter.NewWriter(os.Stdout)
		table.Header([]string{"Key", "Label", "Factor (h/line)", "Description"})
		for _, entry := range catalog {
			if err := table.Append([]string{entry.Key, entry.Label, fmt.Sprintf("%.3f", entry.Factor), entry.Description}); err != nil {
				contract.LogFatal("Cannot render methodology table", err)
			}
		}
		if err := table.Render(); err != nil {
			contract.LogFatal("Cannot render methodology table", err)
		}

		for _, entry := range catalog {
			if len(entry.References) > 0 {
				fmt.Printf("%s: %s\n", entry.Key, strings.Join(entry.References, ", "))
			}
		}
	},
}
