package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/sells-group/assess-cli/internal/catalog"
	"github.com/sells-group/assess-cli/internal/export"
)

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "Inspect and validate the assessment catalog",
	Long: `Print the question bank, service lines, and dimension weights the
engine scores against. With catalog.path configured, the overlay file is
merged over the built-in tables first.`,
	RunE: runCatalog,
}

var catalogValidateCmd = &cobra.Command{
	Use:   "validate [file]",
	Short: "Validate a catalog overlay file",
	Long: `Merge an overlay file (JSON or YAML) over the built-in catalog and
check the combined tables. Without an argument the configured
catalog.path is validated.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runCatalogValidate,
}

func init() {
	catalogCmd.Flags().Bool("json", false, "print the full catalog as JSON")
	catalogCmd.AddCommand(catalogValidateCmd)
	rootCmd.AddCommand(catalogCmd)
}

func runCatalog(cmd *cobra.Command, _ []string) error {
	cat, err := loadCatalog()
	if err != nil {
		return err
	}

	if asJSON, _ := cmd.Flags().GetBool("json"); asJSON {
		return export.WriteJSON(os.Stdout, cat)
	}

	printCatalogSummary(cat)
	return nil
}

func runCatalogValidate(cmd *cobra.Command, args []string) error {
	path := cfg.Catalog.Path
	if len(args) == 1 {
		path = args[0]
	}
	if path == "" {
		cat := catalog.Default()
		if err := cat.Validate(); err != nil {
			return err
		}
		fmt.Println("Built-in catalog OK")
		return nil
	}

	// LoadFromFile validates the merged catalog before returning.
	if _, err := catalog.LoadFromFile(path); err != nil {
		return err
	}
	fmt.Printf("Catalog OK: %s\n", path)
	return nil
}

func printCatalogSummary(cat *catalog.Catalog) {
	fmt.Println("Dimensions:")
	for _, dim := range cat.Dimensions() {
		fmt.Printf("  %-14s weight %.0f  (%d questions)\n",
			dim, cat.Weights[dim], len(cat.QuestionsForDimension(dim)))
	}

	fmt.Println("\nServices:")
	for _, svc := range cat.Services {
		_, hasRecs := cat.ServiceRecs[svc.ID]
		marker := " "
		if !hasRecs {
			marker = "*"
		}
		fmt.Printf("  %-14s %-28s risk=%-8s questions=%d %s\n",
			svc.ID, svc.Name, svc.RiskLevel, len(cat.QuestionsForService(svc.ID)), marker)
	}
	fmt.Println("  (* = no recommendation table; placeholders are generated)")

	if len(cat.AgencyOverrides) > 0 {
		fmt.Println("\nAgency weight overrides:")
		for agencyType, override := range cat.AgencyOverrides {
			fmt.Printf("  %-14s %v\n", agencyType, override)
		}
	}

	fmt.Printf("\nUniversal recommendations: %d\n", len(cat.UniversalRecs))
}
