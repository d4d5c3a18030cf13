package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/sells-group/assess-cli/internal/export"
	"github.com/sells-group/assess-cli/internal/store"
)

var resultsCmd = &cobra.Command{
	Use:   "results",
	Short: "Browse persisted assessment results",
}

var resultsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List saved assessments",
	RunE:  runResultsList,
}

var resultsShowCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Show one saved assessment",
	Args:  cobra.ExactArgs(1),
	RunE:  runResultsShow,
}

func init() {
	f := resultsListCmd.Flags()
	f.String("agency-name", "", "filter by agency name")
	f.String("classification", "", "filter by classification")
	f.Int("limit", 20, "maximum rows to return")
	f.Int("offset", 0, "rows to skip")

	resultsShowCmd.Flags().String("format", "table", "output format: table, json, csv, or xlsx")
	resultsShowCmd.Flags().String("output", "", "output file path (default: stdout)")

	resultsCmd.AddCommand(resultsListCmd, resultsShowCmd)
	rootCmd.AddCommand(resultsCmd)
}

func runResultsList(cmd *cobra.Command, _ []string) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	st, err := openStore(cmd.Context())
	if err != nil {
		return err
	}
	defer st.Close()

	agencyName, _ := cmd.Flags().GetString("agency-name")
	classification, _ := cmd.Flags().GetString("classification")
	limit, _ := cmd.Flags().GetInt("limit")
	offset, _ := cmd.Flags().GetInt("offset")

	assessments, err := st.ListAssessments(cmd.Context(), store.ListFilter{
		AgencyName:     agencyName,
		Classification: classification,
		Limit:          limit,
		Offset:         offset,
	})
	if err != nil {
		return err
	}
	if len(assessments) == 0 {
		fmt.Println("No assessments found")
		return nil
	}

	fmt.Printf("%-36s  %-20s  %7s  %-10s  %s\n", "ID", "AGENCY", "OVERALL", "CLASS", "CREATED")
	for _, a := range assessments {
		fmt.Printf("%-36s  %-20s  %7d  %-10s  %s\n",
			a.ID, a.AgencyName, a.Record.Scores.Overall,
			a.Record.Valuation.Classification,
			a.CreatedAt.Format("2006-01-02 15:04"),
		)
	}
	return nil
}

func runResultsShow(cmd *cobra.Command, args []string) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	st, err := openStore(cmd.Context())
	if err != nil {
		return err
	}
	defer st.Close()

	a, err := st.GetAssessment(cmd.Context(), args[0])
	if err != nil {
		return err
	}

	format, _ := cmd.Flags().GetString("format")
	outputPath, _ := cmd.Flags().GetString("output")
	if format == "json" && outputPath == "" {
		// Full stored row, not just the record.
		return export.WriteJSON(os.Stdout, a)
	}
	return outputRecord(a.Record, format, outputPath)
}
