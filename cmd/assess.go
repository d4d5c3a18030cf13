package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"gopkg.in/yaml.v3"

	"github.com/sells-group/assess-cli/internal/assess"
	"github.com/sells-group/assess-cli/internal/catalog"
	"github.com/sells-group/assess-cli/internal/export"
	"github.com/sells-group/assess-cli/internal/model"
	"github.com/sells-group/assess-cli/internal/recommend"
)

var assessCmd = &cobra.Command{
	Use:   "assess",
	Short: "Score a survey submission and simulate the valuation",
	Long: `Score an agency survey submission against the question bank and
produce dimension scores, an overall score, per-service vulnerability,
a simulated EBITDA multiple range, and ranked recommendations.

The input file holds the submission (JSON or YAML by extension):

  answers:            # question id -> chosen option score (0-5)
    ops_processes: 4
    fin_recurring: 3
  selections:
    - service_id: seo
      revenue_percent: 40
  revenue: 2000000
  agency_type: creative

Examples:
  # Score a submission and print the report table
  assess --input answers.yaml

  # Export the full record as JSON
  assess --input answers.json --format json --output results.json

  # Score, export a workbook, and persist to the store
  assess --input answers.yaml --format xlsx --output report.xlsx --save`,
	RunE: runAssess,
}

func init() {
	f := assessCmd.Flags()
	f.String("input", "", "submission file (JSON or YAML)")
	f.String("agency-name", "", "agency name to record with --save")
	f.String("format", "table", "output format: table, json, csv, or xlsx")
	f.String("output", "", "output file path (default: stdout)")
	f.Bool("save", false, "persist the result to the configured store")
	_ = assessCmd.MarkFlagRequired("input")

	rootCmd.AddCommand(assessCmd)
}

func runAssess(cmd *cobra.Command, _ []string) error {
	if err := cfg.Validate(); err != nil {
		return err
	}

	inputPath, _ := cmd.Flags().GetString("input")
	agencyName, _ := cmd.Flags().GetString("agency-name")
	format, _ := cmd.Flags().GetString("format")
	outputPath, _ := cmd.Flags().GetString("output")
	save, _ := cmd.Flags().GetBool("save")

	cat, err := loadCatalog()
	if err != nil {
		return err
	}

	sub, err := loadSubmission(inputPath)
	if err != nil {
		return err
	}
	for _, answerErr := range cat.AnswerErrors(sub.Answers) {
		zap.L().Warn("assess: submission answer ignored by scoring", zap.Error(answerErr))
	}

	assembler := assess.New(cat, assess.WithRecommendConfig(recommend.Config{MinCount: cfg.Recommend.MinCount}))
	record := assembler.Assemble(*sub)

	zap.L().Info("assess: submission scored",
		zap.String("input", inputPath),
		zap.Int("overall", record.Scores.Overall),
		zap.String("classification", record.Valuation.Classification),
		zap.Int("recommendations", len(record.Recommendations)),
	)

	if err := outputRecord(record, format, outputPath); err != nil {
		return err
	}

	if save {
		st, err := openStore(cmd.Context())
		if err != nil {
			return err
		}
		defer st.Close()
		saved, err := st.SaveAssessment(cmd.Context(), agencyName, *sub, record)
		if err != nil {
			return eris.Wrap(err, "assess: save")
		}
		fmt.Printf("Saved assessment %s\n", saved.ID)
	}

	return nil
}

// loadCatalog returns the built-in catalog, or the configured overlay
// merged over it.
func loadCatalog() (*catalog.Catalog, error) {
	if cfg.Catalog.Path != "" {
		return catalog.LoadFromFile(cfg.Catalog.Path)
	}
	cat := catalog.Default()
	if err := cat.Validate(); err != nil {
		return nil, err
	}
	return cat, nil
}

// loadSubmission reads a submission file, selecting the decoder by
// extension.
func loadSubmission(path string) (*model.Submission, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, eris.Wrapf(err, "assess: read submission %s", path)
	}

	var sub model.Submission
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &sub); err != nil {
			return nil, eris.Wrapf(err, "assess: unmarshal YAML submission %s", path)
		}
	case ".json":
		if err := json.Unmarshal(data, &sub); err != nil {
			return nil, eris.Wrapf(err, "assess: unmarshal JSON submission %s", path)
		}
	default:
		return nil, eris.Errorf("assess: unsupported submission extension %q", ext)
	}
	return &sub, nil
}

func outputRecord(record model.ResultsRecord, format, outputPath string) error {
	var w *os.File
	if outputPath != "" {
		var err error
		w, err = os.Create(outputPath)
		if err != nil {
			return eris.Wrapf(err, "assess: create output file %s", outputPath)
		}
		defer w.Close() //nolint:errcheck
	} else {
		w = os.Stdout
	}

	switch format {
	case "json":
		return export.WriteJSON(w, record)
	case "csv":
		return export.WriteCSV(w, record)
	case "xlsx":
		return export.WriteXLSX(w, record)
	case "table":
		printResultsTable(w, record)
		return nil
	default:
		return eris.Errorf("assess: unsupported format %q", format)
	}
}

// money formats dollar amounts with grouping separators.
var money = message.NewPrinter(language.AmericanEnglish)

func printResultsTable(w *os.File, record model.ResultsRecord) {
	fmt.Fprintf(w, "Overall score:   %d / 100 (%s)\n", record.Scores.Overall, record.Valuation.Classification)
	fmt.Fprintln(w, "\nDimensions:")
	for _, dim := range record.Scores.SortedDimensions() {
		fmt.Fprintf(w, "  %-14s %3d\n", dim, record.Scores.Dimensions[dim])
	}

	if len(record.Scores.Services) > 0 {
		fmt.Fprintln(w, "\nServices:")
		fmt.Fprintf(w, "  %-14s %7s %14s\n", "service", "score", "vulnerability")
		for _, id := range record.Scores.SortedServices() {
			svc := record.Scores.Services[id]
			fmt.Fprintf(w, "  %-14s %7d %13d%%\n", id, svc.Score, svc.Vulnerability)
		}
	}

	fmt.Fprintln(w, "\nValuation:")
	fmt.Fprintf(w, "  Multiple range:  %.1fx - %.1fx EBITDA\n", record.Valuation.MultipleLow, record.Valuation.MultipleHigh)
	fmt.Fprintf(w, "  EBIT impact:     %.1f%%\n", record.Valuation.EBITImpactPercent)
	money.Fprintf(w, "  EBIT delta:      $%.0f\n", record.FinancialImpact.EBITImpact)
	money.Fprintf(w, "  Valuation delta: $%.0f\n", record.FinancialImpact.ValuationImpact)
	if record.FinancialImpact.RiskExposure > 0 {
		fmt.Fprintf(w, "  Risk exposure:   %.2fx\n", record.FinancialImpact.RiskExposure)
	}

	if len(record.Recommendations) > 0 {
		fmt.Fprintln(w, "\nRecommendations:")
		for i, rec := range record.Recommendations {
			fmt.Fprintf(w, "  %2d. [P%d] %-12s %s (%s)\n", i+1, rec.PriorityRank, rec.Service, rec.Title, rec.TimeframeLabel)
		}
	}

	if record.Error != "" {
		fmt.Fprintf(w, "\nWARNING: %s\n", record.Error)
	}
}
