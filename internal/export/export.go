// Package export writes a completed ResultsRecord to interchange
// formats for reporting collaborators.
package export

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"sort"

	"github.com/rotisserie/eris"
	"github.com/tealeg/xlsx/v2"

	"github.com/sells-group/assess-cli/internal/model"
)

// WriteJSON encodes a value as indented JSON. Numeric fields stay
// plain numbers; a ResultsRecord round-trips through decode with no
// loss.
func WriteJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return eris.Wrap(err, "export: encode JSON")
	}
	return nil
}

// WriteCSV writes the recommendation table as CSV with a summary header
// comment row per score.
func WriteCSV(w io.Writer, record model.ResultsRecord) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	header := []string{"priority", "service", "title", "impact", "complexity", "timeframe", "description"}
	if err := cw.Write(header); err != nil {
		return eris.Wrap(err, "export: write CSV header")
	}
	for _, rec := range record.Recommendations {
		row := []string{
			fmt.Sprintf("%d", rec.PriorityRank),
			rec.Service,
			rec.Title,
			rec.ImpactLabel,
			string(rec.Complexity),
			rec.TimeframeLabel,
			rec.Description,
		}
		if err := cw.Write(row); err != nil {
			return eris.Wrap(err, "export: write CSV row")
		}
	}
	return nil
}

// WriteXLSX writes a two-sheet workbook: a Scores summary sheet and a
// Recommendations sheet.
func WriteXLSX(w io.Writer, record model.ResultsRecord) error {
	file := xlsx.NewFile()

	if err := writeScoreSheet(file, record); err != nil {
		return err
	}
	if err := writeRecommendationSheet(file, record); err != nil {
		return err
	}

	if err := file.Write(w); err != nil {
		return eris.Wrap(err, "export: write workbook")
	}
	return nil
}

func writeScoreSheet(file *xlsx.File, record model.ResultsRecord) error {
	sheet, err := file.AddSheet("Scores")
	if err != nil {
		return eris.Wrap(err, "export: add scores sheet")
	}

	addRow(sheet, "Overall Score", fmt.Sprintf("%d", record.Scores.Overall))
	addRow(sheet, "Classification", record.Valuation.Classification)
	addRow(sheet, "Multiple Range",
		fmt.Sprintf("%.1fx - %.1fx", record.Valuation.MultipleLow, record.Valuation.MultipleHigh))
	addRow(sheet, "EBIT Impact", fmt.Sprintf("%.1f%%", record.Valuation.EBITImpactPercent))
	addRow(sheet, "EBIT Delta", fmt.Sprintf("%.0f", record.FinancialImpact.EBITImpact))
	addRow(sheet, "Valuation Delta", fmt.Sprintf("%.0f", record.FinancialImpact.ValuationImpact))
	addRow(sheet, "Risk Exposure", fmt.Sprintf("%.2fx", record.FinancialImpact.RiskExposure))
	addRow(sheet, "Generated At", record.GeneratedAt.Format("2006-01-02 15:04:05 MST"))
	if record.Error != "" {
		addRow(sheet, "Error", record.Error)
	}

	addRow(sheet) // spacer
	addRow(sheet, "Dimension", "Score")
	for _, dim := range sortedDimensions(record.Scores.Dimensions) {
		addRow(sheet, string(dim), fmt.Sprintf("%d", record.Scores.Dimensions[dim]))
	}

	if len(record.Scores.Services) > 0 {
		addRow(sheet)
		addRow(sheet, "Service", "Score", "Vulnerability")
		for _, id := range sortedServices(record.Scores.Services) {
			svc := record.Scores.Services[id]
			addRow(sheet, id, fmt.Sprintf("%d", svc.Score), fmt.Sprintf("%d%%", svc.Vulnerability))
		}
	}
	return nil
}

func writeRecommendationSheet(file *xlsx.File, record model.ResultsRecord) error {
	sheet, err := file.AddSheet("Recommendations")
	if err != nil {
		return eris.Wrap(err, "export: add recommendations sheet")
	}

	addRow(sheet, "Priority", "Service", "Title", "Impact", "Complexity", "Timeframe", "Description")
	for _, rec := range record.Recommendations {
		addRow(sheet,
			fmt.Sprintf("%d", rec.PriorityRank),
			rec.Service,
			rec.Title,
			rec.ImpactLabel,
			string(rec.Complexity),
			rec.TimeframeLabel,
			rec.Description,
		)
	}
	return nil
}

func addRow(sheet *xlsx.Sheet, values ...string) {
	row := sheet.AddRow()
	for _, v := range values {
		cell := row.AddCell()
		cell.Value = v
	}
}

func sortedDimensions(dims map[model.DimensionID]int) []model.DimensionID {
	out := make([]model.DimensionID, 0, len(dims))
	for d := range dims {
		out = append(out, d)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

func sortedServices(services map[string]model.ServiceScore) []string {
	out := make([]string, 0, len(services))
	for id := range services {
		out = append(out, id)
	}
	sort.Strings(out)
	return out
}
