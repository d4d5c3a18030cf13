package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sells-group/assess-cli/internal/config"
	"github.com/sells-group/assess-cli/internal/model"
)

func sampleCmdRecord() model.ResultsRecord {
	return model.ResultsRecord{
		Scores: model.ScoreBundle{
			Overall:    60,
			Dimensions: map[model.DimensionID]int{model.DimensionOperational: 60},
		},
		Valuation: model.ValuationResult{MultipleLow: 4.0, MultipleHigh: 5.5, Classification: "Strong"},
	}
}

func TestAssessCmd_Metadata(t *testing.T) {
	assert.Equal(t, "assess", assessCmd.Use)
	assert.NotEmpty(t, assessCmd.Short)

	for _, flag := range []string{"input", "agency-name", "format", "output", "save"} {
		require.NotNil(t, assessCmd.Flags().Lookup(flag), "flag %s", flag)
	}
}

func TestLoadSubmission(t *testing.T) {
	dir := t.TempDir()

	yamlPath := filepath.Join(dir, "sub.yaml")
	require.NoError(t, os.WriteFile(yamlPath, []byte(`
answers:
  ops_processes: 4
  fin_recurring: 3
selections:
  - service_id: seo
    revenue_percent: 100
revenue: 2000000
agency_type: creative
`), 0o644))

	sub, err := loadSubmission(yamlPath)
	require.NoError(t, err)
	assert.Equal(t, 4, sub.Answers["ops_processes"])
	assert.Equal(t, "seo", sub.Selections[0].ServiceID)
	assert.InDelta(t, 2_000_000, sub.Revenue, 0.001)
	assert.Equal(t, "creative", sub.AgencyType)

	jsonPath := filepath.Join(dir, "sub.json")
	require.NoError(t, os.WriteFile(jsonPath, []byte(`{"answers":{"ai_adoption":2},"revenue":500000}`), 0o644))
	sub, err = loadSubmission(jsonPath)
	require.NoError(t, err)
	assert.Equal(t, 2, sub.Answers["ai_adoption"])
}

func TestLoadSubmission_Errors(t *testing.T) {
	_, err := loadSubmission(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	badExt := filepath.Join(t.TempDir(), "sub.txt")
	require.NoError(t, os.WriteFile(badExt, []byte("answers: {}"), 0o644))
	_, err = loadSubmission(badExt)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported submission extension")
}

func TestLoadCatalog_DefaultAndOverlay(t *testing.T) {
	cfg = &config.Config{}
	cat, err := loadCatalog()
	require.NoError(t, err)
	assert.NotEmpty(t, cat.Questions)

	overlay := filepath.Join(t.TempDir(), "overlay.yaml")
	require.NoError(t, os.WriteFile(overlay, []byte("weights:\n  operational: 50\n  financial: 25\n  ai: 25\n"), 0o644))
	cfg = &config.Config{Catalog: config.CatalogConfig{Path: overlay}}

	cat, err = loadCatalog()
	require.NoError(t, err)
	assert.InDelta(t, 50, cat.Weights["operational"], 0.001)
}

func TestOutputRecord_UnsupportedFormat(t *testing.T) {
	err := outputRecord(sampleCmdRecord(), "pdf", "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported format")
}

func TestOutputRecord_WritesFile(t *testing.T) {
	out := filepath.Join(t.TempDir(), "results.json")
	require.NoError(t, outputRecord(sampleCmdRecord(), "json", out))

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"overall"`)
}

func TestResultsPathFor(t *testing.T) {
	assert.Equal(t, "sub.results.json", resultsPathFor("sub.yaml"))
	assert.Equal(t, "dir/a.results.json", resultsPathFor("dir/a.json"))
}
