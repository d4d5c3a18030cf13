package main

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"sync"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/sells-group/assess-cli/internal/assess"
	"github.com/sells-group/assess-cli/internal/recommend"
	"github.com/sells-group/assess-cli/internal/store"
)

var batchCmd = &cobra.Command{
	Use:   "batch [files...]",
	Short: "Score multiple submissions concurrently",
	Long: `Score a set of submission files concurrently and write one result
file per input next to it (input.yaml -> input.results.json).

Concurrency is bounded by batch.max_concurrent. A failed file does not
abort the run; failures are reported at the end.

Examples:
  assess-cli batch submissions/*.yaml
  assess-cli batch --save a.json b.json c.yaml`,
	Args: cobra.MinimumNArgs(1),
	RunE: runBatch,
}

func init() {
	batchCmd.Flags().Bool("save", false, "persist each result to the configured store")
	rootCmd.AddCommand(batchCmd)
}

func runBatch(cmd *cobra.Command, args []string) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	save, _ := cmd.Flags().GetBool("save")

	cat, err := loadCatalog()
	if err != nil {
		return err
	}

	var st store.Store
	if save {
		st, err = openStore(cmd.Context())
		if err != nil {
			return err
		}
		defer st.Close()
	}

	assembler := assess.New(cat, assess.WithRecommendConfig(recommend.Config{MinCount: cfg.Recommend.MinCount}))

	g, ctx := errgroup.WithContext(cmd.Context())
	g.SetLimit(cfg.Batch.MaxConcurrent)

	var mu sync.Mutex
	var failures []string

	for _, path := range args {
		g.Go(func() error {
			if err := processBatchFile(ctx, path, assembler, st); err != nil {
				zap.L().Error("batch: file failed", zap.String("file", path), zap.Error(err))
				mu.Lock()
				failures = append(failures, path)
				mu.Unlock()
			}
			return ctx.Err()
		})
	}
	if err := g.Wait(); err != nil {
		return eris.Wrap(err, "batch: canceled")
	}

	fmt.Printf("Scored %d of %d submissions\n", len(args)-len(failures), len(args))
	if len(failures) > 0 {
		return eris.Errorf("batch: %d submission(s) failed: %s", len(failures), strings.Join(failures, ", "))
	}
	return nil
}

func processBatchFile(ctx context.Context, path string, assembler *assess.Assembler, st store.Store) error {
	sub, err := loadSubmission(path)
	if err != nil {
		return err
	}

	record := assembler.Assemble(*sub)

	outPath := resultsPathFor(path)
	if err := outputRecord(record, "json", outPath); err != nil {
		return err
	}
	zap.L().Info("batch: submission scored",
		zap.String("file", path),
		zap.String("output", outPath),
		zap.Int("overall", record.Scores.Overall),
	)

	if st != nil {
		name := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
		if _, err := st.SaveAssessment(ctx, name, *sub, record); err != nil {
			return eris.Wrapf(err, "batch: save %s", path)
		}
	}
	return nil
}

// resultsPathFor maps input.yaml to input.results.json in the same
// directory.
func resultsPathFor(path string) string {
	base := strings.TrimSuffix(path, filepath.Ext(path))
	return base + ".results.json"
}
