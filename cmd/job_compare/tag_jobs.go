package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/jonathan/job-compare/internal/llm"
	"github.com/jonathan/job-compare/internal/tagging"
	"github.com/jonathan/job-compare/internal/tags"
)

var (
	tagInput     string
	tagOutput    string
	tagColumns   []string
	tagBatchSize int
	tagModel     string
)

var tagJobsCmd = &cobra.Command{
	Use:   "tag-jobs",
	Short: "Assign tag ids to every row of a job CSV using Gemini",
	Long: `Read a job CSV, ask the model to pick tags from the tag list for each
row in batches, and write the file back out with a tag_ids column.

Requires GEMINI_API_KEY (or api_key in the config file).`,
	RunE: runTagJobs,
}

func init() {
	tagJobsCmd.Flags().StringVarP(&tagInput, "in", "i", "", "Input CSV file")
	tagJobsCmd.Flags().StringVarP(&tagOutput, "out", "o", "", "Output CSV file (default <in>_tagged.csv)")
	tagJobsCmd.Flags().StringSliceVar(&tagColumns, "columns", nil, "Columns shown to the model (default all)")
	tagJobsCmd.Flags().IntVar(&tagBatchSize, "batch-size", 0, "Jobs per model call (default from config)")
	tagJobsCmd.Flags().StringVar(&tagModel, "model", "", "Override the Gemini model")

	if err := tagJobsCmd.MarkFlagRequired("in"); err != nil {
		panic(fmt.Sprintf("failed to mark in flag as required: %v", err))
	}

	rootCmd.AddCommand(tagJobsCmd)
}

// taggedPath derives the default output path, jobs.csv -> jobs_tagged.csv.
func taggedPath(in string) string {
	if strings.HasSuffix(strings.ToLower(in), ".csv") {
		return in[:len(in)-4] + "_tagged.csv"
	}
	return in + "_tagged.csv"
}

func runTagJobs(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if cfg.APIKey == "" {
		return fmt.Errorf("GEMINI_API_KEY environment variable is required")
	}

	reg, err := tags.Load(cfg.TagsPath)
	if err != nil {
		return err
	}

	llmCfg := llm.DefaultConfig()
	if tagModel != "" {
		llmCfg = llmCfg.WithModel(llm.TierStandard, tagModel)
	}
	client, err := llm.NewGeminiClient(cmd.Context(), llmCfg, cfg.APIKey)
	if err != nil {
		return err
	}
	defer func() {
		_ = client.Close()
	}()

	batchSize := cfg.Tagger.BatchSize
	if tagBatchSize > 0 {
		batchSize = tagBatchSize
	}
	tagger := tagging.New(client, reg, tagging.Options{
		BatchSize: batchSize,
		Interval:  time.Duration(cfg.Tagger.IntervalSeconds * float64(time.Second)),
		MaxTags:   cfg.Tagger.MaxTagsPerJob,
	})

	out := tagOutput
	if out == "" {
		out = taggedPath(tagInput)
	}

	n, err := tagger.TagFile(cmd.Context(), tagInput, out, tagColumns)
	if err != nil {
		return fmt.Errorf("tagging %s: %w", tagInput, err)
	}

	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Tagged %d jobs -> %s\n", n, out)
	return nil
}
