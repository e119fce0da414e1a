package main

import (
	"github.com/spf13/cobra"
)

var (
	similarCompany string
	similarLimit   int
)

var similarCmd = &cobra.Command{
	Use:   "similar <job-id>",
	Short: "Find jobs at other companies that share tags with a job",
	Args:  cobra.ExactArgs(1),
	RunE:  runSimilar,
}

func init() {
	similarCmd.Flags().StringVar(&similarCompany, "company", "", "Company of the job (required when ids collide)")
	similarCmd.Flags().IntVarP(&similarLimit, "limit", "n", 0, "Maximum matches (default from config)")
	rootCmd.AddCommand(similarCmd)
}

func runSimilar(cmd *cobra.Command, args []string) error {
	a, err := loadApp(cmd)
	if err != nil {
		return err
	}
	defer a.close()

	limit := a.cfg.MaxSimilarResults
	if similarLimit > 0 {
		limit = similarLimit
	}

	result, err := a.svc.GetSimilarJobs(args[0], similarCompany, limit)
	if err != nil {
		return err
	}

	a.printer.PrintSimilarJobs(result)
	return nil
}
