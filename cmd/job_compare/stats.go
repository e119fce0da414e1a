package main

import (
	"github.com/spf13/cobra"

	"github.com/jonathan/job-compare/internal/types"
)

var (
	statsCompany string
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Print market overview, per-company analysis and competitiveness",
	RunE:  runStats,
}

func init() {
	statsCmd.Flags().StringVar(&statsCompany, "company", string(types.CompanyMercor), "Company to compare against the rest")
	rootCmd.AddCommand(statsCmd)
}

func runStats(cmd *cobra.Command, _ []string) error {
	a, err := loadApp(cmd)
	if err != nil {
		return err
	}
	defer a.close()

	comp, err := a.svc.Competitiveness(statsCompany)
	if err != nil {
		return err
	}

	a.printer.PrintOverview(a.svc.Stats())
	a.printer.PrintCompanyAnalysis(a.svc.CompanyAnalysis())
	a.printer.PrintCompetitiveness(comp)
	return nil
}
