package main

import (
	"github.com/spf13/cobra"

	"github.com/jonathan/job-compare/internal/browse"
)

var (
	listCompany string
	listTag     int
	listSearch  string
	listPage    int
	listPerPage int
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List jobs, optionally filtered by company, tag or search text",
	RunE:  runList,
}

func init() {
	listCmd.Flags().StringVar(&listCompany, "company", "", "Only jobs from this company")
	listCmd.Flags().IntVar(&listTag, "tag", 0, "Only jobs carrying this tag id")
	listCmd.Flags().StringVarP(&listSearch, "search", "s", "", "Case-insensitive text in title or description")
	listCmd.Flags().IntVar(&listPage, "page", 1, "Page number")
	listCmd.Flags().IntVar(&listPerPage, "per-page", browse.DefaultPerPage, "Jobs per page")
	rootCmd.AddCommand(listCmd)
}

func runList(cmd *cobra.Command, _ []string) error {
	a, err := loadApp(cmd)
	if err != nil {
		return err
	}
	defer a.close()

	page, err := a.svc.ListJobs(browse.ListJobsRequest{
		Company:          listCompany,
		TagID:            listTag,
		Search:           listSearch,
		Page:             listPage,
		PerPage:          listPerPage,
		DescriptionLimit: browse.ListDescriptionLimit,
	})
	if err != nil {
		return err
	}

	a.printer.PrintJobsPage(page)
	return nil
}
