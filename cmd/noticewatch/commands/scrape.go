package commands

import (
	"log/slog"
	"time"

	"noticewatch/lib/scrapers/collegesite"
	"noticewatch/lib/serviceutil"
	"noticewatch/services/notices"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(scrapeCmd)
}

var scrapeCmd = &cobra.Command{
	Use:   "scrape",
	Short: "Runs one discovery pass and merges new notices into the store.",
	Run:   runScrape,
}

func runScrape(cmd *cobra.Command, args []string) {
	cfg := readConfig()

	client, err := collegesite.NewClient(collegesite.ClientOptions{
		BaseUrl:     cfg.BaseUrl,
		ListingPath: cfg.ListingPath,
	})
	if err != nil {
		serviceutil.Fatal("failed to initialize scraper client", err)
	}

	pipeline := notices.NewPipeline(
		notices.NewCollegeSource(client),
		notices.NewStore(cfg.StorePath),
	)

	t1 := time.Now()
	summary, err := pipeline.Run(cmd.Context())
	if err != nil {
		serviceutil.Fatal("run failed", err)
	}
	slog.Info("scraping time", "seconds", time.Since(t1).Seconds())

	t := newTable()
	t.AppendHeader(table.Row{"Found", "New", "Dropped", "Total", "Store"})
	t.AppendRow(table.Row{
		summary.Found,
		summary.New,
		summary.Dropped,
		summary.Total,
		summary.StorePath,
	})
	t.Render()
}
