package commands

import (
	"log/slog"
	"time"

	"noticewatch/lib/serviceutil"
	"noticewatch/services/notices"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(showCmd)
}

var showCmd = &cobra.Command{
	Use:   "show",
	Short: "Lists the notices currently recorded in the store.",
	Run: func(cmd *cobra.Command, args []string) {
		cfg := readConfig()
		store := notices.NewStore(cfg.StorePath)

		rec, found, err := store.Load(cmd.Context())
		if err != nil {
			serviceutil.Fatal("failed to load store", err)
		}
		if !found {
			slog.Info("store does not exist yet", "path", cfg.StorePath)
			return
		}

		t := newTable()
		t.AppendHeader(table.Row{"#", "Date", "Title", "Drive"})
		for i, n := range rec.Notices {
			date := ""
			if n.Date != nil {
				date = *n.Date
			}
			drive := ""
			if n.GoogleDrive != nil {
				drive = *n.GoogleDrive
			}
			t.AppendRow(table.Row{i + 1, date, n.Title, drive})
		}
		t.AppendFooter(table.Row{
			"", "", "scraped at", rec.ScrapedAt.Format(time.ANSIC),
		})
		t.Render()
	},
}
