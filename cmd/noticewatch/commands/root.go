package commands

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"noticewatch/lib/restyutil"
	"noticewatch/lib/scrapers/collegesite"
	"noticewatch/lib/serviceutil"
	"noticewatch/lib/telemetry"

	"github.com/spf13/cobra"
)

var verbose bool

var rootCmd = &cobra.Command{
	Use:   "noticewatch",
	Short: "noticewatch watches the college notice board and records new notices.",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		initTelemetry(cmd.Context())
	},
	// running with no arguments performs a single discovery pass
	Run: runScrape,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
}

func ExecuteContext(ctx context.Context) {
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func initTelemetry(ctx context.Context) {
	telemetry.InitSlog(verbose)

	if verbose {
		slog.DebugContext(ctx, "verbose logging enabled")
	}

	err := telemetry.SetupFromEnv(ctx, "noticewatch")
	if err != nil {
		serviceutil.Fatal("setup telemetry", err)
	}
	go func() {
		<-ctx.Done()
		telemetry.Shutdown(context.Background())
	}()

	if !verbose {
		return
	}

	collegesite.SetRestyInstrumentOutput(
		restyutil.NewFilesystemOutput(".dev/resty/collegesite"),
	)
}
