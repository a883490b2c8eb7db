package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"pricetracker/lib/currency"
	"pricetracker/lib/inventory"
	"pricetracker/lib/scrapers/pricecharting"
	"pricetracker/lib/serviceutil"
	"pricetracker/lib/spreadsheet"
	"pricetracker/lib/telemetry"
	"pricetracker/services/collector"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var (
	inputPath      string
	outputPath     string
	targetCurrency string
	platformList   string
	verbose        bool
)

var rootCmd = &cobra.Command{
	Use:   "gpt -i <inventory.xlsx> -o <priced.xlsx> [-c <currency>] [-p <platforms>]",
	Short: "Annotates a game collection workbook with current resale price estimates.",
	Run: func(cmd *cobra.Command, args []string) {
		run(cmd.Context())
	},
}

func init() {
	rootCmd.Flags().StringVarP(&inputPath, "input", "i", "", "Inventory workbook to read (.xlsx).")
	rootCmd.Flags().StringVarP(&outputPath, "output", "o", "", "Annotated workbook to write (.xlsx).")
	rootCmd.Flags().StringVarP(&targetCurrency, "currency", "c", "USD", "Currency for the price column.")
	rootCmd.Flags().StringVarP(&platformList, "platforms", "p", "", "Comma-separated allow-list of platform sheets.")
	rootCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging.")
	rootCmd.MarkFlagRequired("input")
	rootCmd.MarkFlagRequired("output")
}

func main() {
	godotenv.Load()

	err := rootCmd.ExecuteContext(serviceutil.SignalContext())
	if err != nil {
		fmt.Fprintln(os.Stderr, err.Error())
		os.Exit(1)
	}
}

func run(ctx context.Context) {
	telemetry.InitSlog(verbose)
	tel, err := telemetry.SetupFromEnv(ctx, "gpt")
	if err != nil {
		serviceutil.Fatal("setup telemetry", err)
	}
	defer tel.Shutdown(context.Background())

	cfg, err := loadConfig()
	if err != nil {
		serviceutil.Fatal("read environment config", err)
	}

	// everything that can abort the run is checked here, before any
	// network activity
	if err := spreadsheet.ValidatePath(inputPath); err != nil {
		serviceutil.Fatal("invalid input path", err)
	}
	if err := spreadsheet.ValidatePath(outputPath); err != nil {
		serviceutil.Fatal("invalid output path", err)
	}

	curr := strings.ToUpper(strings.TrimSpace(targetCurrency))
	converter, err := currency.NewTable()
	if err != nil {
		serviceutil.Fatal("load currency table", err)
	}
	if !converter.Supports(curr) {
		serviceutil.Fatal("invalid currency", fmt.Errorf("unknown target currency %q", curr))
	}

	sheets, err := spreadsheet.Read(inputPath, splitPlatforms(platformList))
	if err != nil {
		serviceutil.Fatal("read inventory workbook", err)
	}
	rows := spreadsheet.Flatten(sheets)

	client, err := pricecharting.NewClient(pricecharting.ClientOptions{
		Host:      cfg.Host,
		UserAgent: cfg.UserAgent,
		Timeout:   cfg.Timeout,
	})
	if err != nil {
		serviceutil.Fatal("create pricing client", err)
	}

	slog.Info("collecting prices from www.pricecharting.com", "rows", len(rows), "currency", curr)
	c := collector.New(client, converter, collector.Options{Concurrency: cfg.Concurrency})
	results := c.CollectPrices(ctx, rows, curr)
	slog.Info("prices collected")

	report, err := collector.Assemble(sheets, results, curr)
	if err != nil {
		serviceutil.Fatal("assemble report", err)
	}

	slog.Info("writing results", "path", outputPath)
	if err := spreadsheet.Write(outputPath, report); err != nil {
		serviceutil.Fatal("write output workbook", err)
	}

	renderTotals(report)
	slog.Info("done")
}

func splitPlatforms(list string) []string {
	if strings.TrimSpace(list) == "" {
		return nil
	}
	var platforms []string
	for _, p := range strings.Split(list, ",") {
		p = strings.TrimSpace(p)
		if p != "" {
			platforms = append(platforms, p)
		}
	}
	return platforms
}

func renderTotals(report inventory.Report) {
	t := table.NewWriter()
	t.SetStyle(table.StyleRounded)
	t.SetOutputMirror(os.Stdout)
	t.AppendHeader(table.Row{"Platform", fmt.Sprintf("Price (%s)", report.Currency)})
	for _, group := range report.Groups {
		t.AppendRow(table.Row{group.Platform, group.Subtotal.StringFixed(2)})
	}
	t.AppendFooter(table.Row{"Total", report.GrandTotal.StringFixed(2)})
	t.Render()
}
