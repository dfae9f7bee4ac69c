// Package main provides the CLI entry point for netconvert.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mingyongtan/NetworkConvertdata/pkg/netconvert"
	"github.com/mingyongtan/NetworkConvertdata/pkg/netconvert/config"
	"github.com/mingyongtan/NetworkConvertdata/pkg/netconvert/logger"
	"github.com/mingyongtan/NetworkConvertdata/pkg/netconvert/models"
	"github.com/mingyongtan/NetworkConvertdata/pkg/netconvert/output"
	"github.com/mingyongtan/NetworkConvertdata/pkg/netconvert/sheet"
)

var (
	outputPath  string
	format      string
	noRank      bool
	chart       bool
	workers     int
	configPath  string
	schemasPath string
	logLevel    string

	pretty        bool
	sheetsDir     string
	printAreasDir string
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "netconvert [input...]",
		Short: "Convert network capture exports into ranked spreadsheets",
		Long: `netconvert reads network export text (CSV, TSV, aligned columns) and
pcap/pcapng captures, normalizes them into per-protocol tables and ranks
each table by packet share with an 80/20 cutoff.`,
		Args:         cobra.MinimumNArgs(1),
		RunE:         runConvert,
		SilenceUsage: true,
	}
	addConvertFlags(rootCmd)

	convertCmd := &cobra.Command{
		Use:          "convert [input...]",
		Short:        "Convert files or directories into one workbook",
		Args:         cobra.MinimumNArgs(1),
		RunE:         runConvert,
		SilenceUsage: true,
	}
	addConvertFlags(convertCmd)

	inspectCmd := &cobra.Command{
		Use:          "inspect [workbook.xlsx]",
		Short:        "Read a workbook back and print it as JSON",
		Args:         cobra.ExactArgs(1),
		RunE:         runInspect,
		SilenceUsage: true,
	}
	inspectCmd.Flags().StringVarP(&outputPath, "output", "o", "", "Output file path (default: stdout)")
	inspectCmd.Flags().BoolVar(&pretty, "pretty", false, "Pretty-print JSON output")
	inspectCmd.Flags().StringVar(&sheetsDir, "sheets-dir", "", "Directory for per-sheet output files")
	inspectCmd.Flags().StringVar(&printAreasDir, "print-areas-dir", "", "Directory for per-print-area output files")

	rootCmd.AddCommand(convertCmd, inspectCmd)
	return rootCmd
}

func addConvertFlags(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&outputPath, "output", "o", "", "Output file path (default: first input with the format extension)")
	cmd.Flags().StringVar(&format, "format", config.FormatXLSX, "Output format: xlsx or json")
	cmd.Flags().BoolVar(&noRank, "no-rank", false, "Skip ranking and derived columns")
	cmd.Flags().BoolVar(&chart, "chart", false, "Add a Pareto chart to ranked sheets")
	cmd.Flags().IntVar(&workers, "workers", 0, "Number of files read in parallel (default: GOMAXPROCS)")
	cmd.Flags().StringVar(&configPath, "config", "", "YAML configuration file")
	cmd.Flags().StringVar(&schemasPath, "schemas", "", "YAML protocol schema catalog")
	cmd.Flags().StringVar(&logLevel, "log-level", "", "Log level: debug, info, warn, error")
}

// loadConfig reads the config file and environment, then applies the flags
// the user set explicitly.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}

	flags := cmd.Flags()
	if flags.Changed("format") {
		cfg.Convert.Format = strings.ToLower(format)
	}
	if flags.Changed("workers") {
		cfg.Convert.Workers = workers
	}
	if flags.Changed("no-rank") {
		cfg.Convert.Rank = !noRank
	}
	if flags.Changed("chart") {
		cfg.Convert.Chart = chart
	}
	if flags.Changed("schemas") {
		cfg.Convert.SchemaFile = schemasPath
	}
	if flags.Changed("log-level") {
		cfg.Logging.Level = logLevel
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid flags: %w", err)
	}
	return cfg, nil
}

func runConvert(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	if err := logger.Init(cfg.Logging); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	catalog, err := config.LoadCatalog(cfg.Convert.SchemaFile)
	if err != nil {
		return err
	}

	inputs, err := netconvert.CollectInputs(args)
	if err != nil {
		return err
	}
	if len(inputs) == 0 {
		return fmt.Errorf("no input files found in %s", strings.Join(args, ", "))
	}

	out := outputPath
	if out == "" {
		out = defaultOutputPath(args[0], cfg.Convert.Format)
	}
	if err := checkOverwrite(out, inputs); err != nil {
		return err
	}

	logger.Info().Int("inputs", len(inputs)).Str("output", out).Msg("converting")

	rank := cfg.Convert.Rank
	conv := netconvert.NewConverter(netconvert.Options{
		Rank:    &rank,
		Chart:   cfg.Convert.Chart,
		Workers: cfg.Convert.Workers,
		Catalog: catalog,
		Logger:  logger.WithComponent("convert"),
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	wb, err := conv.ConvertFiles(ctx, inputs)
	if err != nil {
		return fmt.Errorf("conversion failed: %w", err)
	}

	if err := conv.Save(wb, out, cfg.Convert.Format); err != nil {
		return err
	}

	printSummary(cmd.OutOrStdout(), wb, out)
	return nil
}

// defaultOutputPath replaces the extension of the first input with the
// output format's.
func defaultOutputPath(input, format string) string {
	input = filepath.Clean(input)
	return strings.TrimSuffix(input, filepath.Ext(input)) + "." + format
}

// checkOverwrite refuses an output path that names one of the inputs.
func checkOverwrite(out string, inputs []string) error {
	outAbs, err := filepath.Abs(out)
	if err != nil {
		return err
	}
	for _, in := range inputs {
		inAbs, err := filepath.Abs(in)
		if err != nil {
			return err
		}
		if inAbs == outAbs {
			return fmt.Errorf("output %s would overwrite an input; choose another path with -o", out)
		}
	}
	return nil
}

func printSummary(w io.Writer, wb *models.WorkbookData, path string) {
	fmt.Fprintf(w, "Wrote %d sheet(s) to %s\n", len(wb.Sheets), path)
	for _, s := range wb.Sheets {
		r := s.Ranked
		line := fmt.Sprintf("  %-31s %-24s %6d rows", s.Name, s.Source, len(r.Table.Rows))
		if r.Ranked() {
			line += fmt.Sprintf("  top %d row(s) = %.2f%%", r.Cutoff.RowIndex+1, r.Cutoff.CumulativePercent)
		}
		fmt.Fprintln(w, line)
	}
}

func runInspect(cmd *cobra.Command, args []string) error {
	inputPath := args[0]

	if _, err := os.Stat(inputPath); os.IsNotExist(err) {
		return fmt.Errorf("%w: %s", netconvert.ErrFileNotFound, inputPath)
	}

	info, err := sheet.ReadWorkbook(inputPath)
	if err != nil {
		return fmt.Errorf("failed to read workbook: %w", err)
	}

	jsonData, err := output.InfoToJSON(info, pretty)
	if err != nil {
		return fmt.Errorf("serialization failed: %w", err)
	}

	if outputPath != "" {
		if err := os.WriteFile(outputPath, jsonData, 0644); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
	} else if sheetsDir == "" && printAreasDir == "" {
		fmt.Fprintln(cmd.OutOrStdout(), string(jsonData))
	}

	if sheetsDir != "" {
		if err := writeSheetFiles(info, sheetsDir); err != nil {
			return fmt.Errorf("failed to write sheet files: %w", err)
		}
	}

	if printAreasDir != "" {
		if err := writePrintAreaFiles(info, printAreasDir); err != nil {
			return fmt.Errorf("failed to write print area files: %w", err)
		}
	}

	return nil
}

func writeSheetFiles(info *models.WorkbookInfo, dir string) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	for i := range info.Sheets {
		s := &info.Sheets[i]
		jsonData, err := output.SheetInfoToJSON(s, pretty)
		if err != nil {
			return err
		}

		filename := filepath.Join(dir, s.Name+".json")
		if err := os.WriteFile(filename, jsonData, 0644); err != nil {
			return err
		}
	}

	return nil
}

func writePrintAreaFiles(info *models.WorkbookInfo, dir string) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	counts := make(map[string]int)
	for _, view := range sheet.PrintAreaViews(info) {
		counts[view.SheetName]++
		jsonData, err := output.PrintAreaViewToJSON(&view, pretty)
		if err != nil {
			return err
		}

		filename := filepath.Join(dir, fmt.Sprintf("%s_area%d.json", view.SheetName, counts[view.SheetName]))
		if err := os.WriteFile(filename, jsonData, 0644); err != nil {
			return err
		}
	}

	return nil
}
